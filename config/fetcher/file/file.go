package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements config.DataFetcher interface for file-based configuration.
// It reads configuration data from a file at construction time and caches the contents.
type Fetcher struct {
	filepath string
	data     []byte
}

// NewFetcher returns a constructor function that creates a new file-based Fetcher
// with the specified filepath on the host filesystem. The file is read at
// construction time and cached, so the DI container controls when the read happens.
// Returns an error if the file cannot be read or if the path points to a directory.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		return read(os.DirFS(filepath.Dir(cleanPath)), filepath.Base(cleanPath), cleanPath)
	}
}

// NewFetcherFS is NewFetcher over an fs.FS, such as the embedded resources of
// an extension. The name uses slash-separated fs.FS syntax.
func NewFetcherFS(fsys fs.FS, name string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanName := path.Clean(name)

		return read(fsys, cleanName, cleanName)
	}
}

func read(fsys fs.FS, name, display string) (*Fetcher, error) {
	stat, err := fs.Stat(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", display, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", display, ErrPathIsDirectory)
	}

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", display, err)
	}

	return &Fetcher{
		filepath: display,
		data:     data,
	}, nil
}

// Path returns the cleaned path the data was read from.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Fetch returns a copy of the cached configuration data that was read at construction time.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
