package static

// Fetcher implements config.DataFetcher over bytes held in memory.
// It backs applications started without a config file and tests that
// don't need file I/O.
type Fetcher struct {
	data []byte
}

// NewFetcher returns a Fetcher serving a private copy of data.
func NewFetcher(data []byte) *Fetcher {
	return &Fetcher{data: clone(data)}
}

// Fetch returns a copy of the held data.
func (f *Fetcher) Fetch() ([]byte, error) {
	return clone(f.data), nil
}

func clone(data []byte) []byte {
	result := make([]byte, len(data))
	copy(result, data)

	return result
}
