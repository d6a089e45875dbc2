package xml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/0xalexb/hjarta-comment/config"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = config.ErrEmptyData

// ErrPathNotFound is returned when the specified path is not found in the XML document.
var ErrPathNotFound = config.ErrPathNotFound

// Parser implements config.Parser interface for XML data.
//
// The root element is the document itself; path segments name nested child
// elements by local name, ignoring namespaces. The element a path lands on is
// decoded into the target with encoding/xml rules.
type Parser struct{}

// NewParser creates a new XML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses XML data and decodes the element addressed by path into target.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyData
	}

	decoder := xml.NewDecoder(bytes.NewReader(data))

	root, err := nextStart(decoder)
	if err != nil {
		return err
	}

	if path == "" {
		err = decoder.DecodeElement(target, &root)
		if err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return nil
	}

	wanted := strings.Split(path, ":")

	element, err := descend(decoder, wanted)
	if err != nil {
		if errors.Is(err, ErrPathNotFound) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		return fmt.Errorf("reading path %q: %w", path, err)
	}

	err = decoder.DecodeElement(target, &element)
	if err != nil {
		return fmt.Errorf("reading path %q: %w", path, err)
	}

	return nil
}

func nextStart(decoder *xml.Decoder) (xml.StartElement, error) {
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return xml.StartElement{}, ErrEmptyData
		}

		if err != nil {
			return xml.StartElement{}, fmt.Errorf("unmarshal error: %w", err)
		}

		if start, ok := token.(xml.StartElement); ok {
			return start, nil
		}
	}
}

// descend walks the children of the current element until the chain of
// local names in wanted is matched, and returns the last start element.
func descend(decoder *xml.Decoder, wanted []string) (xml.StartElement, error) {
	matched := 0
	depth := 0

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return xml.StartElement{}, ErrPathNotFound
		}

		if err != nil {
			return xml.StartElement{}, fmt.Errorf("token error: %w", err)
		}

		switch element := token.(type) {
		case xml.StartElement:
			if depth == matched && element.Name.Local == wanted[matched] {
				matched++
				if matched == len(wanted) {
					return element, nil
				}

				depth++

				continue
			}

			depth++

			err = decoder.Skip()
			if err != nil {
				return xml.StartElement{}, fmt.Errorf("token error: %w", err)
			}

			depth--
		case xml.EndElement:
			if depth == 0 {
				return xml.StartElement{}, ErrPathNotFound
			}

			depth--
			matched = min(matched, depth)
		}
	}
}
