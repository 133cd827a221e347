package wordlist

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/heartmarshall/wordlists/internal/domain"
)

// encodings maps accepted encoding names to decoders. UTF-8 maps to nil:
// it is read as-is and validated line by line.
var encodings = map[string]encoding.Encoding{
	"utf-8":        nil,
	"utf8":         nil,
	"iso-8859-1":   charmap.ISO8859_1,
	"latin1":       charmap.ISO8859_1,
	"iso-8859-13":  charmap.ISO8859_13,
	"latin7":       charmap.ISO8859_13,
	"iso-8859-15":  charmap.ISO8859_15,
	"latin9":       charmap.ISO8859_15,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
	"windows-1257": charmap.Windows1257,
	"cp1257":       charmap.Windows1257,
}

// LookupEncoding resolves an encoding name (case-insensitive).
// A nil encoding with a nil error means UTF-8.
func LookupEncoding(name string) (encoding.Encoding, error) {
	enc, ok := encodings[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("encoding %q: %w", name, domain.ErrEncoding)
	}
	return enc, nil
}

// decodingReader wraps r so reads yield UTF-8. A nil enc returns r unchanged.
func decodingReader(r io.Reader, enc encoding.Encoding) io.Reader {
	if enc == nil {
		return r
	}
	return transform.NewReader(r, enc.NewDecoder())
}
