// Package codec implements the inline-decode table the rewriter's
// inline-decode rule consults: a name such as "base64" or "rot13" maps to a
// decode function. A codec returning an error is treated by the rule as
// "not applicable" and never aborts the traversal.
package codec

import (
	"bytes"
	"compress/zlib"
	"encoding/ascii85"
	"encoding/base32"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Decoder turns an encoded byte sequence into its decoded form.
type Decoder func(input []byte) ([]byte, error)

// registry is the name -> Decoder table, populated in init so codec.Decode
// is safe to call from any goroutine without further setup.
var registry = map[string]Decoder{
	"base64": func(b []byte) ([]byte, error) {
		out := make([]byte, base64.StdEncoding.DecodedLen(len(b)))
		n, err := base64.StdEncoding.Decode(out, b)
		if err != nil {
			return nil, err
		}
		return out[:n], nil
	},
	"base32": func(b []byte) ([]byte, error) {
		out := make([]byte, base32.StdEncoding.DecodedLen(len(b)))
		n, err := base32.StdEncoding.Decode(out, b)
		if err != nil {
			return nil, err
		}
		return out[:n], nil
	},
	"base16": hexDecode,
	"hex":    hexDecode,
	"rot13":  rot13,
	"zlib": func(b []byte) ([]byte, error) {
		r, err := zlib.NewReader(bytes.NewReader(b))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return io.ReadAll(r)
	},
	"ascii85": func(b []byte) ([]byte, error) {
		out := make([]byte, len(b))
		n, _, err := ascii85.Decode(out, b, true)
		if err != nil {
			return nil, err
		}
		return out[:n], nil
	},
	"utf-8": func(b []byte) ([]byte, error) { return b, nil },
	"ascii": func(b []byte) ([]byte, error) {
		for _, c := range b {
			if c > 0x7f {
				return nil, fmt.Errorf("codec: byte %#x outside ascii range", c)
			}
		}
		return b, nil
	},
	"utf-16": func(b []byte) ([]byte, error) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		return dec.Bytes(b)
	},
	"latin-1": func(b []byte) ([]byte, error) {
		dec := charmap.ISO8859_1.NewDecoder()
		return dec.Bytes(b)
	},
}

func hexDecode(b []byte) ([]byte, error) {
	out := make([]byte, hex.DecodedLen(len(b)))
	n, err := hex.Decode(out, b)
	if err != nil {
		return nil, err
	}
	return out[:n], nil
}

func rot13(b []byte) ([]byte, error) {
	out := make([]byte, len(b))
	for i, c := range b {
		switch {
		case c >= 'a' && c <= 'z':
			out[i] = 'a' + (c-'a'+13)%26
		case c >= 'A' && c <= 'Z':
			out[i] = 'A' + (c-'A'+13)%26
		default:
			out[i] = c
		}
	}
	return out, nil
}

// Lookup returns the decoder registered under name (case-insensitive), and
// whether one was found at all. A caller that gets false should treat the
// inline-decode rule as not applicable rather than error.
func Lookup(name string) (Decoder, bool) {
	d, ok := registry[strings.ToLower(name)]
	return d, ok
}

// Decode is a convenience wrapper: look up name and decode input in one
// call, reporting "unknown codec" as an error in the same family as a
// decode failure so callers can treat both uniformly.
func Decode(name string, input []byte) ([]byte, error) {
	d, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("codec: unknown codec %q", name)
	}
	return d(input)
}
