package rewriter

import (
	"unicode/utf8"

	"github.com/killvxk/aura/internal/codec"
)

// decodeCodec is the seam between the rule set and internal/codec, kept as
// its own function so a future rule (or a different codec registry) can be
// substituted without touching rule_inline_decode.go.
func decodeCodec(name string, input []byte) ([]byte, error) {
	return codec.Decode(name, input)
}

func isValidUTF8(b []byte) bool { return utf8.Valid(b) }
