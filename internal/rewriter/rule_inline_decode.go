package rewriter

import (
	"strings"

	"github.com/killvxk/aura/internal/astnode"
)

// InlineDecodeRule folds a Call of the shape
// `<String|Bytes>.decode(<codec name>, ...)` into the decoded literal. A
// malformed input or unrecognized codec name leaves the rule inapplicable
// rather than erroring — rule-local failures never abort traversal. A
// zero-argument `.decode()` defaults to the "utf-8" codec. The binary codecs
// (base64, base32, base16/hex, zlib, ascii85) yield a Bytes literal; the
// text codecs yield a String, or Bytes if the output is not valid UTF-8.
func InlineDecodeRule() Rule {
	return func(ctx *Context) bool {
		call, ok := ctx.Node.(*astnode.Call)
		if !ok {
			return false
		}
		attr, ok := call.Callee.(*astnode.Attribute)
		if !ok || attr.Attr != "decode" {
			return false
		}

		var raw []byte
		switch src := attr.Source.(type) {
		case *astnode.String:
			raw = []byte(src.Value)
		case *astnode.Bytes:
			raw = src.Value
		default:
			return false
		}

		codecName := "utf-8"
		if call.Args != nil && len(call.Args.Items) > 0 {
			codecArg, ok := call.Args.Items[0].(*astnode.String)
			if !ok {
				return false
			}
			for _, a := range call.Args.Items {
				if _, ok := a.(*astnode.String); !ok {
					return false
				}
			}
			codecName = codecArg.Value
		}

		decoded, err := decodeCodec(codecName, raw)
		if err != nil {
			return false
		}

		switch strings.ToLower(codecName) {
		case "base64", "base32", "base16", "hex", "zlib", "ascii85":
			ctx.Replace(astnode.NewBytes(decoded, call.Line()))
			return true
		}
		if isValidUTF8(decoded) {
			ctx.Replace(astnode.NewString(string(decoded), call.Line()))
		} else {
			ctx.Replace(astnode.NewBytes(decoded, call.Line()))
		}
		return true
	}
}
