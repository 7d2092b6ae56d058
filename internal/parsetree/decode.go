// Package parsetree decodes the JSON tree an external parser process
// produces into the engine's astnode.Mapping/astnode.Sequence universe: the
// host invokes an external program that parses a source file and returns a
// tree as a structural mapping. It performs no semantic interpretation —
// that is internal/convert's job — only the JSON-to-Vertex lift: objects
// become Mapping, arrays become Sequence, scalars become String/Number.
//
// Decoding walks the raw token stream rather than unmarshaling into
// map[string]interface{}, because Go's encoding/json does not preserve
// object key order and mapping entries must enqueue in their original
// insertion order for traversal to be deterministic.
package parsetree

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/killvxk/aura/internal/astnode"
)

// Tree is the top-level decoded result: the root node plus the source
// encoding the parser reported, via an encoding field at the root.
type Tree struct {
	Root     astnode.Vertex
	Encoding string
}

// typeKey/lineKey are the discriminator field names the external parser is
// expected to use for each AST-shaped object.
const typeKey = "_type"
const lineKey = "lineno"

// Decode parses raw JSON bytes produced by the external parser and returns
// the resulting Tree. A malformed document is a parse failure and is
// surfaced to the caller, never swallowed.
func Decode(raw []byte) (Tree, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	v, err := decodeNext(dec)
	if err != nil {
		return Tree{}, fmt.Errorf("parsetree: parse failure: %w", err)
	}
	root, ok := v.(*astnode.Mapping)
	if !ok {
		return Tree{}, fmt.Errorf("parsetree: parse failure: root is not an object")
	}
	encoding := ""
	if enc, ok := root.Get("encoding"); ok {
		if s, ok := enc.(*astnode.String); ok {
			encoding = s.Value
		}
	}
	return Tree{Root: root, Encoding: encoding}, nil
}

func decodeNext(dec *json.Decoder) (astnode.Vertex, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (astnode.Vertex, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("parsetree: unexpected delimiter %q", t)
		}
	case string:
		return astnode.NewString(t, 0), nil
	case float64:
		return &astnode.Number{Value: t}, nil
	case bool:
		if t {
			return astnode.NewString("true", 0), nil
		}
		return astnode.NewString("false", 0), nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("parsetree: unsupported token %T", tok)
	}
}

func decodeObject(dec *json.Decoder) (astnode.Vertex, error) {
	type entry struct {
		key string
		val astnode.Vertex
	}
	var entries []entry

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("parsetree: object key is not a string")
		}
		val, err := decodeNext(dec)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry{key: key, val: val})
	}
	if _, err := dec.Token(); err != nil { // consume closing '}'
		return nil, err
	}

	typ := ""
	ln := 0
	for _, e := range entries {
		switch e.key {
		case typeKey:
			if s, ok := e.val.(*astnode.String); ok {
				typ = s.Value
			}
		case lineKey:
			if n, ok := e.val.(*astnode.Number); ok {
				ln = int(n.Value)
			}
		}
	}

	m := astnode.NewMapping(typ, ln)
	for _, e := range entries {
		if e.key == typeKey || e.key == lineKey {
			continue
		}
		m.Set(e.key, e.val)
	}
	return m, nil
}

func decodeArray(dec *json.Decoder) (astnode.Vertex, error) {
	var items []astnode.Vertex
	for dec.More() {
		item, err := decodeNext(dec)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if _, err := dec.Token(); err != nil { // consume closing ']'
		return nil, err
	}
	return astnode.NewSequence(0, items...), nil
}
