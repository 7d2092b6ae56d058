// Encode lowers an astnode.Vertex back into the JSON shape Decode reads,
// for callers (notably pkg/api.Engine.RewriteJSON) that need to hand the
// rewritten tree back to a host process in the same wire format it arrived
// in. Output key order is not meaningful — only Decode's *input* order
// matters for deterministic enqueueing — so this lowers through plain
// map[string]interface{} and lets encoding/json pick the order.
package parsetree

import "github.com/killvxk/aura/internal/astnode"

// Encode serializes v as the discriminated-union JSON object shape Decode
// expects, recursively lowering typed nodes back to their "_type"/"lineno"
// form.
func Encode(v astnode.Vertex) (interface{}, error) {
	return lower(v), nil
}

func lower(v astnode.Vertex) interface{} {
	switch n := v.(type) {
	case nil:
		return nil
	case *astnode.String:
		return n.Value
	case *astnode.Bytes:
		return string(n.Value)
	case *astnode.Number:
		return n.Value
	case *astnode.Var:
		return map[string]interface{}{"_type": "Var", "lineno": n.Ln, "name": n.Name}
	case *astnode.BinOp:
		return map[string]interface{}{
			"_type": "BinOp", "lineno": n.Ln,
			"op": n.Op, "left": lower(n.Left), "right": lower(n.Right),
		}
	case *astnode.Attribute:
		return map[string]interface{}{
			"_type": "Attribute", "lineno": n.Ln,
			"source": lower(n.Source), "attr": n.Attr, "action": n.Action,
		}
	case *astnode.Call:
		m := map[string]interface{}{
			"_type": "Call", "lineno": n.Ln,
			"func": lower(n.Callee), "args": lower(n.Args),
		}
		if n.Kwargs != nil {
			m["kwargs"] = lower(n.Kwargs)
		}
		if n.FullName != "" {
			m["full_name"] = n.FullName
		}
		return m
	case *astnode.Subscript:
		return map[string]interface{}{
			"_type": "Subscript", "lineno": n.Ln,
			"value": lower(n.Target),
			"slice": map[string]interface{}{
				"_type": "Slice", "lineno": n.Ln,
				"lower": lower(n.Lower), "upper": lower(n.Upper), "step": lower(n.Step),
			},
		}
	case *astnode.Import:
		m := map[string]interface{}{"_type": "Import", "lineno": n.Ln}
		for alias, full := range n.Aliases {
			m[alias] = full
		}
		return m
	case *astnode.FunctionDef:
		return map[string]interface{}{
			"_type": "FunctionDef", "lineno": n.Ln,
			"name": n.Name, "params": lower(n.Params), "body": lower(n.Body),
		}
	case *astnode.ClassDef:
		return map[string]interface{}{
			"_type": "ClassDef", "lineno": n.Ln,
			"name": n.Name, "body": lower(n.Body),
		}
	case *astnode.If:
		return map[string]interface{}{
			"_type": "If", "lineno": n.Ln,
			"test": lower(n.Cond), "body": lower(n.Then), "orelse": lower(n.Else),
		}
	case *astnode.Return:
		return map[string]interface{}{"_type": "Return", "lineno": n.Ln, "value": lower(n.Value)}
	case *astnode.Assign:
		return map[string]interface{}{
			"_type": "Assign", "lineno": n.Ln,
			"target": lower(n.Target), "value": lower(n.Value),
		}
	case *astnode.Root:
		return map[string]interface{}{"_type": "Module", "lineno": n.Ln, "body": lower(n.Body)}
	case *astnode.Mapping:
		if n == nil {
			return nil
		}
		m := map[string]interface{}{"_type": n.Type, "lineno": n.Ln}
		for _, key := range n.Order {
			child, _ := n.Get(key)
			m[key] = lower(child)
		}
		return m
	case *astnode.Sequence:
		if n == nil {
			return nil
		}
		items := make([]interface{}, len(n.Items))
		for i, item := range n.Items {
			items[i] = lower(item)
		}
		return items
	default:
		return nil
	}
}
