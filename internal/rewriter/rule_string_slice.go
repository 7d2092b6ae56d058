package rewriter

import "github.com/killvxk/aura/internal/astnode"

// StringSliceRule folds a raw Mapping tagged "Subscript" whose "value"
// child is a String into the String produced by slicing it with
// [lower:upper:step] semantics, including negative indices and a negative
// step. This rule fires on the generic Mapping shape, before any
// conversion stage would have lifted it into a typed Subscript node.
func StringSliceRule() Rule {
	return func(ctx *Context) bool {
		m, ok := ctx.Node.(*astnode.Mapping)
		if !ok || m.Type != "Subscript" {
			return false
		}
		valField, ok := m.Get("value")
		if !ok {
			return false
		}
		str, ok := valField.(*astnode.String)
		if !ok {
			return false
		}

		sliceField, ok := m.Get("slice")
		if !ok {
			return false
		}
		sliceMap, ok := sliceField.(*astnode.Mapping)
		if !ok {
			return false
		}

		runes := []rune(str.Value)
		length := len(runes)

		lower, hasLower := numberField(sliceMap, "lower")
		upper, hasUpper := numberField(sliceMap, "upper")
		step, hasStep := numberField(sliceMap, "step")
		if !hasStep {
			step = 1
		}
		if step == 0 {
			return false
		}
		if !hasLower {
			if step > 0 {
				lower = 0
			} else {
				lower = length - 1
			}
		}
		if !hasUpper {
			if step > 0 {
				upper = length
			} else {
				upper = -length - 1
			}
		}

		result := sliceRunes(runes, lower, upper, step)
		ctx.Replace(astnode.NewString(string(result), m.Line()))
		return true
	}
}

func numberField(m *astnode.Mapping, key string) (int, bool) {
	v, ok := m.Get(key)
	if !ok {
		return 0, false
	}
	n, ok := v.(*astnode.Number)
	if !ok {
		return 0, false
	}
	return int(n.Value), true
}

// sliceRunes applies [lower:upper:step] slice semantics: negative indices
// count from the end, and a negative step walks the sequence backwards.
// Out-of-range indices are clamped rather than erroring.
func sliceRunes(items []rune, lower, upper, step int) []rune {
	length := len(items)
	normalize := func(i, defaultLow, defaultHigh int) int {
		if i < 0 {
			i += length
		}
		if i < defaultLow {
			i = defaultLow
		}
		if i > defaultHigh {
			i = defaultHigh
		}
		return i
	}

	var out []rune
	if step > 0 {
		lo := normalize(lower, 0, length)
		hi := normalize(upper, 0, length)
		for i := lo; i < hi; i += step {
			out = append(out, items[i])
		}
	} else {
		lo := normalize(lower, -1, length-1)
		hi := normalize(upper, -1, length-1)
		for i := lo; i > hi; i += step {
			out = append(out, items[i])
		}
	}
	return out
}
