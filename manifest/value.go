package manifest

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// FromCtyValue converts an HCL-evaluated value into its native Go
// equivalent: string, float64, bool, []any for sequences, and
// map[string]any for maps and objects. Null and absent values convert
// to nil.
func FromCtyValue(v cty.Value) (any, error) {
	if v == cty.NilVal || v.IsNull() {
		return nil, nil
	}
	if !v.IsKnown() {
		return nil, fmt.Errorf("value is not known")
	}

	t := v.Type()
	switch {
	case t.Equals(cty.String):
		return v.AsString(), nil

	case t.Equals(cty.Number):
		f, _ := v.AsBigFloat().Float64()
		return f, nil

	case t.Equals(cty.Bool):
		return v.True(), nil

	case t.IsTupleType() || t.IsListType() || t.IsSetType():
		out := make([]any, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			g, err := FromCtyValue(ev)
			if err != nil {
				return nil, err
			}
			out = append(out, g)
		}
		return out, nil

	case t.IsObjectType():
		out := make(map[string]any, len(t.AttributeTypes()))
		for name := range t.AttributeTypes() {
			g, err := FromCtyValue(v.GetAttr(name))
			if err != nil {
				return nil, err
			}
			out[name] = g
		}
		return out, nil

	case t.IsMapType():
		out := make(map[string]any, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			kv, ev := it.Element()
			g, err := FromCtyValue(ev)
			if err != nil {
				return nil, err
			}
			out[kv.AsString()] = g
		}
		return out, nil
	}

	return nil, fmt.Errorf("unsupported value type %s", t.FriendlyName())
}
