package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/tfgraph/internal/config"
)

// renderer turns hclsyntax expressions into the generic value union. It holds
// the file's source bytes so non-static expressions can be rendered as the
// text the author wrote.
type renderer struct {
	src []byte
}

// body renders every attribute of a block body, then groups nested blocks by
// type into tuples of objects, mirroring the shape the graph package expects
// for recursive reference scanning.
func (r *renderer) body(b *hclsyntax.Body) config.Body {
	out := make(config.Body, len(b.Attributes)+len(b.Blocks))

	for name, attr := range b.Attributes {
		out[name] = r.value(attr.Expr)
	}

	grouped := make(map[string][]cty.Value)
	for _, blk := range b.Blocks {
		grouped[blk.Type] = append(grouped[blk.Type], r.blockValue(blk))
	}
	for typ, vals := range grouped {
		out[typ] = cty.TupleVal(vals)
	}

	return out
}

// blockValue renders a nested block as an object, nesting one object level
// per label so labeled blocks keep their addressing structure.
func (r *renderer) blockValue(blk *hclsyntax.Block) cty.Value {
	val := cty.ObjectVal(r.body(blk.Body))
	for i := len(blk.Labels) - 1; i >= 0; i-- {
		val = cty.ObjectVal(map[string]cty.Value{blk.Labels[i]: val})
	}
	return val
}

// value renders one expression. Static expressions evaluate; everything else
// becomes a string carrying the expression's source text, with interpolation
// delimiters added where the syntax did not already include them.
func (r *renderer) value(expr hclsyntax.Expression) cty.Value {
	switch e := expr.(type) {
	case *hclsyntax.LiteralValueExpr:
		return e.Val

	case *hclsyntax.TemplateExpr:
		if e.IsStringLiteral() {
			if v, diags := e.Value(nil); !diags.HasErrors() {
				return v
			}
		}
		return cty.StringVal(r.templateText(e))

	case *hclsyntax.TemplateWrapExpr:
		return cty.StringVal("${" + r.sourceText(e.Wrapped) + "}")

	case *hclsyntax.ScopeTraversalExpr:
		return cty.StringVal(r.sourceText(e))

	case *hclsyntax.TupleConsExpr:
		if len(e.Exprs) == 0 {
			return cty.EmptyTupleVal
		}
		vals := make([]cty.Value, 0, len(e.Exprs))
		for _, item := range e.Exprs {
			vals = append(vals, r.value(item))
		}
		return cty.TupleVal(vals)

	case *hclsyntax.ObjectConsExpr:
		attrs := make(map[string]cty.Value, len(e.Items))
		for _, item := range e.Items {
			name, ok := r.objectKey(item.KeyExpr)
			if !ok {
				continue
			}
			attrs[name] = r.value(item.ValueExpr)
		}
		return cty.ObjectVal(attrs)

	case *hclsyntax.ParenthesesExpr:
		return r.value(e.Expression)

	default:
		if len(expr.Variables()) == 0 {
			if v, diags := expr.Value(nil); !diags.HasErrors() && v != cty.NilVal {
				return v
			}
		}
		return cty.StringVal("${" + r.sourceText(expr) + "}")
	}
}

// templateText reassembles an interpolated template from its parts: literal
// parts verbatim, interpolated parts wrapped back in ${...}.
func (r *renderer) templateText(e *hclsyntax.TemplateExpr) string {
	var text string
	for _, part := range e.Parts {
		if lit, ok := part.(*hclsyntax.LiteralValueExpr); ok && lit.Val.Type() == cty.String {
			text += lit.Val.AsString()
			continue
		}
		text += "${" + r.sourceText(part) + "}"
	}
	return text
}

// objectKey resolves an object constructor key to its attribute name.
func (r *renderer) objectKey(keyExpr hclsyntax.Expression) (string, bool) {
	if name := hcl.ExprAsKeyword(keyExpr); name != "" {
		return name, true
	}
	if v, diags := keyExpr.Value(nil); !diags.HasErrors() && !v.IsNull() && v.Type() == cty.String {
		return v.AsString(), true
	}
	return "", false
}

func (r *renderer) sourceText(expr hclsyntax.Expression) string {
	return string(expr.Range().SliceBytes(r.src))
}
