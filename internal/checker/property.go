package checker

import (
	"strings"
	"unicode"

	"github.com/mernst/require-javadoc/internal/syntax"
)

// returnClass partitions return types as far as accessor detection cares.
type returnClass int

const (
	returnsVoid    returnClass = iota
	returnsBoolean             // the primitive; boxed Boolean does not count
	returnsNonVoid
)

// propertyKind is one recognized accessor shape: a name prefix, an arity,
// a return class, and whether the body negates the property.
type propertyKind struct {
	prefix  string
	params  int
	returns returnClass
	negated bool
}

var (
	propGetter   = propertyKind{prefix: "get", returns: returnsNonVoid}
	propNoPrefix = propertyKind{returns: returnsNonVoid}
	propHas      = propertyKind{prefix: "has", returns: returnsBoolean}
	propIs       = propertyKind{prefix: "is", returns: returnsBoolean}
	propNot      = propertyKind{prefix: "not", returns: returnsBoolean, negated: true}
	propSetter   = propertyKind{prefix: "set", params: 1, returns: returnsVoid}
)

// kindForName picks the accessor shape suggested by the method name.
func kindForName(name string) propertyKind {
	switch {
	case strings.HasPrefix(name, "get"):
		return propGetter
	case strings.HasPrefix(name, "has"):
		return propHas
	case strings.HasPrefix(name, "is"):
		return propIs
	case strings.HasPrefix(name, "not"):
		return propNot
	case strings.HasPrefix(name, "set"):
		return propSetter
	default:
		return propNoPrefix
	}
}

// IsTrivialAccessor reports whether the method is a trivial getter or
// setter: a one-statement body that does nothing but move the property
// named by the method. The prefix-derived interpretation is tried first;
// when it fails, the bare-name getter interpretation gets a second try, so
// that a method getters() returning a field getters still matches.
func IsTrivialAccessor(d *Declaration) bool {
	kind := kindForName(d.Name)
	if kind != propNoPrefix {
		if matchesProperty(d, kind) {
			return true
		}
	}
	return matchesProperty(d, propNoPrefix)
}

func matchesProperty(d *Declaration, kind propertyKind) bool {
	property := propertyName(d.Name, kind)
	return property != "" &&
		hasAccessorSignature(d, kind, property) &&
		hasAccessorBody(d, kind, property)
}

// propertyName derives the property a method of this shape would access,
// or "" when the name does not fit. Prefixed forms require an upper-case
// letter right after the prefix, which is folded to lower case; the
// bare-name form uses the method name as is.
func propertyName(methodName string, kind propertyKind) string {
	rest := strings.TrimPrefix(methodName, kind.prefix)
	if rest == "" {
		return ""
	}
	if kind.prefix == "" {
		return rest
	}
	r := []rune(rest)
	if !unicode.IsUpper(r[0]) {
		return ""
	}
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

func hasAccessorSignature(d *Declaration, kind propertyKind, property string) bool {
	if len(d.Params) != kind.params {
		return false
	}
	if len(d.Params) == 1 && d.Params[0] != property {
		return false
	}
	if d.ReturnType == nil {
		return false
	}
	switch kind.returns {
	case returnsVoid:
		return d.ReturnType.Kind() == "void_type"
	case returnsBoolean:
		return d.ReturnType.Kind() == "boolean_type"
	case returnsNonVoid:
		return d.ReturnType.Kind() != "void_type"
	}
	return false
}

func hasAccessorBody(d *Declaration, kind propertyKind, property string) bool {
	stmt := onlyStatement(d.Body)
	if stmt == nil {
		return false
	}

	if kind == propSetter {
		if stmt.Kind() != "expression_statement" {
			return false
		}
		assign := firstExpression(stmt)
		if assign == nil || assign.Kind() != "assignment_expression" {
			return false
		}
		// Compound operators such as += are not trivial.
		if op := assign.ChildByField("operator"); op == nil || op.Text() != "=" {
			return false
		}
		left := assign.ChildByField("left")
		if left == nil || left.Kind() != "field_access" || !isThisAccess(left, property) {
			return false
		}
		right := assign.ChildByField("right")
		return right != nil && right.Kind() == "identifier" && right.Text() == property
	}

	if stmt.Kind() != "return_statement" {
		return false
	}
	expr := firstExpression(stmt)
	if expr == nil {
		return false
	}
	if kind.negated {
		if expr.Kind() != "unary_expression" {
			return false
		}
		if op := expr.ChildByField("operator"); op == nil || op.Text() != "!" {
			return false
		}
		expr = expr.ChildByField("operand")
		if expr == nil {
			return false
		}
	}
	// Parenthesized forms like `return (foo);` do not match.
	switch expr.Kind() {
	case "identifier":
		return expr.Text() == property
	case "field_access":
		return isThisAccess(expr, property)
	}
	return false
}

// isThisAccess reports whether the field access is `this.<property>`.
func isThisAccess(fa *syntax.Node, property string) bool {
	obj := fa.ChildByField("object")
	fld := fa.ChildByField("field")
	return obj != nil && obj.Kind() == "this" && fld != nil && fld.Text() == property
}

// onlyStatement returns the sole statement of a method body, or nil when
// the body is absent or holds any other number of statements. Comments
// inside the block do not count.
func onlyStatement(body *syntax.Node) *syntax.Node {
	if body == nil {
		return nil
	}
	var only *syntax.Node
	for _, c := range body.NamedChildren() {
		if c.IsComment() {
			continue
		}
		if only != nil {
			return nil
		}
		only = c
	}
	return only
}

// firstExpression returns the expression wrapped by a return or expression
// statement.
func firstExpression(stmt *syntax.Node) *syntax.Node {
	for _, c := range stmt.NamedChildren() {
		if !c.IsComment() {
			return c
		}
	}
	return nil
}
