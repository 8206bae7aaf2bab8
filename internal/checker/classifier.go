package checker

import (
	"github.com/mernst/require-javadoc/internal/syntax"
)

// Kind tags the declaration forms the walker distinguishes.
type Kind int

const (
	// KindType covers classes, interfaces, enums, records and annotation
	// types; they all follow the same documentation rule.
	KindType Kind = iota
	KindConstructor
	KindMethod
	KindField
	KindEnumConstant
	KindAnnotationMember
	KindPackage
)

// Declaration is the walker's view of one syntax node that may require
// documentation.
type Declaration struct {
	Kind        Kind
	Node        *syntax.Node
	Name        string
	Private     bool
	Annotations []string       // simple or qualified annotation names
	Params      []string       // formal parameter names, in order
	ReturnType  *syntax.Node   // methods only; nil for constructors
	Body        *syntax.Node   // nil for abstract and interface methods
	Declarators []*syntax.Node // fields: one variable_declarator per name
}

// IsOverride reports whether the declaration carries @Override. Only the
// simple and the fully qualified spelling count; an annotation that merely
// ends in "Override" does not.
func (d *Declaration) IsOverride() bool {
	for _, a := range d.Annotations {
		if a == "Override" || a == "java.lang.Override" {
			return true
		}
	}
	return false
}

// Classify extracts the declaration form of a node. It returns nil for
// nodes that are not declarations (statements, expressions, bodies); the
// walker recurses through those untouched.
func Classify(n *syntax.Node) *Declaration {
	switch n.Kind() {
	case "class_declaration", "interface_declaration", "enum_declaration",
		"record_declaration", "annotation_type_declaration":
		// Record header components are parameters, not members, so a
		// record is classified like any other type.
		return &Declaration{
			Kind:        KindType,
			Node:        n,
			Name:        fieldText(n, "name"),
			Private:     hasModifier(n, "private"),
			Annotations: annotationNames(n),
		}

	case "constructor_declaration":
		return &Declaration{
			Kind:        KindConstructor,
			Node:        n,
			Name:        fieldText(n, "name"),
			Private:     hasModifier(n, "private"),
			Annotations: annotationNames(n),
			Params:      paramNames(n),
			Body:        n.ChildByField("body"),
		}

	case "method_declaration":
		return &Declaration{
			Kind:        KindMethod,
			Node:        n,
			Name:        fieldText(n, "name"),
			Private:     hasModifier(n, "private"),
			Annotations: annotationNames(n),
			Params:      paramNames(n),
			ReturnType:  n.ChildByField("type"),
			Body:        n.ChildByField("body"),
		}

	// Interface and annotation-type constants parse as their own kind but
	// carry the same declarator list as fields.
	case "field_declaration", "constant_declaration":
		d := &Declaration{
			Kind:        KindField,
			Node:        n,
			Private:     hasModifier(n, "private"),
			Annotations: annotationNames(n),
		}
		for _, c := range n.NamedChildren() {
			if c.Kind() == "variable_declarator" {
				d.Declarators = append(d.Declarators, c)
			}
		}
		return d

	case "enum_constant":
		return &Declaration{
			Kind:        KindEnumConstant,
			Node:        n,
			Name:        fieldText(n, "name"),
			Annotations: annotationNames(n),
		}

	case "annotation_type_element_declaration":
		return &Declaration{
			Kind:        KindAnnotationMember,
			Node:        n,
			Name:        fieldText(n, "name"),
			Annotations: annotationNames(n),
		}

	case "package_declaration":
		return &Declaration{
			Kind: KindPackage,
			Node: n,
			Name: packageName(n),
		}
	}
	return nil
}

func fieldText(n *syntax.Node, field string) string {
	if c := n.ChildByField(field); c != nil {
		return c.Text()
	}
	return ""
}

// hasModifier reports whether the declaration carries the given modifier
// keyword. Keywords are anonymous tokens under the "modifiers" child, so
// the scan goes over all children, not just named ones.
func hasModifier(n *syntax.Node, keyword string) bool {
	for _, c := range n.Children() {
		if c.Kind() != "modifiers" {
			continue
		}
		for _, m := range c.Children() {
			if m.Kind() == keyword {
				return true
			}
		}
	}
	return false
}

func annotationNames(n *syntax.Node) []string {
	var names []string
	for _, c := range n.Children() {
		if c.Kind() != "modifiers" {
			continue
		}
		for _, m := range c.Children() {
			switch m.Kind() {
			case "marker_annotation", "annotation":
				if name := m.ChildByField("name"); name != nil {
					names = append(names, name.Text())
				}
			}
		}
	}
	return names
}

// paramNames returns the declared parameter names in order. A varargs
// parameter counts like any other; the receiver parameter of an instance
// method does not count at all.
func paramNames(n *syntax.Node) []string {
	params := n.ChildByField("parameters")
	if params == nil {
		return nil
	}
	var names []string
	for _, p := range params.NamedChildren() {
		switch p.Kind() {
		case "formal_parameter":
			if name := p.ChildByField("name"); name != nil {
				names = append(names, name.Text())
			}
		case "spread_parameter":
			for _, c := range p.NamedChildren() {
				if c.Kind() == "variable_declarator" {
					if name := c.ChildByField("name"); name != nil {
						names = append(names, name.Text())
					}
				}
			}
		}
	}
	return names
}

// packageName returns the dotted name of a package declaration, skipping
// any package annotations.
func packageName(n *syntax.Node) string {
	for _, c := range n.NamedChildren() {
		switch c.Kind() {
		case "scoped_identifier", "identifier":
			return c.Text()
		}
	}
	return ""
}
