package checker

import (
	"path/filepath"

	"github.com/mernst/require-javadoc/internal/domain"
	"github.com/mernst/require-javadoc/internal/logger"
	"github.com/mernst/require-javadoc/internal/syntax"
)

// Walker traverses one parsed file and accumulates findings in visit
// order. Skips come in two strengths: filtered declarations abandon their
// whole subtree, while kind toggles and @Override only suppress the
// finding and still descend into nested declarations.
type Walker struct {
	filters  *Filters
	log      logger.Logger
	path     string
	findings []domain.Finding
}

// NewWalker returns a walker for one file. The path is only recorded into
// findings, never opened.
func NewWalker(filters *Filters, log logger.Logger, path string) *Walker {
	return &Walker{filters: filters, log: log, path: path}
}

// Walk checks a compilation unit and returns the findings in visit order.
// A file whose package name is filtered is not checked at all.
func (w *Walker) Walk(root *syntax.Node) []domain.Finding {
	var pkg *syntax.Node
	for _, c := range root.NamedChildren() {
		if c.Kind() == "package_declaration" {
			pkg = c
			break
		}
	}
	if pkg != nil {
		name := packageName(pkg)
		if w.filters.SkipName(name) {
			return w.findings
		}
		if filepath.Base(w.path) == "package-info.java" &&
			!HasDocumentation(pkg) && !HasDocumentation(root) {
			w.report(pkg, name)
		}
	}
	w.log.Log("Visiting compilation unit")
	w.recurse(root)
	return w.findings
}

func (w *Walker) recurse(n *syntax.Node) {
	for _, c := range n.NamedChildren() {
		w.walk(c)
	}
}

func (w *Walker) walk(n *syntax.Node) {
	if n.IsComment() {
		return
	}
	d := Classify(n)
	if d == nil {
		w.recurse(n)
		return
	}

	switch d.Kind {
	case KindPackage:
		// Handled by Walk before traversal starts.

	case KindType:
		if w.skipPrivate(d) || w.filters.SkipName(d.Name) {
			return
		}
		w.log.Logf("Visiting %s %s\n", typeTraceWord(n.Kind()), d.Name)
		if !w.filters.Opts.DontRequireType && !HasDocumentation(n) {
			w.report(n, d.Name)
		}
		w.recurse(n)

	case KindConstructor:
		if w.skipPrivate(d) {
			return
		}
		if w.filters.Opts.DontRequireNoargConstructor && len(d.Params) == 0 {
			return
		}
		if w.filters.SkipName(d.Name) {
			return
		}
		w.log.Logf("Visiting constructor %s\n", d.Name)
		if !w.filters.Opts.DontRequireMethod && !HasDocumentation(n) {
			w.report(n, d.Name)
		}
		w.recurse(n)

	case KindMethod:
		if w.skipPrivate(d) {
			return
		}
		if w.filters.Opts.DontRequireTrivialProperties && IsTrivialAccessor(d) {
			w.log.Logf("skipping trivial property method %s\n", d.Name)
			return
		}
		if w.filters.SkipName(d.Name) {
			return
		}
		w.log.Logf("Visiting method %s\n", d.Name)
		if !w.filters.Opts.DontRequireMethod && !d.IsOverride() && !HasDocumentation(n) {
			w.report(n, d.Name)
		}
		w.recurse(n)

	case KindField:
		if w.skipPrivate(d) {
			return
		}
		if len(d.Declarators) == 0 {
			return
		}
		w.log.Logf("Visiting field %s\n", declaratorName(d.Declarators[0]))
		// One documentation check covers every name the declaration
		// introduces; each undocumented name gets its own finding.
		documented := HasDocumentation(n)
		shouldRequire := false
		for _, vd := range d.Declarators {
			name := declaratorName(vd)
			if name == "serialVersionUID" {
				continue
			}
			if w.filters.SkipName(name) {
				continue
			}
			shouldRequire = true
			if !w.filters.Opts.DontRequireField && !documented {
				w.report(vd, name)
			}
		}
		if shouldRequire {
			w.recurse(n)
		}

	case KindEnumConstant:
		if w.filters.SkipName(d.Name) {
			return
		}
		w.log.Logf("Visiting enum constant %s\n", d.Name)
		if !w.filters.Opts.DontRequireField && !HasDocumentation(n) {
			w.report(n, d.Name)
		}
		w.recurse(n)

	case KindAnnotationMember:
		if w.filters.SkipName(d.Name) {
			return
		}
		w.log.Logf("Visiting annotation member %s\n", d.Name)
		if !w.filters.Opts.DontRequireMethod && !HasDocumentation(n) {
			w.report(n, d.Name)
		}
		w.recurse(n)
	}
}

func (w *Walker) skipPrivate(d *Declaration) bool {
	return w.filters.Opts.DontRequirePrivate && d.Private
}

func (w *Walker) report(n *syntax.Node, name string) {
	pos := n.Start()
	w.findings = append(w.findings, domain.Finding{
		File:   w.path,
		Line:   pos.Line,
		Column: pos.Column,
		Name:   name,
	})
}

func typeTraceWord(kind string) string {
	switch kind {
	case "enum_declaration":
		return "enum"
	case "record_declaration":
		return "record"
	case "annotation_type_declaration":
		return "annotation"
	}
	return "type"
}

func declaratorName(vd *syntax.Node) string {
	if name := vd.ChildByField("name"); name != nil {
		return name.Text()
	}
	return ""
}
