package plan

import (
	"fmt"
	"strings"
)

// Stringify renders p as indented text, one operator per line, children
// indented four spaces deeper than their parent.
func Stringify(p Plan) string {
	var b strings.Builder
	stringify(&b, p, 0)
	return strings.TrimRight(b.String(), "\n")
}

func stringify(b *strings.Builder, p Plan, depth int) {
	indent := strings.Repeat("    ", depth)
	fmt.Fprintf(b, "%s%s\n", indent, describe(p))
	for _, child := range p.Children() {
		stringify(b, child, depth+1)
	}
}

func describe(p Plan) string {
	switch n := p.(type) {
	case *Get:
		return fmt.Sprintf("Get: %s.%s", n.Schema, n.Table)
	case *Filter:
		return "Filter:"
	case *Map:
		return "Map:"
	case *Project:
		return "Project:"
	case *Join:
		return "Join:"
	case *Aggregate:
		return "Aggregate:"
	case *Explain:
		return "Explain:"
	case *Use:
		return fmt.Sprintf("Use: %s", n.Schema)
	case *DDL:
		return "DDL:"
	case *DML:
		return "DML:"
	default:
		return "?"
	}
}
