package cli

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/pkg/errors"

	"github.com/kyanite-dev/kyanite/internal/ast"
	"github.com/kyanite-dev/kyanite/internal/diagnostics"
	"github.com/kyanite-dev/kyanite/internal/parser"
	"github.com/kyanite-dev/kyanite/internal/span"
)

// ParseFile parses one file without linting it, returning the tree
// and any parse diagnostics. The grammar is chosen by extension.
func ParseFile(path string) (*span.File, *ast.Program, []diagnostics.Diagnostic, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, errors.Wrapf(err, "read %s", path)
	}
	file := span.NewFile(path, string(src))
	bag := diagnostics.NewBag()
	program := parser.New(file, ast.NewAllocator(), bag, optionsFor(path)).Parse()
	return file, program, bag.Diagnostics(), nil
}

// DumpAST writes an indented tree of the program, one node per line
// with its type, span, and a short detail for leaves that carry one.
func DumpAST(w io.Writer, file *span.File, program *ast.Program) {
	ast.Walk(&dumpVisitor{w: w, file: file}, program)
}

type dumpVisitor struct {
	w     io.Writer
	file  *span.File
	depth int
}

func (v *dumpVisitor) Visit(node ast.Node) ast.Visitor {
	pos := v.file.Position(node.Span().Start)
	fmt.Fprintf(v.w, "%s%s %d:%d%s\n",
		strings.Repeat("  ", v.depth),
		nodeName(node),
		pos.Line, pos.Column,
		nodeDetail(node),
	)
	return &dumpVisitor{w: v.w, file: v.file, depth: v.depth + 1}
}

func nodeName(node ast.Node) string {
	t := reflect.TypeOf(node)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// nodeDetail picks the one field worth seeing inline for a node, the
// way go/ast printers show identifier names next to Ident nodes.
func nodeDetail(node ast.Node) string {
	switch n := node.(type) {
	case *ast.BindingIdentifier:
		return fmt.Sprintf(" %q", n.Name)
	case *ast.IdentifierReference:
		return fmt.Sprintf(" %q", n.Name)
	case *ast.IdentifierName:
		return fmt.Sprintf(" %q", n.Name)
	case *ast.PrivateIdentifier:
		return fmt.Sprintf(" %q", "#"+n.Name)
	case *ast.StringLiteral:
		return fmt.Sprintf(" %q", n.Value)
	case *ast.NumericLiteral:
		return fmt.Sprintf(" %s", n.Raw)
	case *ast.BooleanLiteral:
		return fmt.Sprintf(" %t", n.Value)
	case *ast.RegExpLiteral:
		return fmt.Sprintf(" /%s/%s", n.Pattern, n.Flags)
	case *ast.BinaryExpression:
		return fmt.Sprintf(" %q", n.Operator)
	case *ast.UnaryExpression:
		return fmt.Sprintf(" %q", n.Operator)
	case *ast.AssignmentExpression:
		return fmt.Sprintf(" %q", n.Operator)
	case *ast.LogicalExpression:
		return fmt.Sprintf(" %q", n.Operator)
	}
	return ""
}
