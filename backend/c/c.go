// Package c lowers an ir.Forest to C99 source, the second reference
// demonstrator backend named by SPEC_FULL.md §4.4.
package c

import (
	"fmt"
	"strings"

	"github.com/viant/ignis/backend"
	"github.com/viant/ignis/datatype"
	"github.com/viant/ignis/ir"
)

// Emitter renders one ir.Forest into C source, one Target per file path.
type Emitter struct{}

// New constructs a C Emitter.
func New() *Emitter { return &Emitter{} }

var _ backend.Emitter = (*Emitter)(nil)

// Emit implements backend.Emitter.
func (e *Emitter) Emit(forest ir.Forest) ([]*backend.Target, error) {
	targets := make([]*backend.Target, 0, len(forest))
	for _, path := range forest.Paths() {
		w := &writer{}
		w.preamble()
		for _, node := range forest[path] {
			w.topLevel(node)
		}
		targets = append(targets, &backend.Target{Path: cPath(path), Source: []byte(w.buf.String())})
	}
	return targets, nil
}

func cPath(path string) string {
	if strings.HasSuffix(path, ".ign") {
		return strings.TrimSuffix(path, ".ign") + ".c"
	}
	return path + ".c"
}

type writer struct {
	buf    strings.Builder
	indent int
}

func (w *writer) preamble() {
	w.line("#include <stdio.h>")
	w.line("#include <stdbool.h>")
	w.line("")
}

func (w *writer) line(format string, args ...any) {
	w.buf.WriteString(strings.Repeat("    ", w.indent))
	fmt.Fprintf(&w.buf, format, args...)
	w.buf.WriteString("\n")
}

func (w *writer) topLevel(node ir.Node) {
	switch n := node.(type) {
	case *ir.Function:
		w.function(n)
	case *ir.Class:
		w.class(n)
	case *ir.Variable:
		w.line("%s %s = %s;", cType(n.Type), n.Name, w.expr(n.Value))
	case *ir.Import:
		// The import is recorded as a comment only: no #include directive
		// is emitted, and calls to imported functions are rendered as plain
		// calls by name.
		w.line("// requires %s", n.Path)
	}
}

func (w *writer) function(f *ir.Function) {
	if f.Metadata.IsExtern {
		return
	}
	params := make([]string, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		params = append(params, cType(p.Type)+" "+p.Name)
	}
	static := "static "
	if f.Metadata.IsExported {
		static = ""
	}
	w.line("%s%s %s(%s) {", static, cType(f.ReturnType), f.Name, strings.Join(params, ", "))
	w.indent++
	if f.Body != nil {
		for _, stmt := range f.Body.Instructions {
			w.stmtLine(stmt)
		}
	}
	w.indent--
	w.line("}")
	w.line("")
}

func (w *writer) class(c *ir.Class) {
	w.line("typedef struct %s {", c.Name)
	w.indent++
	for _, prop := range c.Properties {
		w.line("%s %s;", cType(prop.Type), prop.Name)
	}
	w.indent--
	w.line("} %s;", c.Name)
	w.line("")
	for _, method := range c.Methods {
		w.method(c, method)
	}
}

func (w *writer) method(c *ir.Class, m *ir.Function) {
	if isConstructorMethod(c, m) {
		params := make([]string, 0, len(m.Parameters))
		for _, p := range m.Parameters {
			params = append(params, cType(p.Type)+" "+p.Name)
		}
		w.line("%s %s_new(%s) {", c.Name, c.Name, strings.Join(params, ", "))
		w.indent++
		w.line("%s self;", c.Name)
		if m.Body != nil {
			for _, stmt := range m.Body.Instructions {
				w.stmtLine(stmt)
			}
		}
		w.line("return self;")
		w.indent--
		w.line("}")
		w.line("")
		return
	}
	params := make([]string, 0, len(m.Parameters)+1)
	params = append(params, c.Name+" *self")
	for _, p := range m.Parameters {
		params = append(params, cType(p.Type)+" "+p.Name)
	}
	w.line("%s %s_%s(%s) {", cType(m.ReturnType), c.Name, m.Name, strings.Join(params, ", "))
	w.indent++
	if m.Body != nil {
		for _, stmt := range m.Body.Instructions {
			w.stmtLine(stmt)
		}
	}
	w.indent--
	w.line("}")
	w.line("")
}

func isConstructorMethod(c *ir.Class, m *ir.Function) bool { return m.Name == c.Name }

func (w *writer) stmtLine(node ir.Node) {
	switch n := node.(type) {
	case nil:
		return
	case *ir.Variable:
		if n.Value == nil {
			w.line("%s %s;", cType(n.Type), n.Name)
			return
		}
		w.line("%s %s = %s;", cType(n.Type), n.Name, w.expr(n.Value))
	case *ir.Assign:
		w.line("%s = %s;", n.Name, w.expr(n.Value))
	case *ir.Return:
		if n.Value == nil {
			w.line("return;")
			return
		}
		w.line("return %s;", w.expr(n.Value))
	case *ir.If:
		w.line("if (%s) {", w.expr(n.Condition))
		w.indent++
		w.stmtBlock(n.ThenBranch)
		w.indent--
		if n.ElseBranch != nil {
			w.line("} else {")
			w.indent++
			w.stmtBlock(n.ElseBranch)
			w.indent--
		}
		w.line("}")
	case *ir.While:
		w.line("while (%s) {", w.expr(n.Condition))
		w.indent++
		w.stmtBlock(n.Body)
		w.indent--
		w.line("}")
	case *ir.ForIn:
		w.line("for (int __i = 0; __i < (int)(sizeof(%s)/sizeof((%s)[0])); __i++) {", w.expr(n.Iterable), w.expr(n.Iterable))
		w.indent++
		w.line("%s %s = %s[__i];", cType(n.Variable.Type), n.Variable.Name, w.expr(n.Iterable))
		w.stmtBlock(n.Body)
		w.indent--
		w.line("}")
	case *ir.Break:
		w.line("break;")
	case *ir.Continue:
		w.line("continue;")
	case *ir.Block:
		w.stmtBlock(n)
	case *ir.IndexSet:
		w.line("%s[%s] = %s;", w.expr(n.Object), w.expr(n.At), w.expr(n.Value))
	case *ir.Set:
		w.line("%s.%s = %s;", w.expr(n.Object), n.Name, w.expr(n.Value))
	default:
		w.line("%s;", w.expr(node))
	}
}

func (w *writer) stmtBlock(node ir.Node) {
	if block, ok := node.(*ir.Block); ok {
		for _, stmt := range block.Instructions {
			w.stmtLine(stmt)
		}
		return
	}
	w.stmtLine(node)
}

func (w *writer) expr(node ir.Node) string {
	switch n := node.(type) {
	case nil:
		return "0"
	case *ir.Literal:
		return cLiteral(n)
	case *ir.Variable:
		return n.Name
	case *ir.Binary:
		return fmt.Sprintf("(%s %s %s)", w.expr(n.Left), binaryOperator(n.Op), w.expr(n.Right))
	case *ir.Unary:
		return fmt.Sprintf("(%s%s)", unaryOperator(n.Op), w.expr(n.Right))
	case *ir.Logical:
		return fmt.Sprintf("(%s %s %s)", w.expr(n.Left), logicalOperator(n.Op), w.expr(n.Right))
	case *ir.Ternary:
		return fmt.Sprintf("(%s ? %s : %s)", w.expr(n.Condition), w.expr(n.ThenBranch), w.expr(n.ElseBranch))
	case *ir.Call:
		return w.call(n)
	case *ir.Array:
		parts := make([]string, 0, len(n.Elements))
		for _, el := range n.Elements {
			parts = append(parts, w.expr(el))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case *ir.Get:
		return fmt.Sprintf("%s.%s", w.expr(n.Object), n.Name)
	case *ir.Index:
		return fmt.Sprintf("%s[%s]", w.expr(n.Object), w.expr(n.At))
	case *ir.ClassInstance:
		args := make([]string, 0, len(n.ConstructorArgs))
		for _, a := range n.ConstructorArgs {
			args = append(args, w.expr(a))
		}
		return fmt.Sprintf("%s_new(%s)", n.Class.Name, strings.Join(args, ", "))
	default:
		return ""
	}
}

func (w *writer) call(n *ir.Call) string {
	args := make([]string, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		args = append(args, w.expr(a))
	}
	joined := strings.Join(args, ", ")
	function, isFunction := n.Callee.(*ir.Function)
	if !isFunction {
		return fmt.Sprintf("%s(%s)", w.expr(n.Callee), joined)
	}
	switch function.Name {
	case "println":
		return fmt.Sprintf("printf(\"%%s\\n\", %s)", joined)
	case "toString":
		return joined
	}
	return fmt.Sprintf("%s(%s)", function.Name, joined)
}

func cLiteral(n *ir.Literal) string {
	if n.Type.Kind == datatype.Scalar && n.Type.Primitive == datatype.StringP {
		return fmt.Sprintf("%q", n.Value)
	}
	if n.Type.Kind == datatype.Scalar && n.Type.Primitive == datatype.NullP {
		return "NULL"
	}
	if n.Value == nil {
		return "0"
	}
	return fmt.Sprintf("%v", n.Value)
}

func cType(t datatype.DataType) string {
	switch t.Kind {
	case datatype.Scalar:
		switch t.Primitive {
		case datatype.IntP:
			return "int"
		case datatype.FloatP:
			return "double"
		case datatype.BooleanP:
			return "bool"
		case datatype.StringP:
			return "const char*"
		case datatype.CharP:
			return "char"
		case datatype.VoidP:
			return "void"
		default:
			return "void*"
		}
	case datatype.Array:
		if t.Element != nil {
			return cType(*t.Element) + "[]"
		}
		return "void*[]"
	case datatype.ClassType:
		return t.Name
	default:
		return "void*"
	}
}

func binaryOperator(op ir.InstructionType) string {
	switch op {
	case ir.Add:
		return "+"
	case ir.Sub:
		return "-"
	case ir.Mul:
		return "*"
	case ir.Div:
		return "/"
	case ir.Mod:
		return "%"
	case ir.Equal:
		return "=="
	case ir.NotEqual:
		return "!="
	case ir.Less:
		return "<"
	case ir.LessEqual:
		return "<="
	case ir.Greater:
		return ">"
	case ir.GreaterEqual:
		return ">="
	default:
		return "?"
	}
}

func logicalOperator(op ir.InstructionType) string {
	if op == ir.And {
		return "&&"
	}
	return "||"
}

func unaryOperator(op ir.InstructionType) string {
	if op == ir.Not {
		return "!"
	}
	return "-"
}
