// Package lua lowers an ir.Forest to Lua source, the reference
// demonstrator backend named by SPEC_FULL.md §4.4. `continue` is lowered to
// `goto` and a label, so the output needs Lua 5.2 or later.
package lua

import (
	"fmt"
	"strings"

	"github.com/viant/ignis/backend"
	"github.com/viant/ignis/datatype"
	"github.com/viant/ignis/ir"
)

// Emitter renders one ir.Forest into Lua source, one Target per file path.
type Emitter struct{}

// New constructs a Lua Emitter.
func New() *Emitter { return &Emitter{} }

var _ backend.Emitter = (*Emitter)(nil)

// Emit implements backend.Emitter.
func (e *Emitter) Emit(forest ir.Forest) ([]*backend.Target, error) {
	targets := make([]*backend.Target, 0, len(forest))
	for _, path := range forest.Paths() {
		w := &writer{}
		for _, node := range forest[path] {
			w.topLevel(node)
		}
		targets = append(targets, &backend.Target{Path: luaPath(path), Source: []byte(w.String())})
	}
	return targets, nil
}

func luaPath(path string) string {
	if strings.HasSuffix(path, ".ign") {
		return strings.TrimSuffix(path, ".ign") + ".lua"
	}
	return path + ".lua"
}

// writer accumulates rendered Lua source plus the bookkeeping the control
// flow statements (continue via goto, exports via a trailing return table)
// need across calls.
type writer struct {
	buf       strings.Builder
	indent    int
	exported  []string
	continues int
}

func (w *writer) String() string {
	var out strings.Builder
	out.WriteString(w.buf.String())
	if len(w.exported) > 0 {
		out.WriteString("\nreturn {\n")
		for _, name := range w.exported {
			out.WriteString("  " + name + " = " + name + ",\n")
		}
		out.WriteString("}\n")
	}
	return out.String()
}

func (w *writer) line(format string, args ...any) {
	w.buf.WriteString(strings.Repeat("  ", w.indent))
	fmt.Fprintf(&w.buf, format, args...)
	w.buf.WriteString("\n")
}

// topLevel renders one top-level ir.Node: a Function, Class, Variable or
// Import declaration (source order is already the forest's iteration order).
func (w *writer) topLevel(node ir.Node) {
	switch n := node.(type) {
	case *ir.Function:
		w.function(n)
	case *ir.Class:
		w.class(n)
	case *ir.Variable:
		w.line("%s = %s", n.Name, w.expr(n.Value))
	case *ir.Import:
		// require() is emitted lazily at each call site (is_imported
		// routing); nothing to emit for the import statement itself.
	default:
		w.line("%s", w.stmt(node))
	}
}

func (w *writer) function(f *ir.Function) {
	if f.Metadata.IsExtern {
		// extern functions are provided by the Lua runtime (println -> print,
		// toString -> tostring); no definition to emit.
		return
	}
	params := make([]string, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		params = append(params, p.Name)
	}
	w.line("local function %s(%s)", f.Name, strings.Join(params, ", "))
	w.indent++
	if f.Body != nil {
		for _, stmt := range f.Body.Instructions {
			w.line("%s", w.stmt(stmt))
		}
	}
	w.indent--
	w.line("end")
	if f.Metadata.IsExported {
		w.exported = append(w.exported, f.Name)
	}
}

func (w *writer) class(c *ir.Class) {
	w.line("local %s = {}", c.Name)
	w.line("%s.__index = %s", c.Name, c.Name)
	if c.Superclass != nil {
		w.line("setmetatable(%s, {__index = %s})", c.Name, c.Superclass.Name)
	}
	for _, method := range c.Methods {
		w.method(c, method)
	}
	w.exported = append(w.exported, c.Name)
}

func (w *writer) method(c *ir.Class, m *ir.Function) {
	params := make([]string, 0, len(m.Parameters))
	for _, p := range m.Parameters {
		params = append(params, p.Name)
	}
	if isConstructorMethod(c, m) {
		w.line("function %s.new(%s)", c.Name, strings.Join(params, ", "))
		w.indent++
		w.line("local self = setmetatable({}, %s)", c.Name)
		if m.Body != nil {
			for _, stmt := range m.Body.Instructions {
				w.line("%s", w.stmt(stmt))
			}
		}
		w.line("return self")
		w.indent--
		w.line("end")
		return
	}
	w.line("function %s:%s(%s)", c.Name, m.Name, strings.Join(params, ", "))
	w.indent++
	if m.Body != nil {
		for _, stmt := range m.Body.Instructions {
			w.line("%s", w.stmt(stmt))
		}
	}
	w.indent--
	w.line("end")
}

func isConstructorMethod(c *ir.Class, m *ir.Function) bool { return m.Name == c.Name }

// stmt renders one statement-position IR node as a single logical line
// (possibly containing embedded newlines for nested blocks).
func (w *writer) stmt(node ir.Node) string {
	switch n := node.(type) {
	case nil:
		return ""
	case *ir.Variable:
		if n.Value == nil {
			return fmt.Sprintf("local %s", n.Name)
		}
		return fmt.Sprintf("local %s = %s", n.Name, w.expr(n.Value))
	case *ir.Assign:
		return fmt.Sprintf("%s = %s", n.Name, w.expr(n.Value))
	case *ir.Return:
		if n.Value == nil {
			return "return"
		}
		return fmt.Sprintf("return %s", w.expr(n.Value))
	case *ir.If:
		var b strings.Builder
		b.WriteString(fmt.Sprintf("if %s then\n", w.expr(n.Condition)))
		b.WriteString(w.nestedBlock(n.ThenBranch))
		if n.ElseBranch != nil {
			b.WriteString(strings.Repeat("  ", w.indent) + "else\n")
			b.WriteString(w.nestedBlock(n.ElseBranch))
		}
		b.WriteString(strings.Repeat("  ", w.indent) + "end")
		return b.String()
	case *ir.While:
		var b strings.Builder
		b.WriteString(fmt.Sprintf("while %s do\n", w.expr(n.Condition)))
		b.WriteString(w.nestedBlock(n.Body))
		b.WriteString(strings.Repeat("  ", w.indent) + "end")
		return b.String()
	case *ir.ForIn:
		var b strings.Builder
		b.WriteString(fmt.Sprintf("for _, %s in ipairs(%s) do\n", n.Variable.Name, w.expr(n.Iterable)))
		b.WriteString(w.nestedBlock(n.Body))
		b.WriteString(strings.Repeat("  ", w.indent) + "end")
		return b.String()
	case *ir.Break:
		return "break"
	case *ir.Continue:
		return "goto continue"
	case *ir.Block:
		var lines []string
		for _, stmt := range n.Instructions {
			lines = append(lines, w.stmt(stmt))
		}
		return strings.Join(lines, "\n")
	case *ir.IndexSet:
		return fmt.Sprintf("%s[%s + 1] = %s", w.expr(n.Object), w.expr(n.At), w.expr(n.Value))
	case *ir.Set:
		return fmt.Sprintf("%s.%s = %s", w.expr(n.Object), n.Name, w.expr(n.Value))
	default:
		return w.expr(node)
	}
}

// nestedBlock renders a statement as an indented block body, appending the
// `::continue::` label the goto-based Continue lowering needs whenever the
// block contains one.
func (w *writer) nestedBlock(node ir.Node) string {
	w.indent++
	defer func() { w.indent-- }()
	var body string
	if block, ok := node.(*ir.Block); ok {
		var lines []string
		for _, stmt := range block.Instructions {
			lines = append(lines, strings.Repeat("  ", w.indent)+w.stmt(stmt))
		}
		body = strings.Join(lines, "\n")
	} else {
		body = strings.Repeat("  ", w.indent) + w.stmt(node)
	}
	if strings.Contains(body, "goto continue") {
		body += "\n" + strings.Repeat("  ", w.indent) + "::continue::"
	}
	return body + "\n"
}

// expr renders one expression-position IR node.
func (w *writer) expr(node ir.Node) string {
	switch n := node.(type) {
	case nil:
		return "nil"
	case *ir.Literal:
		return luaLiteral(n)
	case *ir.Variable:
		return n.Name
	case *ir.Binary:
		return fmt.Sprintf("(%s %s %s)", w.expr(n.Left), binaryOperator(n), w.expr(n.Right))
	case *ir.Unary:
		return fmt.Sprintf("(%s%s)", unaryOperator(n.Op), w.expr(n.Right))
	case *ir.Logical:
		return fmt.Sprintf("(%s %s %s)", w.expr(n.Left), logicalOperator(n.Op), w.expr(n.Right))
	case *ir.Ternary:
		return fmt.Sprintf("(%s and %s or %s)", w.expr(n.Condition), w.expr(n.ThenBranch), w.expr(n.ElseBranch))
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
		return fmt.Sprintf("%s[%s + 1]", w.expr(n.Object), w.expr(n.At))
	case *ir.ClassInstance:
		args := make([]string, 0, len(n.ConstructorArgs))
		for _, a := range n.ConstructorArgs {
			args = append(args, w.expr(a))
		}
		return fmt.Sprintf("%s.new(%s)", n.Class.Name, strings.Join(args, ", "))
	default:
		return w.stmt(node)
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
		return fmt.Sprintf("print(%s)", joined)
	case "toString":
		return fmt.Sprintf("tostring(%s)", joined)
	}
	if function.Metadata.IsImported {
		return fmt.Sprintf("require(%q).%s(%s)", function.Name, function.Name, joined)
	}
	return fmt.Sprintf("%s(%s)", function.Name, joined)
}

func luaLiteral(n *ir.Literal) string {
	if n.Type.Kind == datatype.Scalar && n.Type.Primitive == datatype.StringP {
		return fmt.Sprintf("%q", n.Value)
	}
	if n.Value == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", n.Value)
}

func binaryOperator(n *ir.Binary) string {
	if n.Op == ir.Add && n.Type.Kind == datatype.Scalar && n.Type.Primitive == datatype.StringP {
		return ".."
	}
	switch n.Op {
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
		return "~="
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
		return "and"
	}
	return "or"
}

func unaryOperator(op ir.InstructionType) string {
	if op == ir.Not {
		return "not "
	}
	return "-"
}
