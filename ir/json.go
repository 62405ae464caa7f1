package ir

import "encoding/json"

// jsonDumper renders a Node tree into plain maps, the Go analogue of the
// original's IRInstructionTrait::to_json default-method-per-variant
// pattern, unified behind the Visitor the same way ast.jsonDumper unifies
// the AST's to_json pair.
type jsonDumper struct{}

// Dump serializes a Forest to indented JSON keyed by file path, ignis's
// counterpart of IRInstruction::display_ir for inspecting a build's IR
// without driving a backend.
func Dump(forest Forest) ([]byte, error) {
	d := &jsonDumper{}
	out := make(map[string]any, len(forest))
	for path, nodes := range forest {
		rendered := make([]any, len(nodes))
		for i, n := range nodes {
			rendered[i] = d.node(n)
		}
		out[path] = rendered
	}
	return json.MarshalIndent(out, "", "  ")
}

func (d *jsonDumper) node(n Node) any {
	if n == nil {
		return nil
	}
	return n.Accept(d)
}

func (d *jsonDumper) nodes(ns []Node) []any {
	out := make([]any, len(ns))
	for i, n := range ns {
		out[i] = d.node(n)
	}
	return out
}

func (d *jsonDumper) variable(v *Variable) any {
	if v == nil {
		return nil
	}
	return d.VisitVariable(v)
}

func (d *jsonDumper) variables(vs []*Variable) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = d.variable(v)
	}
	return out
}

func (d *jsonDumper) with(kind string, fields map[string]any) map[string]any {
	out := map[string]any{"type": kind}
	for k, v := range fields {
		out[k] = v
	}
	return out
}

func (d *jsonDumper) VisitBinary(n *Binary) any {
	return d.with("IRBinary", map[string]any{
		"instruction_type": n.Op.String(),
		"left":             d.node(n.Left),
		"right":            d.node(n.Right),
		"data_type":        n.Type.String(),
	})
}

func (d *jsonDumper) VisitBlock(n *Block) any {
	return d.with("IRBlock", map[string]any{
		"instructions":     d.nodes(n.Instructions),
		"scopes_variables": d.variables(n.ScopeVariables),
	})
}

func (d *jsonDumper) VisitLiteral(n *Literal) any {
	return d.with("IRLiteral", map[string]any{"value": n.Value})
}

func (d *jsonDumper) VisitUnary(n *Unary) any {
	return d.with("IRUnary", map[string]any{
		"instruction_type": n.Op.String(),
		"right":            d.node(n.Right),
		"data_type":        n.Type.String(),
	})
}

func (d *jsonDumper) VisitVariable(n *Variable) any {
	return d.with("IRVariable", map[string]any{
		"name":      n.Name,
		"data_type": n.Type.String(),
		"value":     d.node(n.Value),
		"metadata": map[string]any{
			"is_mutable":     n.Metadata.IsMutable,
			"is_reference":   n.Metadata.IsReference,
			"is_parameter":   n.Metadata.IsParameter,
			"is_function":    n.Metadata.IsFunction,
			"is_class":       n.Metadata.IsClass,
			"is_declaration": n.Metadata.IsDeclaration,
			"is_static":      n.Metadata.IsStatic,
			"is_public":      n.Metadata.IsPublic,
			"is_constructor": n.Metadata.IsConstructor,
		},
	})
}

func (d *jsonDumper) VisitLogical(n *Logical) any {
	return d.with(n.Op.String(), map[string]any{
		"left":  d.node(n.Left),
		"right": d.node(n.Right),
	})
}

func (d *jsonDumper) VisitIf(n *If) any {
	return d.with("IRIf", map[string]any{
		"condition":   d.node(n.Condition),
		"then_branch": d.node(n.ThenBranch),
		"else_branch": d.node(n.ElseBranch),
	})
}

func (d *jsonDumper) VisitWhile(n *While) any {
	return d.with("IRWhile", map[string]any{
		"condition": d.node(n.Condition),
		"body":      d.node(n.Body),
	})
}

func (d *jsonDumper) VisitFunction(n *Function) any {
	var body any
	if n.Body != nil {
		body = d.node(n.Body)
	}
	return d.with("IRFunction", map[string]any{
		"name":        n.Name,
		"parameters":  d.variables(n.Parameters),
		"return_type": n.ReturnType.String(),
		"body":        body,
		"metadata": map[string]any{
			"is_recursive": n.Metadata.IsRecursive,
			"is_exported":  n.Metadata.IsExported,
			"is_imported":  n.Metadata.IsImported,
			"is_extern":    n.Metadata.IsExtern,
			"is_static":    n.Metadata.IsStatic,
			"is_public":    n.Metadata.IsPublic,
		},
	})
}

func (d *jsonDumper) VisitCall(n *Call) any {
	return d.with("IRCall", map[string]any{
		"callee":    d.node(n.Callee),
		"arguments": d.nodes(n.Arguments),
		"data_type": n.Type.String(),
	})
}

func (d *jsonDumper) VisitReturn(n *Return) any {
	return d.with("IRReturn", map[string]any{"value": d.node(n.Value)})
}

func (d *jsonDumper) VisitAssign(n *Assign) any {
	return d.with("IRAssign", map[string]any{"name": n.Name, "value": d.node(n.Value)})
}

func (d *jsonDumper) VisitClass(n *Class) any {
	var super any
	if n.Superclass != nil {
		super = d.VisitClass(n.Superclass)
	}
	methods := make([]any, len(n.Methods))
	for i, m := range n.Methods {
		methods[i] = d.VisitFunction(m)
	}
	return d.with("IRClass", map[string]any{
		"name":       n.Name,
		"properties": d.variables(n.Properties),
		"methods":    methods,
		"superclass": super,
	})
}

func (d *jsonDumper) VisitGet(n *Get) any {
	return d.with("IRGet", map[string]any{
		"name":      n.Name,
		"object":    d.node(n.Object),
		"data_type": n.Type.String(),
	})
}

func (d *jsonDumper) VisitSet(n *Set) any {
	return d.with("IRSet", map[string]any{
		"name":   n.Name,
		"value":  d.node(n.Value),
		"object": d.node(n.Object),
	})
}

func (d *jsonDumper) VisitTernary(n *Ternary) any {
	return d.with("IRTernary", map[string]any{
		"condition":   d.node(n.Condition),
		"then_branch": d.node(n.ThenBranch),
		"else_branch": d.node(n.ElseBranch),
		"data_type":   n.Type.String(),
	})
}

func (d *jsonDumper) VisitForIn(n *ForIn) any {
	return d.with("IRForIn", map[string]any{
		"variable": d.variable(n.Variable),
		"iterable": d.node(n.Iterable),
		"body":     d.node(n.Body),
	})
}

func (d *jsonDumper) VisitArray(n *Array) any {
	return d.with("IRArray", map[string]any{
		"elements":  d.nodes(n.Elements),
		"data_type": n.Type.String(),
	})
}

func (d *jsonDumper) VisitImport(n *Import) any {
	names := make([]string, len(n.Names))
	for i, nm := range n.Names {
		if nm.Alias != "" {
			names[i] = nm.Name + " as " + nm.Alias
		} else {
			names[i] = nm.Name
		}
	}
	return d.with("IRImport", map[string]any{"name": names, "path": n.Path})
}

func (d *jsonDumper) VisitBreak(n *Break) any { return d.with("IRBreak", nil) }

func (d *jsonDumper) VisitContinue(n *Continue) any { return d.with("IRContinue", nil) }

func (d *jsonDumper) VisitClassInstance(n *ClassInstance) any {
	return d.with("IRClassInstance", map[string]any{
		"class":            d.VisitClass(n.Class),
		"name":             n.Name,
		"constructor_args": d.nodes(n.ConstructorArgs),
	})
}

func (d *jsonDumper) VisitIndex(n *Index) any {
	return d.with("IRIndex", map[string]any{
		"object":    d.node(n.Object),
		"at":        d.node(n.At),
		"data_type": n.Type.String(),
	})
}

func (d *jsonDumper) VisitIndexSet(n *IndexSet) any {
	return d.with("IRIndexSet", map[string]any{
		"object":    d.node(n.Object),
		"at":        d.node(n.At),
		"value":     d.node(n.Value),
		"data_type": n.Type.String(),
	})
}
