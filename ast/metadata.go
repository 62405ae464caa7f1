package ast

// VariableMetadata carries the flag bundle SPEC_FULL.md §3.4 requires on
// every variable occurrence, AST or IR. IsDeclaration marks the defining
// occurrence; the analyzer flips it to false when it rewrites a read/use
// occurrence it resolves back to that declaration.
type VariableMetadata struct {
	IsMutable     bool
	IsReference   bool
	IsParameter   bool
	IsFunction    bool
	IsClass       bool
	IsDeclaration bool
	IsStatic      bool
	IsPublic      bool
	IsConstructor bool
}
