// Package analyzer walks an ast.Statement tree, emits typed ir.Node trees,
// and reports diagnostics, following SPEC_FULL.md §4.3. An Analyzer is
// stateful and not safe for concurrent use — to analyze several files at
// once, construct one Analyzer per file (see analyzer/batch for the
// concurrent helper this invites, SPEC_FULL.md §5).
package analyzer

import (
	"github.com/viant/afs"
	"github.com/viant/ignis/ast"
	"github.com/viant/ignis/diagnostic"
	"github.com/viant/ignis/ir"
)

// Context names the syntactic contexts return/break/continue legality is
// checked against, mirroring the original's AnalyzerContext enum.
type Context int

const (
	ContextFunction Context = iota
	ContextMethod
	ContextClass
	ContextLoop
	ContextSwitch
	ContextMatch
)

func (c Context) String() string {
	switch c {
	case ContextFunction:
		return "Function"
	case ContextMethod:
		return "Method"
	case ContextClass:
		return "Class"
	case ContextLoop:
		return "Loop"
	case ContextSwitch:
		return "Switch"
	case ContextMatch:
		return "Match"
	default:
		return "Unknown"
	}
}

// scope is one lexical level's name -> defined? map. declare sets an entry
// false; define flips it true. A read against false is "declared but not
// yet initialized" and is rejected the same as an absent name.
type scope map[string]bool

// Analyzer is the single-file semantic analysis pass. Construct with New
// and run Analyze once; reuse across files is unsupported (the original's
// guidance in SPEC_FULL.md §5 is one instance per compilation).
type Analyzer struct {
	fs afs.Service

	currentFile string
	forest      ir.Forest
	diagnostics diagnostic.Report

	blockStack      []scope
	scopeVariables  []*ir.Variable
	context         []Context
	currentFunction *ir.Function
	currentClass    *ir.Class

	// resolvedImports caches an already-analyzed import's IR nodes keyed
	// by path, together with the content hash of the source they were
	// built from (a changed hash is a cache miss), so a diamond import is resolved once per
	// Analyzer session (SPEC_FULL.md §4.3 "Resolved-import cache").
	resolvedImports map[string]importResult
	// importStack holds paths currently being resolved, for import-cycle
	// detection (SPEC_FULL.md §4.3, resolving spec.md §9's Open Question).
	importStack []string
}

type importResult struct {
	hash  [32]byte
	nodes []ir.Node
}

// Option configures an Analyzer at construction time, following the
// teacher's functional-options convention (analyzer/option.go).
type Option func(*Analyzer)

// WithFS overrides the afs.Service import resolution reads through.
// Defaults to afs.New() (local disk) when not supplied.
func WithFS(service afs.Service) Option {
	return func(a *Analyzer) { a.fs = service }
}

// New constructs an Analyzer for file, applying opts in order.
func New(file string, opts ...Option) *Analyzer {
	a := &Analyzer{
		currentFile:     file,
		forest:          ir.NewForest(),
		fs:              afs.New(),
		resolvedImports: make(map[string]importResult),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Result is the outcome of analyzing one file: its IR forest (itself plus
// every transitively imported module) and the diagnostics collected along
// the way.
type Result struct {
	Forest      ir.Forest
	Diagnostics diagnostic.Report
}

// Analyze runs the pass over program, emitting nodes into a.forest under
// a.currentFile in source order. A per-declaration failure is recorded and
// analysis continues with the next top-level statement (SPEC_FULL.md §4.3
// "Failure model").
func (a *Analyzer) Analyze(program []ast.Statement) *Result {
	a.beginScope()
	for _, stmt := range program {
		node, err := a.analyzeStmt(stmt)
		if err != nil {
			continue
		}
		if node != nil {
			a.forest.Add(a.currentFile, node)
		}
	}
	a.endScope()
	return &Result{Forest: a.forest, Diagnostics: a.diagnostics}
}

func (a *Analyzer) reportAt(code, message, file string, line, column int, tokenText string) {
	a.diagnostics.Add(diagnostic.New(diagnostic.Error, code, message, file, line, column, tokenText))
}

// --- scope stack ---

// beginScope pushes a copy of the current top scope so nested blocks still
// see outer names (SPEC_FULL.md §4.3 "Scope discipline").
func (a *Analyzer) beginScope() {
	next := make(scope)
	if len(a.blockStack) > 0 {
		for k, v := range a.blockStack[len(a.blockStack)-1] {
			next[k] = v
		}
	}
	a.blockStack = append(a.blockStack, next)
}

func (a *Analyzer) endScope() {
	a.blockStack = a.blockStack[:len(a.blockStack)-1]
}

func (a *Analyzer) topScope() scope {
	if len(a.blockStack) == 0 {
		return nil
	}
	return a.blockStack[len(a.blockStack)-1]
}

func (a *Analyzer) declare(name string) {
	if top := a.topScope(); top != nil {
		top[name] = false
	}
}

func (a *Analyzer) define(name string) {
	if top := a.topScope(); top != nil {
		top[name] = true
	}
}

func (a *Analyzer) isDeclared(name string) bool {
	top := a.topScope()
	if top == nil {
		return false
	}
	_, ok := top[name]
	return ok
}

func (a *Analyzer) isDefined(name string) bool {
	top := a.topScope()
	if top == nil {
		return false
	}
	defined, ok := top[name]
	return ok && defined
}

// lookupVariable searches the most recently declared occurrence first, so a
// nested shadow of an outer name resolves correctly.
func (a *Analyzer) lookupVariable(name string) *ir.Variable {
	for i := len(a.scopeVariables) - 1; i >= 0; i-- {
		if a.scopeVariables[i].Name == name {
			return a.scopeVariables[i]
		}
	}
	return nil
}

// --- context stack ---

func (a *Analyzer) pushContext(c Context) { a.context = append(a.context, c) }
func (a *Analyzer) popContext()           { a.context = a.context[:len(a.context)-1] }

func (a *Analyzer) inContext(targets ...Context) bool {
	for i := len(a.context) - 1; i >= 0; i-- {
		for _, t := range targets {
			if a.context[i] == t {
				return true
			}
		}
	}
	return false
}

// findFunction searches the current file's already-emitted IR for a
// top-level function named name, the Go analogue of the original's
// _find_function_in_ir.
func (a *Analyzer) findFunction(name string) *ir.Function {
	for _, node := range a.forest[a.currentFile] {
		if f, ok := node.(*ir.Function); ok && f.Name == name {
			return f
		}
	}
	return nil
}

func (a *Analyzer) findClass(name string) *ir.Class {
	for _, node := range a.forest[a.currentFile] {
		if c, ok := node.(*ir.Class); ok && c.Name == name {
			return c
		}
	}
	// The class under analysis isn't in the forest yet — VisitClass only
	// adds it once its own Accept call returns — so a method body's
	// this.<property> access has to resolve against currentClass (and its
	// superclass chain) directly instead.
	for c := a.currentClass; c != nil; c = c.Superclass {
		if c.Name == name {
			return c
		}
	}
	return nil
}
