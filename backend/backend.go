// Package backend defines the contract every code generator implements:
// take an analyzed ir.Forest and return one Target per source file. It
// carries no concrete generator itself — see backend/lua and backend/c.
package backend

import "github.com/viant/ignis/ir"

// Target is one generated output file.
type Target struct {
	Path   string
	Source []byte
}

// Emitter lowers an ir.Forest to a set of Targets, one per file path the
// forest carries, in source order.
type Emitter interface {
	Emit(forest ir.Forest) ([]*Target, error)
}
