package ir

// Forest is the analyzer's output for a whole compilation unit: one Node
// slice per source file, keyed by the file's import path (SPEC_FULL.md
// §3.6). Backends iterate a Forest rather than a single tree because a
// batch compile (analyzer/batch) produces one per source and import
// resolution pulls more than one file into a single build.
type Forest map[string][]Node

// NewForest returns an empty Forest ready for Add.
func NewForest() Forest {
	return make(Forest)
}

// Add appends nodes under path, preserving source order across repeated
// calls for the same path (e.g. symbols bound by an import followed by the
// file's later declarations).
func (f Forest) Add(path string, nodes ...Node) {
	f[path] = append(f[path], nodes...)
}

// Paths returns the Forest's file paths. Order is not significant; callers
// that need determinism (diagnostic dumps, golden tests) should sort it.
func (f Forest) Paths() []string {
	paths := make([]string, 0, len(f))
	for p := range f {
		paths = append(paths, p)
	}
	return paths
}
