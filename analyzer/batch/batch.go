// Package batch implements the concurrent multi-file compilation helper
// named by SPEC_FULL.md §5: one goroutine per independent source, each
// owning its own analyzer.Analyzer instance, collected in input order.
package batch

import (
	"context"

	"github.com/viant/ignis/analyzer"
	"github.com/viant/ignis/lexer"
	"github.com/viant/ignis/parser"
	"golang.org/x/sync/errgroup"
)

// Source is one file to compile: its path (used for diagnostics and as the
// forest key) and its already-loaded text.
type Source struct {
	Path string
	Text string
}

// CompileAll lexes, parses, and analyzes every source concurrently,
// returning one *analyzer.Result per input Source in the same order. A
// failure in any single source's pipeline does not abort the others; its
// lexer, parser and analyzer diagnostics are reported in that source's own
// Result. The returned error is non-nil only when ctx is done before a
// source's goroutine starts work, in which case that source's Result is nil.
func CompileAll(ctx context.Context, sources []Source, opts ...analyzer.Option) ([]*analyzer.Result, error) {
	results := make([]*analyzer.Result, len(sources))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, source := range sources {
		i, source := i, source
		group.Go(func() error {
			select {
			case <-groupCtx.Done():
				return groupCtx.Err()
			default:
			}
			tokens, lexDiagnostics := lexer.Scan(source.Text, source.Path)
			statements, parseDiagnostics := parser.Parse(tokens, source.Path)
			a := analyzer.New(source.Path, opts...)
			result := &analyzer.Result{}
			if statements != nil {
				result = a.Analyze(statements)
			}
			result.Diagnostics.Merge(lexDiagnostics)
			result.Diagnostics.Merge(parseDiagnostics)
			results[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
