// Package dbgexpr parses the restricted C++ expression dialect used by a
// debugger's expression evaluator into a typed AST, or a structured,
// caret-annotated diagnostic.
package dbgexpr

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/orizon-lang/dbgexpr/internal/ast"
	"github.com/orizon-lang/dbgexpr/internal/diag"
	"github.com/orizon-lang/dbgexpr/internal/evalctx"
	"github.com/orizon-lang/dbgexpr/internal/parser"
)

// Parse tokenizes and parses src against ctx and returns the resulting
// AST, or a non-nil *diag.Error pinpointing the first failure. filename
// is only used to stamp diagnostics; it may be empty.
//
// A fresh Parser is constructed per call (§5): it is not reusable, and
// nothing here is shared across calls beyond ctx itself, which the
// caller's Context implementation must keep safe for concurrent reads if
// Parse is invoked from multiple goroutines at once (as ParseAll does).
func Parse(filename, src string, ctx evalctx.Context) (ast.Node, *diag.Error) {
	return parser.New(filename, src, ctx).Run()
}

// Result is one ParseAll outcome, carrying the AST or the diagnostic.
type Result struct {
	Filename string
	Node     ast.Node
	Err      *diag.Error
}

// ParseAll parses each of sources concurrently, one Parser instance per
// entry, demonstrating §5's "multiple independent Parser instances may
// run in parallel on distinct Context handles" contract. It never
// returns early on a parse error — a *diag.Error is data, not a Go
// error — so the returned slice holds one Result per entry in sources, in
// no particular order; Result.Filename names the entry. The errgroup is only used for the goroutine
// fan-out/fan-in and for propagating ctx cancellation; individual parse
// failures never cause the group to fail.
func ParseAll(ctx context.Context, ectx evalctx.Context, sources map[string]string) ([]Result, error) {
	results := make([]Result, len(sources))
	filenames := make([]string, 0, len(sources))
	for name := range sources {
		filenames = append(filenames, name)
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range filenames {
		i, name := i, name
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			node, parseErr := Parse(name, sources[name], ectx)
			results[i] = Result{Filename: name, Node: node, Err: parseErr}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
