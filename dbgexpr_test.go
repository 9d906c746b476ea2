package dbgexpr

import (
	"context"
	"testing"

	"github.com/orizon-lang/dbgexpr/internal/ast"
	"github.com/orizon-lang/dbgexpr/internal/evalctx"
)

func testContext() *evalctx.SimpleContext {
	ctx := evalctx.NewSimpleContext(evalctx.DefaultTargetProfile)
	ctx.DeclareIdentifier("a", "int", false)
	ctx.DeclareIdentifier("b", "int", false)
	return ctx
}

func TestParseReturnsASTOnSuccess(t *testing.T) {
	node, errv := Parse("expr", "a + b", testContext())
	if errv != nil {
		t.Fatalf("unexpected error: %v", errv)
	}
	if _, ok := node.(*ast.BinaryOpNode); !ok {
		t.Fatalf("node = %#v, want BinaryOpNode", node)
	}
}

func TestParseReturnsDiagnosticOnFailure(t *testing.T) {
	_, errv := Parse("expr", "nosuch", testContext())
	if errv == nil {
		t.Fatalf("expected a diagnostic for an undeclared identifier")
	}
}

func TestParseAllRunsEachSourceIndependently(t *testing.T) {
	sources := map[string]string{
		"good.cpp": "a + b",
		"bad.cpp":  "nosuch",
	}
	results, err := ParseAll(context.Background(), testContext(), sources)
	if err != nil {
		t.Fatalf("ParseAll: %v", err)
	}
	if len(results) != len(sources) {
		t.Fatalf("got %d results, want %d", len(results), len(sources))
	}

	byName := make(map[string]Result, len(results))
	for _, r := range results {
		byName[r.Filename] = r
	}

	if r := byName["good.cpp"]; r.Err != nil {
		t.Errorf("good.cpp: unexpected error %v", r.Err)
	}
	if r := byName["bad.cpp"]; r.Err == nil {
		t.Errorf("bad.cpp: expected an error")
	}
}

func TestParseAllRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ParseAll(ctx, testContext(), map[string]string{"x.cpp": "a"})
	if err == nil {
		t.Fatalf("expected an error from an already-cancelled context")
	}
}
