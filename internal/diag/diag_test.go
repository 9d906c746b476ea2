package diag

import (
	"testing"

	"github.com/orizon-lang/dbgexpr/internal/position"
	"github.com/orizon-lang/dbgexpr/internal/testsupport"
)

func TestFormatCaretWithinLine(t *testing.T) {
	e := Error{
		Kind:    InvalidExpressionSyntax,
		Message: "expected expression",
		Loc:     position.Position{Filename: "expr", Line: 1, Column: 5, Offset: 4},
	}
	got := Format(e, "1 + + 2")
	want := "expr:1:5: expected expression\n" +
		"1 + + 2\n" +
		"    ^  "
	if got != want {
		t.Errorf("Format mismatch:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestFormatCaretPastEndOfLine(t *testing.T) {
	e := Error{
		Kind:    InvalidExpressionSyntax,
		Message: "expected ')'",
		Loc:     position.Position{Filename: "expr", Line: 1, Column: 6, Offset: 5},
	}
	got := Format(e, "(1 + 2")
	want := "expr:1:6: expected ')'\n" +
		"(1 + 2\n" +
		"     ^"
	if got != want {
		t.Errorf("Format mismatch:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestFormatCaretAtUnexpectedEOF(t *testing.T) {
	e := Error{
		Kind:    Unknown,
		Message: "expected expression, got '<eof>'",
		Loc:     position.Position{Filename: "expr", Line: 1, Column: 4, Offset: 3},
	}
	got := Format(e, "1 +")
	want := "expr:1:4: expected expression, got '<eof>'\n" +
		"1 + \n" +
		"   ^"
	if got != want {
		t.Errorf("Format mismatch:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestFormatGolden(t *testing.T) {
	gm := testsupport.NewGoldenManager(testsupport.GoldenOptions{
		BaseDir: "testdata/golden",
		Update:  testsupport.UpdateFromEnv(),
	})

	cases := map[string]Error{
		"undeclared_identifier": {
			Kind:    UndeclaredIdentifier,
			Message: "use of undeclared identifier 'foo'",
			Loc:     position.Position{Filename: "expr", Line: 1, Column: 1, Offset: 0},
		},
		"not_implemented_postfix": {
			Kind:    NotImplemented,
			Message: "postfix '++' is not implemented",
			Loc:     position.Position{Filename: "expr", Line: 1, Column: 2, Offset: 1},
		},
	}
	sourceLines := map[string]string{
		"undeclared_identifier":   "foo + 1",
		"not_implemented_postfix": "x++",
	}

	for name, e := range cases {
		got := Format(e, sourceLines[name])
		if err := gm.Verify(name, got); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}
