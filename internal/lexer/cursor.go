package lexer

// Cursor walks a fully materialized token stream with snapshot/rollback
// support. It is the concrete Token Source the parser drives: tentative
// parsing (spec §4.1) needs arbitrary backtracking, which a streaming
// lexer cannot offer cheaply, so the whole input is tokenized once up
// front (Tokenize) and a Cursor is just an index into that slice.
type Cursor struct {
	toks  []Token
	pos   int
	stack []int
}

// NewCursor wraps an already-tokenized stream. toks must end in an EOF
// token, as produced by Tokenize.
func NewCursor(toks []Token) *Cursor {
	return &Cursor{toks: toks}
}

// Current returns the token at the cursor without consuming it.
func (c *Cursor) Current() Token {
	return c.toks[c.pos]
}

// Peek returns the token k positions ahead of the cursor (Peek(0) ==
// Current()), clamped to the trailing EOF so lookahead past the end of
// the stream is always well-defined.
func (c *Cursor) Peek(k int) Token {
	idx := c.pos + k
	if idx < 0 {
		idx = 0
	}
	if idx >= len(c.toks) {
		idx = len(c.toks) - 1
	}
	return c.toks[idx]
}

// Advance consumes the current token and returns it, unless the cursor is
// already pinned at EOF (see SeekToEOF), in which case it is a no-op that
// keeps returning the EOF token — this is what makes BailOut's "force to
// EOF" trick cheap: everything downstream just stops making progress.
func (c *Cursor) Advance() Token {
	tok := c.Current()
	if tok.Kind != EOF {
		c.pos++
	}
	return tok
}

// AtEOF reports whether the cursor is on the trailing EOF token.
func (c *Cursor) AtEOF() bool {
	return c.Current().Kind == EOF
}

// Snapshot pushes the current position for a later Commit or Rollback.
// Snapshots nest: commits and rollbacks only ever affect the most
// recently pushed one, so tentative parses can themselves attempt nested
// tentative parses (e.g. a cast's type-id containing a template-id whose
// argument list requires its own backtracking).
func (c *Cursor) Snapshot() {
	c.stack = append(c.stack, c.pos)
}

// Commit discards the most recent snapshot, keeping the cursor where it
// is — the tentative parse succeeded and its consumption stands.
func (c *Cursor) Commit() {
	c.stack = c.stack[:len(c.stack)-1]
}

// Rollback restores the cursor to the most recent snapshot and discards
// it — the tentative parse failed and none of its consumption counts.
func (c *Cursor) Rollback() {
	n := len(c.stack) - 1
	c.pos = c.stack[n]
	c.stack = c.stack[:n]
}

// SeekToEOF forces the cursor to the trailing EOF token, regardless of
// any open snapshots. This backs the first-error-wins BailOut contract
// (internal/diag, internal/parser): once a hard error is recorded, the
// remaining recursive descent should fall through cheaply rather than
// keep matching against tokens past the error.
func (c *Cursor) SeekToEOF() {
	c.pos = len(c.toks) - 1
}
