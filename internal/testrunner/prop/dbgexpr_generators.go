package prop

import "math/rand"

// BinaryLevel names one of the parser's binary-operator precedence
// levels by its spelling and level index, low to high, matching the
// table in dbgexpr's expression grammar.
type BinaryLevel struct {
	Level int
	Op    string
}

// BinaryLevels lists every binary operator level the property tests in
// internal/parser exercise, ordered lowest to highest precedence.
var BinaryLevels = []BinaryLevel{
	{4, "||"}, {5, "&&"}, {6, "|"}, {7, "^"}, {8, "&"},
	{9, "=="}, {9, "!="},
	{10, "<"}, {10, ">"}, {10, "<="}, {10, ">="},
	{11, "<<"}, {11, ">>"},
	{12, "+"}, {12, "-"},
	{13, "*"}, {13, "/"}, {13, "%"},
}

// GenBinaryLevelPair produces two distinct-level BinaryLevel entries,
// used by the precedence property (spec §8 property 3) to build inputs
// of the shape "a op1 b op2 c" and check the level-ordered nesting.
func GenBinaryLevelPair() Generator[[2]BinaryLevel] {
	return func(r *rand.Rand, _ int) [2]BinaryLevel {
		a := BinaryLevels[r.Intn(len(BinaryLevels))]
		b := BinaryLevels[r.Intn(len(BinaryLevels))]
		for b.Level == a.Level {
			b = BinaryLevels[r.Intn(len(BinaryLevels))]
		}
		return [2]BinaryLevel{a, b}
	}
}

// IntegerLiteralCase is one point in the (value, U, L, LL, radix)
// combination space the integer type-selection property (spec §8
// property 5) samples.
type IntegerLiteralCase struct {
	Value    uint64
	Unsigned bool
	Long     bool
	LongLong bool
	Radix    int // 2, 8, 10, or 16
}

// integerLiteralBoundaries are the values at which §4.5's type-selection
// rule changes candidate, sampled exactly rather than left to chance.
var integerLiteralBoundaries = []uint64{
	0, 1,
	1<<31 - 1, 1 << 31, 1<<32 - 1,
	1<<63 - 1, 1 << 63, ^uint64(0),
}

// GenIntegerLiteralCase produces either an exact boundary value or a
// uniformly sampled one, paired with a random suffix/radix combination.
func GenIntegerLiteralCase() Generator[IntegerLiteralCase] {
	radices := []int{2, 8, 10, 16}
	return func(r *rand.Rand, _ int) IntegerLiteralCase {
		var v uint64
		if r.Intn(2) == 0 {
			v = integerLiteralBoundaries[r.Intn(len(integerLiteralBoundaries))]
		} else {
			v = r.Uint64()
		}
		ll := r.Intn(2) == 0
		return IntegerLiteralCase{
			Value:    v,
			Unsigned: r.Intn(2) == 0,
			Long:     !ll && r.Intn(2) == 0,
			LongLong: ll,
			Radix:    radices[r.Intn(len(radices))],
		}
	}
}
