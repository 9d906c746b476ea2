package literal

import "testing"

func TestAnalyzeIntegerRadix(t *testing.T) {
	cases := []struct {
		spelling string
		radix    Radix
		value    int64
	}{
		{"10", Decimal, 10},
		{"010", Octal, 8},
		{"0x10", Hex, 16},
		{"0X1F", Hex, 31},
		{"0b101", Binary, 5},
	}
	for _, c := range cases {
		d, err := Analyze(c.spelling)
		if err != nil {
			t.Fatalf("Analyze(%q) error: %v", c.spelling, err)
		}
		if d.IsFloat {
			t.Fatalf("Analyze(%q) classified as float", c.spelling)
		}
		if d.Radix != c.radix {
			t.Errorf("Analyze(%q).Radix = %v, want %v", c.spelling, d.Radix, c.radix)
		}
		if d.IntValue.Int64() != c.value {
			t.Errorf("Analyze(%q).IntValue = %v, want %d", c.spelling, d.IntValue, c.value)
		}
	}
}

func TestAnalyzeIntegerSuffix(t *testing.T) {
	cases := []struct {
		spelling                       string
		unsigned, long, longlong bool
	}{
		{"1", false, false, false},
		{"1u", true, false, false},
		{"1U", true, false, false},
		{"1L", false, true, false},
		{"1LL", false, false, true},
		{"1ull", true, false, true},
		{"1LLU", true, false, true},
	}
	for _, c := range cases {
		d, err := Analyze(c.spelling)
		if err != nil {
			t.Fatalf("Analyze(%q) error: %v", c.spelling, err)
		}
		if d.Suffix.Unsigned != c.unsigned || d.Suffix.Long != c.long || d.Suffix.LongLong != c.longlong {
			t.Errorf("Analyze(%q).Suffix = %+v, want {U:%v L:%v LL:%v}", c.spelling, d.Suffix, c.unsigned, c.long, c.longlong)
		}
	}
}

func TestAnalyzeFloat(t *testing.T) {
	d, err := Analyze("1.5")
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}
	if !d.IsFloat || d.IsFloat32 {
		t.Fatalf("Analyze(1.5) = %+v, want double", d)
	}
	if d.FloatValue != 1.5 {
		t.Errorf("FloatValue = %v, want 1.5", d.FloatValue)
	}

	d, err = Analyze("1.5f")
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}
	if !d.IsFloat32 {
		t.Errorf("Analyze(1.5f) should be float32-tagged")
	}
}

func TestAnalyzeFloatOverflow(t *testing.T) {
	_, err := Analyze("1e400")
	if err == nil {
		t.Fatalf("Analyze(1e400) should report overflow")
	}
}

func TestAnalyzeInvalidIntegerForRadix(t *testing.T) {
	_, err := Analyze("0b12")
	if err == nil {
		t.Fatalf("Analyze(0b12) should fail: 2 is not a binary digit")
	}
}

func TestAnalyzeFloatUnderflowToZeroIsAnError(t *testing.T) {
	_, err := Analyze("1e-400")
	if err == nil {
		t.Fatalf("Analyze(1e-400) should report underflow-to-zero as an error")
	}
}

func TestAnalyzeFloatLiteralZeroIsNotAnError(t *testing.T) {
	cases := []string{"0.0", "0e0", "0e-400", "0.000e10"}
	for _, spelling := range cases {
		d, err := Analyze(spelling)
		if err != nil {
			t.Fatalf("Analyze(%q) should succeed, got %v", spelling, err)
		}
		if d.FloatValue != 0 {
			t.Errorf("Analyze(%q).FloatValue = %v, want 0", spelling, d.FloatValue)
		}
	}
}
