package mathsolve

import (
	"math"
	"strings"
	"testing"
)

// #region eval

func TestEvalNumeric(t *testing.T) {
	cases := []struct {
		expr string
		want float64
	}{
		{"2+3", 5},
		{"2 + 3 * 4", 14},
		{"(2+3)*4", 20},
		{"10/4", 2.5},
		{"2^3", 8},
		{"2^3^2", 512}, // right associative
		{"-3 + 5", 2},
		{"2(3+4)", 14},   // implicit multiplication
		{"3 × 4 ÷ 2", 6}, // unicode operators
		{"sqrt(16)", 4},
		{"sin(0)", 0},
		{"exp(0)", 1},
		{".5 + .25", 0.75},
	}
	for _, tc := range cases {
		got, err := EvalNumeric(tc.expr)
		if err != nil {
			t.Errorf("EvalNumeric(%q): %v", tc.expr, err)
			continue
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("EvalNumeric(%q) = %v, want %v", tc.expr, got, tc.want)
		}
	}
}

func TestEvalNumeric_Pi(t *testing.T) {
	got, err := EvalNumeric("2pi")
	if err != nil {
		t.Fatalf("EvalNumeric: %v", err)
	}
	if math.Abs(got-2*math.Pi) > 1e-9 {
		t.Errorf("2pi = %v, want %v", got, 2*math.Pi)
	}
}

func TestEvalNumeric_ScientificNotation(t *testing.T) {
	cases := []struct {
		expr string
		want float64
	}{
		{"1e5", 100000},
		{"3E2", 300},
		{"2.5e-2", 0.025},
		{"1e+3 + 1", 1001},
	}
	for _, tc := range cases {
		got, err := EvalNumeric(tc.expr)
		if err != nil {
			t.Errorf("EvalNumeric(%q): %v", tc.expr, err)
			continue
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("EvalNumeric(%q) = %v, want %v", tc.expr, got, tc.want)
		}
	}

	if got := Normalize("1e5"); got != "1e5" {
		t.Errorf("Normalize(1e5) = %q", got)
	}
	if got := Normalize("1e2x"); got != "1e2*x" {
		t.Errorf("Normalize(1e2x) = %q", got)
	}
	// A bare trailing e is still the constant, not an exponent.
	if got := Normalize("2e"); got != "2*e" {
		t.Errorf("Normalize(2e) = %q", got)
	}
}

func TestEvalNumeric_Errors(t *testing.T) {
	for _, expr := range []string{"", "2+", "1/0", "x+1", "sqrt(-1)", "2 @ 3"} {
		if _, err := EvalNumeric(expr); err == nil {
			t.Errorf("EvalNumeric(%q): expected error", expr)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{5, "5"},
		{-3, "-3"},
		{2.5, "2.5"},
		{1.0 / 3.0, "0.333333"},
	}
	for _, tc := range cases {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// #endregion

// #region calculus

func TestDerivative(t *testing.T) {
	cases := []struct {
		expr string
		want string
	}{
		{"x^2", "2*x"},
		{"3*x^2 + 2*x", "6*x+2"},
		{"sin(x)", "cos(x)"},
		{"cos(x)", "-sin(x)"},
		{"exp(x)", "exp(x)"},
		{"5", "0"},
		{"x", "1"},
	}
	for _, tc := range cases {
		got, err := Derivative(tc.expr)
		if err != nil {
			t.Errorf("Derivative(%q): %v", tc.expr, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Derivative(%q) = %q, want %q", tc.expr, got, tc.want)
		}
	}
}

func TestDerivative_ChainRule(t *testing.T) {
	got, err := Derivative("sin(x^2)")
	if err != nil {
		t.Fatalf("Derivative: %v", err)
	}
	if !strings.Contains(got, "cos(x^2)") || !strings.Contains(got, "2*x") {
		t.Errorf("Derivative(sin(x^2)) = %q, want cos(x^2) times 2*x", got)
	}
}

func TestIntegral(t *testing.T) {
	cases := []struct {
		expr string
		want string
	}{
		{"x^2", "x^3/3"},
		{"2*x", "x^2"},
		{"x", "x^2/2"},
		{"sin(x)", "-cos(x)"},
		{"cos(x)", "sin(x)"},
		{"exp(x)", "exp(x)"},
		{"1/x", "ln(x)"},
	}
	for _, tc := range cases {
		got, err := Integral(tc.expr)
		if err != nil {
			t.Errorf("Integral(%q): %v", tc.expr, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Integral(%q) = %q, want %q", tc.expr, got, tc.want)
		}
	}
}

func TestIntegral_Unsupported(t *testing.T) {
	if _, err := Integral("sin(x^2)"); err == nil {
		t.Error("Integral(sin(x^2)): expected error")
	}
}

// #endregion

// #region linear

func TestSolveLinear(t *testing.T) {
	cases := []struct {
		eq       string
		variable string
		value    float64
	}{
		{"2x + 3 = 7", "x", 2},
		{"x = 5", "x", 5},
		{"3y - 6 = 0", "y", 2},
		{"10 = 2x", "x", 5},
		{"x/2 + 1 = 3", "x", 4},
	}
	for _, tc := range cases {
		sol, err := SolveLinear(tc.eq)
		if err != nil {
			t.Errorf("SolveLinear(%q): %v", tc.eq, err)
			continue
		}
		if sol.Variable != tc.variable {
			t.Errorf("SolveLinear(%q) variable = %q, want %q", tc.eq, sol.Variable, tc.variable)
		}
		if math.Abs(sol.Value-tc.value) > 1e-9 {
			t.Errorf("SolveLinear(%q) = %v, want %v", tc.eq, sol.Value, tc.value)
		}
	}
}

func TestSolveLinear_Errors(t *testing.T) {
	for _, eq := range []string{"2+3", "x^2 = 4", "x + y = 3", "x = x"} {
		if _, err := SolveLinear(eq); err == nil {
			t.Errorf("SolveLinear(%q): expected error", eq)
		}
	}
}

// #endregion

// #region mcq

func TestExtractMCQ(t *testing.T) {
	text := "If 2x + 3 = 7, what is x?\nA) 1\nB) 2\nC) 3\nD) 4"
	stem, opts, ok := ExtractMCQ(text)
	if !ok {
		t.Fatal("ExtractMCQ: no options found")
	}
	if !strings.Contains(stem, "2x + 3 = 7") {
		t.Errorf("stem = %q", stem)
	}
	if len(opts) != 4 || opts["B"] != "2" {
		t.Errorf("options = %v", opts)
	}
}

func TestExtractMCQ_NumericLabels(t *testing.T) {
	_, opts, ok := ExtractMCQ("What is 2+2?\n1) 3\n2) 4\n3) 5")
	if !ok {
		t.Fatal("ExtractMCQ: no options found")
	}
	if opts["A"] != "3" || opts["B"] != "4" || opts["C"] != "5" {
		t.Errorf("options = %v", opts)
	}
}

func TestExtractMCQ_Inline(t *testing.T) {
	_, opts, ok := ExtractMCQ("What is 3*3? A) 6, B) 9, C) 12")
	if !ok {
		t.Fatal("ExtractMCQ: no options found")
	}
	if opts["B"] != "9" {
		t.Errorf("options = %v", opts)
	}
}

func TestExtractMCQ_TooFew(t *testing.T) {
	if _, _, ok := ExtractMCQ("just a question with no options"); ok {
		t.Error("ExtractMCQ: expected no match")
	}
}

func TestParseOptionValue(t *testing.T) {
	cases := []struct {
		opt   string
		value float64
	}{
		{"42", 42},
		{"x = 3", 3},
		{"25%", 0.25},
		{"1,000", 1000},
		{"3/4", 0.75},
	}
	for _, tc := range cases {
		ov := ParseOptionValue(tc.opt)
		if !ov.Numeric {
			t.Errorf("ParseOptionValue(%q): not numeric", tc.opt)
			continue
		}
		if math.Abs(ov.Value-tc.value) > 1e-9 {
			t.Errorf("ParseOptionValue(%q) = %v, want %v", tc.opt, ov.Value, tc.value)
		}
	}
	if ParseOptionValue("none of the above").Numeric {
		t.Error("ParseOptionValue: expected non-numeric")
	}
}

func TestSolveMCQ_Equation(t *testing.T) {
	m, ok := SolveMCQ("If 2x + 3 = 7, what is x?", map[string]string{
		"A": "1", "B": "2", "C": "3", "D": "4",
	})
	if !ok {
		t.Fatal("SolveMCQ: no match")
	}
	if m.Label != "B" || m.Confidence != "high" {
		t.Errorf("match = %+v", m)
	}
}

func TestSolveMCQ_Arithmetic(t *testing.T) {
	m, ok := SolveMCQ("What is 15% of 200? That is 0.15*200.", map[string]string{
		"A": "25", "B": "30", "C": "35",
	})
	if !ok {
		t.Fatal("SolveMCQ: no match")
	}
	if m.Label != "B" {
		t.Errorf("match = %+v", m)
	}
}

func TestSolveMCQ_SoleNumericFallback(t *testing.T) {
	m, ok := SolveMCQ("Which option is the number?", map[string]string{
		"A": "a cat", "B": "7", "C": "a dog",
	})
	if !ok {
		t.Fatal("SolveMCQ: no match")
	}
	if m.Label != "B" || m.Confidence != "low" {
		t.Errorf("match = %+v", m)
	}
}

func TestSolveMCQ_NoMatch(t *testing.T) {
	if _, ok := SolveMCQ("Pick a color", map[string]string{"A": "red", "B": "blue"}); ok {
		t.Error("SolveMCQ: expected no match")
	}
}

func TestMatchNumeric(t *testing.T) {
	options := map[string]string{"A": "91", "B": "93", "C": "97", "D": "99"}

	m, ok := MatchNumeric(97, options)
	if !ok {
		t.Fatal("MatchNumeric: no match")
	}
	if m.Label != "C" || m.Answer != "97" || m.Confidence != "medium" {
		t.Errorf("match = %+v", m)
	}

	if _, ok := MatchNumeric(42, options); ok {
		t.Error("MatchNumeric: expected no match")
	}
}

// #endregion
