package intent

import "regexp"

// #region math-expression-signals

var (
	// digits adjacent to an operator: '2+2', '3 = 7', '4^2'
	opAfterDigit = regexp.MustCompile(`[0-9]+\s*[=+\-*/^]`)
	// leading decimal like '.5' or '.25' (not the tail of another number)
	leadingDecimal = regexp.MustCompile(`(^|[^0-9])\.[0-9]+`)
	// implicit multiplication or variable: '2x', '3xy', ')x', ')('
	implicitMul      = regexp.MustCompile(`[0-9]\s*[a-zA-Z(]`)
	implicitMulParen = regexp.MustCompile(`\)\s*[a-zA-Z(]`)
	// LaTeX-like or function-call syntax: \sin(x), \frac, \sqrt, sin(x), cos(x)
	funcCall = regexp.MustCompile(`(?i)(\\[a-zA-Z]+\(|\\frac|\\sqrt|\b(sin|cos|tan|log|ln|exp|sqrt)\()`)
	// Greek pi and common unicode math operators
	unicodeMath = regexp.MustCompile("[π×÷]")
	// calculus/math cue words and digit-letter runs like '2x'
	mathCue = regexp.MustCompile(`(?i)\bsolve\b|\bdiff(erenti|erivative)|\bintegral\b|[0-9]+[xX]|\btheta\b`)
)

// LooksLikeMath reports whether a query exhibits math-expression signals.
// Drives the +3.0 Math boost in the scorer.
func LooksLikeMath(s string) bool {
	if opAfterDigit.MatchString(s) {
		return true
	}
	if leadingDecimal.MatchString(s) {
		return true
	}
	if implicitMul.MatchString(s) || implicitMulParen.MatchString(s) {
		return true
	}
	if funcCall.MatchString(s) {
		return true
	}
	if unicodeMath.MatchString(s) {
		return true
	}
	return mathCue.MatchString(s)
}

// #endregion
