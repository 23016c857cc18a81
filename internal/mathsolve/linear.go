package mathsolve

// #region imports
import (
	"fmt"
	"math"
	"strings"
)

// #endregion

// #region linear

// LinearSolution is the solved value of a single-variable linear equation.
type LinearSolution struct {
	Variable string
	Value    float64
}

func (s LinearSolution) String() string {
	return fmt.Sprintf("%s = %s", s.Variable, FormatNumber(s.Value))
}

// SolveLinear solves an equation like "2x + 3 = 7" for its single variable.
// The equation is evaluated at a few points to recover slope and intercept,
// which also catches non-linear input.
func SolveLinear(equation string) (LinearSolution, error) {
	parts := strings.Split(equation, "=")
	if len(parts) != 2 {
		return LinearSolution{}, fmt.Errorf("solve: expected one = sign")
	}
	left, err := Parse(parts[0])
	if err != nil {
		return LinearSolution{}, fmt.Errorf("solve: %w", err)
	}
	right, err := Parse(parts[1])
	if err != nil {
		return LinearSolution{}, fmt.Errorf("solve: %w", err)
	}

	diff := binNode{op: '-', left: left, right: right}
	vars := Variables(diff)
	if len(vars) == 0 {
		return LinearSolution{}, fmt.Errorf("solve: no variable found")
	}
	if len(vars) > 1 {
		return LinearSolution{}, fmt.Errorf("solve: more than one variable (%s)", strings.Join(vars, ", "))
	}
	v := vars[0]

	at := func(x float64) (float64, error) {
		return eval(diff, map[string]float64{v: x})
	}
	f0, err := at(0)
	if err != nil {
		return LinearSolution{}, fmt.Errorf("solve: %w", err)
	}
	f1, err := at(1)
	if err != nil {
		return LinearSolution{}, fmt.Errorf("solve: %w", err)
	}
	f2, err := at(2)
	if err != nil {
		return LinearSolution{}, fmt.Errorf("solve: %w", err)
	}

	a := f1 - f0
	if math.Abs((f2-f1)-a) > 1e-9*(1+math.Abs(a)) {
		return LinearSolution{}, fmt.Errorf("solve: equation is not linear in %s", v)
	}
	if math.Abs(a) < 1e-12 {
		return LinearSolution{}, fmt.Errorf("solve: %s cancels out", v)
	}
	return LinearSolution{Variable: v, Value: -f0 / a}, nil
}

// #endregion
