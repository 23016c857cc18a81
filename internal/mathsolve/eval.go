package mathsolve

// #region imports
import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// #endregion

// #region eval

func eval(n node, vars map[string]float64) (float64, error) {
	switch v := n.(type) {
	case numNode:
		return v.val, nil
	case varNode:
		switch strings.ToLower(v.name) {
		case "pi":
			return math.Pi, nil
		case "e":
			return math.E, nil
		}
		if val, ok := vars[v.name]; ok {
			return val, nil
		}
		return 0, fmt.Errorf("unknown variable %q", v.name)
	case unaryNode:
		val, err := eval(v.operand, vars)
		if err != nil {
			return 0, err
		}
		return -val, nil
	case binNode:
		l, err := eval(v.left, vars)
		if err != nil {
			return 0, err
		}
		r, err := eval(v.right, vars)
		if err != nil {
			return 0, err
		}
		switch v.op {
		case '+':
			return l + r, nil
		case '-':
			return l - r, nil
		case '*':
			return l * r, nil
		case '/':
			if r == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			return l / r, nil
		case '^':
			return math.Pow(l, r), nil
		}
		return 0, fmt.Errorf("bad operator %q", string(v.op))
	case callNode:
		arg, err := eval(v.arg, vars)
		if err != nil {
			return 0, err
		}
		switch v.fn {
		case "sin":
			return math.Sin(arg), nil
		case "cos":
			return math.Cos(arg), nil
		case "tan":
			return math.Tan(arg), nil
		case "log", "ln":
			if arg <= 0 {
				return 0, fmt.Errorf("log of non-positive value")
			}
			return math.Log(arg), nil
		case "exp":
			return math.Exp(arg), nil
		case "sqrt":
			if arg < 0 {
				return 0, fmt.Errorf("sqrt of negative value")
			}
			return math.Sqrt(arg), nil
		}
		return 0, fmt.Errorf("unknown function %q", v.fn)
	}
	return 0, fmt.Errorf("bad expression node")
}

// EvalNumeric evaluates an expression that contains no free variables.
func EvalNumeric(expr string) (float64, error) {
	n, err := Parse(expr)
	if err != nil {
		return 0, err
	}
	val, err := eval(n, nil)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return 0, fmt.Errorf("result is not finite")
	}
	return val, nil
}

// #endregion

// #region format

// FormatNumber renders integer-valued results without a decimal point and
// everything else with up to six significant decimals.
func FormatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	s := strconv.FormatFloat(v, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}

// #endregion
