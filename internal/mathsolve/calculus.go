package mathsolve

// #region imports
import (
	"fmt"
	"math"
)

// #endregion

// #region derivative

// Derivative differentiates an expression with respect to its variable and
// returns the simplified result as a string, e.g. "x^2" yields "2*x". The
// variable defaults to the first one found, or "x" for constant expressions.
func Derivative(expr string) (string, error) {
	n, err := Parse(expr)
	if err != nil {
		return "", fmt.Errorf("differentiate: %w", err)
	}
	v := pickVariable(n)
	d, err := differentiate(n, v)
	if err != nil {
		return "", fmt.Errorf("differentiate: %w", err)
	}
	return printNode(simplify(d)), nil
}

func pickVariable(n node) string {
	if vars := Variables(n); len(vars) > 0 {
		return vars[0]
	}
	return "x"
}

func differentiate(n node, v string) (node, error) {
	switch t := n.(type) {
	case numNode:
		return numNode{val: 0}, nil
	case varNode:
		if t.name == v {
			return numNode{val: 1}, nil
		}
		return numNode{val: 0}, nil
	case unaryNode:
		d, err := differentiate(t.operand, v)
		if err != nil {
			return nil, err
		}
		return unaryNode{operand: d}, nil
	case binNode:
		return differentiateBin(t, v)
	case callNode:
		return differentiateCall(t, v)
	}
	return nil, fmt.Errorf("bad expression node")
}

func differentiateBin(t binNode, v string) (node, error) {
	dl, err := differentiate(t.left, v)
	if err != nil {
		return nil, err
	}
	dr, err := differentiate(t.right, v)
	if err != nil {
		return nil, err
	}
	switch t.op {
	case '+', '-':
		return binNode{op: t.op, left: dl, right: dr}, nil
	case '*':
		// product rule
		return binNode{op: '+',
			left:  binNode{op: '*', left: dl, right: t.right},
			right: binNode{op: '*', left: t.left, right: dr},
		}, nil
	case '/':
		// quotient rule
		num := binNode{op: '-',
			left:  binNode{op: '*', left: dl, right: t.right},
			right: binNode{op: '*', left: t.left, right: dr},
		}
		den := binNode{op: '^', left: t.right, right: numNode{val: 2}}
		return binNode{op: '/', left: num, right: den}, nil
	case '^':
		if exp, ok := t.right.(numNode); ok {
			// n*u^(n-1)*u'
			inner := binNode{op: '^', left: t.left, right: numNode{val: exp.val - 1}}
			return binNode{op: '*',
				left:  binNode{op: '*', left: numNode{val: exp.val}, right: inner},
				right: dl,
			}, nil
		}
		if base, ok := t.left.(numNode); ok {
			// c^u * ln(c) * u'
			return binNode{op: '*',
				left:  binNode{op: '*', left: t, right: numNode{val: math.Log(base.val)}},
				right: dr,
			}, nil
		}
		return nil, fmt.Errorf("unsupported power with variable exponent")
	}
	return nil, fmt.Errorf("bad operator %q", string(t.op))
}

func differentiateCall(t callNode, v string) (node, error) {
	du, err := differentiate(t.arg, v)
	if err != nil {
		return nil, err
	}
	var outer node
	switch t.fn {
	case "sin":
		outer = callNode{fn: "cos", arg: t.arg}
	case "cos":
		outer = unaryNode{operand: callNode{fn: "sin", arg: t.arg}}
	case "tan":
		sq := binNode{op: '^', left: callNode{fn: "cos", arg: t.arg}, right: numNode{val: 2}}
		outer = binNode{op: '/', left: numNode{val: 1}, right: sq}
	case "exp":
		outer = callNode{fn: "exp", arg: t.arg}
	case "log", "ln":
		outer = binNode{op: '/', left: numNode{val: 1}, right: t.arg}
	case "sqrt":
		den := binNode{op: '*', left: numNode{val: 2}, right: callNode{fn: "sqrt", arg: t.arg}}
		outer = binNode{op: '/', left: numNode{val: 1}, right: den}
	default:
		return nil, fmt.Errorf("cannot differentiate %s", t.fn)
	}
	return binNode{op: '*', left: outer, right: du}, nil
}

// #endregion

// #region integral

// Integral returns the antiderivative of an expression as a string, without
// the constant term. Sums of power terms and a few elementary functions are
// supported; anything else is an error.
func Integral(expr string) (string, error) {
	n, err := Parse(expr)
	if err != nil {
		return "", fmt.Errorf("integrate: %w", err)
	}
	v := pickVariable(n)
	in, err := integrate(simplify(n), v)
	if err != nil {
		return "", fmt.Errorf("integrate: %w", err)
	}
	return printNode(simplify(in)), nil
}

func integrate(n node, v string) (node, error) {
	switch t := n.(type) {
	case numNode:
		return binNode{op: '*', left: t, right: varNode{name: v}}, nil
	case varNode:
		if t.name != v {
			return binNode{op: '*', left: t, right: varNode{name: v}}, nil
		}
		// x -> x^2/2
		return binNode{op: '/',
			left:  binNode{op: '^', left: t, right: numNode{val: 2}},
			right: numNode{val: 2},
		}, nil
	case unaryNode:
		in, err := integrate(t.operand, v)
		if err != nil {
			return nil, err
		}
		return unaryNode{operand: in}, nil
	case binNode:
		switch t.op {
		case '+', '-':
			l, err := integrate(t.left, v)
			if err != nil {
				return nil, err
			}
			r, err := integrate(t.right, v)
			if err != nil {
				return nil, err
			}
			return binNode{op: t.op, left: l, right: r}, nil
		case '*':
			// constant factor pulls out
			if c, ok := t.left.(numNode); ok {
				in, err := integrate(t.right, v)
				if err != nil {
					return nil, err
				}
				return binNode{op: '*', left: c, right: in}, nil
			}
			if c, ok := t.right.(numNode); ok {
				in, err := integrate(t.left, v)
				if err != nil {
					return nil, err
				}
				return binNode{op: '*', left: c, right: in}, nil
			}
		case '/':
			if c, ok := t.right.(numNode); ok && c.val != 0 {
				in, err := integrate(t.left, v)
				if err != nil {
					return nil, err
				}
				return binNode{op: '/', left: in, right: c}, nil
			}
			// 1/x -> ln(x)
			if c, ok := t.left.(numNode); ok {
				if vr, ok2 := t.right.(varNode); ok2 && vr.name == v {
					return binNode{op: '*', left: c, right: callNode{fn: "ln", arg: vr}}, nil
				}
			}
		case '^':
			base, bok := t.left.(varNode)
			exp, eok := t.right.(numNode)
			if bok && eok && base.name == v {
				if exp.val == -1 {
					return callNode{fn: "ln", arg: base}, nil
				}
				// x^n -> x^(n+1)/(n+1)
				return binNode{op: '/',
					left:  binNode{op: '^', left: base, right: numNode{val: exp.val + 1}},
					right: numNode{val: exp.val + 1},
				}, nil
			}
		}
		return nil, fmt.Errorf("unsupported form %q", printNode(t))
	case callNode:
		vr, ok := t.arg.(varNode)
		if !ok || vr.name != v {
			return nil, fmt.Errorf("unsupported argument in %s", t.fn)
		}
		switch t.fn {
		case "sin":
			return unaryNode{operand: callNode{fn: "cos", arg: vr}}, nil
		case "cos":
			return callNode{fn: "sin", arg: vr}, nil
		case "exp":
			return callNode{fn: "exp", arg: vr}, nil
		case "sqrt":
			// sqrt(x) -> (2/3)*x^(3/2)
			pow := binNode{op: '^', left: vr, right: binNode{op: '/', left: numNode{val: 3}, right: numNode{val: 2}}}
			coef := binNode{op: '/', left: numNode{val: 2}, right: numNode{val: 3}}
			return binNode{op: '*', left: coef, right: pow}, nil
		}
		return nil, fmt.Errorf("cannot integrate %s", t.fn)
	}
	return nil, fmt.Errorf("bad expression node")
}

// #endregion

// #region simplify

func simplify(n node) node {
	switch t := n.(type) {
	case unaryNode:
		inner := simplify(t.operand)
		if num, ok := inner.(numNode); ok {
			return numNode{val: -num.val}
		}
		if u, ok := inner.(unaryNode); ok {
			return u.operand
		}
		return unaryNode{operand: inner}
	case binNode:
		return simplifyBin(binNode{op: t.op, left: simplify(t.left), right: simplify(t.right)})
	case callNode:
		return callNode{fn: t.fn, arg: simplify(t.arg)}
	}
	return n
}

func simplifyBin(t binNode) node {
	ln, lNum := t.left.(numNode)
	rn, rNum := t.right.(numNode)

	if lNum && rNum {
		if v, err := eval(t, nil); err == nil {
			return numNode{val: v}
		}
	}

	switch t.op {
	case '+':
		if lNum && ln.val == 0 {
			return t.right
		}
		if rNum && rn.val == 0 {
			return t.left
		}
	case '-':
		if rNum && rn.val == 0 {
			return t.left
		}
		if lNum && ln.val == 0 {
			return simplify(unaryNode{operand: t.right})
		}
	case '*':
		if lNum && ln.val == 0 || rNum && rn.val == 0 {
			return numNode{val: 0}
		}
		if lNum && ln.val == 1 {
			return t.right
		}
		if rNum && rn.val == 1 {
			return t.left
		}
		// fold nested constants: c1*(c2*u) -> (c1*c2)*u, c1*(u/c2) -> (c1/c2)*u
		if lNum {
			if inner, ok := t.right.(binNode); ok {
				if c2, ok2 := inner.left.(numNode); ok2 && inner.op == '*' {
					return simplifyBin(binNode{op: '*', left: numNode{val: ln.val * c2.val}, right: inner.right})
				}
				if c2, ok2 := inner.right.(numNode); ok2 && inner.op == '/' && c2.val != 0 {
					return simplifyBin(binNode{op: '*', left: numNode{val: ln.val / c2.val}, right: inner.left})
				}
			}
		}
	case '/':
		if lNum && ln.val == 0 {
			return numNode{val: 0}
		}
		if rNum && rn.val == 1 {
			return t.left
		}
	case '^':
		if rNum && rn.val == 1 {
			return t.left
		}
		if rNum && rn.val == 0 {
			return numNode{val: 1}
		}
	}
	return t
}

// #endregion

// #region print

func precedence(n node) int {
	switch t := n.(type) {
	case binNode:
		switch t.op {
		case '+', '-':
			return 1
		case '*', '/':
			return 2
		case '^':
			return 4
		}
	case unaryNode:
		return 3
	}
	return 5
}

func printChild(child node, parentPrec int) string {
	s := printNode(child)
	if precedence(child) < parentPrec {
		return "(" + s + ")"
	}
	return s
}

func printNode(n node) string {
	switch t := n.(type) {
	case numNode:
		return FormatNumber(t.val)
	case varNode:
		return t.name
	case unaryNode:
		return "-" + printChild(t.operand, 3)
	case binNode:
		p := precedence(t)
		left := printChild(t.left, p)
		// right operand of - and / needs parens at equal precedence
		rightPrec := p
		if t.op == '-' || t.op == '/' {
			rightPrec = p + 1
		}
		right := printChild(t.right, rightPrec)
		return left + string(t.op) + right
	case callNode:
		return t.fn + "(" + printNode(t.arg) + ")"
	}
	return ""
}

// #endregion
