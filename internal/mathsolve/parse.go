// Package mathsolve is a small expression engine: normalization, numeric
// evaluation, linear-equation solving, elementary symbolic calculus, and
// multiple-choice answer matching. It mirrors what the responders need and
// nothing more.
package mathsolve

// #region imports
import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// #endregion

// #region ast

type node interface{}

type numNode struct{ val float64 }

type varNode struct{ name string }

// unaryNode is negation; unary plus is dropped during parsing.
type unaryNode struct{ operand node }

type binNode struct {
	op    byte // '+', '-', '*', '/', '^'
	left  node
	right node
}

type callNode struct {
	fn  string
	arg node
}

// knownFuncs are the function names the parser accepts.
var knownFuncs = map[string]bool{
	"sin": true, "cos": true, "tan": true,
	"log": true, "ln": true, "exp": true, "sqrt": true,
}

// #endregion

// #region normalize

var (
	implicitAfterDigit = regexp.MustCompile(`([0-9])\s*([a-zA-Z(])`)
	implicitAfterParen = regexp.MustCompile(`(\))\s*([a-zA-Z0-9(])`)
	implicitBeforeNum  = regexp.MustCompile(`([a-zA-Z])\s*([0-9])`)
	sciExponent        = regexp.MustCompile(`([0-9])[eE]([-+]?[0-9])`)
)

// Normalize rewrites common math notation into parseable form: unicode
// operators, pi, and implicit multiplication like '2x' or ')(' become
// explicit.
func Normalize(expr string) string {
	s := strings.TrimSpace(expr)
	s = strings.ReplaceAll(s, "−", "-") // unicode minus
	s = strings.ReplaceAll(s, "×", "*") // multiplication sign
	s = strings.ReplaceAll(s, "÷", "/") // division sign
	s = strings.ReplaceAll(s, "π", "pi")
	s = strings.ReplaceAll(s, "√", "sqrt")
	s = strings.ReplaceAll(s, "**", "^")

	// Shield exponents so '1e5' is not read as implicit multiplication.
	s = sciExponent.ReplaceAllString(s, "$1\x00$2")
	s = implicitAfterDigit.ReplaceAllString(s, "$1*$2")
	s = implicitAfterParen.ReplaceAllString(s, "$1*$2")
	s = implicitBeforeNum.ReplaceAllString(s, "$1*$2")
	s = strings.ReplaceAll(s, "\x00", "e")
	return s
}

// #endregion

// #region lexer

type tokenKind int

const (
	tokNum tokenKind = iota
	tokIdent
	tokOp
	tokLParen
	tokRParen
	tokEOF
)

type token struct {
	kind tokenKind
	text string
	val  float64
}

type lexer struct {
	input string
	pos   int
}

func (l *lexer) next() (token, error) {
	for l.pos < len(l.input) && (l.input[l.pos] == ' ' || l.input[l.pos] == '\t') {
		l.pos++
	}
	if l.pos >= len(l.input) {
		return token{kind: tokEOF}, nil
	}

	c := l.input[l.pos]
	switch {
	case c >= '0' && c <= '9' || c == '.':
		start := l.pos
		seenDot := false
		for l.pos < len(l.input) {
			ch := l.input[l.pos]
			if ch == '.' {
				if seenDot {
					break
				}
				seenDot = true
			} else if ch < '0' || ch > '9' {
				break
			}
			l.pos++
		}
		// Optional exponent: e5, E-3, e+10.
		if l.pos < len(l.input) && (l.input[l.pos] == 'e' || l.input[l.pos] == 'E') {
			p := l.pos + 1
			if p < len(l.input) && (l.input[p] == '+' || l.input[p] == '-') {
				p++
			}
			if p < len(l.input) && l.input[p] >= '0' && l.input[p] <= '9' {
				l.pos = p
				for l.pos < len(l.input) && l.input[l.pos] >= '0' && l.input[l.pos] <= '9' {
					l.pos++
				}
			}
		}
		text := l.input[start:l.pos]
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return token{}, fmt.Errorf("bad number %q", text)
		}
		return token{kind: tokNum, text: text, val: v}, nil

	case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_':
		start := l.pos
		for l.pos < len(l.input) {
			ch := l.input[l.pos]
			if !(ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9' || ch == '_') {
				break
			}
			l.pos++
		}
		return token{kind: tokIdent, text: l.input[start:l.pos]}, nil

	case c == '(':
		l.pos++
		return token{kind: tokLParen, text: "("}, nil
	case c == ')':
		l.pos++
		return token{kind: tokRParen, text: ")"}, nil
	case c == '+' || c == '-' || c == '*' || c == '/' || c == '^':
		l.pos++
		return token{kind: tokOp, text: string(c)}, nil
	}
	return token{}, fmt.Errorf("unexpected character %q", string(c))
}

// #endregion

// #region parser

type parser struct {
	lex *lexer
	cur token
}

// Parse normalizes and parses an expression into its AST.
func Parse(expr string) (node, error) {
	p := &parser{lex: &lexer{input: Normalize(expr)}}
	if err := p.advance(); err != nil {
		return nil, err
	}
	n, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokEOF {
		return nil, fmt.Errorf("unexpected trailing input %q", p.cur.text)
	}
	return n, nil
}

func (p *parser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.cur = t
	return nil
}

func (p *parser) parseSum() (node, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokOp && (p.cur.text == "+" || p.cur.text == "-") {
		op := p.cur.text[0]
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		left = binNode{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseProduct() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokOp && (p.cur.text == "*" || p.cur.text == "/") {
		op := p.cur.text[0]
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binNode{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (node, error) {
	if p.cur.kind == tokOp && (p.cur.text == "+" || p.cur.text == "-") {
		neg := p.cur.text == "-"
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if neg {
			return unaryNode{operand: operand}, nil
		}
		return operand, nil
	}
	return p.parsePower()
}

// parsePower is right-associative: 2^3^2 parses as 2^(3^2).
func (p *parser) parsePower() (node, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.cur.kind == tokOp && p.cur.text == "^" {
		if err := p.advance(); err != nil {
			return nil, err
		}
		exp, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return binNode{op: '^', left: base, right: exp}, nil
	}
	return base, nil
}

func (p *parser) parseAtom() (node, error) {
	switch p.cur.kind {
	case tokNum:
		n := numNode{val: p.cur.val}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return n, nil

	case tokIdent:
		name := p.cur.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		if knownFuncs[strings.ToLower(name)] && p.cur.kind == tokLParen {
			if err := p.advance(); err != nil {
				return nil, err
			}
			arg, err := p.parseSum()
			if err != nil {
				return nil, err
			}
			if p.cur.kind != tokRParen {
				return nil, fmt.Errorf("missing ) after %s(", name)
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			return callNode{fn: strings.ToLower(name), arg: arg}, nil
		}
		return varNode{name: name}, nil

	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if p.cur.kind != tokRParen {
			return nil, fmt.Errorf("missing )")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return inner, nil
	}
	return nil, fmt.Errorf("unexpected token %q", p.cur.text)
}

// #endregion

// #region canonical

// Canonical re-renders an expression in canonical simplified form, e.g.
// "2 x + 0" becomes "2*x".
func Canonical(expr string) (string, error) {
	n, err := Parse(expr)
	if err != nil {
		return "", err
	}
	return printNode(simplify(n)), nil
}

// #endregion

// #region variables

// Variables collects the distinct variable names in an AST, excluding the
// constants pi and e, in first-seen order.
func Variables(n node) []string {
	var out []string
	seen := map[string]bool{}
	var walk func(node)
	walk = func(n node) {
		switch v := n.(type) {
		case varNode:
			name := strings.ToLower(v.name)
			if name == "pi" || name == "e" {
				return
			}
			if !seen[v.name] {
				seen[v.name] = true
				out = append(out, v.name)
			}
		case unaryNode:
			walk(v.operand)
		case binNode:
			walk(v.left)
			walk(v.right)
		case callNode:
			walk(v.arg)
		}
	}
	walk(n)
	return out
}

// #endregion
