// Package math evaluates arithmetic expressions, checks numeric equations,
// and solves simple linear equations. Calculus requests hand off to the AP
// STEM solver, and symbolic input beyond the linear solver delegates to the
// generic responder when a credential is present.
package math

// #region imports
import (
	"context"
	"fmt"
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/danielpatrickdp/tutor-agents/go-router/internal/mathsolve"
	"github.com/danielpatrickdp/tutor-agents/go-router/internal/responder"
	"github.com/danielpatrickdp/tutor-agents/go-router/internal/responder/stem"
)

// #endregion

// #region responder

const memoSize = 256

var (
	derivativeCue = regexp.MustCompile(`derivative|d/dx|\bdiff\b|differentiate`)
	integralCue   = regexp.MustCompile(`integral|integrate|antiderivative`)
	unitQuantity  = regexp.MustCompile(`[0-9]+\s*(meters|m|feet|ft|kg|g|lbs|seconds|s|minutes|min|hours|h)\b`)
	hasLetter     = regexp.MustCompile(`[a-zA-Z]`)
)

const wordProblemHint = "This looks like a word problem with numeric quantities. Approach: 1) list symbols and units, 2) write equations, " +
	"3) check units and solve. If you'd like, paste the numeric values exactly and I'll attempt to set up the equations."

// Agent is the math responder. Computation is memoized per query text.
// Delegate, when set, receives symbolic input the linear solver cannot
// handle, provided a credential accompanies the request.
type Agent struct {
	Delegate responder.Responder
	memo     *lru.Cache[string, string]
}

func New() *Agent {
	memo, _ := lru.New[string, string](memoSize)
	return &Agent{memo: memo}
}

func (a *Agent) Name() string { return "Math Agent" }

func (a *Agent) Capabilities() responder.Capabilities {
	return responder.Capabilities{FallbackPref: true, Credentials: true, WebAugment: true}
}

func (a *Agent) Handle(ctx context.Context, req responder.Request) (responder.Reply, error) {
	q := strings.TrimSpace(req.Query)
	if q == "" {
		return responder.Textual("Please provide a math expression or a simple equation (e.g. '2+2' or '2*x+3=7')."), nil
	}

	ql := strings.ToLower(q)
	if derivativeCue.MatchString(ql) {
		return responder.Textual(stem.SolveDerivative(q)), nil
	}
	if integralCue.MatchString(ql) {
		return responder.Textual(stem.SolveIntegral(q)), nil
	}

	// word problems get a structured setup hint, plus a direct compute when
	// the text still evaluates
	if unitQuantity.MatchString(ql) {
		computed := a.compute(q)
		if computeSucceeded(computed) {
			return responder.Textual(wordProblemHint + "\n\nQuick compute:\n" + computed), nil
		}
		return responder.Textual(wordProblemHint), nil
	}

	if hasLetter.MatchString(q) {
		if sol, err := mathsolve.SolveLinear(q); err == nil {
			return responder.Textual(fmt.Sprintf("Solution: %s", sol)), nil
		}
		if req.APIKey != "" && a.Delegate != nil {
			reply, err := a.Delegate.Handle(ctx, req)
			if err == nil {
				return reply, nil
			}
			return responder.Textual("The expression has symbolic variables beyond the built-in solver, and the delegated responder failed. Try a linear equation like '2x+3=7'."), nil
		}
		return responder.Textual("The expression has symbolic variables beyond the built-in solver. Provide a numeric expression or a simple linear equation like '2x+3=7'."), nil
	}

	return responder.Textual(a.compute(q)), nil
}

// #endregion

// #region compute

// compute evaluates letter-free input: plain expressions and numeric
// equation checks. Results are memoized keyed by the raw query text.
func (a *Agent) compute(q string) string {
	if cached, ok := a.memo.Get(q); ok {
		return cached
	}
	out := evaluate(q)
	a.memo.Add(q, out)
	return out
}

// computeSucceeded distinguishes a worked evaluation from the parse-failure
// messages, which themselves contain example digits.
func computeSucceeded(out string) bool {
	return strings.HasPrefix(out, "Expression:") || strings.HasPrefix(out, "Equation numeric test:")
}

func evaluate(q string) string {
	if strings.Contains(q, "=") {
		parts := strings.SplitN(q, "=", 2)
		left, lerr := mathsolve.EvalNumeric(parts[0])
		right, rerr := mathsolve.EvalNumeric(parts[1])
		if lerr != nil || rerr != nil {
			return "I couldn't parse that equation. Try something simpler like '2+2' or '3*x+1=10'."
		}
		return fmt.Sprintf("Equation numeric test: %s == %s -> %t",
			mathsolve.FormatNumber(left), mathsolve.FormatNumber(right), left == right)
	}

	val, err := mathsolve.EvalNumeric(q)
	if err != nil {
		return "I couldn't parse that math expression. Try something simpler like '2+2' or '3*x+1=10'."
	}
	return fmt.Sprintf("Expression: %s\nNumeric result: %s", mathsolve.Normalize(q), mathsolve.FormatNumber(val))
}

// #endregion
