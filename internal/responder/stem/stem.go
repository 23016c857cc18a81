// Package stem answers exam-focused questions for the AP STEM subjects:
// quick subject guidance, symbolic derivatives and integrals, and topic
// setup tips. Open-ended questions delegate to the generic responder when
// a credential is available.
package stem

// #region imports
import (
	"context"
	"regexp"
	"strings"

	"github.com/danielpatrickdp/tutor-agents/go-router/internal/mathsolve"
	"github.com/danielpatrickdp/tutor-agents/go-router/internal/responder"
)

// #endregion

// #region knowledge base

var subjectGuides = map[string]string{
	"ap calculus": "AP Calculus (AB/BC): Focus on limits, derivatives, integrals, the Fundamental Theorem of Calculus, " +
		"and applications (optimization, related rates, area/volume). BC adds parametric, polar, and series. " +
		"When solving, clearly state: 1) what is known, 2) which theorem/formula applies, and 3) show algebraic steps.",
	"ap physics": "AP Physics (1, 2, C): Start by drawing a clear diagram, define a coordinate system, list known quantities, " +
		"and identify which laws apply (Newton's laws, energy conservation, kinematics, electromagnetism for 2/C). " +
		"Show units in each step and box your final answer with units.",
	"ap chemistry": "AP Chemistry: Keep track of moles, molar masses, and significant figures. For equilibrium problems write the balanced reaction, " +
		"define initial/change/equilibrium (ICE) tables, and relate concentrations to K (Kc or Kp). For titrations, follow stoichiometry carefully.",
	"ap biology": "AP Biology: Understand core principles (cell structure, energy flow, genetics, evolution). Answer free-response by connecting evidence to claims, " +
		"and use correct biological terms. Practice interpreting graphs and experimental setups.",
	"ap statistics": "AP Statistics: Be fluent with descriptive stats, probability rules, sampling distributions, confidence intervals, and hypothesis testing. " +
		"Always state null/alternative hypotheses and check conditions before applying formulas.",
	"ap computer science": "AP Computer Science A: Focus on Java syntax, OOP basics, arrays, loops, recursion, and tracing code. " +
		"For code questions, write clear pseudocode and explain complexity when asked.",
	"ap environmental": "AP Environmental Science: Understand ecosystems, energy flow, biogeochemical cycles, and human impacts. " +
		"Use data to support policy or management recommendations.",
}

type topicTip struct {
	pattern *regexp.Regexp
	tip     string
}

var topicTips = []topicTip{
	{regexp.MustCompile(`limit|fundamental theorem`),
		"Calculus tip: For limits, check if direct substitution works; if indeterminate, try factoring, conjugate, or L'Hopital's rule. " +
			"The Fundamental Theorem connects antiderivatives to definite integrals."},
	{regexp.MustCompile(`stoichiometry|mole|equilibrium|k\(eq\)|titration|oxidation|reduction`),
		"Chemistry tip: Balance the reaction first. Convert grams to moles using molar mass, then use stoichiometric ratios. " +
			"For equilibrium, write the balanced equation and an ICE table, then express K in terms of concentrations. " +
			"For titrations, identify limiting reactant and use stoichiometry to find concentrations."},
	{regexp.MustCompile(`kinematics|projectile|force|momentum|energy|work`),
		"Physics tip: Draw a free-body diagram, define axes, and list knowns with units. " +
			"Use kinematic equations (v = v0 + at, s = s0 + v0 t + 0.5 a t^2) for constant acceleration, and energy/momentum conservation where applicable. " +
			"Include a solved-structure: 1) diagram and variables, 2) governing equations, 3) algebraic steps, 4) numerical substitution and units."},
	{regexp.MustCompile(`probability|confidence interval|hypothesis test|p-value|sampling`),
		"Statistics tip: Check assumptions (random sampling, independence, sample size). For confidence intervals, use estimate +/- margin where margin = z*SE. " +
			"For hypothesis tests state H0 and H1, compute test statistic and p-value, and compare to alpha. Show interpretation in context."},
	{regexp.MustCompile(`array|recursion|class|object|inheritance|runtime complexity`),
		"CS tip: For code tracing, list variable states per step. For algorithmic problems, provide clear pseudocode, then analyze time and space complexity (Big-O). " +
			"Include edge cases and simple test cases."},
}

const moreDetailPrompt = "Please provide more details or paste a specific problem and I'll help with definitions, formulas, or setup."

// #endregion

// #region calculus

var derivativeCues = []string{"derivative", "diff", "d/dx"}
var integralCues = []string{"integral", "integrate", "antiderivative"}

func hasAny(q string, cues []string) bool {
	for _, c := range cues {
		if strings.Contains(q, c) {
			return true
		}
	}
	return false
}

// stripLeadIn removes the request phrasing so only the expression remains.
func stripLeadIn(q string, phrases []string) string {
	for _, p := range phrases {
		if strings.Contains(q, p) {
			q = strings.Replace(q, p, "", 1)
			break
		}
	}
	return strings.TrimSpace(q)
}

// SolveDerivative differentiates the expression embedded in a request like
// "derivative of x^2" and renders the worked answer.
func SolveDerivative(query string) string {
	expr := stripLeadIn(strings.ToLower(strings.TrimSpace(query)), []string{
		"find derivative of", "find the derivative of", "derivative of", "derivative", "d/dx", "differentiate",
	})
	if expr == "" {
		return "Please provide an expression to differentiate, e.g., 'derivative of x^2 + 3x'"
	}
	d, err := mathsolve.Derivative(expr)
	if err != nil {
		return "Could not solve derivative. Try a simpler expression like 'derivative of x^2' or 'derivative of sin(x)'"
	}
	shown, cerr := mathsolve.Canonical(expr)
	if cerr != nil {
		shown = expr
	}
	return "f(x) = " + shown + "\nDerivative: f'(x) = " + d
}

// SolveIntegral integrates the expression embedded in a request like
// "integral of x^2" and renders the antiderivative with its constant.
func SolveIntegral(query string) string {
	expr := stripLeadIn(strings.ToLower(strings.TrimSpace(query)), []string{
		"find integral of", "find the integral of", "integral of", "antiderivative of", "integrate", "integral",
	})
	if expr == "" {
		return "Please provide an expression to integrate, e.g., 'integral of x^2 + 3x'"
	}
	in, err := mathsolve.Integral(expr)
	if err != nil {
		return "Could not solve integral. Try a simpler expression like 'integral of x^2' or 'integral of sin(x)'"
	}
	shown, cerr := mathsolve.Canonical(expr)
	if cerr != nil {
		shown = expr
	}
	return "f(x) = " + shown + "\nAntiderivative: F(x) = " + in + " + C"
}

// #endregion

// #region responder

// Agent is the AP STEM responder. Delegate, when set, receives open-ended
// questions that arrive with a credential.
type Agent struct {
	Delegate responder.Responder
}

func New() *Agent { return &Agent{} }

func (a *Agent) Name() string { return "AP STEM Agent" }

func (a *Agent) Capabilities() responder.Capabilities {
	return responder.Capabilities{FallbackPref: true, Credentials: true, WebAugment: true}
}

func (a *Agent) Handle(ctx context.Context, req responder.Request) (responder.Reply, error) {
	q := strings.ToLower(strings.TrimSpace(req.Query))
	if q == "" {
		return responder.Textual(
			"Ask an AP STEM question (Calculus, Physics, Chemistry, Biology, Statistics, Computer Science, Environmental). " +
				"Give details for numerical help, or ask conceptual questions for quick tips."), nil
	}

	if hasAny(q, derivativeCues) {
		return responder.Textual(SolveDerivative(q)), nil
	}
	if hasAny(q, integralCues) {
		return responder.Textual(SolveIntegral(q)), nil
	}

	for key, guide := range subjectGuides {
		if strings.Contains(q, key) {
			return responder.Textual(guide), nil
		}
	}
	for _, t := range topicTips {
		if t.pattern.MatchString(q) {
			return responder.Textual(t.tip), nil
		}
	}

	if req.APIKey != "" && a.Delegate != nil {
		reply, err := a.Delegate.Handle(ctx, req)
		if err == nil {
			return reply, nil
		}
		// delegation failures fall through to the generic prompt
	}
	return responder.Textual(moreDetailPrompt), nil
}

// #endregion
