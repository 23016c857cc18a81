// Package highschool answers common high-school questions from a small FAQ,
// a bank of worked sample problems, and per-topic formula tips.
package highschool

// #region imports
import (
	"context"
	"regexp"
	"strings"

	"github.com/danielpatrickdp/tutor-agents/go-router/internal/responder"
)

// #endregion

// #region banks

var faq = map[string]string{
	"pythagoras":     "In a right-angled triangle, a^2 + b^2 = c^2 where c is the hypotenuse.",
	"photosynthesis": "Photosynthesis converts sunlight into chemical energy in plants: 6CO2 + 6H2O -> C6H12O6 + 6O2.",
	"cell":           "Cells are the basic unit of life; eukaryotic cells have a nucleus, prokaryotic cells do not.",
	"newton":         "Newton's second law: F = m * a (force = mass x acceleration).",
	"acid":           "An acid donates H+ ions in water; a base accepts H+ ions. pH < 7 is acidic.",
}

var samples = map[string]string{
	"ap calc sample derivative": "Question: Find the derivative of f(x)=x^3-5x+2 at x=2.\n" +
		"Answer: f'(x)=3x^2-5, so f'(2)=3*(2)^2-5=12-5=7.",
	"ap calc sample integral": "Question: Compute the definite integral of x from 0 to 2.\n" +
		"Answer: integral_0^2 x dx = [x^2/2]_0^2 = (4/2)-0 = 2.",
	"ap physics projectile": "Question: A ball is thrown at 20 m/s at 30 degrees above the horizontal. Ignore air resistance. What is the horizontal range?\n" +
		"Answer: Range = (v^2 * sin(2theta))/g. Here v=20, theta=30, sin(60)=0.866, so R = 400*0.866/9.8 = 346.4/9.8 = 35.35 m.",
	"ap chem stoichiometry": "Question: How many moles are in 18.0 g of H2O?\n" +
		"Answer: Molar mass H2O is about 18.0 g/mol, so moles = 18.0 g / 18.0 g/mol = 1.0 mol.",
	"ap stats ci": "Question: Sample mean 50, sd 10, n=25. What is a 95% CI for the mean?\n" +
		"Answer: SE = 10/sqrt(25) = 2. 95% CI = mean +/- 1.96*SE = 50 +/- 3.92 -> (46.08, 53.92).",
	"ap econ elasticity": "Question: If price rises 10% and quantity demanded falls 15%, what is the price elasticity?\n" +
		"Answer: Elasticity = %dQ / %dP = -15% / 10% = -1.5 (elastic).",
}

type topicTip struct {
	pattern *regexp.Regexp
	tip     string
}

var topicTips = []topicTip{
	{regexp.MustCompile(`derivative|differentiate|deriv of|d/dx`),
		"Derivatives quick rule: derivative of x^n is n*x^(n-1). " +
			"For trig: d/dx sin x = cos x; d/dx cos x = -sin x. Ask a specific function for step-by-step help."},
	{regexp.MustCompile(`integral|integrate|antiderivative`),
		"Integrals common rule: integral of x^n dx = x^(n+1)/(n+1) + C for n != -1. " +
			"For definite integrals, provide bounds like 'integral of x^2 from 0 to 2'."},
	{regexp.MustCompile(`kinematics|velocity|acceleration|projectile`),
		"Kinematics: use v = v0 + a*t, x = x0 + v0*t + 1/2*a*t^2, and v^2 = v0^2 + 2*a*(x-x0). " +
			"Specify which variable you need and the knowns."},
	{regexp.MustCompile(`force|momentum|impulse|energy|work`),
		"Physics formulas: F = m*a; momentum p = m*v; kinetic energy KE = 1/2*m*v^2; work W = F*d (in direction of force)."},
	{regexp.MustCompile(`stoichiometry|moles?\b|molarity|mol/L`),
		"Stoichiometry: convert grams to moles using mol = grams / molar_mass. For solutions, M = moles solute / liters solution. " +
			"Provide an equation or amounts for numerical help."},
	{regexp.MustCompile(`equilibrium|k\(eq\)|le chatelier`),
		"Chemical equilibrium: for aA + bB <-> cC + dD, Kc = [C]^c[D]^d / ([A]^a[B]^b). " +
			"Le Chatelier's principle: a system shifts to counteract changes in concentration, pressure, or temperature."},
	{regexp.MustCompile(`supply|demand|elasticity|equilibrium price|market equilibrium`),
		"Economics basics: Equilibrium where supply = demand. Price elasticity of demand = % change in quantity / % change in price. " +
			"Elasticity >1 is elastic, <1 inelastic. Ask a specific scenario for calculations."},
	{regexp.MustCompile(`gdp|inflation|fiscal policy|monetary policy|aggregate demand|aggregate supply`),
		"Macro basics: GDP measures total output. Fiscal policy uses government spending/taxes; monetary policy uses central bank actions (e.g., interest rates). " +
			"Inflation is a general rise in prices with causes including demand-pull and cost-push."},
}

// #endregion

// #region responder

type Agent struct{}

func New() *Agent { return &Agent{} }

func (a *Agent) Name() string { return "High School Agent" }

func (a *Agent) Capabilities() responder.Capabilities { return responder.Capabilities{} }

func (a *Agent) Handle(ctx context.Context, req responder.Request) (responder.Reply, error) {
	q := strings.ToLower(strings.TrimSpace(req.Query))
	if q == "" {
		return responder.Textual("Ask me a question related to high-school topics (math, physics, chemistry, biology, etc.)."), nil
	}

	for key, answer := range faq {
		if strings.Contains(q, key) {
			return responder.Textual(answer), nil
		}
	}
	for key, sample := range samples {
		if strings.Contains(q, key) {
			return responder.Textual(sample), nil
		}
	}
	for _, t := range topicTips {
		if t.pattern.MatchString(q) {
			return responder.Textual(t.tip), nil
		}
	}

	return responder.Textual("Please provide more details or paste a specific problem and I'll help with definitions, formulas, or setup."), nil
}

// #endregion
