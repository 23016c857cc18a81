package dispatch

// #region gate

// VetoType classifies why an escalation was blocked.
type VetoType string

const (
	VetoSelfEscalation VetoType = "self_escalation"
	VetoNoCredentials  VetoType = "no_credentials"
	VetoOverride       VetoType = "override"
)

// GateDecision is the outcome of one escalation gate evaluation.
type GateDecision struct {
	Allowed bool
	Veto    VetoType
	Reason  string
}

// EscalationGate decides whether an insufficient reply may be re-dispatched
// to the generic fallback. Overrides disable escalation per responder name;
// an absent entry means allowed.
type EscalationGate struct {
	fallbackName string
	overrides    map[string]bool
}

// NewEscalationGate creates a gate protecting the named fallback responder.
func NewEscalationGate(fallbackName string, overrides map[string]bool) *EscalationGate {
	return &EscalationGate{fallbackName: fallbackName, overrides: overrides}
}

// SetOverride turns escalation on or off for one responder name.
func (g *EscalationGate) SetOverride(responderName string, allowed bool) {
	if g.overrides == nil {
		g.overrides = make(map[string]bool)
	}
	g.overrides[responderName] = allowed
}

// Evaluate runs the hard-veto pass: the fallback never escalates to itself,
// escalation requires credentials, and a per-responder override can turn it
// off entirely.
func (g *EscalationGate) Evaluate(responderName, apiKey string) GateDecision {
	if responderName == g.fallbackName {
		return GateDecision{Veto: VetoSelfEscalation, Reason: "chosen responder is the fallback itself"}
	}
	if apiKey == "" {
		return GateDecision{Veto: VetoNoCredentials, Reason: "escalation requires credentials"}
	}
	if g.overrides != nil {
		if allowed, ok := g.overrides[responderName]; ok && !allowed {
			return GateDecision{Veto: VetoOverride, Reason: "escalation disabled for " + responderName}
		}
	}
	return GateDecision{Allowed: true}
}

// #endregion
