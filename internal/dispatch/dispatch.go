// Package dispatch routes queries to responders: auto-detection through the
// intent scorer, capability-driven request shaping, and escalation of
// insufficient replies to the generic fallback. Routing outcomes are logged
// to SQLite as telemetry, never query or reply text.
package dispatch

// #region imports
import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/danielpatrickdp/tutor-agents/go-router/internal/intent"
	"github.com/danielpatrickdp/tutor-agents/go-router/internal/responder"
)

// #endregion

// #region result

// Result is one dispatched turn: the reply plus routing metadata.
type Result struct {
	TurnID     string
	Responder  string
	Identity   intent.Identity
	Confidence intent.Confidence
	AutoRouted bool
	Escalated  bool
	Reason     string
	Reply      responder.Reply
}

// #endregion

// #region dispatcher

// Dispatcher coordinates scoring, responder invocation, and escalation.
type Dispatcher struct {
	registry *responder.Registry
	scorer   *intent.Scorer
	gate     *EscalationGate
	memory   *RouteMemory // optional; nil disables telemetry
}

// New creates a fully wired dispatcher. Pass a nil memory to skip outcome
// persistence.
func New(registry *responder.Registry, scorer *intent.Scorer, gate *EscalationGate, memory *RouteMemory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		scorer:   scorer,
		gate:     gate,
		memory:   memory,
	}
}

// Dispatch handles one turn. An empty or "auto" name routes through the
// intent scorer; anything else is looked up verbatim. Handler errors come
// back as error replies, never as a propagated failure.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, req responder.Request) Result {
	res := Result{TurnID: uuid.NewString()}

	res.Identity, res.Confidence = d.scorer.DetectIdentity(req.Query)
	if name == "" || strings.EqualFold(name, "auto") {
		res.AutoRouted = true
		name, _ = d.scorer.Detect(req.Query)
		log.Printf("[DISPATCH] route: identity=%s confidence=%s → responder=%s",
			res.Identity, res.Confidence, name)
	}
	res.Responder = name

	target, ok := d.registry.Lookup(name)
	if !ok {
		res.Reply = responder.Errorf("Unknown responder: %s", name)
		res.Reason = "unknown-responder"
		d.record(res)
		return res
	}

	reply, err := target.Handle(ctx, shape(req, target.Capabilities()))
	if err != nil {
		log.Printf("[DISPATCH] responder %s failed: %v", name, err)
		res.Reply = responder.Errorf("Responder error: %v", err)
		res.Reason = "handler-error"
		d.record(res)
		return res
	}
	res.Reply = reply

	if decision := d.gate.Evaluate(name, req.APIKey); decision.Allowed {
		if insufficient, why := Insufficient(reply); insufficient {
			res = d.escalate(ctx, res, req, why)
		}
	}

	d.record(res)
	return res
}

// shape blanks the optional request fields a responder did not declare.
func shape(req responder.Request, caps responder.Capabilities) responder.Request {
	if !caps.FallbackPref {
		req.FallbackPref = ""
	}
	if !caps.Credentials {
		req.APIKey = ""
	}
	if !caps.WebAugment {
		req.UseWeb = false
	}
	return req
}

// #endregion

// #region escalation

// escalate re-dispatches to the generic fallback with web augmentation
// forced on. An escalation failure keeps the original reply.
func (d *Dispatcher) escalate(ctx context.Context, res Result, req responder.Request, why string) Result {
	fallback, ok := d.registry.Lookup(intent.FallbackName)
	if !ok {
		return res
	}

	log.Printf("[DISPATCH] escalate: from=%s reason=%s", res.Responder, why)

	escReq := req
	escReq.UseWeb = true
	reply, err := fallback.Handle(ctx, shape(escReq, fallback.Capabilities()))
	if err != nil {
		log.Printf("[DISPATCH] escalation failed, keeping original reply: %v", err)
		return res
	}

	reply.FallbackFrom = res.Responder
	res.Reply = reply
	res.Escalated = true
	res.Reason = why
	return res
}

// #endregion

// #region telemetry

func (d *Dispatcher) record(res Result) {
	if d.memory == nil {
		return
	}
	err := d.memory.Record(OutcomeRecord{
		TurnID:     res.TurnID,
		Identity:   string(res.Identity),
		Confidence: string(res.Confidence),
		Responder:  res.Responder,
		AutoRouted: res.AutoRouted,
		Escalated:  res.Escalated,
		Reason:     res.Reason,
	})
	if err != nil {
		log.Printf("[DISPATCH] outcome record failed: %v", err)
	}
}

// #endregion
