package transform

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/peirce/core"
	"github.com/katalvlaran/peirce/crosscut"
	"github.com/katalvlaran/peirce/graph"
	"github.com/katalvlaran/peirce/hierarchy"
)

// Engine applies transformation rules to graph snapshots.
//
// Apply is a pure function of (graph, rule, targets, parameters); the only
// shared state is the append-only audit history behind mu, so one engine may
// serve many goroutines exploring candidate rewrites from a shared snapshot.
type Engine struct {
	opts Options
	v    crosscut.Validator

	mu      sync.Mutex
	history []Attempt
}

// NewEngine constructs an engine with the given options.
func NewEngine(opts ...Option) *Engine {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{opts: o}
}

// History returns a snapshot copy of the audit log.
func (e *Engine) History() []Attempt {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Attempt, len(e.history))
	copy(out, e.history)
	return out
}

// Apply runs one rule application against g and returns the Attempt record.
//
// Pipeline: precondition check → cross-cut pre-flight → apply → entity
// consistency scan → identity preservation → optional semantic validation.
// On any failure the returned Attempt carries the classification and cause,
// and g is untouched; every structural change happened on discarded
// snapshots.
func (e *Engine) Apply(g graph.Graph, rule Rule, targets TargetSet, target core.ContextID, opts ...ApplyOption) Attempt {
	var cfg applyConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	a := Attempt{
		Rule:          rule,
		Targets:       NewTargetSet(targets...),
		TargetContext: target,
		Meta:          map[string]any{},
	}

	// Double cut insertion reads its wrap set from WithSubgraphItems; when
	// the option is absent the targets serve, so LegalTransformations output
	// replays through Apply unchanged.
	if rule == DoubleCutInsertion && len(cfg.wrapItems) == 0 {
		cfg.wrapItems = a.Targets
	}

	// 1. Rule-specific structural preconditions.
	if err := e.checkPreconditions(g, rule, a.Targets, target, cfg); err != nil {
		return e.fail(a, classify(err), err)
	}

	// 2. Cross-cut pre-flight: reject rewrites that would break identity.
	if vio := e.v.ValidateTransformationConstraints(g, rule.String(), a.Targets, target); len(vio) > 0 {
		return e.fail(a, EntityViolation,
			fmt.Errorf("transform: cross-cut violations: %s", strings.Join(vio, "; ")))
	}

	// 3. Structural rewrite on fresh snapshots.
	result, err := e.applyRule(g, rule, a.Targets, target, cfg)
	if err != nil {
		return e.fail(a, classify(err), err)
	}

	// 4. Post-mutation entity-reference scan.
	if err := entityConsistency(result); err != nil {
		return e.fail(a, EntityViolation, err)
	}

	// 5. Post-mutation identity preservation.
	identity := e.v.ValidateIdentityPreservation(result)
	if !identity.IsPreserved {
		return e.fail(a, EntityViolation,
			fmt.Errorf("transform: post-transformation cross-cut violations: %s",
				strings.Join(identity.Violations, "; ")))
	}
	a.Meta["cross_cuts"] = len(identity.CrossCuts)
	a.Meta["cross_cut_warnings"] = identity.Warnings

	// 6. Optional semantic vetting by the external collaborator.
	if e.opts.Semantic != nil {
		if err := e.opts.Semantic.ValidateTransformationSemantics(g, result, rule); err != nil {
			return e.fail(a, SemanticViolation, err)
		}
	}

	a.Ok = true
	a.Result = result
	a.Meta["entities_delta"] = result.EntityCount() - g.EntityCount()
	a.Meta["predicates_delta"] = result.PredicateCount() - g.PredicateCount()
	a.Meta["contexts_delta"] = result.Contexts().Len() - g.Contexts().Len()
	e.record(a)
	return a
}

// fail finalizes and records a rejected attempt.
func (e *Engine) fail(a Attempt, kind FailureKind, err error) Attempt {
	a.Ok = false
	a.Failure = kind
	a.Err = err
	e.record(a)
	return a
}

// record appends the attempt to the history and emits the audit log entry.
// This is the engine's only lock.
func (e *Engine) record(a Attempt) {
	e.mu.Lock()
	e.history = append(e.history, a)
	e.mu.Unlock()

	fields := []zap.Field{
		zap.String("rule", a.Rule.String()),
		zap.Bool("ok", a.Ok),
		zap.Int("targets", len(a.Targets)),
	}
	if a.Err != nil {
		fields = append(fields, zap.String("failure", a.Failure.String()), zap.Error(a.Err))
		e.opts.Logger.Debug("transformation rejected", fields...)
		return
	}
	e.opts.Logger.Debug("transformation applied", fields...)
}

// classify maps a rejection cause to its failure kind.
func classify(err error) FailureKind {
	switch {
	case errors.Is(err, ErrUnknownRule):
		return InvalidRule
	case errors.Is(err, ErrNoIsomorph):
		return IsomorphismFailed
	case errors.Is(err, ErrTargetContextRequired), errors.Is(err, hierarchy.ErrContextNotFound):
		return ContextViolation
	default:
		return PreconditionFailed
	}
}

// entityConsistency verifies that every predicate tuple in g resolves to
// existing entities.
func entityConsistency(g graph.Graph) error {
	for _, pid := range g.PredicateIDs() {
		p, _ := g.Predicate(pid)
		for _, eid := range p.Entities {
			if !g.HasEntity(eid) {
				return fmt.Errorf("transform: predicate %s references non-existent entity %s", pid, eid)
			}
		}
	}
	return nil
}

// commonContext returns the lowest common ancestor of the targets'
// containing contexts, or "" when no target is contained anywhere.
func commonContext(g graph.Graph, targets TargetSet) core.ContextID {
	var ctxs []core.ContextID
	for _, t := range targets {
		if ctx, ok := g.ContainerOf(t); ok {
			ctxs = append(ctxs, ctx)
		}
	}
	if len(ctxs) == 0 {
		return ""
	}
	common := ctxs[0]
	for _, ctx := range ctxs[1:] {
		common = lowestCommonAncestor(g, common, ctx)
	}
	return common
}

// lowestCommonAncestor compares root paths and returns the last shared
// element, falling back to the root.
func lowestCommonAncestor(g graph.Graph, a, b core.ContextID) core.ContextID {
	pa := g.Contexts().Path(a)
	pb := g.Contexts().Path(b)
	common := g.RootID()
	for i := 0; i < len(pa) && i < len(pb); i++ {
		if pa[i] != pb[i] {
			break
		}
		common = pa[i]
	}
	return common
}

// doubleCutPattern reports whether ctx is the outer cut of a double-cut
// pair: a negative-polarity cut whose only content is exactly one child cut.
func doubleCutPattern(g graph.Graph, ctx core.ContextID) bool {
	c, ok := g.Contexts().Context(ctx)
	if !ok || c.Kind != core.Cut || c.Polarity() != core.Negative {
		return false
	}
	children := g.Contexts().Children(ctx)
	if len(children) != 1 {
		return false
	}
	// No content besides the inner cut.
	return len(c.Items) == 1 && c.HasItem(core.ItemID(children[0]))
}
