package transform

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/peirce/core"
)

// Options holds engine-level configuration. Use with NewEngine(opts...).
type Options struct {
	// Logger receives one audit entry per attempt. Defaults to a nop logger.
	Logger *zap.Logger

	// Semantic, if non-nil, vets every successful structural rewrite; a
	// returned error classifies the attempt as SemanticViolation.
	Semantic SemanticValidator

	// MaxEnumeration bounds the number of target sets LegalTransformations
	// emits per rule. Zero means unbounded; deep graphs should set a budget.
	MaxEnumeration int
}

// Option configures the engine at construction time.
type Option func(*Options)

// DefaultOptions returns the engine defaults: nop logger, no semantic
// validator, unbounded enumeration.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithLogger sets the audit logger. A nil logger restores the nop default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.Logger = l
	}
}

// WithSemanticValidator attaches an external meaning-preservation checker.
func WithSemanticValidator(sv SemanticValidator) Option {
	return func(o *Options) { o.Semantic = sv }
}

// WithMaxEnumeration bounds LegalTransformations output per rule (0 = no bound).
func WithMaxEnumeration(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.MaxEnumeration = n
	}
}

// applyConfig carries per-call parameters of Apply.
type applyConfig struct {
	wrapItems TargetSet // DoubleCutInsertion: items to move into the inner cut
	insertion *Subgraph // Insertion: the structure to add
}

// ApplyOption configures a single Apply call.
type ApplyOption func(*applyConfig)

// WithSubgraphItems names the items DoubleCutInsertion moves into the inner
// cut. Every item must sit directly in the target context. When the option
// is absent, Apply wraps its target items instead.
func WithSubgraphItems(items ...core.ItemID) ApplyOption {
	return func(c *applyConfig) { c.wrapItems = NewTargetSet(items...) }
}

// WithInsertion supplies the structure the Insertion rule adds.
func WithInsertion(sub Subgraph) ApplyOption {
	return func(c *applyConfig) { c.insertion = &sub }
}
