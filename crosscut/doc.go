// Package crosscut analyzes lines of identity that cross cut boundaries and
// validates that transformations preserve identity across them.
//
// What:
//
//   - AnalyzeCrossCuts computes, for every entity, the set of contexts from
//     which it is reachable - directly through predicate membership and
//     transitively through explicit identity joins (ligatures) - and reports
//     every entity reachable from more than one context.
//   - ValidateIdentityPreservation flags cross-cuts whose contexts mix
//     polarity without a nesting relationship, which would equivocate over
//     the entity's quantificational scope.
//   - ValidateTransformationConstraints is the pre-flight gate the
//     transformation engine runs before mutating: it rejects rewrites that
//     would orphan or sever a cross-cut identity. An empty result means the
//     rewrite is safe.
//
// Why:
//   - Reachability must be an explicit closure computation, not a single
//     pass: identity joins can chain entities whose predicates live in
//     disjoint contexts, and the chain as a whole determines scope.
//
// The Validator is stateless; the zero value is ready to use.
package crosscut
