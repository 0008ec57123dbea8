// Package tree generates random rooted trees of labelled nodes for use as
// seed data.
//
// # Overview
//
// A generated document is a single root node with every other node reachable
// through nested children. Each node carries a UUID, the UUID of its owning
// parent (nil for the root), a display value, a deletion flag that is always
// false, and an ordered list of children.
//
// # Shape
//
// [Generator.Build] attaches each new node to a parent drawn uniformly from a
// set of eligible parents. A new node joins that set with probability
// [PromoteProbability]; the rest stay leaves forever. The result mixes long
// chains with wide fan-outs instead of a balanced or uniformly random tree.
//
// # Determinism
//
// All randomness, including UUID bytes, is drawn from the generator's own
// ChaCha8 stream. Two generators created with [NewSeededGenerator] and the
// same seed produce identical trees; [NewGenerator] picks a fresh seed and
// exposes it through [Generator.Seed] so a run can be reproduced.
//
// # Inspection
//
// [Flatten], [Count] and [Depth] walk a generated (or re-imported) forest, and
// [Validate] checks the structural invariants: one root, unique ids, parent
// references that match the containing node, and no deleted nodes.
package tree
