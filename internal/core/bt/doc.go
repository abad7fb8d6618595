// Package bt implements a behaviour-tree execution engine.
//
// A host builds a tree of composites (Sequence, Selector, pass-through
// Node) and Leaf behaviours, then calls Tick on the root once per
// scheduling interval. Each tick descends to the node under the composites'
// cursors, runs exactly one unit of work there and propagates the resulting
// Status back up. Composites remember their cursor between ticks, which is
// how a multi-step behaviour resumes where it left off while a child
// reports Running.
//
// Trees are single-writer: only one Tick may be in flight per tree, and
// children must be added before ticking starts.
package bt
