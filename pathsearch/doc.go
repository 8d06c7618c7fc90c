// Package pathsearch finds start→goal paths on a tilegrid.Grid under an
// explicit expansion budget.
//
// What
//
//   - FloodFill: unweighted breadth-first search. Blocked tiles are closed
//     before the run starts; every other tile costs one hop. Each pop queues
//     every neighbor that is not closed yet, so a cell can be queued several
//     times. The first discovery of a cell fixes its parent, so the returned
//     path has the fewest possible hops.
//   - Dijkstra: weighted search over tilegrid.CostOf. Entering a cell costs
//     the cell's tile cost. Blocked tiles are merely expensive by default
//     (BlockedExpensive); WithBlockedPolicy(BlockedImpassable) closes them as
//     flood-fill does.
//   - Retrace: rebuilds the path by following parent links back from the
//     goal, capped at the grid's cell count.
//   - Run: the same searches as resumable objects. A caller that animates the
//     frontier owns the Run and advances it a few expansions per frame.
//
// Budget
//
//	One unit of budget is one expansion: a frontier pop that is processed.
//	Flood-fill spends it on every pop, repeated copies of a closed cell
//	included; such a pop still queues that cell's open neighbors. Stale
//	Dijkstra entries (popped priority above the stored cost) are dropped
//	without spending budget. Reaching the goal takes an expansion too, so a
//	zero budget never finds a path, even when start == end.
//
// Results
//
//	Running out of budget or frontier is not an error: Result.Found is false,
//	Result.Path is empty and Result.Visited lists the expanded cells for debug
//	overlays. Errors are reserved for bad arguments (ErrBadBudget,
//	ErrBlockedEndpoint, tilegrid.ErrOutOfBounds) and for a corrupted parent
//	table (ErrInconsistentState), which is never a normal outcome.
//
// Determinism
//
//	Neighbors are enumerated left, right, up, down and equal-priority heap
//	entries pop in insertion order. Identical inputs give identical paths and
//	visited lists.
//
// Complexity (N = cells in the grid, B = budget)
//
//   - FloodFill: O(N + B) time, O(N + B) memory.
//   - Dijkstra:  O(N + B log B) time, O(N + B) memory.
package pathsearch
