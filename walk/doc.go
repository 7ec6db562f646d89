// Package walk is the generic traversal engine over an index-based topology.
//
// What
//
//   - Walks the implicit graph formed by entities (vertices or faces) and the
//     half-edges connecting them, starting from one or more roots.
//   - The visit order is decided by an interchangeable Queue strategy:
//   - NewStack        arbitrary (LIFO) order
//   - BreadthFirst    binary heap ordered by ascending depth
//   - DepthFirst      binary heap ordered by descending depth
//   - NewOrdered      binary heap ordered by any caller predicate
//   - NewRandom       uniform random pick-and-remove
//   - NewDistanceQueue binary heap whose items derive their distance at push time
//   - Tracks finalized entities in a dense Visited bitset, one bit per entity.
//   - Hands a single reusable Visitor to the callback on every step. The
//     callback decides what to enqueue (VisitNeighbor, VisitEdge,
//     VisitAllNeighbors, Revisit*) and may Ignore or Break.
//   - Distances are generic over any integer or float type (Number).
//
// Step semantics
//
//	pop item → already visited? discard
//	         → reset Visitor, call fn
//	         → Break()  : stop, item NOT marked
//	         → Ignore() : item not marked, may be processed again later
//	         → default  : item marked visited
//
// Duplicates are allowed in the queue; de-duplication happens at pop time.
// Revisit* clears the target bit before pushing so that a better distance
// found later is processed again (relaxation).
//
// Depth-first
//
//	DepthFirst is a priority queue preferring the greatest depth, not a
//	recursive DFS. Items of equal priority leave the heap in push order,
//	so siblings are taken first-pushed-first, unlike a call stack.
//
// Complexity (V = entities, E = half-edges)
//
//   - Stack / Random: O(V + E) pushes and pops, O(1) each.
//   - Heap based:     O((V + E) log(V + E)).
//   - Memory:         O(V) bits for Visited plus the queue (≤ E items).
//
// Usage
//
//	g := topo.VertexGraph()
//	res, err := walk.Walk(g, []int{0}, walk.BreadthFirst[int](),
//		func(v *walk.Visitor[int]) error {
//			fmt.Println(v.Entity(), v.Depth())
//			v.VisitAllNeighbors()
//			return nil
//		})
//
// Errors
//
//   - ErrGraphNil, ErrQueueNil, ErrVisitNil for nil arguments.
//   - ErrRootOutOfRange if a root index is outside [0, g.Len()).
//   - ErrOptionViolation for invalid options.
//   - context errors when WithContext is cancelled.
//   - Wrapped errors returned by the visit callback.
package walk
