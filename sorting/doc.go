// Package sorting implements four classical comparison sorts over
// heterogeneous records, instrumented so their behavior can be compared
// empirically.
//
// What:
//
//   - Bubble:    adjacent-pair passes, n(n-1)/2 comparisons for every input.
//   - Insertion: left scan with shifting, adaptive on nearly sorted input.
//   - Merge:     top-down, stable, left-biased on ties.
//   - Quick:     three-way partition around the middle element's key,
//     with an explicit recursion ceiling.
//
// Every algorithm copies its input, extracts keys with key.Extract on each
// comparison, and returns a Result carrying the sorted copy, its comparison
// and move counters, and the wall time of the call (measured by Instrument on
// the monotonic clock).
//
// Counters:
//
//	Counters are algorithm-intrinsic and are NOT a normalized cost model.
//	  • Bubble:    +1 comparison per adjacent pair, +1 move per swap.
//	  • Insertion: +1 comparison per scan step, +1 move per shift.
//	  • Merge:     +1 comparison per element chosen while both halves remain,
//	               +1 move per element emitted (n per merge call, drains included).
//	               This measures data movement, not displacement.
//	  • Quick:     +1 comparison per partitioned item with a key,
//	               +1 move per item placed in the less or greater bucket.
//
// Absent keys:
//
//	A comparison involving an Absent key never moves anything. Bubble,
//	Insertion and Merge therefore always return a permutation of the input.
//
// Quick deviations (kept on purpose, callers must account for them):
//
//   - Items whose key is Absent are dropped from the output.
//   - A sublist whose middle element has an Absent key is returned unsorted.
//   - A sublist reached deeper than Options.MaxDepth is returned unsorted.
//
// Use Result.Dropped(len(input)) to detect the first case.
//
// Concurrency:
//
//	No algorithm keeps state between calls and inputs are deep-copied up
//	front (maps, slices, pointers and exported struct fields; Cloner records
//	copy themselves), so concurrent calls over the same source slice are safe
//	as long as callers do not write to it meanwhile.
//
// Complexity:
//
//   - Bubble, Insertion: Time O(n²), Memory O(n)
//   - Merge:             Time O(n log n), Memory O(n log n) (copies per level)
//   - Quick:             Time O(n log n) average, O(n²) worst, Memory O(n)
//
// Errors:
//
//	The algorithms never fail. ErrUnknownAlgorithm comes from Lookup and
//	ErrOptionViolation from NewOptions.
package sorting
