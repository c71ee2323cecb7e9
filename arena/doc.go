// Package arena provides a generational slot allocator: values live in a
// contiguous slice and are addressed by an Index that pairs a slot number with
// the generation the slot had when the value was inserted.
//
// Removing a value bumps the slot's generation and pushes the slot onto a free
// list. A later Insert may reuse the slot, but the new value carries the new
// generation, so any Index handed out before the removal keeps failing Get and
// Contains instead of aliasing the unrelated newcomer.
//
// The zero Index is never returned by Insert and can be used as "no index".
//
// Complexity:
//
//   - Insert, Get, Contains, Remove: O(1) (Insert amortized).
//   - All: O(Cap()) — it walks every slot, occupied or not.
//
// Concurrency: an Arena is not safe for concurrent use.
package arena
