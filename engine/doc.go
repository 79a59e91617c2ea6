// Package engine implements the conversation state machine: one mutable
// message log plus running token-usage counters, kept consistent across
// model switches, call failures and transcript round-trips.
//
// Invariants maintained here:
//   - at most one system message, always at index 0 when present
//   - usage counters only grow across successful sends, and total always
//     equals prompt plus completion
//   - a failed send leaves history and counters exactly as they were
//
// The engine is owned by one logical actor; none of its methods are safe
// for concurrent use.
package engine
