// Package runner coordinates message exchange with the Anthropic Messages API
// and dispatches tool calls.
//
// Invariants:
//   - tool_use and the corresponding tool_result stay adjacent within a turn;
//     the history log validates the pairing after every tool exchange.
//   - each model step sends the full ordered conversation; one attempt, no retry.
//
// Flow:
//
//	user(text) -> assistant(tool_use) -> user(tool_result) -> assistant(text)
package runner
