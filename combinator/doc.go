// Package combinator provides small, composable parsers over string input.
//
// A Parser consumes a prefix of its input and returns the unconsumed remainder
// along with a value. A parser that does not match returns a *Mismatch
// recording the input at the point of failure. Parsers hold no mutable state
// and may be reused across inputs and goroutines.
//
// Alternation is ordered and backtracking: Either retries its second parser
// from the original input when the first one mismatches. Errors other than
// *Mismatch abort parsing and are never retried.
package combinator
