// Package pipeline evaluates an ordered list of result files against one
// threshold and hands each evaluation to a visit callback.
//
// Files are processed one at a time, in the given order. The first failure
// stops the run; evaluations already visited are not retracted.
package pipeline
