// Package input reads the numbers a run operates on from a line-oriented
// stream, validating each line as it arrives and stopping at the first
// violation.
package input
