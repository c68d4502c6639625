// Package asm assembles Hack symbolic assembly into 16-bit machine words:
// a parsec-based grammar tokenizes the source, then a two-pass symbol
// resolution assigns label and variable addresses before emitting.
package asm

import "github.com/jyane/hackvm/inst"

// lineKind distinguishes a tokenized source line's shape; blank and
// comment-only lines carry neither a label nor an instruction and don't
// advance the program counter.
type lineKind int

const (
	lineNone lineKind = iota
	lineLabel
	lineA
	lineC
)

// line is one tokenized source line, numbered for error reporting.
type line struct {
	number int
	kind   lineKind

	label string // lineLabel

	aConst int32  // lineA, !aIsVar
	aVar   string // lineA, aIsVar
	aIsVar bool

	c inst.Instruction // lineC
}
