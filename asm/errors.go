package asm

import "fmt"

// ParseError reports a line the grammar could not tokenize.
type ParseError struct {
	Line int
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("asm: line %d: cannot parse %q", e.Line, e.Text)
}

// DuplicateLabelError reports a label declared more than once.
type DuplicateLabelError struct {
	Label string
	Line  int
}

func (e *DuplicateLabelError) Error() string {
	return fmt.Sprintf("asm: line %d: label %q already declared", e.Line, e.Label)
}
