package asm

import (
	"github.com/jyane/hackvm/inst"
	"github.com/jyane/hackvm/parsec"
)

// content is the grammar's intermediate result for one non-blank line:
// exactly one of isLabel, isA or (implicitly, neither) a C-instruction.
type content struct {
	isLabel bool
	label   string

	isA    bool
	aConst int32
	aVar   string
	aIsVar bool

	c inst.Instruction
}

func isAsciiAlpha(r rune) (rune, bool) {
	if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
		return r, true
	}
	return 0, false
}

func isSymbolPunct(r rune) bool {
	switch r {
	case '_', '.', '$', ':':
		return true
	}
	return false
}

func isSymbolStart(r rune) (rune, bool) {
	if _, ok := isAsciiAlpha(r); ok || isSymbolPunct(r) {
		return r, true
	}
	return 0, false
}

func isSymbolCont(r rune) (rune, bool) {
	if _, ok := isSymbolStart(r); ok {
		return r, true
	}
	if r >= '0' && r <= '9' {
		return r, true
	}
	return 0, false
}

func symbolParser() parsec.Parser[rune, string] {
	return parsec.Refined(
		parsec.T2(parsec.Func(isSymbolStart), parsec.Repeat(parsec.Func(isSymbolCont))),
		func(p parsec.Pair[rune, []rune]) string {
			return string(p.First) + string(p.Second)
		},
	)
}

var destTable = map[string]inst.Dest{
	"A": inst.DestA, "AD": inst.DestAD, "ADM": inst.DestADM, "AM": inst.DestAM,
	"D": inst.DestD, "DM": inst.DestDM, "M": inst.DestM,
}

func destParser() parsec.Parser[rune, inst.Dest] {
	letters := parsec.Repeat(parsec.OneOf(parsec.AtomP('A'), parsec.AtomP('M'), parsec.AtomP('D')))
	withEquals := parsec.T2(letters, parsec.AtomP('='))
	return parsec.Must(parsec.Refined(withEquals, func(p parsec.Pair[[]rune, rune]) parsec.Maybe[inst.Dest] {
		d, ok := destTable[string(p.First)]
		if !ok {
			return parsec.Maybe[inst.Dest]{}
		}
		return parsec.Maybe[inst.Dest]{Value: d, Present: true}
	}))
}

type compMatch struct {
	comp  inst.Comp
	useM  bool
}

var compTable = map[string]compMatch{
	"0": {inst.CompZero, false}, "1": {inst.CompOne, false}, "-1": {inst.CompMinusOne, false},
	"D": {inst.CompD, false},
	"A": {inst.CompY, false}, "M": {inst.CompY, true},
	"!D": {inst.CompNotD, false},
	"!A": {inst.CompNotY, false}, "!M": {inst.CompNotY, true},
	"-D": {inst.CompMinusD, false},
	"-A": {inst.CompMinusY, false}, "-M": {inst.CompMinusY, true},
	"D+1": {inst.CompDPlus1, false},
	"A+1": {inst.CompYPlus1, false}, "M+1": {inst.CompYPlus1, true},
	"D-1": {inst.CompDMinus1, false},
	"A-1": {inst.CompYMinus1, false}, "M-1": {inst.CompYMinus1, true},
	"D+A": {inst.CompDPlusY, false}, "D+M": {inst.CompDPlusY, true},
	"D-A": {inst.CompDMinusY, false}, "D-M": {inst.CompDMinusY, true},
	"A-D": {inst.CompYMinusD, false}, "M-D": {inst.CompYMinusD, true},
	"D&A": {inst.CompDAndY, false}, "D&M": {inst.CompDAndY, true},
	"D|A": {inst.CompDOrY, false}, "D|M": {inst.CompDOrY, true},
}

func compParser() parsec.Parser[rune, compMatch] {
	chars := parsec.Repeat(parsec.OneOf(
		parsec.AtomP('0'), parsec.AtomP('1'), parsec.AtomP('+'), parsec.AtomP('-'),
		parsec.AtomP('!'), parsec.AtomP('&'), parsec.AtomP('|'),
		parsec.AtomP('A'), parsec.AtomP('M'), parsec.AtomP('D'),
	))
	return parsec.Must(parsec.Refined(chars, func(rs []rune) parsec.Maybe[compMatch] {
		m, ok := compTable[string(rs)]
		if !ok {
			return parsec.Maybe[compMatch]{}
		}
		return parsec.Maybe[compMatch]{Value: m, Present: true}
	}))
}

var jumpTable = map[string]inst.Jump{
	"JGT": inst.JGT, "JEQ": inst.JEQ, "JGE": inst.JGE, "JLT": inst.JLT,
	"JNE": inst.JNE, "JLE": inst.JLE, "JMP": inst.JMP,
}

func jumpParser() parsec.Parser[rune, inst.Jump] {
	letters := parsec.Repeat(parsec.Func(isAsciiAlpha))
	withSemi := parsec.T2(parsec.AtomP(';'), letters)
	return parsec.Must(parsec.Refined(withSemi, func(p parsec.Pair[rune, []rune]) parsec.Maybe[inst.Jump] {
		j, ok := jumpTable[string(p.Second)]
		if !ok {
			return parsec.Maybe[inst.Jump]{}
		}
		return parsec.Maybe[inst.Jump]{Value: j, Present: true}
	}))
}

func aInstructionParser() parsec.Parser[rune, content] {
	operand := parsec.E2(parsec.Numeric(), symbolParser())
	return parsec.Refined(
		parsec.T2(parsec.AtomP('@'), operand),
		func(p parsec.Pair[rune, parsec.Either[int32, string]]) content {
			if p.Second.IsA {
				return content{isA: true, aConst: p.Second.A}
			}
			return content{isA: true, aIsVar: true, aVar: p.Second.B}
		},
	)
}

func cInstructionParser() parsec.Parser[rune, content] {
	return parsec.Refined(
		parsec.T3(parsec.Option(destParser()), compParser(), parsec.Option(jumpParser())),
		func(t parsec.Triple[parsec.Maybe[inst.Dest], compMatch, parsec.Maybe[inst.Jump]]) content {
			dest := inst.DestNone
			if t.First.Present {
				dest = t.First.Value
			}
			jump := inst.JumpNone
			if t.Third.Present {
				jump = t.Third.Value
			}
			return content{c: inst.C(dest, t.Second.comp, t.Second.useM, jump)}
		},
	)
}

func labelParser() parsec.Parser[rune, content] {
	return parsec.Refined(
		parsec.T3(parsec.AtomP('('), symbolParser(), parsec.AtomP(')')),
		func(t parsec.Triple[rune, string, rune]) content {
			return content{isLabel: true, label: t.Second}
		},
	)
}

func commentParser() parsec.Parser[rune, struct{}] {
	any := parsec.Func(func(r rune) (rune, bool) { return r, true })
	return parsec.Discard(parsec.T2(parsec.Word("//"), parsec.Repeat(any)))
}

func lineContentParser() parsec.Parser[rune, content] {
	return parsec.OneOf(aInstructionParser(), cInstructionParser(), labelParser())
}

func spaces() parsec.Parser[rune, struct{}] {
	return parsec.Discard(parsec.Repeat(parsec.AtomP(' ')))
}

func fullLineParser() parsec.Parser[rune, parsec.Maybe[content]] {
	return parsec.Refined(
		parsec.T3(spaces(), parsec.Option(lineContentParser()), parsec.Discard(parsec.T2(spaces(), parsec.Option(commentParser())))),
		func(t parsec.Triple[struct{}, parsec.Maybe[content], struct{}]) parsec.Maybe[content] {
			return t.Second
		},
	)
}

// parseLine tokenizes one source line (no trailing newline) into a line,
// numbered for error reporting.
func parseLine(number int, text string) (line, error) {
	tape := []rune(text)
	result, pos, ok := fullLineParser().Parse(tape, 0)
	if !ok || pos != len(tape) {
		return line{}, &ParseError{Line: number, Text: text}
	}
	out := line{number: number}
	if !result.Present {
		out.kind = lineNone
		return out, nil
	}
	c := result.Value
	switch {
	case c.isLabel:
		out.kind = lineLabel
		out.label = c.label
	case c.isA:
		out.kind = lineA
		out.aConst = c.aConst
		out.aVar = c.aVar
		out.aIsVar = c.aIsVar
	default:
		out.kind = lineC
		out.c = c.c
	}
	return out, nil
}
