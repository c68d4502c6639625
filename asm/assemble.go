package asm

import (
	"strings"

	"github.com/jyane/hackvm/gate"
	"github.com/jyane/hackvm/inst"
)

// predefinedSymbols are the standard Hack virtual-register and I/O names.
// The assembler does not pre-seed them by default — see DESIGN.md's note on
// this deviation — callers that want full Hack compatibility pass
// WithPredefinedSymbols.
var predefinedSymbols = func() map[string]int32 {
	m := map[string]int32{
		"SP": 0, "LCL": 1, "ARG": 2, "THIS": 3, "THAT": 4,
		"SCREEN": 16384, "KBD": 24576,
	}
	for i := 0; i < 16; i++ {
		m[intToR(i)] = int32(i)
	}
	return m
}()

func intToR(i int) string {
	const digits = "0123456789"
	if i < 10 {
		return "R" + string(digits[i])
	}
	return "R" + string(digits[i/10]) + string(digits[i%10])
}

// Option configures Assemble.
type Option func(*config)

type config struct {
	predefined bool
}

// WithPredefinedSymbols pre-seeds SP, LCL, ARG, THIS, THAT, R0..R15, SCREEN
// and KBD into the label table before variable allocation, matching
// standard Hack assembler behavior.
func WithPredefinedSymbols() Option {
	return func(c *config) { c.predefined = true }
}

// Assemble tokenizes, resolves and encodes Hack assembly source into a
// vector of 16-bit machine words ready to load into ROM.
func Assemble(source string, opts ...Option) ([]gate.Bus16, error) {
	cfg := config{}
	for _, o := range opts {
		o(&cfg)
	}

	var lines []line
	for i, text := range strings.Split(source, "\n") {
		l, err := parseLine(i+1, text)
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}

	labels := map[string]int32{}
	if cfg.predefined {
		for k, v := range predefinedSymbols {
			labels[k] = v
		}
	}
	pc := int32(0)
	for _, l := range lines {
		switch l.kind {
		case lineA, lineC:
			pc++
		case lineLabel:
			if _, ok := labels[l.label]; ok {
				return nil, &DuplicateLabelError{Label: l.label, Line: l.number}
			}
			labels[l.label] = pc
		}
	}

	vars := map[string]int32{}
	nextVar := int32(16)
	for _, l := range lines {
		if l.kind != lineA || !l.aIsVar {
			continue
		}
		if _, ok := labels[l.aVar]; ok {
			continue
		}
		if _, ok := vars[l.aVar]; ok {
			continue
		}
		vars[l.aVar] = nextVar
		nextVar++
	}

	var words []gate.Bus16
	for _, l := range lines {
		switch l.kind {
		case lineA:
			v := l.aConst
			if l.aIsVar {
				if a, ok := labels[l.aVar]; ok {
					v = a
				} else {
					v = vars[l.aVar]
				}
			}
			words = append(words, inst.A(v).Encode())
		case lineC:
			words = append(words, l.c.Encode())
		}
	}
	return words, nil
}
