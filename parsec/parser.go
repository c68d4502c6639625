// Package parsec is a small generic parser-combinator library: a Parser
// consumes atoms from a tape at a position and either succeeds with a typed
// output and the next position, or fails leaving the tape untouched. asm
// builds the Hack assembly grammar on top of it.
package parsec

// Parser consumes Atoms from tape starting at pos, returning the parsed
// Output and the position just past what was consumed, or ok=false if it
// didn't match — in which case pos must be ignored by the caller and
// parsing continues from the original position.
type Parser[Atom, Output any] interface {
	Parse(tape []Atom, pos int) (Output, int, bool)
}

type funcParser[Atom, Output any] struct {
	parse func([]Atom, int) (Output, int, bool)
}

func (p funcParser[Atom, Output]) Parse(tape []Atom, pos int) (Output, int, bool) {
	return p.parse(tape, pos)
}

func lift[Atom, Output any](f func([]Atom, int) (Output, int, bool)) Parser[Atom, Output] {
	return funcParser[Atom, Output]{f}
}

// AtomP matches a single atom equal to want.
func AtomP[A comparable](want A) Parser[A, A] {
	return lift(func(tape []A, pos int) (A, int, bool) {
		var zero A
		if pos >= len(tape) || tape[pos] != want {
			return zero, pos, false
		}
		return tape[pos], pos + 1, true
	})
}

// Func matches a single atom via f, producing whatever f derives from it.
func Func[Atom, R any](f func(Atom) (R, bool)) Parser[Atom, R] {
	return lift(func(tape []Atom, pos int) (R, int, bool) {
		var zero R
		if pos >= len(tape) {
			return zero, pos, false
		}
		r, ok := f(tape[pos])
		if !ok {
			return zero, pos, false
		}
		return r, pos + 1, true
	})
}

// Pair is T2's output.
type Pair[A, B any] struct {
	First  A
	Second B
}

// T2 runs two parsers in sequence.
func T2[Atom, A, B any](pa Parser[Atom, A], pb Parser[Atom, B]) Parser[Atom, Pair[A, B]] {
	return lift(func(tape []Atom, pos int) (Pair[A, B], int, bool) {
		var zero Pair[A, B]
		a, p, ok := pa.Parse(tape, pos)
		if !ok {
			return zero, pos, false
		}
		b, p2, ok := pb.Parse(tape, p)
		if !ok {
			return zero, pos, false
		}
		return Pair[A, B]{a, b}, p2, true
	})
}

// Triple is T3's output.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// T3 runs three parsers in sequence.
func T3[Atom, A, B, C any](pa Parser[Atom, A], pb Parser[Atom, B], pc Parser[Atom, C]) Parser[Atom, Triple[A, B, C]] {
	return lift(func(tape []Atom, pos int) (Triple[A, B, C], int, bool) {
		var zero Triple[A, B, C]
		a, p, ok := pa.Parse(tape, pos)
		if !ok {
			return zero, pos, false
		}
		b, p, ok := pb.Parse(tape, p)
		if !ok {
			return zero, pos, false
		}
		c, p, ok := pc.Parse(tape, p)
		if !ok {
			return zero, pos, false
		}
		return Triple[A, B, C]{a, b, c}, p, true
	})
}

// Either is E2's output: exactly one of A or B matched.
type Either[A, B any] struct {
	IsA bool
	A   A
	B   B
}

// E2 tries pa, then pb, tagging whichever matched.
func E2[Atom, A, B any](pa Parser[Atom, A], pb Parser[Atom, B]) Parser[Atom, Either[A, B]] {
	return lift(func(tape []Atom, pos int) (Either[A, B], int, bool) {
		if a, p, ok := pa.Parse(tape, pos); ok {
			return Either[A, B]{IsA: true, A: a}, p, true
		}
		if b, p, ok := pb.Parse(tape, pos); ok {
			return Either[A, B]{IsA: false, B: b}, p, true
		}
		var zero Either[A, B]
		return zero, pos, false
	})
}

// OneOf tries each parser in order, returning the first that matches.
func OneOf[Atom, Output any](parsers ...Parser[Atom, Output]) Parser[Atom, Output] {
	return lift(func(tape []Atom, pos int) (Output, int, bool) {
		for _, p := range parsers {
			if o, np, ok := p.Parse(tape, pos); ok {
				return o, np, true
			}
		}
		var zero Output
		return zero, pos, false
	})
}

// Vec runs parsers in sequence, failing if any of them fails.
func Vec[Atom, Output any](parsers ...Parser[Atom, Output]) Parser[Atom, []Output] {
	return lift(func(tape []Atom, pos int) ([]Output, int, bool) {
		out := make([]Output, 0, len(parsers))
		p := pos
		for _, pr := range parsers {
			o, np, ok := pr.Parse(tape, p)
			if !ok {
				return nil, pos, false
			}
			out = append(out, o)
			p = np
		}
		return out, p, true
	})
}

// Maybe is Option's output.
type Maybe[T any] struct {
	Value   T
	Present bool
}

// Option never fails: it reports whether p matched, without rejecting the
// parse if it didn't.
func Option[Atom, Output any](p Parser[Atom, Output]) Parser[Atom, Maybe[Output]] {
	return lift(func(tape []Atom, pos int) (Maybe[Output], int, bool) {
		if o, np, ok := p.Parse(tape, pos); ok {
			return Maybe[Output]{Value: o, Present: true}, np, true
		}
		return Maybe[Output]{}, pos, true
	})
}

// Repeat matches p zero or more times, greedily, never failing.
func Repeat[Atom, Output any](p Parser[Atom, Output]) Parser[Atom, []Output] {
	return lift(func(tape []Atom, pos int) ([]Output, int, bool) {
		var out []Output
		cur := pos
		for {
			o, np, ok := p.Parse(tape, cur)
			if !ok {
				break
			}
			out = append(out, o)
			cur = np
		}
		return out, cur, true
	})
}

// Discard runs p and throws away its output, keeping only whether and how
// far it matched.
func Discard[Atom, Output any](p Parser[Atom, Output]) Parser[Atom, struct{}] {
	return lift(func(tape []Atom, pos int) (struct{}, int, bool) {
		_, np, ok := p.Parse(tape, pos)
		if !ok {
			return struct{}{}, pos, false
		}
		return struct{}{}, np, true
	})
}

// None always succeeds without consuming anything.
func None[Atom any]() Parser[Atom, struct{}] {
	return lift(func(tape []Atom, pos int) (struct{}, int, bool) {
		return struct{}{}, pos, true
	})
}

// Must turns a Parser[Atom, Maybe[T]] into a Parser[Atom, T], failing the
// parse outright when the inner value is absent — used where a Refined
// lookup (e.g. a comp/dest/jump mnemonic table) can't name a Must-have
// result for the matched text.
func Must[Atom, T any](p Parser[Atom, Maybe[T]]) Parser[Atom, T] {
	return lift(func(tape []Atom, pos int) (T, int, bool) {
		m, np, ok := p.Parse(tape, pos)
		if !ok || !m.Present {
			var zero T
			return zero, pos, false
		}
		return m.Value, np, true
	})
}

// Refined maps a successful parse's output through f.
func Refined[Atom, P, R any](p Parser[Atom, P], f func(P) R) Parser[Atom, R] {
	return lift(func(tape []Atom, pos int) (R, int, bool) {
		o, np, ok := p.Parse(tape, pos)
		if !ok {
			var zero R
			return zero, pos, false
		}
		return f(o), np, true
	})
}
