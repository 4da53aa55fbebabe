package directive

// Segment is one element of a compiled format string: either a literal run
// of bytes or a single directive.
type Segment struct {
	// IsDirective discriminates the union: true for a directive segment,
	// false for a literal segment.
	IsDirective bool
	// Text is the literal run. Only meaningful for literal segments; it is
	// a substring of the compiled format, never a copy.
	Text string
	// Dir is the parsed directive. Only meaningful for directive segments.
	// A directive with KindNone marks the point where the format became
	// unrecognizable; engines stop there.
	Dir Directive
}

// Program is a compiled format string, ready to be executed repeatedly by
// either engine. Programs are immutable after Compile and safe for
// concurrent use.
type Program struct {
	// Format is the source text the program was compiled from.
	Format string
	// Mode is the grammar variant the program was compiled under.
	Mode Mode
	// Segments is the sequence of literal runs and directives.
	Segments []Segment
}

// Compile parses format under the given grammar mode into a Program.
//
// Compilation never fails: an unrecognized directive compiles to a
// KindNone segment and ends the program, since no engine ever proceeds
// past one.
func Compile(format string, mode Mode) *Program {
	p := &Program{
		Format:   format,
		Mode:     mode,
		Segments: make([]Segment, 0, countSegments(format)),
	}

	start := 0
	pos := 0
	for pos < len(format) {
		if format[pos] != '%' {
			pos++
			continue
		}

		if pos > start {
			p.Segments = append(p.Segments, Segment{Text: format[start:pos]})
		}

		dir, next := Parse(format, pos+1, mode)
		p.Segments = append(p.Segments, Segment{IsDirective: true, Dir: dir})
		if dir.Kind == KindNone {
			return p
		}

		start = next
		pos = next
	}

	if pos > start {
		p.Segments = append(p.Segments, Segment{Text: format[start:pos]})
	}

	return p
}

// NumDirectives returns the number of directive segments, counting
// suppressed ones and '%%'.
func (p *Program) NumDirectives() int {
	count := 0
	for i := range p.Segments {
		if p.Segments[i].IsDirective {
			count++
		}
	}

	return count
}

// countSegments estimates the segment count for pre-allocation: each '%'
// opens a directive and may close a literal.
func countSegments(format string) int {
	count := 1
	for i := 0; i < len(format); i++ {
		if format[i] == '%' {
			count += 2
		}
	}

	return count
}
