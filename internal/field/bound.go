package field

import (
	"github.com/san-kum/trapsim/internal/atom"
	"github.com/san-kum/trapsim/internal/phase"
)

// Bound sums the contributions of independent field sources into one
// evaluator with the same Acceleration/Potential shape as a single
// variant. Forces and potential energies of independent sources are
// additive, so the composite needs no knowledge of which variants it
// holds.
//
// Bound reuses internal scratch buffers across calls and is not safe for
// concurrent use.
type Bound struct {
	fields     []Field
	accScratch phase.Coords
	potScratch []float64
}

// Combine binds any number of fields into one composite evaluator.
func Combine(fields ...Field) *Bound {
	return &Bound{fields: fields}
}

// Fields returns the bound sources in evaluation order.
func (b *Bound) Fields() []Field { return b.fields }

func (b *Bound) Acceleration(pos phase.Coords, sp atom.Species, t float64, out phase.Coords) phase.Coords {
	n := pos.N()
	out = ensureCoords(out, n)
	if len(b.fields) == 0 {
		for axis := range out {
			row := out[axis]
			for i := range row {
				row[i] = 0
			}
		}
		return out
	}
	out = b.fields[0].Acceleration(pos, sp, t, out)
	if len(b.fields) > 1 {
		b.accScratch = ensureCoords(b.accScratch, n)
		for _, f := range b.fields[1:] {
			b.accScratch = f.Acceleration(pos, sp, t, b.accScratch)
			for axis := 0; axis < 3; axis++ {
				dst := out[axis]
				src := b.accScratch[axis]
				for i := range dst {
					dst[i] += src[i]
				}
			}
		}
	}
	return out
}

func (b *Bound) Potential(pos phase.Coords, sp atom.Species, t float64, out []float64) []float64 {
	n := pos.N()
	out = ensureScalars(out, n)
	if len(b.fields) == 0 {
		for i := range out {
			out[i] = 0
		}
		return out
	}
	out = b.fields[0].Potential(pos, sp, t, out)
	if len(b.fields) > 1 {
		b.potScratch = ensureScalars(b.potScratch, n)
		for _, f := range b.fields[1:] {
			b.potScratch = f.Potential(pos, sp, t, b.potScratch)
			for i := range out {
				out[i] += b.potScratch[i]
			}
		}
	}
	return out
}
