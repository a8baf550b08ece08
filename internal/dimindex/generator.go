package dimindex

import "github.com/dimstore-go/dimstore/element"

// Generator produces the successive elements assigned to an auto
// dimension. It is deterministic: identical sequences of AssignNext calls
// on freshly constructed, equally-configured generators yield identical
// outputs.
type Generator struct {
	next int64
	step int64
}

// NewGenerator returns a Generator that begins at initial and advances by
// step on every call to AssignNext. A step of 0 is treated as 1.
func NewGenerator(initial, step int64) *Generator {
	if step == 0 {
		step = 1
	}
	return &Generator{next: initial, step: step}
}

// AssignNext returns the generator's current value, then advances it by
// its step.
func (g *Generator) AssignNext() element.Element {
	v := g.next
	g.next += g.step
	return element.Int(v)
}
