// Package quote picks the random quote shown at the top of the page.
package quote

import "math/rand"

var quotes = []string{
	"Tuesday has no feel. Monday has a feel, Friday has a feel, Sunday has a feel...",
	"Jerry, just remember, its not a lie if you believe it.",
	"You know I always wanted to pretend I was an architect.",
	"I don't think George has ever thought he's better than anybody.",
}

// All returns every quote in the table.
func All() []string {
	out := make([]string, len(quotes))
	copy(out, quotes)
	return out
}

// Picker chooses quotes using an index function.
type Picker struct {
	intN func(n int) int
}

// NewPicker returns a Picker. A nil intN uses math/rand.
func NewPicker(intN func(n int) int) *Picker {
	if intN == nil {
		intN = rand.Intn
	}
	return &Picker{intN: intN}
}

// Pick returns one quote.
func (p *Picker) Pick() string {
	return quotes[p.intN(len(quotes))]
}

// Random returns a random quote.
func Random() string {
	return NewPicker(nil).Pick()
}
