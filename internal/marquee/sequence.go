package marquee

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Unit is one displayed character of the message.
type Unit struct {
	Text string

	color   Color
	colored bool
}

// Color returns the assigned colour and whether one has been assigned.
func (u *Unit) Color() (Color, bool) { return u.color, u.colored }

// IsSpace reports whether the unit is whitespace. Whitespace units are never
// coloured and never consume a palette slot.
func (u *Unit) IsSpace() bool {
	r, size := utf8.DecodeRuneInString(u.Text)
	return size == len(u.Text) && unicode.IsSpace(r)
}

func (u *Unit) setColor(c Color) {
	u.color = c
	u.colored = true
}

// Sequence is the ordered list of units, left to right. Its length and order
// are fixed once built.
type Sequence struct {
	units []Unit
}

// ResolveMessage returns input, or fallback when input is empty or
// whitespace only.
func ResolveMessage(input, fallback string) string {
	if strings.TrimSpace(input) == "" {
		return fallback
	}
	return input
}

// BuildSequence splits msg into one unit per grapheme cluster, keeping spaces.
func BuildSequence(msg string) *Sequence {
	seq := &Sequence{units: make([]Unit, 0, uniseg.GraphemeClusterCount(msg))}
	g := uniseg.NewGraphemes(msg)
	for g.Next() {
		seq.units = append(seq.units, Unit{Text: g.Str()})
	}
	return seq
}

// Len returns the number of units.
func (s *Sequence) Len() int { return len(s.units) }

// At returns a pointer to unit i. Callers must not retain it across a
// rebuild of the sequence.
func (s *Sequence) At(i int) *Unit { return &s.units[i] }

// Text reassembles the original message.
func (s *Sequence) Text() string {
	var b strings.Builder
	for i := range s.units {
		b.WriteString(s.units[i].Text)
	}
	return b.String()
}
