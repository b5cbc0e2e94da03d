package marquee

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fallback = "HELLO, WORLD!"

func colorNames(t *testing.T, seq *Sequence) []string {
	t.Helper()
	names := make([]string, seq.Len())
	for i := 0; i < seq.Len(); i++ {
		if c, ok := seq.At(i).Color(); ok {
			names[i] = c.Name
		}
	}
	return names
}

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	require.Equal(t, 6, p.Len())

	var names []string
	for _, c := range p.Colors() {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"red", "blue", "green", "yellow", "violet", "orange"}, names)
	assert.Equal(t, "#FF0000", p.At(0).Hex())
	assert.Equal(t, "#FFA500", p.At(5).Hex())

	// Colors hands out a copy.
	cs := p.Colors()
	cs[0].Name = "mauve"
	assert.Equal(t, "red", DefaultPalette().At(0).Name)
}

func TestNewPalettePanicsWhenEmpty(t *testing.T) {
	assert.Panics(t, func() { NewPalette() })
}

func TestBuildSequence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "ascii", input: "AB", want: []string{"A", "B"}},
		{name: "keeps spaces", input: "A B", want: []string{"A", " ", "B"}},
		{name: "punctuation", input: "Hi, you!", want: []string{"H", "i", ",", " ", "y", "o", "u", "!"}},
		{name: "multibyte", input: "héllo", want: []string{"h", "é", "l", "l", "o"}},
		{name: "combining mark stays with base", input: "e\u0301x", want: []string{"e\u0301", "x"}},
		{name: "empty", input: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := BuildSequence(tt.input)
			got := make([]string, 0, seq.Len())
			for i := 0; i < seq.Len(); i++ {
				got = append(got, seq.At(i).Text)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, seq.Text())
		})
	}
}

func TestResolveMessage(t *testing.T) {
	assert.Equal(t, fallback, ResolveMessage("", fallback))
	assert.Equal(t, fallback, ResolveMessage("   ", fallback))
	assert.Equal(t, fallback, ResolveMessage("\t\n ", fallback))
	assert.Equal(t, " hi ", ResolveMessage(" hi ", fallback))

	blank := BuildSequence(ResolveMessage("  ", fallback))
	assert.Equal(t, BuildSequence(fallback), blank)
}

func TestUnitsStartUncoloured(t *testing.T) {
	seq := BuildSequence("AB")
	for i := 0; i < seq.Len(); i++ {
		_, ok := seq.At(i).Color()
		assert.False(t, ok)
	}
}

func TestTickTwoLetters(t *testing.T) {
	seq := BuildSequence("AB")
	c := NewCycler(DefaultPalette())

	c.Tick(seq)

	assert.Equal(t, []string{"red", "blue"}, colorNames(t, seq))
	assert.Equal(t, 5, c.Start())
}

func TestTickSkipsSpaces(t *testing.T) {
	seq := BuildSequence("A B")
	c := NewCycler(DefaultPalette())

	c.Tick(seq)

	assert.Equal(t, []string{"red", "", "blue"}, colorNames(t, seq))
	_, ok := seq.At(1).Color()
	assert.False(t, ok, "space must never be coloured")
	assert.Equal(t, 5, c.Start())
}

func TestTickDriftsLeft(t *testing.T) {
	seq := BuildSequence("ABC")
	c := NewCycler(DefaultPalette())

	c.Tick(seq)
	assert.Equal(t, []string{"red", "blue", "green"}, colorNames(t, seq))

	c.Tick(seq)
	assert.Equal(t, []string{"orange", "red", "blue"}, colorNames(t, seq))

	c.Tick(seq)
	assert.Equal(t, []string{"violet", "orange", "red"}, colorNames(t, seq))
	assert.Equal(t, 3, c.Start())
}

func TestTickStartIndexWraps(t *testing.T) {
	seq := BuildSequence("X")
	c := NewCycler(DefaultPalette())
	n := c.Palette().Len()

	for i := 0; i < 3*n; i++ {
		before := c.Start()
		c.Tick(seq)
		assert.Equal(t, (before-1+n)%n, c.Start())

		got, ok := seq.At(0).Color()
		require.True(t, ok)
		assert.Equal(t, c.Palette().At(before), got)
	}
}

func TestTickFullRotationWithoutSpaces(t *testing.T) {
	seq := BuildSequence("HELLOWORLDHELLO")
	c := NewCycler(DefaultPalette())
	p := c.Palette()

	for tick := 0; tick < 8; tick++ {
		before := c.Start()
		c.Tick(seq)
		for i := 0; i < seq.Len(); i++ {
			got, ok := seq.At(i).Color()
			require.True(t, ok)
			assert.Equal(t, p.At((before+i)%p.Len()), got, "tick %d unit %d", tick, i)
		}
	}
}

func TestTickAllSpaces(t *testing.T) {
	seq := BuildSequence("   ")
	c := NewCycler(DefaultPalette())

	c.Tick(seq)
	c.Tick(seq)

	assert.Equal(t, []string{"", "", ""}, colorNames(t, seq))
	assert.Equal(t, 4, c.Start())
}

func TestTickCustomPalette(t *testing.T) {
	p := NewPalette(Color{Name: "black"}, Color{Name: "white"})
	seq := BuildSequence("a b c")
	c := NewCycler(p)

	c.Tick(seq)

	assert.Equal(t, []string{"black", "", "white", "", "black"}, colorNames(t, seq))
	assert.Equal(t, 1, c.Start())
}

func TestNewCyclerFallsBackToDefaultPalette(t *testing.T) {
	c := NewCycler(Palette{})
	assert.Equal(t, DefaultPalette().Len(), c.Palette().Len())
}
