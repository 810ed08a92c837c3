package casefold_test

import (
	"testing"

	"github.com/UnendingLoop/MiniGrep/internal/casefold"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Positive - already lower", input: "safe, fast.", want: "safe, fast."},
		{name: "Positive - ascii upper", input: "rUsT", want: "rust"},
		{name: "Positive - cyrillic", input: "ПрИвЕт", want: "привет"},
		{name: "Positive - kelvin sign", input: "\u212Aelvin", want: "kelvin"},
		{name: "Positive - empty", input: "", want: ""},
		{name: "Positive - invalid utf8 passes through", input: "A\xffB", want: "a\xffb"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, casefold.String(tt.input))
		})
	}
}

func TestMapMatchesString(t *testing.T) {
	for _, s := range []string{"Rust:", "Trust me.", "\u212AK", "ПрИвЕт мир", "Straße", ""} {
		require.Equal(t, casefold.String(s), casefold.Map(s).String(), "Map and String disagree on %q", s)
	}
}

func TestSpan(t *testing.T) {
	// знак кельвина U+212A занимает 3 байта, а в свернутом виде - 1
	src := "a\u212Ab"
	m := casefold.Map(src)
	require.Equal(t, "akb", m.String())
	require.Equal(t, 3, m.Len())

	cases := []struct {
		name               string
		start, end         int
		wantStart, wantEnd int
	}{
		{name: "Positive - ascii prefix", start: 0, end: 1, wantStart: 0, wantEnd: 1},
		{name: "Positive - shrunk rune", start: 1, end: 2, wantStart: 1, wantEnd: 4},
		{name: "Positive - tail", start: 2, end: 3, wantStart: 4, wantEnd: 5},
		{name: "Positive - whole", start: 0, end: 3, wantStart: 0, wantEnd: 5},
		{name: "Positive - past end", start: 3, end: 3, wantStart: 5, wantEnd: 5},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			s, e := m.Span(tt.start, tt.end)
			require.Equal(t, tt.wantStart, s)
			require.Equal(t, tt.wantEnd, e)
		})
	}
}
