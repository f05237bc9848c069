package normalization

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type color string

const (
	colorRed  color = "red"
	colorBlue color = "blue"
)

func newColorNormalizer() *Normalizer[color] {
	return NewNormalizer(map[string]color{
		"red":  colorRed,
		"Blue": colorBlue,
	}, colorRed)
}

func TestNormalizer_Normalize(t *testing.T) {
	n := newColorNormalizer()

	tests := []struct {
		name     string
		input    string
		expected color
	}{
		{"exact match", "red", colorRed},
		{"key folded at construction", "blue", colorBlue},
		{"case insensitive", "BLUE", colorBlue},
		{"surrounding spaces", "  blue  ", colorBlue},
		{"unknown falls back to default", "green", colorRed},
		{"empty falls back to default", "", colorRed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, n.Normalize(tt.input))
		})
	}
}

func TestNormalizer_NormalizeWithError(t *testing.T) {
	n := newColorNormalizer()

	v, err := n.NormalizeWithError(" Blue")
	require.NoError(t, err)
	require.Equal(t, colorBlue, v)

	v, err = n.NormalizeWithError("")
	require.NoError(t, err)
	require.Equal(t, colorRed, v)

	_, err = n.NormalizeWithError("green")
	require.ErrorContains(t, err, `invalid value "green"`)
	require.ErrorContains(t, err, "[blue red]")
}

func TestNormalizer_ValidKeysIsACopy(t *testing.T) {
	n := newColorNormalizer()
	keys := n.ValidKeys()
	keys[0] = "mutated"
	require.Equal(t, []string{"blue", "red"}, n.ValidKeys())
}
