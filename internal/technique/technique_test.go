package technique

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestStyleOf(t *testing.T) {
	tests := []struct {
		tech  Technique
		bloom float64
		glow  string
	}{
		{Shrine, 2.5, "#ff0000"},
		{Purple, 4.0, "#bb00ff"},
		{Void, 2.0, "#00ffff"},
		{Red, 2.5, "#ff3333"},
		{Neutral, 1.0, "#00ffff"},
	}

	for _, tt := range tests {
		t.Run(tt.tech.String(), func(t *testing.T) {
			s := StyleOf(tt.tech)
			assert.Equal(t, tt.bloom, s.Bloom)
			assert.Equal(t, tt.glow, s.GlowHex())
			assert.NotEmpty(t, s.Name)
		})
	}

	assert.Equal(t, StyleOf(Neutral), StyleOf(Technique(99)))
}

func TestParse(t *testing.T) {
	for _, tech := range All {
		got, err := Parse(tech.String())
		require.NoError(t, err)
		assert.Equal(t, tech, got)
	}

	got, err := Parse("  Shrine ")
	require.NoError(t, err)
	assert.Equal(t, Shrine, got)

	_, err = Parse("blue")
	assert.Error(t, err)
	assert.Equal(t, "technique(42)", Technique(42).String())
}

func TestTechnique_YAMLText(t *testing.T) {
	var doc struct {
		Sequence []Technique `yaml:"sequence"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("sequence: [red, void, neutral]"), &doc))
	assert.Equal(t, []Technique{Red, Void, Neutral}, doc.Sequence)

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), "- red")

	assert.Error(t, yaml.Unmarshal([]byte("sequence: [green]"), &doc))
}
