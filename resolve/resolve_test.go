package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faultmap/plotgridgo/config"
)

func TestFigurePrecedence(t *testing.T) {
	defaults := config.Defaults{
		Graphs:        []string{"g1", "g2"},
		WeightMethods: []string{"A", "B"},
		SigtestCases:  []string{"sigtested", "nosigtest"},
	}

	t.Run("figure omits a field, top-level value applies", func(t *testing.T) {
		spec := &config.FigureSpec{Name: "f", SigtestCases: []string{"nosigtest"}}
		out, err := Figure(defaults, spec)
		require.NoError(t, err)

		assert.Equal(t, []string{"g1", "g2"}, out.Scenarios)
		assert.Equal(t, []string{"A", "B"}, out.WeightMethods)
		assert.Equal(t, []string{"nosigtest"}, out.SigtestCases)
	})

	t.Run("explicit figure value wins", func(t *testing.T) {
		spec := &config.FigureSpec{Name: "f", WeightMethods: []string{"C"}}
		out, err := Figure(defaults, spec)
		require.NoError(t, err)
		assert.Equal(t, []string{"C"}, out.WeightMethods)
	})

	t.Run("explicit empty value wins over the default", func(t *testing.T) {
		spec := &config.FigureSpec{Name: "f", SigtestCases: []string{}}
		out, err := Figure(defaults, spec)
		require.NoError(t, err)
		assert.Empty(t, out.SigtestCases)
		assert.NotNil(t, out.SigtestCases)
	})

	t.Run("input spec is not mutated", func(t *testing.T) {
		spec := &config.FigureSpec{Name: "f"}
		_, err := Figure(defaults, spec)
		require.NoError(t, err)
		assert.Nil(t, spec.Scenarios)
		assert.Nil(t, spec.WeightMethods)
	})
}

func TestFigureMissingDefault(t *testing.T) {
	spec := &config.FigureSpec{Name: "orphan", Scenarios: []string{"s"}}
	_, err := Figure(config.Defaults{Graphs: []string{"g"}}, spec)

	var missing *MissingDefaultError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "orphan", missing.Figure)
	assert.Equal(t, "weight_methods", missing.Field)
}
