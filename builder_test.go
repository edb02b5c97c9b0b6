// FILE: lixenwraith/params/builder_test.go
package params_test

import (
	"testing"

	"github.com/lixenwraith/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuilder tests the builder pattern
func TestBuilder(t *testing.T) {
	t.Run("ArgsOnly", func(t *testing.T) {
		p, reg, err := params.NewBuilder().
			WithArgs([]string{"tetrode", "3", "-MaxIter", "600"}).
			Build()
		require.NoError(t, err)
		assert.Equal(t, "tetrode", p.FileBase)
		assert.Equal(t, 3, p.ElecNo)
		assert.Equal(t, 600, p.MaxIter)

		v, err := reg.Int64("MaxIter")
		require.NoError(t, err)
		assert.Equal(t, int64(600), v)
	})

	t.Run("SourcePrecedence", func(t *testing.T) {
		file := writeFile(t, "kk.toml", "MaxIter = 600\nSubset = 4\nVerbose = 0\n")
		t.Setenv("TEST_MaxIter", "700")
		t.Setenv("TEST_Subset", "5")

		p, _, err := params.NewBuilder().
			WithFile(file).
			WithEnvPrefix("TEST_").
			WithArgs([]string{"-MaxIter", "800"}).
			Build()
		require.NoError(t, err)
		assert.Equal(t, 800, p.MaxIter) // cli
		assert.Equal(t, 5, p.Subset)    // env
		assert.Equal(t, 0, p.Verbose)   // file
		assert.Equal(t, 20, p.MinClusters)
	})

	t.Run("CallerOwnedParams", func(t *testing.T) {
		own := params.Defaults()
		p, _, err := params.NewBuilder().
			WithParams(own).
			WithArgs([]string{"-SplitEvery", "10"}).
			Build()
		require.NoError(t, err)
		assert.Same(t, own, p)
		assert.Equal(t, 10, own.SplitEvery)
	})

	t.Run("CustomPositional", func(t *testing.T) {
		p, _, err := params.NewBuilder().
			WithPositional("StartCluFile").
			WithArgs([]string{"start.clu", "-Subset", "2"}).
			Build()
		require.NoError(t, err)
		assert.Equal(t, "start.clu", p.StartCluFile)
		assert.Equal(t, "electrode", p.FileBase)
	})

	t.Run("UnknownPolicy", func(t *testing.T) {
		_, _, err := params.NewBuilder().
			WithArgs([]string{"-Bogus", "1"}).
			Build()
		assert.ErrorIs(t, err, params.ErrUnknownParameter)

		p, _, err := params.NewBuilder().
			WithUnknownPolicy(params.UnknownWarn).
			WithArgs([]string{"-Bogus", "1", "-MaxIter", "9"}).
			Build()
		require.NoError(t, err)
		assert.Equal(t, 9, p.MaxIter)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, _, err := params.NewBuilder().
			WithFile("does-not-exist.toml").
			WithArgs(nil).
			Build()
		assert.ErrorIs(t, err, params.ErrFileNotFound)
	})

	t.Run("NilParams", func(t *testing.T) {
		_, _, err := params.NewBuilder().WithParams(nil).WithArgs(nil).Build()
		assert.Error(t, err)
	})

	t.Run("MustBuildPanics", func(t *testing.T) {
		assert.Panics(t, func() {
			params.NewBuilder().WithArgs([]string{"-MaxIter", "x"}).MustBuild()
		})
		assert.NotPanics(t, func() {
			p, _ := params.NewBuilder().WithArgs(nil).MustBuild()
			assert.Equal(t, 500, p.MaxIter)
		})
	})
}
