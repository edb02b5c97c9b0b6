// FILE: lixenwraith/params/table_test.go
package params

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableShape(t *testing.T) {
	table := Table(Defaults())
	require.Len(t, table, 28)

	seen := make(map[string]bool)
	for _, d := range table {
		assert.False(t, seen[d.Name], "duplicate %s", d.Name)
		seen[d.Name] = true
		assert.True(t, isValidName(d.Name), d.Name)
		assert.NotEmpty(t, d.Doc, d.Name)
		assert.NotEmpty(t, d.Default, d.Name)
	}

	assert.Equal(t, "FileBase", table[0].Name)
	assert.Equal(t, "ElecNo", table[1].Name)
	assert.Equal(t, "UseDistributional", table[len(table)-1].Name)
}

func TestTableWidths(t *testing.T) {
	reg, err := NewRegistry(Defaults())
	require.NoError(t, err)

	debug, _ := reg.Lookup("Debug")
	assert.Equal(t, KindInt, debug.Kind)
	assert.Equal(t, 8, debug.Width)

	maxIter, _ := reg.Lookup("MaxIter")
	assert.Equal(t, KindInt, maxIter.Kind)
	assert.Equal(t, strconv.IntSize, maxIter.Width)

	for _, name := range []string{"FileBase", "UseFeatures", "StartCluFile"} {
		d, _ := reg.Lookup(name)
		assert.Equal(t, KindString, d.Kind, name)
		assert.Equal(t, StrLen, d.Capacity, name)
	}
}

// TestTableDefaultLiterals checks each literal describes the value Defaults sets
func TestTableDefaultLiterals(t *testing.T) {
	for _, d := range Table(Defaults()) {
		switch d.Kind {
		case KindInt:
			assert.Equal(t, d.Default, d.FormatValue(), d.Name)
		case KindString:
			assert.Equal(t, d.Default, strconv.Quote(d.Value().(string)), d.Name)
		case KindBool:
			want := d.Default == "1" || d.Default == "true"
			assert.Equal(t, want, d.Value(), d.Name)
		case KindFloat:
			if d.Name == "DistThresh" {
				assert.Equal(t, math.Log(1000), d.Value())
				continue
			}
			f, err := strconv.ParseFloat(d.Default, 64)
			require.NoError(t, err, d.Name)
			assert.Equal(t, f, d.Value(), d.Name)
		}
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "FLOAT", KindFloat.String())
	assert.Equal(t, "INT", KindInt.String())
	assert.Equal(t, "BOOLEAN", KindBool.String())
	assert.Equal(t, "STRING", KindString.String())
	assert.Equal(t, "Kind('x')", Kind('x').String())
	assert.False(t, Kind('x').valid())
}

func TestNewRegistryNil(t *testing.T) {
	_, err := NewRegistry(nil)
	assert.Error(t, err)
}
