// FILE: lixenwraith/params/registry_test.go
package params

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegistryLookup checks every table entry is found by name and nothing else is
func TestRegistryLookup(t *testing.T) {
	p := Defaults()
	table := Table(p)
	reg, err := NewRegistry(p)
	require.NoError(t, err)
	require.Equal(t, len(table), reg.Len())

	for _, want := range table {
		got, ok := reg.Lookup(want.Name)
		require.True(t, ok, want.Name)
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.Kind, got.Kind)
		assert.Equal(t, want.Default, got.Default)
		assert.Equal(t, want.Doc, got.Doc)
		assert.Equal(t, want.Width, got.Width)
		assert.Equal(t, want.Capacity, got.Capacity)
	}

	for _, name := range []string{"", "maxiter", "MAXITER", "MaxIter ", "NStarts", "-MaxIter"} {
		_, ok := reg.Lookup(name)
		assert.False(t, ok, "lookup %q", name)

		_, err := reg.Find(name)
		assert.ErrorIs(t, err, ErrNotFound, "find %q", name)
	}
}

func TestRegistryDuplicate(t *testing.T) {
	first, second := 5, 9
	reg := New()
	require.NoError(t, reg.Register(Int("X", &first, "5", "first")))

	err := reg.Register(Int("X", &second, "9", "second"))
	require.ErrorIs(t, err, ErrDuplicateName)

	var pe *ParamError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "X", pe.Name)
	assert.Equal(t, "register", pe.Op)

	d, ok := reg.Lookup("X")
	require.True(t, ok)
	assert.Equal(t, "first", d.Doc)
	assert.Equal(t, 5, first)
	assert.Equal(t, 9, second)

	// Writes go to the first registration's target
	require.NoError(t, NewBinder(reg).ChangeParam("X", "7"))
	assert.Equal(t, 7, first)
	assert.Equal(t, 9, second)
}

func TestRegistryNames(t *testing.T) {
	var v int
	tests := []struct {
		name  string
		valid bool
	}{
		{"MaxIter", true},
		{"nStarts", true},
		{"Penalty_K2", true},
		{"", false},
		{"1Max", false},
		{"_Max", false},
		{"Max-Iter", false},
		{"Max.Iter", false},
		{"Max Iter", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New().Register(Int(tt.name, &v, "0", ""))
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidName)
			}
		})
	}
}

func TestRegistrySealed(t *testing.T) {
	reg, err := NewRegistry(Defaults())
	require.NoError(t, err)
	assert.True(t, reg.Sealed())

	var extra float64
	err = reg.Register(Float("Extra", &extra, "0", ""))
	assert.ErrorIs(t, err, ErrSealed)
	_, ok := reg.Lookup("Extra")
	assert.False(t, ok)
}

func TestRegistryRejectsMissingTarget(t *testing.T) {
	err := New().Register(Descriptor{Kind: KindInt, Name: "Orphan"})
	assert.ErrorIs(t, err, ErrNoTarget)
}

func TestRegistryOrder(t *testing.T) {
	var a, b, c int
	reg := New()
	require.NoError(t, reg.RegisterAll(
		Int("Zeta", &a, "0", ""),
		Int("Alpha", &b, "0", ""),
		Int("Mid", &c, "0", ""),
	))
	assert.Equal(t, []string{"Zeta", "Alpha", "Mid"}, reg.Names())

	ds := reg.Descriptors()
	require.Len(t, ds, 3)
	assert.Equal(t, "Mid", ds[2].Name)
}

func TestRegisterAllReportsEveryFailure(t *testing.T) {
	var a, b int
	reg := New()
	err := reg.RegisterAll(
		Int("A", &a, "0", ""),
		Int("A", &b, "0", ""),
		Int("bad-name", &b, "0", ""),
	)
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.ErrorIs(t, err, ErrInvalidName)
	assert.Equal(t, 1, reg.Len())
}
