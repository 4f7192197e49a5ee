package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeRegistry_DataThenMC(t *testing.T) {
	data := []Sample{
		{ShortName: "DataA", Dataset: "/ParkingBPH1/Run2018A/NANOAOD"},
		{ShortName: "DataB", Dataset: "/ParkingBPH1/Run2018B/NANOAOD"},
	}
	mc := []Sample{
		{ShortName: "TTbar", Dataset: "/TTTo2L2Nu/RunIIAutumn18/NANOAODSIM"},
	}

	reg := MergeRegistry(data, mc)

	require.Equal(t, 3, reg.Len())
	assert.Equal(t, []Sample{data[0], data[1], mc[0]}, reg.Entries())
}

func TestMergeRegistry_CollisionMCWins(t *testing.T) {
	data := []Sample{
		{ShortName: "SampleA", Dataset: "/Data/Set1"},
		{ShortName: "SampleB", Dataset: "/Data/Set2"},
	}
	mc := []Sample{
		{ShortName: "SampleA", Dataset: "/MC/Set9"},
	}

	reg := MergeRegistry(data, mc)

	ds, ok := reg.Dataset("SampleA")
	require.True(t, ok)
	assert.Equal(t, "/MC/Set9", ds)

	// The overridden entry keeps its first position.
	entries := reg.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "SampleA", entries[0].ShortName)
	assert.Equal(t, "SampleB", entries[1].ShortName)
}

func TestNewRegistry_CollisionWithinSet(t *testing.T) {
	reg := NewRegistry([]Sample{
		{ShortName: "X", Dataset: "/first"},
		{ShortName: "X", Dataset: "/second"},
	})

	assert.Equal(t, 1, reg.Len())
	ds, _ := reg.Dataset("X")
	assert.Equal(t, "/second", ds)
}

func TestNewRegistry_Empty(t *testing.T) {
	reg := NewRegistry()

	assert.Equal(t, 0, reg.Len())
	assert.Empty(t, reg.Entries())
}

func TestRegistry_NilSafe(t *testing.T) {
	var reg *Registry

	assert.Equal(t, 0, reg.Len())
	assert.Nil(t, reg.Entries())
	_, ok := reg.Dataset("A")
	assert.False(t, ok)
}

func TestRegistry_EntriesIsCopy(t *testing.T) {
	reg := NewRegistry([]Sample{{ShortName: "A", Dataset: "/A"}})

	entries := reg.Entries()
	entries[0].Dataset = "/mutated"

	ds, _ := reg.Dataset("A")
	assert.Equal(t, "/A", ds)
}

func TestRegistry_Select(t *testing.T) {
	reg := NewRegistry([]Sample{
		{ShortName: "A", Dataset: "/A"},
		{ShortName: "B", Dataset: "/B"},
		{ShortName: "C", Dataset: "/C"},
	})

	selected, err := reg.Select([]string{"C", "A"})

	require.NoError(t, err)
	assert.Equal(t, []Sample{
		{ShortName: "A", Dataset: "/A"},
		{ShortName: "C", Dataset: "/C"},
	}, selected.Entries())
	assert.Equal(t, 3, reg.Len(), "source registry is unchanged")
}

func TestRegistry_Select_Unknown(t *testing.T) {
	reg := NewRegistry([]Sample{{ShortName: "A", Dataset: "/A"}})

	selected, err := reg.Select([]string{"A", "Nope"})

	assert.Nil(t, selected)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "Nope")
}
