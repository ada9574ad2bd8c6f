package locker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupeByNameKeepsFirstOccurrence(t *testing.T) {
	lockers := []Locker{
		{Name: "Locker-A", Location: Location{Latitude: 1, Longitude: 1}},
		{Name: "Locker-B", Location: Location{Latitude: 2, Longitude: 2}},
		{Name: "Locker-A", Location: Location{Latitude: 3, Longitude: 3}},
	}

	unique := DedupeByName(lockers)

	require.Len(t, unique, 2)
	assert.Equal(t, "Locker-A", unique[0].Name)
	assert.Equal(t, Location{Latitude: 1, Longitude: 1}, unique[0].Location)
	assert.Equal(t, "Locker-B", unique[1].Name)
}

func TestDedupeByNamePreservesArrivalOrder(t *testing.T) {
	lockers := []Locker{
		{Name: "C"},
		{Name: "A"},
		{Name: "B"},
		{Name: "A"},
		{Name: "C"},
	}

	unique := DedupeByName(lockers)

	names := make([]string, 0, len(unique))
	for _, l := range unique {
		names = append(names, l.Name)
	}
	assert.Equal(t, []string{"C", "A", "B"}, names)
}

func TestDedupeByNameEmptyInput(t *testing.T) {
	assert.Empty(t, DedupeByName(nil))
}
