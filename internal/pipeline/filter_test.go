package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pstankie/adms-gen/internal/maidenhead"
	"github.com/pstankie/adms-gen/internal/model"
)

func positioned(name string, lat, lon float64) model.Repeater {
	return model.Repeater{
		Name:        name,
		DownlinkMHz: 438.125,
		Position:    &maidenhead.Coordinate{Lat: lat, Lon: lon},
	}
}

func TestSelectWithin(t *testing.T) {
	center := maidenhead.Coordinate{Lat: 50.0, Lon: 19.0}
	// Roughly 0, 55, and 111 km north of center.
	all := []model.Repeater{
		positioned("far", 51.0, 19.0),
		positioned("near", 50.0, 19.0),
		positioned("mid", 50.5, 19.0),
	}

	got := SelectWithin(all, center, 200)
	require.Len(t, got, 3)
	assert.Equal(t, "near", got[0].Name)
	assert.Equal(t, "mid", got[1].Name)
	assert.Equal(t, "far", got[2].Name)
	assert.Zero(t, got[0].DistanceKm)
	assert.Greater(t, got[2].DistanceKm, got[1].DistanceKm)

	got = SelectWithin(all, center, 60)
	require.Len(t, got, 2)
	assert.Equal(t, "near", got[0].Name)
	assert.Equal(t, "mid", got[1].Name)
}

func TestSelectWithinNonPositiveRadius(t *testing.T) {
	center := maidenhead.Coordinate{Lat: 50.0, Lon: 19.0}
	all := []model.Repeater{positioned("near", 50.0, 19.0)}

	assert.Empty(t, SelectWithin(all, center, 0))
	assert.Empty(t, SelectWithin(all, center, -5))
}

func TestSelectWithinExcludesPositionless(t *testing.T) {
	center := maidenhead.Coordinate{Lat: 50.0, Lon: 19.0}
	all := []model.Repeater{
		{Name: "nowhere", DownlinkMHz: 438.125},
		positioned("near", 50.0, 19.0),
	}

	got := SelectWithin(all, center, 100)
	require.Len(t, got, 1)
	assert.Equal(t, "near", got[0].Name)
}

func TestSelectWithinBoundaryInclusive(t *testing.T) {
	center := maidenhead.Coordinate{Lat: 50.0, Lon: 19.0}
	target := maidenhead.Coordinate{Lat: 50.5, Lon: 19.0}
	d := maidenhead.DistanceKm(center, target)

	all := []model.Repeater{positioned("edge", target.Lat, target.Lon)}
	assert.Len(t, SelectWithin(all, center, d), 1)
	assert.Empty(t, SelectWithin(all, center, d-0.001))
}

func TestSelectWithinStableTies(t *testing.T) {
	center := maidenhead.Coordinate{Lat: 50.0, Lon: 19.0}
	// Same site shared by several repeaters: identical distance, source
	// order must survive.
	all := []model.Repeater{
		positioned("first", 50.2, 19.0),
		positioned("second", 50.2, 19.0),
		positioned("third", 50.2, 19.0),
	}

	got := SelectWithin(all, center, 100)
	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].Name)
	assert.Equal(t, "second", got[1].Name)
	assert.Equal(t, "third", got[2].Name)
}

func TestSelectWithinDoesNotMutateInput(t *testing.T) {
	center := maidenhead.Coordinate{Lat: 50.0, Lon: 19.0}
	all := []model.Repeater{positioned("b", 50.5, 19.0), positioned("a", 50.1, 19.0)}

	_ = SelectWithin(all, center, 200)
	assert.Equal(t, "b", all[0].Name)
	assert.Zero(t, all[0].DistanceKm)
}

func TestParseBands(t *testing.T) {
	bands, err := ParseBands([]string{"2m", "70cm"})
	require.NoError(t, err)
	require.Len(t, bands, 2)
	assert.True(t, inBands(bands, 145.6))
	assert.True(t, inBands(bands, 438.125))
	assert.False(t, inBands(bands, 29.6))

	_, err = ParseBands([]string{"13cm"})
	assert.Error(t, err)

	empty, err := ParseBands(nil)
	require.NoError(t, err)
	assert.True(t, inBands(empty, 1.8))
}
