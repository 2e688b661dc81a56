package pipeline

import (
	"sort"

	"github.com/pstankie/adms-gen/internal/maidenhead"
	"github.com/pstankie/adms-gen/internal/model"
)

// SelectWithin keeps repeaters within radiusKm of center, ordered by
// ascending distance. The sort is stable so ties keep source order and
// repeated runs stay byte-identical. Positionless repeaters are excluded.
// A non-positive radius selects nothing; that is a valid boundary, not an
// error.
func SelectWithin(all []model.Repeater, center maidenhead.Coordinate, radiusKm float64) []model.Repeater {
	if radiusKm <= 0 {
		return nil
	}

	var selected []model.Repeater
	for _, r := range all {
		if r.Position == nil {
			continue
		}
		d := maidenhead.DistanceKm(*r.Position, center)
		if d > radiusKm {
			continue
		}
		r.DistanceKm = d
		selected = append(selected, r)
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].DistanceKm < selected[j].DistanceKm
	})

	return selected
}
