package pipeline

import (
	"strings"

	"github.com/rotisserie/eris"
)

// Band is an amateur band as a downlink frequency window in MHz.
type Band struct {
	MinMHz float64
	MaxMHz float64
}

// bandPlan maps the band names accepted by --bands. The 2m and 70cm windows
// match what the FT-5D can transmit on.
var bandPlan = map[string]Band{
	"10m":  {28.0, 29.7},
	"6m":   {50.0, 54.0},
	"2m":   {144.0, 148.0},
	"70cm": {420.0, 450.0},
	"23cm": {1240.0, 1300.0},
}

// ParseBands resolves band names to frequency windows. An empty list means
// no band filtering.
func ParseBands(names []string) ([]Band, error) {
	bands := make([]Band, 0, len(names))
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		b, ok := bandPlan[key]
		if !ok {
			return nil, eris.Errorf("pipeline: unknown band %q", name)
		}
		bands = append(bands, b)
	}
	return bands, nil
}

// inBands reports whether mhz falls in any of the windows. An empty window
// list admits everything.
func inBands(bands []Band, mhz float64) bool {
	if len(bands) == 0 {
		return true
	}
	for _, b := range bands {
		if mhz >= b.MinMHz && mhz <= b.MaxMHz {
			return true
		}
	}
	return false
}
