// Package model holds the canonical repeater entity produced by
// normalization. Values are created once and never mutated.
package model

import "github.com/pstankie/adms-gen/internal/maidenhead"

// ToneMode identifies the squelch-access signaling a repeater uses.
type ToneMode string

const (
	ToneNone  ToneMode = "none"
	ToneCTCSS ToneMode = "ctcss"
	ToneDCS   ToneMode = "dcs"
)

// Bandwidth is the channel bandwidth class.
type Bandwidth string

const (
	BandwidthWide   Bandwidth = "wide"   // 25 kHz class
	BandwidthNarrow Bandwidth = "narrow" // 12.5 kHz class
)

// Repeater is a validated repeater entry. DownlinkMHz is always > 0 and a
// tone mode other than ToneNone always carries a code.
type Repeater struct {
	Name        string
	DownlinkMHz float64 // repeater transmit, operator receive
	UplinkMHz   float64 // repeater receive, operator transmit
	OffsetMHz   float64 // UplinkMHz - DownlinkMHz, signed

	Tone     ToneMode
	ToneCode string // CTCSS frequency in Hz ("88.5") or DCS code ("023")

	Bandwidth Bandwidth
	Digital   bool // C4FM-capable

	// Position is nil when the source record carried neither decimal
	// coordinates nor a locator. Positionless repeaters never pass the
	// range filter.
	Position *maidenhead.Coordinate

	// DistanceKm from the reference point, filled in by the range filter.
	DistanceKm float64
}
