package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pstankie/adms-gen/internal/maidenhead"
	"github.com/pstankie/adms-gen/internal/model"
	"github.com/pstankie/adms-gen/internal/rxf"
)

// Normalization defaults. Kept as named constants so the defaulting policy
// is in one place.
const (
	// DefaultBandwidth applies when the source gives no narrow/wide hint.
	DefaultBandwidth = model.BandwidthWide
	// DefaultName applies when the source record has no callsign.
	DefaultName = "Unknown"
)

// NormalizeError reports a raw record that could not be converted. It is
// per-record: the caller skips and counts it, the batch continues.
type NormalizeError struct {
	Callsign string
	Reason   string
}

func (e *NormalizeError) Error() string {
	name := e.Callsign
	if name == "" {
		name = "<no callsign>"
	}
	return fmt.Sprintf("pipeline: record %s: %s", name, e.Reason)
}

// Normalize converts a raw directory record into a canonical repeater.
// Records without a parseable positive downlink frequency are rejected.
// Pure transform, no side effects.
func Normalize(raw rxf.Repeater) (model.Repeater, error) {
	name := strings.TrimSpace(raw.Callsign)
	if name == "" {
		name = DefaultName
	}

	downlink, err := parseMHz(raw.QRG("tx"))
	if err != nil {
		return model.Repeater{}, &NormalizeError{Callsign: name, Reason: "downlink frequency: " + err.Error()}
	}

	uplink, offset := resolveUplink(raw, downlink)

	rep := model.Repeater{
		Name:        name,
		DownlinkMHz: downlink,
		UplinkMHz:   uplink,
		OffsetMHz:   offset,
		Bandwidth:   DefaultBandwidth,
		Digital:     strings.Contains(strings.ToUpper(raw.Mode), "C4FM"),
		Position:    resolvePosition(raw.Location),
	}

	if strings.EqualFold(strings.TrimSpace(raw.Bandwidth), "narrow") {
		rep.Bandwidth = model.BandwidthNarrow
	}

	rep.Tone, rep.ToneCode = resolveTone(raw)

	return rep, nil
}

// parseMHz accepts numeric or decimal-point textual frequencies.
func parseMHz(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("missing")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not numeric: %q", s)
	}
	if f <= 0 {
		return 0, fmt.Errorf("not positive: %q", s)
	}
	return f, nil
}

// resolveUplink derives the operator transmit frequency. The directory
// usually publishes both qrg entries; some entries carry only a signed shift.
func resolveUplink(raw rxf.Repeater, downlink float64) (uplink, offset float64) {
	if up, err := parseMHz(raw.QRG("rx")); err == nil {
		return up, up - downlink
	}
	if shift, err := strconv.ParseFloat(strings.TrimSpace(raw.Shift), 64); err == nil {
		return downlink + shift, shift
	}
	return downlink, 0
}

// resolveTone picks the squelch signaling. CTCSS takes precedence over DCS
// when a record lists both; carrier-activated repeaters get no tone at all.
func resolveTone(raw rxf.Repeater) (model.ToneMode, string) {
	if strings.Contains(strings.ToUpper(raw.Activation), "CARRIER") {
		return model.ToneNone, ""
	}

	if ctcss := parseCTCSS(raw.ToneValue("rx")); ctcss != "" {
		return model.ToneCTCSS, ctcss
	}
	if dcs := parseDCS(raw.DCSValue("rx")); dcs != "" {
		return model.ToneDCS, dcs
	}
	return model.ToneNone, ""
}

// parseCTCSS normalizes a tone value to Hz with one decimal place. The
// directory sometimes appends the unit.
func parseCTCSS(s string) string {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "Hz"))
	if s == "" {
		return ""
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f <= 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'f', 1, 64)
}

// parseDCS normalizes a digital squelch code to three digits.
func parseDCS(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return ""
	}
	return fmt.Sprintf("%03d", n)
}

// resolvePosition prefers explicit decimal coordinates over an embedded
// locator. Records with neither, or with garbage in both, are positionless.
func resolvePosition(loc rxf.Location) *maidenhead.Coordinate {
	lat, latErr := strconv.ParseFloat(strings.TrimSpace(loc.Latitude), 64)
	lon, lonErr := strconv.ParseFloat(strings.TrimSpace(loc.Longitude), 64)
	if latErr == nil && lonErr == nil && lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180 {
		return &maidenhead.Coordinate{Lat: lat, Lon: lon}
	}

	if loc.Locator != "" {
		if c, err := maidenhead.Decode(strings.TrimSpace(loc.Locator)); err == nil {
			return &c
		}
	}

	return nil
}
