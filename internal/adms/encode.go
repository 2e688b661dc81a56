package adms

import (
	"fmt"
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/pstankie/adms-gen/internal/model"
)

// OverflowPolicy controls what happens when more repeaters are selected than
// the radio has memory channels.
type OverflowPolicy string

const (
	// OverflowTruncate keeps the first MaxChannels rows and reports the rest.
	OverflowTruncate OverflowPolicy = "truncate"
	// OverflowFail aborts the run instead of dropping rows.
	OverflowFail OverflowPolicy = "fail"
)

// ParseOverflowPolicy validates a policy name from a flag or config value.
func ParseOverflowPolicy(s string) (OverflowPolicy, error) {
	switch OverflowPolicy(s) {
	case OverflowTruncate, OverflowFail:
		return OverflowPolicy(s), nil
	}
	return "", eris.Errorf("adms: unknown overflow policy %q (want truncate or fail)", s)
}

// CapacityError reports that the selected repeater set does not fit in the
// radio's memory bank.
type CapacityError struct {
	Limit    int
	Overflow int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("adms: %d repeaters exceed the %d-channel limit", e.Overflow+e.Limit, e.Limit)
}

// ChannelRow is one rendered memory channel. Field values are already in
// importer format; Record returns the full 54-column CSV row.
type ChannelRow struct {
	Channel         int
	Receive         string
	Transmit        string
	Offset          string
	OffsetDirection string
	DigAnalog       string
	Name            string
	ToneMode        string
	CTCSS           string
	DCS             string
	Narrow          string
}

// Encode assigns sequential channel numbers starting at startChannel and
// renders each repeater as a ChannelRow. The second return value is the
// number of repeaters dropped by OverflowTruncate; OverflowFail returns a
// *CapacityError instead of dropping.
func Encode(selected []model.Repeater, startChannel int, policy OverflowPolicy) ([]ChannelRow, int, error) {
	if startChannel < 1 || startChannel > MaxChannels {
		return nil, 0, eris.Errorf("adms: start channel %d out of range 1-%d", startChannel, MaxChannels)
	}

	capacity := MaxChannels - startChannel + 1
	overflow := 0
	if len(selected) > capacity {
		overflow = len(selected) - capacity
		if policy == OverflowFail {
			return nil, 0, &CapacityError{Limit: MaxChannels, Overflow: overflow}
		}
		selected = selected[:capacity]
	}

	rows := make([]ChannelRow, 0, len(selected))
	for i, r := range selected {
		rows = append(rows, newChannelRow(startChannel+i, r))
	}

	return rows, overflow, nil
}

func newChannelRow(channel int, r model.Repeater) ChannelRow {
	row := ChannelRow{
		Channel:   channel,
		Receive:   fmt.Sprintf("%.5f", r.DownlinkMHz),
		Transmit:  fmt.Sprintf("%.5f", r.UplinkMHz),
		Offset:    fmt.Sprintf("%.3f", abs(r.OffsetMHz)),
		DigAnalog: "FM",
		Name:      truncateName(r.Name),
		ToneMode:  "OFF",
		CTCSS:     UnusedCTCSS,
		DCS:       UnusedDCS,
		Narrow:    "OFF",
	}

	switch {
	case r.OffsetMHz > 0:
		row.OffsetDirection = "+RPT"
	case r.OffsetMHz < 0:
		row.OffsetDirection = "-RPT"
	default:
		row.OffsetDirection = "OFF"
	}

	switch r.Tone {
	case model.ToneCTCSS:
		row.ToneMode = "TONE"
		row.CTCSS = r.ToneCode + " Hz"
	case model.ToneDCS:
		row.ToneMode = "DCS"
		row.DCS = r.ToneCode
	}

	if r.Digital {
		row.DigAnalog = "DN"
	}
	if r.Bandwidth == model.BandwidthNarrow {
		row.Narrow = "ON"
	}

	return row
}

// Record renders the row in importer column order.
func (c ChannelRow) Record() []string {
	rec := make([]string, 0, len(Headers))
	rec = append(rec,
		strconv.Itoa(c.Channel),
		defaultPriority,
		c.Receive,
		c.Transmit,
		c.Offset,
		c.OffsetDirection,
		defaultAutoMode,
		defaultOperMode,
		c.DigAnalog,
		defaultTag,
		c.Name,
		c.ToneMode,
		c.CTCSS,
		c.DCS,
		defaultDCSPolarity,
		defaultUserCTCSS,
		defaultRxDGID,
		defaultTxDGID,
		defaultTxPower,
		defaultSkip,
		defaultAutoStep,
		defaultStep,
		defaultMemoryMask,
		defaultATT,
		defaultSMeterSQL,
		defaultBell,
		c.Narrow,
		defaultClockShift,
	)
	for i := 0; i < bankCount; i++ {
		rec = append(rec, defaultBank)
	}
	rec = append(rec, "", "0") // Comment, Extra Column
	return rec
}

func truncateName(name string) string {
	if len(name) > MaxNameLen {
		return name[:MaxNameLen]
	}
	return name
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
