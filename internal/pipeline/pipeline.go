// Package pipeline turns raw directory records into an ADMS-14 CSV: it
// normalizes untrusted records, filters them against a reference point, and
// hands the survivors to the channel encoder. One run is a single
// synchronous batch; stages pass immutable slices, nothing is shared.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/pstankie/adms-gen/internal/adms"
	"github.com/pstankie/adms-gen/internal/maidenhead"
	"github.com/pstankie/adms-gen/internal/model"
	"github.com/pstankie/adms-gen/internal/rxf"
)

// RecordSource supplies raw repeater records, normally rxf.Source.
type RecordSource interface {
	Fetch(ctx context.Context) ([]rxf.Repeater, error)
}

// Options parameterizes one run.
type Options struct {
	Center   maidenhead.Coordinate
	RadiusKm float64

	// Prefix keeps only callsigns with this prefix ("" keeps all).
	Prefix string
	// Bands restricts downlink frequencies to named bands (empty keeps all).
	Bands []string

	StartChannel int // default 1
	Overflow     adms.OverflowPolicy
	Fill         bool
}

// Summary is the run accounting. Every skipped or dropped record lands in
// exactly one counter; nothing is lost silently.
type Summary struct {
	Fetched           int
	SkippedInvalid    int
	SkippedNoPosition int
	SkippedFiltered   int
	Deduped           int
	InRange           int
	Encoded           int
	Overflow          int
}

// Run executes the full batch pipeline and writes the CSV to w. A run that
// selects zero repeaters still succeeds and writes the header row; only
// fetch, encode, or write failures are errors.
func Run(ctx context.Context, src RecordSource, w io.Writer, opts Options) (Summary, error) {
	var sum Summary

	if opts.RadiusKm < 0 {
		return sum, eris.Errorf("pipeline: radius must not be negative, got %g", opts.RadiusKm)
	}
	if opts.StartChannel == 0 {
		opts.StartChannel = 1
	}
	if opts.Overflow == "" {
		opts.Overflow = adms.OverflowTruncate
	}

	bands, err := ParseBands(opts.Bands)
	if err != nil {
		return sum, err
	}

	raw, err := src.Fetch(ctx)
	if err != nil {
		return sum, eris.Wrap(err, "pipeline: fetch directory")
	}
	sum.Fetched = len(raw)

	seen := make(map[string]bool)
	var candidates []model.Repeater
	for _, rec := range raw {
		rep, err := Normalize(rec)
		if err != nil {
			sum.SkippedInvalid++
			zap.L().Debug("skipping record", zap.Error(err))
			continue
		}

		if opts.Prefix != "" && !strings.HasPrefix(rep.Name, opts.Prefix) {
			sum.SkippedFiltered++
			continue
		}
		if !inBands(bands, rep.DownlinkMHz) {
			sum.SkippedFiltered++
			continue
		}

		if rep.Position == nil {
			sum.SkippedNoPosition++
			continue
		}

		// The directory lists shared sites once per mode; keep the first
		// entry per callsign prefix and downlink frequency.
		key := dedupKey(rep)
		if seen[key] {
			sum.Deduped++
			continue
		}
		seen[key] = true

		candidates = append(candidates, rep)
	}

	selected := SelectWithin(candidates, opts.Center, opts.RadiusKm)
	sum.InRange = len(selected)

	rows, overflow, err := adms.Encode(selected, opts.StartChannel, opts.Overflow)
	if err != nil {
		return sum, err
	}
	sum.Encoded = len(rows)
	sum.Overflow = overflow

	if err := adms.WriteCSV(w, rows, opts.Fill); err != nil {
		return sum, err
	}

	zap.L().Info("run complete",
		zap.Int("fetched", sum.Fetched),
		zap.Int("skipped_invalid", sum.SkippedInvalid),
		zap.Int("skipped_no_position", sum.SkippedNoPosition),
		zap.Int("skipped_filtered", sum.SkippedFiltered),
		zap.Int("deduped", sum.Deduped),
		zap.Int("in_range", sum.InRange),
		zap.Int("encoded", sum.Encoded),
		zap.Int("overflow", sum.Overflow),
	)

	return sum, nil
}

// dedupKey groups directory entries that describe the same transmitter: the
// callsign up to the first dash plus the downlink frequency.
func dedupKey(r model.Repeater) string {
	prefix, _, _ := strings.Cut(r.Name, "-")
	return fmt.Sprintf("%s|%.5f", prefix, r.DownlinkMHz)
}
