package rxf

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/pstankie/adms-gen/internal/fetcher"
)

// Source retrieves raw repeater records from an RXF directory export.
type Source struct {
	fetcher fetcher.Fetcher
	url     string
}

// NewSource creates a Source reading from the given URL via f.
func NewSource(f fetcher.Fetcher, url string) *Source {
	if url == "" {
		url = DefaultURL
	}
	return &Source{fetcher: f, url: url}
}

// Fetch downloads the export and returns every repeater record in document
// order. A transport or decode failure is returned as an error; an export
// with zero repeaters is not.
func (s *Source) Fetch(ctx context.Context) ([]Repeater, error) {
	body, err := s.fetcher.Download(ctx, s.url)
	if err != nil {
		return nil, eris.Wrapf(err, "rxf: fetch %s", s.url)
	}
	defer body.Close() //nolint:errcheck

	recCh, errCh := fetcher.StreamXML[Repeater](ctx, body, "repeater")

	var records []Repeater
	for rec := range recCh {
		records = append(records, rec)
	}
	if err := <-errCh; err != nil {
		return nil, eris.Wrap(err, "rxf: decode export")
	}

	zap.L().Debug("rxf export fetched",
		zap.String("url", s.url),
		zap.Int("records", len(records)),
	)

	return records, nil
}
