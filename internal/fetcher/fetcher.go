// Package fetcher downloads remote documents over HTTP with retry and rate
// limiting, and streams decoded elements out of XML bodies.
package fetcher

import (
	"context"
	"io"
)

// Fetcher defines the interface for downloading remote data.
type Fetcher interface {
	// Download fetches the URL and returns the response body.
	Download(ctx context.Context, url string) (io.ReadCloser, error)
}
