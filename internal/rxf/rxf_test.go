package rxf

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRXF = `<?xml version="1.0" encoding="UTF-8"?>
<rxf version="2.0">
  <repeaters>
    <repeater id="1">
      <qra>SR9A</qra>
      <qrg type="tx">438.125</qrg>
      <qrg type="rx">430.525</qrg>
      <ctcss type="rx">88.5</ctcss>
      <mode>FM</mode>
      <status>WORKING</status>
      <location>
        <locator>JO90xa</locator>
        <latitude>50.0545</latitude>
        <longitude>19.8855</longitude>
      </location>
    </repeater>
    <repeater id="2">
      <qra>SR9VC</qra>
      <qrg type="tx">145.7375</qrg>
      <qrg type="rx">145.1375</qrg>
      <mode>FM/C4FM</mode>
      <activation>CARRIER</activation>
      <location>
        <locator>JO90ua</locator>
      </location>
    </repeater>
  </repeaters>
</rxf>`

type stubFetcher struct {
	body string
	err  error
}

func (s stubFetcher) Download(context.Context, string) (io.ReadCloser, error) {
	if s.err != nil {
		return nil, s.err
	}
	return io.NopCloser(strings.NewReader(s.body)), nil
}

func TestSourceFetch(t *testing.T) {
	src := NewSource(stubFetcher{body: sampleRXF}, "http://example.test/rxf.xml")

	records, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "SR9A", first.Callsign)
	assert.Equal(t, "438.125", first.QRG("tx"))
	assert.Equal(t, "430.525", first.QRG("rx"))
	assert.Equal(t, "88.5", first.ToneValue("rx"))
	assert.Equal(t, "FM", first.Mode)
	assert.Equal(t, "JO90xa", first.Location.Locator)
	assert.Equal(t, "50.0545", first.Location.Latitude)

	second := records[1]
	assert.Equal(t, "SR9VC", second.Callsign)
	assert.Equal(t, "CARRIER", second.Activation)
	assert.Empty(t, second.ToneValue("rx"))
	assert.Empty(t, second.Location.Latitude)
}

func TestSourceFetchEmptyExport(t *testing.T) {
	src := NewSource(stubFetcher{body: `<rxf><repeaters/></rxf>`}, "http://example.test/rxf.xml")

	records, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSourceFetchTransportError(t *testing.T) {
	src := NewSource(stubFetcher{err: eris.New("dial timeout")}, "http://example.test/rxf.xml")

	_, err := src.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rxf: fetch")
}

func TestSourceFetchMalformedXML(t *testing.T) {
	src := NewSource(stubFetcher{body: `<rxf><repeaters><repeater><qra>SR9`}, "http://example.test/rxf.xml")

	_, err := src.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rxf: decode export")
}

func TestSourceDefaultURL(t *testing.T) {
	src := NewSource(stubFetcher{body: sampleRXF}, "")
	assert.Equal(t, DefaultURL, src.url)
}

func TestPickFallsBackToFirstTone(t *testing.T) {
	r := Repeater{CTCSS: []Tone{{Type: "tx", Value: "71.9"}}}
	assert.Equal(t, "71.9", r.ToneValue("rx"))

	r = Repeater{DCS: []Tone{{Type: "tx", Value: "023"}}}
	assert.Equal(t, "023", r.DCSValue("rx"))

	assert.Empty(t, Repeater{}.ToneValue("rx"))
}
