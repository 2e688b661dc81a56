package adms

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/rotisserie/eris"
)

// WriteCSV writes the header and one row per channel. With fill set, empty
// rows pad the file out to MaxChannels the way ADMS-14's own exports do:
// only the channel number and the trailing Extra Column are populated.
func WriteCSV(w io.Writer, rows []ChannelRow, fill bool) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Headers); err != nil {
		return eris.Wrap(err, "adms: write header")
	}

	next := 1
	for _, row := range rows {
		if err := cw.Write(row.Record()); err != nil {
			return eris.Wrapf(err, "adms: write channel %d", row.Channel)
		}
		next = row.Channel + 1
	}

	if fill {
		for ch := next; ch <= MaxChannels; ch++ {
			if err := cw.Write(fillRecord(ch)); err != nil {
				return eris.Wrapf(err, "adms: write fill row %d", ch)
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return eris.Wrap(err, "adms: flush")
	}
	return nil
}

func fillRecord(channel int) []string {
	rec := make([]string, len(Headers))
	rec[0] = strconv.Itoa(channel)
	rec[len(rec)-1] = "0"
	return rec
}
