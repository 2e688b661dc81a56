// Package rxf models the przemienniki.net RXF repeater directory export.
// Records here are untrusted source data: every field is optional and
// loosely formatted. Validation happens in the pipeline normalizer.
package rxf

import "encoding/xml"

// DefaultURL is the public RXF export of the repeater directory.
const DefaultURL = "https://przemienniki.net/export/rxf.xml"

// Repeater is one raw directory record as it appears on the wire.
type Repeater struct {
	XMLName     xml.Name    `xml:"repeater"`
	Callsign    string      `xml:"qra"`
	Frequencies []Frequency `xml:"qrg"`
	CTCSS       []Tone      `xml:"ctcss"`
	DCS         []Tone      `xml:"dcs"`
	Shift       string      `xml:"shift"`
	Mode        string      `xml:"mode"`
	Activation  string      `xml:"activation"`
	Bandwidth   string      `xml:"bandwidth"`
	Status      string      `xml:"status"`
	Location    Location    `xml:"location"`
}

// Frequency is a qrg element; Type is "tx" or "rx" from the repeater's
// perspective (its tx is the operator's receive frequency).
type Frequency struct {
	Type  string `xml:"type,attr"`
	Value string `xml:",chardata"`
}

// Tone is a ctcss or dcs element with the same tx/rx typing as Frequency.
type Tone struct {
	Type  string `xml:"type,attr"`
	Value string `xml:",chardata"`
}

// Location carries whichever position hints the directory has for a site.
type Location struct {
	Locator   string `xml:"locator"`
	Latitude  string `xml:"latitude"`
	Longitude string `xml:"longitude"`
}

// QRG returns the frequency of the given type, or "" when absent.
func (r Repeater) QRG(typ string) string {
	for _, f := range r.Frequencies {
		if f.Type == typ {
			return f.Value
		}
	}
	return ""
}

// ToneValue returns the CTCSS value of the given type, falling back to the
// first listed tone of any type.
func (r Repeater) ToneValue(typ string) string {
	return pick(r.CTCSS, typ)
}

// DCSValue returns the DCS code of the given type, falling back to the first
// listed code of any type.
func (r Repeater) DCSValue(typ string) string {
	return pick(r.DCS, typ)
}

func pick(tones []Tone, typ string) string {
	for _, t := range tones {
		if t.Type == typ {
			return t.Value
		}
	}
	if len(tones) > 0 {
		return tones[0].Value
	}
	return ""
}
