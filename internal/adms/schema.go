// Package adms renders canonical repeaters into the ADMS-14 memory-channel
// CSV schema (Yaesu FT-5D programming software). Correctness here is schema
// compatibility: exact header text, column order, field formats, and
// unused-column sentinels expected by the importer.
package adms

// Radio/schema limits.
const (
	// MaxChannels is the FT-5D memory bank size.
	MaxChannels = 900
	// MaxNameLen is the display length the importer accepts for Name.
	MaxNameLen = 16
)

// Sentinel values the importer expects in tone columns that do not apply to
// the row's tone mode.
const (
	UnusedCTCSS = "88.5 Hz"
	UnusedDCS   = "023"
)

// Fixed column values for channel settings this tool does not manage.
const (
	defaultPriority    = "OFF"
	defaultAutoMode    = "ON"
	defaultOperMode    = "FM"
	defaultTag         = "OFF"
	defaultDCSPolarity = "RX Normal TX Normal"
	defaultUserCTCSS   = "1600 Hz"
	defaultRxDGID      = "RX 00"
	defaultTxDGID      = "TX 00"
	defaultTxPower     = "High (5W)"
	defaultSkip        = "OFF"
	defaultAutoStep    = "ON"
	defaultStep        = "12.5KHz"
	defaultMemoryMask  = "OFF"
	defaultATT         = "OFF"
	defaultSMeterSQL   = "OFF"
	defaultBell        = "OFF"
	defaultClockShift  = "OFF"
	defaultBank        = "OFF"
)

const bankCount = 24

// Headers is the ADMS-14 import header row, in importer order.
var Headers = []string{
	"Channel No",
	"Priority CH",
	"Receive Frequency",
	"Transmit Frequency",
	"Offset Frequency",
	"Offset Direction",
	"AUTO MODE",
	"Operating Mode",
	"DIG/ANALOG",
	"TAG",
	"Name",
	"Tone Mode",
	"CTCSS Frequency",
	"DCS Code",
	"DCS Polarity",
	"USer CTCSS",
	"RX DG-ID",
	"TX DG-ID",
	"Tx Power",
	"Skip",
	"AUTO STEP",
	"Step",
	"Memory Mask",
	"ATT",
	"S-Meter SQL",
	"Bell",
	"Narrow",
	"Clock Shift",
	"BANK 1",
	"BANK 2",
	"BANK 3",
	"BANK 4",
	"BANK 5",
	"BANK 6",
	"BANK 7",
	"BANK 8",
	"BANK 9",
	"BANK 10",
	"BANK 11",
	"BANK 12",
	"BANK 13",
	"BANK 14",
	"BANK 15",
	"BANK 16",
	"BANK 17",
	"BANK 18",
	"BANK 19",
	"BANK 20",
	"BANK 21",
	"BANK 22",
	"BANK 23",
	"BANK 24",
	"Comment",
	"Extra Column",
}
