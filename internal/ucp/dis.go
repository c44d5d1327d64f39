package ucp

import (
	"strings"

	"github.com/paulocmarques/BIOSUtilities/internal/report"
)

var (
	disState   = map[uint8]string{0: "Disabled", 1: "Enabled"}
	disDisplay = map[uint8]string{0: "Hidden", 1: "Shown", 2: "Shown Only"}
)

// DecodeCommandStatus decodes the @DIS default command status payload:
// the fixed 16-byte header followed by the declared number of fixed
// 290-byte entries. A truncated entry ends decoding with the entries
// read so far; the table is information-complete, so callers discard
// the binary module after a successful decode.
func DecodeCommandStatus(payload []byte) (*report.CommandStatus, error) {
	h, err := decodeDisHeader(payload)
	if err != nil {
		return nil, err
	}

	c := &report.CommandStatus{
		PasswordSize: h.PasswordSize,
		Password:     strings.Trim(bestEffortText(h.Password[:]), "\x00 "),
	}

	body := payload[disHeaderLen:]
	for i := 0; i < int(h.EntryCount); i++ {
		e, err := decodeDisEntry(body, i*disEntryLen)
		if err != nil {
			break
		}
		c.Entries = append(c.Entries, report.CommandEntry{
			State:       codedField(disState, e.EnabledDisabled),
			Display:     codedField(disDisplay, e.ShownHidden),
			Command:     strings.Trim(bestEffortText(e.Command[:]), "\x00 "),
			Description: strings.Trim(bestEffortText(e.Description[:]), "\x00 "),
		})
	}

	return c, nil
}
