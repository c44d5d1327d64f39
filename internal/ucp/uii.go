package ucp

import (
	"fmt"
	"strings"

	"github.com/paulocmarques/BIOSUtilities/internal/report"
)

// Coded byte field translations for the @UII header.
var (
	uiiSupportBIOS = map[uint8]string{1: "ALL", 2: "AMIBIOS8", 3: "UEFI", 4: "AMIBIOS8/UEFI"}
	uiiSupportOS   = map[uint8]string{1: "DOS", 2: "EFI", 3: "Windows", 4: "Linux", 5: "FreeBSD", 6: "MacOS", 128: "Multi-Platform"}
	uiiBusWidth    = map[uint8]string{1: "16b", 2: "16/32b", 3: "32b", 4: "64b"}
	uiiProgType    = map[uint8]string{1: "Executable", 2: "Library", 3: "Driver"}
	uiiProgMode    = map[uint8]string{1: "API", 2: "Console", 3: "GUI", 4: "Console/GUI"}
)

func codedField(table map[uint8]string, v uint8) string {
	if s, ok := table[v]; ok {
		return s
	}
	return fmt.Sprintf("Unknown (%d)", v)
}

// DecodeTool decodes the @UII utility identification payload: the fixed
// 16-byte header plus the trailing free-text description. The
// description starts at the larger of the declared info size and the
// fixed header length, and runs to the declared UII size.
func DecodeTool(payload []byte) (*report.ToolInfo, error) {
	h, err := decodeUiiHeader(payload)
	if err != nil {
		return nil, err
	}

	start := int(h.InfoSize)
	if start < uiiHeaderLen {
		start = uiiHeaderLen
	}
	end := int(h.UIISize)
	if end > len(payload) {
		end = len(payload)
	}
	var desc string
	if start < end {
		desc = strings.Trim(bestEffortText(payload[start:end]), "\x00 ")
	}

	return &report.ToolInfo{
		Size:          h.UIISize,
		Checksum:      h.Checksum,
		ToolVersion:   h.UtilityVersion,
		InfoSize:      h.InfoSize,
		SupportedBIOS: codedField(uiiSupportBIOS, h.SupportBIOS),
		SupportedOS:   codedField(uiiSupportOS, h.SupportOS),
		DataBusWidth:  codedField(uiiBusWidth, h.DataBusWidth),
		ProgramType:   codedField(uiiProgType, h.ProgramType),
		ProgramMode:   codedField(uiiProgMode, h.ProgramMode),
		SourceSafeRel: h.SourceSafeRel,
		Description:   desc,
	}, nil
}

// bestEffortText decodes raw bytes as UTF-8, dropping invalid
// sequences.
func bestEffortText(b []byte) string {
	return strings.ToValidUTF8(string(b), "")
}
