// Package report carries the decoded information content of an
// extraction run: a nested record of every container, module and
// special structure, renderable as an indented console trace, as the
// sidecar text artifacts, or as a machine-readable JSON document.
package report

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// Extraction is the top-level record for one input file.
type Extraction struct {
	Input           string     `json:"input"`
	ContainerOffset int        `json:"container_offset"`
	Container       *Container `json:"container,omitempty"`
}

// Container records one container scope, top-level or nested.
type Container struct {
	Tag      string    `json:"tag"`
	Size     uint32    `json:"size"`
	Checksum uint16    `json:"checksum"`
	Valid    *bool     `json:"checksum_valid,omitempty"`
	Modules  []*Module `json:"modules"`
}

// Module records one extracted module.
type Module struct {
	Tag          string            `json:"tag"`
	Offset       int               `json:"offset"`
	Size         uint32            `json:"size"`
	CompressSize uint32            `json:"compress_size"`
	OriginalSize uint32            `json:"original_size"`
	Compressed   bool              `json:"compressed"`
	OutputName   string            `json:"output_name,omitempty"`
	Valid        *bool             `json:"checksum_valid,omitempty"`
	Notes        []string          `json:"notes,omitempty"`
	Tool         *ToolInfo         `json:"tool_info,omitempty"`
	Commands     *CommandStatus    `json:"command_status,omitempty"`
	Names        map[string]string `json:"name_list,omitempty"`
	Text         string            `json:"text,omitempty"`
	Nested       *Container        `json:"nested,omitempty"`
}

// Note appends a diagnostic note to the module record.
func (m *Module) Note(format string, args ...any) {
	m.Notes = append(m.Notes, fmt.Sprintf(format, args...))
}

// ToolInfo is the decoded @UII utility identification structure, coded
// byte fields already translated to text.
type ToolInfo struct {
	Size          uint16 `json:"size"`
	Checksum      uint16 `json:"checksum"`
	ToolVersion   uint32 `json:"tool_version"`
	InfoSize      uint16 `json:"info_size"`
	SupportedBIOS string `json:"supported_bios"`
	SupportedOS   string `json:"supported_os"`
	DataBusWidth  string `json:"data_bus_width"`
	ProgramType   string `json:"program_type"`
	ProgramMode   string `json:"program_mode"`
	SourceSafeRel uint8  `json:"sourcesafe_release"`
	Description   string `json:"description"`
}

// WriteText renders the sidecar text artifact for the @UII module.
func (t *ToolInfo) WriteText(w io.Writer) {
	fmt.Fprintf(w, "UII Size      : 0x%X\n", t.Size)
	fmt.Fprintf(w, "Checksum      : 0x%04X\n", t.Checksum)
	fmt.Fprintf(w, "Tool Version  : 0x%08X\n", t.ToolVersion)
	fmt.Fprintf(w, "Info Size     : 0x%X\n", t.InfoSize)
	fmt.Fprintf(w, "Supported BIOS: %s\n", t.SupportedBIOS)
	fmt.Fprintf(w, "Supported OS  : %s\n", t.SupportedOS)
	fmt.Fprintf(w, "Data Bus Width: %s\n", t.DataBusWidth)
	fmt.Fprintf(w, "Program Type  : %s\n", t.ProgramType)
	fmt.Fprintf(w, "Program Mode  : %s\n", t.ProgramMode)
	fmt.Fprintf(w, "SourceSafe Tag: %02d\n", t.SourceSafeRel)
	fmt.Fprintf(w, "Description   : %s\n", t.Description)
}

// CommandStatus is the decoded @DIS default command status table.
type CommandStatus struct {
	PasswordSize uint16         `json:"password_size"`
	Password     string         `json:"password"`
	Entries      []CommandEntry `json:"entries"`
}

// CommandEntry is one decoded @DIS table entry.
type CommandEntry struct {
	State       string `json:"state"`
	Display     string `json:"display"`
	Command     string `json:"command"`
	Description string `json:"description"`
}

// WriteText renders the sidecar text artifact for the @DIS module.
func (c *CommandStatus) WriteText(w io.Writer) {
	fmt.Fprintf(w, "Password Size: 0x%X\n", c.PasswordSize)
	fmt.Fprintf(w, "Entry Count  : %d\n", len(c.Entries))
	fmt.Fprintf(w, "Password     : %s\n", c.Password)
	for i, e := range c.Entries {
		fmt.Fprintf(w, "\nEntry %02d/%02d:\n", i+1, len(c.Entries))
		fmt.Fprintf(w, "    State      : %s\n", e.State)
		fmt.Fprintf(w, "    Display    : %s\n", e.Display)
		fmt.Fprintf(w, "    Command    : %s\n", e.Command)
		fmt.Fprintf(w, "    Description: %s\n", e.Description)
	}
}

// MarshalIndent renders the whole extraction record as indented JSON.
func (e *Extraction) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(e, "", "  ")
}
