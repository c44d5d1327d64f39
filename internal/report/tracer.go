package report

import (
	"fmt"
	"io"
)

// Tracer writes the nested, indentation-scoped console trace of an
// extraction. The pad argument is a column count; nested container
// scopes pass deeper pads. A nil Tracer discards everything, which the
// HTTP service uses when only the JSON record matters.
type Tracer struct {
	W io.Writer
}

// Printf writes one indented trace line.
func (t *Tracer) Printf(pad int, format string, args ...any) {
	if t == nil || t.W == nil {
		return
	}
	fmt.Fprintf(t.W, "%*s%s\n", pad, "", fmt.Sprintf(format, args...))
}

// Section writes a blank-line-separated section heading.
func (t *Tracer) Section(pad int, format string, args ...any) {
	if t == nil || t.W == nil {
		return
	}
	fmt.Fprintln(t.W)
	t.Printf(pad, format, args...)
}

// Tool traces a decoded @UII structure.
func (t *Tracer) Tool(pad int, info *ToolInfo) {
	t.Printf(pad, "UII Size      : 0x%X", info.Size)
	t.Printf(pad, "Checksum      : 0x%04X", info.Checksum)
	t.Printf(pad, "Tool Version  : 0x%08X", info.ToolVersion)
	t.Printf(pad, "Info Size     : 0x%X", info.InfoSize)
	t.Printf(pad, "Supported BIOS: %s", info.SupportedBIOS)
	t.Printf(pad, "Supported OS  : %s", info.SupportedOS)
	t.Printf(pad, "Data Bus Width: %s", info.DataBusWidth)
	t.Printf(pad, "Program Type  : %s", info.ProgramType)
	t.Printf(pad, "Program Mode  : %s", info.ProgramMode)
	t.Printf(pad, "SourceSafe Tag: %02d", info.SourceSafeRel)
	t.Printf(pad, "Description   : %s", info.Description)
}

// Commands traces a decoded @DIS table.
func (t *Tracer) Commands(pad int, c *CommandStatus) {
	t.Printf(pad, "Password Size: 0x%X", c.PasswordSize)
	t.Printf(pad, "Entry Count  : %d", len(c.Entries))
	t.Printf(pad, "Password     : %s", c.Password)
	for i, e := range c.Entries {
		t.Section(pad+4, "Default Command Status Entry %02d/%02d:", i+1, len(c.Entries))
		t.Printf(pad+8, "State      : %s", e.State)
		t.Printf(pad+8, "Display    : %s", e.Display)
		t.Printf(pad+8, "Command    : %s", e.Command)
		t.Printf(pad+8, "Description: %s", e.Description)
	}
}
