// Package ucp locates and unpacks the AMI "Utility Configuration
// Program" container format embedded in AMI BIOS update executables.
//
// A UCP container is a tag-prefixed, length-declared chain of modules.
// Each module carries a 16-byte header, an 8-byte sub-header holding
// the compressed and original payload sizes, and a raw payload that may
// be EFI/Tiano compressed, may hold a special text structure, or may
// itself wrap another UCP container, an Insyde 7z SFX archive or an AMI
// BIOS Guard (PFAT) image. The format describes its own layout only
// through magic tags, declared lengths and an auxiliary name-list
// module, so every read here is bounds-checked against the declared
// structure sizes; the source buffer is untrusted input.
package ucp

// Well-known module tags. The container signature tag doubles as the
// tag of the implicit whole-container pseudo-module.
const (
	TagContainer   = "@UAF" // AMI Utility Auxiliary File container
	TagContainerHP = "@HPU" // HP OEM variant of the container signature
	TagTool        = "@UII" // utility identification information
	TagCommandStat = "@DIS" // default command status table
	TagNameList    = "@NAL" // tag-to-file-name list
	TagInsyde      = "@INS" // nested Insyde 7z SFX archive
	TagROM         = "@ROM" // BIOS firmware without signature
)

// Fixed structure sizes, in bytes.
const (
	moduleHeaderLen = 16
	subHeaderLen    = 8
	uiiHeaderLen    = 16
	disHeaderLen    = 16
	disEntryLen     = 290
)

// signatureByte is the first byte of every module tag.
const signatureByte = '@'

// ModuleHeader is the 16-byte header that starts the container and
// every module in its chain. All fields are little-endian.
type ModuleHeader struct {
	Tag      [4]byte
	Size     uint32
	Checksum uint16
	Unknown0 uint8
	Unknown1 uint8
	Reserved uint32
}

// TagString returns the module tag as text.
func (h *ModuleHeader) TagString() string {
	return string(h.Tag[:])
}

// SubHeader is the 8-byte compressed/original size pair that
// immediately follows a module's header.
type SubHeader struct {
	CompressSize uint32
	OriginalSize uint32
}

// Compressed reports whether the module payload is EFI/Tiano
// compressed. The format signals compression only through a size
// mismatch.
func (s SubHeader) Compressed() bool {
	return s.CompressSize != s.OriginalSize
}

// Module is one enumerated entry of a container's module chain.
type Module struct {
	Tag    string
	Offset int
	Header ModuleHeader
}

// UiiHeader is the fixed 16-byte header of the @UII module payload.
type UiiHeader struct {
	UIISize        uint16
	Checksum       uint16
	UtilityVersion uint32
	InfoSize       uint16
	SupportBIOS    uint8
	SupportOS      uint8
	DataBusWidth   uint8
	ProgramType    uint8
	ProgramMode    uint8
	SourceSafeRel  uint8
}

// DisHeader is the fixed 16-byte header of the @DIS module payload.
type DisHeader struct {
	PasswordSize uint16
	EntryCount   uint16
	Password     [12]byte
}

// DisEntry is one fixed 290-byte command status entry.
type DisEntry struct {
	EnabledDisabled uint8
	ShownHidden     uint8
	Command         [32]byte
	Description     [256]byte
}
