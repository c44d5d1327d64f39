package ucp

// ContentKind classifies what a known module payload holds after any
// decompression.
type ContentKind uint8

const (
	KindBinary ContentKind = iota
	KindText
)

// TagInfo is one Tag Registry entry: the default output file name, a
// human description where one is known, and the payload content kind.
type TagInfo struct {
	Name        string
	Description string
	Kind        ContentKind
}

// LookupTag consults the Tag Registry.
func LookupTag(tag string) (TagInfo, bool) {
	info, ok := tagRegistry[tag]
	return info, ok
}

// tagRegistry is the static fallback table of known module tags. The
// name list module of a container, when present, takes precedence over
// these defaults.
var tagRegistry = map[string]TagInfo{
	"@3FI": {Name: "HpBiosUpdate32.efi"},
	"@3S2": {Name: "HpBiosUpdate32.s12"},
	"@3S4": {Name: "HpBiosUpdate32.s14"},
	"@3S9": {Name: "HpBiosUpdate32.s09"},
	"@3SG": {Name: "HpBiosUpdate32.sig"},
	"@AMI": {Name: "UCP_Nested.bin", Description: "Nested AMI UCP"},
	"@B12": {Name: "BiosMgmt.s12"},
	"@B14": {Name: "BiosMgmt.s14"},
	"@B32": {Name: "BiosMgmt32.s12"},
	"@B34": {Name: "BiosMgmt32.s14"},
	"@B39": {Name: "BiosMgmt32.s09"},
	"@B3E": {Name: "BiosMgmt32.efi"},
	"@BM9": {Name: "BiosMgmt.s09"},
	"@BME": {Name: "BiosMgmt.efi"},
	"@CKV": {Name: "Check_Version.txt", Description: "Check Version", Kind: KindText},
	"@CMD": {Name: "AFU_Command.txt", Description: "AMI AFU Command", Kind: KindText},
	"@CPM": {Name: "AC_Message.txt", Description: "Confirm Power Message"},
	"@DCT": {Name: "DevCon32.exe", Description: "Device Console WIN32"},
	"@DCX": {Name: "DevCon64.exe", Description: "Device Console WIN64"},
	"@DFE": {Name: "HpDevFwUpdate.efi"},
	"@DFS": {Name: "HpDevFwUpdate.s12"},
	"@DIS": {Name: "Command_Status.bin", Description: "Default Command Status"},
	"@ENB": {Name: "ENBG64.exe"},
	"@INS": {Name: "Insyde_Nested.bin", Description: "Nested Insyde SFX"},
	"@M32": {Name: "HpBiosMgmt32.s12"},
	"@M34": {Name: "HpBiosMgmt32.s14"},
	"@M39": {Name: "HpBiosMgmt32.s09"},
	"@M3I": {Name: "HpBiosMgmt32.efi"},
	"@MEC": {Name: "FWUpdLcl.txt", Description: "Intel FWUpdLcl Command", Kind: KindText},
	"@MED": {Name: "FWUpdLcl_DOS.exe", Description: "Intel FWUpdLcl DOS"},
	"@MET": {Name: "FWUpdLcl_WIN32.exe", Description: "Intel FWUpdLcl WIN32"},
	"@MFI": {Name: "HpBiosMgmt.efi"},
	"@MS2": {Name: "HpBiosMgmt.s12"},
	"@MS4": {Name: "HpBiosMgmt.s14"},
	"@MS9": {Name: "HpBiosMgmt.s09"},
	"@NAL": {Name: "UAF_List.txt", Description: "Name List"},
	"@OKM": {Name: "OK_Message.txt", Description: "OK Message"},
	"@PFC": {Name: "BGT_Command.txt", Description: "AMI BGT Command", Kind: KindText},
	"@R3I": {Name: "CryptRSA32.efi"},
	"@RFI": {Name: "CryptRSA.efi"},
	"@UAF": {Name: "UCP_Main.bin", Description: "Utility Auxiliary File"},
	"@UFI": {Name: "HpBiosUpdate.efi"},
	"@UII": {Name: "UCP_Info.txt", Description: "Utility Identification Information"},
	"@US2": {Name: "HpBiosUpdate.s12"},
	"@US4": {Name: "HpBiosUpdate.s14"},
	"@US9": {Name: "HpBiosUpdate.s09"},
	"@USG": {Name: "HpBiosUpdate.sig"},
	"@VER": {Name: "OEM_Version.txt", Description: "OEM Version", Kind: KindText},
	"@VXD": {Name: "amifldrv.vxd"},
	"@W32": {Name: "amifldrv32.sys"},
	"@W64": {Name: "amifldrv64.sys"},
}
