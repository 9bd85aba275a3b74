//go:build linux
// +build linux

package alsalinux

// Kernel ABI structs for the ALSA control character device
// (/dev/snd/controlC*). Layouts assume a 64-bit kernel where C long is
// 8 bytes (amd64, arm64).

// sndCtlCardInfo contains general information about a sound card.
type sndCtlCardInfo struct {
	Card       int32
	Pad        int32
	ID         [16]byte
	Driver     [16]byte
	Name       [32]byte
	Longname   [80]byte
	Reserved   [16]byte
	Mixername  [80]byte
	Components [128]byte
}

// sndCtlElemID identifies a single control element.
type sndCtlElemID struct {
	Numid     uint32
	Iface     int32 // snd_ctl_elem_iface_t
	Device    uint32
	Subdevice uint32
	Name      [44]byte
	Index     uint32
}

// sndCtlElemList is the two-pass enumeration request: the first call with
// Space==0 reports Count, the second fills the caller-allocated id array
// behind Pids.
type sndCtlElemList struct {
	Offset   uint32
	Space    uint32
	Used     uint32
	Count    uint32
	Pids     uint64 // user pointer to []sndCtlElemID
	Reserved [50]byte
}

// sndCtlElemInfo contains metadata about a control element. Value is the
// C union sized to its largest member (128 bytes); the per-type views
// below overlay it.
type sndCtlElemInfo struct {
	ID       sndCtlElemID
	Typ      int32 // snd_ctl_elem_type_t
	Access   uint32
	Count    uint32
	Owner    int32
	Value    [128]byte
	Reserved [64]byte
}

// sndCtlIntegerInfo overlays sndCtlElemInfo.Value for integer elements.
// C long fields, 8 bytes each on the supported targets.
type sndCtlIntegerInfo struct {
	Min  int64
	Max  int64
	Step int64
}

// sndCtlEnumInfo overlays sndCtlElemInfo.Value for enumerated elements.
// Setting Item before ELEM_INFO makes the kernel fill Name with that
// item's label.
type sndCtlEnumInfo struct {
	Items       uint32
	Item        uint32
	Name        [64]byte
	NamesPtr    uint64
	NamesLength uint32
}

// sndCtlElemValue carries the composite value of one element. Value is
// the C union sized to its largest member (long value[128]); the union
// has 8-byte alignment, hence the explicit padding after Indirect.
type sndCtlElemValue struct {
	ID       sndCtlElemID
	Indirect uint32
	_        [4]byte
	Value    [1024]byte
	Reserved [128]byte
}

// sndCtlEvent is one record of the control change-event stream.
type sndCtlEvent struct {
	Typ  int32
	Mask uint32
	ID   sndCtlElemID
}

// sndCtlTlv is the header of a Type-Length-Value metadata request; the
// variable-length payload follows it in memory.
type sndCtlTlv struct {
	Numid  uint32
	Length uint32
}

// Element interface (snd_ctl_elem_iface_t) names, indexed by value.
var elemIfaceNames = []string{
	"Card", "Hwdep", "Mixer", "PCM", "RawMidi", "Timer", "Sequencer",
}

func elemIfaceName(iface int32) string {
	if iface >= 0 && int(iface) < len(elemIfaceNames) {
		return elemIfaceNames[iface]
	}
	return "Unknown"
}
