//go:build linux
// +build linux

package alsalinux

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// ioctl request encoding (linux asm-generic/ioctl.h).
const (
	iocWrite uintptr = 1
	iocRead  uintptr = 2

	iocNrShift   = 0
	iocTypeShift = 8
	iocSizeShift = 16
	iocDirShift  = 30
)

func ioc(dir, typ, nr, size uintptr) uintptr {
	return dir<<iocDirShift | size<<iocSizeShift | typ<<iocTypeShift | nr<<iocNrShift
}

// Control device requests ('U' ioctl class).
var (
	ioctlCardInfo        = ioc(iocRead, 'U', 0x01, unsafe.Sizeof(sndCtlCardInfo{}))
	ioctlElemList        = ioc(iocRead|iocWrite, 'U', 0x10, unsafe.Sizeof(sndCtlElemList{}))
	ioctlElemInfo        = ioc(iocRead|iocWrite, 'U', 0x11, unsafe.Sizeof(sndCtlElemInfo{}))
	ioctlElemRead        = ioc(iocRead|iocWrite, 'U', 0x12, unsafe.Sizeof(sndCtlElemValue{}))
	ioctlElemWrite       = ioc(iocRead|iocWrite, 'U', 0x13, unsafe.Sizeof(sndCtlElemValue{}))
	ioctlSubscribeEvents = ioc(iocRead|iocWrite, 'U', 0x16, unsafe.Sizeof(int32(0)))
	ioctlTLVRead         = ioc(iocRead|iocWrite, 'U', 0x1a, unsafe.Sizeof(sndCtlTlv{}))
)

// ctlDevice is one open handle to a card's control node. Handles are not
// safe for concurrent use; each concurrent user opens its own.
type ctlDevice struct {
	fd   int
	path string
}

func ctlPath(cardIndex uint32) string {
	return fmt.Sprintf("/dev/snd/controlC%d", cardIndex)
}

// openCtl opens the control node of one card. nonblock is used by the
// event watcher so draining reads never stall.
func openCtl(cardIndex uint32, nonblock bool) (*ctlDevice, error) {
	path := ctlPath(cardIndex)
	flags := unix.O_RDWR | unix.O_CLOEXEC
	if nonblock {
		flags |= unix.O_NONBLOCK
	}
	fd, err := unix.Open(path, flags, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open control device %s: %w", path, err)
	}
	return &ctlDevice{fd: fd, path: path}, nil
}

func (d *ctlDevice) Close() error {
	if d.fd < 0 {
		return nil
	}
	err := unix.Close(d.fd)
	d.fd = -1
	return err
}

func (d *ctlDevice) ioctl(req uintptr, arg unsafe.Pointer) error {
	for {
		_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(d.fd), req, uintptr(arg))
		if errno == 0 {
			return nil
		}
		if errno == unix.EINTR {
			continue
		}
		return errno
	}
}

// cardInfo queries the card's identity block.
func (d *ctlDevice) cardInfo() (*sndCtlCardInfo, error) {
	var info sndCtlCardInfo
	if err := d.ioctl(ioctlCardInfo, unsafe.Pointer(&info)); err != nil {
		return nil, fmt.Errorf("card info ioctl on %s: %w", d.path, err)
	}
	return &info, nil
}

// elemIDs enumerates every control element on the device. The kernel
// protocol is two-pass: count first, then fill.
func (d *ctlDevice) elemIDs() ([]sndCtlElemID, error) {
	var list sndCtlElemList
	if err := d.ioctl(ioctlElemList, unsafe.Pointer(&list)); err != nil {
		return nil, fmt.Errorf("element count ioctl on %s: %w", d.path, err)
	}
	if list.Count == 0 {
		return nil, nil
	}
	ids := make([]sndCtlElemID, list.Count)
	list.Space = list.Count
	list.Offset = 0
	list.Pids = uint64(uintptr(unsafe.Pointer(&ids[0])))
	if err := d.ioctl(ioctlElemList, unsafe.Pointer(&list)); err != nil {
		return nil, fmt.Errorf("element list ioctl on %s: %w", d.path, err)
	}
	return ids[:list.Used], nil
}

// elemInfoByNumid queries element metadata by numid.
func (d *ctlDevice) elemInfoByNumid(numid uint32) (*sndCtlElemInfo, error) {
	var info sndCtlElemInfo
	info.ID.Numid = numid
	if err := d.ioctl(ioctlElemInfo, unsafe.Pointer(&info)); err != nil {
		return nil, err
	}
	return &info, nil
}

// enumItemName asks the kernel for one enumerated item's label.
func (d *ctlDevice) enumItemName(numid uint32, item uint32) (string, error) {
	var info sndCtlElemInfo
	info.ID.Numid = numid
	enum := (*sndCtlEnumInfo)(unsafe.Pointer(&info.Value[0]))
	enum.Item = item
	if err := d.ioctl(ioctlElemInfo, unsafe.Pointer(&info)); err != nil {
		return "", err
	}
	return cString(enum.Name[:]), nil
}

// elemRead reads an element's composite value by numid.
func (d *ctlDevice) elemRead(numid uint32) (*sndCtlElemValue, error) {
	var value sndCtlElemValue
	value.ID.Numid = numid
	if err := d.ioctl(ioctlElemRead, unsafe.Pointer(&value)); err != nil {
		return nil, err
	}
	return &value, nil
}

// elemWrite writes an element's composite value back.
func (d *ctlDevice) elemWrite(value *sndCtlElemValue) error {
	return d.ioctl(ioctlElemWrite, unsafe.Pointer(value))
}

// subscribeEvents toggles delivery of change events on this handle.
func (d *ctlDevice) subscribeEvents(enable int32) error {
	if err := d.ioctl(ioctlSubscribeEvents, unsafe.Pointer(&enable)); err != nil {
		return fmt.Errorf("subscribe events ioctl on %s: %w", d.path, err)
	}
	return nil
}

// tlvWords reads the element's raw TLV metadata block as 32-bit words
// (type, byte length, payload...).
func (d *ctlDevice) tlvWords(numid uint32) ([]uint32, error) {
	const payloadWords = 128
	buf := struct {
		hdr sndCtlTlv
		tlv [payloadWords]uint32
	}{}
	buf.hdr.Numid = numid
	buf.hdr.Length = payloadWords * 4
	if err := d.ioctl(ioctlTLVRead, unsafe.Pointer(&buf)); err != nil {
		return nil, err
	}
	used := buf.hdr.Length / 4
	if used > payloadWords {
		used = payloadWords
	}
	return buf.tlv[:used], nil
}

// Union views over sndCtlElemValue.Value. Integer and integer64 elements
// share one accessor: C long and long long are both 8 bytes on the
// supported targets, so the channel slots line up. Integer64 elements
// only populate the first 64 slots.

func (v *sndCtlElemValue) integers() *[128]int64 {
	return (*[128]int64)(unsafe.Pointer(&v.Value[0]))
}

func (v *sndCtlElemValue) booleans() *[128]int64 {
	return (*[128]int64)(unsafe.Pointer(&v.Value[0]))
}

func (v *sndCtlElemValue) enums() *[128]uint32 {
	return (*[128]uint32)(unsafe.Pointer(&v.Value[0]))
}

func (info *sndCtlElemInfo) integerRange() sndCtlIntegerInfo {
	return *(*sndCtlIntegerInfo)(unsafe.Pointer(&info.Value[0]))
}

func (info *sndCtlElemInfo) enumItems() uint32 {
	return (*sndCtlEnumInfo)(unsafe.Pointer(&info.Value[0])).Items
}

// cString trims a NUL-terminated kernel byte array.
func cString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
