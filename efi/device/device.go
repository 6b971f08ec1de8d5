package device

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/foxboron/go-execinfo/efi/util"
)

// Section 10.3 Device Path Nodes
// Page 286
type DevicePathType uint8

const (
	_ DevicePathType = iota
	Hardware
	ACPI
	MessagingDevicePath
	MediaDevicePath
	BIOSBootSpecificationDevicePath
	EndOfHardwareDevicePath DevicePathType = 127
)

// Section 10.3.1 Generic Device Path Structures
// Page 287
type DevicePathSubType uint8

// Table 45. Device Path End Structure
// Subtypes of EndofHardwareDevicePath
const (
	NewDevicePath   DevicePathSubType = 1
	NoNewDevicePath DevicePathSubType = 255
)

// Size of the generic node header
const SizeofEFIDevicePath = 4

var (
	ErrTruncatedDevicePath = errors.New("device path runs past the end of the buffer")
	ErrInvalidNodeLength   = errors.New("device path node shorter than its header")
)

// Section 10.2 EFI Device Path Protocol
// Page 285
type EFIDevicePath struct {
	Type    DevicePathType
	SubType DevicePathSubType
	Length  uint16
}

type EFIDevicePaths interface {
	Format() string
}

// GenericDevicePath is any node without a dedicated text form.
type GenericDevicePath struct {
	EFIDevicePath
	Data []byte
}

func (g GenericDevicePath) Format() string {
	return fmt.Sprintf("Path(%d,%d,%x)", g.Type, g.SubType, g.Data)
}

// EndDevicePath terminates an instance or the whole path.
type EndDevicePath struct {
	EFIDevicePath
}

func (e EndDevicePath) Format() string {
	if e.SubType == NewDevicePath {
		return ","
	}
	return ""
}

func (e EFIDevicePath) isEnd() bool {
	return e.Type == EndOfHardwareDevicePath && e.SubType == NoNewDevicePath
}

// readNode returns the header and payload of the node at the cursor.
func readNode(c *util.Cursor) (EFIDevicePath, []byte, error) {
	hdr, err := c.Read(SizeofEFIDevicePath)
	if err != nil {
		return EFIDevicePath{}, nil, ErrTruncatedDevicePath
	}
	node := EFIDevicePath{
		Type:    DevicePathType(hdr[0]),
		SubType: DevicePathSubType(hdr[1]),
		Length:  binary.LittleEndian.Uint16(hdr[2:4]),
	}
	if node.Length < SizeofEFIDevicePath {
		return node, nil, ErrInvalidNodeLength
	}
	data, err := c.Read(uint64(node.Length - SizeofEFIDevicePath))
	if err != nil {
		return node, nil, ErrTruncatedDevicePath
	}
	return node, data, nil
}

// DevicePathSize returns the number of bytes taken by the device path at the
// start of b, up to and including the End Entire Device Path node.
func DevicePathSize(b []byte) (uint64, error) {
	c := util.NewCursor(b)
	for {
		node, _, err := readNode(c)
		if err != nil {
			return 0, err
		}
		if node.isEnd() {
			return c.Offset(), nil
		}
	}
}

// ParseDevicePath decodes every node up to the End Entire Device Path node.
// On error the nodes decoded so far are returned.
func ParseDevicePath(b []byte) ([]EFIDevicePaths, error) {
	var ret []EFIDevicePaths
	c := util.NewCursor(b)
	for {
		node, data, err := readNode(c)
		if err != nil {
			return ret, err
		}
		if node.isEnd() {
			return ret, nil
		}
		ret = append(ret, parseNode(node, data))
	}
}

func parseNode(node EFIDevicePath, data []byte) EFIDevicePaths {
	var d EFIDevicePaths
	switch node.Type {
	case Hardware:
		d = ParseHardwareDevicePath(node, data)
	case ACPI:
		d = ParseACPIDevicePath(node, data)
	case MessagingDevicePath:
		d = ParseMessagingDevicePath(node, data)
	case MediaDevicePath:
		d = ParseMediaDevicePath(node, data)
	case EndOfHardwareDevicePath:
		d = EndDevicePath{node}
	}
	if d == nil {
		return GenericDevicePath{EFIDevicePath: node, Data: data}
	}
	return d
}

// Format renders a device path in the UEFI text representation, e.g.
// PciRoot(0x0)/Pci(0x1f,0x2)/Sata(0x0,0xffff,0x0)/HD(1,GPT,...)/\EFI\BOOT\BOOTX64.EFI
func Format(b []byte) string {
	nodes, err := ParseDevicePath(b)
	var sb strings.Builder
	for i, n := range nodes {
		s := n.Format()
		if i > 0 && s != "," && !strings.HasSuffix(sb.String(), ",") {
			sb.WriteString("/")
		}
		sb.WriteString(s)
	}
	if err != nil {
		if sb.Len() > 0 {
			sb.WriteString("/")
		}
		sb.WriteString("<truncated>")
	}
	return sb.String()
}
