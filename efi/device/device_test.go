package device

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/foxboron/go-execinfo/efi/util"
)

func node(typ DevicePathType, sub DevicePathSubType, data []byte) []byte {
	b := []byte{byte(typ), byte(sub), 0, 0}
	binary.LittleEndian.PutUint16(b[2:], uint16(len(data)+SizeofEFIDevicePath))
	return append(b, data...)
}

func end() []byte {
	return node(EndOfHardwareDevicePath, NoNewDevicePath, nil)
}

func le32(v uint32) []byte {
	return binary.LittleEndian.AppendUint32(nil, v)
}

func le64(v uint64) []byte {
	return binary.LittleEndian.AppendUint64(nil, v)
}

func join(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

func sataDiskPath() []byte {
	gpt := util.MustGUID("5a7c4f0e-7d3b-4b1c-9d8f-0123456789ab")
	hd := join(le32(1), le64(0x800), le64(0x100000), gpt.Bytes(), []byte{partitionFormatGPT, signatureTypeGUID})
	return join(
		node(ACPI, ACPIDevice, join(le32(0x0a0341d0), le32(0))),
		node(Hardware, HardwarePCI, []byte{0x2, 0x1f}),
		node(MessagingDevicePath, MessagingSATA, []byte{0, 0, 0xff, 0xff, 0, 0}),
		node(MediaDevicePath, HardDriveMediaDevice, hd),
		node(MediaDevicePath, FileTypeMediaDevice, util.EncodeUTF16(`\EFI\BOOT\BOOTX64.EFI`)),
		end(),
	)
}

func TestDevicePathSize(t *testing.T) {
	path := sataDiskPath()
	trailer := []byte{0xde, 0xad, 0xbe, 0xef}
	n, err := DevicePathSize(append(append([]byte{}, path...), trailer...))
	if err != nil {
		t.Fatal(err)
	}
	if n != uint64(len(path)) {
		t.Fatalf("expected %d, got %d", len(path), n)
	}
}

func TestDevicePathSizeEndOnly(t *testing.T) {
	n, err := DevicePathSize(end())
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Fatalf("expected 4, got %d", n)
	}
}

func TestDevicePathSizeErrors(t *testing.T) {
	for _, c := range []struct {
		name string
		path []byte
		err  error
	}{
		{"empty", nil, ErrTruncatedDevicePath},
		{"short header", []byte{0x7f, 0xff}, ErrTruncatedDevicePath},
		{"zero length node", []byte{0x01, 0x01, 0x00, 0x00, 0x7f, 0xff, 0x04, 0x00}, ErrInvalidNodeLength},
		{"node past end", []byte{0x01, 0x01, 0x40, 0x00, 0x00}, ErrTruncatedDevicePath},
		{"no end node", node(Hardware, HardwarePCI, []byte{0, 0}), ErrTruncatedDevicePath},
		{"instance end only", node(EndOfHardwareDevicePath, NewDevicePath, nil), ErrTruncatedDevicePath},
	} {
		t.Run(c.name, func(t *testing.T) {
			if _, err := DevicePathSize(c.path); !errors.Is(err, c.err) {
				t.Fatalf("expected %v, got %v", c.err, err)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	for _, c := range []struct {
		name string
		path []byte
		want string
	}{
		{
			"sata disk",
			sataDiskPath(),
			`PciRoot(0x0)/Pci(0x1f,0x2)/Sata(0x0,0xffff,0x0)/HD(1,GPT,5a7c4f0e-7d3b-4b1c-9d8f-0123456789ab,0x800,0x100000)/\EFI\BOOT\BOOTX64.EFI`,
		},
		{
			"firmware volume file",
			join(
				node(MediaDevicePath, PIWGFirmwareVolumeMediaDevice, util.MustGUID("7cb8bdc9-f8eb-4f34-aaea-3ee4af6516a1").Bytes()),
				node(MediaDevicePath, PIWGFirmwareFileMediaDevice, util.MustGUID("462caa21-7614-4503-836e-8ab6f4662331").Bytes()),
				end(),
			),
			"Fv(7cb8bdc9-f8eb-4f34-aaea-3ee4af6516a1)/FvFile(462caa21-7614-4503-836e-8ab6f4662331)",
		},
		{
			"nvme and usb instances",
			join(
				node(ACPI, ACPIDevice, join(le32(0x0a0841d0), le32(1))),
				node(MessagingDevicePath, MessagingNVMe, join(le32(1), []byte{8, 7, 6, 5, 4, 3, 2, 1})),
				node(EndOfHardwareDevicePath, NewDevicePath, nil),
				node(MessagingDevicePath, MessagingUSB, []byte{3, 0}),
				end(),
			),
			"PcieRoot(0x1)/NVMe(0x1,01-02-03-04-05-06-07-08),USB(0x3,0x0)",
		},
		{
			"unknown node",
			join(node(BIOSBootSpecificationDevicePath, 1, []byte{0xab}), end()),
			"Path(5,1,ab)",
		},
		{
			"short pci node",
			join(node(Hardware, HardwarePCI, []byte{0x01}), end()),
			"Path(1,1,01)",
		},
		{
			"offset range",
			join(node(MediaDevicePath, RelativeOffsetRangeMediaDevice, join(le32(0), le64(0x10), le64(0x20))), end()),
			"Offset(0x10,0x20)",
		},
		{
			"truncated",
			node(Hardware, HardwareController, le32(2)),
			"Ctrl(0x2)/<truncated>",
		},
		{
			"empty",
			end(),
			"",
		},
	} {
		t.Run(c.name, func(t *testing.T) {
			if got := Format(c.path); got != c.want {
				t.Fatalf("expected %q, got %q", c.want, got)
			}
		})
	}
}

func TestParseDevicePathPartial(t *testing.T) {
	path := join(node(Hardware, HardwarePCI, []byte{0, 1}), []byte{0x7f})
	nodes, err := ParseDevicePath(path)
	if !errors.Is(err, ErrTruncatedDevicePath) {
		t.Fatalf("expected truncation, got %v", err)
	}
	if len(nodes) != 1 {
		t.Fatalf("expected the leading node, got %d", len(nodes))
	}
	if _, ok := nodes[0].(PCIDevicePath); !ok {
		t.Fatalf("unexpected node %T", nodes[0])
	}
}
