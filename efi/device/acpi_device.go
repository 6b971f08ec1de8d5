package device

import (
	"fmt"

	"github.com/foxboron/go-execinfo/efi/util"
)

// Subtypes of ACPI Device
// Section 10.3.3 - ACPI Device Path
const (
	_ DevicePathSubType = iota
	ACPIDevice
	ExpandedACPIDevice
)

const (
	pnpPCIRoot  = 0x0a03
	pnpPCIeRoot = 0x0a08
	eisaPNPID   = 0x41d0
)

type ACPIDevicePath struct {
	EFIDevicePath
	HID uint32
	UID uint32
}

func (a ACPIDevicePath) Format() string {
	if a.HID&0xffff == eisaPNPID {
		switch a.HID >> 16 {
		case pnpPCIRoot:
			return fmt.Sprintf("PciRoot(0x%x)", a.UID)
		case pnpPCIeRoot:
			return fmt.Sprintf("PcieRoot(0x%x)", a.UID)
		}
		return fmt.Sprintf("Acpi(PNP%04X,0x%x)", a.HID>>16, a.UID)
	}
	return fmt.Sprintf("Acpi(0x%08x,0x%x)", a.HID, a.UID)
}

func ParseACPIDevicePath(efi EFIDevicePath, data []byte) EFIDevicePaths {
	if efi.SubType != ACPIDevice {
		return nil
	}
	c := util.NewCursor(data)
	hid, err := c.Uint32()
	if err != nil {
		return nil
	}
	uid, err := c.Uint32()
	if err != nil {
		return nil
	}
	return ACPIDevicePath{EFIDevicePath: efi, HID: hid, UID: uid}
}
