package device

import (
	"fmt"

	"github.com/foxboron/go-execinfo/efi/util"
)

// Subtypes of Hardware Device
// Section 10.3.2 - Hardware Device Path
const (
	_ DevicePathSubType = iota
	HardwarePCI
	HardwarePCCARD
	HardwareMemoryMapped
	HardwareVendor
	HardwareController
	HardwareBMC
)

type PCIDevicePath struct {
	EFIDevicePath
	Function uint8
	Device   uint8
}

func (p PCIDevicePath) Format() string {
	return fmt.Sprintf("Pci(0x%x,0x%x)", p.Device, p.Function)
}

type VendorHardwareDevicePath struct {
	EFIDevicePath
	Guid util.EFIGUID
	Data []byte
}

func (v VendorHardwareDevicePath) Format() string {
	if len(v.Data) == 0 {
		return fmt.Sprintf("VenHw(%s)", v.Guid)
	}
	return fmt.Sprintf("VenHw(%s,%x)", v.Guid, v.Data)
}

type ControllerDevicePath struct {
	EFIDevicePath
	Controller uint32
}

func (c ControllerDevicePath) Format() string {
	return fmt.Sprintf("Ctrl(0x%x)", c.Controller)
}

func ParseHardwareDevicePath(efi EFIDevicePath, data []byte) EFIDevicePaths {
	c := util.NewCursor(data)
	switch efi.SubType {
	case HardwarePCI:
		b, err := c.Read(2)
		if err != nil {
			return nil
		}
		return PCIDevicePath{EFIDevicePath: efi, Function: b[0], Device: b[1]}
	case HardwareVendor:
		g, err := c.GUID()
		if err != nil {
			return nil
		}
		return VendorHardwareDevicePath{EFIDevicePath: efi, Guid: g, Data: c.Rest()}
	case HardwareController:
		n, err := c.Uint32()
		if err != nil {
			return nil
		}
		return ControllerDevicePath{EFIDevicePath: efi, Controller: n}
	}
	return nil
}
