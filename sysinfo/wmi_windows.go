//go:build windows

package sysinfo

import (
	"context"
	"time"

	"github.com/yusufpapurcu/wmi"
)

const wmiNamespace = `root\cimv2`

// WMIQuerier issues the four queries over WMI against a local or remote
// Windows host. An empty Host targets the local machine; Username and
// Password are only used for remote connections.
type WMIQuerier struct {
	Host     string
	Username string
	Password string
}

type win32ComputerSystem struct {
	Name                      string
	Domain                    string
	Manufacturer              string
	Model                     string
	TotalPhysicalMemory       uint64
	NumberOfProcessors        uint32
	NumberOfLogicalProcessors uint32
}

type win32OperatingSystem struct {
	Caption        string
	Version        string
	OSArchitecture string
	SystemDrive    string
	InstallDate    time.Time
	LastBootUpTime time.Time
}

type win32BIOS struct {
	SMBIOSBIOSVersion string
	SerialNumber      string
}

type win32LogicalDisk struct {
	DeviceID  string
	Size      uint64
	FreeSpace uint64
}

func (q *WMIQuerier) Machine(ctx context.Context) (MachineInfo, error) {
	var cs []win32ComputerSystem
	wql := "SELECT Name, Domain, Manufacturer, Model, TotalPhysicalMemory, NumberOfProcessors, NumberOfLogicalProcessors FROM Win32_ComputerSystem"
	if err := q.query(ctx, wql, &cs); err != nil {
		return MachineInfo{}, err
	}

	info := MachineInfo{}
	if len(cs) > 0 {
		info.Name = cs[0].Name
		info.Domain = cs[0].Domain
		info.Manufacturer = cs[0].Manufacturer
		info.Model = cs[0].Model
		info.TotalPhysicalMemory = cs[0].TotalPhysicalMemory
		info.ProcessorCount = cs[0].NumberOfProcessors
		info.LogicalProcessorCount = cs[0].NumberOfLogicalProcessors
	}
	return info, nil
}

func (q *WMIQuerier) OperatingSystem(ctx context.Context) (OSInfo, error) {
	var oses []win32OperatingSystem
	wql := "SELECT Caption, Version, OSArchitecture, SystemDrive, InstallDate, LastBootUpTime FROM Win32_OperatingSystem"
	if err := q.query(ctx, wql, &oses); err != nil {
		return OSInfo{}, err
	}

	info := OSInfo{}
	if len(oses) > 0 {
		info.Name = oses[0].Caption
		info.Version = oses[0].Version
		info.Architecture = oses[0].OSArchitecture
		info.SystemDrive = oses[0].SystemDrive
		info.InstallDate = oses[0].InstallDate
		info.LastBootTime = oses[0].LastBootUpTime
	}
	return info, nil
}

func (q *WMIQuerier) Firmware(ctx context.Context) (FirmwareInfo, error) {
	var bios []win32BIOS
	if err := q.query(ctx, "SELECT SMBIOSBIOSVersion, SerialNumber FROM Win32_BIOS", &bios); err != nil {
		return FirmwareInfo{}, err
	}

	info := FirmwareInfo{}
	if len(bios) > 0 {
		info.Version = bios[0].SMBIOSBIOSVersion
		info.SerialNumber = bios[0].SerialNumber
	}
	return info, nil
}

func (q *WMIQuerier) SystemDrive(ctx context.Context, letter string) (DriveInfo, error) {
	var disks []win32LogicalDisk
	wql := "SELECT DeviceID, Size, FreeSpace FROM Win32_LogicalDisk WHERE DeviceID = '" + letter + "'"
	if err := q.query(ctx, wql, &disks); err != nil {
		return DriveInfo{}, err
	}

	info := DriveInfo{Letter: letter}
	if len(disks) > 0 {
		info.Letter = disks[0].DeviceID
		info.Size = disks[0].Size
		info.FreeSpace = disks[0].FreeSpace
	}
	return info, nil
}

// query runs one WQL query, connecting to the remote host when one is
// configured.
func (q *WMIQuerier) query(ctx context.Context, wql string, dst any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if q.Host == "" {
		return wmi.Query(wql, dst)
	}
	return wmi.Query(wql, dst, q.Host, wmiNamespace, q.Username, q.Password)
}
