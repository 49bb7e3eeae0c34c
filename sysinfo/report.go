package sysinfo

import "time"

// Report holds the merged result of one system info collection. It is
// created fresh per invocation and never mutated afterwards.
type Report struct {
	ComputerName        string        `json:"computer_name"`
	FQDN                string        `json:"fqdn"`
	Manufacturer        string        `json:"manufacturer"`
	Model               string        `json:"model"`
	RAM                 uint64        `json:"ram"`
	SystemDiskLetter    string        `json:"system_disk_letter"`
	SystemDiskSize      uint64        `json:"system_disk_size"`
	SystemDiskFreeSpace uint64        `json:"system_disk_free_space"`
	ProcessorCount      uint32        `json:"processor_count"`
	CoreCount           uint32        `json:"core_count"`
	Uptime              time.Duration `json:"uptime"`
	LastBootTime        time.Time     `json:"last_boot_time"`
	OSName              string        `json:"os_name"`
	OSVersion           string        `json:"os_version"`
	OSInstallDate       time.Time     `json:"os_install_date"`
	OSArchitecture      string        `json:"os_architecture"`
	BiosVersion         string        `json:"bios_version"`
	BiosSerialNumber    string        `json:"bios_serial_number"`
}

// MachineInfo is the result of the machine query.
type MachineInfo struct {
	Name                  string
	Domain                string
	Manufacturer          string
	Model                 string
	TotalPhysicalMemory   uint64
	ProcessorCount        uint32
	LogicalProcessorCount uint32
}

// OSInfo is the result of the operating system query.
type OSInfo struct {
	Name         string
	Version      string
	Architecture string
	SystemDrive  string
	InstallDate  time.Time
	LastBootTime time.Time
}

// FirmwareInfo is the result of the firmware query.
type FirmwareInfo struct {
	Version      string
	SerialNumber string
}

// DriveInfo is the result of the system drive query.
type DriveInfo struct {
	Letter    string
	Size      uint64
	FreeSpace uint64
}
