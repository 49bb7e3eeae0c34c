// Package sysinfo collects hardware, OS, firmware and system drive facts
// for a local or remote host and merges them into a single flat Report.
package sysinfo

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Querier issues the four read-only system queries against one host.
// Implementations must not retry; errors are surfaced to the caller
// unchanged.
type Querier interface {
	Machine(ctx context.Context) (MachineInfo, error)
	OperatingSystem(ctx context.Context) (OSInfo, error)
	Firmware(ctx context.Context) (FirmwareInfo, error)
	// SystemDrive queries the drive identified by letter, which the
	// collector takes from the operating system query.
	SystemDrive(ctx context.Context, letter string) (DriveInfo, error)
}

// Collect issues all four queries through q and merges the results into
// one Report, scaling byte-derived fields by unit. Any query failure
// aborts the collection: no partial report is returned.
func Collect(ctx context.Context, q Querier, unit Unit) (*Report, error) {
	machine, err := q.Machine(ctx)
	if err != nil {
		return nil, fmt.Errorf("machine query: %w", err)
	}

	osInfo, err := q.OperatingSystem(ctx)
	if err != nil {
		return nil, fmt.Errorf("operating system query: %w", err)
	}

	firmware, err := q.Firmware(ctx)
	if err != nil {
		return nil, fmt.Errorf("firmware query: %w", err)
	}

	drive, err := q.SystemDrive(ctx, osInfo.SystemDrive)
	if err != nil {
		return nil, fmt.Errorf("system drive query: %w", err)
	}

	var uptime time.Duration
	if !osInfo.LastBootTime.IsZero() {
		uptime = time.Since(osInfo.LastBootTime).Truncate(time.Second)
	}

	return &Report{
		ComputerName:        machine.Name,
		FQDN:                fqdn(machine.Name, machine.Domain),
		Manufacturer:        machine.Manufacturer,
		Model:               machine.Model,
		RAM:                 unit.Apply(machine.TotalPhysicalMemory),
		SystemDiskLetter:    drive.Letter,
		SystemDiskSize:      unit.Apply(drive.Size),
		SystemDiskFreeSpace: unit.Apply(drive.FreeSpace),
		ProcessorCount:      machine.ProcessorCount,
		CoreCount:           machine.LogicalProcessorCount,
		Uptime:              uptime,
		LastBootTime:        osInfo.LastBootTime,
		OSName:              strings.TrimSpace(osInfo.Name),
		OSVersion:           osInfo.Version,
		OSInstallDate:       osInfo.InstallDate,
		OSArchitecture:      osInfo.Architecture,
		BiosVersion:         firmware.Version,
		BiosSerialNumber:    strings.TrimSpace(firmware.SerialNumber),
	}, nil
}

// fqdn joins host name and domain as name.domain. A host without a
// domain keeps its bare name.
func fqdn(name, domain string) string {
	if domain == "" {
		return name
	}
	return name + "." + domain
}
