package sysinfo

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

// mockQuerier returns canned responses for the four queries and can be
// failed per query.
type mockQuerier struct {
	machine  MachineInfo
	os       OSInfo
	firmware FirmwareInfo
	drive    DriveInfo

	machineErr  error
	osErr       error
	firmwareErr error
	driveErr    error

	driveLetterSeen string
}

func (m *mockQuerier) Machine(context.Context) (MachineInfo, error) {
	return m.machine, m.machineErr
}

func (m *mockQuerier) OperatingSystem(context.Context) (OSInfo, error) {
	return m.os, m.osErr
}

func (m *mockQuerier) Firmware(context.Context) (FirmwareInfo, error) {
	return m.firmware, m.firmwareErr
}

func (m *mockQuerier) SystemDrive(_ context.Context, letter string) (DriveInfo, error) {
	m.driveLetterSeen = letter
	return m.drive, m.driveErr
}

func fixedQuerier() *mockQuerier {
	boot := time.Now().Add(-90 * time.Minute).Truncate(time.Second)
	return &mockQuerier{
		machine: MachineInfo{
			Name:                  "WS042",
			Domain:                "corp.example.com",
			Manufacturer:          "LENOVO",
			Model:                 "21F7S0A500",
			TotalPhysicalMemory:   34359738368,
			ProcessorCount:        1,
			LogicalProcessorCount: 16,
		},
		os: OSInfo{
			Name:         "Microsoft Windows 11 Pro",
			Version:      "10.0.22631",
			Architecture: "64-bit",
			SystemDrive:  "C:",
			InstallDate:  time.Date(2023, 6, 12, 8, 30, 0, 0, time.UTC),
			LastBootTime: boot,
		},
		firmware: FirmwareInfo{Version: "R2AET45W", SerialNumber: "PF3XQK1T"},
		drive:    DriveInfo{Letter: "C:", Size: 1024094994432, FreeSpace: 512047497216},
	}
}

func TestCollectMergesReport(t *testing.T) {
	q := fixedQuerier()

	rep, err := Collect(context.Background(), q, UnitDefault)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	if rep.ComputerName != "WS042" {
		t.Errorf("ComputerName = %q", rep.ComputerName)
	}
	if rep.FQDN != "WS042.corp.example.com" {
		t.Errorf("FQDN = %q, want name.domain", rep.FQDN)
	}
	if rep.Manufacturer != "LENOVO" || rep.Model != "21F7S0A500" {
		t.Errorf("machine fields = %q/%q", rep.Manufacturer, rep.Model)
	}
	if rep.RAM != 34359738368 {
		t.Errorf("RAM = %d, want raw bytes under default unit", rep.RAM)
	}
	if rep.SystemDiskLetter != "C:" {
		t.Errorf("SystemDiskLetter = %q", rep.SystemDiskLetter)
	}
	if rep.SystemDiskSize != 1024094994432 || rep.SystemDiskFreeSpace != 512047497216 {
		t.Errorf("disk sizes = %d/%d", rep.SystemDiskSize, rep.SystemDiskFreeSpace)
	}
	if rep.ProcessorCount != 1 || rep.CoreCount != 16 {
		t.Errorf("cpu counts = %d/%d", rep.ProcessorCount, rep.CoreCount)
	}
	if rep.OSName != "Microsoft Windows 11 Pro" || rep.OSVersion != "10.0.22631" {
		t.Errorf("os fields = %q/%q", rep.OSName, rep.OSVersion)
	}
	if rep.OSArchitecture != "64-bit" {
		t.Errorf("OSArchitecture = %q", rep.OSArchitecture)
	}
	if !rep.OSInstallDate.Equal(q.os.InstallDate) {
		t.Errorf("OSInstallDate = %v", rep.OSInstallDate)
	}
	if !rep.LastBootTime.Equal(q.os.LastBootTime) {
		t.Errorf("LastBootTime = %v", rep.LastBootTime)
	}
	if rep.Uptime < 89*time.Minute || rep.Uptime > 91*time.Minute {
		t.Errorf("Uptime = %v, want about 90m", rep.Uptime)
	}
	if rep.BiosVersion != "R2AET45W" || rep.BiosSerialNumber != "PF3XQK1T" {
		t.Errorf("firmware fields = %q/%q", rep.BiosVersion, rep.BiosSerialNumber)
	}

	if q.driveLetterSeen != "C:" {
		t.Errorf("drive query got letter %q, want the OS system drive", q.driveLetterSeen)
	}
}

func TestCollectAppliesUnit(t *testing.T) {
	q := fixedQuerier()

	rep, err := Collect(context.Background(), q, UnitGB)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	if rep.RAM != 32 {
		t.Errorf("RAM = %d GB, want 32", rep.RAM)
	}
	if rep.SystemDiskSize != 953 {
		t.Errorf("SystemDiskSize = %d GB, want truncated 953", rep.SystemDiskSize)
	}
	if rep.SystemDiskFreeSpace != 476 {
		t.Errorf("SystemDiskFreeSpace = %d GB, want truncated 476", rep.SystemDiskFreeSpace)
	}
}

func TestCollectAbortsOnQueryFailure(t *testing.T) {
	cause := errors.New("RPC server is unavailable")

	tests := []struct {
		name string
		set  func(*mockQuerier)
		wrap string
	}{
		{"machine", func(q *mockQuerier) { q.machineErr = cause }, "machine query"},
		{"os", func(q *mockQuerier) { q.osErr = cause }, "operating system query"},
		{"firmware", func(q *mockQuerier) { q.firmwareErr = cause }, "firmware query"},
		{"drive", func(q *mockQuerier) { q.driveErr = cause }, "system drive query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := fixedQuerier()
			tt.set(q)

			rep, err := Collect(context.Background(), q, UnitDefault)
			if rep != nil {
				t.Error("got partial report, want none")
			}
			if !errors.Is(err, cause) {
				t.Fatalf("underlying error not preserved: %v", err)
			}
			if !strings.Contains(err.Error(), tt.wrap) {
				t.Errorf("error %q missing query name %q", err, tt.wrap)
			}
			if !strings.Contains(err.Error(), cause.Error()) {
				t.Errorf("underlying message not verbatim in %q", err)
			}
		})
	}
}
