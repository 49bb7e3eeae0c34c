//go:build linux

package sysinfo

import (
	"bufio"
	"context"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/jaypipes/ghw"
	"github.com/siderolabs/go-smbios/smbios"
	"golang.org/x/sys/unix"
)

const osReleasePath = "/etc/os-release"

// LocalQuerier answers the four system queries for the local host using
// DMI/SMBIOS data and the root filesystem. It cannot target remote
// hosts; remote collection is a Windows/WMI capability.
type LocalQuerier struct{}

func (LocalQuerier) Machine(ctx context.Context) (MachineInfo, error) {
	if err := ctx.Err(); err != nil {
		return MachineInfo{}, err
	}

	product, err := ghw.Product()
	if err != nil {
		return MachineInfo{}, err
	}
	mem, err := ghw.Memory()
	if err != nil {
		return MachineInfo{}, err
	}
	cpu, err := ghw.CPU()
	if err != nil {
		return MachineInfo{}, err
	}

	var threads uint32
	for _, p := range cpu.Processors {
		threads += p.TotalHardwareThreads
	}

	host, _ := os.Hostname()
	name, domain := splitHost(host)

	return MachineInfo{
		Name:                  name,
		Domain:                domain,
		Manufacturer:          product.Vendor,
		Model:                 product.Name,
		TotalPhysicalMemory:   uint64(mem.TotalPhysicalBytes),
		ProcessorCount:        uint32(len(cpu.Processors)),
		LogicalProcessorCount: threads,
	}, nil
}

func (LocalQuerier) OperatingSystem(ctx context.Context) (OSInfo, error) {
	if err := ctx.Err(); err != nil {
		return OSInfo{}, err
	}

	info := OSInfo{
		Architecture: runtime.GOARCH,
		SystemDrive:  "/",
	}

	name, version, err := readOSRelease(osReleasePath)
	if err != nil {
		return OSInfo{}, err
	}
	info.Name = name
	info.Version = version

	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err != nil {
		return OSInfo{}, err
	}
	info.LastBootTime = time.Now().Add(-time.Duration(si.Uptime) * time.Second).Truncate(time.Second)

	// os-release carries no installation timestamp; the file's own
	// modification time is the closest stable stand-in.
	if st, err := os.Stat(osReleasePath); err == nil {
		info.InstallDate = st.ModTime()
	}

	return info, nil
}

func (LocalQuerier) Firmware(ctx context.Context) (FirmwareInfo, error) {
	if err := ctx.Err(); err != nil {
		return FirmwareInfo{}, err
	}

	sm, err := smbios.New()
	if err != nil {
		return FirmwareInfo{}, err
	}

	return FirmwareInfo{
		Version:      sm.BIOSInformation.Version,
		SerialNumber: sm.SystemInformation.SerialNumber,
	}, nil
}

func (LocalQuerier) SystemDrive(ctx context.Context, letter string) (DriveInfo, error) {
	if err := ctx.Err(); err != nil {
		return DriveInfo{}, err
	}
	if letter == "" {
		letter = "/"
	}

	var st unix.Statfs_t
	if err := unix.Statfs(letter, &st); err != nil {
		return DriveInfo{}, err
	}

	bsize := uint64(st.Bsize)
	return DriveInfo{
		Letter:    letter,
		Size:      st.Blocks * bsize,
		FreeSpace: st.Bavail * bsize,
	}, nil
}

// splitHost separates a possibly fully qualified host name into name and
// domain.
func splitHost(host string) (name, domain string) {
	if i := strings.IndexByte(host, '.'); i > 0 {
		return host[:i], host[i+1:]
	}
	return host, ""
}

// readOSRelease extracts PRETTY_NAME and VERSION_ID from an os-release
// style file.
func readOSRelease(path string) (name, version string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		val = strings.Trim(val, `"`)
		switch key {
		case "PRETTY_NAME":
			name = val
		case "VERSION_ID":
			version = val
		}
	}
	return name, version, sc.Err()
}
