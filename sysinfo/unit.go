package sysinfo

import (
	"fmt"
	"strings"
)

// Unit selects how byte-derived report fields are scaled.
type Unit string

const (
	UnitDefault Unit = "default"
	UnitKB      Unit = "KB"
	UnitMB      Unit = "MB"
	UnitGB      Unit = "GB"
)

// ParseUnit converts a string to a Unit. Matching is case-insensitive;
// anything outside the fixed set is an error.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(s) {
	case "", "default":
		return UnitDefault, nil
	case "kb":
		return UnitKB, nil
	case "mb":
		return UnitMB, nil
	case "gb":
		return UnitGB, nil
	}
	return "", fmt.Errorf("unknown unit %q (expected default, KB, MB or GB)", s)
}

// Apply scales a raw byte count to the unit, truncating to an integer.
// UnitDefault returns the raw count unmodified.
func (u Unit) Apply(bytes uint64) uint64 {
	switch u {
	case UnitKB:
		return bytes / 1024
	case UnitMB:
		return bytes / (1024 * 1024)
	case UnitGB:
		return bytes / (1024 * 1024 * 1024)
	}
	return bytes
}
