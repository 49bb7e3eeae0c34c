package sysinfo

import "testing"

func TestUnitApply(t *testing.T) {
	const raw = uint64(137438953472) // 128 GiB

	tests := []struct {
		unit Unit
		in   uint64
		want uint64
	}{
		{UnitDefault, raw, raw},
		{UnitKB, raw, raw / 1024},
		{UnitMB, raw, raw / (1024 * 1024)},
		{UnitGB, raw, 128},
		// Truncation, not rounding.
		{UnitGB, 1024*1024*1024 + 1024*1024*1023, 1},
		{UnitKB, 2047, 1},
		{UnitKB, 1023, 0},
		{UnitDefault, 0, 0},
	}

	for _, tt := range tests {
		if got := tt.unit.Apply(tt.in); got != tt.want {
			t.Errorf("%s.Apply(%d) = %d, want %d", tt.unit, tt.in, got, tt.want)
		}
	}
}

func TestParseUnit(t *testing.T) {
	valid := map[string]Unit{
		"":        UnitDefault,
		"default": UnitDefault,
		"Default": UnitDefault,
		"kb":      UnitKB,
		"KB":      UnitKB,
		"mb":      UnitMB,
		"GB":      UnitGB,
		"gb":      UnitGB,
	}
	for in, want := range valid {
		got, err := ParseUnit(in)
		if err != nil {
			t.Errorf("ParseUnit(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseUnit(%q) = %q, want %q", in, got, want)
		}
	}

	for _, in := range []string{"TB", "bytes", "gigabytes"} {
		if _, err := ParseUnit(in); err == nil {
			t.Errorf("ParseUnit(%q) should fail", in)
		}
	}
}
