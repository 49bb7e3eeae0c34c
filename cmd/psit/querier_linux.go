//go:build linux

package main

import (
	"fmt"

	"github.com/vojtech-kasny/IT-NETWORK/sysinfo"
)

// newQuerier supports local collection only; remote queries need a
// Windows host with WMI connectivity.
func newQuerier(host, username, password string) (sysinfo.Querier, error) {
	if host != "" {
		return nil, fmt.Errorf("remote collection for %q is only available on Windows", host)
	}
	return sysinfo.LocalQuerier{}, nil
}
