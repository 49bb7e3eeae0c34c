//go:build windows

package main

import "github.com/vojtech-kasny/IT-NETWORK/sysinfo"

// newQuerier targets the local machine when host is empty, a remote
// host over WMI otherwise.
func newQuerier(host, username, password string) (sysinfo.Querier, error) {
	return &sysinfo.WMIQuerier{
		Host:     host,
		Username: username,
		Password: password,
	}, nil
}
