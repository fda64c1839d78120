package system

import (
	"time"

	"github.com/shirou/gopsutil/v3/host"
)

// Info is the slice of host state shown by the status command.
type Info struct {
	Hostname string
	OS       string
	Platform string
	Uptime   time.Duration
}

func HostInfo() (*Info, error) {
	hi, err := host.Info()
	if err != nil {
		return nil, err
	}
	return &Info{
		Hostname: hi.Hostname,
		OS:       hi.OS,
		Platform: hi.Platform,
		Uptime:   time.Duration(hi.Uptime) * time.Second,
	}, nil
}
