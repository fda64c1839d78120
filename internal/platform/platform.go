package platform

import (
	"os"
	"os/exec"
	"runtime"
)

// HostsPath returns the location of the system hosts file.
func HostsPath() string {
	if runtime.GOOS == "windows" {
		return `C:\Windows\System32\drivers\etc\hosts`
	}
	return "/etc/hosts"
}

// IsElevated reports whether the process has enough privilege to edit
// the hosts file. On Windows "net session" only succeeds in an
// elevated shell; elsewhere root is required.
func IsElevated() bool {
	if runtime.GOOS == "windows" {
		return exec.Command("net", "session").Run() == nil
	}
	return os.Geteuid() == 0
}
