package platform

import (
	"context"
	"os/exec"
	"runtime"
)

// FlushDNS asks the OS to drop its resolver cache so a hosts-file edit
// takes effect without waiting for cached answers to expire.
func FlushDNS(ctx context.Context) error {
	switch runtime.GOOS {
	case "windows":
		return run(ctx, "ipconfig", "/flushdns")
	case "darwin":
		if err := run(ctx, "dscacheutil", "-flushcache"); err != nil {
			return err
		}
		return run(ctx, "killall", "-HUP", "mDNSResponder")
	default:
		// Try systemd-resolved first, fall back to NetworkManager
		// on legacy systems.
		if err := run(ctx, "systemctl", "restart", "systemd-resolved"); err == nil {
			return nil
		}
		return run(ctx, "service", "network-manager", "restart")
	}
}

func run(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}
