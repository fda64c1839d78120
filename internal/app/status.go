package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pravsels/deepwork/internal/config"
	"github.com/pravsels/deepwork/internal/hosts"
	"github.com/pravsels/deepwork/internal/logger"
	"github.com/pravsels/deepwork/internal/platform"
	"github.com/pravsels/deepwork/internal/system"
)

func NewStatusCommand() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether a block is currently active",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			editor := hosts.NewEditor(cfg.HostsPath, cfg.Loopback, cfg.Marker,
				hosts.FlusherFunc(platform.FlushDNS), logger.Nop())

			active, domains, err := editor.Active()
			if err != nil {
				return err
			}

			fmt.Println("Deepwork Status")
			fmt.Println("===============")

			fmt.Printf("\nHosts file: %s\n", cfg.HostsPath)
			if active {
				fmt.Printf("Block: ACTIVE (%d domains)\n", len(domains))
				for _, d := range domains {
					fmt.Printf("  - %s\n", d)
				}
			} else {
				fmt.Println("Block: not active")
			}

			fmt.Println("\nSystem:")
			if info, err := system.HostInfo(); err == nil {
				fmt.Printf("  Hostname: %s\n", info.Hostname)
				fmt.Printf("  OS: %s (%s)\n", info.OS, info.Platform)
				fmt.Printf("  Uptime: %s\n", info.Uptime)
			}
			fmt.Printf("  Elevated: %t\n", platform.IsElevated())

			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "path to config file")
	return cmd
}
