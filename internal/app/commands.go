package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pravsels/deepwork/internal/config"
	"github.com/pravsels/deepwork/internal/domain"
	"github.com/pravsels/deepwork/internal/duration"
	"github.com/pravsels/deepwork/internal/hosts"
	"github.com/pravsels/deepwork/internal/logger"
	"github.com/pravsels/deepwork/internal/platform"
	"github.com/pravsels/deepwork/internal/session"
)

func NewBlockCommand() *cobra.Command {
	var opts commonOpts
	var timeStr string

	cmd := &cobra.Command{
		Use:   "block [domain...]",
		Short: "Block domains for a duration, then restore the hosts file",
		Long: "Rewrites the hosts file so the given domains resolve to the loopback\n" +
			"address, waits out the duration (or Ctrl-C), then removes the block.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.setup()
			if err != nil {
				return err
			}
			defer log.Sync()

			d, err := duration.Parse(timeStr)
			if err != nil {
				return err
			}

			domains, err := opts.resolveDomains(cfg, log, args)
			if err != nil {
				return err
			}

			editor := hosts.NewEditor(cfg.HostsPath, cfg.Loopback, cfg.Marker,
				hosts.FlusherFunc(platform.FlushDNS), log)
			sess := session.New(domains, d, editor, platform.IsElevated, log)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return sess.Run(ctx)
		},
	}

	opts.bind(cmd)
	cmd.Flags().StringVarP(&timeStr, "time", "t", "30s",
		"block duration (e.g. 10s, 45m, 2h, 1d; bare number = minutes)")
	return cmd
}

func NewUnblockCommand() *cobra.Command {
	var opts commonOpts

	cmd := &cobra.Command{
		Use:   "unblock [domain...]",
		Short: "Remove a leftover block from the hosts file",
		Long: "One-shot cleanup for a managed block left behind by a killed or\n" +
			"crashed earlier run.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.setup()
			if err != nil {
				return err
			}
			defer log.Sync()

			domains, err := opts.resolveDomains(cfg, log, args)
			if err != nil {
				return err
			}

			if !platform.IsElevated() {
				return session.ErrPermissionDenied
			}

			editor := hosts.NewEditor(cfg.HostsPath, cfg.Loopback, cfg.Marker,
				hosts.FlusherFunc(platform.FlushDNS), log)
			if err := editor.Remove(cmd.Context(), domains); err != nil {
				return err
			}
			log.Infof("removed block for %d domains", len(domains))
			return nil
		},
	}

	opts.bind(cmd)
	return cmd
}

// commonOpts are the flags shared by the block and unblock commands.
type commonOpts struct {
	listFile string
	cfgPath  string
	verbose  bool
}

func (o *commonOpts) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.listFile, "file", "f", "",
		"file with domains to block, one per line")
	cmd.Flags().StringVar(&o.cfgPath, "config", "", "path to config file")
	cmd.Flags().BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")
}

func (o *commonOpts) setup() (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(o.cfgPath)
	if err != nil {
		return nil, nil, err
	}
	level := cfg.LogLevel
	if o.verbose {
		level = "debug"
	}
	return cfg, logger.New(level, cfg.PrettyLog), nil
}

// resolveDomains turns inline args, or failing that the domain-list
// file, into a normalized domain set.
func (o *commonOpts) resolveDomains(cfg *config.Config, log logger.Logger, args []string) ([]string, error) {
	raw := args
	if len(raw) == 0 {
		path := o.listFile
		if path == "" {
			path = cfg.DomainsFile
		}
		var err error
		raw, err = domain.ReadList(path)
		if err != nil {
			return nil, err
		}
	}

	domains := domain.NewNormalizer(log).Normalize(raw)
	if len(domains) == 0 {
		return nil, fmt.Errorf("no valid domains given")
	}
	return domains, nil
}
