package main

import (
	"crypto/rand"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-ephemeral-sessions/internal/client"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/config"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/logger"
)

// deps are the seams the commands are built over.
type deps struct {
	loadConfig func() (*config.ClientConfig, error)
	newClient  func(cfg config.ClientConfig, log *logger.Logger) (client.Client, error)
	newLogger  func(verbose bool) *logger.Logger
	random     io.Reader
	now        func() time.Time
}

func defaultDeps() deps {
	return deps{
		loadConfig: config.GetClientConfig,
		newClient: func(cfg config.ClientConfig, log *logger.Logger) (client.Client, error) {
			return client.NewApp(cfg, log)
		},
		newLogger: func(verbose bool) *logger.Logger {
			log := logger.NewCLILogger("sessionctl")
			if verbose {
				_ = logger.SetLevel("debug")
			}
			return log
		},
		random: rand.Reader,
		now:    time.Now,
	}
}

// rootOptions holds the persistent flags and the state prepared by the root
// pre-run hook.
type rootOptions struct {
	deps deps

	httpAddress string
	grpcAddress string
	secret      string
	timeout     time.Duration
	verbose     bool

	cfg *config.ClientConfig
	log *logger.Logger
}

func newRootCmd(d deps) *cobra.Command {
	opts := &rootOptions{deps: d}

	cmd := &cobra.Command{
		Use:   "sessionctl",
		Short: "sessionctl - manage ephemeral webmail sessions",
		Long: `sessionctl talks to the ephemeral session service.

Session passwords are encrypted locally with a per-process secret before they
are sent. The secret is printed by "store" and has to be passed back with
--secret to read the session from another process.

Usage:
  sessionctl <command> [flags]

Run 'sessionctl help <command>' for more details on a specific command.
`,
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.prepare(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.httpAddress, "http", "", "session API HTTP address (overrides CLIENT_ADAPTER_HTTP_ADDRESS)")
	flags.StringVar(&opts.grpcAddress, "grpc", "", "session API gRPC address (overrides CLIENT_ADAPTER_GRPC_ADDRESS)")
	flags.StringVar(&opts.secret, "secret", "", "ephemeral secret printed by a previous store")
	flags.DurationVar(&opts.timeout, "timeout", 0, "request timeout (e.g. 5s)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newGenerateSecretCmd(opts),
		newTestConnectionCmd(opts),
		newPingCmd(opts),
		newStoreCmd(opts),
		newRetrieveCmd(opts),
		newStatusCmd(opts),
		newRefreshCmd(opts),
		newDeleteCmd(opts),
	)

	return cmd
}

func (o *rootOptions) prepare(cmd *cobra.Command) error {
	o.log = o.deps.newLogger(o.verbose)

	cfg, err := o.deps.loadConfig()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("http") {
		cfg.Adapter.HTTPAddress = o.httpAddress
	}
	if flags.Changed("grpc") {
		cfg.Adapter.GRPCAddress = o.grpcAddress
	}
	if flags.Changed("timeout") {
		cfg.Adapter.RequestTimeout = o.timeout
	}

	o.cfg = cfg
	return nil
}

// connect validates the adapter settings and opens a session API client
// seeded with --secret.
func (o *rootOptions) connect() (client.Client, error) {
	if err := o.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("client configuration: %w", err)
	}

	c, err := o.deps.newClient(*o.cfg, o.log)
	if err != nil {
		return nil, err
	}
	c.UseSecret(o.secret)

	o.log.Debug().
		Str("http", o.cfg.Adapter.HTTPAddress).
		Str("grpc", o.cfg.Adapter.GRPCAddress).
		Msg("session API client ready")
	return c, nil
}

// withClient runs fn with a connected client and closes it afterwards.
func (o *rootOptions) withClient(fn func(c client.Client) error) error {
	c, err := o.connect()
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			o.log.Debug().Err(err).Msg("close session API client")
		}
	}()

	return fn(c)
}
