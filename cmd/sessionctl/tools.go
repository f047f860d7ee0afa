package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-ephemeral-sessions/internal/client"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/config"
)

func newGenerateSecretCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "generate-secret",
		Short: "Print a new key mask secret for APP_KEY_MASK_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret, err := client.GenerateKeyMaskSecret(opts.deps.random)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), secret)
			return nil
		},
	}
}

type testConnectionOptions struct {
	host      string
	port      int
	password  string
	tls       bool
	namespace string
}

func newTestConnectionCmd(opts *rootOptions) *cobra.Command {
	tc := &testConnectionOptions{}

	cmd := &cobra.Command{
		Use:   "test-connection",
		Short: "Check the session cache directly with PING and a SET/GET/DEL probe",
		Long: `Connects to the session cache without going through the session API.

Settings come from STORAGE_REDIS_* and can be overridden with flags. The probe
key is "<namespace>:test:<unix time>" and expires after 60 seconds even if
the final DEL fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := opts.cfg.Redis
			flags := cmd.Flags()
			if flags.Changed("redis-host") {
				cfg.Host = tc.host
			}
			if flags.Changed("redis-port") {
				cfg.Port = tc.port
			}
			if flags.Changed("redis-password") {
				cfg.Password = tc.password
			}
			if flags.Changed("redis-tls") {
				cfg.UseTLS = tc.tls
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Connecting to %s:%d (tls=%t)\n", cfg.Host, cfg.Port, cfg.UseTLS)

			report, err := client.ProbeStore(cmd.Context(), cfg, tc.namespace, opts.deps.now(), opts.log)
			printProbeStep(out, "PING", report.Ping)
			if report.Ping {
				printProbeStep(out, "SET "+report.Key, report.Set)
			}
			if report.Set {
				printProbeStep(out, "GET "+report.Key, report.Get)
			}
			if report.Get {
				printProbeStep(out, "DEL "+report.Key, report.Deleted)
			}
			if err != nil {
				return fmt.Errorf("connection test failed: %w", err)
			}

			fmt.Fprintln(out, "Connection test passed")
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&tc.host, "redis-host", "", "cache host")
	flags.IntVar(&tc.port, "redis-port", 0, "cache port")
	flags.StringVar(&tc.password, "redis-password", "", "cache password")
	flags.BoolVar(&tc.tls, "redis-tls", false, "use TLS")
	flags.StringVar(&tc.namespace, "namespace", config.DefaultKeyNamespace, "key namespace of the probe key")

	return cmd
}

func printProbeStep(out io.Writer, step string, ok bool) {
	result := "ok"
	if !ok {
		result = "FAILED"
	}
	fmt.Fprintf(out, "  %-40s %s\n", step, result)
}
