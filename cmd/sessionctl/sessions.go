package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-ephemeral-sessions/internal/client"
)

func newPingCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Ask the session API whether it can reach its cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withClient(func(c client.Client) error {
				msg, err := c.Ping(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), msg)
				return nil
			})
		},
	}
}

func newStoreCmd(opts *rootOptions) *cobra.Command {
	var (
		meta      map[string]string
		keepAlive bool
	)

	cmd := &cobra.Command{
		Use:   "store <alias> <password>",
		Short: "Encrypt and store a session",
		Long: `Encrypts the password locally and stores it under alias.

The ephemeral secret is printed on success. Pass it with --secret to retrieve
the session from another sessionctl process. With --keep-alive the command
keeps refreshing the session until it is interrupted.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			alias, password := args[0], args[1]

			return opts.withClient(func(c client.Client) error {
				extra := make(map[string]any, len(meta))
				for k, v := range meta {
					extra[k] = v
				}

				ttl, err := c.Store(cmd.Context(), alias, password, extra)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Stored session for %s (ttl %s)\n", alias, ttl)
				fmt.Fprintf(out, "secret: %s\n", c.Secret())

				if !keepAlive {
					return nil
				}

				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()

				fmt.Fprintln(out, "Keeping the session alive, press Ctrl+C to stop")
				if err := c.KeepAlive(ctx, alias); err != nil {
					fmt.Fprintf(out, "Session for %s is gone, keep-alive stopped\n", alias)
					return fmt.Errorf("keep-alive: %w", err)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringToStringVar(&meta, "meta", nil, "extra session metadata (key=value,...)")
	cmd.Flags().BoolVar(&keepAlive, "keep-alive", false, "refresh the session until interrupted")

	return cmd
}

func newRetrieveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "retrieve <alias>",
		Short: "Fetch and decrypt a session (needs --secret)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(func(c client.Client) error {
				creds, err := c.Retrieve(cmd.Context(), args[0])
				if err != nil {
					return err
				}

				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(creds)
			})
		},
	}
}

func newStatusCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status <alias>",
		Short: "Show the remaining lifetime of a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(func(c client.Client) error {
				remaining, err := c.Status(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s remaining\n", args[0], remaining)
				return nil
			})
		},
	}
}

func newRefreshCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh <alias>",
		Short: "Reset the lifetime of a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(func(c client.Client) error {
				ttl, err := c.Refresh(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: refreshed, ttl %s\n", args[0], ttl)
				return nil
			})
		},
	}
}

func newDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <alias>",
		Short: "Remove a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(func(c client.Client) error {
				deleted, err := c.Delete(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if deleted {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: deleted\n", args[0])
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: no session\n", args[0])
				}
				return nil
			})
		},
	}
}

