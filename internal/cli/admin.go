package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-lab-access/internal/client"
)

func newAdminCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "admin",
		Short: "Open the admin review console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := o.clientConfig()
			if err != nil {
				return err
			}

			bridge, release, err := o.newBridge(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			return client.NewApp(cfg, bridge, o.buildInfo, o.logger).Run()
		},
	}
}

func newVersionCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := o.buildInfo
			if cfg, err := o.clientConfig(); err == nil {
				info = info.WithVersion(cfg.App.Version)
			}

			for _, line := range info.Lines() {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}
