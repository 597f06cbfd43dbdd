package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/ospurge/cmd/ospurge/handlers"
)

// Purge returns the purge command.
func Purge(g *globalFlags) *cobra.Command {
	if g == nil {
		g = &globalFlags{}
	}
	var opts handlers.PurgeOptions

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Purge all resources of a project and delete it",
		Long: `Purge deletes every resource owned by an OpenStack project.

Resources are deleted kind by kind in this order:
  - Servers
  - Volumes and volume snapshots
  - Images
  - Ports (router interfaces, gateways and floating IP bindings are removed first)
  - Networks and subnets
  - Routers (after their interfaces are detached)
  - Security groups
  - Floating IPs
  - Keypairs (only when authenticated to the purged project)
  - Heat stacks

Ports still in use after unwinding are skipped with a warning. Any other
error stops the purge. The project is deleted last unless --keep-project
is given.

Credentials come from clouds.yaml. The cloud entry is selected with
--cloud or the OS_CLOUD environment variable.

Example:
  ospurge purge --cloud admin --project demo
  ospurge purge -C admin -p demo --check

WARNING: This operation is irreversible.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.ConfigPath = g.configPath
			opts.Output = g.output
			opts.LogFormat = g.logFormat
			opts.Verbose = g.verbose
			return handlers.Purge(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Cloud, "cloud", "C", "", "clouds.yaml entry to authenticate with (default $OS_CLOUD)")
	cmd.Flags().StringVarP(&opts.Project, "project", "p", "", "Name or ID of the project to purge")
	cmd.Flags().BoolVar(&opts.KeepProject, "keep-project", false, "Delete the resources but keep the project")
	cmd.Flags().BoolVar(&opts.Check, "check", false, "Resolve the project and report without deleting anything")
	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "Do not ask for confirmation")
	cmd.Flags().StringVar(&opts.Pushgateway, "pushgateway", "", "Prometheus Pushgateway URL to push run metrics to")
	cmd.Flags().StringVar(&opts.ReportBucket, "report-bucket", "", "Upload the JSON report to s3://bucket/prefix")
	cmd.Flags().BoolVar(&opts.TUI, "tui", false, "Show an interactive progress view")

	return cmd
}
