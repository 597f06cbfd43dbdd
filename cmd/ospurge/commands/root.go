// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	configPath string
	output     string
	logFormat  string
	verbose    bool
}

// Root returns the root command for the ospurge CLI.
func Root() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "ospurge",
		Short:         "Delete every resource of an OpenStack project",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "Path to configuration file (default ./ospurge.yaml if present)")
	cmd.PersistentFlags().StringVarP(&g.output, "output", "o", "", "Report format: text, json or yaml")
	cmd.PersistentFlags().StringVar(&g.logFormat, "log-format", "", "Log format: text or json")
	cmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Log every resource as it is processed")

	cmd.AddCommand(Purge(g))
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
