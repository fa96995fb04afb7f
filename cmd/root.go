package cmd

import (
	"os"

	"github.com/marcus/sitestamp/internal/clock"
	"github.com/marcus/sitestamp/internal/config"
	"github.com/marcus/sitestamp/internal/output"
	"github.com/spf13/cobra"
)

var (
	version string
	cfg     config.Config
	clk     clock.Clock = clock.System{}
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sitestamp",
		Short: "Write the current build timestamp as site data",
		Long: `sitestamp - Writes the current local time to a JSON data file for the static site build.

Run from the site's scripts directory with no arguments, it replaces ../data/auto.json with:

{
    "updated": "YYYY-MM-DD HH:MM:SS"
}`,
		Args:              cobra.NoArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE:              runEmit,
	}

	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress success messages")
	addOutputFlags(root.Flags())
	root.Flags().Bool("stdout", false, "Print the record instead of writing it")

	root.AddCommand(newVerifyCmd(), newVersionCmd())
	return root
}

// setup loads configuration and installs the logger before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	cfg = config.Load()
	output.SetWriter(cmd.OutOrStdout())
	installLogger(cfg, cmd.ErrOrStderr())
	return nil
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		output.Error("%v", err)
		os.Exit(1)
	}
}

func quiet(cmd *cobra.Command) bool {
	q, _ := cmd.Flags().GetBool("quiet")
	return q
}
