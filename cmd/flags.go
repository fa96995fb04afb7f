package cmd

import (
	"github.com/marcus/sitestamp/internal/workdir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// addOutputFlags registers the flags that locate the record file.
func addOutputFlags(fs *pflag.FlagSet) {
	fs.StringP("output", "o", "", "Output file (default $SITESTAMP_OUTPUT or ../data/auto.json)")
	fs.StringP("work-dir", "w", "", "Base directory for relative output paths (default: current directory)")
}

// resolvePath resolves path against --work-dir. An empty path falls back to
// --output, then to the configured output.
func resolvePath(cmd *cobra.Command, path string) (string, error) {
	if path == "" {
		path, _ = cmd.Flags().GetString("output")
	}
	if path == "" {
		path = cfg.OutputPath
	}

	dir, _ := cmd.Flags().GetString("work-dir")
	base, err := workdir.BaseDir(dir)
	if err != nil {
		return "", err
	}
	return workdir.ResolveOutput(base, path), nil
}
