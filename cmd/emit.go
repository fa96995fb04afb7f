package cmd

import (
	"log/slog"

	"github.com/marcus/sitestamp/internal/output"
	"github.com/marcus/sitestamp/internal/stamp"
	"github.com/spf13/cobra"
)

func runEmit(cmd *cobra.Command, args []string) error {
	toStdout, _ := cmd.Flags().GetBool("stdout")
	if toStdout {
		data, err := stamp.Encode(stamp.New(clk.Now()))
		if err != nil {
			return err
		}
		output.Raw(data)
		return nil
	}

	path, err := resolvePath(cmd, "")
	if err != nil {
		return err
	}

	r, err := stamp.Emit(path, clk)
	if err != nil {
		slog.Debug("emit failed", "path", path, "err", err)
		return err
	}

	if !quiet(cmd) {
		output.Success("Wrote %s (updated %s)", path, r.Updated)
	}
	return nil
}
