package cmd

import (
	"bytes"
	"fmt"

	"github.com/marcus/sitestamp/internal/output"
	"github.com/marcus/sitestamp/internal/stamp"
	"github.com/spf13/cobra"
)

func newVerifyCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "verify [file]",
		Short: "Check that a timestamp file is valid and canonically formatted",
		Long: `Reads a timestamp file (default: the configured output) and checks that it holds
exactly one "updated" key in YYYY-MM-DD HH:MM:SS form, written with sorted keys
and 4-space indentation.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runVerify,
	}
	addOutputFlags(c.Flags())
	c.Flags().Bool("json", false, "Print the verified record as JSON")
	return c
}

func runVerify(cmd *cobra.Command, args []string) error {
	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	path, err := resolvePath(cmd, arg)
	if err != nil {
		return err
	}

	r, data, err := stamp.Read(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	canon, err := stamp.Canonical(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if !bytes.Equal(canon, data) {
		return fmt.Errorf("%s: %w: not written with sorted keys and 4-space indentation", path, stamp.ErrInvalidRecord)
	}

	updated, err := r.Time()
	if err != nil {
		return err
	}

	jsonOut, _ := cmd.Flags().GetBool("json")
	if jsonOut {
		return output.JSON(map[string]string{
			"path":    path,
			"updated": r.Updated,
			"age":     output.FormatTimeAgo(updated),
		})
	}

	if !quiet(cmd) {
		output.Success("%s is valid", path)
		output.Info("  updated %s %s", r.Updated, output.Subtle("("+output.FormatTimeAgo(updated)+")"))
	}
	return nil
}
