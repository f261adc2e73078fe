package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// extremaCommand creates the extrema command (the summary pipeline).
func (c *CLI) extremaCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "extrema <program-file>",
		Short: "Report coordinate extrema as x_min/x_max/y_min/y_max",
		Long: `Report coordinate extrema as x_min/x_max/y_min/y_max.

The extrema cover the values after the Y-offset rule is applied, so the
report reflects the coordinates the machine will actually run. An axis with
no coordinates reports "-" instead of a number.

Example:
  cncutil extrema program.cnc
  40.000/60.000/3.000/15.000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExtrema(cmd.Context(), args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "-", `output file ("-" for stdout)`)

	return cmd
}

// runExtrema executes the extrema pipeline and prints the summary.
func (c *CLI) runExtrema(ctx context.Context, input, output string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	in, err := openInput(input)
	if err != nil {
		return err
	}
	defer in.Close()

	res, err := c.newRunner().Extrema(ctx, in, pipelineOptions(cfg))
	if err != nil {
		return err
	}

	out, err := openOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := fmt.Fprintln(out, res.Report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
