package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var openOutput string

var openCmd = &cobra.Command{
	Use:   "open [file]",
	Short: "Render a file with its handler",
	Long: `Render a file with the handler registered for its MIME type and write the
resulting HTML view to stdout, or to a file with --output. The open is
recorded in history. Files no handler claims are reported as download only.`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func init() {
	openCmd.Flags().StringVarP(&openOutput, "output", "o", "", "write the view to a file")
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	viewer, err := requireViewer()
	if err != nil {
		return err
	}

	res, err := viewer.Open(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("open failed: %w", err)
	}

	if !res.Matched() {
		cmd.PrintErrf("No handler for %s; %s only.\n", res.File.MIMEType, res.Fallback)
		return nil
	}

	if openOutput == "" {
		cmd.Print(string(res.View.Body))
		return nil
	}

	if err := os.WriteFile(openOutput, res.View.Body, 0600); err != nil {
		return fmt.Errorf("writing view: %w", err)
	}
	cmd.Printf("Rendered %s with %s to %s\n", res.File.Name, res.Handler.ID, openOutput)
	return nil
}
