package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/mimeview/internal/core/domain"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Detect a file's MIME type and show its handler",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	viewer, err := requireViewer()
	if err != nil {
		return err
	}

	res, err := viewer.Inspect(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("inspect failed: %w", err)
	}

	printResolution(cmd, res)
	return nil
}

func printResolution(cmd *cobra.Command, res *domain.Resolution) {
	cmd.Printf("Path:     %s\n", res.File.Path)
	cmd.Printf("Type:     %s\n", res.File.MIMEType)
	cmd.Printf("Size:     %d bytes\n", res.File.Size)
	if res.Matched() {
		cmd.Printf("Handler:  %s\n", res.Handler.ID)
		return
	}
	cmd.Printf("Handler:  none (%s only)\n", res.Fallback)
}
