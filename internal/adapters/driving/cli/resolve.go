package cli

import (
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [mime-type]",
	Short: "Print the handler for a MIME type",
	Long: `Resolve a MIME type against the handler registry and print the ID of the
handler that would render it. Parameters such as "; charset=utf-8" are ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	viewer, err := requireViewer()
	if err != nil {
		return err
	}

	d, ok := viewer.Resolve(args[0])
	if !ok {
		cmd.Println("no handler (download only)")
		return nil
	}
	cmd.Println(d.ID)
	return nil
}
