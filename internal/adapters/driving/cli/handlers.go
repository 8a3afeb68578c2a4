package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/mimeview/internal/core/domain"
)

var handlersJSON bool

var handlersCmd = &cobra.Command{
	Use:   "handlers",
	Short: "List registered handlers in resolution order",
	RunE:  runHandlers,
}

func init() {
	handlersCmd.Flags().BoolVar(&handlersJSON, "json", false, "output handlers as JSON")
	rootCmd.AddCommand(handlersCmd)
}

// handlerJSON is the JSON form of a handler.
type handlerJSON struct {
	ID        string            `json:"id"`
	Group     string            `json:"group,omitempty"`
	MIMETypes []string          `json:"mime_types"`
	Aliases   map[string]string `json:"aliases,omitempty"`
}

func runHandlers(cmd *cobra.Command, _ []string) error {
	viewer, err := requireViewer()
	if err != nil {
		return err
	}

	handlers := viewer.Handlers()
	if handlersJSON {
		return outputHandlersJSON(cmd, handlers)
	}
	outputHandlersTable(cmd, handlers)
	return nil
}

func outputHandlersJSON(cmd *cobra.Command, handlers []domain.HandlerDescriptor) error {
	out := make([]handlerJSON, len(handlers))
	for i := range handlers {
		out[i] = handlerJSON{
			ID:        handlers[i].ID,
			Group:     handlers[i].Group,
			MIMETypes: handlers[i].MIMETypes,
			Aliases:   handlers[i].Aliases,
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal handlers: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputHandlersTable(cmd *cobra.Command, handlers []domain.HandlerDescriptor) {
	if len(handlers) == 0 {
		cmd.Println("No handlers registered.")
		return
	}

	id, muted := lipgloss.NewStyle(), lipgloss.NewStyle()
	if isTerminal(cmd.OutOrStdout()) {
		id = id.Bold(true).Foreground(lipgloss.Color("#7C3AED"))
		muted = muted.Foreground(lipgloss.Color("#6C7086"))
	}

	for i := range handlers {
		h := &handlers[i]
		cmd.Printf("%2d. %s", i+1, id.Render(h.ID))
		if h.Group != "" {
			cmd.Printf(" %s", muted.Render("["+h.Group+"]"))
		}
		cmd.Println()
		cmd.Printf("    %s\n", strings.Join(h.MIMETypes, ", "))
		for alias, canonical := range h.Aliases {
			cmd.Printf("    %s\n", muted.Render(alias+" -> "+canonical))
		}
	}
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
