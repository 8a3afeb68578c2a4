package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/mimeview/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/mimeview/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/mimeview/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/mimeview/internal/core/domain"
)

// chromeLines is the number of rows used by the header, status and help lines.
const chromeLines = 5

// App is the directory browser following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keys   *keymap.KeyMap
	help   help.Model

	dir           string
	entries       []messages.Entry
	cursor        int
	handlerCursor int
	currentView   messages.ViewType
	err           error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a browser rooted at dir. An empty dir means the working
// directory.
func NewApp(ports *Ports, dir string) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", dir, err)
	}

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      styles.DefaultStyles(),
		keys:        keymap.DefaultKeyMap(),
		help:        help.New(),
		dir:         abs,
		currentView: messages.ViewFiles,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("mimeview - "+a.dir),
		a.loadDir(a.dir),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case messages.DirLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.dir = msg.Dir
		a.entries = msg.Entries
		a.cursor = 0
		a.err = nil
		a.currentView = messages.ViewFiles
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()

	switch {
	case keymap.Matches(k, a.keys.Quit):
		return a, tea.Quit
	case keymap.Matches(k, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
		return a, nil
	case keymap.Matches(k, a.keys.Handlers):
		if a.currentView == messages.ViewHandlers {
			a.currentView = messages.ViewFiles
		} else {
			a.currentView = messages.ViewHandlers
			a.handlerCursor = 0
		}
		return a, nil
	}

	switch a.currentView {
	case messages.ViewFiles:
		return a.handleFilesKey(k)
	case messages.ViewHandlers:
		switch {
		case keymap.Matches(k, a.keys.Up):
			if a.handlerCursor > 0 {
				a.handlerCursor--
			}
		case keymap.Matches(k, a.keys.Down):
			if a.handlerCursor < len(a.ports.Viewer.Handlers())-1 {
				a.handlerCursor++
			}
		case keymap.Matches(k, a.keys.Back):
			a.currentView = messages.ViewFiles
		}
	case messages.ViewDetail:
		if keymap.Matches(k, a.keys.Back) {
			a.currentView = messages.ViewFiles
		}
	}
	return a, nil
}

func (a *App) handleFilesKey(k string) (tea.Model, tea.Cmd) {
	switch {
	case keymap.Matches(k, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case keymap.Matches(k, a.keys.Down):
		if a.cursor < len(a.entries)-1 {
			a.cursor++
		}
	case keymap.Matches(k, a.keys.Select):
		entry, ok := a.Selected()
		if !ok {
			return a, nil
		}
		if entry.IsDir {
			return a, a.loadDir(entry.Path)
		}
		a.currentView = messages.ViewDetail
	case keymap.Matches(k, a.keys.Back):
		parent := filepath.Dir(a.dir)
		if parent != a.dir {
			return a, a.loadDir(parent)
		}
	case keymap.Matches(k, a.keys.Refresh):
		return a, a.loadDir(a.dir)
	}
	return a, nil
}

// loadDir lists dir and inspects every regular file in it.
func (a *App) loadDir(dir string) tea.Cmd {
	ctx := a.ctx
	viewer := a.ports.Viewer

	return func() tea.Msg {
		items, err := os.ReadDir(dir)
		if err != nil {
			return messages.DirLoaded{Dir: dir, Err: err}
		}

		entries := make([]messages.Entry, 0, len(items))
		for _, item := range items {
			entry := messages.Entry{
				Name:  item.Name(),
				Path:  filepath.Join(dir, item.Name()),
				IsDir: item.IsDir(),
			}
			if !entry.IsDir {
				entry.Resolution, entry.Err = viewer.Inspect(ctx, entry.Path)
			}
			entries = append(entries, entry)
		}

		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].IsDir != entries[j].IsDir {
				return entries[i].IsDir
			}
			return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
		})

		return messages.DirLoaded{Dir: dir, Entries: entries}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("mimeview"))
	b.WriteString("  ")
	b.WriteString(a.styles.Muted.Render(a.dir))
	b.WriteString("\n\n")

	switch a.currentView {
	case messages.ViewDetail:
		b.WriteString(a.detailView())
	case messages.ViewHandlers:
		b.WriteString(a.handlersView())
	default:
		b.WriteString(a.filesView())
	}

	if a.err != nil {
		b.WriteString("\n")
		b.WriteString(a.styles.Error.Render("Error: " + a.err.Error()))
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render(a.help.View(a.keys)))
	return b.String()
}

func (a *App) filesView() string {
	if len(a.entries) == 0 {
		return a.styles.Muted.Render("(empty directory)") + "\n"
	}

	start, end := a.visibleRange(len(a.entries), a.cursor)

	var b strings.Builder
	for i := start; i < end; i++ {
		entry := a.entries[i]

		name := entry.Name
		if entry.IsDir {
			name = a.styles.Dir.Render(name + "/")
		}

		row := fmt.Sprintf("%-40s %s", name, a.entryStatus(entry))
		if i == a.cursor {
			row = a.styles.Selected.Render("> " + row)
		} else {
			row = "  " + row
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}

func (a *App) entryStatus(entry messages.Entry) string {
	switch {
	case entry.IsDir:
		return ""
	case entry.Err != nil:
		return a.styles.Error.Render("error")
	case entry.Resolution.Matched():
		return a.styles.Handler.Render(entry.Resolution.Handler.ID) +
			" " + a.styles.Muted.Render(entry.Resolution.File.MIMEType)
	case entry.Resolution != nil:
		return a.styles.Fallback.Render(string(domain.FallbackDownload)) +
			" " + a.styles.Muted.Render(entry.Resolution.File.MIMEType)
	default:
		return ""
	}
}

func (a *App) detailView() string {
	entry, ok := a.Selected()
	if !ok {
		return ""
	}

	lines := []string{
		a.styles.Title.Render(entry.Name),
		"Path:     " + entry.Path,
	}
	switch {
	case entry.Err != nil:
		lines = append(lines, a.styles.Error.Render("Error:    "+entry.Err.Error()))
	case entry.Resolution != nil:
		res := entry.Resolution
		lines = append(lines,
			"Type:     "+res.File.MIMEType,
			fmt.Sprintf("Size:     %d bytes", res.File.Size),
		)
		if res.Matched() {
			lines = append(lines,
				"Handler:  "+a.styles.Handler.Render(res.Handler.ID),
				"Group:    "+res.Handler.Group,
			)
		} else {
			lines = append(lines, "Handler:  "+a.styles.Fallback.Render("none, download only"))
		}
	}

	return a.styles.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)) + "\n"
}

func (a *App) handlersView() string {
	handlers := a.ports.Viewer.Handlers()
	if len(handlers) == 0 {
		return a.styles.Muted.Render("(no handlers registered)") + "\n"
	}

	start, end := a.visibleRange(len(handlers), a.handlerCursor)

	var b strings.Builder
	for i := start; i < end; i++ {
		h := handlers[i]
		row := fmt.Sprintf("%2d. %-20s %s", i+1, h.ID, a.styles.Muted.Render(strings.Join(h.MIMETypes, ", ")))
		if i == a.handlerCursor {
			row = a.styles.Selected.Render("> " + row)
		} else {
			row = "  " + row
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}

// visibleRange returns the window of rows that keeps cursor on screen.
func (a *App) visibleRange(total, cursor int) (start, end int) {
	rows := a.height - chromeLines
	if !a.ready || rows <= 0 || total <= rows {
		return 0, total
	}

	start = cursor - rows/2
	if start < 0 {
		start = 0
	}
	if start+rows > total {
		start = total - rows
	}
	return start, start + rows
}

// SetDimensions records the terminal size.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.help.Width = width
	a.ready = true
}

// Selected returns the entry under the cursor.
func (a *App) Selected() (messages.Entry, bool) {
	if a.cursor < 0 || a.cursor >= len(a.entries) {
		return messages.Entry{}, false
	}
	return a.entries[a.cursor], true
}

// CurrentView returns the active view.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Dir returns the directory being browsed.
func (a *App) Dir() string {
	return a.dir
}

// Entries returns the current listing.
func (a *App) Entries() []messages.Entry {
	return a.entries
}

// Cursor returns the selected row index.
func (a *App) Cursor() int {
	return a.cursor
}

// Err returns the last error.
func (a *App) Err() error {
	return a.err
}
