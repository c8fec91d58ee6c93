package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/linkbanner/pkg/pipeline"
	"github.com/matzehuels/linkbanner/pkg/render/banner/sink"
	"github.com/matzehuels/linkbanner/pkg/render/banner/styles"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// pickModel - Interactive style selection with live preview
// =============================================================================

// previewFunc renders id and returns the encoded image.
type previewFunc func(id styles.ID) ([]byte, error)

// writeFunc stores a preview image and returns where it was written.
type writeFunc func(data []byte) (string, error)

// previewMsg reports a finished preview render. seq ties it to the
// selection that requested it; renders finish out of order, so only the
// message of the current selection is written.
type previewMsg struct {
	seq     int
	id      styles.ID
	data    []byte
	elapsed time.Duration
	err     error
}

// pickModel is the bubbletea model for the style picker. Every selection
// change re-renders the banner in the chosen style.
type pickModel struct {
	styles   []styles.Style
	preview  previewFunc
	write    writeFunc
	cursor   int
	seq      int
	status   string
	err      error
	selected *styles.ID
}

func newPickModel(all []styles.Style, start styles.ID, preview previewFunc, write writeFunc) pickModel {
	m := pickModel{styles: all, preview: preview, write: write}
	for i, s := range all {
		if s.ID == start {
			m.cursor = i
		}
	}
	return m
}

func (m pickModel) Init() tea.Cmd {
	return m.render()
}

func (m pickModel) render() tea.Cmd {
	seq, id, preview := m.seq, m.styles[m.cursor].ID, m.preview
	return func() tea.Msg {
		start := time.Now()
		data, err := preview(id)
		return previewMsg{seq: seq, id: id, data: data, elapsed: time.Since(start), err: err}
	}
}

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.seq++
				return m, m.render()
			}
		case "down", "j":
			if m.cursor < len(m.styles)-1 {
				m.cursor++
				m.seq++
				return m, m.render()
			}
		case "enter":
			id := m.styles[m.cursor].ID
			m.selected = &id
			return m, tea.Quit
		}
	case previewMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		path, err := "", msg.err
		if err == nil {
			path, err = m.write(msg.data)
		}
		m.err = err
		if err == nil {
			m.status = fmt.Sprintf("%s %s (%s, %s)", iconArrow, path, msg.id, msg.elapsed.Round(time.Millisecond))
		}
	}
	return m, nil
}

func (m pickModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Style"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ preview  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, s := range m.styles {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-10s", cursor, s.ID)
		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("  " + listDimStyle.Render(s.Description) + "\n")
	}

	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(styleIconError.Render(iconError) + " " + m.err.Error())
	case m.status != "":
		b.WriteString(listDimStyle.Render(m.status))
	default:
		b.WriteString(listDimStyle.Render("rendering..."))
	}
	b.WriteString("\n")
	return b.String()
}

// =============================================================================
// Command
// =============================================================================

// pickCommand creates the interactive style picker.
func (c *CLI) pickCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick a style interactively, re-rendering the preview on every change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}
			return c.runPick(cmd.Context(), opts, flags.output)
		},
	}
	flags.register(cmd)
	return cmd
}

func (c *CLI) runPick(ctx context.Context, opts pipeline.Options, output string) error {
	opts.Formats = []string{sink.FormatPNG}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	paths, err := outputPaths(output, opts.Formats)
	if err != nil {
		return err
	}
	path := paths[sink.FormatPNG]

	runner, err := c.newRunner(opts.NoCache)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer runner.Close()
	// Log lines would tear the TUI.
	runner.Logger = newLogger(io.Discard, LogInfo)
	opts.Logger = runner.Logger

	preview := func(id styles.ID) ([]byte, error) {
		o := opts
		o.Style = string(id)
		res, err := runner.Execute(ctx, o)
		if err != nil {
			return nil, err
		}
		return res.Artifacts[sink.FormatPNG], nil
	}
	write := func(data []byte) (string, error) {
		return path, writeFile(path, data)
	}

	model := newPickModel(styles.All(), styles.ID(opts.Style), preview, write)
	final, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	m := final.(pickModel)
	if m.selected == nil {
		printInfo("No style selected")
		return nil
	}
	printSuccess("Selected %s", StyleHighlight.Render(string(*m.selected)))
	printFile(path)
	printNextStep("Render again", fmt.Sprintf("%s render --style %s", appName, *m.selected))
	return nil
}
