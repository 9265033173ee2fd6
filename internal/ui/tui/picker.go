// Package tui provides a bubbletea list picker used for the interactive menus.
package tui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth  = 60
	defaultHeight = 20
)

type option struct {
	index int
	title string
}

func (o option) Title() string       { return o.title }
func (o option) Description() string { return "" }
func (o option) FilterValue() string { return o.title }

// picker is the model behind ListSelector. chosen stays -1 until enter is
// pressed; cancelled is set by q, esc or ctrl+c.
type picker struct {
	theme     Theme
	subtitle  string
	list      list.Model
	chosen    int
	cancelled bool
	failure   string
}

func newPicker(title, subtitle string, options []string) picker {
	items := make([]list.Item, 0, len(options))
	for i, o := range options {
		items = append(items, option{index: i, title: o})
	}

	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)

	t := DefaultTheme()
	l := list.New(items, d, defaultWidth, defaultHeight)
	l.Title = title
	l.Styles.Title = t.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return picker{theme: t, subtitle: subtitle, list: l, chosen: -1}
}

func (m picker) Init() tea.Cmd { return nil }

func (m picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			it, ok := m.list.SelectedItem().(option)
			if !ok {
				return m, nil
			}
			m.chosen = it.index
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m picker) View() string {
	if m.chosen >= 0 || m.cancelled {
		return ""
	}
	body := m.list.View()
	if m.subtitle != "" {
		body = m.theme.Subtitle.Render(m.subtitle) + "\n\n" + body
	}
	body += "\n" + m.theme.Help.Render("↑/↓ move • / filter • enter select • q quit")
	return m.theme.Frame.Render(body)
}

// ListSelector shows options in a full-screen list and returns the picked
// index. Cancelling returns io.EOF so callers treat it as end of session.
type ListSelector struct {
	in       io.Reader
	out      io.Writer
	subtitle string
	log      *slog.Logger
	opts     []tea.ProgramOption
}

type SelectorOption func(*ListSelector)

func WithLogger(l *slog.Logger) SelectorOption {
	return func(s *ListSelector) {
		if l != nil {
			s.log = l
		}
	}
}

// WithSubtitle renders a faint line above the list, e.g. the workspace root.
func WithSubtitle(subtitle string) SelectorOption {
	return func(s *ListSelector) { s.subtitle = subtitle }
}

func WithProgramOptions(opts ...tea.ProgramOption) SelectorOption {
	return func(s *ListSelector) { s.opts = append(s.opts, opts...) }
}

func NewListSelector(in io.Reader, out io.Writer, opts ...SelectorOption) *ListSelector {
	s := &ListSelector{
		in:  in,
		out: out,
		log: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ListSelector) Select(title string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("select %q: no options", title)
	}

	programOpts := append([]tea.ProgramOption{tea.WithInput(s.in), tea.WithOutput(s.out)}, s.opts...)
	p := tea.NewProgram(wrapSafe(newPicker(title, s.subtitle, options), s.log), programOpts...)

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return 0, io.EOF
		}
		return 0, err
	}
	return outcome(final)
}

func outcome(final tea.Model) (int, error) {
	sm, ok := final.(safeModel)
	if !ok {
		return 0, fmt.Errorf("unexpected model %T", final)
	}
	if sm.m.failure != "" {
		return 0, errors.New(sm.m.failure)
	}
	if sm.m.cancelled || sm.m.chosen < 0 {
		return 0, io.EOF
	}
	return sm.m.chosen, nil
}
