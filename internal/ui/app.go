package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/leonardomso/anchor/internal/filter"
	"github.com/leonardomso/anchor/internal/linkify"
	"github.com/leonardomso/anchor/internal/scanner"
)

// =============================================================================
// STATE MACHINE
// =============================================================================

type appState int

const (
	stateScanning   appState = iota // Finding files
	stateExtracting                 // Extracting matches from files
	stateResults                    // Showing results (list view)
)

// =============================================================================
// FILTER TYPES
// =============================================================================

type filterType int

const (
	filterAll    filterType = iota // Every match
	filterURLs                     // URLs only
	filterEmails                   // Emails only
	filterFiles                    // File paths only
)

const filterCount = 4

func (f filterType) String() string {
	switch f {
	case filterAll:
		return "All"
	case filterURLs:
		return "URLs"
	case filterEmails:
		return "Emails"
	case filterFiles:
		return "Files"
	default:
		return "Unknown"
	}
}

func (f filterType) Next() filterType {
	return (f + 1) % filterCount
}

// accepts reports whether a match of kind k passes the filter.
func (f filterType) accepts(k linkify.Kind) bool {
	switch f {
	case filterAll:
		return true
	case filterURLs:
		return k == linkify.KindURL
	case filterEmails:
		return k == linkify.KindEmail
	case filterFiles:
		return k == linkify.KindFile
	default:
		return false
	}
}

// =============================================================================
// MODEL
// =============================================================================

// Options configures the interactive browser.
type Options struct {
	Scan   scanner.ScanOptions
	Filter *filter.Filter
	Render *linkify.Options
	Strict bool
	Logger *zap.Logger
}

// Model is the main application model.
type Model struct {
	// State
	state    appState
	quitting bool
	err      error

	// Data
	files   []string
	items   []MatchItem
	counts  map[linkify.Kind]int
	unique  int
	ignored int

	// Filter
	filter filterType

	// Components
	spinner spinner.Model
	list    list.Model
	help    help.Model
	keys    KeyMap

	// UI state
	width    int
	height   int
	showHelp bool
	notice   string

	ctx    context.Context
	cancel context.CancelFunc
	opts   Options
}

// New creates and returns a new Model for opts.
func New(opts Options) Model {
	if opts.Scan.Root == "" {
		opts.Scan.Root = "."
	}
	if opts.Render == nil {
		opts.Render = &linkify.Options{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle()

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	delegate.Styles.SelectedTitle = SelectedStyle
	delegate.Styles.SelectedDesc = StatusStyle

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "Matches"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false) // We use our own help
	l.Styles.Title = TitleStyle

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:   stateScanning,
		spinner: s,
		list:    l,
		help:    help.New(),
		keys:    DefaultKeyMap(),
		filter:  filterAll,
		counts:  map[linkify.Kind]int{},
		ctx:     ctx,
		cancel:  cancel,
		opts:    opts,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, ScanFilesCmd(m.opts.Scan))
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages and returns the updated model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Reserve space for header, summary, and detail panel
		listHeight := max(msg.Height-16, 5)
		m.list.SetSize(msg.Width, listHeight)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case FilesFoundMsg:
		return m.handleFilesFound(msg)

	case LinksExtractedMsg:
		return m.handleLinksExtracted(msg)

	case CopiedMsg:
		if msg.Err != nil {
			m.notice = ErrorStyle.Render("Copy failed: " + msg.Err.Error())
		} else {
			m.notice = SuccessStyle.Render("Copied " + msg.Text)
		}
		return m, nil
	}

	// Pass other messages to list if in results state
	if m.state == stateResults {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys that work in any state
	if key.Matches(msg, m.keys.Quit) {
		m.cancel()
		m.quitting = true
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.Help) {
		m.showHelp = !m.showHelp
		return m, nil
	}

	if m.state != stateResults {
		return m, nil
	}

	// Keys typed into the list's own filter prompt belong to the list.
	if m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(msg, m.keys.Filter):
			m.filter = m.filter.Next()
			m.updateListItems()
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			if item, ok := m.list.SelectedItem().(MatchItem); ok {
				return m, CopyCmd(item.Markup)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleFilesFound(msg FilesFoundMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.err = msg.Err
		m.state = stateResults
		return m, nil
	}
	m.files = msg.Files
	m.state = stateExtracting
	return m, ExtractLinksCmd(m.ctx, msg.Files, m.opts.Strict, m.opts.Filter, m.opts.Logger)
}

func (m Model) handleLinksExtracted(msg LinksExtractedMsg) (tea.Model, tea.Cmd) {
	m.state = stateResults
	if msg.Err != nil {
		m.err = msg.Err
		return m, nil
	}

	m.items = LinksToItems(msg.Links, m.opts.Render)
	m.unique = msg.Unique
	m.ignored = msg.Ignored
	for _, l := range msg.Links {
		m.counts[l.Kind()]++
	}
	m.updateListItems()
	return m, nil
}

// updateListItems updates the list with filtered items.
func (m *Model) updateListItems() {
	filtered := m.filteredItems()
	items := make([]list.Item, len(filtered))
	for i, it := range filtered {
		items[i] = it
	}
	m.list.SetItems(items)
}

// filteredItems returns the items accepted by the current filter.
func (m *Model) filteredItems() []MatchItem {
	if m.filter == filterAll {
		return m.items
	}
	var out []MatchItem
	for _, it := range m.items {
		if m.filter.accepts(it.Link.Kind()) {
			out = append(out, it)
		}
	}
	return out
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder

	b.WriteString(TitleStyle.Render("Anchor - Link Finder"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render("Press q to quit"))
		return b.String()
	}

	switch m.state {
	case stateScanning:
		b.WriteString(m.spinner.View() + " Scanning for files...")

	case stateExtracting:
		b.WriteString(m.spinner.View() + fmt.Sprintf(" Found %d file(s), extracting matches...", len(m.files)))

	case stateResults:
		b.WriteString(m.renderResults())
	}

	if m.showHelp {
		b.WriteString("\n\n" + m.help.View(m.keys))
	} else {
		b.WriteString("\n\n" + m.renderShortHelp())
	}

	return b.String()
}

func (m Model) renderResults() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Scanned %d file(s), found %d match(es) (%d unique)", len(m.files), len(m.items), m.unique)
	if m.ignored > 0 {
		fmt.Fprintf(&b, ", %d ignored", m.ignored)
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s | %s | %s\n\n",
		KindStyle(linkify.KindURL).Render(fmt.Sprintf("%d urls", m.counts[linkify.KindURL])),
		KindStyle(linkify.KindEmail).Render(fmt.Sprintf("%d emails", m.counts[linkify.KindEmail])),
		KindStyle(linkify.KindFile).Render(fmt.Sprintf("%d files", m.counts[linkify.KindFile])))

	if len(m.items) == 0 {
		b.WriteString(MutedStyle.Render("Nothing to linkify."))
		return b.String()
	}

	fmt.Fprintf(&b, "Filter: %s (%d/%d)\n\n",
		SelectedStyle.Render(m.filter.String()),
		len(m.filteredItems()),
		len(m.items))

	b.WriteString(m.list.View())

	if item, ok := m.list.SelectedItem().(MatchItem); ok {
		b.WriteString("\n" + item.DetailView())
	}
	if m.notice != "" {
		b.WriteString("\n" + m.notice)
	}

	return b.String()
}

func (Model) renderShortHelp() string {
	return HelpStyle.Render("↑/↓ navigate • f filter • c copy • ? help • q quit")
}
