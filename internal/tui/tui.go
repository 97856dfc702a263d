// Package tui provides a Bubble Tea terminal browser for the record
// collection: filter tabs, live search, sorting, a record detail view and
// the store-locator list.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jennahya/recordroom/internal/catalog"
	"github.com/jennahya/recordroom/internal/model"
	"github.com/jennahya/recordroom/internal/query"
	"github.com/jennahya/recordroom/internal/stores"
	"github.com/jennahya/recordroom/internal/view"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500")).
			MarginBottom(1)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4")).
			Padding(0, 1).
			Underline(true)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	favoriteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#95E1A3")).
			MarginTop(1)
)

// State represents the current UI state.
type State int

const (
	StateLoading State = iota
	StateBrowse
	StateDetail
	StateStores
	StateError
)

// sortCycle is the order the s key steps through.
var sortCycle = []string{
	query.SortAlphaAsc,
	query.SortAlphaDesc,
	query.SortYearAsc,
	query.SortYearDesc,
	query.SortGenreAsc,
}

var sortLabels = map[string]string{
	query.SortAlphaAsc:  "title a-z",
	query.SortAlphaDesc: "title z-a",
	query.SortYearAsc:   "year ↑",
	query.SortYearDesc:  "year ↓",
	query.SortGenreAsc:  "genre a-z",
}

// Model is the Bubble Tea model for the collection browser.
type Model struct {
	state       State
	spinner     spinner.Model
	searchInput textinput.Model

	loader     *catalog.Loader
	store      *catalog.Store
	initialTab string

	tabs      []string
	tabIndex  int
	sortIndex int

	list     []model.Effective
	cursor   int
	selected *view.Detail

	err    error
	width  int
	height int
}

// NewModel creates a browser model. The catalog is loaded asynchronously
// on Init; initialTab preselects a filter tab the way the site's ?tab=
// parameter does, falling back to "all" for unknown values.
func NewModel(loader *catalog.Loader, initialTab string) Model {
	ti := textinput.New()
	ti.Placeholder = "search title, artist or genre"
	ti.Prompt = "/ "
	ti.CharLimit = 100
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#F8B500"))

	return Model{
		state:       StateLoading,
		spinner:     sp,
		searchInput: ti,
		loader:      loader,
		initialTab:  initialTab,
	}
}

// Message types
type (
	// loadedMsg carries the loaded store.
	loadedMsg struct{ store *catalog.Store }

	// loadFailedMsg carries a fatal base catalog error.
	loadFailedMsg struct{ err error }
)

// Init starts the spinner and the catalog load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCatalog())
}

func (m Model) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		store, err := m.loader.Load(context.Background())
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return loadedMsg{store: store}
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case loadedMsg:
		m.store = msg.store
		m.tabs = filterTabs(m.store)
		m.tabIndex = indexOf(m.tabs, query.ParseFilter(m.initialTab, m.store))
		m.state = StateBrowse
		m.refresh()

	case loadFailedMsg:
		m.err = msg.err
		m.state = StateError

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// global keys
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q":
		if !m.searchInput.Focused() {
			return m, tea.Quit
		}
	}

	switch m.state {
	case StateBrowse:
		return m.handleBrowseKey(msg)
	case StateDetail, StateStores:
		switch msg.String() {
		case "esc", "b", "enter":
			m.state = StateBrowse
			m.selected = nil
		}
	case StateError:
		if msg.String() == "r" {
			m.state = StateLoading
			m.err = nil
			return m, tea.Batch(m.spinner.Tick, m.loadCatalog())
		}
	}

	return m, nil
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searchInput.Focused() {
		switch msg.String() {
		case "esc", "enter":
			m.searchInput.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			m.refresh()
			return m, cmd
		}
	}

	switch msg.String() {
	case "/":
		m.searchInput.Focus()
		return m, textinput.Blink

	case "left", "h":
		m.tabIndex = (m.tabIndex + len(m.tabs) - 1) % len(m.tabs)
		m.refresh()

	case "right", "l", "tab":
		m.tabIndex = (m.tabIndex + 1) % len(m.tabs)
		m.refresh()

	case "s":
		m.sortIndex = (m.sortIndex + 1) % len(sortCycle)
		m.refresh()

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.list)-1 {
			m.cursor++
		}

	case "enter":
		if m.cursor < len(m.list) {
			detail := view.RenderDetail(m.list[m.cursor])
			m.selected = &detail
			m.state = StateDetail
		}

	case "m":
		m.state = StateStores

	case "c":
		m.searchInput.SetValue("")
		m.refresh()
	}

	return m, nil
}

// refresh recomputes the view list from the current filter, search and
// sort state. The cursor is clamped, not reset, so small narrowing keeps
// the selection nearby.
func (m *Model) refresh() {
	if m.store == nil {
		return
	}
	m.list = query.Apply(m.store, m.queryState())
	if m.cursor >= len(m.list) {
		m.cursor = max(0, len(m.list)-1)
	}
}

func (m *Model) queryState() query.State {
	return query.State{
		Filter: m.tabs[m.tabIndex],
		Query:  m.searchInput.Value(),
		Sort:   sortCycle[m.sortIndex],
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("♪ Record Room"))
	b.WriteString("\n")

	switch m.state {
	case StateLoading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading the collection...")
	case StateBrowse:
		b.WriteString(m.viewBrowse())
	case StateDetail:
		b.WriteString(m.viewDetail())
	case StateStores:
		b.WriteString(m.viewStores())
	case StateError:
		b.WriteString(errorStyle.Render(view.ErrorMessage))
		b.WriteString("\n\n")
		if m.err != nil {
			b.WriteString(dimStyle.Render(m.err.Error()))
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.helpText()))

	return b.String()
}

func (m Model) viewBrowse() string {
	var b strings.Builder

	// filter tabs
	for i, tab := range m.tabs {
		if i == m.tabIndex {
			b.WriteString(activeTabStyle.Render(tab))
		} else {
			b.WriteString(tabStyle.Render(tab))
		}
	}
	b.WriteString("\n")

	b.WriteString(m.searchInput.View())
	b.WriteString(dimStyle.Render(fmt.Sprintf("   sort: %s", sortLabels[sortCycle[m.sortIndex]])))
	b.WriteString("\n\n")

	if len(m.list) == 0 {
		b.WriteString(dimStyle.Render(view.EmptyMessage))
		b.WriteString("\n")
		return b.String()
	}

	for i, eff := range m.list {
		card := view.CardFor(eff)

		cursor := "  "
		titleRender := cardTitleStyle
		if i == m.cursor {
			cursor = selectedStyle.Render("▸ ")
			titleRender = selectedStyle.Bold(true)
		}

		line := titleRender.Render(card.Title)
		if card.Favorite {
			line += " " + favoriteStyle.Render("★")
		}
		b.WriteString(cursor + line + "\n")

		meta := card.Artist
		if card.Year != "" {
			meta += "  " + card.Year
		}
		if card.Genre != "" {
			meta += "  " + card.Genre
		}
		b.WriteString("  " + metaStyle.Render(meta) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d record(s)", len(m.list))))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewDetail() string {
	if m.selected == nil {
		return dimStyle.Render(view.NotFoundMessage) + "\n"
	}
	d := *m.selected

	var b strings.Builder

	b.WriteString(cardTitleStyle.Render(d.Title))
	if d.Favorite {
		b.WriteString(" " + favoriteStyle.Render("★ favorite"))
	}
	b.WriteString("\n")
	b.WriteString(metaStyle.Render(d.Artist))
	b.WriteString("\n")

	var meta []string
	if d.Year != "" {
		meta = append(meta, d.Year)
	}
	if d.Genre != "" {
		meta = append(meta, d.Genre)
	}
	meta = append(meta, d.Styles...)
	if len(meta) > 0 {
		b.WriteString(dimStyle.Render(strings.Join(meta, " · ")))
		b.WriteString("\n")
	}

	if len(d.Tracklist) > 0 {
		b.WriteString(sectionStyle.Render("Tracklist"))
		b.WriteString("\n")
		for _, t := range d.Tracklist {
			b.WriteString(fmt.Sprintf("  %-4s %s", t.Position, t.Title))
			if t.Duration != "" {
				b.WriteString(dimStyle.Render("  " + t.Duration))
			}
			b.WriteString("\n")
		}
	}

	if len(d.Notes) > 0 {
		b.WriteString(sectionStyle.Render("Notes"))
		b.WriteString("\n")
		for _, p := range d.Notes {
			b.WriteString("  " + p + "\n")
		}
	}

	if len(d.Credits) > 0 {
		b.WriteString(sectionStyle.Render("Credits"))
		b.WriteString("\n")
		for _, c := range d.Credits {
			line := "  " + c.Name
			if c.Role != "" {
				line += dimStyle.Render("  " + c.Role)
			}
			b.WriteString(line + "\n")
		}
	}

	if len(d.Companies) > 0 {
		b.WriteString(sectionStyle.Render("Companies"))
		b.WriteString("\n")
		b.WriteString("  " + strings.Join(d.Companies, ", ") + "\n")
	}

	return b.String()
}

func (m Model) viewStores() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Record Stores"))
	b.WriteString("\n\n")

	for _, loc := range stores.All() {
		b.WriteString(cardTitleStyle.Render(loc.Name))
		b.WriteString(" " + favoriteStyle.Render(loc.Rating))
		b.WriteString("\n")
		b.WriteString("  " + metaStyle.Render(loc.Address) + "\n")
		b.WriteString("  " + dimStyle.Render(loc.Notes) + "\n\n")
	}

	return b.String()
}

func (m Model) helpText() string {
	switch m.state {
	case StateBrowse:
		if m.searchInput.Focused() {
			return "type to search • enter/esc: done"
		}
		return "←/→: filter • /: search • s: sort • enter: detail • m: stores • q: quit"
	case StateDetail, StateStores:
		return "esc: back • q: quit"
	case StateError:
		return "r: retry • q: quit"
	}
	return "q: quit"
}

// filterTabs derives the tab row: all, favorites, then every category in
// catalog order without duplicates.
func filterTabs(store *catalog.Store) []string {
	tabs := []string{query.FilterAll, query.FilterFavorites}
	seen := map[string]bool{}
	for _, rec := range store.Records() {
		if rec.Category == "" || rec.Category == query.FilterFavorites || seen[rec.Category] {
			continue
		}
		seen[rec.Category] = true
		tabs = append(tabs, rec.Category)
	}
	return tabs
}

func indexOf(tabs []string, tab string) int {
	for i, t := range tabs {
		if t == tab {
			return i
		}
	}
	return 0
}

// Run starts the collection browser.
func Run(loader *catalog.Loader, initialTab string) error {
	p := tea.NewProgram(NewModel(loader, initialTab), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
