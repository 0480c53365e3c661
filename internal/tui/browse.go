package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/flixlens/flixlens/internal/analyze"
	"github.com/flixlens/flixlens/internal/catalog"
	"github.com/flixlens/flixlens/internal/log"
	"github.com/flixlens/flixlens/internal/tui/theme"
)

// sortState tracks whether the table shows source order or a date ordering.
type sortState int

const (
	sortNone sortState = iota
	sortAscending
	sortDescending
)

// BrowseModel is the interactive catalog browser. It owns an immutable
// catalog snapshot; sorting produces a new slice and nothing in the core is
// ever mutated from the UI.
type BrowseModel struct {
	source  catalog.Catalog // load order, never reordered
	visible catalog.Catalog // current display order
	index   *analyze.Index

	table    viewport.Model
	input    textinput.Model
	theme    theme.Theme
	sort     sortState
	firstDir sortState // direction applied on the first sort toggle

	inputFocused bool
	countryLine  string
	status       string
	statusIsErr  bool

	width  int
	height int
}

// Option configures a BrowseModel during construction.
type Option func(*BrowseModel)

// WithTheme overrides the default theme.
func WithTheme(th theme.Theme) Option {
	return func(m *BrowseModel) {
		m.theme = th
	}
}

// WithInitialID pre-populates the identifier field and runs the lookup
// immediately, mirroring the optional positional argument.
func WithInitialID(id string) Option {
	return func(m *BrowseModel) {
		m.input.SetValue(id)
		m.lookupDelta(id)
	}
}

// WithDescendingFirst makes the first sort toggle order newest-first.
func WithDescendingFirst() Option {
	return func(m *BrowseModel) {
		m.firstDir = sortDescending
	}
}

// NewBrowseModel creates the browse UI over a loaded catalog snapshot.
func NewBrowseModel(c catalog.Catalog, opts ...Option) *BrowseModel {
	runewidth.DefaultCondition.EastAsianWidth = false
	runewidth.DefaultCondition.StrictEmojiNeutral = true

	input := textinput.New()
	input.Placeholder = "s1"
	input.Prompt = "Title ID: "
	input.CharLimit = 16

	m := &BrowseModel{
		source:   c,
		visible:  c,
		index:    analyze.NewIndex(c),
		table:    viewport.New(80, 20),
		input:    input,
		theme:    theme.Default(),
		firstDir: sortAscending,
		width:    80,
		height:   24,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.refreshTable()
	return m
}

// Init implements tea.Model.
func (m *BrowseModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.Width = msg.Width
		// Header, column labels, input, hint, and two status lines
		// frame the table.
		m.table.Height = max(msg.Height-6, 3)
		m.refreshTable()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}

		if m.inputFocused {
			return m.updateFocusedInput(msg)
		}
		return m.updateTableKeys(msg)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.table, cmd = m.table.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *BrowseModel) updateFocusedInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.lookupDelta(strings.TrimSpace(m.input.Value()))
		return m, nil
	case "esc", "tab":
		m.inputFocused = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *BrowseModel) updateTableKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab", "i":
		m.inputFocused = true
		return m, m.input.Focus()
	case "c":
		m.showCountry()
		return m, nil
	case "d":
		m.lookupDelta(strings.TrimSpace(m.input.Value()))
		return m, nil
	case "s":
		m.toggleSort()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// showCountry answers the most-common-country query into the status area.
func (m *BrowseModel) showCountry() {
	country := analyze.MostCommonCountry(m.source)
	log.LogQuery("most_common_country", country)
	m.countryLine = fmt.Sprintf("Country with most titles: %s", country)
}

// lookupDelta validates id, finds the title, and reports its
// release-to-addition delta.
func (m *BrowseModel) lookupDelta(id string) {
	if id == "" {
		m.setError("Title ID cannot be empty.")
		return
	}

	title, err := m.index.FindByID(id)
	log.LogLookup(id, err)
	if err != nil {
		if errors.Is(err, analyze.ErrNotFound) {
			m.setStatus("Title not found!")
			return
		}
		m.setError(err.Error())
		return
	}

	delta := analyze.ReleaseAdditionDelta(*title)
	if delta == analyze.UnknownDelta {
		m.setStatus(fmt.Sprintf("%s: release-to-addition delta unknown", title.Name))
		return
	}
	m.setStatus(fmt.Sprintf("%s: difference of %d days", title.Name, delta))
}

// toggleSort cycles source order -> first direction -> opposite direction.
func (m *BrowseModel) toggleSort() {
	switch m.sort {
	case sortNone:
		m.sort = m.firstDir
	case sortAscending:
		m.sort = sortDescending
	case sortDescending:
		m.sort = sortAscending
	}
	m.visible = analyze.SortByDateAdded(m.source, m.sort == sortAscending)
	log.LogQuery("sort_by_date_added", fmt.Sprintf("descending=%v", m.sort == sortDescending))
	m.refreshTable()
}

func (m *BrowseModel) setStatus(text string) {
	m.status = text
	m.statusIsErr = false
}

func (m *BrowseModel) setError(text string) {
	m.status = text
	m.statusIsErr = true
}

// columnWidths distributes the display width across the table columns.
func (m *BrowseModel) columnWidths() []int {
	// ID, Kind, Title, Country, Year, Date Added, Duration
	weights := []float64{0.08, 0.09, 0.30, 0.18, 0.06, 0.17, 0.12}
	widths := make([]int, len(weights))
	for i, w := range weights {
		widths[i] = max(int(float64(m.width)*w), 4)
	}
	return widths
}

func (m *BrowseModel) headerRow(widths []int) string {
	labels := []string{"ID", "Kind", "Title", "Country", "Year", "Date Added", "Duration"}
	return m.theme.ColumnHeaderStyle().Render(renderCells(labels, widths))
}

func (m *BrowseModel) refreshTable() {
	widths := m.columnWidths()
	rows := make([]string, 0, len(m.visible))
	for _, t := range m.visible {
		year := ""
		if t.ReleaseYear != 0 {
			year = strconv.Itoa(t.ReleaseYear)
		}
		cells := []string{t.ID, t.Kind.String(), t.Name, t.Country, year, t.DateAdded, t.Duration}
		rows = append(rows, renderCells(cells, widths))
	}
	m.table.SetContent(strings.Join(rows, "\n"))
}

// renderCells truncates each cell to its column width and joins the row.
func renderCells(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		w := widths[i]
		parts[i] = runewidth.FillRight(runewidth.Truncate(cell, w-1, "…"), w)
	}
	return strings.Join(parts, "")
}

// View implements tea.Model.
func (m *BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.HeaderStyle().Render("flixlens — catalog browser"))
	b.WriteString("\n")
	b.WriteString(m.headerRow(m.columnWidths()))
	b.WriteString("\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.countryLine != "" {
		b.WriteString(m.theme.SuccessStyle().Render(m.countryLine))
	}
	b.WriteString("\n")

	status := m.statusLine()
	hint := m.theme.MutedStyle().Render("c country • d delta • s sort by date • tab id field • q quit")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, status, " ", hint))

	return b.String()
}

func (m *BrowseModel) statusLine() string {
	if m.status == "" {
		return m.theme.StatusBarStyle().Render(fmt.Sprintf("%d titles", len(m.visible)))
	}
	if m.statusIsErr {
		return m.theme.ErrorStyle().Render(m.status)
	}
	return m.theme.StatusBarStyle().Render(m.status)
}
