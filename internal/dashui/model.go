// Package dashui provides the Bubble Tea dashboard interface.
package dashui

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cargodash/cargodash/internal/daterange"
	"github.com/cargodash/cargodash/internal/filter"
	"github.com/cargodash/cargodash/internal/state"
	"github.com/cargodash/cargodash/internal/widget"
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	chipStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Background(lipgloss.Color("#3A5A8C")).Padding(0, 1)
	optionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	optionOnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5A5A5A")).Strikethrough(true)
	cardStyle     = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// Model implements the Bubble Tea dashboard UI.
type Model struct {
	st  *state.Store
	rnd *rand.Rand

	tabs      []widget.Widget
	activeTab int

	dataTable  table.Model
	rowActions []func(*state.Store) error
	viewport   viewport.Model

	width  int
	height int

	filterMode   bool
	filterInputs []textinput.Model
	filterIndex  int
	filterError  string

	errMsg string
}

// NewModel constructs a dashboard model over the state store.
func NewModel(st *state.Store, rnd *rand.Rand) *Model {
	m := &Model{
		st:   st,
		rnd:  rnd,
		tabs: widget.Catalog,
	}
	m.viewport = viewport.New(0, 0)
	m.initInputs()
	m.initDataTable()
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || (!m.filterMode && msg.String() == "q") {
			return m, tea.Quit
		}
		if m.filterMode {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "1", "2", "3", "4":
			idx := int(msg.String()[0] - '1')
			m.selectOption(idx)
			return m, nil
		case "/":
			return m.startFilter()
		case "x":
			m.st.ClearGlobalFilters()
			m.refresh()
			return m, nil
		case "X":
			m.st.ResetWidgetFilters()
			m.refresh()
			return m, nil
		case "backspace":
			m.removeLastChip()
			return m, nil
		case "[":
			m.st.ShiftDeliveryMonth(-1)
			m.refresh()
			return m, nil
		case "]":
			m.st.ShiftDeliveryMonth(1)
			m.refresh()
			return m, nil
		case "enter":
			m.applyRowAction()
			return m, nil
		case "g", "home":
			if m.tabular() {
				m.dataTable.GotoTop()
			} else {
				m.viewport.GotoTop()
			}
			return m, nil
		case "G", "end":
			if m.tabular() {
				m.dataTable.GotoBottom()
			} else {
				m.viewport.GotoBottom()
			}
			return m, nil
		default:
			if m.tabular() {
				var cmd tea.Cmd
				m.dataTable, cmd = m.dataTable.Update(msg)
				return m, cmd
			}
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(bodyHeight), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) active() widget.Widget {
	return m.tabs[m.activeTab]
}

func (m *Model) tabular() bool {
	switch m.active().ID {
	case widget.CarrierPerformance, widget.RegionalDistribution, widget.StatusOverview,
		widget.PriorityBreakdown, widget.ShipmentVolume, widget.CostAnalysis,
		widget.DeliveryTime, widget.WeightDistribution:
		return true
	}
	return false
}

func (m *Model) initDataTable() {
	m.dataTable = table.New(table.WithHeight(1))
	m.dataTable.SetStyles(dataTableStyles())
}

func dataTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := lipgloss.Height(activeNavStyle.Render("X"))
	if tabsHeight < 1 {
		tabsHeight = 1
	}
	headerHeight = tabsHeight + 2 // chip row + widget option row
	footerHeight = 1
	if !m.filterMode && m.errMsg != "" {
		footerHeight++
	}
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight, _ := m.layoutHeights()
	m.viewport.Width = m.width
	m.viewport.Height = bodyHeight
	m.dataTable.SetWidth(m.width)
	m.dataTable.SetHeight(maxInt(1, bodyHeight-1))
	for i := range m.filterInputs {
		promptWidth := lipgloss.Width(m.filterInputs[i].Prompt)
		m.filterInputs[i].Width = maxInt(10, m.width-promptWidth-2)
	}
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	if count == 0 {
		return
	}
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
	m.errMsg = ""
	m.refresh()
	if m.tabular() {
		m.dataTable.Focus()
	} else {
		m.dataTable.Blur()
	}
}

// selectOption switches the active widget's drill-down to its idx-th
// option, unless the current filters disable that option.
func (m *Model) selectOption(idx int) {
	w := m.active()
	if idx < 0 || idx >= len(w.Options) {
		return
	}
	opt := w.Options[idx]
	for _, tag := range m.st.DisabledOptions(w.ID) {
		if tag == opt.Tag {
			m.errMsg = fmt.Sprintf("%q is unavailable with the current filters", opt.Label)
			return
		}
	}
	m.errMsg = ""
	m.st.SetWidgetTag(w.ID, opt.Tag)
	m.refresh()
}

func (m *Model) removeLastChip() {
	chips := m.st.Chips()
	if len(chips) == 0 {
		return
	}
	m.st.RemoveChip(chips[len(chips)-1])
	m.refresh()
}

// applyRowAction runs the click-to-filter command bound to the selected
// table row, if the active widget has one.
func (m *Model) applyRowAction() {
	if !m.tabular() || len(m.rowActions) == 0 {
		return
	}
	idx := m.dataTable.Cursor()
	if idx < 0 || idx >= len(m.rowActions) {
		return
	}
	action := m.rowActions[idx]
	if action == nil {
		return
	}
	if err := action(m.st); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
	m.refresh()
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, w := range m.tabs {
		label := truncateLine(w.Title, 14)
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(label))
		} else if abs(i-m.activeTab) <= m.visibleNeighbors() {
			parts = append(parts, inactiveNavStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// visibleNeighbors limits how many tabs render beside the active one so the
// nav row fits narrow terminals.
func (m *Model) visibleNeighbors() int {
	if m.width >= 160 {
		return 4
	}
	if m.width >= 100 {
		return 2
	}
	return 1
}

func (m *Model) renderHeader() string {
	tabs := padLines(m.renderTabs(), m.width)
	chips := padLines(m.renderChipRow(), m.width)
	options := padLines(m.renderOptionRow(), m.width)
	return tabs + "\n" + chips + "\n" + options
}

// renderChipRow shows the active-filter chips plus the record-count
// readout, or the month cursor when nothing is filtered.
func (m *Model) renderChipRow() string {
	count := len(m.st.Filtered())
	total := len(m.st.Records())
	readout := headerStyle.Render(fmt.Sprintf("%d/%d shipments", count, total))
	chips := m.st.Chips()
	if len(chips) == 0 {
		cursor := headerStyle.Render("month " + m.st.DeliveryDate())
		return truncateLine(readout+"  "+cursor, m.width)
	}
	parts := make([]string, 0, len(chips)+1)
	parts = append(parts, readout)
	for _, c := range chips {
		parts = append(parts, chipStyle.Render(c.Label))
	}
	return truncateLine(strings.Join(parts, " "), m.width)
}

// renderOptionRow shows the active widget's drill-down options with the
// selected one highlighted and disabled ones struck through.
func (m *Model) renderOptionRow() string {
	w := m.active()
	grouping := m.st.Grouping(w)
	disabled := map[filter.Tag]bool{}
	for _, tag := range m.st.DisabledOptions(w.ID) {
		disabled[tag] = true
	}
	parts := make([]string, 0, len(w.Options))
	for i, opt := range w.Options {
		label := fmt.Sprintf("%d:%s", i+1, opt.Label)
		switch {
		case disabled[opt.Tag]:
			parts = append(parts, disabledStyle.Render(label))
		case opt.Tag == grouping:
			parts = append(parts, optionOnStyle.Render(label))
		default:
			parts = append(parts, optionStyle.Render(label))
		}
	}
	return truncateLine(strings.Join(parts, "  "), m.width)
}

func (m *Model) renderHelp() string {
	help := "Nav: left/right  Option: 1-4  Filters: /  Clear: x  Month: [/]  Chip: backspace  Quit: q"
	if m.tabular() {
		help = "Nav: left/right  Option: 1-4  Row filter: enter  Filters: /  Clear: x  Quit: q"
	}
	return headerStyle.Render(truncateLine(help, m.width))
}

func (m *Model) renderFilterHelp() string {
	return headerStyle.Render("tab/shift+tab: next field  enter: apply  esc: cancel")
}

func (m *Model) renderFooter() string {
	if m.filterMode {
		return m.renderFilterHelp()
	}
	if m.errMsg != "" {
		return m.renderHelp() + "\n" + errorStyle.Render(truncateLine(m.errMsg, m.width))
	}
	return m.renderHelp()
}

func (m *Model) renderBody(height int) string {
	if m.filterMode {
		return fitLines(m.renderFilterForm(), m.width, height)
	}
	if m.tabular() {
		return fitLines(tableMutedStyle.Render(m.dataTable.View()), m.width, height)
	}
	return fitLines(m.viewport.View(), m.width, height)
}

func (m *Model) initInputs() {
	m.filterInputs = []textinput.Model{
		newFilterInput("Carriers: "),
		newFilterInput("Regions: "),
		newFilterInput("Statuses: "),
		newFilterInput("Priorities: "),
		newFilterInput("Dates: "),
		newFilterInput("Cost ($): "),
		newFilterInput("Weight (kg): "),
		newFilterInput("Packages: "),
		newFilterInput("Distance (km): "),
		newFilterInput("Delivery (h): "),
	}
}

func newFilterInput(prompt string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

func (m *Model) setInputsFromState() {
	g := m.st.Global()
	for i, kind := range filter.CategoryKinds {
		m.filterInputs[i].SetValue(strings.Join(g.Category(kind), ", "))
	}
	if g.DateRangeActive() {
		m.filterInputs[4].SetValue(g.DateRange[0] + " " + g.DateRange[1])
	} else {
		m.filterInputs[4].SetValue("")
	}
	for i, kind := range filter.RangeKinds {
		if g.RangeActive(kind) {
			r := g.RangeFor(kind)
			m.filterInputs[5+i].SetValue(fmt.Sprintf("%g %g", r.Min, r.Max))
		} else {
			m.filterInputs[5+i].SetValue("")
		}
	}
}

func (m *Model) startFilter() (tea.Model, tea.Cmd) {
	m.filterMode = true
	m.filterError = ""
	m.setInputsFromState()
	return m, m.setFilterIndex(0)
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filterMode = false
		m.filterError = ""
		return m, nil
	case tea.KeyEnter:
		if err := m.applyFilter(); err != nil {
			m.filterError = err.Error()
			return m, nil
		}
		m.filterMode = false
		m.filterError = ""
		m.refresh()
		return m, nil
	case tea.KeyTab:
		return m, m.setFilterIndex(m.filterIndex + 1)
	case tea.KeyShiftTab:
		return m, m.setFilterIndex(m.filterIndex - 1)
	}
	var cmd tea.Cmd
	m.filterInputs[m.filterIndex], cmd = m.filterInputs[m.filterIndex].Update(msg)
	return m, cmd
}

func (m *Model) setFilterIndex(idx int) tea.Cmd {
	count := len(m.filterInputs)
	if count == 0 {
		return nil
	}
	if idx < 0 {
		idx = count - 1
	}
	if idx >= count {
		idx = 0
	}
	m.filterIndex = idx
	var cmd tea.Cmd
	for i := range m.filterInputs {
		if i == m.filterIndex {
			cmd = m.filterInputs[i].Focus()
		} else {
			m.filterInputs[i].Blur()
		}
	}
	return cmd
}

func (m *Model) renderFilterForm() string {
	lines := []string{"Filters (enter to apply, esc to cancel)"}
	for _, input := range m.filterInputs {
		lines = append(lines, input.View())
	}
	lines = append(lines, headerStyle.Render("Categories: comma-separated. Ranges: \"min max\". Dates: phrase like \"q2 2025\", \"last 30 days\"."))
	if m.filterError != "" {
		lines = append(lines, errorStyle.Render(m.filterError))
	}
	return strings.Join(lines, "\n")
}

// applyFilter parses every form field and pushes the result into the store.
func (m *Model) applyFilter() error {
	for i, kind := range filter.CategoryKinds {
		m.st.SetCategories(kind, splitList(m.filterInputs[i].Value()))
	}

	datesInput := strings.TrimSpace(m.filterInputs[4].Value())
	if datesInput == "" {
		m.st.ClearDateRange()
	} else {
		window, err := daterange.Parse(datesInput, time.Now())
		if err != nil {
			return err
		}
		if err := m.st.SetDateRange(window.From, window.To); err != nil {
			return err
		}
	}

	for i, kind := range filter.RangeKinds {
		raw := strings.TrimSpace(m.filterInputs[5+i].Value())
		if raw == "" {
			m.st.ResetRange(kind)
			continue
		}
		r, err := parseRange(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", kind, err)
		}
		if err := m.st.SetRange(kind, r); err != nil {
			return err
		}
	}
	return nil
}

func splitList(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

func parseRange(input string) (filter.Range, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ' ' || r == ','
	})
	if len(fields) != 2 {
		return filter.Range{}, fmt.Errorf("expected \"min max\", got %q", input)
	}
	minVal, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return filter.Range{}, fmt.Errorf("bad lower bound %q", fields[0])
	}
	maxVal, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return filter.Range{}, fmt.Errorf("bad upper bound %q", fields[1])
	}
	return filter.Range{Min: minVal, Max: maxVal}, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func padLines(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
