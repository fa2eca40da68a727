package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/casskell/outline_viewer/pkg/export"
	"github.com/casskell/outline_viewer/pkg/model"
	"github.com/casskell/outline_viewer/pkg/notes"
	"github.com/casskell/outline_viewer/pkg/outline"
)

// ItemsReloadedMsg carries a fresh set of outline items, typically sent
// by the file watcher after the outline file changes.
type ItemsReloadedMsg struct {
	Items []model.Item
}

// statusMsg updates the transient status bar text.
type statusMsg string

// Model is the top-level bubbletea model for the outline viewer.
type Model struct {
	items    []model.Item
	list     list.Model
	search   textinput.Model
	noteForm NoteInputModel

	noteDB     *notes.DB
	noteCounts map[string]int

	snapshotDir string
	breadcrumb  string
	detail      string
	status      string

	searching  bool
	notingOpen bool
	width      int
	height     int
}

// NewModel creates the application model. noteDB may be nil, in which
// case note entry is disabled.
func NewModel(items []model.Item, noteDB *notes.DB, snapshotDir string) Model {
	counts := map[string]int{}
	if noteDB != nil {
		if c, err := noteDB.CountByItem(); err == nil {
			counts = c
		}
	}

	l := list.New(toListItems(items, counts), ItemDelegate{ShowEdited: true}, 0, 0)
	l.Title = "Course Outline"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	search := textinput.New()
	search.Placeholder = "fuzzy filter..."
	search.CharLimit = 80

	m := Model{
		items:       items,
		list:        l,
		search:      search,
		noteDB:      noteDB,
		noteCounts:  counts,
		snapshotDir: snapshotDir,
	}
	m.refreshBreadcrumb()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.listWidth(), m.height-4)
		m.noteForm.SetSize(msg.Width, msg.Height)
		m.refreshBreadcrumb()
		return m, nil

	case ItemsReloadedMsg:
		m.items = msg.Items
		m.applyFilter(m.search.Value())
		m.status = fmt.Sprintf("outline reloaded (%d items)", len(msg.Items))
		m.refreshBreadcrumb()
		return m, nil

	case statusMsg:
		m.status = string(msg)
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.notingOpen {
		return m.updateNoteForm(msg)
	}

	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.search.SetValue("")
			m.applyFilter("")
			m.refreshBreadcrumb()
			return m, nil
		case "enter":
			m.searching = false
			return m, nil
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.applyFilter(m.search.Value())
			m.refreshBreadcrumb()
			return m, cmd
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink

	case "n":
		if m.noteDB == nil {
			m.status = "notes are disabled (no database)"
			return m, nil
		}
		if sel, ok := m.selected(); ok {
			m.noteForm = NewNoteInputModel(sel.Item.ID, sel.Item.DisplayName)
			m.noteForm.SetSize(m.width, m.height)
			m.notingOpen = true
			return m, m.noteForm.Init()
		}
		return m, nil

	case "y":
		if sel, ok := m.selected(); ok {
			if err := clipboard.WriteAll(sel.Item.ID); err != nil {
				m.status = fmt.Sprintf("copy failed: %v", err)
			} else {
				m.status = "copied " + sel.Item.ID
			}
		}
		return m, nil

	case "e":
		if sel, ok := m.selected(); ok {
			return m, m.exportSnapshot(sel.Item)
		}
		return m, nil
	}

	var cmd tea.Cmd
	before := m.list.Index()
	m.list, cmd = m.list.Update(msg)
	if m.list.Index() != before {
		m.refreshBreadcrumb()
	}
	return m, cmd
}

func (m Model) updateNoteForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.noteForm, cmd = m.noteForm.Update(msg)

	if m.noteForm.IsCancelled() {
		m.notingOpen = false
		return m, nil
	}
	if m.noteForm.IsSubmitted() {
		m.notingOpen = false
		note := &model.Note{ItemID: m.noteForm.ItemID(), Author: "studio", Text: m.noteForm.Text()}
		if strings.TrimSpace(note.Text) == "" {
			return m, nil
		}
		if err := m.noteDB.Add(note); err != nil {
			m.status = fmt.Sprintf("save note: %v", err)
			return m, nil
		}
		m.noteCounts[note.ItemID]++
		m.list.SetItems(toListItems(m.visibleItems(), m.noteCounts))
		m.refreshBreadcrumb()
		m.status = "note saved"
		return m, nil
	}
	return m, cmd
}

// exportSnapshot writes text/SVG/JSON renderings of the item's chain.
func (m Model) exportSnapshot(it model.Item) tea.Cmd {
	dir := m.snapshotDir
	return func() tea.Msg {
		chain, err := buildChain(it)
		if err != nil {
			return statusMsg(fmt.Sprintf("export: %v", err))
		}
		if err := export.Snapshot(dir, chain); err != nil {
			return statusMsg(fmt.Sprintf("export: %v", err))
		}
		return statusMsg("snapshot written to " + dir)
	}
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}
	if m.notingOpen {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.noteForm.View())
	}

	left := PanelStyle.Width(m.listWidth()).Render(m.list.View())

	crumbTitle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Render("Location")
	crumb := FocusedPanelStyle.Width(m.sideWidth()).Render(crumbTitle + "\n" + m.breadcrumb)

	detail := PanelStyle.Width(m.sideWidth()).Render(m.detail)

	right := lipgloss.JoinVertical(lipgloss.Left, crumb, detail)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	bar := m.status
	if bar == "" {
		bar = "[/] filter  [n] note  [y] yank id  [e] export  [q] quit"
	}
	if m.searching {
		bar = "filter: " + m.search.View()
	}

	return body + "\n" + StatusBarStyle.Width(m.width).Render(bar)
}

func (m *Model) listWidth() int {
	w := m.width * 3 / 5
	if w < 40 {
		w = 40
	}
	return w
}

func (m *Model) sideWidth() int {
	w := m.width - m.listWidth() - 4
	if w < 24 {
		w = 24
	}
	return w
}

// selected returns the currently highlighted outline item.
func (m *Model) selected() (OutlineItem, bool) {
	sel, ok := m.list.SelectedItem().(OutlineItem)
	return sel, ok
}

// visibleItems returns the items currently shown, honoring the filter.
func (m *Model) visibleItems() []model.Item {
	return filterItems(m.items, m.search.Value())
}

// applyFilter narrows the list to fuzzy matches of query.
func (m *Model) applyFilter(query string) {
	m.list.SetItems(toListItems(filterItems(m.items, query), m.noteCounts))
	m.list.ResetSelected()
}

// refreshBreadcrumb rebuilds the ancestor chain panel for the current
// selection. The chain is rebuilt from scratch on every call.
func (m *Model) refreshBreadcrumb() {
	sel, ok := m.selected()
	if !ok {
		m.breadcrumb = HintStyle.Render("no item selected")
		m.detail = ""
		return
	}

	crumb, err := BuildBreadcrumb(sel.Item, m.sideWidth()-4)
	if err != nil {
		m.breadcrumb = HintStyle.Render(fmt.Sprintf("breadcrumb unavailable: %v", err))
	} else {
		m.breadcrumb = crumb
	}

	detail := m.renderDetail(sel.Item)
	if panel := m.renderNotes(sel.Item.ID); panel != "" {
		detail += "\n\n" + panel
	}
	m.detail = detail
}

// renderNotes lists the stored notes for an item, newest first.
func (m *Model) renderNotes(itemID string) string {
	if m.noteDB == nil {
		return ""
	}
	stored, err := m.noteDB.ForItem(itemID)
	if err != nil || len(stored) == 0 {
		return ""
	}

	var b strings.Builder
	title := fmt.Sprintf("Notes (%d)", len(stored))
	b.WriteString(lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Render(title))
	for _, n := range stored {
		meta := HintStyle.Render(n.CreatedAt.Format("2006-01-02") + " " + n.Author)
		fmt.Fprintf(&b, "\n%s %s", meta, n.Text)
	}
	return b.String()
}

// renderDetail renders the item's markdown description for the side panel.
func (m *Model) renderDetail(it model.Item) string {
	if it.Description == "" {
		return HintStyle.Render("no description")
	}

	width := m.sideWidth() - 4
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return it.Description
	}
	out, err := r.Render(it.Description)
	if err != nil {
		return it.Description
	}
	return strings.TrimRight(out, "\n")
}

// buildChain constructs and renders the full ancestor chain for an item.
func buildChain(it model.Item) (*outline.Node, error) {
	target := outline.NewNode(it, nil, BreadcrumbTemplate{})
	if err := target.Render(); err != nil {
		return nil, err
	}
	return outline.RenderAncestors(target)
}

// filterItems returns the fuzzy matches of query, or all items when the
// query is empty. Match order follows fuzzy rank.
func filterItems(items []model.Item, query string) []model.Item {
	if strings.TrimSpace(query) == "" {
		return items
	}

	matches := fuzzy.FindFrom(query, itemsSource(items))
	out := make([]model.Item, 0, len(matches))
	for _, match := range matches {
		out = append(out, items[match.Index])
	}
	return out
}

// itemsSource adapts items to fuzzy.Source.
type itemsSource []model.Item

func (s itemsSource) String(i int) string {
	return s[i].DisplayName + " " + s[i].ID
}

func (s itemsSource) Len() int {
	return len(s)
}

func toListItems(items []model.Item, counts map[string]int) []list.Item {
	out := make([]list.Item, len(items))
	for i, it := range items {
		out[i] = OutlineItem{Item: it, NoteCount: counts[it.ID]}
	}
	return out
}
