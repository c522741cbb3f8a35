// Package tui is the interactive terminal viewer for the catalog.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"catalog/internal/product/store"
	"catalog/internal/product/usecase"
	"catalog/internal/product/view"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type BrowseUseCase interface {
	Browse(ctx context.Context, state view.State) *usecase.BrowseResult
}

// StoreChangedMsg tells the model the catalog store published a new
// snapshot. The model re-runs the pipeline on the next View.
type StoreChangedMsg struct {
	Status store.Status
}

// Model is the browse screen. It owns the view state only; product data is
// always read through the use case.
type Model struct {
	useCase BrowseUseCase
	state   view.State

	searchInput   textinput.Model
	searchFocused bool

	styles Styles
	width  int
}

func NewModel(useCase BrowseUseCase, dark bool) Model {
	si := textinput.New()
	si.Placeholder = "Search products..."
	si.Prompt = "/ "
	si.Width = 40

	return Model{
		useCase:     useCase,
		state:       view.NewState(),
		searchInput: si,
		styles:      ThemeFor(dark),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) State() view.State { return m.state }

func (m Model) Dark() bool { return m.styles.Theme.IsDark }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.searchInput.Width = max(msg.Width-8, 10)
		return m, nil

	case StoreChangedMsg:
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.searchFocused {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.searchFocused = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if term := m.searchInput.Value(); term != m.state.SearchTerm() {
		m.state = m.state.WithSearchTerm(term)
	}
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.searchFocused = true
		return m, m.searchInput.Focus()
	case "s":
		m.state = m.state.WithSortOption(m.state.SortOption().Next())
	case "t":
		m.styles = ThemeFor(!m.styles.Theme.IsDark)
	case "left", "h":
		if ctl := m.controls(); ctl.Visible && !ctl.PrevDisabled {
			m.state = m.state.WithPage(ctl.Prev)
		}
	case "right", "l":
		if ctl := m.controls(); ctl.Visible && !ctl.NextDisabled {
			m.state = m.state.WithPage(ctl.Next)
		}
	}
	return m, nil
}

func (m Model) controls() view.Controls {
	return m.useCase.Browse(context.Background(), m.state).Controls
}

func (m Model) View() string {
	s := m.styles
	result := m.useCase.Browse(context.Background(), m.state)

	var b strings.Builder
	b.WriteString(s.Header.Render("E-commerce Catalog"))
	b.WriteString("\n")
	b.WriteString(m.searchInput.View())
	b.WriteString("\n")
	b.WriteString(s.Muted.Render("Sort: " + m.state.SortOption().Label()))
	b.WriteString("\n\n")

	switch result.Status {
	case store.StatusError:
		b.WriteString(s.Error.Render(result.Error))
	case store.StatusSuccess:
		b.WriteString(m.renderProducts(result))
	default:
		b.WriteString(s.Muted.Render("Loading products..."))
	}

	b.WriteString("\n")
	b.WriteString(s.Footer.Render("/ search • s sort • ←/→ page • t theme • q quit"))

	app := s.App
	if m.width > 0 {
		app = app.Width(m.width)
	}
	return app.Render(b.String())
}

func (m Model) renderProducts(result *usecase.BrowseResult) string {
	s := m.styles
	if result.Page.TotalResults == 0 {
		return s.Muted.Render("No products found.")
	}

	rows := make([]string, 0, len(result.Page.Products)+1)
	for _, p := range result.Page.Products {
		rows = append(rows, s.Row.Render(lipgloss.JoinHorizontal(lipgloss.Top,
			s.Title.Width(48).Render(p.Title),
			s.Price.Width(10).Render(p.PriceLabel()),
			s.Rating.Render(fmt.Sprintf("★ %.1f", p.Rating.Rate)),
		)))
	}
	rows = append(rows, m.renderControls(result.Controls))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderControls(ctl view.Controls) string {
	s := m.styles
	parts := make([]string, 0, len(ctl.Pages)+2)

	prev := s.Page.Render("‹ Previous")
	if ctl.PrevDisabled {
		prev = s.Muted.Faint(true).Render("‹ Previous")
	}
	parts = append(parts, prev)

	for _, n := range ctl.Pages {
		label := strconv.Itoa(n)
		if n == ctl.Current {
			parts = append(parts, s.Current.Render(label))
			continue
		}
		parts = append(parts, s.Page.Render(label))
	}

	next := s.Page.Render("Next ›")
	if ctl.NextDisabled {
		next = s.Muted.Faint(true).Render("Next ›")
	}
	parts = append(parts, next)

	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

// Sender is the part of *tea.Program the subscription needs.
type Sender interface {
	Send(msg tea.Msg)
}

// Subscribe forwards every store change to the running program. The
// returned func cancels the subscription.
func Subscribe(st *store.Store, program Sender) func() {
	return st.Subscribe(func(snap store.Snapshot) {
		program.Send(StoreChangedMsg{Status: snap.Status})
	})
}
