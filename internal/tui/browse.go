package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/velourhq/velour/internal/browser"
	"github.com/velourhq/velour/pkg/client"
	"github.com/velourhq/velour/pkg/domain"
)

type browseLoadedMsg struct {
	services []domain.Service
	err      error
}

// browseModel is the consumer discovery screen: category-filtered listing
// with keyword search layered on top.
type browseModel struct {
	api         *client.Client
	services    []domain.Service
	cursor      int
	category    string // empty means all categories
	keyword     string // active search keyword, empty when browsing
	searching   bool
	searchInput string
	detail      bool
	loading     bool
	errMsg      string
	statusMsg   string
	height      int
}

func newBrowseModel(api *client.Client) browseModel {
	return browseModel{api: api, height: 20}
}

func (m browseModel) Init() tea.Cmd {
	return m.loadCmd()
}

// loadCmd fetches the listing for the current keyword or category filter.
func (m browseModel) loadCmd() tea.Cmd {
	api, keyword, category := m.api, m.keyword, m.category
	return func() tea.Msg {
		ctx := context.Background()
		if keyword != "" {
			services, err := api.Search(ctx, keyword)
			return browseLoadedMsg{services: services, err: err}
		}
		services, err := api.Filter(ctx, domain.FilterParams{Category: category})
		return browseLoadedMsg{services: services, err: err}
	}
}

func (m browseModel) Update(msg tea.Msg) (browseModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil

	case browseLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = errText(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.services = msg.services
		if m.cursor >= len(m.services) {
			m.cursor = 0
		}
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""
		if m.searching {
			return m.updateSearching(msg)
		}
		switch msg.String() {
		case "j", "down":
			if m.cursor < len(m.services)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "enter":
			if len(m.services) > 0 {
				m.detail = !m.detail
			}
		case "esc":
			switch {
			case m.detail:
				m.detail = false
			case m.keyword != "":
				m.keyword = ""
				m.loading = true
				return m, m.loadCmd()
			}
		case "/":
			m.searching = true
			m.searchInput = m.keyword
		case "f":
			m.keyword = ""
			m.category = nextCategory(m.category)
			m.cursor = 0
			m.detail = false
			m.loading = true
			return m, m.loadCmd()
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "c":
			if svc := m.selected(); svc != nil && svc.Salon != nil && svc.Salon.Address != "" {
				if err := clipboard.WriteAll(svc.Salon.Address); err != nil {
					m.errMsg = "couldn't copy to clipboard"
				} else {
					m.statusMsg = "address copied"
				}
			}
		case "o":
			if svc := m.selected(); svc != nil && svc.Salon != nil && svc.Salon.Website != "" {
				if err := browser.Open(svc.Salon.Website); err != nil {
					m.errMsg = "couldn't open browser"
				}
			}
		}
	}
	return m, nil
}

func (m browseModel) updateSearching(msg tea.KeyMsg) (browseModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.searchInput = ""
	case "enter":
		m.searching = false
		m.keyword = strings.TrimSpace(m.searchInput)
		m.cursor = 0
		m.detail = false
		if m.keyword == "" {
			// Blank search falls back to browsing; nothing to fetch for it.
			return m, m.loadCmd()
		}
		m.loading = true
		return m, m.loadCmd()
	default:
		m.searchInput = editRune(m.searchInput, msg.String())
	}
	return m, nil
}

func (m browseModel) selected() *domain.Service {
	if m.cursor < 0 || m.cursor >= len(m.services) {
		return nil
	}
	return &m.services[m.cursor]
}

func nextCategory(current string) string {
	if current == "" {
		return domain.Categories[0]
	}
	for i, c := range domain.Categories {
		if c == current {
			if i == len(domain.Categories)-1 {
				return ""
			}
			return domain.Categories[i+1]
		}
	}
	return ""
}

func (m browseModel) View() string {
	var sb strings.Builder

	filter := "all categories"
	if m.category != "" {
		filter = CategoryStyle(m.category).Render(m.category)
	}
	if m.keyword != "" {
		filter = "search: " + accentStyle.Render(m.keyword)
	}
	sb.WriteString("\n " + sectionHeaderStyle.Render("── BROWSE ──") + "  " + metaStyle.Render(filter) + "\n\n")

	if m.searching {
		sb.WriteString(" " + inputPromptStyle.Render("/ ") + normalStyle.Render(m.searchInput) + selectedStyle.Render("█") + "\n\n")
	}

	switch {
	case m.loading:
		sb.WriteString(" " + dimStyle.Render("loading…") + "\n")
		return sb.String()
	case m.errMsg != "":
		sb.WriteString(" " + errStyle.Render(m.errMsg) + dimStyle.Render("  (r to retry)") + "\n")
		return sb.String()
	case len(m.services) == 0:
		if m.keyword != "" {
			sb.WriteString(" " + dimStyle.Render("nothing matches “"+m.keyword+"”") + "\n")
		} else {
			sb.WriteString(" " + dimStyle.Render("no services listed yet") + "\n")
		}
		return sb.String()
	}

	if m.detail {
		if svc := m.selected(); svc != nil {
			sb.WriteString(renderServiceDetail(*svc))
		}
		return sb.String()
	}

	for i, svc := range m.services {
		cursor := "  "
		nameStyle := normalStyle
		if i == m.cursor {
			cursor = accentStyle.Render("> ")
			nameStyle = selectedStyle
		}
		salon := ""
		if svc.Salon != nil {
			salon = metaStyle.Render("  @ " + truncStr(svc.Salon.Name, 24))
		}
		sb.WriteString(fmt.Sprintf(" %s%s  %s  %s%s\n",
			cursor,
			nameStyle.Render(truncStr(svc.Name, 32)),
			CategoryStyle(svc.Category).Render(svc.Category),
			priceStyle.Render(fmt.Sprintf("$%.2f", svc.Price)),
			salon,
		))
	}

	if m.statusMsg != "" {
		sb.WriteString("\n " + okStyle.Render(m.statusMsg) + "\n")
	}
	return sb.String()
}

func renderServiceDetail(svc domain.Service) string {
	var sb strings.Builder
	sb.WriteString(" " + selectedStyle.Render(svc.Name) + "  " + CategoryStyle(svc.Category).Render(svc.Category) + "\n\n")
	sb.WriteString(" " + priceStyle.Render(fmt.Sprintf("$%.2f", svc.Price)))
	if svc.DurationMinutes > 0 {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("  ·  %d min", svc.DurationMinutes)))
	}
	sb.WriteString("\n")
	if svc.Description != "" {
		sb.WriteString("\n " + normalStyle.Render(svc.Description) + "\n")
	}
	if svc.Salon != nil {
		sb.WriteString("\n " + sectionHeaderStyle.Render("salon") + "\n")
		sb.WriteString("   " + normalStyle.Render(svc.Salon.Name) + "\n")
		if svc.Salon.Address != "" {
			line := svc.Salon.Address
			if svc.Salon.City != "" {
				line += ", " + svc.Salon.City
			}
			sb.WriteString("   " + dimStyle.Render(line) + "\n")
		}
		if svc.Salon.Phone != "" {
			sb.WriteString("   " + dimStyle.Render(svc.Salon.Phone) + "\n")
		}
		if svc.Salon.Website != "" {
			sb.WriteString("   " + accentStyle.Render(svc.Salon.Website) + "\n")
		}
	}
	if !svc.CreatedAt.IsZero() {
		sb.WriteString("\n " + metaStyle.Render("listed "+formatTime(svc.CreatedAt)) + "\n")
	}
	return sb.String()
}
