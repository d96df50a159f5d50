package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/velourhq/velour/pkg/client"
	"github.com/velourhq/velour/pkg/domain"
)

type svcState int

const (
	svcNormal svcState = iota
	svcAdding
	svcEditing
	svcDeleting
)

const (
	svcFieldName = iota
	svcFieldCategory
	svcFieldPrice
	svcFieldDuration
	svcFieldDescription
	svcFieldImage
	svcFieldCount
)

type svcListLoadedMsg struct {
	services []domain.Service
	err      error
}

type svcSavedMsg struct{ err error }
type svcDeletedMsg struct{ err error }

// servicesModel is the salon's listing manager. It is a small state machine:
// normal list navigation, an add/edit form, and a delete confirmation.
type servicesModel struct {
	api      *client.Client
	services []domain.Service
	cursor   int
	state    svcState
	loading  bool
	errMsg   string

	// form fields
	editID      string // empty when adding
	name        string
	category    string
	price       string
	duration    string
	description string
	imagePath   string
	focus       int
	saving      bool
}

func newServicesModel(api *client.Client) servicesModel {
	return servicesModel{api: api}
}

func (m servicesModel) Init() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		services, err := api.ListServices(context.Background())
		return svcListLoadedMsg{services: services, err: err}
	}
}

func (m servicesModel) Update(msg tea.Msg) (servicesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, nil

	case svcListLoadedMsg:
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

	case svcSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = errText(msg.err)
			return m, nil
		}
		m.state = svcNormal
		m.errMsg = ""
		m.loading = true
		return m, m.Init()

	case svcDeletedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = errText(msg.err)
			m.state = svcNormal
			return m, nil
		}
		m.state = svcNormal
		m.errMsg = ""
		m.loading = true
		return m, m.Init()

	case tea.KeyMsg:
		switch m.state {
		case svcNormal:
			return m.updateNormal(msg)
		case svcAdding, svcEditing:
			return m.updateForm(msg)
		case svcDeleting:
			return m.updateDeleting(msg)
		}
	}
	return m, nil
}

func (m servicesModel) updateNormal(msg tea.KeyMsg) (servicesModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.services)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "r":
		m.loading = true
		return m, m.Init()
	case "a":
		m.state = svcAdding
		m.resetForm()
	case "e":
		if svc := m.selected(); svc != nil {
			m.state = svcEditing
			m.resetForm()
			m.editID = svc.ID.String()
			m.name = svc.Name
			m.category = svc.Category
			m.price = strconv.FormatFloat(svc.Price, 'f', -1, 64)
			if svc.DurationMinutes > 0 {
				m.duration = strconv.Itoa(svc.DurationMinutes)
			}
			m.description = svc.Description
		}
	case "d":
		if m.selected() != nil {
			m.state = svcDeleting
		}
	}
	return m, nil
}

func (m *servicesModel) resetForm() {
	m.editID = ""
	m.name = ""
	m.category = domain.Categories[0]
	m.price = ""
	m.duration = ""
	m.description = ""
	m.imagePath = ""
	m.focus = svcFieldName
	m.errMsg = ""
}

func (m servicesModel) updateForm(msg tea.KeyMsg) (servicesModel, tea.Cmd) {
	if m.saving {
		return m, nil
	}
	switch msg.String() {
	case "esc":
		m.state = svcNormal
		m.errMsg = ""
	case "tab", "down":
		m.focus = (m.focus + 1) % svcFieldCount
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + svcFieldCount) % svcFieldCount
	case "left", "right":
		if m.focus == svcFieldCategory {
			if msg.String() == "right" {
				m.category = nextValidCategory(m.category, 1)
			} else {
				m.category = nextValidCategory(m.category, -1)
			}
		}
	case "enter":
		if m.focus == svcFieldImage {
			return m.submitForm()
		}
		m.focus = (m.focus + 1) % svcFieldCount
	default:
		if m.focus == svcFieldCategory {
			return m, nil
		}
		m.errMsg = ""
		key := msg.String()
		switch m.focus {
		case svcFieldName:
			m.name = editRune(m.name, key)
		case svcFieldPrice:
			m.price = editNumeric(m.price, key)
		case svcFieldDuration:
			m.duration = editNumeric(m.duration, key)
		case svcFieldDescription:
			m.description = editRune(m.description, key)
		case svcFieldImage:
			m.imagePath = editRune(m.imagePath, key)
		}
	}
	return m, nil
}

// editNumeric is editRune restricted to digits and a decimal point.
func editNumeric(text, key string) string {
	if key == "backspace" {
		return editRune(text, key)
	}
	if len(key) == 1 && (key[0] >= '0' && key[0] <= '9' || key == ".") {
		return editRune(text, key)
	}
	return text
}

func (m servicesModel) submitForm() (servicesModel, tea.Cmd) {
	name := strings.TrimSpace(m.name)
	if name == "" {
		m.errMsg = "name is required"
		return m, nil
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(m.price), 64)
	if err != nil || price < 0 {
		m.errMsg = "price must be a non-negative number"
		return m, nil
	}
	duration := 0
	if d := strings.TrimSpace(m.duration); d != "" {
		duration, err = strconv.Atoi(d)
		if err != nil || duration < 0 {
			m.errMsg = "duration must be whole minutes"
			return m, nil
		}
	}

	req := client.ServiceRequest{
		Name:            name,
		Category:        m.category,
		Description:     strings.TrimSpace(m.description),
		Price:           price,
		DurationMinutes: duration,
	}

	imagePath := strings.TrimSpace(m.imagePath)
	api, editID := m.api, m.editID
	m.saving = true
	m.errMsg = ""
	return m, func() tea.Msg {
		ctx := context.Background()
		var image *client.FileAttachment
		if imagePath != "" {
			f, err := os.Open(imagePath)
			if err != nil {
				return svcSavedMsg{err: fmt.Errorf("open image: %w", err)}
			}
			defer f.Close() //nolint:errcheck
			image = &client.FileAttachment{Field: "image", Name: filepath.Base(imagePath), Reader: f}
		}
		if editID == "" {
			_, err := api.CreateService(ctx, req, image)
			return svcSavedMsg{err: err}
		}
		_, err := api.UpdateService(ctx, editID, req, image)
		return svcSavedMsg{err: err}
	}
}

func (m servicesModel) updateDeleting(msg tea.KeyMsg) (servicesModel, tea.Cmd) {
	if m.saving {
		return m, nil
	}
	switch msg.String() {
	case "y":
		svc := m.selected()
		if svc == nil {
			m.state = svcNormal
			return m, nil
		}
		api, id := m.api, svc.ID.String()
		m.saving = true
		return m, func() tea.Msg {
			return svcDeletedMsg{err: api.DeleteService(context.Background(), id)}
		}
	case "n", "esc":
		m.state = svcNormal
	}
	return m, nil
}

func (m servicesModel) selected() *domain.Service {
	if m.cursor < 0 || m.cursor >= len(m.services) {
		return nil
	}
	return &m.services[m.cursor]
}

func nextValidCategory(current string, dir int) string {
	for i, c := range domain.Categories {
		if c == current {
			n := len(domain.Categories)
			return domain.Categories[(i+dir+n)%n]
		}
	}
	return domain.Categories[0]
}

// helpKeys returns the state-appropriate portion of the help bar.
func (m servicesModel) helpKeys() string {
	switch m.state {
	case svcAdding, svcEditing:
		return helpEntry("tab", "next field") + "  " + helpEntry("enter", "save") + "  " + helpEntry("esc", "cancel")
	case svcDeleting:
		return helpEntry("y", "delete") + "  " + helpEntry("n", "keep")
	default:
		return helpEntry("j/k", "nav") + "  " + helpEntry("a", "add") + "  " + helpEntry("e", "edit") + "  " + helpEntry("d", "delete") + "  " + helpEntry("h", "help") + "  " + helpEntry("q", "quit")
	}
}

func (m servicesModel) View() string {
	var sb strings.Builder
	sb.WriteString("\n " + sectionHeaderStyle.Render("── SERVICES ──") + "\n\n")

	switch m.state {
	case svcAdding, svcEditing:
		return m.viewForm()
	case svcDeleting:
		if svc := m.selected(); svc != nil {
			sb.WriteString(" " + errStyle.Render("delete “"+svc.Name+"”?") + "  " + dimStyle.Render("y / n") + "\n")
		}
		return sb.String()
	}

	switch {
	case m.loading:
		sb.WriteString(" " + dimStyle.Render("loading…") + "\n")
		return sb.String()
	case m.errMsg != "":
		sb.WriteString(" " + errStyle.Render(m.errMsg) + dimStyle.Render("  (r to retry)") + "\n")
		return sb.String()
	case len(m.services) == 0:
		sb.WriteString(" " + dimStyle.Render("no services yet — press a to add your first listing") + "\n")
		return sb.String()
	}

	for i, svc := range m.services {
		cursor := "  "
		nameStyle := normalStyle
		if i == m.cursor {
			cursor = accentStyle.Render("> ")
			nameStyle = selectedStyle
		}
		duration := ""
		if svc.DurationMinutes > 0 {
			duration = dimStyle.Render(fmt.Sprintf("  %dmin", svc.DurationMinutes))
		}
		sb.WriteString(fmt.Sprintf(" %s%s  %s  %s%s\n",
			cursor,
			nameStyle.Render(truncStr(svc.Name, 32)),
			CategoryStyle(svc.Category).Render(svc.Category),
			priceStyle.Render(fmt.Sprintf("$%.2f", svc.Price)),
			duration,
		))
	}
	return sb.String()
}

func (m servicesModel) viewForm() string {
	var sb strings.Builder
	title := "── NEW SERVICE ──"
	if m.state == svcEditing {
		title = "── EDIT SERVICE ──"
	}
	sb.WriteString("\n " + sectionHeaderStyle.Render(title) + "\n\n")

	sb.WriteString(renderField("name", m.name, m.focus == svcFieldName, false))

	// Category is a picker, not free text.
	catPrompt := "  "
	if m.focus == svcFieldCategory {
		catPrompt = inputPromptStyle.Render("> ")
	}
	sb.WriteString(" " + catPrompt + dimStyle.Render("category: ") + CategoryStyle(m.category).Render(m.category))
	if m.focus == svcFieldCategory {
		sb.WriteString(dimStyle.Render("  ←/→"))
	}
	sb.WriteString("\n")

	sb.WriteString(renderField("price", m.price, m.focus == svcFieldPrice, false))
	sb.WriteString(renderField("duration (min)", m.duration, m.focus == svcFieldDuration, false))
	sb.WriteString(renderField("description", m.description, m.focus == svcFieldDescription, false))
	sb.WriteString(renderField("image file", m.imagePath, m.focus == svcFieldImage, false))

	switch {
	case m.saving:
		sb.WriteString("\n " + dimStyle.Render("saving…") + "\n")
	case m.errMsg != "":
		sb.WriteString("\n " + errStyle.Render(m.errMsg) + "\n")
	}
	return sb.String()
}
