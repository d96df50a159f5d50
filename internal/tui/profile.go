package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/velourhq/velour/internal/auth"
	"github.com/velourhq/velour/pkg/client"
	"github.com/velourhq/velour/pkg/domain"
)

type profState int

const (
	profNormal profState = iota
	profEditing
	profDeleting
)

type profLoadedMsg struct {
	consumer *domain.ConsumerProfile
	salon    *domain.SalonProfile
	err      error
}

type profSavedMsg struct{ err error }
type profDeletedMsg struct{ err error }

// profileField is one labelled entry of the edit form. The form is driven by
// a field list so consumer and salon profiles share the same machinery.
type profileField struct {
	label string
	value string
}

// profileModel shows and edits the signed-in account's profile. The field
// set depends on the role the session was established with.
type profileModel struct {
	gw   *auth.Gateway
	api  *client.Client
	role domain.Role

	consumer *domain.ConsumerProfile
	salon    *domain.SalonProfile
	exists   bool

	state   profState
	loading bool
	errMsg  string
	notice  string

	fields    []profileField
	imagePath string
	focus     int
	saving    bool
	editing   bool // mirrors state for the root model's key routing
}

func newProfileModel(gw *auth.Gateway, api *client.Client, role domain.Role) profileModel {
	return profileModel{gw: gw, api: api, role: role}
}

func (m profileModel) Init() tea.Cmd {
	api, role := m.api, m.role
	return func() tea.Msg {
		ctx := context.Background()
		if role == domain.RoleSalon {
			p, err := api.GetSalonProfile(ctx)
			return profLoadedMsg{salon: p, err: err}
		}
		p, err := api.GetConsumerProfile(ctx)
		return profLoadedMsg{consumer: p, err: err}
	}
}

func (m profileModel) Update(msg tea.Msg) (profileModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, nil

	case profLoadedMsg:
		m.loading = false
		if msg.err != nil {
			// A 404 just means the profile hasn't been created yet.
			if client.IsStatus(msg.err, 404) {
				m.exists = false
				m.consumer, m.salon = nil, nil
				m.errMsg = ""
				return m, nil
			}
			m.errMsg = errText(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.exists = true
		m.consumer = msg.consumer
		m.salon = msg.salon
		return m, nil

	case profSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = errText(msg.err)
			return m, nil
		}
		m.state = profNormal
		m.editing = false
		m.errMsg = ""
		m.notice = "profile saved"
		m.loading = true
		return m, m.Init()

	case profDeletedMsg:
		m.saving = false
		m.state = profNormal
		if msg.err != nil {
			m.errMsg = errText(msg.err)
			return m, nil
		}
		m.exists = false
		m.consumer, m.salon = nil, nil
		m.errMsg = ""
		m.notice = "profile deleted — your account is still active"
		return m, nil

	case tea.KeyMsg:
		m.notice = ""
		switch m.state {
		case profNormal:
			return m.updateNormal(msg)
		case profEditing:
			return m.updateForm(msg)
		case profDeleting:
			return m.updateDeleting(msg)
		}
	}
	return m, nil
}

func (m profileModel) updateNormal(msg tea.KeyMsg) (profileModel, tea.Cmd) {
	switch msg.String() {
	case "r":
		m.loading = true
		return m, m.Init()
	case "e":
		m.state = profEditing
		m.editing = true
		m.focus = 0
		m.imagePath = ""
		m.errMsg = ""
		m.fields = m.formFields()
	case "x":
		if m.exists {
			m.state = profDeleting
		}
	case "l":
		gw := m.gw
		return m, func() tea.Msg {
			return loggedOutMsg{err: gw.Logout()}
		}
	}
	return m, nil
}

// formFields builds the edit form, pre-filled from the loaded profile.
func (m profileModel) formFields() []profileField {
	if m.role == domain.RoleSalon {
		fields := []profileField{
			{label: "salon name"},
			{label: "address"},
			{label: "city"},
			{label: "phone"},
			{label: "website"},
			{label: "about"},
		}
		if m.salon != nil {
			fields[0].value = m.salon.SalonName
			fields[1].value = m.salon.Address
			fields[2].value = m.salon.City
			fields[3].value = m.salon.Phone
			fields[4].value = m.salon.Website
			fields[5].value = m.salon.About
		}
		return fields
	}
	fields := []profileField{
		{label: "full name"},
		{label: "phone"},
		{label: "city"},
	}
	if m.consumer != nil {
		fields[0].value = m.consumer.FullName
		fields[1].value = m.consumer.Phone
		fields[2].value = m.consumer.City
	}
	return fields
}

func (m profileModel) updateForm(msg tea.KeyMsg) (profileModel, tea.Cmd) {
	if m.saving {
		return m, nil
	}
	// The image path rides along as an extra field after the text fields.
	total := len(m.fields) + 1
	switch msg.String() {
	case "esc":
		m.state = profNormal
		m.editing = false
		m.errMsg = ""
	case "tab", "down":
		m.focus = (m.focus + 1) % total
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + total) % total
	case "enter":
		if m.focus == total-1 {
			return m.submitForm()
		}
		m.focus = (m.focus + 1) % total
	default:
		m.errMsg = ""
		if m.focus < len(m.fields) {
			m.fields[m.focus].value = editRune(m.fields[m.focus].value, msg.String())
		} else {
			m.imagePath = editRune(m.imagePath, msg.String())
		}
	}
	return m, nil
}

func (m profileModel) submitForm() (profileModel, tea.Cmd) {
	if strings.TrimSpace(m.fields[0].value) == "" {
		m.errMsg = m.fields[0].label + " is required"
		return m, nil
	}

	api, role := m.api, m.role
	exists := m.exists
	imagePath := strings.TrimSpace(m.imagePath)
	values := make([]string, len(m.fields))
	for i, f := range m.fields {
		values[i] = strings.TrimSpace(f.value)
	}

	m.saving = true
	m.errMsg = ""
	return m, func() tea.Msg {
		ctx := context.Background()

		var attachment *client.FileAttachment
		if imagePath != "" {
			f, err := os.Open(imagePath)
			if err != nil {
				return profSavedMsg{err: fmt.Errorf("open image: %w", err)}
			}
			defer f.Close() //nolint:errcheck
			field := "photo"
			if role == domain.RoleSalon {
				field = "image"
			}
			attachment = &client.FileAttachment{Field: field, Name: filepath.Base(imagePath), Reader: f}
		}

		var err error
		if role == domain.RoleSalon {
			req := client.SalonProfileRequest{
				SalonName: values[0],
				Address:   values[1],
				City:      values[2],
				Phone:     values[3],
				Website:   values[4],
				About:     values[5],
			}
			if exists {
				_, err = api.UpdateSalonProfile(ctx, req, attachment)
			} else {
				_, err = api.CreateSalonProfile(ctx, req, attachment)
			}
		} else {
			req := client.ConsumerProfileRequest{
				FullName: values[0],
				Phone:    values[1],
				City:     values[2],
			}
			if exists {
				_, err = api.UpdateConsumerProfile(ctx, req, attachment)
			} else {
				_, err = api.CreateConsumerProfile(ctx, req, attachment)
			}
		}
		return profSavedMsg{err: err}
	}
}

func (m profileModel) updateDeleting(msg tea.KeyMsg) (profileModel, tea.Cmd) {
	if m.saving {
		return m, nil
	}
	switch msg.String() {
	case "y":
		api, role := m.api, m.role
		m.saving = true
		return m, func() tea.Msg {
			ctx := context.Background()
			if role == domain.RoleSalon {
				return profDeletedMsg{err: api.DeleteSalonProfile(ctx)}
			}
			return profDeletedMsg{err: api.DeleteConsumerProfile(ctx)}
		}
	case "n", "esc":
		m.state = profNormal
	}
	return m, nil
}

func (m profileModel) helpKeys() string {
	switch m.state {
	case profEditing:
		return helpEntry("tab", "next field") + "  " + helpEntry("enter", "save") + "  " + helpEntry("esc", "cancel")
	case profDeleting:
		return helpEntry("y", "delete") + "  " + helpEntry("n", "keep")
	default:
		keys := helpEntry("e", "edit")
		if m.exists {
			keys += "  " + helpEntry("x", "delete")
		}
		return keys + "  " + helpEntry("l", "log out") + "  " + helpEntry("h", "help") + "  " + helpEntry("q", "quit")
	}
}

func (m profileModel) View() string {
	var sb strings.Builder
	sb.WriteString("\n " + sectionHeaderStyle.Render("── PROFILE ──") + "\n\n")

	switch m.state {
	case profEditing:
		return m.viewForm()
	case profDeleting:
		sb.WriteString(" " + errStyle.Render("delete your profile?") + "  " + dimStyle.Render("y / n") + "\n")
		sb.WriteString(" " + metaStyle.Render("your account and login stay intact") + "\n")
		return sb.String()
	}

	switch {
	case m.loading:
		sb.WriteString(" " + dimStyle.Render("loading…") + "\n")
		return sb.String()
	case m.errMsg != "":
		sb.WriteString(" " + errStyle.Render(m.errMsg) + dimStyle.Render("  (r to retry)") + "\n")
		return sb.String()
	case !m.exists:
		sb.WriteString(" " + dimStyle.Render("no profile yet — press e to create one") + "\n")
		if m.notice != "" {
			sb.WriteString("\n " + okStyle.Render(m.notice) + "\n")
		}
		return sb.String()
	}

	line := func(label, value string) {
		if value == "" {
			return
		}
		sb.WriteString(" " + dimStyle.Render(fmt.Sprintf("%-12s", label)) + normalStyle.Render(value) + "\n")
	}

	if m.role == domain.RoleSalon && m.salon != nil {
		sb.WriteString(" " + selectedStyle.Render(m.salon.SalonName) + "\n\n")
		line("email", m.salon.Email)
		line("address", m.salon.Address)
		line("city", m.salon.City)
		line("phone", m.salon.Phone)
		line("website", m.salon.Website)
		line("image", m.salon.Image.URI())
		if m.salon.About != "" {
			sb.WriteString("\n " + normalStyle.Render(m.salon.About) + "\n")
		}
		if m.salon.Status != "" {
			sb.WriteString("\n " + metaStyle.Render("status: "+string(m.salon.Status)) + "\n")
		}
	} else if m.consumer != nil {
		sb.WriteString(" " + selectedStyle.Render(m.consumer.FullName) + "\n\n")
		line("email", m.consumer.Email)
		line("phone", m.consumer.Phone)
		line("city", m.consumer.City)
		line("photo", m.consumer.Photo.URI())
	}

	if m.notice != "" {
		sb.WriteString("\n " + okStyle.Render(m.notice) + "\n")
	}
	return sb.String()
}

func (m profileModel) viewForm() string {
	var sb strings.Builder
	title := "── EDIT PROFILE ──"
	if !m.exists {
		title = "── CREATE PROFILE ──"
	}
	sb.WriteString("\n " + sectionHeaderStyle.Render(title) + "\n\n")

	for i, f := range m.fields {
		sb.WriteString(renderField(f.label, f.value, m.focus == i, false))
	}
	imageLabel := "photo file"
	if m.role == domain.RoleSalon {
		imageLabel = "image file"
	}
	sb.WriteString(renderField(imageLabel, m.imagePath, m.focus == len(m.fields), false))

	switch {
	case m.saving:
		sb.WriteString("\n " + dimStyle.Render("saving…") + "\n")
	case m.errMsg != "":
		sb.WriteString("\n " + errStyle.Render(m.errMsg) + "\n")
	}
	return sb.String()
}
