package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/velourhq/velour/internal/auth"
	"github.com/velourhq/velour/pkg/domain"
)

const (
	loginFieldEmail = iota
	loginFieldPassword
	loginFieldCount
)

type loginDoneMsg struct {
	sess domain.Session
	err  error
}

type loginModel struct {
	gw       *auth.Gateway
	email    string
	password string
	role     domain.Role
	focus    int
	busy     bool
	errMsg   string
	notice   string
}

func newLoginModel(gw *auth.Gateway) loginModel {
	return loginModel{gw: gw, role: domain.RoleConsumer}
}

func (m loginModel) Init() tea.Cmd { return nil }

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = errText(msg.err)
			return m, nil
		}
		return m, func() tea.Msg { return sessionStartedMsg{sess: msg.sess} }

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down", "enter":
			if msg.String() == "enter" && m.focus == loginFieldPassword {
				return m.submit()
			}
			m.focus = (m.focus + 1) % loginFieldCount
		case "shift+tab", "up":
			m.focus = (m.focus - 1 + loginFieldCount) % loginFieldCount
		case "left", "right":
			m.role = otherRole(m.role)
		case "ctrl+r":
			return m, func() tea.Msg { return showRegisterMsg{} }
		default:
			m.errMsg = ""
			switch m.focus {
			case loginFieldEmail:
				m.email = editRune(m.email, msg.String())
			case loginFieldPassword:
				m.password = editRune(m.password, msg.String())
			}
		}
	}
	return m, nil
}

func (m loginModel) submit() (loginModel, tea.Cmd) {
	if strings.TrimSpace(m.email) == "" || m.password == "" {
		m.errMsg = "email and password are required"
		return m, nil
	}
	m.busy = true
	m.errMsg = ""
	gw, email, password, role := m.gw, m.email, m.password, m.role
	return m, func() tea.Msg {
		sess, err := gw.Login(context.Background(), email, password, role)
		return loginDoneMsg{sess: sess, err: err}
	}
}

func (m loginModel) View() string {
	var sb strings.Builder
	sb.WriteString("\n " + sectionHeaderStyle.Render("── LOG IN ──") + "\n\n")

	if m.notice != "" {
		sb.WriteString(" " + okStyle.Render(m.notice) + "\n\n")
	}

	sb.WriteString(renderField("email", m.email, m.focus == loginFieldEmail, false))
	sb.WriteString(renderField("password", m.password, m.focus == loginFieldPassword, true))
	sb.WriteString("\n " + renderRolePicker(m.role) + "\n")

	switch {
	case m.busy:
		sb.WriteString("\n " + dimStyle.Render("signing in…") + "\n")
	case m.errMsg != "":
		sb.WriteString("\n " + errStyle.Render(m.errMsg) + "\n")
	}

	sb.WriteString("\n " + metaStyle.Render("no account yet? press ctrl+r to register") + "\n")
	return sb.String()
}

func otherRole(r domain.Role) domain.Role {
	if r == domain.RoleSalon {
		return domain.RoleConsumer
	}
	return domain.RoleSalon
}

// renderField renders a labelled form input with a block cursor when focused.
func renderField(label, value string, focused, masked bool) string {
	shown := value
	if masked {
		shown = strings.Repeat("•", len([]rune(value)))
	}
	prompt := "  "
	if focused {
		prompt = inputPromptStyle.Render("> ")
		shown += selectedStyle.Render("█")
	} else if value == "" {
		shown = inputPlaceholderStyle.Render("…")
	}
	return " " + prompt + dimStyle.Render(label+": ") + normalStyle.Render(shown) + "\n"
}

// renderRolePicker renders the consumer/salon toggle.
func renderRolePicker(r domain.Role) string {
	consumer := dimStyle.Render("consumer")
	salon := dimStyle.Render("salon")
	if r == domain.RoleSalon {
		salon = accentStyle.Render("[salon]")
	} else {
		consumer = accentStyle.Render("[consumer]")
	}
	return dimStyle.Render("role:  ") + consumer + "   " + salon
}
