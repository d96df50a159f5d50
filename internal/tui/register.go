package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/velourhq/velour/internal/auth"
	"github.com/velourhq/velour/pkg/domain"
)

const (
	regFieldEmail = iota
	regFieldPassword
	regFieldLicense
)

type registerDoneMsg struct {
	input   auth.RegisterInput
	otpSent bool
	err     error
}

type registerModel struct {
	gw       *auth.Gateway
	email    string
	password string
	license  string
	role     domain.Role
	focus    int
	busy     bool
	errMsg   string
}

func newRegisterModel(gw *auth.Gateway) registerModel {
	return registerModel{gw: gw, role: domain.RoleConsumer}
}

func (m registerModel) Init() tea.Cmd { return nil }

func (m registerModel) fieldCount() int {
	if m.role == domain.RoleSalon {
		return 3
	}
	return 2
}

func (m registerModel) Update(msg tea.Msg) (registerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case registerDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = errText(msg.err)
			return m, nil
		}
		input := msg.input
		return m, func() tea.Msg {
			return otpPendingMsg{
				challenge: domain.OTPChallenge{Email: input.Email, Role: input.Role},
				resend:    input,
			}
		}

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return showLoginMsg{} }
		case "tab", "down", "enter":
			if msg.String() == "enter" && m.focus == m.fieldCount()-1 {
				return m.submit()
			}
			m.focus = (m.focus + 1) % m.fieldCount()
		case "shift+tab", "up":
			m.focus = (m.focus - 1 + m.fieldCount()) % m.fieldCount()
		case "left", "right":
			m.role = otherRole(m.role)
			if m.focus >= m.fieldCount() {
				m.focus = m.fieldCount() - 1
			}
		default:
			m.errMsg = ""
			switch m.focus {
			case regFieldEmail:
				m.email = editRune(m.email, msg.String())
			case regFieldPassword:
				m.password = editRune(m.password, msg.String())
			case regFieldLicense:
				m.license = editRune(m.license, msg.String())
			}
		}
	}
	return m, nil
}

func (m registerModel) submit() (registerModel, tea.Cmd) {
	input := auth.RegisterInput{
		Email:       strings.TrimSpace(m.email),
		Password:    m.password,
		Role:        m.role,
		LicensePath: strings.TrimSpace(m.license),
	}
	m.busy = true
	m.errMsg = ""
	gw := m.gw
	return m, func() tea.Msg {
		sent, err := gw.Register(context.Background(), input)
		return registerDoneMsg{input: input, otpSent: sent, err: err}
	}
}

func (m registerModel) View() string {
	var sb strings.Builder
	sb.WriteString("\n " + sectionHeaderStyle.Render("── CREATE ACCOUNT ──") + "\n\n")

	sb.WriteString(renderField("email", m.email, m.focus == regFieldEmail, false))
	sb.WriteString(renderField("password", m.password, m.focus == regFieldPassword, true))
	if m.role == domain.RoleSalon {
		sb.WriteString(renderField("license file", m.license, m.focus == regFieldLicense, false))
	}
	sb.WriteString("\n " + renderRolePicker(m.role) + "\n")

	if m.role == domain.RoleSalon {
		sb.WriteString("\n " + metaStyle.Render("salons must attach a business license and are reviewed before going live") + "\n")
	}

	switch {
	case m.busy:
		sb.WriteString("\n " + dimStyle.Render("creating account…") + "\n")
	case m.errMsg != "":
		sb.WriteString("\n " + errStyle.Render(m.errMsg) + "\n")
	}
	return sb.String()
}
