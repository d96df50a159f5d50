package tui

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/velourhq/velour/internal/auth"
	"github.com/velourhq/velour/pkg/domain"
)

type otpVerifiedMsg struct {
	sess domain.Session
	err  error
}

type otpResentMsg struct{ err error }

type otpModel struct {
	gw        *auth.Gateway
	challenge domain.OTPChallenge
	resend    auth.RegisterInput
	code      string
	busy      bool
	pending   bool // salon verified but awaiting manual approval
	errMsg    string
	notice    string
}

func newOTPModel(gw *auth.Gateway, challenge domain.OTPChallenge, resend auth.RegisterInput) otpModel {
	return otpModel{gw: gw, challenge: challenge, resend: resend}
}

func (m otpModel) Init() tea.Cmd { return nil }

func (m otpModel) Update(msg tea.Msg) (otpModel, tea.Cmd) {
	switch msg := msg.(type) {
	case otpVerifiedMsg:
		m.busy = false
		if errors.Is(msg.err, auth.ErrPendingApproval) {
			m.pending = true
			return m, nil
		}
		if msg.err != nil {
			m.errMsg = errText(msg.err)
			return m, nil
		}
		return m, func() tea.Msg { return sessionStartedMsg{sess: msg.sess} }

	case otpResentMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = errText(msg.err)
			return m, nil
		}
		m.notice = "a new code is on its way to " + m.challenge.Email
		return m, nil

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		if m.pending {
			switch msg.String() {
			case "enter", "esc":
				return m, func() tea.Msg {
					return showLoginMsg{notice: "your salon is awaiting review — you can log in once it's approved"}
				}
			}
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return showLoginMsg{} }
		case "enter":
			return m.submit()
		case "ctrl+r":
			m.busy = true
			m.errMsg = ""
			m.notice = ""
			gw, input := m.gw, m.resend
			return m, func() tea.Msg {
				_, err := gw.Register(context.Background(), input)
				return otpResentMsg{err: err}
			}
		case "backspace":
			if len(m.code) > 0 {
				m.code = m.code[:len(m.code)-1]
			}
		default:
			s := msg.String()
			if len(s) == 1 && s[0] >= '0' && s[0] <= '9' && len(m.code) < 6 {
				m.errMsg = ""
				m.code += s
			}
		}
	}
	return m, nil
}

func (m otpModel) submit() (otpModel, tea.Cmd) {
	m.busy = true
	m.errMsg = ""
	m.notice = ""
	gw, challenge, code := m.gw, m.challenge, m.code
	return m, func() tea.Msg {
		sess, err := gw.VerifyOTP(context.Background(), challenge.Email, code, challenge.Role)
		return otpVerifiedMsg{sess: sess, err: err}
	}
}

func (m otpModel) View() string {
	var sb strings.Builder
	sb.WriteString("\n " + sectionHeaderStyle.Render("── VERIFY ──") + "\n\n")

	if m.pending {
		sb.WriteString(" " + okStyle.Render("code accepted") + "\n\n")
		sb.WriteString(" " + normalStyle.Render("Your salon account is now waiting for a manual review.") + "\n")
		sb.WriteString(" " + normalStyle.Render("We'll email "+m.challenge.Email+" once it's approved.") + "\n\n")
		sb.WriteString(" " + metaStyle.Render("press enter to return to the login screen") + "\n")
		return sb.String()
	}

	sb.WriteString(" " + normalStyle.Render("We sent a 6-digit code to ") + accentStyle.Render(m.challenge.Email) + "\n\n")

	// Render the code as spaced digit slots.
	var slots []string
	for i := 0; i < 6; i++ {
		if i < len(m.code) {
			slots = append(slots, selectedStyle.Render(string(m.code[i])))
		} else if i == len(m.code) {
			slots = append(slots, accentStyle.Render("_"))
		} else {
			slots = append(slots, dimStyle.Render("_"))
		}
	}
	sb.WriteString("   " + strings.Join(slots, " ") + "\n")

	switch {
	case m.busy:
		sb.WriteString("\n " + dimStyle.Render("checking…") + "\n")
	case m.errMsg != "":
		sb.WriteString("\n " + errStyle.Render(m.errMsg) + "\n")
	case m.notice != "":
		sb.WriteString("\n " + okStyle.Render(m.notice) + "\n")
	}
	return sb.String()
}
