package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/velourhq/velour/internal/auth"
	"github.com/velourhq/velour/pkg/client"
	"github.com/velourhq/velour/pkg/domain"
)

type view int

const (
	viewLogin view = iota
	viewRegister
	viewOTP
	viewBrowse
	viewServices
	viewProfile
)

// stack is the screen stack the navigator selected for this session.
type stack int

const (
	stackAuth stack = iota
	stackConsumer
	stackSalon
)

// sessionStartedMsg is emitted by the login and OTP screens once a session
// is established; the app switches to the matching role stack.
type sessionStartedMsg struct {
	sess domain.Session
}

// otpPendingMsg moves the auth stack to the OTP screen for a pending
// registration. The original register input is kept so the code can be
// resent without retyping the form.
type otpPendingMsg struct {
	challenge domain.OTPChallenge
	resend    auth.RegisterInput
}

// showLoginMsg and showRegisterMsg switch screens within the auth stack.
type showLoginMsg struct{ notice string }
type showRegisterMsg struct{}

// loggedOutMsg returns the app to the auth stack.
type loggedOutMsg struct{ err error }

// App is the root Bubbletea model. The stack is chosen once from the stored
// session at startup and changes only on interactive auth transitions.
type App struct {
	gw       *auth.Gateway
	api      *client.Client
	sess     domain.Session
	stack    stack
	view     view
	login    loginModel
	register registerModel
	otp      otpModel
	browse   browseModel
	services servicesModel
	profile  profileModel
	helpOpen bool
	width    int
	height   int
	frame    int // logo shimmer animation frame
}

// NewApp creates the root model, routing to the stack that matches the
// stored session: no token -> login, consumer -> browse, salon -> services.
func NewApp(gw *auth.Gateway, api *client.Client, sess domain.Session) App {
	a := App{
		gw:       gw,
		api:      api,
		sess:     sess,
		login:    newLoginModel(gw),
		register: newRegisterModel(gw),
		browse:   newBrowseModel(api),
		services: newServicesModel(api),
	}
	switch {
	case !sess.Authenticated():
		a.stack = stackAuth
		a.view = viewLogin
	case sess.Role == domain.RoleSalon:
		a.stack = stackSalon
		a.view = viewServices
		a.profile = newProfileModel(gw, api, domain.RoleSalon)
	default:
		a.stack = stackConsumer
		a.view = viewBrowse
		a.profile = newProfileModel(gw, api, domain.RoleConsumer)
	}
	return a
}

func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{shimmerTickCmd()}
	switch a.view {
	case viewBrowse:
		cmds = append(cmds, a.browse.Init())
	case viewServices:
		cmds = append(cmds, a.services.Init())
	}
	return tea.Batch(cmds...)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Chrome: header(2) + tabs(1) + help(1) = 4 lines
		bodyMsg := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 4}
		a.browse, _ = a.browse.Update(bodyMsg)
		a.services, _ = a.services.Update(bodyMsg)
		a.profile, _ = a.profile.Update(bodyMsg)
		return a, nil

	case shimmerTickMsg:
		a.frame++
		return a, shimmerTickCmd()

	case sessionStartedMsg:
		a.sess = msg.sess
		a.helpOpen = false
		if msg.sess.Role == domain.RoleSalon {
			a.stack = stackSalon
			a.view = viewServices
			a.profile = newProfileModel(a.gw, a.api, domain.RoleSalon)
			return a, a.services.Init()
		}
		a.stack = stackConsumer
		a.view = viewBrowse
		a.profile = newProfileModel(a.gw, a.api, domain.RoleConsumer)
		return a, a.browse.Init()

	case otpPendingMsg:
		a.view = viewOTP
		a.otp = newOTPModel(a.gw, msg.challenge, msg.resend)
		return a, nil

	case showRegisterMsg:
		a.view = viewRegister
		a.register = newRegisterModel(a.gw)
		return a, nil

	case showLoginMsg:
		a.view = viewLogin
		a.login = newLoginModel(a.gw)
		a.login.notice = msg.notice
		return a, nil

	case loggedOutMsg:
		a.sess = domain.Session{}
		a.stack = stackAuth
		a.view = viewLogin
		a.login = newLoginModel(a.gw)
		if msg.err != nil {
			a.login.errMsg = errText(msg.err)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.helpOpen {
			switch msg.String() {
			case "h", "esc", "q":
				a.helpOpen = false
			}
			return a, nil
		}
		// Global keys apply only when no screen is capturing text input.
		if !a.isEditing() {
			switch msg.String() {
			case "q":
				return a, tea.Quit
			case "h":
				a.helpOpen = true
				return a, nil
			case "1":
				if a.stack == stackConsumer && a.view != viewBrowse {
					a.view = viewBrowse
					return a, a.browse.Init()
				}
				if a.stack == stackSalon && a.view != viewServices {
					a.view = viewServices
					return a, a.services.Init()
				}
				return a, nil
			case "2":
				if a.stack != stackAuth && a.view != viewProfile {
					a.view = viewProfile
					return a, a.profile.Init()
				}
				return a, nil
			}
		}
	}

	var cmd tea.Cmd
	switch a.view {
	case viewLogin:
		a.login, cmd = a.login.Update(msg)
	case viewRegister:
		a.register, cmd = a.register.Update(msg)
	case viewOTP:
		a.otp, cmd = a.otp.Update(msg)
	case viewBrowse:
		a.browse, cmd = a.browse.Update(msg)
	case viewServices:
		a.services, cmd = a.services.Update(msg)
	case viewProfile:
		a.profile, cmd = a.profile.Update(msg)
	}
	return a, cmd
}

// isEditing reports whether the active screen is capturing text input, in
// which case global single-letter keys must not fire.
func (a App) isEditing() bool {
	switch a.view {
	case viewLogin, viewRegister, viewOTP:
		return true
	case viewBrowse:
		return a.browse.searching
	case viewServices:
		return a.services.state != svcNormal
	case viewProfile:
		return a.profile.editing
	}
	return false
}

func (a App) View() string {
	logo := renderShimmerLogo(a.frame)

	roleLine := ""
	if a.sess.Authenticated() {
		roleLine = metaStyle.Render(string(a.sess.Role) + " account")
	}

	logoWidth := lipgloss.Width(logo)
	logoPad := (a.width - logoWidth) / 2
	if logoPad < 0 {
		logoPad = 0
	}
	header := strings.Repeat(" ", logoPad) + logo
	if roleLine != "" {
		rolePad := (a.width - lipgloss.Width(roleLine)) / 2
		if rolePad < 0 {
			rolePad = 0
		}
		header += "\n" + strings.Repeat(" ", rolePad) + roleLine
	} else {
		header += "\n"
	}

	var body, help string
	switch a.view {
	case viewLogin:
		body = a.login.View()
		help = " " + helpEntry("tab", "next field") + "  " + helpEntry("←/→", "role") + "  " + helpEntry("enter", "log in") + "  " + helpEntry("ctrl+r", "register") + "  " + helpEntry("ctrl+c", "quit")
	case viewRegister:
		body = a.register.View()
		help = " " + helpEntry("tab", "next field") + "  " + helpEntry("←/→", "role") + "  " + helpEntry("enter", "submit") + "  " + helpEntry("esc", "back") + "  " + helpEntry("ctrl+c", "quit")
	case viewOTP:
		body = a.otp.View()
		help = " " + helpEntry("enter", "verify") + "  " + helpEntry("ctrl+r", "resend") + "  " + helpEntry("esc", "back") + "  " + helpEntry("ctrl+c", "quit")
	case viewBrowse:
		body = a.browse.View()
		if a.browse.searching {
			help = " " + helpEntry("enter", "search") + "  " + helpEntry("esc", "cancel")
		} else {
			help = " " + helpEntry("1-2", "tabs") + "  " + helpEntry("j/k", "nav") + "  " + helpEntry("/", "search") + "  " + helpEntry("f", "category") + "  " + helpEntry("c", "copy") + "  " + helpEntry("o", "website") + "  " + helpEntry("h", "help") + "  " + helpEntry("q", "quit")
		}
	case viewServices:
		body = a.services.View()
		help = " " + helpEntry("1-2", "tabs") + "  " + a.services.helpKeys()
	case viewProfile:
		body = a.profile.View()
		help = " " + helpEntry("1-2", "tabs") + "  " + a.profile.helpKeys()
	}

	if a.helpOpen {
		body = helpView(a.stack)
		help = " " + helpEntry("esc", "close")
	}

	tabBar := a.renderTabs()

	// Chrome budget: header(2) + tabs(1) + help(1) = 4 lines + body
	body = strings.TrimRight(truncateToHeight(body, a.height-4), "\n")

	return fmt.Sprintf("%s\n%s\n%s\n%s", header, tabBar, body, help)
}

func (a App) renderTabs() string {
	type tabEntry struct {
		key  string
		name string
		v    view
	}
	var tabs []tabEntry
	switch a.stack {
	case stackConsumer:
		tabs = []tabEntry{{"1", "Browse", viewBrowse}, {"2", "Profile", viewProfile}}
	case stackSalon:
		tabs = []tabEntry{{"1", "Services", viewServices}, {"2", "Profile", viewProfile}}
	default:
		return ""
	}

	colWidth := a.width / len(tabs)
	var bar strings.Builder
	for _, t := range tabs {
		var label string
		if t.v == a.view {
			label = accentStyle.Render(t.key) + " " + selectedStyle.Underline(true).Render(t.name)
		} else {
			label = metaStyle.Render(t.key) + " " + dimStyle.Render(t.name)
		}
		labelWidth := lipgloss.Width(label)
		leftPad := (colWidth - labelWidth) / 2
		if leftPad < 0 {
			leftPad = 0
		}
		rightPad := colWidth - labelWidth - leftPad
		if rightPad < 0 {
			rightPad = 0
		}
		bar.WriteString(strings.Repeat(" ", leftPad) + label + strings.Repeat(" ", rightPad))
	}
	return bar.String()
}

func helpView(s stack) string {
	var sb strings.Builder
	sb.WriteString("\n " + sectionHeaderStyle.Render("── KEYS ──") + "\n")
	write := func(key, desc string) {
		fmt.Fprintf(&sb, "   %s  %s\n", helpKeyStyle.Render(fmt.Sprintf("%-8s", key)), helpLabelStyle.Render(desc))
	}
	switch s {
	case stackConsumer:
		write("1 / 2", "switch between Browse and Profile")
		write("/", "keyword search")
		write("f", "cycle category filter")
		write("c", "copy salon address")
		write("o", "open salon website")
	case stackSalon:
		write("1 / 2", "switch between Services and Profile")
		write("a", "add a service")
		write("e", "edit the selected service")
		write("d", "delete the selected service")
	}
	write("j / k", "move the cursor")
	write("q", "quit")
	return sb.String()
}
