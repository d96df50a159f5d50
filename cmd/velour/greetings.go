package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/lipgloss"
)

var velourGreetings = [...]string{
	"Every chair in the city is taken except the one with your name on it.",
	"Someone just booked a balayage in the time it took you to read this.",
	"Your roots called. They're filing a complaint.",
	"The scissors are sharpened. The kettle is on. You are not here.",
	"Walk-ins welcome. Walk-aways, we take personally.",
	"A fresh cut fixes 60% of problems. The other 40% need a spa day.",
	"The best stylists don't advertise. They're all in here.",
	"You've been meaning to book that appointment for three weeks now.",
	"Split ends wait for no one. Neither do the good time slots.",
	"Somewhere a barber just flicked a cape like a matador. You missed it.",
	"Self-care is not a reward. It's maintenance. Book the slot.",
	"The mirror is kind in here. The lighting, professionally flattering.",
}

func printHelp() {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#e8a0b4")).
		Bold(true).
		Render("V E L O U R")

	quote := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Italic(true).
		Render(`"Every salon in the city, one terminal away."`)

	cmdStyle := lipgloss.NewStyle().Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	commands := []struct{ cmd, desc string }{
		{"velour", "Open the app (interactive TUI)"},
		{"velour login", "Open straight on the login screen"},
		{"velour status", "Show who is signed in"},
		{"velour logout", "Clear your session"},
		{"velour --version", "Show version"},
		{"velour help", "You are here"},
	}

	fmt.Printf("\n  %s\n\n  %s\n\n  Commands:\n", title, quote)
	for _, c := range commands {
		fmt.Printf("    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-18s", c.cmd)), descStyle.Render(c.desc))
	}
	url := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render("https://velour.app")
	fmt.Printf("\n  %s\n\n", url)
}

func printVelourGreeting() {
	msg := velourGreetings[rand.IntN(len(velourGreetings))]

	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#e8a0b4")).
		Bold(true).
		Render("VELOUR")

	quote := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Italic(true).
		Render(msg)

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Render("To sign in: velour")

	fmt.Printf("\n%s\n\n%s\n\n%s\n\n", title, quote, hint)
}
