package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/velourhq/velour/pkg/client"
	"github.com/velourhq/velour/pkg/domain"
)

func newTestServices() servicesModel {
	return newServicesModel(client.New("http://127.0.0.1:0", "tok"))
}

func TestServicesAddForm(t *testing.T) {
	m := newTestServices()

	m, _ = m.Update(keyMsg("a"))
	if m.state != svcAdding {
		t.Fatalf("state = %v, want adding", m.state)
	}
	if m.category != domain.Categories[0] {
		t.Fatalf("default category = %q", m.category)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != svcNormal {
		t.Fatal("esc should cancel the form")
	}
}

func TestServicesFormValidation(t *testing.T) {
	m := newTestServices()
	m, _ = m.Update(keyMsg("a"))

	// Submit fires from the last field.
	m.focus = svcFieldImage
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("empty form should not submit")
	}
	if m.errMsg == "" {
		t.Fatal("expected a name error")
	}

	m.name = "Cut"
	m.price = "abc." // editNumeric blocks this, but submit revalidates
	m.focus = svcFieldImage
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("bad price should not submit")
	}
	if m.errMsg == "" {
		t.Fatal("expected a price error")
	}
}

func TestServicesCategoryPicker(t *testing.T) {
	m := newTestServices()
	m, _ = m.Update(keyMsg("a"))
	m.focus = svcFieldCategory

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.category != domain.Categories[1] {
		t.Fatalf("category = %q, want %q", m.category, domain.Categories[1])
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.category != domain.Categories[0] {
		t.Fatalf("category = %q, want %q", m.category, domain.Categories[0])
	}

	// Wraps at both ends.
	if got := nextValidCategory(domain.Categories[len(domain.Categories)-1], 1); got != domain.Categories[0] {
		t.Fatalf("forward wrap = %q", got)
	}
	if got := nextValidCategory(domain.Categories[0], -1); got != domain.Categories[len(domain.Categories)-1] {
		t.Fatalf("backward wrap = %q", got)
	}
}

func TestServicesEditPrefillsForm(t *testing.T) {
	m := newTestServices()
	m.services = []domain.Service{{
		ID:              uuid.New(),
		Name:            "Balayage",
		Category:        "Coloring",
		Price:           120.50,
		DurationMinutes: 90,
		Description:     "Full head",
	}}

	m, _ = m.Update(keyMsg("e"))
	if m.state != svcEditing {
		t.Fatalf("state = %v, want editing", m.state)
	}
	if m.editID != m.services[0].ID.String() {
		t.Fatalf("editID = %q", m.editID)
	}
	if m.name != "Balayage" || m.category != "Coloring" || m.price != "120.5" || m.duration != "90" {
		t.Fatalf("prefill = %q/%q/%q/%q", m.name, m.category, m.price, m.duration)
	}
}

func TestServicesDeleteConfirmation(t *testing.T) {
	m := newTestServices()
	m.services = []domain.Service{{ID: uuid.New(), Name: "Cut"}}

	m, _ = m.Update(keyMsg("d"))
	if m.state != svcDeleting {
		t.Fatalf("state = %v, want deleting", m.state)
	}

	m, cmd := m.Update(keyMsg("n"))
	if m.state != svcNormal {
		t.Fatal("n should cancel the delete")
	}
	if cmd != nil {
		t.Fatal("cancel should not hit the network")
	}

	m, _ = m.Update(keyMsg("d"))
	m, cmd = m.Update(keyMsg("y"))
	if cmd == nil {
		t.Fatal("y should fire the delete command")
	}
	if !m.saving {
		t.Fatal("expected saving state while the delete runs")
	}
}

func TestServicesDeleteWithoutSelection(t *testing.T) {
	m := newTestServices()
	m, _ = m.Update(keyMsg("d"))
	if m.state != svcNormal {
		t.Fatal("delete with no services should be a no-op")
	}
}
