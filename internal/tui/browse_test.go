package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/velourhq/velour/pkg/client"
	"github.com/velourhq/velour/pkg/domain"
)

func newTestBrowse() browseModel {
	return newBrowseModel(client.New("http://127.0.0.1:0", "tok"))
}

func TestNextCategoryCycles(t *testing.T) {
	c := ""
	seen := map[string]bool{}
	for range domain.Categories {
		c = nextCategory(c)
		if !domain.ValidCategory(c) {
			t.Fatalf("nextCategory returned unknown category %q", c)
		}
		if seen[c] {
			t.Fatalf("category %q repeated before the cycle completed", c)
		}
		seen[c] = true
	}
	if c = nextCategory(c); c != "" {
		t.Fatalf("cycle should return to all-categories, got %q", c)
	}
}

func TestBrowseSearchFlow(t *testing.T) {
	m := newTestBrowse()

	m, _ = m.Update(keyMsg("/"))
	if !m.searching {
		t.Fatal("expected search input to open")
	}

	for _, r := range "balayage" {
		m, _ = m.Update(keyMsg(string(r)))
	}
	if m.searchInput != "balayage" {
		t.Fatalf("searchInput = %q", m.searchInput)
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.searching {
		t.Fatal("search input should close on enter")
	}
	if m.keyword != "balayage" {
		t.Fatalf("keyword = %q", m.keyword)
	}
	if cmd == nil {
		t.Fatal("expected a load command")
	}
}

func TestBrowseSearchCancel(t *testing.T) {
	m := newTestBrowse()
	m, _ = m.Update(keyMsg("/"))
	m, _ = m.Update(keyMsg("x"))
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.searching || m.keyword != "" {
		t.Fatal("esc should cancel the search without committing")
	}
	if cmd != nil {
		t.Fatal("cancelling should not trigger a fetch")
	}
}

func TestBrowseLoadResult(t *testing.T) {
	m := newTestBrowse()
	m.loading = true
	m.cursor = 5

	services := []domain.Service{{Name: "Cut"}, {Name: "Color"}}
	m, _ = m.Update(browseLoadedMsg{services: services})
	if m.loading {
		t.Fatal("loading should clear")
	}
	if len(m.services) != 2 {
		t.Fatalf("services = %d", len(m.services))
	}
	if m.cursor != 0 {
		t.Fatalf("cursor = %d, want clamped to 0", m.cursor)
	}

	m, _ = m.Update(browseLoadedMsg{err: errors.New("boom")})
	if m.errMsg == "" {
		t.Fatal("expected an error message")
	}
}

func TestBrowseCategoryKeyResetsKeyword(t *testing.T) {
	m := newTestBrowse()
	m.keyword = "balayage"

	m, cmd := m.Update(keyMsg("f"))
	if m.keyword != "" {
		t.Fatal("category filtering should drop the active keyword")
	}
	if m.category != domain.Categories[0] {
		t.Fatalf("category = %q", m.category)
	}
	if cmd == nil {
		t.Fatal("expected a reload command")
	}
}

func TestBrowseDetailToggle(t *testing.T) {
	m := newTestBrowse()
	m.services = []domain.Service{{Name: "Cut"}}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.detail {
		t.Fatal("expected detail view")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.detail {
		t.Fatal("esc should close the detail view")
	}
}
