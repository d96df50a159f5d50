package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/velourhq/velour/pkg/domain"
)

func TestSearch_BlankKeywordShortCircuits(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		json.NewEncoder(w).Encode([]serviceRecord{}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	for _, kw := range []string{"", "   ", "\t\n"} {
		got, err := c.Search(context.Background(), kw)
		if err != nil {
			t.Fatalf("Search(%q) error: %v", kw, err)
		}
		if len(got) != 0 {
			t.Errorf("Search(%q) returned %d results, want 0", kw, len(got))
		}
	}
	if hits != 0 {
		t.Errorf("server hit %d times, want 0", hits)
	}
}

func TestSearch_SendsKeyword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/services/search" {
			http.NotFound(w, r)
			return
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body) //nolint:errcheck
		if body["keyword"] != "balayage" {
			t.Errorf("keyword = %q, want balayage", body["keyword"])
		}
		json.NewEncoder(w).Encode([]map[string]any{ //nolint:errcheck
			{"name": "Balayage", "category": "Coloring", "price": 140},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	got, err := c.Search(context.Background(), "  balayage  ")
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Balayage" {
		t.Fatalf("got %+v, want one Balayage result", got)
	}
}

func TestFilter_NormalizesNestedSalonProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/services/filter" {
			http.NotFound(w, r)
			return
		}
		var params domain.FilterParams
		json.NewDecoder(r.Body).Decode(&params) //nolint:errcheck
		if params.Category != "Haircut" {
			t.Errorf("category = %q, want Haircut", params.Category)
		}
		json.NewEncoder(w).Encode([]map[string]any{ //nolint:errcheck
			{
				"name":     "Classic Cut",
				"category": "Haircut",
				"price":    45,
				"image":    map[string]string{"secure_url": "https://cdn.velour.app/cut.jpg"},
				"salon_profile": map[string]string{
					"salon_name": "Chez Marie",
					"address":    "12 Rue des Fleurs",
					"city":       "Lyon",
				},
			},
			{
				"name":     "Fade",
				"category": "Haircut",
				"price":    35,
				"salon_profile": map[string]string{
					"salon_name": "Sharp & Co",
					"city":       "Lyon",
				},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	got, err := c.Filter(context.Background(), domain.FilterParams{Category: "Haircut"})
	if err != nil {
		t.Fatalf("Filter() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d services, want 2", len(got))
	}
	if got[0].Salon == nil || got[0].Salon.Name != "Chez Marie" {
		t.Errorf("got[0].Salon = %+v, want Chez Marie summary", got[0].Salon)
	}
	if got[0].Salon.Address != "12 Rue des Fleurs" {
		t.Errorf("Address = %q", got[0].Salon.Address)
	}
	if got[0].Image.URI() != "https://cdn.velour.app/cut.jpg" {
		t.Errorf("Image = %q, want normalized secure_url", got[0].Image.URI())
	}
	if got[1].Salon == nil || got[1].Salon.Name != "Sharp & Co" {
		t.Errorf("got[1].Salon = %+v, want Sharp & Co summary", got[1].Salon)
	}

	// The raw nesting must not survive normalization.
	data, err := json.Marshal(got[0])
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out map[string]any
	json.Unmarshal(data, &out) //nolint:errcheck
	if _, ok := out["salon_profile"]; ok {
		t.Error("normalized service still carries raw salon_profile")
	}
	if _, ok := out["salon"]; !ok {
		t.Error("normalized service missing flat salon field")
	}
}

func TestFilter_NoSalonProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{{"name": "Gel Manicure", "category": "Nails"}}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	got, err := c.Filter(context.Background(), domain.FilterParams{})
	if err != nil {
		t.Fatalf("Filter() error: %v", err)
	}
	if got[0].Salon != nil {
		t.Errorf("Salon = %+v, want nil when backend sends no nesting", got[0].Salon)
	}
}
