package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/velourhq/velour/pkg/domain"
)

func TestGetConsumerProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user-profile" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "not authenticated"}) //nolint:errcheck
			return
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("Accept = %q, want application/json", r.Header.Get("Accept"))
		}
		json.NewEncoder(w).Encode(domain.ConsumerProfile{ //nolint:errcheck
			FullName: "Ada Nguyen",
			City:     "Portland",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "test-token")
	p, err := c.GetConsumerProfile(context.Background())
	if err != nil {
		t.Fatalf("GetConsumerProfile() error: %v", err)
	}
	if p.FullName != "Ada Nguyen" {
		t.Errorf("FullName = %q, want %q", p.FullName, "Ada Nguyen")
	}
	if p.City != "Portland" {
		t.Errorf("City = %q, want %q", p.City, "Portland")
	}
}

func TestGetConsumerProfile_NoTokenFailsLocally(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		json.NewEncoder(w).Encode(domain.ConsumerProfile{}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	_, err := c.GetConsumerProfile(context.Background())
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("error = %v, want ErrUnauthenticated", err)
	}
	if hits != 0 {
		t.Errorf("server hit %d times, want 0", hits)
	}
}

func TestAPIErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "email already exists"}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	_, err := c.Login(context.Background(), "a@b.com", "pw", domain.RoleConsumer)
	if err == nil {
		t.Fatal("expected error for 409 response")
	}
	if got := err.Error(); !strings.Contains(got, "email already exists") {
		t.Errorf("error = %q, want it to contain the backend message", got)
	}
	if !IsStatus(err, http.StatusConflict) {
		t.Errorf("IsStatus(err, 409) = false, want true")
	}
	if !IsKind(err, KindConflict) {
		t.Errorf("KindOf(err) = %v, want KindConflict", KindOf(err))
	}
}

func TestLegacyErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "boom"}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	_, err := c.Login(context.Background(), "a@b.com", "pw", domain.RoleConsumer)
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if got := err.Error(); !strings.Contains(got, "boom") {
		t.Errorf("error = %q, want it to contain 'boom'", got)
	}
}

func TestTransportErrorIsNetworkKind(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // refuse connections

	c := New(srv.URL, "tok")
	_, err := c.Filter(context.Background(), domain.FilterParams{})
	if err == nil {
		t.Fatal("expected error for closed server")
	}
	if !IsKind(err, KindNetwork) {
		t.Errorf("KindOf(err) = %v, want KindNetwork", KindOf(err))
	}
}

func TestDoRequest_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(5 * time.Second) // slow server
		json.NewEncoder(w).Encode(domain.ConsumerProfile{}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel immediately

	_, err := c.GetConsumerProfile(ctx)
	if err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestSetToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]domain.Service{}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	c.SetToken("fresh-token")
	if _, err := c.ListServices(context.Background()); err != nil {
		t.Fatalf("ListServices() error: %v", err)
	}
	if gotAuth != "Bearer fresh-token" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer fresh-token")
	}
}
