package client

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		status  int
		message string
		want    Kind
	}{
		{409, "email already exists", KindConflict},
		{400, "account already registered", KindConflict},
		{400, "code expired, request a new one", KindExpiredCode},
		{400, "invalid code", KindInvalidCode},
		{400, "incorrect code entered", KindInvalidCode},
		{401, "invalid credentials", KindAuth},
		{401, "", KindAuth},
		{403, "forbidden", KindAuth},
		{400, "email is required", KindValidation},
		{422, "invalid phone number", KindValidation},
		{400, "", KindValidation},
		{0, "network unreachable", KindNetwork},
		{502, "connection refused by upstream", KindNetwork},
		{500, "something broke", KindGeneral},
		{404, "", KindGeneral},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_%s", tt.status, tt.message), func(t *testing.T) {
			if got := classify(tt.status, tt.message); got != tt.want {
				t.Errorf("classify(%d, %q) = %v, want %v", tt.status, tt.message, got, tt.want)
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	if got := KindOf(ErrUnauthenticated); got != KindAuth {
		t.Errorf("KindOf(ErrUnauthenticated) = %v, want KindAuth", got)
	}
	wrapped := fmt.Errorf("client.Login: %w", &APIError{StatusCode: 409, Message: "already exists", Kind: KindConflict})
	if got := KindOf(wrapped); got != KindConflict {
		t.Errorf("KindOf(wrapped APIError) = %v, want KindConflict", got)
	}
	if got := KindOf(errors.New("plain")); got != KindGeneral {
		t.Errorf("KindOf(plain) = %v, want KindGeneral", got)
	}
}

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{StatusCode: 404, Message: "salon not found", Kind: KindGeneral}
	if err.Error() != "HTTP 404: salon not found" {
		t.Errorf("Error() = %q", err.Error())
	}
	netErr := &APIError{Kind: KindNetwork, Message: "request failed", err: errors.New("dial tcp: refused")}
	if got := netErr.Error(); got != "request failed: dial tcp: refused" {
		t.Errorf("Error() = %q", got)
	}
}
