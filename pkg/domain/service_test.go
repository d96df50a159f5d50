package domain

import "testing"

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		if !ValidCategory(c) {
			t.Errorf("ValidCategory(%q) = false, want true", c)
		}
	}
	for _, c := range []string{"", "haircut", "Plumbing", "HAIRCUT"} {
		if ValidCategory(c) {
			t.Errorf("ValidCategory(%q) = true, want false", c)
		}
	}
}

func TestRoleValid(t *testing.T) {
	if !RoleConsumer.Valid() || !RoleSalon.Valid() {
		t.Error("known roles must be valid")
	}
	if Role("").Valid() || Role("admin").Valid() {
		t.Error("unknown roles must be invalid")
	}
}

func TestSessionAuthenticated(t *testing.T) {
	if (Session{}).Authenticated() {
		t.Error("empty session must not be authenticated")
	}
	if !(Session{Token: "tok", Role: RoleConsumer}).Authenticated() {
		t.Error("session with token must be authenticated")
	}
}
