package entity

import "testing"

func TestParseRole(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want Role
	}{
		{"admin", RoleAdmin},
		{"editor", RoleEditor},
		{"viewer", RoleViewer},
		{"", RoleViewer},
		{"superuser", RoleViewer}, // unknown roles resolve to lowest privilege
	}
	for _, c := range cases {
		if got := ParseRole(c.in); got != c.want {
			t.Errorf("ParseRole(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRoleIn(t *testing.T) {
	t.Parallel()

	if !RoleAdmin.In(RoleAdmin, RoleEditor) {
		t.Error("admin should be in {admin, editor}")
	}
	if RoleEditor.In(RoleAdmin) {
		t.Error("editor should not be in {admin}")
	}
	if RoleViewer.In() {
		t.Error("no role is in the empty set")
	}
}

func TestValid(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"admin", "editor", "viewer"} {
		if !Valid(s) {
			t.Errorf("Valid(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "root", "Admin"} {
		if Valid(s) {
			t.Errorf("Valid(%q) = true, want false", s)
		}
	}
}
