package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-03-15"); !ok {
		t.Error("IsValidDate(2024-03-15) = false, want true")
	}
	if _, ok := IsValidDate("2024-02-30"); ok {
		t.Error("IsValidDate(2024-02-30) = true, want false")
	}
	for _, s := range []string{"", "15-03-2024", "2024/03/15", "2024-3-5"} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	if _, ok := IsValidMonth("2024-03"); !ok {
		t.Error("IsValidMonth(2024-03) = false, want true")
	}
	for _, s := range []string{"", "2024-13", "2024-3", "03-2024"} {
		if _, ok := IsValidMonth(s); ok {
			t.Errorf("IsValidMonth(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	options := []string{"onsite", "wfh"}
	if !IsInSlice("wfh", options) {
		t.Error("IsInSlice(wfh) = false, want true")
	}
	if IsInSlice("remote", options) {
		t.Error("IsInSlice(remote) = true, want false")
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"123e4567-e89b-42d3-a456-426614174000",
	}
	invalid := []string{
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"",
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}
