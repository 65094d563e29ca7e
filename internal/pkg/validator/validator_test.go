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

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"123e4567-e89b-12d3-a456-426614174000",
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B",
	}
	invalid := []string{
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",
		"{0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b}",
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

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31", "2024-02-29"}
	invalid := []string{"2023-02-29", "2023/01/01", "01-01-2023", "2023-13-01", ""}
	for _, d := range valid {
		if _, ok := IsValidDate(d); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsValidMemberCode(t *testing.T) {
	valid := []string{"Abd-1", "EMP001", "a.b_c-d"}
	invalid := []string{"", "-abc", "has space", "abcdefghijklmnopqrstuvwxyz0123456789"}
	for _, c := range valid {
		if !IsValidMemberCode(c) {
			t.Errorf("IsValidMemberCode(%q) = false, want true", c)
		}
	}
	for _, c := range invalid {
		if IsValidMemberCode(c) {
			t.Errorf("IsValidMemberCode(%q) = true, want false", c)
		}
	}
}

func TestValidationErrors_Err(t *testing.T) {
	var errs ValidationErrors
	if errs.Err() != nil {
		t.Fatalf("empty ValidationErrors.Err() = %v, want nil", errs.Err())
	}

	errs.Add("month", "month must be between 1 and 12")
	err := errs.Err()
	if err == nil {
		t.Fatal("expected error after Add")
	}
	if got := err.Error(); got != "month: month must be between 1 and 12" {
		t.Errorf("Error() = %q", got)
	}
	if got := errs.ToMap()["month"]; got != "month must be between 1 and 12" {
		t.Errorf("ToMap()[month] = %q", got)
	}
}

func TestIsInSlice(t *testing.T) {
	if !IsInSlice("approved", []string{"pending", "approved"}) {
		t.Error("IsInSlice should find approved")
	}
	if IsInSlice("cancelled", []string{"pending", "approved"}) {
		t.Error("IsInSlice should not find cancelled")
	}
}
