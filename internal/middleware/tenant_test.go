package middleware

import "testing"

func TestExtractTenantSlug(t *testing.T) {
	tests := []struct {
		host string
		want string
	}{
		{"rose-house.veganmealapp.io", "rose-house"},
		{"rose-house.veganmealapp.io:8080", "rose-house"},
		{"ROSE-HOUSE.veganmealapp.io", "rose-house"},
		{"veganmealapp.io", ""},
		{"www.veganmealapp.io", ""},
		{"api.veganmealapp.io", ""},
		{"staging.veganmealapp.io", ""},
		{"rose-house.otherdomain.io", ""},
		{"deep.rose-house.veganmealapp.io", "deep.rose-house"},
	}

	for _, tt := range tests {
		if got := ExtractTenantSlug(tt.host, "veganmealapp.io"); got != tt.want {
			t.Errorf("ExtractTenantSlug(%q): expected %q, got %q", tt.host, tt.want, got)
		}
	}
}

func TestValidateSlug(t *testing.T) {
	tests := []struct {
		slug string
		want bool
	}{
		{"rose-house", true},
		{"abc", true},
		{"a1b2c3", true},
		{"ab", false},          // too short
		{"-rose", false},       // leading hyphen
		{"rose-", false},       // trailing hyphen
		{"rose--house", false}, // consecutive hyphens
		{"Rose-House", false},  // uppercase
		{"rose_house", false},  // underscore
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidateSlug(tt.slug); got != tt.want {
			t.Errorf("ValidateSlug(%q): expected %v, got %v", tt.slug, tt.want, got)
		}
	}
}
