package saves

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		wantErr   bool
		forbidden string
	}{
		{"Before boss", false, ""},
		{"Run (2) = win+1 - maybe", false, ""},
		{"HM3", false, ""},
		{"", true, ""},
		{"   ", true, ""},
		{"a/b", true, "[/]"},
		{"x.y.z", true, "[.]"},
		{"what?!?", true, "[!?]"},
		{"über", true, "[ü]"},
		{"..", true, "[.]"},
	}

	for _, tt := range tests {
		err := ValidateName(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrInvalidName) {
			t.Errorf("ValidateName(%q) error = %v, want ErrInvalidName", tt.name, err)
		}
		if tt.forbidden != "" && !strings.Contains(err.Error(), tt.forbidden) {
			t.Errorf("ValidateName(%q) error = %q, want listing %s", tt.name, err, tt.forbidden)
		}
	}
}
