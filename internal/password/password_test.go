package password

import (
	"errors"
	"testing"
)

func TestValidatePassword(t *testing.T) {
	user := []Attribute{
		{Name: "username", Value: "tiramisu_fan"},
		{Name: "email", Value: "ana.lopez@example.com"},
	}

	tests := []struct {
		name     string
		password string
		attrs    []Attribute
		want     error
	}{
		{name: "strong", password: "Mascarpone&Espresso9", attrs: user, want: nil},
		{name: "too short", password: "Ab1!", want: ErrTooShort},
		{name: "short multibyte", password: "ñañañañ", want: ErrTooShort},
		{name: "numeric", password: "4815162342", want: ErrNumeric},
		{name: "low entropy", password: "Aaaaaaaa1!", want: ErrTooWeak},
		{name: "no attributes", password: "Tiramisu_Fan#2024", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password, tt.attrs...)
			if tt.want == nil {
				if err != nil {
					t.Errorf("ValidatePassword(%q) = %v, want nil", tt.password, err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("ValidatePassword(%q) = %v, want %v", tt.password, err, tt.want)
			}
		})
	}
}

func TestValidatePassword_Similarity(t *testing.T) {
	user := []Attribute{
		{Name: "username", Value: "tiramisu_fan"},
		{Name: "email", Value: "ana.lopez@example.com"},
	}

	tests := []struct {
		name     string
		password string
		want     string
	}{
		{name: "contains username", password: "Tiramisu_Fan#2024", want: "username"},
		{name: "contains username piece", password: "MyTIRAMISUisBest!7", want: "username"},
		{name: "contains email local part", password: "Lopez&Espresso99", want: "email"},
		{name: "short pieces ignored", password: "Fan#Mascarpone&Espresso9", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password, user...)
			var sim *SimilarityError
			if tt.want == "" {
				if errors.As(err, &sim) {
					t.Errorf("ValidatePassword(%q) = %v, want no similarity error", tt.password, err)
				}
				return
			}
			if !errors.As(err, &sim) {
				t.Fatalf("ValidatePassword(%q) = %v, want similarity error", tt.password, err)
			}
			if sim.Attribute != tt.want {
				t.Errorf("attribute = %q, want %q", sim.Attribute, tt.want)
			}
			if got := err.Error(); got != "The password is too similar to the "+tt.want+"." {
				t.Errorf("message = %q", got)
			}
		})
	}
}
