package error

import (
	"net/http"
	"testing"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{code: InternalServerError, want: http.StatusInternalServerError},
		{code: UnprocessibleEntity, want: http.StatusUnprocessableEntity},
		{code: RecipeNotFound, want: http.StatusNotFound},
		{code: RecipeNotOwned, want: http.StatusForbidden},
		{code: EmailConflict, want: http.StatusConflict},
		{code: TooManyRequests, want: http.StatusTooManyRequests},
		{code: UnknownError, want: 0},
		{code: ErrorCode("made_up"), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.StatusCode(); got != tt.want {
				t.Errorf("StatusCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEveryCodeHasAStatus(t *testing.T) {
	for code, status := range errorCodeToStatusCode {
		if code == UnknownError {
			continue
		}
		if http.StatusText(status) == "" {
			t.Errorf("code %q maps to unknown status %d", code, status)
		}
	}
}

func TestNew(t *testing.T) {
	err := New(RecipeNotFound, "recipe not found", "01J0")
	if err.Status != http.StatusNotFound || err.ErrorID != "01J0" {
		t.Errorf("New() = %+v", err)
	}
	if got := err.Error(); got != "recipe_not_found (404): recipe not found" {
		t.Errorf("Error() = %q", got)
	}

	internal := Internal("abc")
	if internal.Code != InternalServerError || internal.Status != http.StatusInternalServerError {
		t.Errorf("Internal() = %+v", internal)
	}
}
