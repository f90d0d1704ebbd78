package session_test

import (
	"testing"

	"github.com/trezcool/safari/core"
	"github.com/trezcool/safari/core/session"
)

func TestNewStudent_passwordPolicy(t *testing.T) {
	tests := []struct {
		name    string
		pwd     string
		wantErr string // translated message; empty means valid
	}{
		{name: "ok", pwd: "tr1cky&Unrelated"},
		{name: "too short", pwd: "a1!", wantErr: "password must be at least 8 characters in length"},
		{name: "whitespace", pwd: "has space 123", wantErr: "password must not contain whitespace"},
		{name: "all numeric", pwd: "123456789", wantErr: "password cannot be entirely numeric"},
		{name: "similar to email", pwd: "amina@test.cd", wantErr: "password cannot be similar to your name or email"},
		{name: "similar to name", pwd: "aminakazadi", wantErr: "password cannot be similar to your name or email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := session.NewStudent{
				FirstName: "Amina", LastName: "Kazadi", Email: "amina@test.cd", Password: tt.pwd,
			}
			err := form.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() expected an error")
			}
			flds := core.TranslateValidationErrors(err)
			found := false
			for _, fld := range flds {
				if fld.Error == tt.wantErr {
					found = true
				}
			}
			if !found {
				t.Errorf("Validate() errors = %+v; want %q", flds, tt.wantErr)
			}
		})
	}
}
