package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		errMsg  string
		wantErr bool
	}{
		{
			name:    "valid title",
			title:   "Shopping list",
			wantErr: false,
		},
		{
			name:    "valid title with surrounding spaces",
			title:   "  Shopping list  ",
			wantErr: false,
		},
		{
			name:    "valid single character",
			title:   "a",
			wantErr: false,
		},
		{
			name:    "invalid - empty",
			title:   "",
			wantErr: true,
			errMsg:  "title cannot be empty",
		},
		{
			name:    "invalid - only whitespace",
			title:   "   \t  ",
			wantErr: true,
			errMsg:  "title cannot be empty",
		},
		{
			name:    "invalid - too long",
			title:   strings.Repeat("x", MaxTitleLen+1),
			wantErr: true,
			errMsg:  "title must not exceed 255 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.title)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid email", email: "alice@example.com", wantErr: false},
		{name: "valid email with plus", email: "alice+notes@example.com", wantErr: false},
		{name: "valid email with subdomain", email: "alice@mail.example.co.uk", wantErr: false},
		{name: "invalid - empty", email: "", wantErr: true},
		{name: "invalid - no at sign", email: "alice.example.com", wantErr: true},
		{name: "invalid - no domain", email: "alice@", wantErr: true},
		{name: "invalid - no tld", email: "alice@example", wantErr: true},
		{name: "invalid - spaces", email: "alice smith@example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid password", password: "correcthorse", wantErr: false},
		{name: "valid - exactly 8 chars", password: "12345678", wantErr: false},
		{name: "invalid - empty", password: "", wantErr: true},
		{name: "invalid - 7 chars", password: "1234567", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
