package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestValidateEmail проверяет валидацию email
func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid", email: "a@b.com", wantErr: false},
		{name: "valid with plus", email: "user+tag@example.org", wantErr: false},
		{name: "empty", email: "", wantErr: true},
		{name: "no at sign", email: "not-an-email", wantErr: true},
		{name: "no domain dot", email: "a@localhost", wantErr: true},
		{name: "spaces", email: "a b@c.com", wantErr: true},
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

// TestValidatePassword проверяет минимальную длину пароля
func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("longenough"))
}

// TestValidateName проверяет имя
func TestValidateName(t *testing.T) {
	assert.Error(t, ValidateName(""))
	assert.Error(t, ValidateName("   "))
	assert.Error(t, ValidateName(strings.Repeat("x", MaxNameLen+1)))
	assert.NoError(t, ValidateName("Trip to Berlin"))
}

// TestValidateDescription проверяет описание расхода
func TestValidateDescription(t *testing.T) {
	assert.Error(t, ValidateDescription(""))
	assert.Error(t, ValidateDescription("  "))
	assert.NoError(t, ValidateDescription("Dinner"))
}

// TestValidateAmount проверяет сумму
func TestValidateAmount(t *testing.T) {
	assert.Error(t, ValidateAmount(0))
	assert.Error(t, ValidateAmount(-5))
	assert.NoError(t, ValidateAmount(0.01))
}
