package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rimbest/shared/failure"
	"rimbest/shared/validator"
)

type contactForm struct {
	Name     string `json:"name"     validate:"required,min=2"`
	Email    string `json:"email"    validate:"required,email"`
	Birthday string `json:"birthday" validate:"required,isodate"`
	Expiry   string `json:"expiry"   validate:"omitempty,cardexpiry"`
	Code     string `json:"code"     validate:"omitempty,min=3,max=4,digits"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		data      contactForm
		wantField string
		wantMsg   string
	}{
		{
			name: "valid struct",
			data: contactForm{Name: "Aminetou", Email: "a@rimbest.mr", Birthday: "1990-04-12", Expiry: "09/27", Code: "123"},
		},
		{
			name:      "first failing field is reported",
			data:      contactForm{Name: "A", Email: "bad", Birthday: "12/04/1990"},
			wantField: "name",
			wantMsg:   "name must be at least 2 characters",
		},
		{
			name:      "email checked after name",
			data:      contactForm{Name: "Aminetou", Email: "bad", Birthday: "12/04/1990"},
			wantField: "email",
			wantMsg:   "email must be a valid email address",
		},
		{
			name:      "isodate rejects other layouts",
			data:      contactForm{Name: "Aminetou", Email: "a@rimbest.mr", Birthday: "12/04/1990"},
			wantField: "birthday",
			wantMsg:   "birthday must use the YYYY-MM-DD format",
		},
		{
			name:      "cardexpiry rejects four digit year",
			data:      contactForm{Name: "Aminetou", Email: "a@rimbest.mr", Birthday: "1990-04-12", Expiry: "09/2027"},
			wantField: "expiry",
			wantMsg:   "expiry must use the MM/YY format",
		},
		{
			name:      "digits rejects letters",
			data:      contactForm{Name: "Aminetou", Email: "a@rimbest.mr", Birthday: "1990-04-12", Code: "12a"},
			wantField: "code",
			wantMsg:   "code must contain digits only",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.Equal(t, tt.wantField, failure.GetField(err))
			assert.Equal(t, failure.KindValidation, failure.GetKind(err))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:     "valid JSON",
			jsonBody: `{"name":"Aminetou","email":"a@rimbest.mr","birthday":"1990-04-12"}`,
		},
		{
			name:        "invalid field",
			jsonBody:    `{"name":"Aminetou","email":"invalid-email","birthday":"1990-04-12"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"name":"Aminetou","email":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data contactForm
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDecode_SkipsRules(t *testing.T) {
	var data contactForm

	err := validator.Decode(strings.NewReader(`{"name":"A"}`), &data)
	assert.NoError(t, err)
	assert.Equal(t, "A", data.Name)

	err = validator.Decode(strings.NewReader(`{"name":`), &data)
	assert.Error(t, err)
	assert.Equal(t, failure.KindValidation, failure.GetKind(err))
}
