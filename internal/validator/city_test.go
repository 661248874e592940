package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/skyweather/internal/validator"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		last string
		want string
		err  error
	}{
		{name: "Valid", raw: "Paris", want: "Paris"},
		{name: "Trimmed", raw: "  New York ", want: "New York"},
		{name: "HyphenAndApostrophe", raw: "Dun Laoghaire-Rathdown's", want: "Dun Laoghaire-Rathdown's"},
		{name: "Empty", raw: "", err: validator.ErrMissingCity},
		{name: "WhitespaceOnly", raw: " ", err: validator.ErrMissingCity},
		{name: "TooShort", raw: "A", err: validator.ErrTooShort},
		{name: "ExactlyTwo", raw: "Ai", want: "Ai"},
		{name: "ExactlyFifty", raw: strings.Repeat("a", 50), want: strings.Repeat("a", 50)},
		{name: "TooLong", raw: strings.Repeat("a", 51), err: validator.ErrTooLong},
		{name: "Digits", raw: "Paris 75", err: validator.ErrInvalidCharacters},
		{name: "Punctuation", raw: "Paris!", err: validator.ErrInvalidCharacters},
		{name: "Comma", raw: "Paris,FR", err: validator.ErrInvalidCharacters},
		{name: "ShortBeatsCharset", raw: "1", err: validator.ErrTooShort},
		{name: "Duplicate", raw: "PARIS", last: "paris", err: validator.ErrDuplicateSearch},
		{name: "DifferentFromLast", raw: "Lyon", last: "paris", want: "Lyon"},
		{name: "CharsetBeatsDuplicate", raw: "paris1", last: "paris1", err: validator.ErrInvalidCharacters},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validator.Validate(tt.raw, tt.last)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate_LengthCountsRunes(t *testing.T) {
	_, err := validator.Validate("é", "")
	assert.ErrorIs(t, err, validator.ErrTooShort)
}

func TestValidationError_Messages(t *testing.T) {
	assert.Equal(t, "missing city", validator.ErrMissingCity.Error())
	assert.Equal(t, "Please enter a city name.", validator.ErrMissingCity.Message())
	assert.Equal(t, "You already searched for this city.", validator.ErrDuplicateSearch.Message())
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, validator.Normalize("PaRiS"), validator.Normalize(" paris "))
	assert.NotEqual(t, validator.Normalize("Paris"), validator.Normalize("Lyon"))
}
