package validator

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

const (
	minCityLength = 2
	maxCityLength = 50
)

var cityPattern = regexp.MustCompile(`^[A-Za-z\s'-]+$`)

// ValidationError is a rejected city query. Error returns the short reason,
// Message the text shown to the user.
type ValidationError struct {
	reason  string
	message string
}

func (e *ValidationError) Error() string { return e.reason }

func (e *ValidationError) Message() string { return e.message }

var (
	ErrMissingCity       = &ValidationError{reason: "missing city", message: "Please enter a city name."}
	ErrTooShort          = &ValidationError{reason: "too short", message: "City name is too short."}
	ErrTooLong           = &ValidationError{reason: "too long", message: "City name is too long."}
	ErrInvalidCharacters = &ValidationError{reason: "invalid characters", message: "City name contains invalid characters."}
	ErrDuplicateSearch   = &ValidationError{reason: "duplicate search", message: "You already searched for this city."}
)

// Validate trims raw and checks it against the city rules, first failure wins.
// lastSearched is the normalized city of the previous successful lookup.
func Validate(raw, lastSearched string) (string, error) {
	city := strings.TrimSpace(raw)
	length := utf8.RuneCountInString(city)

	switch {
	case city == "":
		return "", ErrMissingCity
	case length < minCityLength:
		return "", ErrTooShort
	case length > maxCityLength:
		return "", ErrTooLong
	case !cityPattern.MatchString(city):
		return "", ErrInvalidCharacters
	case lastSearched != "" && Normalize(city) == lastSearched:
		return "", ErrDuplicateSearch
	}
	return city, nil
}

// Normalize case-folds a city name for comparisons and cache keys.
func Normalize(city string) string {
	return cases.Fold().String(strings.TrimSpace(city))
}
