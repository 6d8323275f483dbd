package holiday

import (
	"regexp"
	"strings"

	"github.com/zaneriley/seasonal-roles-bot/internal/domain"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/entity"
)

var (
	colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	datePattern  = regexp.MustCompile(`^\d{2}-\d{2}$`)
)

// Feb is 29 so a leap-day holiday is accepted; it resolves to Feb 28 in
// non-leap years.
var daysInMonth = [13]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// ValidateColor checks for a '#' followed by exactly six hex digits.
func ValidateColor(color string) error {
	if !colorPattern.MatchString(color) {
		return &domain.ValidationError{Field: "color", Value: color, Rule: "must be # followed by 6 hex digits"}
	}
	return nil
}

// ValidateDate checks for MM-DD with a real month and a day valid for that
// month.
func ValidateDate(date string) error {
	invalid := &domain.ValidationError{Field: "date", Value: date, Rule: "must be MM-DD denoting a real calendar day"}
	if !datePattern.MatchString(date) {
		return invalid
	}
	month, day, err := ParseMonthDay(date)
	if err != nil {
		return invalid
	}
	if month < 1 || month > 12 {
		return invalid
	}
	if day < 1 || day > daysInMonth[month] {
		return invalid
	}
	return nil
}

// ValidateName rejects empty and whitespace-only names.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &domain.ValidationError{Field: "name", Value: name, Rule: "must not be empty"}
	}
	return nil
}

// Find returns the holiday whose name matches case-insensitively, or nil.
func Find(holidays []entity.Holiday, name string) *entity.Holiday {
	target := strings.ToLower(strings.TrimSpace(name))
	for i := range holidays {
		if strings.ToLower(holidays[i].Name) == target {
			return &holidays[i]
		}
	}
	return nil
}
