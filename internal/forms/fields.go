// Package forms implements the draft-editing workflow for multilingual
// entities. A form holds the editing representation of one entity:
// numbers and dates as strings, list fields as delimiter-joined strings.
// Setters replace exactly one leaf and leave every other field untouched.
// Build converts the draft to the wire payload, rejecting input the wire
// format cannot carry instead of coercing it.
package forms

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/elyvra/storefront/pkg/errors"
)

// listSeparator joins list-valued fields for editing
const listSeparator = ", "

// dateLayout is the editing format for date fields
const dateLayout = "2006-01-02"

// splitList splits a delimiter-joined editing string into an ordered
// list, trimming entries and dropping empty ones
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// joinList flattens a list field into its editing representation
func joinList(items []string) string {
	return strings.Join(items, listSeparator)
}

// optionalString maps an empty editing field to an explicit absent
// marker rather than an empty string on the wire
func optionalString(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// parseDecimal parses a required numeric editing field. Non-numeric
// input fails validation; it is never coerced to a sentinel value.
func parseDecimal(field, s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, &errors.ErrValidation{Field: field, Detail: "is required"}
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &errors.ErrValidation{Field: field, Detail: "must be a number"}
	}
	if v < 0 {
		return 0, &errors.ErrValidation{Field: field, Detail: "must not be negative"}
	}
	return v, nil
}

// parseOptionalDecimal parses an optional numeric editing field; an
// empty field is absent, not zero
func parseOptionalDecimal(field, s string) (*float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	v, err := parseDecimal(field, s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// parseQuantity parses a required non-negative integer editing field
func parseQuantity(field, s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, &errors.ErrValidation{Field: field, Detail: "is required"}
	}
	v, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, &errors.ErrValidation{Field: field, Detail: "must be a whole number"}
	}
	if v < 0 {
		return 0, &errors.ErrValidation{Field: field, Detail: "must not be negative"}
	}
	return v, nil
}

// parseOptionalQuantity parses an optional non-negative integer field
func parseOptionalQuantity(field, s string) (*int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	v, err := parseQuantity(field, s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// parseOptionalDate parses an optional YYYY-MM-DD editing field
func parseOptionalDate(field, s string) (*time.Time, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, trimmed)
	if err != nil {
		return nil, &errors.ErrValidation{Field: field, Detail: "must be a date in YYYY-MM-DD form"}
	}
	t = t.UTC()
	return &t, nil
}

// parseDate parses a required YYYY-MM-DD editing field
func parseDate(field, s string) (time.Time, error) {
	t, err := parseOptionalDate(field, s)
	if err != nil {
		return time.Time{}, err
	}
	if t == nil {
		return time.Time{}, &errors.ErrValidation{Field: field, Detail: "is required"}
	}
	return *t, nil
}

// formatDecimal renders a number for editing without precision loss
func formatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptionalDecimal(p *float64) string {
	if p == nil {
		return ""
	}
	return formatDecimal(*p)
}

func formatOptionalQuantity(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(dateLayout)
}

func copyStrings(items []string) []string {
	if items == nil {
		return nil
	}
	out := make([]string, len(items))
	copy(out, items)
	return out
}
