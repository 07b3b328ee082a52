package lease

import (
	"fmt"
	"regexp"
	"strings"

	"leasedesk/pkg/types"
)

// ValidationError is a request-shape failure detected before any side
// effect; handlers map it to a 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var requiredFields = []struct {
	name  string
	value func(types.LeaseRequest) string
}{
	{"landlordName", func(r types.LeaseRequest) string { return r.LandlordName }},
	{"landlordEmail", func(r types.LeaseRequest) string { return r.LandlordEmail }},
	{"tenantName", func(r types.LeaseRequest) string { return r.TenantName }},
	{"tenantEmail", func(r types.LeaseRequest) string { return r.TenantEmail }},
	{"propertyAddress", func(r types.LeaseRequest) string { return r.PropertyAddress }},
	{"leaseStartDate", func(r types.LeaseRequest) string { return r.LeaseStartDate }},
	{"leaseEndDate", func(r types.LeaseRequest) string { return r.LeaseEndDate }},
	{"monthlyRent", func(r types.LeaseRequest) string { return r.MonthlyRent }},
}

var apartmentPattern = regexp.MustCompile(`(?i)Apartment\s+(\d+)`)

// MissingFields returns the names of every required field absent from the
// request, so the caller can report them all at once.
func MissingFields(req types.LeaseRequest) []string {
	var missing []string
	for _, field := range requiredFields {
		if strings.TrimSpace(field.value(req)) == "" {
			missing = append(missing, field.name)
		}
	}
	return missing
}

// ValidateRequest checks required-field presence, then resolves the
// apartment number (explicit field first, otherwise derived from an
// "Apartment <n>" token in the address). The missing-field check aggregates
// every absent field into one error; the apartment check runs only after it
// passes and fails separately.
func ValidateRequest(req types.LeaseRequest) (string, error) {
	if missing := MissingFields(req); len(missing) > 0 {
		return "", &ValidationError{
			Message: fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")),
		}
	}

	if req.ApartmentNumber != "" {
		return req.ApartmentNumber, nil
	}

	match := apartmentPattern.FindStringSubmatch(req.PropertyAddress)
	if match == nil {
		return "", &ValidationError{Message: "Apartment number is required"}
	}

	return match[1], nil
}

// SplitTenantName splits a full name into first name (first token) and
// last name (remaining tokens joined).
func SplitTenantName(fullName string) (string, string) {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
