// Package phone validates payout contact numbers. Payouts require a real,
// reachable number, so validation is stricter than simple format checks.
package phone

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is applied when a number has no international prefix.
// The platform launched in France, so bare national numbers parse as French.
const DefaultRegion = "FR"

// NormalizePayoutPhone parses and validates a payout phone number and
// returns it in E.164 format. Premium-rate and pager numbers are refused.
func NormalizePayoutPhone(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("phone number cannot be empty")
	}

	parsed, err := phonenumbers.Parse(raw, DefaultRegion)
	if err != nil {
		return "", fmt.Errorf("failed to parse phone number: %w", err)
	}

	if !phonenumbers.IsValidNumber(parsed) {
		return "", fmt.Errorf("invalid phone number")
	}

	switch phonenumbers.GetNumberType(parsed) {
	case phonenumbers.PREMIUM_RATE, phonenumbers.PAGER, phonenumbers.VOICEMAIL:
		return "", fmt.Errorf("phone number type not accepted for payouts")
	}

	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}

// Region returns the two-letter region of an already-parsed E.164 number,
// or the empty string when the number cannot be parsed.
func Region(e164 string) string {
	parsed, err := phonenumbers.Parse(e164, "")
	if err != nil {
		return ""
	}
	return phonenumbers.GetRegionCodeForNumber(parsed)
}
