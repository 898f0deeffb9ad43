package cli

import (
	"strings"

	"yippee/internal/service"
)

// Card details are validated here, at the boundary, before they ever reach
// the payment vault.

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func validCardNumber(card string) bool {
	return len(card) == 16 && allDigits(card)
}

func validCVV(cvv string) bool {
	return (len(cvv) == 3 || len(cvv) == 4) && allDigits(cvv)
}

func validExpiry(expiry string) bool {
	if len(expiry) != 5 || expiry[2] != '/' {
		return false
	}
	month, year := expiry[:2], expiry[3:]
	if !allDigits(month) || !allDigits(year) {
		return false
	}
	return month >= "01" && month <= "12"
}

func cardTypeLabel(card string) string {
	return service.CardNetwork(strings.TrimSpace(card))
}
