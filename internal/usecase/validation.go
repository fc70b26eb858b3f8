package usecase

import (
	"strings"
	"unicode"

	domainErrors "github.com/shopcore/adminapi/internal/domain/errors"
	"github.com/shopcore/adminapi/internal/domain/model"
)

// ValidateTransaction checks a ledger write request. Amounts carry no sign;
// zero and negative values are rejected.
func ValidateTransaction(t model.TransactionType, amount int64) error {
	if !t.Valid() {
		return domainErrors.ErrInvalidTransactionType
	}
	if amount <= 0 {
		return domainErrors.ErrInvalidAmount
	}
	return nil
}

// Slugify derives a URL-safe slug from a display name.
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
