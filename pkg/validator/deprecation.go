package validator

import (
	"log/slog"
	"sync"
)

const creditCardDeprecationNotice = "validator.ValidCreditCard is deprecated, use validator.ValidCardNumber instead"

var (
	deprecationMu     sync.RWMutex
	deprecationLogger *slog.Logger
)

// SetDeprecationLogger redirects deprecation notices to l. Passing nil
// restores slog.Default. Safe for concurrent use with rule evaluation.
func SetDeprecationLogger(l *slog.Logger) {
	deprecationMu.Lock()
	defer deprecationMu.Unlock()
	deprecationLogger = l
}

func notifyDeprecated(msg string) {
	deprecationMu.RLock()
	l := deprecationLogger
	deprecationMu.RUnlock()

	if l == nil {
		l = slog.Default()
	}
	l.Warn(msg)
}

// ValidCreditCard is the legacy name for ValidCardNumber and validates
// identically. Every evaluation of the rule, passing or failing, emits one
// deprecation notice to the configured logger. Coercion helpers in the
// sanitizer package never emit the notice; only validation does.
//
// Deprecated: use ValidCardNumber.
func ValidCreditCard(field, value string) Rule {
	rule := ValidCardNumber(field, value)
	check := rule.Check
	rule.Check = func() bool {
		notifyDeprecated(creditCardDeprecationNotice)
		return check()
	}
	return rule
}
