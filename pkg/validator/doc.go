// Package validator provides declarative validation rules for card data:
// card numbers, security codes, and expiration dates.
//
// Each rule is a small Rule value pairing a boolean Check function with
// error metadata. Rules never raise for bad values; the Apply helper
// evaluates them and aggregates failures into a ValidationErrors slice that
// satisfies the error interface, so a composing layer decides whether to
// raise, collect, or translate.
//
//	err := validator.Apply(
//	    validator.ValidCardNumber("card_number", digits),
//	    validator.ValidSecurityCode("cvc", code),
//	    validator.ValidExpirationDate("expires_at", expiresAt),
//	)
//
// Validation does not coerce. Strip formatting with the sanitizer package
// before validating raw input.
//
// Rules hold no state and are safe to evaluate concurrently. The one side
// effect in the package is the deprecation notice emitted by the legacy
// ValidCreditCard rule, which writes to a guarded slog logger.
package validator
