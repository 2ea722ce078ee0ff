// Package sanitizer provides pure coercion helpers for card data: stripping
// human formatting from card numbers, masking them for display or logs, and
// building canonical expiration dates.
//
// Coercion never validates. Run the result through the validator package
// afterwards:
//
//	digits := sanitizer.NormalizeCardNumber("4111-1111-1111-1111")
//	err := validator.Apply(validator.ValidCardNumber("card_number", digits))
//
// Every helper is a small pure function: input in, new value out, the
// original untouched. The higher-order Apply and Compose helpers chain them
// into reusable pipelines. The package holds no state and is safe for
// concurrent use.
package sanitizer
