package sanitizer

import "regexp"

// Precompiled patterns shared across the package.
var nonDigitRegex = regexp.MustCompile(`\D`)
