// Package secrets masks credentials before they reach the terminal or
// the log file.
package secrets

import (
	"strings"

	masker "github.com/goliatone/go-masker"
)

const maskRule = "preserveEnds(2,2)"

// secretFields are configuration keys whose values are always masked
var secretFields = []string{"access_token", "token", "password", "secret"}

func init() {
	for _, field := range secretFields {
		masker.Default.RegisterMaskField(field, maskRule)
	}
}

// IsSecretField reports whether a configuration key holds a credential
func IsSecretField(key string) bool {
	key = strings.ToLower(key)
	for _, field := range secretFields {
		if key == field {
			return true
		}
	}
	return false
}

// Mask hides all but the two first and two last characters of value
func Mask(value string) string {
	if value == "" {
		return ""
	}
	if masked, err := masker.Default.String(maskRule, value); err == nil && masked != value {
		return masked
	}

	runes := []rune(value)
	if len(runes) <= 4 {
		return strings.Repeat("*", len(runes))
	}
	return string(runes[:2]) + strings.Repeat("*", len(runes)-4) + string(runes[len(runes)-2:])
}

// MaskFields returns a copy of values with every secret field masked
func MaskFields(values map[string]interface{}) map[string]interface{} {
	if values == nil {
		return nil
	}
	out := make(map[string]interface{}, len(values))
	for key, value := range values {
		if s, ok := value.(string); ok && IsSecretField(key) {
			out[key] = Mask(s)
			continue
		}
		out[key] = value
	}
	return out
}
