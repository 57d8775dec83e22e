//go:build unit || e2e

package testutil

// Field returns a mutation for DtoMap; a nil value removes the key so
// binding "required" failures can be exercised.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}
