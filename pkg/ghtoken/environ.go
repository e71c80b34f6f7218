package ghtoken

import "os"

// FromEnviron reads a token from the process environment, consulting
// GH_TOKEN and then GITHUB_TOKEN. A variable that is unset and one set
// to the empty string are treated the same; the first nonempty value
// wins. Returns ErrNotFound when neither variable carries a value.
func FromEnviron() (string, error) {
	for _, name := range envVars {
		if value := os.Getenv(name); value != "" {
			return value, nil
		}
	}
	return "", ErrNotFound
}
