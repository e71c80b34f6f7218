package ghtoken

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// FromDotenv reads a token from a .env file without touching the
// process environment. path names the file to read; when empty, the
// working directory and each of its ancestors are searched for a file
// named .env and the first one found is used.
//
// The keys GH_TOKEN and GITHUB_TOKEN are consulted in that order; the
// first nonempty value wins. A missing file, an unparseable file, and
// absent or empty keys all return ErrNotFound.
func FromDotenv(path string) (string, error) {
	if path == "" {
		found, ok := findDotenv()
		if !ok {
			return "", ErrNotFound
		}
		path = found
	}

	// godotenv.Read parses into a map; os.Environ is never modified.
	vars, err := godotenv.Read(path)
	if err != nil {
		return "", ErrNotFound
	}

	for _, name := range envVars {
		if value := vars[name]; value != "" {
			return value, nil
		}
	}
	return "", ErrNotFound
}

// findDotenv walks upward from the working directory looking for a
// regular file named .env.
func findDotenv() (string, bool) {
	dir, err := os.Getwd()
	if err != nil {
		return "", false
	}
	for {
		path := filepath.Join(dir, ".env")
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
