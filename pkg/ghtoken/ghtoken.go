// Package ghtoken looks up a GitHub access token in the places other
// tools in the GitHub ecosystem store one: a .env file, the process
// environment, the gh CLI, hub's configuration file, and the
// hub.oauthtoken Git config option.
//
// Each source has its own entry point (FromDotenv, FromEnviron, FromGH,
// FromHub, FromHubOauthToken), and Get combines them in that fixed
// order, returning the first token found. The package only ever reads:
// no credential store is written, cached, or validated.
package ghtoken

import (
	"errors"
)

// envVars lists the environment variable and dotenv key names consulted,
// in priority order.
var envVars = []string{"GH_TOKEN", "GITHUB_TOKEN"}

// ErrNotFound is returned when a source (or every enabled source) holds
// no token. Missing files, missing keys, malformed documents, failed
// lookups, and empty values all report this same error; callers cannot
// and should not distinguish them.
var ErrNotFound = errors.New("GitHub access token not found")

// Options configures Get. The zero value enables every source; set the
// No* fields to skip individual sources. DotenvPath, when nonempty,
// names the .env file to read instead of searching upward from the
// working directory (it has no effect when NoDotenv is set).
type Options struct {
	NoDotenv   bool
	DotenvPath string

	NoEnviron bool
	NoGH      bool
	NoHub     bool

	NoHubOauthToken bool
}

// Get consults the enabled sources in fixed order — .env file, process
// environment, gh, hub configuration file, hub.oauthtoken Git config —
// and returns the first token found.
//
// A source that has no token is skipped and the next one is tried; if
// every enabled source comes up empty (or all are disabled), Get
// returns ErrNotFound. Any error other than ErrNotFound aborts
// resolution immediately without consulting the remaining sources (see
// FromHubOauthToken for the one source that can fail this way).
func Get(opts Options) (string, error) {
	var sources []func() (string, error)
	if !opts.NoDotenv {
		sources = append(sources, func() (string, error) {
			return FromDotenv(opts.DotenvPath)
		})
	}
	if !opts.NoEnviron {
		sources = append(sources, FromEnviron)
	}
	if !opts.NoGH {
		sources = append(sources, FromGH)
	}
	if !opts.NoHub {
		sources = append(sources, FromHub)
	}
	if !opts.NoHubOauthToken {
		sources = append(sources, FromHubOauthToken)
	}
	return resolve(sources)
}

// resolve runs each source in order and returns the first success.
// ErrNotFound means "try the next source"; anything else propagates
// as-is.
func resolve(sources []func() (string, error)) (string, error) {
	for _, source := range sources {
		token, err := source()
		if err == nil {
			return token, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return "", err
		}
	}
	return "", ErrNotFound
}
