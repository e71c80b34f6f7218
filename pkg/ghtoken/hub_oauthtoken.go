package ghtoken

import (
	"fmt"
	"strings"
)

// defaultBaseURL is the hub.baseurl value that marks a token as
// belonging to github.com proper.
const defaultBaseURL = "https://api.github.com"

// FromHubOauthToken reads a token from the hub.oauthtoken Git config
// option via `git config --get hub.oauthtoken`. A git that is missing,
// exits nonzero, or prints nothing yields ErrNotFound.
//
// The token is only honored when the companion hub.baseurl option
// (defaulted to https://api.github.com when unset) matches that
// default exactly; a token pinned to some other host is discarded as
// ErrNotFound.
//
// A token value starting with "!" names a shell command: the remainder
// runs through `sh -c`, and its whitespace-trimmed standard output is
// the token. Unlike every other failure in this package, a failing
// shell command is NOT folded into ErrNotFound — the user configured
// that command themselves, and its breakage is surfaced as a distinct
// error that aborts resolution.
func FromHubOauthToken() (string, error) {
	return hubOauthToken(defaultRunner)
}

func hubOauthToken(run Runner) (string, error) {
	out, err := run.Output("git", "config", "--get", "hub.oauthtoken")
	if err != nil {
		return "", ErrNotFound
	}
	token := chomp(string(out))
	if token == "" {
		return "", ErrNotFound
	}

	out, err = run.Output("git", "config", "--get", "--default", defaultBaseURL, "hub.baseurl")
	if err != nil {
		return "", ErrNotFound
	}
	if chomp(string(out)) != defaultBaseURL {
		return "", ErrNotFound
	}

	if command, ok := strings.CutPrefix(token, "!"); ok {
		out, err := run.Output("sh", "-c", command)
		if err != nil {
			return "", fmt.Errorf("hub.oauthtoken command %q failed: %w", command, err)
		}
		return strings.TrimSpace(string(out)), nil
	}
	return token, nil
}
