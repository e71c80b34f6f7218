package ghtoken

// FromGH asks the gh CLI for its stored github.com token by running
// `gh auth token --hostname github.com` and capturing standard output.
// A gh that is missing, exits nonzero, or prints nothing yields
// ErrNotFound.
//
// gh may prompt interactively (for example to unlock a system keyring);
// that happens on the inherited terminal, outside this package's
// control.
func FromGH() (string, error) {
	return ghAuthToken(defaultRunner)
}

func ghAuthToken(run Runner) (string, error) {
	out, err := run.Output("gh", "auth", "token", "--hostname", "github.com")
	if err != nil {
		return "", ErrNotFound
	}
	token := chomp(string(out))
	if token == "" {
		return "", ErrNotFound
	}
	return token, nil
}
