package ghtoken

import (
	"errors"
	"os"
	"strings"
	"testing"
)

// fakeRunner scripts subprocess results by full command line.
// An unscripted command behaves like one that exited nonzero.
type fakeRunner struct {
	results map[string]fakeResult
	calls   []string
}

type fakeResult struct {
	out string
	err error
}

func (r *fakeRunner) Output(name string, args ...string) ([]byte, error) {
	cmdline := strings.Join(append([]string{name}, args...), " ")
	r.calls = append(r.calls, cmdline)
	res, ok := r.results[cmdline]
	if !ok {
		return nil, errors.New("exit status 1")
	}
	return []byte(res.out), res.err
}

// clearTokenEnv unsets GH_TOKEN and GITHUB_TOKEN for the duration of
// the test, restoring any previous values afterwards.
func clearTokenEnv(t *testing.T) {
	t.Helper()
	for _, name := range envVars {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

// clearHubEnv unsets the variables that steer hub config file
// resolution so a developer's real setup can't leak into a test.
func clearHubEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"HUB_CONFIG", "XDG_CONFIG_HOME", "XDG_CONFIG_DIRS"} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}
