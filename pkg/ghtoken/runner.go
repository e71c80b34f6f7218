package ghtoken

import "os/exec"

// Runner executes an external command and returns its captured standard
// output. Implementations report an error when the command cannot be
// started or exits nonzero; standard error is discarded either way.
//
// The gh and git sources go through a Runner so tests can script
// subprocess results without the real binaries installed.
type Runner interface {
	Output(name string, args ...string) ([]byte, error)
}

// execRunner is the default Runner, backed by os/exec with no shell
// interpretation and no timeout. A child that blocks (e.g. gh waiting
// on a keyring prompt) blocks resolution with it.
type execRunner struct{}

func (execRunner) Output(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

var defaultRunner Runner = execRunner{}
