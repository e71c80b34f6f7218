package cli

import (
	"errors"
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/willabides/kongplete"

	"github.com/semmy-space/ghtoken/internal/output"
	"github.com/semmy-space/ghtoken/pkg/ghtoken"
)

// Globals holds the source-selection flags available to all commands
type Globals struct {
	Env             string `help:"Use specified .env file" short:"E" placeholder:"FILE" predictor:"file"`
	NoDotenv        bool   `help:"Do not consult .env file"`
	NoEnviron       bool   `help:"Do not consult environment variables"`
	NoGh            bool   `help:"Do not consult gh"`
	NoHub           bool   `help:"Do not consult hub configuration file"`
	NoHubOauthtoken bool   `help:"Do not consult hub.oauthtoken Git config option"`
}

// Options maps the CLI flags onto the library's resolution options
func (g *Globals) Options() ghtoken.Options {
	return ghtoken.Options{
		NoDotenv:        g.NoDotenv,
		DotenvPath:      g.Env,
		NoEnviron:       g.NoEnviron,
		NoGH:            g.NoGh,
		NoHub:           g.NoHub,
		NoHubOauthToken: g.NoHubOauthtoken,
	}
}

// CLI is the root command structure
type CLI struct {
	Globals

	Get                GetCmd                       `cmd:"" default:"1" help:"Print the first GitHub token found (default)"`
	Version            VersionCmd                   `cmd:"" help:"Show version information"`
	InstallCompletions kongplete.InstallCompletions `cmd:"" help:"Install shell completions"`
}

// BeforeApply hook runs before any command execution and binds the
// shared flags into the kong context
func (c *CLI) BeforeApply(ctx *kong.Context) error {
	ctx.Bind(&c.Globals)
	return nil
}

// GetCmd resolves a token from the enabled sources and prints it
type GetCmd struct{}

// Run executes the get command
func (cmd *GetCmd) Run(globals *Globals) error {
	token, err := ghtoken.Get(globals.Options())
	if err != nil {
		if errors.Is(err, ghtoken.ErrNotFound) {
			return output.NewCLIError(output.ExitNotFound, err.Error()).
				WithHint("Hint: set GH_TOKEN, or run: gh auth login")
		}
		// Hard error (e.g. a failing hub.oauthtoken shell command):
		// surfaced as-is, never rewritten to the not-found message.
		return err
	}
	fmt.Println(token)
	return nil
}

// VersionCmd shows version information
type VersionCmd struct{}

func (cmd *VersionCmd) Run(ctx *kong.Context) error {
	version := ctx.Model.Vars()["version"]
	println("ghtoken version " + version)
	return nil
}
