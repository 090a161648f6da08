package brew

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/unbrew/pkg/errors"
	"github.com/arthur-debert/unbrew/pkg/logging"
	"github.com/rs/zerolog"
)

// DefaultCommand is the executable used when none is configured.
const DefaultCommand = "brew"

// Client issues list, info and rm calls against one brew executable.
type Client struct {
	runner  Runner
	command string
	logger  zerolog.Logger
}

// NewClient creates a client running command through runner. An empty
// command means DefaultCommand.
func NewClient(runner Runner, command string) *Client {
	if command == "" {
		command = DefaultCommand
	}
	return &Client{
		runner:  runner,
		command: command,
		logger:  logging.GetLogger("brew.client"),
	}
}

// ListInstalled returns the names of all installed formulas.
func (c *Client) ListInstalled(ctx context.Context) ([]string, error) {
	out, err := c.run(ctx, "list", "--formula")
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(out.Stdout) {
		return nil, errors.New(errors.ErrBrewDecode, "unable to parse brew list result: output is not valid UTF-8")
	}

	names := strings.Fields(string(out.Stdout))
	c.logger.Debug().Int("count", len(names)).Msg("Listed installed formulas")
	return names, nil
}

// Info fetches metadata for names in a single batched call. No process is
// started when names is empty.
func (c *Client) Info(ctx context.Context, names []string) ([]Formula, error) {
	if len(names) == 0 {
		return []Formula{}, nil
	}

	args := append([]string{"info", "--json"}, names...)
	out, err := c.run(ctx, args...)
	if err != nil {
		return nil, err
	}

	formulae, err := ParseFormulae(out.Stdout)
	if err != nil {
		return nil, err
	}
	c.logger.Debug().Int("requested", len(names)).Int("received", len(formulae)).Msg("Fetched formula metadata")
	return formulae, nil
}

// Remove uninstalls a single formula.
func (c *Client) Remove(ctx context.Context, name string) error {
	_, err := c.run(ctx, "rm", name)
	if err != nil {
		return err
	}
	c.logger.Info().Str("formula", name).Msg("Removed formula")
	return nil
}

func (c *Client) run(ctx context.Context, args ...string) (Output, error) {
	logging.LogCommand(c.logger, c.command, args)
	done := logging.LogOperationStart(c.logger, c.command+" "+args[0])
	defer done()

	out, err := c.runner.Run(ctx, c.command, args...)
	if err != nil {
		return out, errors.Wrapf(err, errors.ErrBrewExec, "failed to run %s %s", c.command, args[0]).
			WithDetail(errors.DetailCommand, c.command).
			WithDetail(errors.DetailArgs, args)
	}

	if out.ExitCode != 0 {
		c.logger.Debug().
			Int("exitCode", out.ExitCode).
			Str("stderr", string(out.Stderr)).
			Msg("Command failed")
		return out, errors.Newf(errors.ErrBrewExec, "%s %s exited with status %d", c.command, args[0], out.ExitCode).
			WithDetail(errors.DetailCommand, c.command).
			WithDetail(errors.DetailArgs, args).
			WithDetail(errors.DetailExitCode, out.ExitCode).
			WithDetail(errors.DetailStderr, string(out.Stderr))
	}

	return out, nil
}
