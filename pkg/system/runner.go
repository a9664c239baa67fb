// Package system wraps the external collaborators appin shells out to:
// the OS package manager and the desktop-database refresher. Both sit
// behind small interfaces so the command layer stays testable without a
// desktop environment.
package system

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/arthur-debert/appin/pkg/logging"
	"github.com/rs/zerolog"
)

// commandTimeout bounds any single external command
const commandTimeout = 5 * time.Minute

// Runner executes external commands and captures their output
type Runner interface {
	Run(name string, args ...string) (stdout string, err error)
}

// execRunner runs commands through os/exec with a timeout
type execRunner struct {
	logger zerolog.Logger
}

// NewRunner creates the default command runner
func NewRunner() Runner {
	return &execRunner{logger: logging.GetLogger("system.runner")}
}

func (r *execRunner) Run(name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Debug().Str("command", name).Strs("args", args).Msg("Executing command")
	err := cmd.Run()

	if stderr.Len() > 0 {
		r.logger.Debug().Str("command", name).Str("stderr", stderr.String()).Msg("Command stderr")
	}

	return stdout.String(), err
}
