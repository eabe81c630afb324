// Package convert hands the selected save folder to the external conversion
// command.
package convert

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/backmassage/astrosave/internal/logging"
)

// ErrNoCommand is returned when no conversion command was configured.
var ErrNoCommand = errors.New("no conversion command configured")

// Result holds the outcome of a single conversion run.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

// OK reports whether the command ran and exited with status 0.
func (r Result) OK() bool { return r.Err == nil }

// Converter runs "<command> <folder>". Command may carry fixed leading
// arguments separated by spaces; the folder is always appended as exactly
// one extra argument.
type Converter struct {
	Command string
	Verbose bool         // Tee the child's output to Stdout/Stderr as it runs.
	Stdout  io.Writer    // Default: os.Stdout.
	Stderr  io.Writer    // Default: os.Stderr.
	Log     logging.Sink // Default: logging.Discard.
}

// Argv returns the argument vector used for folder.
func (c *Converter) Argv(folder string) ([]string, error) {
	fields := strings.Fields(c.Command)
	if len(fields) == 0 {
		return nil, ErrNoCommand
	}
	return append(fields, folder), nil
}

// Run executes the command and waits for it. Output is always captured; when
// Verbose is set it is also streamed. Cancelling ctx kills the child.
func (c *Converter) Run(ctx context.Context, folder string) Result {
	argv, err := c.Argv(folder)
	if err != nil {
		return Result{ExitCode: -1, Err: err}
	}
	logging.Logf(c.Log, logging.LevelDebug, "Running %q", argv)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	var stdoutBuf, stderrBuf bytes.Buffer
	if c.Verbose {
		cmd.Stdout = io.MultiWriter(&stdoutBuf, orDefault(c.Stdout, os.Stdout))
		cmd.Stderr = io.MultiWriter(&stderrBuf, orDefault(c.Stderr, os.Stderr))
	} else {
		cmd.Stdout = &stdoutBuf
		cmd.Stderr = &stderrBuf
	}

	res := Result{ExitCode: -1}
	if err := cmd.Run(); err != nil {
		res.Err = eris.Wrapf(err, "convert %s", folder)
	}
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	}
	res.Stdout = stdoutBuf.String()
	res.Stderr = stderrBuf.String()
	return res
}

// LookPath reports where the command's executable resolves on PATH.
func (c *Converter) LookPath() (string, error) {
	fields := strings.Fields(c.Command)
	if len(fields) == 0 {
		return "", ErrNoCommand
	}
	return exec.LookPath(fields[0])
}

func orDefault(w, def io.Writer) io.Writer {
	if w == nil {
		return def
	}
	return w
}
