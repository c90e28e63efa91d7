// Package shell provides the shell executor adapter.
package shell

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/shipwright/internal/core/domain"
	"go.trai.ch/shipwright/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Run executes the command and blocks until it exits.
// The environment is the process environment with cmd.Environment applied on
// top; toolkit selection variables reach freeze scripts this way. Stdout and
// stderr are streamed line by line to the logger.
func (e *Executor) Run(ctx context.Context, cmd *domain.Command) error {
	if len(cmd.Args) == 0 {
		return zerr.With(zerr.New("empty command"), "command", cmd.Name)
	}

	c := exec.CommandContext(ctx, cmd.Args[0], cmd.Args[1:]...) //nolint:gosec // command comes from validated config

	if cmd.WorkingDir != "" {
		c.Dir = cmd.WorkingDir
	}

	c.Env = resolveEnvironment(os.Environ(), cmd.Environment)

	stdout := &lineWriter{logger: e.logger, level: "info"}
	stderr := &lineWriter{logger: e.logger, level: "error"}
	c.Stdout = io.Writer(stdout)
	c.Stderr = io.Writer(stderr)

	// When a pipeline step is being recorded, its vertex also receives
	// the raw stream.
	if v := ports.VertexFromContext(ctx); v != nil {
		c.Stdout = io.MultiWriter(stdout, v.Stdout())
		c.Stderr = io.MultiWriter(stderr, v.Stdout())
	}

	err := c.Run()
	stdout.flush()
	stderr.flush()

	if err != nil {
		exitCode := -1 // unknown or signal
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}

		failed := zerr.Wrap(err, "command failed")
		failed = zerr.With(failed, "command", cmd.Name)
		return zerr.With(failed, "exit_code", exitCode)
	}

	return nil
}

// lineWriter buffers partial writes and forwards complete lines to the logger.
type lineWriter struct {
	logger ports.Logger
	level  string
	buf    bytes.Buffer
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.buf.Write(p)

	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// Put the partial line back until more bytes arrive.
			w.buf.WriteString(line)
			break
		}
		w.emit(strings.TrimSuffix(line, "\n"))
	}

	return len(p), nil
}

// flush emits any trailing line without a newline terminator.
func (w *lineWriter) flush() {
	if w.buf.Len() == 0 {
		return
	}
	w.emit(w.buf.String())
	w.buf.Reset()
}

func (w *lineWriter) emit(line string) {
	if line == "" {
		return
	}
	if w.level == "info" {
		w.logger.Info(line)
		return
	}
	w.logger.Error(zerr.New(line))
}

// resolveEnvironment merges overrides on top of the process environment.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	if len(overrides) == 0 {
		return sysEnv
	}

	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}
	for k, v := range overrides {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}
