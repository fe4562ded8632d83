// Package executor runs a watched command and keeps the most recent part of
// its combined output in a fixed-size text ring.
package executor

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/flashingpumpkin/ringtail/internal/completion"
	"github.com/flashingpumpkin/ringtail/internal/config"
	"github.com/flashingpumpkin/ringtail/internal/errors"
	"github.com/flashingpumpkin/ringtail/internal/textring"
)

const (
	// readChunkSize is the size of each read from the command's output pipe (32KB).
	readChunkSize = 32 * 1024

	// waitDelay bounds how long Wait blocks on output pipes held open by
	// grandchildren after the command itself has been killed.
	waitDelay = 2 * time.Second

	// TimeoutExitCode is reported when the command is stopped by --timeout,
	// matching timeout(1).
	TimeoutExitCode = 124
)

// ExecutionResult contains the result of a watched command.
type ExecutionResult struct {
	// Output is a copy of the output window when the command finished.
	Output string

	// ExitCode is the exit code of the command.
	ExitCode int

	// Duration is how long the execution took.
	Duration time.Duration

	// BytesSeen is the total number of output bytes read, including bytes
	// that have since been evicted from the window.
	BytesSeen int64

	// Truncated is true when BytesSeen exceeded the window capacity.
	Truncated bool

	// Matched is true when the command was stopped because the --until
	// pattern appeared in the window.
	Matched bool

	// Completed indicates whether the command exited successfully or was
	// stopped by a match.
	Completed bool

	// Error contains any error that occurred during execution, or
	// errors.ErrPatternMatched when the detector stopped the command.
	Error error
}

// Executor manages the execution of a watched command.
type Executor struct {
	config       *config.Config
	streamWriter io.Writer
	detector     *completion.Detector

	mu        sync.Mutex
	window    *textring.Ring
	bytesSeen int64
}

// New creates a new Executor with the given configuration. The output
// window is allocated once with cfg.Capacity bytes.
func New(cfg *config.Config) *Executor {
	e := &Executor{
		config: cfg,
		window: textring.New(make([]byte, max(cfg.Capacity, 0))),
	}
	if cfg.Until != "" {
		e.detector = completion.New(cfg.Until)
	}
	return e
}

// SetStreamWriter sets the writer that receives every output chunk as it
// arrives, such as the TUI bridge or a stream processor.
func (e *Executor) SetStreamWriter(w io.Writer) {
	e.streamWriter = w
}

// SetDetector replaces the detector built from cfg.Until.
func (e *Executor) SetDetector(d *completion.Detector) {
	e.detector = d
}

// BuildArgs returns the arguments passed to the command, without the
// program name.
func (e *Executor) BuildArgs() []string {
	if len(e.config.Command) < 2 {
		return nil
	}
	return append([]string(nil), e.config.Command[1:]...)
}

// GetCommand returns the full command string that will be executed.
func (e *Executor) GetCommand() string {
	quoted := make([]string, len(e.config.Command))
	for i, arg := range e.config.Command {
		if arg == "" || strings.ContainsAny(arg, " \t\n\"'") {
			quoted[i] = fmt.Sprintf("%q", arg)
		} else {
			quoted[i] = arg
		}
	}
	return strings.Join(quoted, " ")
}

// Window returns a copy of the current output window. It is safe to call
// while Execute is running.
func (e *Executor) Window() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.window.String()
}

// Stats returns the bytes currently held in the window, the window
// capacity and the total bytes read so far.
func (e *Executor) Stats() (held, capacity int, seen int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.window.Len(), e.window.Cap(), e.bytesSeen
}

// record appends chunk to the window and reports whether the detector
// matches the updated window.
func (e *Executor) record(chunk []byte) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, _ = e.window.Write(chunk)
	e.bytesSeen += int64(len(chunk))
	return e.detector.Check(e.window.Extract())
}

func (e *Executor) result(duration time.Duration) *ExecutionResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	return &ExecutionResult{
		Output:    e.window.String(),
		Duration:  duration,
		BytesSeen: e.bytesSeen,
		Truncated: e.bytesSeen > int64(e.window.Cap()),
	}
}

// Execute runs the configured command with stdout and stderr combined.
// It returns an error if the command is empty or not in PATH, and stops the
// command when ctx is cancelled, when cfg.Timeout elapses, or when the
// detector matches the output window. Execute resets the window, so an
// Executor can run its command more than once but not concurrently.
func (e *Executor) Execute(ctx context.Context) (*ExecutionResult, error) {
	if len(e.config.Command) == 0 {
		return nil, errors.ErrNoCommand
	}

	cmdPath, err := exec.LookPath(e.config.Command[0])
	if err != nil {
		return nil, fmt.Errorf("%s not found in PATH: %w", e.config.Command[0], err)
	}

	e.mu.Lock()
	e.window.Clear()
	e.bytesSeen = 0
	e.mu.Unlock()

	var (
		runCtx context.Context
		cancel context.CancelFunc
	)
	if e.config.Timeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, e.config.Timeout)
	} else {
		runCtx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	cmd := exec.CommandContext(runCtx, cmdPath, e.BuildArgs()...)
	cmd.WaitDelay = waitDelay
	if e.config.WorkingDir != "" && e.config.WorkingDir != "." {
		cmd.Dir = e.config.WorkingDir
	}

	pipe, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create stdout pipe: %w", err)
	}
	cmd.Stderr = cmd.Stdout

	startTime := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start command: %w", err)
	}

	var matched bool
	buf := make([]byte, readChunkSize)
	for {
		n, readErr := pipe.Read(buf)
		if n > 0 {
			if e.streamWriter != nil {
				_, _ = e.streamWriter.Write(buf[:n])
			}
			if e.record(buf[:n]) {
				matched = true
				cancel()
				break
			}
		}
		if readErr != nil {
			break
		}
	}

	runErr := cmd.Wait()
	result := e.result(time.Since(startTime))

	// Handle cancellation of the caller's context first, it takes priority
	if ctx.Err() != nil {
		result.Error = ctx.Err()
		return result, ctx.Err()
	}

	if matched {
		result.Matched = true
		result.Completed = true
		result.Error = fmt.Errorf("%w: %q", errors.ErrPatternMatched, e.detector.Pattern())
		return result, nil
	}

	if runCtx.Err() == context.DeadlineExceeded {
		result.ExitCode = TimeoutExitCode
		result.Error = fmt.Errorf("command timed out after %s: %w", e.config.Timeout, context.DeadlineExceeded)
		return result, nil
	}

	if runErr != nil {
		result.ExitCode = 1
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
		}
		result.Error = runErr
		return result, nil
	}

	result.Completed = true
	return result, nil
}
