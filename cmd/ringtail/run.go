package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/flashingpumpkin/ringtail/internal/config"
	"github.com/flashingpumpkin/ringtail/internal/executor"
	"github.com/flashingpumpkin/ringtail/internal/output"
	"github.com/flashingpumpkin/ringtail/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type runOptions struct {
	capacity   string
	lines      int
	until      string
	timeout    time.Duration
	workingDir string
	configFile string
	minimal    bool
	follow     bool
	quiet      bool
	theme      string
}

func newRunCmd() *cobra.Command {
	return newRunCmdWithOptions(&runOptions{})
}

func newRunCmdWithOptions(opts *runOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [flags] -- <command> [args...]",
		Short: "Run a command and keep its most recent output",
		Long: `Run a command with stdout and stderr combined, keeping only the most recent
--capacity bytes of its output.

The command stops when it exits, when --timeout elapses, or when its recent
output contains the --until text. Ringtail exits with the command's status,
124 on timeout and 130 when interrupted.`,
		Example: `  ringtail run -- make test
  ringtail run -c 1MiB -u "Listening on" -- ./server
  ringtail run --minimal -f -- go test ./...`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, opts, args)
		},
	}

	// Everything after the command name belongs to the command.
	cmd.Flags().SetInterspersed(false)

	flags := cmd.Flags()
	flags.StringVarP(&opts.capacity, "capacity", "c", "", "Output window size, e.g. 4096, 64KiB or 1MB (default 64KiB)")
	flags.IntVar(&opts.lines, "lines", config.DefaultMaxLines, "Number of lines kept by the terminal UI")
	flags.StringVarP(&opts.until, "until", "u", "", "Stop the command once its output contains this text")
	flags.DurationVarP(&opts.timeout, "timeout", "t", 0, "Stop the command after this long (0 = no limit)")
	flags.StringVarP(&opts.workingDir, "working-dir", "d", ".", "Directory to run the command in")
	flags.StringVar(&opts.configFile, "config", "", "Path to config file (default: .ringtail/config.toml)")
	flags.BoolVar(&opts.minimal, "minimal", false, "Use minimal output mode (no TUI)")
	flags.BoolVarP(&opts.follow, "follow", "f", false, "Stream output lines as they arrive (minimal mode)")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress banner, spinner and summary")
	flags.StringVar(&opts.theme, "theme", "auto", "TUI colour theme: auto, dark or light")

	return cmd
}

// buildConfig resolves the configuration for a run. Precedence from lowest
// to highest: defaults, config file, environment, flags.
func buildConfig(cmd *cobra.Command, opts *runOptions, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var (
		fileConfig *config.FileConfig
		err        error
	)
	if opts.configFile != "" {
		fileConfig, err = config.LoadFileConfigFrom(opts.configFile)
	} else {
		fileConfig, err = config.LoadFileConfig(opts.workingDir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	if fileConfig != nil {
		if err := fileConfig.Apply(cfg); err != nil {
			return nil, fmt.Errorf("invalid config file: %w", err)
		}
	}

	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("capacity") {
		n, err := config.ParseCapacity(opts.capacity)
		if err != nil {
			return nil, fmt.Errorf("invalid --capacity: %w", err)
		}
		cfg.Capacity = n
	}
	if flags.Changed("lines") {
		cfg.MaxLines = opts.lines
	}
	if flags.Changed("until") {
		cfg.Until = opts.until
	}
	if flags.Changed("theme") {
		cfg.Theme = opts.theme
	}

	cfg.Command = args
	cfg.Timeout = opts.timeout
	cfg.WorkingDir = opts.workingDir
	cfg.Minimal = opts.minimal
	cfg.Follow = opts.follow
	cfg.Quiet = opts.quiet

	if err := cfg.ValidateRun(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runRun(cmd *cobra.Command, opts *runOptions, args []string) error {
	cfg, err := buildConfig(cmd, opts, args)
	if err != nil {
		return err
	}

	ctx, cancel := setupSignalHandler(cmd.Context())
	defer cancel()

	exec := executor.New(cfg)

	var result *executor.ExecutionResult
	if shouldUseTUI(cfg) {
		result, err = runWithTUI(ctx, cmd.OutOrStdout(), cfg, exec)
	} else {
		result, err = runMinimal(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, exec)
	}

	if errors.Is(err, context.Canceled) && result != nil {
		return &exitError{code: interruptExitCode}
	}
	if err != nil {
		return err
	}
	if code := exitCode(result); code != 0 {
		return &exitError{code: code}
	}
	return nil
}

// exitCode maps a finished run to the status ringtail exits with.
func exitCode(result *executor.ExecutionResult) int {
	switch {
	case result.Matched, result.Completed:
		return 0
	case errors.Is(result.Error, context.Canceled):
		return interruptExitCode
	default:
		return result.ExitCode
	}
}

// shouldUseTUI determines whether to use the TUI based on flags and environment.
func shouldUseTUI(cfg *config.Config) bool {
	if cfg.Minimal || cfg.Follow || cfg.Quiet {
		return false
	}

	// CI environment disables TUI
	if os.Getenv("CI") != "" {
		return false
	}

	return term.IsTerminal(int(os.Stdout.Fd()))
}

// runWithTUI runs the command behind the TUI. The TUI stays open after the
// command finishes until the user quits; quitting early stops the command.
// The final window is printed once the TUI has released the terminal.
func runWithTUI(ctx context.Context, stdout io.Writer, cfg *config.Config, exec *executor.Executor) (*executor.ExecutionResult, error) {
	runCtx, stopRun := context.WithCancel(ctx)
	defer stopRun()

	program := tui.New(tui.ProgressInfo{
		Command: exec.GetCommand(),
		Until:   cfg.Until,
		Started: time.Now(),
	}, tui.Theme(cfg.Theme), cfg.MaxLines)

	bridge := program.Bridge()
	bridge.SetStatsSource(exec.Stats)
	exec.SetStreamWriter(bridge)

	tuiDone := make(chan error, 1)
	go func() {
		tuiDone <- program.Run()
		stopRun()
	}()

	result, err := exec.Execute(runCtx)
	if result == nil {
		program.Quit()
		<-tuiDone
		return nil, err
	}

	program.SendDone(tui.DoneMsg{
		ExitCode:  result.ExitCode,
		Matched:   result.Matched,
		Completed: result.Completed,
		Err:       result.Error,
		Duration:  result.Duration,
	})
	if tuiErr := <-tuiDone; tuiErr != nil && err == nil {
		err = fmt.Errorf("terminal UI failed: %w", tuiErr)
	}

	output.NewFormatter(cfg.Quiet, stdout).PrintWindow(result.Output, result.Truncated)
	return result, err
}

// runMinimal runs the command without the TUI. The banner, spinner and
// summary go to stderr so stdout carries only the command's output.
func runMinimal(ctx context.Context, stdout, stderr io.Writer, cfg *config.Config, exec *executor.Executor) (*executor.ExecutionResult, error) {
	status := output.NewFormatter(cfg.Quiet, stderr)
	status.PrintBanner(output.BannerConfig{
		Command:    exec.GetCommand(),
		Capacity:   cfg.Capacity,
		MaxLines:   cfg.MaxLines,
		Until:      cfg.Until,
		Timeout:    cfg.Timeout,
		WorkingDir: cfg.WorkingDir,
	})

	var stream *output.StreamProcessor
	if cfg.Follow {
		stream = output.NewStreamProcessor(stdout)
		if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			stream.SetWidth(width)
		}
		exec.SetStreamWriter(stream)
	}

	var sp *spinner.Spinner
	if !cfg.Quiet && !cfg.Follow && term.IsTerminal(int(os.Stderr.Fd())) {
		sp = spinner.New(spinner.CharSets[14], 100*time.Millisecond,
			spinner.WithWriter(os.Stderr),
			spinner.WithSuffix(" "+exec.GetCommand()))
		sp.Start()
	}

	result, err := exec.Execute(ctx)

	if sp != nil {
		sp.Stop()
	}
	if result == nil {
		return nil, err
	}

	var stats *output.OutputStats
	if stream != nil {
		stream.Flush()
		stats = stream.GetStats()
	} else {
		output.NewFormatter(cfg.Quiet, stdout).PrintWindow(result.Output, result.Truncated)
		stats = windowStats(result.Output)
	}

	held, capacity, _ := exec.Stats()
	status.PrintSummary(output.RunSummary{
		Command:   exec.GetCommand(),
		ExitCode:  result.ExitCode,
		Duration:  result.Duration,
		BytesSeen: result.BytesSeen,
		Held:      held,
		Capacity:  capacity,
		Truncated: result.Truncated,
		Matched:   result.Matched,
		Completed: result.Completed,
		Error:     result.Error,
		Stats:     stats,
	})

	return result, err
}

// windowStats counts the error and warning lines of a window.
func windowStats(window string) *output.OutputStats {
	parser := output.NewParser()
	for line := range strings.Lines(window) {
		parser.ParseLine(strings.TrimRight(line, "\r\n"))
	}
	return parser.GetStats()
}
