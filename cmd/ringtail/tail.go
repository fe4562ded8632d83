package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/flashingpumpkin/ringtail/internal/config"
	"github.com/flashingpumpkin/ringtail/internal/textring"
	"github.com/flashingpumpkin/ringtail/internal/util"
	"github.com/spf13/cobra"
)

const tailChunkSize = 32 * 1024

type tailOptions struct {
	capacity string
	lines    int
	strict   bool
}

func newTailCmd() *cobra.Command {
	opts := &tailOptions{}
	cmd := &cobra.Command{
		Use:   "tail [file]",
		Short: "Print the most recent output of a file or stdin",
		Long: `Read a file, or stdin when no file or "-" is given, through a fixed-size
window and print what is left in it at the end.

With --strict, tail fails as soon as the input no longer fits in the window
instead of discarding the oldest bytes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTail(cmd, opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.capacity, "capacity", "c", "", "Window size, e.g. 4096, 64KiB or 1MB (default 64KiB)")
	cmd.Flags().IntVarP(&opts.lines, "lines", "n", 0, "Print only the last N lines of the window")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail instead of discarding output that does not fit")
	return cmd
}

func runTail(cmd *cobra.Command, opts *tailOptions, args []string) error {
	cfg := config.NewConfig()
	if err := config.ApplyEnv(cfg); err != nil {
		return err
	}
	if opts.capacity != "" {
		n, err := config.ParseCapacity(opts.capacity)
		if err != nil {
			return fmt.Errorf("invalid --capacity: %w", err)
		}
		cfg.Capacity = n
	}
	if opts.lines < 0 {
		return fmt.Errorf("--lines cannot be negative")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	window, err := readWindow(in, cfg.Capacity, opts.strict)
	if err != nil {
		return err
	}
	if opts.lines > 0 {
		window = lastLines(window, opts.lines)
	}

	_, err = io.WriteString(cmd.OutOrStdout(), window)
	return err
}

// readWindow reads r to the end through a text ring of capacity bytes and
// returns what the ring holds. In strict mode the first chunk that does not
// fit aborts the read.
func readWindow(r io.Reader, capacity int, strict bool) (string, error) {
	ring := textring.New(make([]byte, capacity))

	if !strict {
		if _, err := io.Copy(ring, r); err != nil {
			return "", err
		}
		return ring.String(), nil
	}

	buf := make([]byte, tailChunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if werr := ring.TryWrite(buf[:n]); werr != nil {
				return "", fmt.Errorf("input does not fit in a %s window: %w", util.FormatBytes(capacity), werr)
			}
		}
		if err == io.EOF {
			return ring.String(), nil
		}
		if err != nil {
			return "", err
		}
	}
}

// lastLines returns the last n lines of s. A trailing newline does not
// start a new line.
func lastLines(s string, n int) string {
	end := len(s)
	if strings.HasSuffix(s, "\n") {
		end--
	}
	i := end
	for ; n > 0; n-- {
		j := strings.LastIndexByte(s[:i], '\n')
		if j < 0 {
			return s
		}
		i = j
	}
	return s[i+1:]
}
