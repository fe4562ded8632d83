package tui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Program wraps the tea.Program and Bridge for lifecycle management.
type Program struct {
	program *tea.Program
	bridge  *Bridge
}

// New creates a new TUI program showing progress, styled with theme and
// keeping up to maxLines output lines.
func New(progress ProgressInfo, theme Theme, maxLines int, opts ...tea.ProgramOption) *Program {
	// Handle NO_COLOR environment variable
	if os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	model := NewModel(ResolveTheme(theme), maxLines)
	model.SetProgress(progress)

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}, opts...)
	program := tea.NewProgram(model, opts...)

	return &Program{
		program: program,
		bridge:  NewBridge(program),
	}
}

// Run starts the TUI program. This blocks until the program exits.
func (p *Program) Run() error {
	_, err := p.program.Run()
	return err
}

// Bridge returns the Bridge which implements io.Writer for streaming output.
func (p *Program) Bridge() *Bridge {
	return p.bridge
}

// Send sends a message to the program.
func (p *Program) Send(msg tea.Msg) {
	p.program.Send(msg)
}

// SendProgress sends updated run information to the program.
func (p *Program) SendProgress(progress ProgressInfo) {
	p.program.Send(ProgressMsg(progress))
}

// SendDone flushes the bridge and reports that the command finished.
func (p *Program) SendDone(done DoneMsg) {
	p.bridge.Flush()
	p.program.Send(done)
}

// Quit sends a quit message to the program.
func (p *Program) Quit() {
	p.program.Quit()
}

// Kill forcefully terminates the program.
func (p *Program) Kill() {
	p.program.Kill()
}

// Wait waits for the program to finish.
func (p *Program) Wait() {
	p.program.Wait()
}
