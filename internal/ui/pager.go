package ui

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// ErrNoProgram is returned when the pager is used before SetProgram
var ErrNoProgram = errors.New("program not set")

// ExternalOps runs things that leave the TUI: the pager, the browser and
// the clipboard
type ExternalOps struct {
	program *tea.Program
}

// NewExternalOps creates the operations bound to program, which may be set later
func NewExternalOps(program *tea.Program) *ExternalOps {
	return &ExternalOps{program: program}
}

// SetProgram sets the program whose terminal the pager borrows
func (o *ExternalOps) SetProgram(p *tea.Program) {
	o.program = p
}

// ShowInPager shows content using ov
func (o *ExternalOps) ShowInPager(content string) error {
	if o.program == nil {
		return ErrNoProgram
	}

	if err := o.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Let ov finish with the terminal before Bubble Tea takes it back
		time.Sleep(100 * time.Millisecond)
		_ = o.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// OpenURL opens url in the default browser
func (o *ExternalOps) OpenURL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}

// Copy puts text on the system clipboard
func (o *ExternalOps) Copy(text string) error {
	return clipboard.WriteAll(text)
}
