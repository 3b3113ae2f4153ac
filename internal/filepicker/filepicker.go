// Package filepicker opens the operating system's file dialog to choose an image
package filepicker

import (
	"context"
	"os/exec"
	"runtime"
	"strings"

	"github.com/KirkDiggler/pokidex/internal/errors"
)

const dialogTitle = "Select a Pokémon image"

const macScript = `
set selectedFile to choose file with prompt "Select a Pokémon image" of type {"public.image"}
POSIX path of selectedFile
`

const windowsScript = `
Add-Type -AssemblyName System.Windows.Forms
$dialog = New-Object System.Windows.Forms.OpenFileDialog
$dialog.Filter = "Image files (*.png;*.jpg;*.jpeg;*.webp;*.gif)|*.png;*.jpg;*.jpeg;*.webp;*.gif|All files (*.*)|*.*"
$dialog.Title = "Select a Pokémon image"
if ($dialog.ShowDialog() -eq [System.Windows.Forms.DialogResult]::OK) {
  Write-Output $dialog.FileName
}
`

// Runner executes a command and returns its stdout
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// ExecRunner runs commands with os/exec
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

type dialog struct {
	name string
	args []string
	// optional dialogs are skipped when missing, failing or cancelled
	optional bool
}

var dialogs = map[string][]dialog{
	"darwin": {
		{name: "osascript", args: []string{"-e", macScript}},
	},
	"windows": {
		{name: "powershell", args: []string{"-NoProfile", "-Command", windowsScript}},
	},
	"linux": {
		{name: "zenity", optional: true, args: []string{
			"--file-selection",
			"--title=" + dialogTitle,
			"--file-filter=Image files | *.png *.jpg *.jpeg *.webp *.gif",
		}},
		{name: "kdialog", optional: true, args: []string{
			"--getopenfilename", ".", "*.png *.jpg *.jpeg *.webp *.gif|Image files", "--title", dialogTitle,
		}},
	},
}

// Picker chooses a file interactively
type Picker struct {
	GOOS   string
	Runner Runner
}

// New returns a picker for the running platform
func New() *Picker {
	return &Picker{GOOS: runtime.GOOS, Runner: ExecRunner}
}

// Pick opens the dialog and returns the chosen path
func (p *Picker) Pick(ctx context.Context) (string, error) {
	candidates, ok := dialogs[p.GOOS]
	if !ok {
		return "", errors.Unimplementedf(
			"interactive file picker is not supported on %s; use: pokidex identify-image <path>", p.GOOS)
	}

	for _, d := range candidates {
		out, err := p.Runner(ctx, d.name, d.args...)
		if ctx.Err() != nil {
			return "", errors.Wrap(ctx.Err(), "file selection interrupted")
		}
		path := strings.TrimSpace(string(out))

		switch {
		case err != nil && d.optional:
			continue
		case err != nil:
			return "", errors.WrapWithCodef(err, errors.CodeCanceled,
				"image selection was cancelled or failed (%s)", d.name)
		case path == "" && d.optional:
			continue
		case path == "":
			return "", errors.New(errors.CodeCanceled, "no file was selected")
		}
		return path, nil
	}

	return "", errors.FailedPrecondition(
		"could not open a file chooser; install 'zenity' or 'kdialog', or use: pokidex identify-image <path>")
}
