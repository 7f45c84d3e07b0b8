package notify

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Runner executes an external command.
type Runner func(ctx context.Context, name string, args ...string) error

func execRunner(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// DesktopNotifier shows a desktop notification through osascript on macOS
// and notify-send elsewhere.
type DesktopNotifier struct {
	goos string
	run  Runner
}

// NewDesktopNotifier creates a notifier for the current platform.
func NewDesktopNotifier() *DesktopNotifier {
	return &DesktopNotifier{goos: runtime.GOOS, run: execRunner}
}

// Send shows the notification.
func (d *DesktopNotifier) Send(ctx context.Context, n Notification) error {
	name, args := d.command(n)
	if err := d.run(ctx, name, args...); err != nil {
		return fmt.Errorf("run %s: %w", name, err)
	}
	return nil
}

func (d *DesktopNotifier) command(n Notification) (string, []string) {
	subject := n.Subject
	if subject == "" {
		subject = "Legendaly"
	}

	if d.goos == "darwin" {
		script := fmt.Sprintf("display notification %s with title %s", appleScriptString(n.Body), appleScriptString(subject))
		return "osascript", []string{"-e", script}
	}
	return "notify-send", []string{subject, n.Body}
}

// appleScriptString quotes s as an AppleScript string literal.
func appleScriptString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
