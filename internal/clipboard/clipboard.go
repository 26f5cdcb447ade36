// Package clipboard places assembled prompt text on the system clipboard.
package clipboard

import (
	"fmt"
	"runtime"

	atotto "github.com/atotto/clipboard"
)

// Copy copies text to the system clipboard.
func Copy(text string) error {
	if atotto.Unsupported {
		return fmt.Errorf("clipboard not supported on %s\n%s", runtime.GOOS, InstallInstructions())
	}
	if err := atotto.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// CopyWithFallback attempts to copy to clipboard and returns a message
func CopyWithFallback(text string) (string, error) {
	if err := Copy(text); err != nil {
		return "", err
	}
	return "Copied to clipboard!", nil
}

// IsAvailable reports whether clipboard functionality is available.
func IsAvailable() bool {
	return !atotto.Unsupported
}

// InstallInstructions returns installation instructions for clipboard
// utilities on platforms that need one.
func InstallInstructions() string {
	switch runtime.GOOS {
	case "linux":
		return "Install a clipboard utility:\n" +
			"  • Ubuntu/Debian: sudo apt install xclip\n" +
			"  • Fedora/RHEL: sudo dnf install xclip\n" +
			"  • Arch: sudo pacman -S xclip\n" +
			"  • For Wayland: install wl-clipboard"
	case "darwin":
		return "pbcopy should be available by default on macOS"
	case "windows":
		return "clip should be available by default on Windows"
	default:
		return fmt.Sprintf("Clipboard not supported on %s", runtime.GOOS)
	}
}
