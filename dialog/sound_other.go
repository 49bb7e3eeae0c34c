//go:build !windows

package dialog

import "os"

// beep writes the terminal bell; there is no system sound API to call
// outside Windows.
func beep() {
	_, _ = os.Stdout.WriteString("\a")
}
