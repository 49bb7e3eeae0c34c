//go:build windows

package dialog

import "golang.org/x/sys/windows"

var (
	user32          = windows.NewLazySystemDLL("user32.dll")
	procMessageBeep = user32.NewProc("MessageBeep")
)

const mbIconAsterisk = 0x00000040

// beep plays the system notification sound.
func beep() {
	_, _, _ = procMessageBeep.Call(uintptr(mbIconAsterisk))
}
