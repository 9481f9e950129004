//go:build windows

package console

import (
	"fmt"

	"golang.org/x/sys/windows"
)

var (
	kernel32             = windows.NewLazySystemDLL("kernel32.dll")
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetConsoleWindow = kernel32.NewProc("GetConsoleWindow")
	procShowWindow       = user32.NewProc("ShowWindow")
)

type windowsConsole struct{}

// New returns the Visibility for the current platform.
func New() Visibility {
	return windowsConsole{}
}

// Show un-hides the console window attached to the process, if any.
func (windowsConsole) Show() error {
	if err := procGetConsoleWindow.Find(); err != nil {
		return fmt.Errorf("locate GetConsoleWindow: %w", err)
	}
	if err := procShowWindow.Find(); err != nil {
		return fmt.Errorf("locate ShowWindow: %w", err)
	}
	hwnd, _, _ := procGetConsoleWindow.Call()
	if hwnd == 0 {
		return nil
	}
	procShowWindow.Call(hwnd, uintptr(windows.SW_SHOW))
	return nil
}
