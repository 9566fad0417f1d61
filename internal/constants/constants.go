// Package constants provides shared constants used across the application
// to avoid circular dependencies between packages.
package constants

// Application identity
const (
	// AppName is the simulated operating system's name
	AppName = "PyOS"
	// Version is the simulated OS version string
	Version = "1.0"
	// Hostname is the fixed hostname shown in the prompt
	Hostname = "pyos-main"
	// DefaultUser is the session user when none is given
	DefaultUser = "user"
)

// Seed file contents for the initial filesystem layout
const (
	// WelcomeContent is the content of /home/<user>/welcome.txt
	WelcomeContent = "Welcome to PyOS! Type 'help' to see available commands."
	// OSReleaseContent is the content of /etc/os-release
	OSReleaseContent = "PyOS Version 1.0 (Simulated)"
)

// DateFormat is the layout used by the date command,
// e.g. "Mon Jan 02 15:04:05 2006".
const DateFormat = "Mon Jan 02 15:04:05 2006"
