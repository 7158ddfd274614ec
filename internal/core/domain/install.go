package domain

import "strings"

// InstallStatus is the result class of a single install directory.
type InstallStatus int

const (
	// InstallSucceeded means the install command exited cleanly.
	InstallSucceeded InstallStatus = iota
	// InstallFailed means the install command could not be started or exited non-zero.
	InstallFailed
)

// String returns the status name.
func (s InstallStatus) String() string {
	if s == InstallSucceeded {
		return "succeeded"
	}
	return "failed"
}

// InstallOutcome is the result of installing dependencies in one directory.
type InstallOutcome struct {
	Dir     string
	AbsPath string
	Status  InstallStatus
	Err     error
}

// InstallReport holds outcomes in configuration order.
type InstallReport []InstallOutcome

// Failed reports whether any install failed.
func (r InstallReport) Failed() bool {
	return r.FailureCount() > 0
}

// FailureCount returns the number of failed installs.
func (r InstallReport) FailureCount() int {
	n := 0
	for _, o := range r {
		if o.Status == InstallFailed {
			n++
		}
	}
	return n
}

// Command describes an external process invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory of the process.
	Dir string
}

// String renders the command line for display.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}
