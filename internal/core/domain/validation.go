package domain

// ValidationStatus is the result class of a single validation entry.
type ValidationStatus int

const (
	// StatusValid means the file exists and has non-empty body content.
	StatusValid ValidationStatus = iota
	// StatusMissing means the file does not exist.
	StatusMissing
	// StatusEmpty means the file exists but has zero bytes.
	StatusEmpty
	// StatusParseError means the file could not be read or its body is blank.
	StatusParseError
)

// String returns the status name.
func (s ValidationStatus) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusMissing:
		return "missing"
	case StatusEmpty:
		return "empty"
	case StatusParseError:
		return "parse_error"
	default:
		return "unknown"
	}
}

// ValidationOutcome is the result of validating one entry.
type ValidationOutcome struct {
	Entry   ValidationEntry
	AbsPath string
	Status  ValidationStatus
	// Err carries the failure reason. It is nil when Status is StatusValid.
	Err error
}

// OK reports whether the entry passed.
func (o ValidationOutcome) OK() bool {
	return o.Status == StatusValid
}

// ValidationReport holds outcomes in configuration order.
type ValidationReport []ValidationOutcome

// Failed reports whether any entry failed.
func (r ValidationReport) Failed() bool {
	for _, o := range r {
		if !o.OK() {
			return true
		}
	}
	return false
}

// Failures returns the failed outcomes, preserving order.
func (r ValidationReport) Failures() []ValidationOutcome {
	var failures []ValidationOutcome
	for _, o := range r {
		if !o.OK() {
			failures = append(failures, o)
		}
	}
	return failures
}
