package progrock

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/vito/progrock"
	"go.trai.ch/zerr"
)

// ReportFilename is the progress report file name inside the tool's tmp directory.
const ReportFilename = "progress.json"

// DefaultReportPath returns <dir of executable>/tmp/progress.json.
// It returns an empty string when the executable cannot be located.
func DefaultReportPath() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Join(filepath.Dir(exe), "tmp", ReportFilename)
}

// Step status values.
const (
	StepSucceeded = "succeeded"
	StepFailed    = "failed"
	StepRunning   = "running"
)

// Report is the JSON document written by WriteReport.
type Report struct {
	Total      int    `json:"total"`
	Failed     int    `json:"failed"`
	DurationMS int64  `json:"duration_ms"`
	Steps      []Step `json:"steps"`
}

// Step is one recorded vertex.
type Step struct {
	Name       string     `json:"name"`
	Status     string     `json:"status"`
	Error      string     `json:"error,omitempty"`
	Started    time.Time  `json:"started"`
	Completed  *time.Time `json:"completed,omitempty"`
	DurationMS int64      `json:"duration_ms"`
}

// BuildReport summarizes the vertices on tape in recording order.
func BuildReport(tape *progrock.Tape) Report {
	vertices := tape.Vertices()
	report := Report{
		Total:      tape.TotalCount(),
		Failed:     tape.ErroredCount(),
		DurationMS: tape.Duration().Milliseconds(),
		Steps:      make([]Step, 0, len(vertices)),
	}

	for _, v := range vertices {
		step := Step{Name: v.GetName(), Status: StepRunning, Error: v.GetError()}
		if started := v.GetStarted(); started != nil {
			step.Started = started.AsTime()
		}
		if completed := v.GetCompleted(); completed != nil {
			at := completed.AsTime()
			step.Completed = &at
			step.DurationMS = at.Sub(step.Started).Milliseconds()
			step.Status = StepSucceeded
			if v.Error != nil {
				step.Status = StepFailed
			}
		}
		report.Steps = append(report.Steps, step)
	}
	return report
}

// WriteReport writes the tape summary as 2-space indented JSON to path, replacing any previous file.
func (r *Recorder) WriteReport(path string) error {
	data, err := json.MarshalIndent(BuildReport(r.tape), "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to encode progress report")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create report directory"), "path", path)
	}

	//nolint:gosec // progress report is a debug artifact, not a secret
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write progress report"), "path", path)
	}
	return nil
}
