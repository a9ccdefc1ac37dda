package cli

import (
	"fmt"
	"io"
	"time"
)

type BuildStep struct {
	Name      string
	StartTime time.Time
	EndTime   time.Time
	Success   bool
	Error     string
}

type reportOutput interface {
	Green(text string) string
	Yellow(text string) string
	Red(text string) string
	Gray(text string) string
	Out() io.Writer
	Err() io.Writer
}

type BuildError struct {
	Entry   string
	Message string
	Details []string
}

type BuildReport struct {
	out         reportOutput
	steps       []*BuildStep
	warnings    []BuildError
	errors      []BuildError
	startTime   time.Time
	entryCount  int
	outputDir   string
	hasFailures bool
}

func NewBuildReport(out reportOutput, outputDir string) *BuildReport {
	return &BuildReport{
		out:       out,
		steps:     make([]*BuildStep, 0),
		warnings:  make([]BuildError, 0),
		errors:    make([]BuildError, 0),
		startTime: time.Now(),
		outputDir: outputDir,
	}
}

func (r *BuildReport) SetEntryCount(count int) {
	r.entryCount = count
}

func (r *BuildReport) StartStep(name string) *BuildStep {
	step := &BuildStep{
		Name:      name,
		StartTime: time.Now(),
	}
	r.steps = append(r.steps, step)
	return step
}

func (r *BuildReport) EndStep(step *BuildStep, success bool, err string) {
	step.EndTime = time.Now()
	step.Success = success
	step.Error = err
	if !success {
		r.hasFailures = true
	}
}

func (r *BuildReport) AddWarning(entry string, message string, details []string) {
	r.warnings = append(r.warnings, BuildError{
		Entry:   entry,
		Message: message,
		Details: details,
	})
}

func (r *BuildReport) AddError(entry string, message string, details []string) {
	r.errors = append(r.errors, BuildError{
		Entry:   entry,
		Message: message,
		Details: details,
	})
	r.hasFailures = true
}

func (r *BuildReport) HasFailures() bool {
	return r.hasFailures
}

func (r *BuildReport) Render() {
	duration := time.Since(r.startTime)

	if len(r.errors) == 0 && len(r.warnings) == 0 && !r.hasFailures {
		r.renderMinimal(duration)
	} else {
		r.renderVerbose(duration)
	}
}

func (r *BuildReport) renderMinimal(duration time.Duration) {
	w := r.out.Out()
	fmt.Fprintf(w, "  %s%d entries found\n", r.out.Green("✓ "), r.entryCount)
	fmt.Fprintf(w, "  %sBuild complete in %s\n", r.out.Green("✓ "), formatDuration(duration))

	if r.outputDir != "" {
		fmt.Fprintf(w, "\n  %s\n", r.out.Gray("Output: "+r.outputDir))
	}
}

func (r *BuildReport) renderVerbose(duration time.Duration) {
	w := r.out.Out()
	fmt.Fprintf(w, "  %d entries found\n\n", r.entryCount)

	for _, step := range r.steps {
		status := r.out.Green("✓")
		if !step.Success {
			status = r.out.Red("✗")
		}
		fmt.Fprintf(w, "  %s %s %s\n", status, step.Name, r.out.Gray(formatDuration(step.EndTime.Sub(step.StartTime))))
	}

	if len(r.errors) > 0 {
		fmt.Fprintln(r.out.Err())
		fmt.Fprintf(r.out.Err(), "  %sErrors (%d):\n", r.out.Red("✗ "), len(r.errors))
		r.renderErrors(r.out.Err(), r.errors)
	}

	if len(r.warnings) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  %sWarnings (%d):\n", r.out.Yellow("⚠ "), len(r.warnings))
		r.renderErrors(w, r.warnings)
	}

	fmt.Fprintln(w)
	if r.hasFailures {
		fmt.Fprintf(r.out.Err(), "  %s\n", r.out.Red(fmt.Sprintf("Build failed after %s", formatDuration(duration))))
		return
	}

	fmt.Fprintf(w, "  %sBuild complete in %s\n", r.out.Green("✓ "), formatDuration(duration))
	if r.outputDir != "" {
		fmt.Fprintf(w, "\n  %s\n", r.out.Gray("Output: "+r.outputDir))
	}
}

func (r *BuildReport) renderErrors(w io.Writer, errors []BuildError) {
	for _, err := range errors {
		fmt.Fprintf(w, "  %s %s\n", r.out.Red("✗"), err.Entry)
		fmt.Fprintf(w, "    %s\n", err.Message)

		for _, detail := range deduplicateStrings(err.Details) {
			fmt.Fprintf(w, "      • %s\n", detail)
		}
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}

func deduplicateStrings(items []string) []string {
	if len(items) <= 1 {
		return items
	}

	seen := make(map[string]int)
	order := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] == 0 {
			order = append(order, item)
		}
		seen[item]++
	}

	result := make([]string, 0, len(order))
	for _, item := range order {
		if count := seen[item]; count > 1 {
			result = append(result, fmt.Sprintf("%s (%d occurrences)", item, count))
		} else {
			result = append(result, item)
		}
	}
	return result
}
