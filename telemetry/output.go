package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/plinko/config"
)

// OutputManager writes session output: events.csv, scores.csv, perf.csv
// and a copy of the effective config.
type OutputManager struct {
	dir        string
	eventsFile *os.File
	scoresFile *os.File
	perfFile   *os.File

	// Track if headers have been written
	eventsHeaderWritten bool
	scoresHeaderWritten bool
	perfHeaderWritten   bool
}

// NewOutputManager creates the output directory and files.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}
	for _, f := range []struct {
		name string
		dst  **os.File
	}{
		{"events.csv", &om.eventsFile},
		{"scores.csv", &om.scoresFile},
		{"perf.csv", &om.perfFile},
	} {
		file, err := os.Create(filepath.Join(dir, f.name))
		if err != nil {
			om.Close()
			return nil, fmt.Errorf("creating %s: %w", f.name, err)
		}
		*f.dst = file
	}
	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteEvents appends routed commands to events.csv.
func (om *OutputManager) WriteEvents(events []EventRecord) error {
	if om == nil || len(events) == 0 {
		return nil
	}
	if err := writeRecords(om.eventsFile, events, &om.eventsHeaderWritten); err != nil {
		return fmt.Errorf("writing events: %w", err)
	}
	return nil
}

// WriteScores appends a window stats record to scores.csv.
func (om *OutputManager) WriteScores(stats WindowStats) error {
	if om == nil {
		return nil
	}
	if err := writeRecords(om.scoresFile, []WindowStats{stats}, &om.scoresHeaderWritten); err != nil {
		return fmt.Errorf("writing scores: %w", err)
	}
	return nil
}

// WritePerf appends a performance record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd int32) error {
	if om == nil {
		return nil
	}
	records := []PerfStatsCSV{stats.ToCSV(windowEnd)}
	if err := writeRecords(om.perfFile, records, &om.perfHeaderWritten); err != nil {
		return fmt.Errorf("writing perf: %w", err)
	}
	return nil
}

// writeRecords writes the header only on the first call per file.
func writeRecords(f *os.File, records any, headerWritten *bool) error {
	if *headerWritten {
		return gocsv.MarshalWithoutHeaders(records, f)
	}
	if err := gocsv.Marshal(records, f); err != nil {
		return err
	}
	*headerWritten = true
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	var firstErr error
	for _, f := range []*os.File{om.eventsFile, om.scoresFile, om.perfFile} {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
