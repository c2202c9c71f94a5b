// Package telemetry records session events and per-window score statistics
// and writes them as CSV.
package telemetry

import "github.com/pthm-cable/plinko/router"

// EventRecord is one routed command, as written to events.csv.
type EventRecord struct {
	Tick    int32  `csv:"tick"`
	Command string `csv:"command"`
	Body    int    `csv:"body"`
	Kind    string `csv:"kind"`
	Index   int    `csv:"index"`
	Slot    int    `csv:"slot"`
	Score   int    `csv:"score"`
}

// NewEventRecord flattens a command for CSV output.
func NewEventRecord(tick int32, cmd router.Command) EventRecord {
	return EventRecord{
		Tick:    tick,
		Command: cmd.Kind.String(),
		Body:    cmd.Body,
		Kind:    cmd.Tag.Kind.String(),
		Index:   cmd.Tag.Index,
		Slot:    cmd.Slot,
		Score:   cmd.Score,
	}
}
