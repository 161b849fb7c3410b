package domain

import "time"

// Run statuses.
const (
	RunRunning   = "running"
	RunCompleted = "completed"
	RunFailed    = "failed"
)

// Run triggers.
const (
	TriggerManual    = "manual"
	TriggerScheduled = "scheduled"
	TriggerBatch     = "batch"
)

// RunLog is one row per pipeline invocation. Append-only history.
type RunLog struct {
	ID         int64      `db:"id" json:"id"`
	Trigger    string     `db:"trigger" json:"trigger"`
	Status     string     `db:"status" json:"status"`
	Checked    int        `db:"checked" json:"checked"`
	Found      int        `db:"found" json:"found"`
	NewClips   int        `db:"new_clips" json:"new_clips"`
	Updated    int        `db:"updated" json:"updated"`
	StartedAt  time.Time  `db:"started_at" json:"started_at"`
	FinishedAt *time.Time `db:"finished_at" json:"finished_at"`
}

// RunCounts is the final tally written to the run ledger.
type RunCounts struct {
	Checked int
	Found   int
	New     int
	Updated int
}

// SweepResult reports one lightweight periodic collection pass.
type SweepResult struct {
	Processed int           `json:"processed"`
	Found     int           `json:"found"`
	Accepted  int           `json:"accepted"`
	Persisted int           `json:"persisted"`
	Duration  time.Duration `json:"duration"`
}

// BatchResult reports one resumable scan invocation. The caller re-invokes
// with NextOffset until Completed is true.
type BatchResult struct {
	Processed  int           `json:"processed"`
	Found      int           `json:"found"`
	Accepted   int           `json:"accepted"`
	Persisted  int           `json:"persisted"`
	NextOffset int           `json:"next_offset"`
	Completed  bool          `json:"completed"`
	Duration   time.Duration `json:"duration"`
}
