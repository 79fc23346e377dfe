package journal

import (
	"time"

	"github.com/fxwatch/fxwatch/inspect"
)

// RunRecord summarizes one journaled inspection run.
type RunRecord struct {
	RunID      string
	AccountID  string
	Time       time.Time
	TradeCount int
}

// Journal persists inspection reports.
type Journal interface {
	RecordInspection(rep *inspect.Report) error
	ListRuns() ([]RunRecord, error)
	GetRun(runID string) (*inspect.Report, error)
	Close() error
}
