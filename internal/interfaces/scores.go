package interfaces

import "go-bug-smashers/internal/storage"

// ScoreRecorder сохраняет забеги и отдаёт лучшие.
type ScoreRecorder interface {
	SaveRun(run storage.Run) (int64, error)
	TopRuns(limit int) ([]storage.Run, error)
}
