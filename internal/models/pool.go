package models

import "github.com/tupyy/rrpool/pkg/threadpool"

type WorkerState string

const (
	WorkerStateIdle WorkerState = "idle"
	WorkerStateBusy WorkerState = "busy"
)

type WorkerStatus struct {
	Index    int         `json:"index"`
	State    WorkerState `json:"state"`
	Pending  uint64      `json:"pending"`
	Executed uint64      `json:"executed"`
	Panicked uint64      `json:"panicked"`
}

type PoolStatus struct {
	ID                 string         `json:"id"`
	Size               int            `json:"size"`
	Busy               int            `json:"busy"`
	Submitted          uint64         `json:"submitted"`
	IdleDispatches     uint64         `json:"idleDispatches"`
	FallbackDispatches uint64         `json:"fallbackDispatches"`
	Executed           uint64         `json:"executed"`
	Panicked           uint64         `json:"panicked"`
	Workers            []WorkerStatus `json:"workers"`
}

func NewPoolStatus(s threadpool.Stats) PoolStatus {
	status := PoolStatus{
		ID:                 s.ID,
		Size:               len(s.Workers),
		Busy:               s.Busy(),
		Submitted:          s.Submitted,
		IdleDispatches:     s.IdleDispatches,
		FallbackDispatches: s.FallbackDispatches,
		Executed:           s.Executed,
		Panicked:           s.Panicked,
		Workers:            make([]WorkerStatus, 0, len(s.Workers)),
	}

	for _, w := range s.Workers {
		state := WorkerStateIdle
		if w.Busy {
			state = WorkerStateBusy
		}
		status.Workers = append(status.Workers, WorkerStatus{
			Index:    w.Index,
			State:    state,
			Pending:  w.Pending(),
			Executed: w.Executed,
			Panicked: w.Panicked,
		})
	}

	return status
}
