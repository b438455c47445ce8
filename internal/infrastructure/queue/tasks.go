package queue

import "github.com/hibiken/asynq"

const (
	// TypeReconcileCounters refreshes the stored song counters from the
	// truth tables (likes, comments, play_history).
	TypeReconcileCounters = "counters:reconcile"
)

func NewReconcileCountersTask() *asynq.Task {
	return asynq.NewTask(TypeReconcileCounters, nil)
}
