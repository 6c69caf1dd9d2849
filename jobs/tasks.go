package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskSessionsPurge removes expired auth session records.
	TaskSessionsPurge = "auth:sessions:purge"
)

// SessionsPurgePayload describes a purge run. Grace keeps sessions that expired
// less than GraceSeconds ago.
type SessionsPurgePayload struct {
	GraceSeconds int `json:"grace_seconds"`
}

// NewSessionsPurgeTask constructs an Asynq task for TaskSessionsPurge.
func NewSessionsPurgeTask(payload SessionsPurgePayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskSessionsPurge, data), nil
}
