package model

import "time"

// Execution statuses.
const (
	ExecutionSuccess = "success"
	ExecutionError   = "error"
)

// Execution is a recorded harness invocation of a node.
// DataPath points at the archived output in object storage; DataURL is a
// short-lived presigned link filled in on read and never persisted.
type Execution struct {
	ID         string    `json:"id"`
	Node       string    `json:"node"`
	Resource   string    `json:"resource"`
	Operation  string    `json:"operation"`
	Status     string    `json:"status"`
	Error      string    `json:"error,omitempty"`
	ItemCount  int       `json:"item_count"`
	DataPath   string    `json:"data_path"`
	DurationMs int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
	DataURL    string    `json:"data_url,omitempty"`
}
