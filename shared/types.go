// shared/types.go
package shared

import "time"

const (
	// SayHelloWorkflowName matches the name the parent DSL workflow calls
	// the child by, so registration must use it verbatim.
	SayHelloWorkflowName = "say-hello-workflow"

	// GreetActivityName is the registered name of the greeting activity.
	GreetActivityName = "greet"

	// DefaultGreetingName is used when the workflow input carries no name.
	DefaultGreetingName = "Temporal"
)

// GreetingRecord is one greeting served by the worker, as persisted.
type GreetingRecord struct {
	ID         int64     `json:"id"`
	WorkflowID string    `json:"workflowId"`
	Name       string    `json:"name"`
	Greeting   string    `json:"greeting"`
	CreatedAt  time.Time `json:"createdAt"`
}

// StartGreetingRequest is the HTTP payload for starting a greeting workflow.
// Name is optional; absent means the workflow falls back to its default.
type StartGreetingRequest struct {
	Name *string `json:"name"`
}

// StartGreetingResponse identifies the started workflow execution.
type StartGreetingResponse struct {
	WorkflowID string `json:"workflowId"`
	RunID      string `json:"runId"`
}
