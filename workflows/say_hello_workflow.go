// workflows/say_hello_workflow.go
package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/workflow"

	"greeter/shared"
)

// SayHelloWorkflow greets the supplied name via the greet activity.
//
// The parent DSL workflow passes the original input as the first argument and
// its state as the second. statePayload is accepted for parity with that
// calling convention and never read.
func SayHelloWorkflow(ctx workflow.Context, initialInput map[string]any, statePayload map[string]any) (string, error) {
	_ = statePayload

	ao := workflow.ActivityOptions{
		ScheduleToCloseTimeout: 10 * time.Second,
	}
	ctx = workflow.WithActivityOptions(ctx, ao)

	logger := workflow.GetLogger(ctx)

	name := resolveName(initialInput)
	logger.Info("SayHelloWorkflow started", "Name", name)

	var result string
	err := workflow.ExecuteActivity(ctx, shared.GreetActivityName, name).Get(ctx, &result)
	if err != nil {
		logger.Error("Greet activity failed.", "Error", err)
		return "", err
	}

	logger.Info("SayHelloWorkflow completed.", "Result", result)
	return result, nil
}

// resolveName looks up the optional "name" key in the workflow input and
// falls back to the default when the input is absent, the key is missing or
// the value is null.
func resolveName(input map[string]any) string {
	if input == nil {
		return shared.DefaultGreetingName
	}
	v, ok := input["name"]
	if !ok || v == nil {
		return shared.DefaultGreetingName
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
