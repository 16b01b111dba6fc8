// temporal/worker.go
package temporal

import (
	"fmt"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"greeter/activities"
	"greeter/config"
	"greeter/shared"
	"greeter/workflows"
)

// StartWorker registers the workflow and activity implementations on the
// configured task queue and runs the worker. This call blocks until the
// worker is interrupted or a fatal error occurs; a nil return means a clean
// interrupt-driven shutdown.
func StartWorker(c client.Client, cfg config.Config, greetActivities *activities.GreetActivities) error {
	w := worker.New(c, cfg.TaskQueue, worker.Options{})

	// Register under the original names so the parent DSL workflow can call
	// the child without changes.
	w.RegisterWorkflowWithOptions(workflows.SayHelloWorkflow, workflow.RegisterOptions{Name: shared.SayHelloWorkflowName})
	w.RegisterActivityWithOptions(greetActivities.Greet, activity.RegisterOptions{Name: shared.GreetActivityName})

	fmt.Printf("Worker listening on task queue: %s\n", cfg.TaskQueue)

	return w.Run(worker.InterruptCh())
}
