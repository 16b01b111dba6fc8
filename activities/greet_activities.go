// activities/greet_activities.go
package activities

import (
	"context"
	"fmt"
	"log"

	"go.temporal.io/sdk/activity"

	"greeter/db"
	"greeter/shared"
)

// GreetActivities holds the dependencies the greeting activities need.
type GreetActivities struct {
	store *db.Store
}

func NewGreetActivities(store *db.Store) *GreetActivities {
	return &GreetActivities{store: store}
}

// Greet formats the greeting for the supplied name. Each greeting served is
// recorded in the store; a recording failure is logged but never fails the
// greeting itself.
func (a *GreetActivities) Greet(ctx context.Context, name string) (string, error) {
	greeting := fmt.Sprintf("Hello, %s!", name)

	if a.store != nil {
		info := activity.GetInfo(ctx)
		rec := shared.GreetingRecord{
			WorkflowID: info.WorkflowExecution.ID,
			Name:       name,
			Greeting:   greeting,
		}
		if err := a.store.RecordGreeting(ctx, rec); err != nil {
			log.Printf("Greet: failed to record greeting for workflow %s: %v", info.WorkflowExecution.ID, err)
		}
	}

	return greeting, nil
}
