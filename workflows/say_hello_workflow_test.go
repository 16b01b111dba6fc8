package workflows_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	enumspb "go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"

	"greeter/shared"
	"greeter/workflows"
)

func newGreetEnv() *testsuite.TestWorkflowEnvironment {
	env := (&testsuite.WorkflowTestSuite{}).NewTestWorkflowEnvironment()
	env.RegisterActivityWithOptions(
		func(ctx context.Context, name string) (string, error) {
			return "Hello, " + name + "!", nil
		},
		activity.RegisterOptions{Name: shared.GreetActivityName},
	)
	return env
}

func TestSayHelloWorkflowNameResolution(t *testing.T) {
	tests := []struct {
		name         string
		initialInput map[string]any
		statePayload map[string]any
		expected     string
	}{
		{
			name:         "named input",
			initialInput: map[string]any{"name": "Ada"},
			expected:     "Hello, Ada!",
		},
		{
			name:     "no input",
			expected: "Hello, Temporal!",
		},
		{
			name:         "missing name key",
			initialInput: map[string]any{"greeting": "hi"},
			expected:     "Hello, Temporal!",
		},
		{
			name:         "null name value",
			initialInput: map[string]any{"name": nil},
			expected:     "Hello, Temporal!",
		},
		{
			name:         "numeric name value",
			initialInput: map[string]any{"name": 42},
			expected:     "Hello, 42!",
		},
		{
			name:         "state payload never affects the name",
			statePayload: map[string]any{"name": "Grace"},
			expected:     "Hello, Temporal!",
		},
		{
			name:         "state payload alongside named input",
			initialInput: map[string]any{"name": "Ada"},
			statePayload: map[string]any{"name": "Grace"},
			expected:     "Hello, Ada!",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			env := newGreetEnv()
			env.ExecuteWorkflow(workflows.SayHelloWorkflow, test.initialInput, test.statePayload)

			require.True(t, env.IsWorkflowCompleted())
			require.NoError(t, env.GetWorkflowError())

			var result string
			require.NoError(t, env.GetWorkflowResult(&result))
			assert.Equal(t, test.expected, result)
		})
	}
}

func TestSayHelloWorkflowActivityTimeout(t *testing.T) {
	env := newGreetEnv()
	env.OnActivity(shared.GreetActivityName, mock.Anything, mock.Anything).
		Return("", temporal.NewTimeoutError(enumspb.TIMEOUT_TYPE_SCHEDULE_TO_CLOSE, nil))

	env.ExecuteWorkflow(workflows.SayHelloWorkflow, map[string]any{"name": "Ada"}, nil)

	require.True(t, env.IsWorkflowCompleted())
	err := env.GetWorkflowError()
	require.Error(t, err)

	var timeoutErr *temporal.TimeoutError
	require.True(t, errors.As(err, &timeoutErr))
	assert.Equal(t, enumspb.TIMEOUT_TYPE_SCHEDULE_TO_CLOSE, timeoutErr.TimeoutType())
}

func TestSayHelloWorkflowActivityFailurePropagates(t *testing.T) {
	env := newGreetEnv()
	env.OnActivity(shared.GreetActivityName, mock.Anything, mock.Anything).
		Return("", errors.New("greeter unavailable"))

	env.ExecuteWorkflow(workflows.SayHelloWorkflow, nil, nil)

	require.True(t, env.IsWorkflowCompleted())
	err := env.GetWorkflowError()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "greeter unavailable")
}
