package exec

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_SimpleCommand(t *testing.T) {
	result, err := Run(context.Background(), "echo", "hello")

	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "hello\n", result.Stdout)
	assert.Empty(t, result.Stderr)
}

func TestRun_NonZeroExitCode(t *testing.T) {
	result, err := Run(context.Background(), "false")

	require.NoError(t, err) // No error - command ran, just had non-zero exit
	assert.NotEqual(t, 0, result.ExitCode)
}

func TestRun_SeparatesStderr(t *testing.T) {
	result, err := Run(context.Background(), "sh", "-c", "echo out; echo err >&2")

	require.NoError(t, err)
	assert.Equal(t, "out\n", result.Stdout)
	assert.Equal(t, "err\n", result.Stderr)
}

func TestRun_MissingBinary(t *testing.T) {
	_, err := Run(context.Background(), "definitely-not-a-real-binary-4921")

	assert.Error(t, err)
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := Run(ctx, "sleep", "10")
	// A canceled context surfaces either as a start failure or a killed
	// process with a non-zero exit, depending on timing.
	if err == nil {
		assert.NotEqual(t, 0, result.ExitCode)
	}
}
