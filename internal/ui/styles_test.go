package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccess(t *testing.T) {
	out := Success("Report written to /tmp/report.html")

	assert.Contains(t, out, SymbolSuccess)
	assert.Contains(t, out, "Report written to /tmp/report.html")
}

func TestFailure(t *testing.T) {
	out := Failure("pidstat exited with status 1")

	assert.Contains(t, out, SymbolFail)
	assert.Contains(t, out, "pidstat exited with status 1")
}

func TestMuted(t *testing.T) {
	assert.Contains(t, Muted("detail"), "detail")
}
