package cli

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/hirepaso/internal/testutil"
)

// ============================================================================
// Mock Types for Testing
// ============================================================================

type mockDataWithID struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (m mockDataWithID) GetID() int {
	return m.ID
}

type mockDataWithLines struct {
	Lines []string
}

func (m mockDataWithLines) QuietLines() []string {
	return m.Lines
}

type mockHuman struct{}

func (mockHuman) HumanString() string {
	return "rendered for humans"
}

// ============================================================================
// Success
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	f := &OutputFormatter{JSON: true}

	out := testutil.CaptureOutput(t, func() {
		require.NoError(t, f.Success(mockDataWithID{ID: 7, Name: "Sam"}))
	})

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, true, result["success"])
	data := result["data"].(map[string]any)
	assert.Equal(t, float64(7), data["id"])
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	tests := []struct {
		name string
		data any
		want string
	}{
		{"with id", mockDataWithID{ID: 42}, "42\n"},
		{"with lines", mockDataWithLines{Lines: []string{"7\tscreening", "3\tnew"}}, "7\tscreening\n3\tnew\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &OutputFormatter{Quiet: true}
			out := testutil.CaptureOutput(t, func() {
				require.NoError(t, f.Success(tt.data))
			})
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestOutputFormatter_Success_HumanReadable(t *testing.T) {
	f := &OutputFormatter{}

	out := testutil.CaptureOutput(t, func() {
		require.NoError(t, f.Success(mockHuman{}))
	})
	assert.Equal(t, "rendered for humans\n", out)

	out = testutil.CaptureOutput(t, func() {
		require.NoError(t, f.Success(map[string]int{"count": 3}))
	})
	assert.Contains(t, out, "count:3")
}

// ============================================================================
// Errors
// ============================================================================

func TestOutputFormatter_Error_JSON(t *testing.T) {
	f := &OutputFormatter{JSON: true}

	out := testutil.CaptureOutput(t, func() {
		require.NoError(t, f.ErrorWithSuggestion("NO_NEXT_STAGE", "already hired", "pick another stage"))
	})

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out)), &result))
	assert.Equal(t, false, result["success"])
	errData := result["error"].(map[string]any)
	assert.Equal(t, "NO_NEXT_STAGE", errData["code"])
	assert.Equal(t, "already hired", errData["message"])
	assert.Equal(t, "pick another stage", errData["suggestion"])
}

func TestFailReturnsExitError(t *testing.T) {
	f := &OutputFormatter{JSON: true}
	cause := errors.New("boom")

	var err error
	_ = testutil.CaptureOutput(t, func() {
		err = Fail(f, cause)
	})

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, ExitError, ExitCode(err))
}
