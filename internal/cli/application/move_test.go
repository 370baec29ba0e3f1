package application

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/hirepaso/internal/cli"
	"github.com/thenoetrevino/hirepaso/internal/testutil"
	clitest "github.com/thenoetrevino/hirepaso/internal/testutil/cli"
)

func runMoveCmd(t *testing.T, setup func(*testutil.FakeAPI), args ...string) (string, error, *testutil.FakeAPI) {
	t.Helper()
	ctx, fake, _ := clitest.SetupCLITest(t)
	fake.SetPipeline("42", testutil.SamplePipeline())
	if setup != nil {
		setup(fake)
	}

	cmd := MoveCmd()
	cmd.SetContext(ctx)
	output, err := testutil.ExecuteCommand(t, cmd, args...)
	return output, err, fake
}

func TestMoveApplication_Positive(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		wantTo string
	}{
		{"next stage", []string{"--vacancy", "42", "--id", "7", "next"}, "interview"},
		{"previous stage", []string{"--vacancy", "42", "--id", "7", "prev"}, "new"},
		{"by slug", []string{"--vacancy", "42", "--id", "1", "offer"}, "offer"},
		{"by label", []string{"--vacancy", "42", "--id", "4", "HIRED"}, "hired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err, fake := runMoveCmd(t, nil, append(tt.args, "--json")...)
			require.NoError(t, err)

			result := testutil.ParseJSON(t, output)
			data := result["data"].(map[string]any)
			assert.Equal(t, tt.wantTo, data["to_stage"])

			calls := fake.StatusCalls()
			require.Len(t, calls, 1)
			assert.Equal(t, tt.wantTo, calls[0].Status)
		})
	}
}

func TestMoveApplication_AlreadyInStage(t *testing.T) {
	output, err, fake := runMoveCmd(t, nil, "--vacancy", "42", "--id", "7", "Screening")
	require.NoError(t, err)

	assert.Contains(t, output, "already in 'Screening'")
	assert.Empty(t, fake.StatusCalls(), "no request for a move to the current stage")
}

func TestMoveApplication_Quiet(t *testing.T) {
	output, err, _ := runMoveCmd(t, nil, "--vacancy", "42", "--id", "2", "next", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "2\n", output)
}

func TestMoveApplication_Human(t *testing.T) {
	output, err, _ := runMoveCmd(t, nil, "--vacancy", "42", "--id", "2", "next")
	require.NoError(t, err)
	assert.Equal(t, "Application 2 moved from 'New' to 'Screening'\n", output)
}

func TestMoveApplication_Negative(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(*testutil.FakeAPI)
		args      []string
		wantCode  string
		wantExit  int
		wantCalls int
	}{
		{
			name:     "before first stage",
			args:     []string{"--vacancy", "42", "--id", "1", "prev"},
			wantCode: "NO_PREV_STAGE",
			wantExit: cli.ExitValidation,
		},
		{
			name:     "unknown stage",
			args:     []string{"--vacancy", "42", "--id", "1", "archived"},
			wantCode: "STAGE_NOT_FOUND",
			wantExit: cli.ExitNotFound,
		},
		{
			name:     "application not on vacancy",
			args:     []string{"--vacancy", "42", "--id", "99", "next"},
			wantCode: "APPLICATION_NOT_FOUND",
			wantExit: cli.ExitNotFound,
		},
		{
			name:     "invalid id",
			args:     []string{"--vacancy", "42", "--id=-3", "next"},
			wantCode: "INVALID_APPLICATION_ID",
			wantExit: cli.ExitUsage,
		},
		{
			name:      "rejected by service",
			setup:     func(f *testutil.FakeAPI) { f.RejectStatus(3, http.StatusUnprocessableEntity) },
			args:      []string{"--vacancy", "42", "--id", "3", "hired"},
			wantCode:  "REJECTED",
			wantExit:  cli.ExitValidation,
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err, fake := runMoveCmd(t, tt.setup, append(tt.args, "--json")...)
			require.Error(t, err)
			assert.Equal(t, tt.wantExit, cli.ExitCode(err))

			result := testutil.ParseJSON(t, output)
			assert.Equal(t, false, result["success"])
			assert.Equal(t, tt.wantCode, result["error"].(map[string]any)["code"])
			assert.Len(t, fake.StatusCalls(), tt.wantCalls)
		})
	}
}
