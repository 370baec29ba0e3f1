package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootRegistersCommands(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"board", "pipeline", "application", "session"})
}

func TestBoardTakesOneVacancy(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"board"})
	require.NoError(t, err)

	assert.NoError(t, cmd.Args(cmd, []string{"42"}))
	assert.Error(t, cmd.Args(cmd, []string{"42", "43"}))
}

func TestRootRejectsArgs(t *testing.T) {
	assert.Error(t, rootCmd.Args(rootCmd, []string{"42"}))
}

func TestPipelineListIsRegistered(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"pipeline", "list"})
	require.NoError(t, err)
	assert.Equal(t, "list", cmd.Name())
	assert.Error(t, cmd.Args(cmd, []string{"extra"}))
}
