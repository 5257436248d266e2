package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memorist/memorist/internal/config"
	"github.com/memorist/memorist/internal/scheduler"
)

func TestNewStudyCommand(t *testing.T) {
	cmd := newStudyCommand()

	assert.Equal(t, "study [deck]", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	for flagName, defValue := range map[string]string{
		"max-cards": "0",
		"new":       "0",
		"review":    "0",
		"no-new":    "false",
	} {
		flag := cmd.Flags().Lookup(flagName)
		require.NotNil(t, flag, flagName)
		assert.Equal(t, defValue, flag.DefValue, flagName)
	}
}

func TestNewStudyCommand_RunE_configError(t *testing.T) {
	cfgPath := setupBrokenConfigFile(t)
	setConfigFile(t, cfgPath)

	cmd := newStudyCommand()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.Error(t, err)
}

func TestNewStudyCommand_RunE_unknownDeck(t *testing.T) {
	setConfigFile(t, setupWorkspace(t))

	cmd := newStudyCommand()
	cmd.SetArgs([]string{"chemistry"})
	err := cmd.Execute()
	assert.ErrorContains(t, err, `unknown deck "chemistry"`)
}

func TestNewStudyCommand_RunE_nothingToStudy(t *testing.T) {
	setConfigFile(t, setupWorkspace(t))

	// A fresh collection with new cards excluded has nothing to present.
	cmd := newStudyCommand()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"--no-new"})
	require.NoError(t, cmd.Execute())
}

func TestSessionFlagsApply(t *testing.T) {
	configured := config.SessionConfig{
		MaxCards:        20,
		NewCardLimit:    10,
		ReviewCardLimit: 15,
		IncludeNewCards: true,
	}

	tests := []struct {
		name  string
		flags sessionFlags
		want  scheduler.SessionOptions
	}{
		{
			name:  "no flags keep the configured bounds",
			flags: sessionFlags{},
			want: scheduler.SessionOptions{
				MaxCards:        20,
				NewCardLimit:    10,
				ReviewCardLimit: 15,
				IncludeNewCards: true,
			},
		},
		{
			name:  "explicit flags override the configuration",
			flags: sessionFlags{maxCards: 5, newLimit: 2, reviewLimit: 3, noNewCards: true},
			want: scheduler.SessionOptions{
				MaxCards:        5,
				NewCardLimit:    2,
				ReviewCardLimit: 3,
				IncludeNewCards: false,
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.flags.apply(configured))
		})
	}
}
