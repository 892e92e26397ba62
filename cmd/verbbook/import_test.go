package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okabe/verbbook/internal/verbs"
)

func TestNewImportCommand(t *testing.T) {
	cmd := newImportCommand()

	assert.Equal(t, "import <file-or-url>", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	modeFlag := cmd.Flags().Lookup("mode")
	assert.NotNil(t, modeFlag)
	assert.Equal(t, "skip", modeFlag.DefValue)

	delimFlag := cmd.Flags().Lookup("delim")
	assert.NotNil(t, delimFlag)
	assert.Equal(t, ",", delimFlag.DefValue)
}

func TestNewImportCommand_RunE_configError(t *testing.T) {
	cfgPath := setupBrokenConfigFile(t)
	setConfigFile(t, cfgPath)

	cmd := newImportCommand()
	cmd.SetArgs([]string{"verbs.csv"})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestNewImportCommand_RunE_unknownMode(t *testing.T) {
	cmd := newImportCommand()
	cmd.SetArgs([]string{"verbs.csv", "--mode", "merge"})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `unknown mode "merge"`)
}

func TestParseRows(t *testing.T) {
	note := "irregular"

	tests := []struct {
		name    string
		content string
		delim   string
		want    []verbs.Entry
	}{
		{
			name:    "parses comma-separated rows",
			content: "go,went,gone,to move,irregular\nrun,ran,run,to move fast,",
			delim:   ",",
			want: []verbs.Entry{
				{BaseWord: "go", PastTense: "went", PastParticiple: "gone", Definition: "to move", Note: &note},
				{BaseWord: "run", PastTense: "ran", PastParticiple: "run", Definition: "to move fast"},
			},
		},
		{
			name:    "strips a leading byte-order marker",
			content: "\uFEFFgo,went,gone,to move,",
			delim:   ",",
			want: []verbs.Entry{
				{BaseWord: "go", PastTense: "went", PastParticiple: "gone", Definition: "to move"},
			},
		},
		{
			name:    "handles CRLF line endings and blank lines",
			content: "go,went,gone,to move,\r\n\r\nrun,ran,run,to move fast,\r\n",
			delim:   ",",
			want: []verbs.Entry{
				{BaseWord: "go", PastTense: "went", PastParticiple: "gone", Definition: "to move"},
				{BaseWord: "run", PastTense: "ran", PastParticiple: "run", Definition: "to move fast"},
			},
		},
		{
			name:    "missing trailing fields become empty",
			content: "go,went",
			delim:   ",",
			want: []verbs.Entry{
				{BaseWord: "go", PastTense: "went"},
			},
		},
		{
			name:    "custom delimiter",
			content: "go|went|gone|to move|irregular",
			delim:   "|",
			want: []verbs.Entry{
				{BaseWord: "go", PastTense: "went", PastParticiple: "gone", Definition: "to move", Note: &note},
			},
		},
		{
			name:    "empty content",
			content: "",
			delim:   ",",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRows(tt.content, tt.delim))
		})
	}
}
