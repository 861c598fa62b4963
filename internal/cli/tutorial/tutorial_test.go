package tutorial

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTutorialCmd_PrintsGuide(t *testing.T) {
	cmd := TutorialCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(nil)

	require.NoError(t, cmd.Execute())
	assert.Equal(t, tutorialContent, out.String())
	assert.Contains(t, out.String(), "taskdesk task list")
	assert.Contains(t, out.String(), "taskdesk auth login")
}
