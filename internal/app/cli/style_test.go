package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lookout/internal/config"
)

func Test_RenderTitle(t *testing.T) {
	result := RenderTitle()

	assert.NotEmpty(t, result)
	assert.Contains(t, result, config.AppName)
	assert.Contains(t, result, config.Version)
	assert.Contains(t, result, config.AppDescription)
}

func Test_RenderUsage(t *testing.T) {
	result := RenderUsage()

	assert.Contains(t, result, "lookout tail <task-id>")
	assert.Contains(t, result, "--source http|file")
}

func Test_padRight(t *testing.T) {
	assert.Equal(t, "ab  ", padRight("ab", 4))
	assert.Equal(t, "abcdef", padRight("abcdef", 4))
}
