package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DefaultKeyMap(t *testing.T) {
	keys := DefaultKeyMap()

	assert.Equal(t, []string{"up", "k"}, keys.Up.Keys())
	assert.Equal(t, []string{"down", "j"}, keys.Down.Keys())
	assert.Equal(t, []string{"pgup", "b"}, keys.PageUp.Keys())
	assert.Equal(t, []string{"pgdown", "f"}, keys.PageDown.Keys())
	assert.Equal(t, []string{"q"}, keys.Quit.Keys())
	assert.Equal(t, []string{"ctrl+c"}, keys.ForceQuit.Keys())
	assert.Equal(t, "quit", keys.Quit.Help().Desc)
}
