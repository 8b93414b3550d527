package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_QuitBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Quit.Keys()
	assert.Contains(t, keys, "q")
	assert.Contains(t, keys, "esc")
	assert.Contains(t, keys, "ctrl+c")
}

func TestDefaultKeyMap_ChunkNavigation(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.NextChunk.Keys(), "right")
	assert.Contains(t, km.NextChunk.Keys(), "l")
	assert.Contains(t, km.PrevChunk.Keys(), "left")
	assert.Contains(t, km.PrevChunk.Keys(), "h")
}

func TestDefaultKeyMap_Scrolling(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Up.Keys(), "up")
	assert.Contains(t, km.Up.Keys(), "k")
	assert.Contains(t, km.Down.Keys(), "down")
	assert.Contains(t, km.Down.Keys(), "j")
	assert.Contains(t, km.Top.Keys(), "g")
	assert.Contains(t, km.Bottom.Keys(), "G")
}

func TestBindings_HaveHelp(t *testing.T) {
	km := DefaultKeyMap()

	testCases := []struct {
		name    string
		binding key.Binding
	}{
		{"Quit", km.Quit},
		{"NextChunk", km.NextChunk},
		{"PrevChunk", km.PrevChunk},
		{"Up", km.Up},
		{"Down", km.Down},
		{"Top", km.Top},
		{"Bottom", km.Bottom},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			help := tc.binding.Help()
			assert.NotEmpty(t, help.Key, "binding should have help key")
		})
	}
}
