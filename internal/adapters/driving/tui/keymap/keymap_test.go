package keymap

import (
	"testing"

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
	assert.Contains(t, keys, "ctrl+c")
}

func TestDefaultKeyMap_FocusBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Focus.Keys()
	assert.Contains(t, keys, "/")
}

func TestDefaultKeyMap_SubmitBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Submit.Keys()
	assert.Contains(t, keys, "enter")
}

func TestDefaultKeyMap_BackBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Back.Keys()
	assert.Contains(t, keys, "esc")
}

func TestDefaultKeyMap_PageBindings(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.PrevPage.Keys(), "left")
	assert.Contains(t, km.PrevPage.Keys(), "h")
	assert.Contains(t, km.NextPage.Keys(), "right")
	assert.Contains(t, km.NextPage.Keys(), "l")
}

func TestDefaultKeyMap_GenreBinding(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Genre.Keys(), "g")
}

func TestDefaultKeyMap_RefreshBinding(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Refresh.Keys(), "r")
}

func TestKeyMap_ShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	assert.NotEmpty(t, km.ShortHelp())
}

func TestKeyMap_InputHelp(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.InputHelp(), 2)
}
