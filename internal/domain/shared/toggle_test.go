package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggled(t *testing.T) {
	on := Toggled(false, ActionFollow, ActionUnfollow)
	assert.Equal(t, ToggleResult{Action: ActionFollow, Active: true}, on)

	off := Toggled(on.Active, ActionFollow, ActionUnfollow)
	assert.Equal(t, ToggleResult{Action: ActionUnfollow, Active: false}, off)

	// Applying the toggle twice returns to the starting state.
	assert.Equal(t, false, Toggled(Toggled(false, ActionHype, ActionUnhype).Active, ActionHype, ActionUnhype).Active)
}
