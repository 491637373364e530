package shared

// ToggleAction names the outcome of a relation toggle (follow, like, hype).
type ToggleAction string

const (
	ActionFollow   ToggleAction = "Follow"
	ActionUnfollow ToggleAction = "Unfollow"
	ActionLike     ToggleAction = "Like"
	ActionUnlike   ToggleAction = "Unlike"
	ActionHype     ToggleAction = "Hype"
	ActionUnhype   ToggleAction = "Unhype"
)

// ToggleResult reports which side of the toggle the relation ended on.
type ToggleResult struct {
	Action ToggleAction `json:"action"`
	Active bool         `json:"active"`
}

// Toggled builds the result of flipping a relation that existed (wasActive) or not.
func Toggled(wasActive bool, on, off ToggleAction) ToggleResult {
	if wasActive {
		return ToggleResult{Action: off, Active: false}
	}
	return ToggleResult{Action: on, Active: true}
}
