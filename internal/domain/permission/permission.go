// Package permission declares the platform-level authorization policy. Club
// level rights (club admin) are carried by the user aggregate, not here.
package permission

type Resource string

const (
	ResourceClubs Resource = "clubs"
	ResourcePosts Resource = "posts"
	ResourceUsers Resource = "users"
)

type Action string

const (
	ActionRead   Action = "read"
	ActionDelete Action = "delete"
)

// Policy grants action on resource to a role.
type Policy struct {
	Role     string
	Resource Resource
	Action   Action
}

// DefaultPolicies are seeded at startup.
func DefaultPolicies() []Policy {
	return []Policy{
		{Role: "admin", Resource: ResourceClubs, Action: ActionDelete},
		{Role: "admin", Resource: ResourcePosts, Action: ActionDelete},
		{Role: "admin", Resource: ResourceUsers, Action: ActionRead},
	}
}

// Enforcer decides whether a subject (a role name or a user id bound to roles)
// may perform an action on a resource.
type Enforcer interface {
	Enforce(subject string, resource Resource, action Action) (bool, error)
}
