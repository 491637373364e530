package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"github.com/ridecrew/ridecrew/internal/domain/permission"
	"github.com/ridecrew/ridecrew/internal/shared/logger"
)

var _ permission.Enforcer = (*Enforcer)(nil)

// rbacModel is a role based model with role inheritance.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

// NewEnforcer creates an enforcer whose policies live in the casbin_rule table.
func NewEnforcer(db *gorm.DB, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	return &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}, nil
}

func (e *Enforcer) Enforce(subject string, resource permission.Resource, action permission.Action) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(subject, string(resource), string(action))
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "subject", subject, "resource", resource, "action", action)
		return false, fmt.Errorf("permission check failed: %w", err)
	}

	return allowed, nil
}

// SeedPolicies adds the given policies when missing. Existing policies are kept.
func (e *Enforcer) SeedPolicies(policies []permission.Policy) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	added := 0
	for _, p := range policies {
		ok, err := e.enforcer.AddPolicy(p.Role, string(p.Resource), string(p.Action))
		if err != nil {
			e.logger.Errorw("failed to add permission policy",
				"error", err,
				"role", p.Role,
				"resource", p.Resource,
				"action", p.Action)
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", p.Role, p.Resource, p.Action, err)
		}
		if ok {
			added++
		}
	}

	e.logger.Infow("permission policies seeded", "added", added, "total", len(policies))
	return nil
}

// AddRoleForUser binds a user subject to a role.
func (e *Enforcer) AddRoleForUser(subject string, role string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.AddRoleForUser(subject, role); err != nil {
		e.logger.Errorw("failed to add role for user", "error", err, "subject", subject, "role", role)
		return fmt.Errorf("failed to add role for user: %w", err)
	}
	return nil
}

func (e *Enforcer) LoadPolicy() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.enforcer.LoadPolicy(); err != nil {
		return fmt.Errorf("failed to reload policy: %w", err)
	}

	e.logger.Info("policy reloaded successfully")
	return nil
}
