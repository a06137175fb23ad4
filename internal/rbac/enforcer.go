package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Subjects resolved from the authenticated token. Roles are coarse on
// purpose; per-route enforcement happens against the request path.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act, eft

[policy_effect]
e = some(where (p.eft == allow)) && !some(where (p.eft == deny))

[matchers]
m = r.sub == p.sub && keyMatch2(r.obj, p.obj) && (r.act == p.act || p.act == "*")
`

// Enforcer is the subset of casbin.Enforcer the middleware needs.
type Enforcer interface {
	Enforce(rvals ...interface{}) (bool, error)
}

// NewEnforcer builds the in-memory policy: admins reach everything, the
// user role is shut out of user administration.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	policies := [][]string{
		{RoleAdmin, "/api/v1/*", "*", "allow"},
		{RoleUser, "/api/v1/*", "*", "allow"},
		{RoleUser, "/api/v1/users", "*", "deny"},
		{RoleUser, "/api/v1/users/*", "*", "deny"},
	}
	for _, p := range policies {
		if _, err := e.AddPolicy(p[0], p[1], p[2], p[3]); err != nil {
			return nil, err
		}
	}

	return e, nil
}
