package tshock

import "context"

// A UserType indicates what the user parameter of a user endpoint refers to.
type UserType string

const (
	// ByName looks up a user by its name.
	ByName UserType = "name"
	// ByID looks up a user by its ID.
	ByID UserType = "id"
	// ByIP looks up a user by its IP.
	ByIP UserType = "ip"
)

func (t UserType) String() string {
	return string(t)
}

// UserUpdate holds the optional fields of UpdateUser. A nil field is left unchanged.
type UserUpdate struct {
	Password *string
	Group    *string
}

// ActiveUsers returns the currently active users, separated by a tab character in "activeusers".
//
// Endpoint: /v2/users/activelist
func (s *Server) ActiveUsers(ctx context.Context) (Response, error) {
	return s.call(ctx, "v2/users/activelist", nil)
}

// Users returns all registered users.
//
// Endpoint: /v2/users/list
func (s *Server) Users(ctx context.Context) (Response, error) {
	return s.call(ctx, "v2/users/list", nil)
}

// ReadUser returns the group, id, name and ip of a registered user.
//
// Endpoint: /v2/users/read
func (s *Server) ReadUser(ctx context.Context, typ UserType, user string) (Response, error) {
	return s.call(ctx, "v2/users/read", Params{
		"type": typ,
		"user": user,
	})
}

// CreateUser registers a user in the database.
//
// Endpoint: /v2/users/create
func (s *Server) CreateUser(ctx context.Context, typ UserType, user, password, group, ip string) (Response, error) {
	return s.call(ctx, "v2/users/create", Params{
		"type":     typ,
		"user":     user,
		"password": password,
		"group":    group,
		"ip":       ip,
	})
}

// DestroyUser removes a registered user.
//
// Endpoint: /v2/users/destroy
func (s *Server) DestroyUser(ctx context.Context, typ UserType, user string) (Response, error) {
	return s.call(ctx, "v2/users/destroy", Params{
		"type": typ,
		"user": user,
	})
}

// UpdateUser changes the password and/or the group of a registered user.
//
// Endpoint: /v2/users/update
func (s *Server) UpdateUser(ctx context.Context, typ UserType, user string, update UserUpdate) (Response, error) {
	return s.call(ctx, "v2/users/update", Params{
		"type":     typ,
		"user":     user,
		"password": update.Password,
		"group":    update.Group,
	})
}
