package tshock

import "context"

// GroupOptions holds the optional fields of CreateGroup and UpdateGroup.
// Permissions is a comma separated list and ChatColor a "r,g,b" triplet.
type GroupOptions struct {
	Parent      *string
	Permissions *string
	ChatColor   *string
}

func (o GroupOptions) params(group string) Params {
	return Params{
		"group":       group,
		"parent":      o.Parent,
		"permissions": o.Permissions,
		"chatcolor":   o.ChatColor,
	}
}

// Groups returns all groups.
//
// Endpoint: /v2/groups/list
func (s *Server) Groups(ctx context.Context) (Response, error) {
	return s.call(ctx, "v2/groups/list", nil)
}

// ReadGroup returns the name, parent, chat color and permissions of group.
//
// Endpoint: /v2/groups/read
func (s *Server) ReadGroup(ctx context.Context, group string) (Response, error) {
	return s.call(ctx, "v2/groups/read", Params{"group": group})
}

// CreateGroup creates group.
//
// Endpoint: /v2/groups/create
func (s *Server) CreateGroup(ctx context.Context, group string, opts GroupOptions) (Response, error) {
	return s.call(ctx, "v2/groups/create", opts.params(group))
}

// DestroyGroup removes group.
//
// Endpoint: /v2/groups/destroy
func (s *Server) DestroyGroup(ctx context.Context, group string) (Response, error) {
	return s.call(ctx, "v2/groups/destroy", Params{"group": group})
}

// UpdateGroup changes the fields of group that are not nil in opts.
//
// Endpoint: /v2/groups/update
func (s *Server) UpdateGroup(ctx context.Context, group string, opts GroupOptions) (Response, error) {
	return s.call(ctx, "v2/groups/update", opts.params(group))
}
