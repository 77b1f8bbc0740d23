package tshock

import (
	"context"
	"strconv"
)

// World returns information about the current world (name, size, time, daytime, bloodmoon, invasionsize).
//
// Endpoint: /world/read
func (s *Server) World(ctx context.Context) (Response, error) {
	return s.call(ctx, "world/read", nil)
}

// SaveWorld saves the world.
//
// Endpoint: /v2/world/save
func (s *Server) SaveWorld(ctx context.Context) (Response, error) {
	return s.call(ctx, "v2/world/save", nil)
}

// Autosave enables or disables the world autosave.
// The state is part of the path.
//
// Endpoint: /v3/world/autosave/state/{state}
func (s *Server) Autosave(ctx context.Context, state bool) (Response, error) {
	return s.call(ctx, "v3/world/autosave/state/"+strconv.FormatBool(state), nil)
}

// Bloodmoon starts or stops a blood moon.
// The state is part of the path.
//
// Endpoint: /v3/world/bloodmoon/{state}
func (s *Server) Bloodmoon(ctx context.Context, state bool) (Response, error) {
	return s.call(ctx, "v3/world/bloodmoon/"+strconv.FormatBool(state), nil)
}

// Butcher kills all hostile NPCs, and the friendly ones too when killFriendly is true.
// The number of killed NPCs is in "killedcount".
//
// Endpoint: /v2/world/butcher
func (s *Server) Butcher(ctx context.Context, killFriendly bool) (Response, error) {
	return s.call(ctx, "v2/world/butcher", Params{"killfriendly": killFriendly})
}

// Meteor drops a meteor on the world.
//
// Endpoint: /world/meteor
func (s *Server) Meteor(ctx context.Context) (Response, error) {
	return s.call(ctx, "world/meteor", nil)
}
