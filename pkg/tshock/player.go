package tshock

import "context"

// KickPlayer kicks player from the server. reason is omitted when nil.
//
// Endpoint: /v2/players/kick
func (s *Server) KickPlayer(ctx context.Context, player string, reason *string) (Response, error) {
	return s.call(ctx, "v2/players/kick", Params{
		"player": player,
		"reason": reason,
	})
}

// KillPlayer kills player. from, the name shown as the killer, is omitted when nil.
//
// Endpoint: /v2/players/kill
func (s *Server) KillPlayer(ctx context.Context, player string, from *string) (Response, error) {
	return s.call(ctx, "v2/players/kill", Params{
		"player": player,
		"from":   from,
	})
}

// Players returns the players currently online.
//
// Endpoint: /v2/players/list
func (s *Server) Players(ctx context.Context) (Response, error) {
	return s.call(ctx, "v2/players/list", nil)
}

// MutePlayer mutes player.
//
// Endpoint: /v2/players/mute
func (s *Server) MutePlayer(ctx context.Context, player string) (Response, error) {
	return s.call(ctx, "v2/players/mute", Params{"player": player})
}

// UnmutePlayer unmutes player.
//
// Endpoint: /v2/players/unmute
func (s *Server) UnmutePlayer(ctx context.Context, player string) (Response, error) {
	return s.call(ctx, "v2/players/unmute", Params{"player": player})
}

// ReadPlayer returns details about an online player (nickname, username, ip, group, position, inventory, buffs...).
//
// Endpoint: /v4/players/read
func (s *Server) ReadPlayer(ctx context.Context, player string) (Response, error) {
	return s.call(ctx, "v4/players/read", Params{"player": player})
}
