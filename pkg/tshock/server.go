package tshock

import "context"

// Status returns basic information about the server status:
// name, port, playercount and players (names separated by a comma).
//
// Endpoint: /status
func (s *Server) Status(ctx context.Context) (Response, error) {
	return s.call(ctx, "status", nil)
}

// TokenTest tests whether the token is valid.
//
// Endpoint: /tokentest
func (s *Server) TokenTest(ctx context.Context) (Response, error) {
	return s.call(ctx, "tokentest", nil)
}

// CreateToken creates an authenticated token for the given user.
// TShock answers with HTTP 403 and an error message when the authentication fails,
// otherwise the token is in the "token" field.
//
// Endpoint: /v2/token/create
func (s *Server) CreateToken(ctx context.Context, username, password string) (Response, error) {
	return s.call(ctx, "v2/token/create", Params{
		"username": username,
		"password": password,
	})
}

// Broadcast sends msg to all players on the server.
//
// Endpoint: /v2/server/broadcast
func (s *Server) Broadcast(ctx context.Context, msg string) (Response, error) {
	return s.call(ctx, "v2/server/broadcast", Params{"msg": msg})
}

// Off shuts down the server. TShock refuses to do it unless confirm is true.
// When nosave is true the world is not saved before shutting down.
//
// Endpoint: /v2/server/off
func (s *Server) Off(ctx context.Context, confirm, nosave bool) (Response, error) {
	return s.call(ctx, "v2/server/off", Params{
		"confirm": confirm,
		"nosave":  nosave,
	})
}

// ServerStatus returns details about the running server:
// name, port, playercount, maxplayers, world and optionally players and rules.
//
// Endpoint: /v2/server/status
func (s *Server) ServerStatus(ctx context.Context, players, rules bool) (Response, error) {
	return s.call(ctx, "v2/server/status", Params{
		"players": players,
		"rules":   rules,
	})
}

// RawCommand issues cmd on the server console just as if it was typed there.
// The command output is in the "response" field.
//
// Endpoint: /v3/server/rawcmd
func (s *Server) RawCommand(ctx context.Context, cmd string) (Response, error) {
	return s.call(ctx, "v3/server/rawcmd", Params{"cmd": cmd})
}

// MOTD returns the message of the day.
//
// Endpoint: /v3/server/motd
func (s *Server) MOTD(ctx context.Context) (Response, error) {
	return s.call(ctx, "v3/server/motd", nil)
}

// Reload reloads the server configuration.
//
// Endpoint: /v3/server/reload
func (s *Server) Reload(ctx context.Context) (Response, error) {
	return s.call(ctx, "v3/server/reload", nil)
}

// Rules returns the server rules.
//
// Endpoint: /v3/server/rules
func (s *Server) Rules(ctx context.Context) (Response, error) {
	return s.call(ctx, "v3/server/rules", nil)
}
