package tshock

import "context"

// BanOptions holds the optional fields of CreateBan.
// Start and End are date-times parsed by TShock; when End is nil the ban is permanent.
type BanOptions struct {
	Reason *string
	Start  *string
	End    *string
}

// CreateBan bans identifier, which is prefixed by its kind (e.g. "acc:", "uuid:", "name:" or "ip:").
//
// Endpoint: /v3/bans/create
func (s *Server) CreateBan(ctx context.Context, identifier string, opts BanOptions) (Response, error) {
	return s.call(ctx, "v3/bans/create", Params{
		"identifier": identifier,
		"reason":     opts.Reason,
		"start":      opts.Start,
		"end":        opts.End,
	})
}

// DestroyBan lifts the ban with the given ticket number.
// When fullDelete is true the ban is removed from the database instead of being expired.
//
// Endpoint: /v3/bans/destroy
func (s *Server) DestroyBan(ctx context.Context, ticketNumber int, fullDelete bool) (Response, error) {
	return s.call(ctx, "v3/bans/destroy", Params{
		"ticketNumber": ticketNumber,
		"fullDelete":   fullDelete,
	})
}

// ReadBan returns the ban with the given ticket number.
//
// Endpoint: /v3/bans/read
func (s *Server) ReadBan(ctx context.Context, ticketNumber int) (Response, error) {
	return s.call(ctx, "v3/bans/read", Params{"ticketNumber": ticketNumber})
}

// Bans returns all bans.
//
// Endpoint: /v3/bans/list
func (s *Server) Bans(ctx context.Context) (Response, error) {
	return s.call(ctx, "v3/bans/list", nil)
}
