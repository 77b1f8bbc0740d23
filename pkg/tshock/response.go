package tshock

import "fmt"

// A Response is the JSON object returned by a TShock endpoint, decoded as is.
// Its schema depends on the endpoint. Numbers are kept as json.Number.
//
// A Response is also returned for HTTP error statuses: TShock reports failures
// through the "status" and "error" (or "response") fields, not through the transport.
type Response map[string]any

// Status returns the "status" field sent by TShock (e.g. "200", "400", "403").
func (r Response) Status() string {
	return r.text("status")
}

// OK returns true when the "status" field is "200".
func (r Response) OK() bool {
	return r.Status() == "200"
}

// Message returns the human readable message of the response.
// TShock uses "error" for failures and "response" for most successful calls.
func (r Response) Message() string {
	if msg := r.text("error"); msg != "" {
		return msg
	}
	return r.text("response")
}

func (r Response) text(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
