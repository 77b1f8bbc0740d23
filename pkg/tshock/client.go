package tshock

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultTimeout is the time allowed for one request when WithTimeout is not used.
const DefaultTimeout = 5 * time.Second

type (
	// A Server is a handle on the REST API of a TShock server.
	// It is immutable once created and safe for concurrent use.
	Server struct {
		host    string
		port    int
		token   string
		timeout time.Duration
		http    *http.Client
		logger  logrus.FieldLogger
	}

	// An Option configures a Server.
	Option func(*Server)
)

// WithTimeout sets the time allowed for a request, connection included.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.timeout = timeout
	}
}

// WithHTTPClient sets the HTTP client used to perform requests.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Server) {
		s.http = c
	}
}

// WithLogger sets the logger used to trace requests (debug level).
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer returns a new Server targeting http://host:port with the given REST token.
// No network I/O is performed.
func NewServer(host string, port int, token string, opts ...Option) (*Server, error) {
	s := &Server{
		host:    host,
		port:    port,
		token:   token,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.host == "" {
		return nil, &InvalidServerError{Field: "host", Reason: "must not be empty"}
	}
	if s.port < 1 || s.port > 65535 {
		return nil, &InvalidServerError{Field: "port", Reason: "must be between 1 and 65535, got " + strconv.Itoa(s.port)}
	}
	if s.token == "" {
		return nil, &InvalidServerError{Field: "token", Reason: "must not be empty"}
	}
	if s.timeout <= 0 {
		return nil, &InvalidServerError{Field: "timeout", Reason: "must be positive, got " + s.timeout.String()}
	}

	if s.http == nil {
		s.http = &http.Client{} // Timeout is handled by the request context.
	}
	if s.logger == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		s.logger = logger
	}

	return s, nil
}

// Host returns the host of the server.
func (s *Server) Host() string {
	return s.host
}

// Port returns the port of the server.
func (s *Server) Port() int {
	return s.port
}

// Timeout returns the time allowed for a request.
func (s *Server) Timeout() time.Duration {
	return s.timeout
}

// BaseURL returns the root URL of the REST API, e.g. http://localhost:7878.
func (s *Server) BaseURL() string {
	return "http://" + net.JoinHostPort(s.host, strconv.Itoa(s.port))
}

// Request sends a GET request to the given endpoint (e.g. "v2/server/status") and returns the decoded JSON value.
// The token is always added to params.
//
// The value is returned verbatim whatever the HTTP status code is, as long as the body is valid JSON.
// A transport failure is reported as a *TransportError and an undecodable body as a *DecodeError.
func (s *Server) Request(ctx context.Context, endpoint string, params Params) (any, error) {
	v, _, err := s.request(ctx, endpoint, params)
	return v, err
}

// call performs a request to an endpoint answering with a JSON object.
func (s *Server) call(ctx context.Context, endpoint string, params Params) (Response, error) {
	endpoint = strings.TrimPrefix(endpoint, "/")

	v, status, err := s.request(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	r, ok := v.(map[string]any)
	if !ok {
		return nil, &DecodeError{Endpoint: endpoint, StatusCode: status, Err: errors.Errorf("response is not a JSON object: %T", v)}
	}
	return Response(r), nil
}

func (s *Server) request(ctx context.Context, endpoint string, params Params) (any, int, error) {
	endpoint = strings.TrimPrefix(endpoint, "/")

	query, err := params.encode(s.token)
	if err != nil {
		return nil, 0, err
	}

	u := s.BaseURL() + "/" + endpoint + "?" + query.Encode()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	//
	// Build request
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, 0, errors.Wrap(s.redact(err), "could not build request")
	}
	req.Header.Add("Accept", "application/json")

	log := s.logger.WithField("endpoint", endpoint)
	start := time.Now()

	//
	// Perform request
	res, err := s.http.Do(req)
	if err != nil {
		err = s.redact(err)
		log.WithError(err).Debug("tshock request failed")
		return nil, 0, &TransportError{Endpoint: endpoint, Err: err}
	}
	defer res.Body.Close()

	// A read failure while streaming the body (reset, timeout, short body) is still a transport failure.
	body, err := io.ReadAll(res.Body)
	if err != nil {
		err = s.redact(err)
		log.WithError(err).Debug("tshock request failed")
		return nil, res.StatusCode, &TransportError{Endpoint: endpoint, Err: err}
	}

	log = log.WithFields(logrus.Fields{
		"status":   res.StatusCode,
		"duration": time.Since(start),
	})

	//
	// Process response
	v, err := decode(body)
	if err != nil {
		log.WithError(err).Debug("tshock response is not JSON")
		return nil, res.StatusCode, &DecodeError{Endpoint: endpoint, StatusCode: res.StatusCode, Err: err}
	}

	log.Debug("tshock request")
	return v, res.StatusCode, nil
}

// decode parses body as exactly one JSON value.
func decode(body []byte) (any, error) {
	var v any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, errors.New("unexpected data after JSON value")
	}
	return v, nil
}

// redact removes the token from the URL embedded by net/http in its errors.
func (s *Server) redact(err error) error {
	var uerr *url.Error
	if !errors.As(err, &uerr) {
		return err
	}

	redacted := *uerr
	if u, perr := url.Parse(uerr.URL); perr == nil {
		q := u.Query()
		if q.Get(tokenKey) != "" {
			q.Set(tokenKey, "REDACTED")
			u.RawQuery = q.Encode()
		}
		redacted.URL = u.String()
	} else {
		redacted.URL = strings.ReplaceAll(uerr.URL, url.QueryEscape(s.token), "REDACTED")
	}
	return &redacted
}
