// Package bsky is a small XRPC client for the parts of the Bluesky API the
// feed reader needs: sessions, the home timeline and notifications.
package bsky

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"

	"skyfeed/internal/jsonutil"
	"skyfeed/internal/logger"
	"skyfeed/internal/trace"
)

// DefaultService is the PDS entryway used when none is configured.
const DefaultService = "https://bsky.social"

// UserAgent is sent with every request.
const UserAgent = "skyfeed/0.1"

// XRPCError is an error response from the server.
type XRPCError struct {
	Status  int
	Name    string `json:"error"`
	Message string `json:"message"`
}

func (e *XRPCError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("xrpc %d: %s", e.Status, e.Name)
	}
	return fmt.Sprintf("xrpc %d: %s: %s", e.Status, e.Name, e.Message)
}

// IsExpiredToken reports whether err says the access token has expired.
func IsExpiredToken(err error) bool {
	var xe *XRPCError
	return errors.As(err, &xe) && xe.Name == "ExpiredToken"
}

// Client talks to one service on behalf of at most one account.
type Client struct {
	service string
	http    *http.Client
	store   SessionStore
	tracer  oteltrace.Tracer
	log     *slog.Logger

	mu      sync.Mutex
	session *Session
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTracer replaces the tracer taken from the global provider.
func WithTracer(t oteltrace.Tracer) Option {
	return func(c *Client) { c.tracer = t }
}

// NewClient returns a client for service that persists sessions in store.
func NewClient(service string, store SessionStore, opts ...Option) *Client {
	c := &Client{
		service: strings.TrimRight(service, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		store:   store,
		tracer:  trace.Tracer("skyfeed/internal/bsky"),
		log:     logger.ComponentLogger("bsky"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns a copy of the active session, or nil.
func (c *Client) Session() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return nil
	}
	s := *c.session
	return &s
}

func (c *Client) setSession(s *Session) error {
	c.mu.Lock()
	c.session = s
	c.mu.Unlock()
	if s == nil {
		return c.store.Clear()
	}
	return c.store.Save(s)
}

// Login creates a new session with a handle or email and a password.
func (c *Client) Login(ctx context.Context, identifier, password string) error {
	in := map[string]string{"identifier": identifier, "password": password}
	var s Session
	if err := c.call(ctx, http.MethodPost, "com.atproto.server.createSession", nil, in, "", &s); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := c.setSession(&s); err != nil {
		return err
	}
	c.log.Info("logged in", "handle", s.Handle)
	return nil
}

// ResumeSession loads the stored session and checks it with the server,
// refreshing the tokens if they have expired.
func (c *Client) ResumeSession(ctx context.Context) error {
	s, err := c.store.Load()
	if err != nil {
		return fmt.Errorf("resume session: %w", err)
	}
	c.mu.Lock()
	c.session = s
	c.mu.Unlock()

	var info struct {
		DID    string `json:"did"`
		Handle string `json:"handle"`
		Email  string `json:"email"`
	}
	err = c.authed(ctx, func(token string) error {
		return c.call(ctx, http.MethodGet, "com.atproto.server.getSession", nil, nil, token, &info)
	})
	if err != nil {
		c.mu.Lock()
		c.session = nil
		c.mu.Unlock()
		return fmt.Errorf("resume session: %w", err)
	}

	s = c.Session()
	s.DID, s.Handle, s.Email = info.DID, info.Handle, info.Email
	if err := c.setSession(s); err != nil {
		return err
	}
	c.log.Info("session resumed", "handle", s.Handle)
	return nil
}

// Logout forgets the session locally and asks the server to revoke it.
// The local session is cleared even if the server call fails.
func (c *Client) Logout(ctx context.Context) error {
	s := c.Session()
	if s == nil {
		stored, err := c.store.Load()
		if err != nil && !errors.Is(err, ErrNoSession) {
			return err
		}
		s = stored
	}
	var revokeErr error
	if s != nil {
		revokeErr = c.call(ctx, http.MethodPost, "com.atproto.server.deleteSession", nil, nil, s.RefreshJwt, nil)
	}
	if err := c.setSession(nil); err != nil {
		return err
	}
	if revokeErr != nil {
		return fmt.Errorf("logout: %w", revokeErr)
	}
	return nil
}

func (c *Client) refresh(ctx context.Context) error {
	s := c.Session()
	if s == nil {
		return ErrNoSession
	}
	var next Session
	if err := c.call(ctx, http.MethodPost, "com.atproto.server.refreshSession", nil, nil, s.RefreshJwt, &next); err != nil {
		return fmt.Errorf("refresh session: %w", err)
	}
	if next.Email == "" {
		next.Email = s.Email
	}
	c.log.Debug("session refreshed", "handle", next.Handle)
	return c.setSession(&next)
}

// authed runs fn with the access token, refreshing once on ExpiredToken.
func (c *Client) authed(ctx context.Context, fn func(token string) error) error {
	s := c.Session()
	if s == nil {
		return ErrNoSession
	}
	err := fn(s.AccessJwt)
	if !IsExpiredToken(err) {
		return err
	}
	if err := c.refresh(ctx); err != nil {
		return err
	}
	return fn(c.Session().AccessJwt)
}

// query performs an authenticated XRPC query.
func (c *Client) query(ctx context.Context, nsid string, params url.Values, out any) error {
	return c.authed(ctx, func(token string) error {
		return c.call(ctx, http.MethodGet, nsid, params, nil, token, out)
	})
}

func (c *Client) call(ctx context.Context, method, nsid string, params url.Values, in any, token string, out any) (err error) {
	ctx, span := c.tracer.Start(ctx, "bsky."+nsid,
		oteltrace.WithSpanKind(oteltrace.SpanKindClient),
		oteltrace.WithAttributes(
			semconv.HTTPMethodKey.String(method),
			attribute.String("xrpc.nsid", nsid),
		))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	u := c.service + "/xrpc/" + nsid
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s: %w", nsid, err)
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("build %s request: %w", nsid, err)
	}
	req.Header.Set("User-Agent", UserAgent)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", nsid, err)
	}
	defer resp.Body.Close()
	span.SetAttributes(semconv.HTTPStatusCodeKey.Int(resp.StatusCode))
	c.log.Debug("xrpc", "nsid", nsid, "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		xe := &XRPCError{Status: resp.StatusCode}
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		if jsonutil.UnmarshalWithContext(data, xe, "decode error") != nil || xe.Name == "" {
			xe.Name = http.StatusText(resp.StatusCode)
		}
		xe.Status = resp.StatusCode
		return xe
	}
	if out == nil {
		return nil
	}
	return jsonutil.DecodeWithContext(resp.Body, out, "decode "+nsid)
}
