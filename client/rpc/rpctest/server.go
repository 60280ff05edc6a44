// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

// Package rpctest provides a scriptable stand-in for monerod and
// monero-wallet-rpc for use in tests.
package rpctest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"
)

// Call is a request received by the Server.
type Call struct {
	// Path is the request path, e.g. "/json_rpc" or "/get_height".
	Path string
	// Method is the JSON-RPC method, or the path name for extension calls.
	Method string
	// Extension is true for calls not sent to /json_rpc.
	Extension bool
	// Body is the raw request body.
	Body json.RawMessage
	// Params is the envelope params for JSON-RPC calls, and the body for
	// extension calls.
	Params json.RawMessage
	// Authorized is true if the request carried an Authorization header.
	Authorized bool
	// Header is the request header.
	Header http.Header
}

// HandlerFunc produces the HTTP status and the JSON body for a call.
type HandlerFunc func(c *Call) (status int, body any)

// Server is an httptest.Server routing JSON-RPC and extension calls to
// scripted handlers. Every call is recorded.
type Server struct {
	*httptest.Server

	user, pass string
	auth       bool

	mtx      sync.Mutex
	calls    []*Call
	handlers map[string]HandlerFunc
}

// Option configures a Server.
type Option func(*Server)

// WithBasicAuth makes the server answer requests lacking valid credentials
// with a 401 Basic challenge.
func WithBasicAuth(user, pass string) Option {
	return func(s *Server) {
		s.user, s.pass, s.auth = user, pass, true
	}
}

// NewServer starts a Server. Close it when done.
func NewServer(opts ...Option) *Server {
	s := &Server{
		handlers: make(map[string]HandlerFunc),
	}
	for _, opt := range opts {
		opt(s)
	}
	r := chi.NewRouter()
	r.Use(s.challenge)
	r.Post("/json_rpc", s.handleJSONRPC)
	r.Post("/{method}", s.handleExtension)
	s.Server = httptest.NewServer(r)
	return s
}

// HandleFunc sets the handler for a method. JSON-RPC methods and extension
// paths share one namespace.
func (s *Server) HandleFunc(method string, h HandlerFunc) {
	s.mtx.Lock()
	s.handlers[method] = h
	s.mtx.Unlock()
}

// Handle makes method reply 200 with body. Use Result to build a JSON-RPC
// success envelope.
func (s *Server) Handle(method string, body any) {
	s.HandleFunc(method, func(*Call) (int, any) {
		return http.StatusOK, body
	})
}

// Fail makes method reply with the HTTP status and an empty object.
func (s *Server) Fail(method string, status int) {
	s.HandleFunc(method, func(*Call) (int, any) {
		return status, struct{}{}
	})
}

// Calls returns the recorded calls in arrival order. Rejected auth challenges
// are included.
func (s *Server) Calls() []*Call {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return append([]*Call(nil), s.calls...)
}

// Methods returns the method of every recorded call.
func (s *Server) Methods() []string {
	calls := s.Calls()
	ms := make([]string, len(calls))
	for i, c := range calls {
		ms[i] = c.Method
	}
	return ms
}

// Reset forgets recorded calls.
func (s *Server) Reset() {
	s.mtx.Lock()
	s.calls = nil
	s.mtx.Unlock()
}

// Result wraps v in a JSON-RPC 2.0 success envelope.
func Result(v any) map[string]any {
	return map[string]any{
		"jsonrpc": "2.0",
		"id":      "0",
		"result":  v,
	}
}

// Error builds a JSON-RPC 2.0 error envelope.
func Error(code int, msg string) map[string]any {
	return map[string]any{
		"jsonrpc": "2.0",
		"id":      "0",
		"error": map[string]any{
			"code":    code,
			"message": msg,
		},
	}
}

func (s *Server) record(c *Call) {
	s.mtx.Lock()
	s.calls = append(s.calls, c)
	s.mtx.Unlock()
}

func (s *Server) handler(method string) HandlerFunc {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.handlers[method]
}

func (s *Server) challenge(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.auth {
			next.ServeHTTP(w, r)
			return
		}
		user, pass, ok := r.BasicAuth()
		if ok && user == s.user && pass == s.pass {
			next.ServeHTTP(w, r)
			return
		}
		b, _ := io.ReadAll(r.Body)
		s.record(&Call{
			Path:       r.URL.Path,
			Body:       b,
			Authorized: r.Header.Get("Authorization") != "",
			Header:     r.Header.Clone(),
		})
		w.Header().Set("WWW-Authenticate", `Basic realm="monero-rpc"`)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	})
}

func (s *Server) handleJSONRPC(w http.ResponseWriter, r *http.Request) {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var req struct {
		JSONRPC string          `json:"jsonrpc"`
		ID      json.RawMessage `json:"id"`
		Method  string          `json:"method"`
		Params  json.RawMessage `json:"params"`
	}
	if err := json.Unmarshal(b, &req); err != nil {
		writeJSON(w, http.StatusOK, Error(-32700, "Parse error"))
		return
	}
	c := &Call{
		Path:       r.URL.Path,
		Method:     req.Method,
		Body:       b,
		Params:     req.Params,
		Authorized: r.Header.Get("Authorization") != "",
		Header:     r.Header.Clone(),
	}
	s.record(c)
	h := s.handler(req.Method)
	if h == nil {
		writeJSON(w, http.StatusOK, Error(-32601, "Method not found"))
		return
	}
	status, body := h(c)
	writeJSON(w, status, body)
}

func (s *Server) handleExtension(w http.ResponseWriter, r *http.Request) {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	method := chi.URLParam(r, "method")
	c := &Call{
		Path:       r.URL.Path,
		Method:     method,
		Extension:  true,
		Body:       b,
		Params:     b,
		Authorized: r.Header.Get("Authorization") != "",
		Header:     r.Header.Clone(),
	}
	s.record(c)
	h := s.handler(method)
	if h == nil {
		http.NotFound(w, r)
		return
	}
	status, body := h(c)
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if raw, ok := body.(json.RawMessage); ok {
		w.Write(raw)
		return
	}
	json.NewEncoder(w).Encode(body)
}
