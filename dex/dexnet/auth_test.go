// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

package dexnet

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/icholy/digest"
)

type authServer struct {
	mtx      sync.Mutex
	requests []*http.Request
	bodies   []string
}

func (s *authServer) record(r *http.Request) {
	b, _ := io.ReadAll(r.Body)
	s.mtx.Lock()
	s.requests = append(s.requests, r)
	s.bodies = append(s.bodies, string(b))
	s.mtx.Unlock()
}

func TestChallengeAuthBasic(t *testing.T) {
	srv := &authServer{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srv.record(r)
		user, pass, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="monero-rpc"`)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if user != "user" || pass != "" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.Write([]byte(`{"result":{"count":993163,"status":"OK"}}`))
	}))
	defer ts.Close()

	// An empty password is a valid credential.
	client := NewClient(&ClientConfig{Credentials: &Credentials{User: "user", Pass: ""}})
	var raw json.RawMessage
	if err := Post(t.Context(), ts.URL+"/json_rpc", &raw, []byte(`{"method":"get_block_count"}`), WithClient(client)); err != nil {
		t.Fatalf("Post error: %v", err)
	}
	if len(srv.requests) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(srv.requests))
	}
	if srv.requests[0].Header.Get("Authorization") != "" {
		t.Fatalf("credentials sent preemptively")
	}
	if srv.bodies[0] != srv.bodies[1] || srv.bodies[1] != `{"method":"get_block_count"}` {
		t.Fatalf("body not replayed: %q, %q", srv.bodies[0], srv.bodies[1])
	}
}

func TestChallengeAuthDigest(t *testing.T) {
	const user, pass = "monero", "hunter2"
	chal := &digest.Challenge{
		Realm:     "monero-rpc",
		Nonce:     "a6e73f6e1b3c4b21",
		QOP:       []string{"auth"},
		Algorithm: "MD5",
	}
	srv := &authServer{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srv.record(r)
		auth := r.Header.Get("Authorization")
		if auth == "" {
			w.Header().Set("WWW-Authenticate", chal.String())
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		cred, err := digest.ParseCredentials(auth)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		want, err := digest.Digest(chal, digest.Options{
			Method:   r.Method,
			URI:      cred.URI,
			Count:    cred.Nc,
			Cnonce:   cred.Cnonce,
			Username: user,
			Password: pass,
		})
		if err != nil || want.Response != cred.Response {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"result":{"version":65562}}`))
	}))
	defer ts.Close()

	client := NewClient(&ClientConfig{Credentials: &Credentials{User: user, Pass: pass}})
	var raw json.RawMessage
	if err := Post(t.Context(), ts.URL+"/json_rpc", &raw, []byte(`{}`), WithClient(client)); err != nil {
		t.Fatalf("Post error: %v", err)
	}
	if len(srv.requests) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(srv.requests))
	}

	// Wrong password is an HTTP error, not a loop.
	srv.requests = nil
	client = NewClient(&ClientConfig{Credentials: &Credentials{User: user, Pass: "wrong"}})
	err := Post(t.Context(), ts.URL+"/json_rpc", &raw, []byte(`{}`), WithClient(client))
	if !errors.Is(err, ErrHTTPStatus) {
		t.Fatalf("expected HTTP status error, got %v", err)
	}
	if len(srv.requests) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(srv.requests))
	}
}

func TestChallengeAuthNoChallenge(t *testing.T) {
	var n int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n++
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code":401}`))
	}))
	defer ts.Close()

	client := NewClient(&ClientConfig{Credentials: &Credentials{User: "u", Pass: "p"}})
	var errBody struct {
		Code int `json:"code"`
	}
	err := Post(t.Context(), ts.URL, nil, []byte(`{}`), WithClient(client), WithErrorParsing(&errBody))
	if err == nil {
		t.Fatal("no error for 401 without challenge")
	}
	if n != 1 {
		t.Fatalf("expected 1 request, got %d", n)
	}
	if errBody.Code != 401 {
		t.Fatalf("401 body not preserved")
	}
}

func TestChallengeScheme(t *testing.T) {
	tests := []struct {
		vals []string
		want string
	}{
		{nil, ""},
		{[]string{`Basic realm="x"`}, "basic"},
		{[]string{`Basic realm="x"`, `Digest realm="x", nonce="y"`}, "digest"},
		{[]string{`Bearer`}, ""},
		{[]string{`  digest realm="x"`}, "digest"},
	}
	for _, tt := range tests {
		h := http.Header{}
		for _, v := range tt.vals {
			h.Add("WWW-Authenticate", v)
		}
		if got := challengeScheme(h); got != tt.want {
			t.Errorf("challengeScheme(%v) = %q, want %q", tt.vals, got, tt.want)
		}
	}
}
