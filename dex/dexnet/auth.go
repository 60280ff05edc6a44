// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

package dexnet

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/icholy/digest"
)

// ChallengeAuth is an http.RoundTripper that never sends credentials
// preemptively. Each request is first sent without an Authorization header.
// If the server answers 401 with a Digest challenge, the request is replayed
// once with Digest credentials. A Basic challenge gets Basic credentials. Any
// other 401 is returned to the caller as is.
type ChallengeAuth struct {
	User string
	Pass string
	// Transport performs the requests. http.DefaultTransport if nil.
	Transport http.RoundTripper
}

var _ http.RoundTripper = (*ChallengeAuth)(nil)

func (ca *ChallengeAuth) transport() http.RoundTripper {
	if ca.Transport == nil {
		return http.DefaultTransport
	}
	return ca.Transport
}

// CloseIdleConnections closes the idle connections of the Transport, if it
// keeps any. http.Client.CloseIdleConnections reaches it through this method.
func (ca *ChallengeAuth) CloseIdleConnections() {
	type closeIdler interface {
		CloseIdleConnections()
	}
	if tr, ok := ca.transport().(closeIdler); ok {
		tr.CloseIdleConnections()
	}
}

// RoundTrip satisfies http.RoundTripper. The request is not modified.
func (ca *ChallengeAuth) RoundTrip(req *http.Request) (*http.Response, error) {
	getBody, err := bodyGetter(req)
	if err != nil {
		return nil, err
	}

	first, err := cloneRequest(req, getBody)
	if err != nil {
		return nil, err
	}
	tr := ca.transport()
	resp, err := tr.RoundTrip(first)
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		return resp, err
	}

	// Buffer the 401 body so the response can be handed back if we cannot
	// answer the challenge.
	b, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("error reading challenge response: %w", err)
	}
	resp.Body = io.NopCloser(bytes.NewReader(b))

	second, err := cloneRequest(req, getBody)
	if err != nil {
		return nil, err
	}
	switch scheme := challengeScheme(resp.Header); scheme {
	case "digest":
		chal, err := digest.FindChallenge(resp.Header)
		if err != nil {
			return nil, fmt.Errorf("bad digest challenge: %w", err)
		}
		cred, err := digest.Digest(chal, digest.Options{
			Method:   req.Method,
			URI:      req.URL.RequestURI(),
			GetBody:  getBody,
			Count:    1,
			Username: ca.User,
			Password: ca.Pass,
		})
		if err != nil {
			return nil, err
		}
		second.Header.Set("Authorization", cred.String())
	case "basic":
		second.SetBasicAuth(ca.User, ca.Pass)
	default:
		return resp, nil
	}
	return tr.RoundTrip(second)
}

// challengeScheme picks the strongest scheme offered in the WWW-Authenticate
// headers, "digest" or "basic", or "" if neither is offered.
func challengeScheme(h http.Header) string {
	var basic bool
	for _, v := range h.Values("WWW-Authenticate") {
		scheme, _, _ := strings.Cut(strings.TrimSpace(v), " ")
		switch strings.ToLower(scheme) {
		case "digest":
			return "digest"
		case "basic":
			basic = true
		}
	}
	if basic {
		return "basic"
	}
	return ""
}

// bodyGetter returns a function producing fresh copies of the request body.
func bodyGetter(req *http.Request) (func() (io.ReadCloser, error), error) {
	if req.Body == nil || req.Body == http.NoBody {
		return func() (io.ReadCloser, error) { return http.NoBody, nil }, nil
	}
	if req.GetBody != nil {
		return req.GetBody, nil
	}
	b, err := io.ReadAll(req.Body)
	req.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("error reading request body: %w", err)
	}
	return func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(b)), nil
	}, nil
}

func cloneRequest(req *http.Request, getBody func() (io.ReadCloser, error)) (*http.Request, error) {
	clone := req.Clone(req.Context())
	body, err := getBody()
	if err != nil {
		return nil, err
	}
	clone.Body = body
	clone.GetBody = getBody
	return clone, nil
}
