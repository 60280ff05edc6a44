// This code is available on the terms of the project LICENSE.md file,
// also available online at https://blueoakcouncil.org/license/1.0.0.

package rpc

import (
	"bytes"
	"encoding/json"
	"fmt"

	"decred.org/xmrrpc/dex"
)

// requestID is the id of every request. Calls are not multiplexed on a
// connection, so the id carries no information.
const requestID = "0"

const (
	// ErrMissingArgument is returned, wrapped with the argument name, when a
	// required argument is empty. No request is sent.
	ErrMissingArgument = dex.ErrorKind("missing required argument")
	// ErrBadStatus is returned by ErrorFromPayload for a status other than
	// "OK".
	ErrBadStatus = dex.ErrorKind("bad status")
)

// Request is the JSON-RPC 2.0 request envelope.
type Request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

// RPCError is the "error" member of a JSON-RPC response.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error satisfies the error interface.
func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error code %d: %s", e.Code, e.Message)
}

// responseFields are the members of a response payload that indicate
// success or failure.
type responseFields struct {
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
	Status *string         `json:"status"`
}

// unwrapResult returns the "result" member of payload if payload is an object
// with a non-null result. Otherwise payload is returned unchanged.
func unwrapResult(payload json.RawMessage) json.RawMessage {
	var resp responseFields
	if err := json.Unmarshal(payload, &resp); err != nil {
		return payload
	}
	if len(resp.Result) == 0 || bytes.Equal(resp.Result, []byte("null")) {
		return payload
	}
	return resp.Result
}

// ErrorFromPayload inspects a payload returned by Dispatch. It returns an
// *RPCError if the payload carries an "error" member, an ErrBadStatus error if
// it carries a "status" other than "OK", and nil otherwise. Payloads that are
// not JSON objects are never errors.
func ErrorFromPayload(payload json.RawMessage) error {
	var resp responseFields
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil
	}
	if resp.Error != nil {
		return resp.Error
	}
	if resp.Status != nil && *resp.Status != "OK" {
		return dex.NewError(ErrBadStatus, *resp.Status)
	}
	return nil
}

// Decode unmarshals payload into thing.
func Decode(payload json.RawMessage, thing any) error {
	if err := json.Unmarshal(payload, thing); err != nil {
		return fmt.Errorf("error decoding %T: %w", thing, err)
	}
	return nil
}
