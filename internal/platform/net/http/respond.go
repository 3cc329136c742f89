// Package http wraps chi behind a Router seam and standardizes the JSON
// response envelope every endpoint writes.
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "paychat/internal/platform/errors"
	pnet "paychat/internal/platform/net"
)

// Envelope is the body shape shared by all endpoints
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

func envelope(status, reqID string, code int, data any) Envelope {
	return Envelope{StatusCode: code, Status: status, RequestID: reqID, Data: data}
}

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONStatus writes a bare status with an empty object body
func JSONStatus(w stdhttp.ResponseWriter, status int) {
	JSON(w, status, map[string]any{})
}

// effectful helpers for classic (w, r) handlers

// RespondOK writes a 200 envelope around data
func RespondOK(w stdhttp.ResponseWriter, r *stdhttp.Request, data any) {
	JSON(w, stdhttp.StatusOK, envelope(
		stdhttp.StatusText(stdhttp.StatusOK),
		pnet.RequestID(r.Context()),
		stdhttp.StatusOK,
		data,
	))
}

// RespondError maps a project error onto an envelope and writes it
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status := perr.HTTPStatus(err)
	wr := perr.WireFrom(err)
	e := envelope(stdhttp.StatusText(status), pnet.RequestID(r.Context()), status, nil)
	e.Code = wr.Code
	e.Error = wr.Message
	JSON(w, status, e)
}

// return-style helpers, the shape most handlers in this codebase use

// Response is what a return-style handler produces
type Response struct {
	Status int
	Body   any
	// optional extra headers
	Header stdhttp.Header
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(stdhttp.StatusNoContent)
		return
	}

	reqID := pnet.RequestID(r.Context())

	// an error body wins over the declared status
	if err, ok := resp.Body.(error); ok && err != nil {
		status = perr.HTTPStatus(err)
		wr := perr.WireFrom(err)
		e := envelope(stdhttp.StatusText(status), reqID, status, nil)
		e.Code = wr.Code
		e.Error = wr.Message
		JSON(w, status, e)
		return
	}

	JSON(w, status, envelope(stdhttp.StatusText(status), reqID, status, resp.Body))
}

// OK wraps data in a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// NoContent is a bodyless 204 response
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Data is an alias for OK
func Data(v any) Response { return OK(v) }

// Error defers status/envelope mapping to the error itself
func Error(err error) Response { return Response{Body: err} }
