// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/client-registry/internal/logger"
)

// HTTPClient wraps resty.Client. Every request it sends carries an
// X-Trace-ID header: the id stored in the request context via [WithTraceID],
// or a freshly generated one. Responses are logged at debug level with the
// same id, so client and placeholder server logs can be correlated.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent client with its own connection pool.
func NewHTTPClient(log *logger.Logger) *HTTPClient {
	ids := NewUUIDGenerator()
	client := resty.New()

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		traceID, ok := GetTraceIDFromContext(req.Context())
		if !ok {
			traceID = ids.Generate()
		}
		req.SetHeader(TraceIDHeader, traceID)
		return nil
	})

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Debug().
			Str("func", "HTTPClient").
			Str("trace_id", resp.Request.Header.Get(TraceIDHeader)).
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Msg("http response")
		return nil
	})

	return &HTTPClient{Client: client}
}
