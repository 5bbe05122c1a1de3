package http

import (
	"context"
	"fmt"
)

// RequestMethod represents the HTTP method for the request.
type RequestMethod string

const (
	GET    RequestMethod = "GET"
	POST   RequestMethod = "POST"
	PATCH  RequestMethod = "PATCH"
	PUT    RequestMethod = "PUT"
	DELETE RequestMethod = "DELETE"
)

// Request is a fluent builder around a single call on a Client.
type Request struct {
	requestClient      *Client
	requestContext     context.Context
	requestMethod      RequestMethod
	requestPath        string
	requestQueryParams map[string]string
	requestHeaders     map[string]string
	requestBody        any
	requestSuccessResp any
	requestErrorResp   any
}

// NewHttpClientRequest creates a GET request on "/" for client.
func NewHttpClientRequest(client *Client) *Request {
	return &Request{
		requestClient:  client,
		requestContext: context.Background(),
		requestMethod:  GET,
		requestPath:    "/",
	}
}

// WithContext sets the context that bounds the request.
func (r *Request) WithContext(ctx context.Context) *Request {
	r.requestContext = ctx
	return r
}

func (r *Request) WithMethod(method RequestMethod) *Request {
	r.requestMethod = method
	return r
}

func (r *Request) WithPath(path string) *Request {
	r.requestPath = path
	return r
}

func (r *Request) WithQueryParams(params map[string]string) *Request {
	r.requestQueryParams = params
	return r
}

func (r *Request) WithHeaders(headers map[string]string) *Request {
	r.requestHeaders = headers
	return r
}

func (r *Request) WithBody(body any) *Request {
	r.requestBody = body
	return r
}

// WithSuccessResp sets the value a 2xx body is decoded into.
func (r *Request) WithSuccessResp(successResp any) *Request {
	r.requestSuccessResp = successResp
	return r
}

// WithErrorResp sets the value a non-2xx body is decoded into.
func (r *Request) WithErrorResp(errorResp any) *Request {
	r.requestErrorResp = errorResp
	return r
}

// Execute sends the request and returns the success response, error response, status code, and error if any.
func (r *Request) Execute() (any, any, int, error) {
	if r.requestClient == nil {
		return nil, nil, 0, fmt.Errorf("client is required")
	}
	if r.requestMethod == "" {
		return nil, nil, 0, fmt.Errorf("method is required")
	}
	if r.requestPath == "" {
		return nil, nil, 0, fmt.Errorf("path is required")
	}

	return r.requestClient.doRequest(
		r.requestContext,
		string(r.requestMethod),
		r.requestPath,
		r.requestQueryParams,
		r.requestHeaders,
		r.requestBody,
		r.requestSuccessResp,
		r.requestErrorResp,
	)
}
