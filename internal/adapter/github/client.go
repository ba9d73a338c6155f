package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	gogithub "github.com/google/go-github/v68/github"
	"github.com/m-zajac/ghinsights/internal/app"
	"golang.org/x/oauth2"
)

const (
	// DefaultGraphQLAddress is github's GraphQL endpoint.
	DefaultGraphQLAddress = "https://api.github.com/graphql"
	// DefaultRESTAddress is github's REST API root.
	DefaultRESTAddress = "https://api.github.com/"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client reads github data on behalf of the token owner.
// This struct is an adapter for app.GithubClient.
type Client struct {
	doer           HTTPDoer
	graphqlAddress string
	rest           *gogithub.Client

	responseMaxSize int
}

var _ app.GithubClient = &Client{}

// NewClient creates new github client.
// GraphQL queries are executed with doer, REST calls with restClient.
// Empty addresses mean github.com endpoints.
func NewClient(doer HTTPDoer, graphqlAddress string, restClient *http.Client, restAddress string) (*Client, error) {
	if graphqlAddress == "" {
		graphqlAddress = DefaultGraphQLAddress
	}
	if restAddress == "" {
		restAddress = DefaultRESTAddress
	}
	if !strings.HasSuffix(restAddress, "/") {
		restAddress += "/"
	}
	u, err := url.Parse(restAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid rest address: %w", err)
	}

	rest := gogithub.NewClient(restClient)
	rest.BaseURL = u

	return &Client{
		doer:            doer,
		graphqlAddress:  graphqlAddress,
		rest:            rest,
		responseMaxSize: 1024 * 1024 * 10,
	}, nil
}

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphqlResponse struct {
	Data   json.RawMessage        `json:"data"`
	Errors []app.GraphQLErrorItem `json:"errors"`
}

// graphql executes query and decodes response's data into out.
func (c *Client) graphql(ctx context.Context, token string, query string, variables map[string]interface{}, out interface{}) error {
	payload, err := json.Marshal(graphqlRequest{
		Query:     query,
		Variables: variables,
	})
	if err != nil {
		return fmt.Errorf("marshalling graphql request: %w", err)
	}

	httpReq, err := http.NewRequest(http.MethodPost, c.graphqlAddress, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	(&oauth2.Token{AccessToken: token}).SetAuthHeader(httpReq)

	body, err := c.makeRequest(ctx, httpReq, c.responseMaxSize)
	if err != nil {
		return err
	}

	var resp graphqlResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("unmarshalling graphql response: %w", err)
	}
	if len(resp.Errors) > 0 {
		return &app.GraphQLError{Errors: resp.Errors}
	}
	if len(resp.Data) == 0 || string(resp.Data) == "null" {
		return errors.New("graphql response without data")
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		return fmt.Errorf("unmarshalling graphql data: %w", err)
	}

	return nil
}

func (c *Client) makeRequest(ctx context.Context, req *http.Request, maxBytes int) ([]byte, error) {
	req.Header.Set("Accept", "application/json")

	resp, err := c.doer.Do(req.WithContext(ctx))
	if err != nil {
		if app.IsTooManyRequestsError(err) {
			return nil, err
		}
		return nil, &app.TransportError{Err: err}
	}
	// Always drain body before close to allow connection reuse.
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, int64(maxBytes)+1))
	if err != nil {
		return nil, &app.TransportError{Err: fmt.Errorf("reading http response body: %w", err)}
	}

	if resp.StatusCode/100 != 2 {
		return nil, &app.UpstreamAPIError{
			StatusCode: resp.StatusCode,
			Message:    upstreamMessage(resp, b),
		}
	}
	if len(b) > maxBytes {
		return nil, fmt.Errorf("response body exceeds %d bytes", maxBytes)
	}

	return b, nil
}

func upstreamMessage(resp *http.Response, body []byte) string {
	if rateLimitExceeded(resp.Header) {
		return "rate limit exceeded"
	}

	var apiErr struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		return apiErr.Message
	}

	return http.StatusText(resp.StatusCode)
}

func rateLimitExceeded(h http.Header) bool {
	if s := h.Get("X-RateLimit-Remaining"); s != "" {
		if limit, err := strconv.Atoi(s); err == nil && limit == 0 {
			return true
		}
	}
	return false
}
