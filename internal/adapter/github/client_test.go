package github

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/m-zajac/ghinsights/internal/app"
	"github.com/m-zajac/ghinsights/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, doer HTTPDoer) *Client {
	t.Helper()

	c, err := NewClient(doer, "https://fake/graphql", nil, "")
	require.NoError(t, err)
	return c
}

func TestClient_graphql(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		doer      *mock.HTTPDoer
		maxSize   int
		wantLogin string
		checkErr  func(*testing.T, error)
	}{
		{
			name: "status ok, data ok",
			doer: &mock.HTTPDoer{
				Bodies: [][]byte{[]byte(`{"data":{"viewer":{"login":"octo"}}}`)},
			},
			wantLogin: "octo",
		},
		{
			name: "errors with status ok",
			doer: &mock.HTTPDoer{
				Bodies: [][]byte{[]byte(`{
					"data": null,
					"errors": [
						{"type": "NOT_FOUND", "path": ["user"], "message": "Could not resolve to a User"},
						{"message": "second"}
					]
				}`)},
			},
			checkErr: func(t *testing.T, err error) {
				gqlErr, ok := app.AsGraphQLError(err)
				require.True(t, ok)
				require.Len(t, gqlErr.Errors, 2)
				assert.Equal(t, "NOT_FOUND", gqlErr.Errors[0].Type)
				assert.Equal(t, []interface{}{"user"}, gqlErr.Errors[0].Path)
			},
		},
		{
			name: "status not ok",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusUnauthorized},
				Bodies:   [][]byte{[]byte(`{"message":"Bad credentials"}`)},
			},
			checkErr: func(t *testing.T, err error) {
				apiErr, ok := app.AsUpstreamAPIError(err)
				require.True(t, ok)
				assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
				assert.Equal(t, "Bad credentials", apiErr.Message)
			},
		},
		{
			name: "server error without body",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusInternalServerError},
			},
			checkErr: func(t *testing.T, err error) {
				apiErr, ok := app.AsUpstreamAPIError(err)
				require.True(t, ok)
				assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
				assert.Equal(t, "Internal Server Error", apiErr.Message)
			},
		},
		{
			name: "rate limit exceeded",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusForbidden},
				Bodies:   [][]byte{[]byte(`{"message":"API rate limit exceeded for user"}`)},
				Headers:  []http.Header{{"X-Ratelimit-Remaining": []string{"0"}}},
			},
			checkErr: func(t *testing.T, err error) {
				apiErr, ok := app.AsUpstreamAPIError(err)
				require.True(t, ok)
				assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
				assert.Equal(t, "rate limit exceeded", apiErr.Message)
			},
		},
		{
			name: "transport error",
			doer: &mock.HTTPDoer{
				DoFunc: func(*http.Request) (*http.Response, error) {
					return nil, errors.New("dial tcp: connection refused")
				},
			},
			checkErr: func(t *testing.T, err error) {
				assert.True(t, app.IsTransportError(err))
			},
		},
		{
			name: "limiter error is not a transport error",
			doer: &mock.HTTPDoer{
				DoFunc: func(*http.Request) (*http.Response, error) {
					return nil, app.TooManyRequestsError("limiter")
				},
			},
			checkErr: func(t *testing.T, err error) {
				assert.True(t, app.IsTooManyRequestsError(err))
				assert.False(t, app.IsTransportError(err))
			},
		},
		{
			name: "status ok, body unexpectedly large",
			doer: &mock.HTTPDoer{
				Bodies: [][]byte{[]byte(`{"data":{"viewer":{"login":"` + strings.Repeat("x", 100) + `"}}}`)},
			},
			maxSize: 64,
			checkErr: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
		{
			name: "invalid json",
			doer: &mock.HTTPDoer{
				Bodies: [][]byte{[]byte(`<html>`)},
			},
			checkErr: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newTestClient(t, tt.doer)
			if tt.maxSize > 0 {
				c.responseMaxSize = tt.maxSize
			}

			var out struct {
				Viewer struct {
					Login string `json:"login"`
				} `json:"viewer"`
			}
			err := c.graphql(context.Background(), "tok", "query { viewer { login } }", nil, &out)
			if tt.checkErr != nil {
				require.Error(t, err)
				tt.checkErr(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantLogin, out.Viewer.Login)
			}

			require.Len(t, tt.doer.Requests, 1)
			checkGraphQLRequest(t, tt.doer.Requests[0])
		})
	}
}

func TestClient_graphqlTimeout(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		DoFunc: func(r *http.Request) (*http.Response, error) {
			<-r.Context().Done()
			return nil, r.Context().Err()
		},
	}
	c := newTestClient(t, doer)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	var out interface{}
	err := c.graphql(ctx, "tok", "query { viewer { login } }", nil, &out)
	require.Error(t, err)

	var transportErr *app.TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.True(t, transportErr.Timeout())
}

func TestClient_ProfileDocument(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Bodies: [][]byte{profileResponseJSON},
	}
	c := newTestClient(t, doer)

	doc, err := c.ProfileDocument(context.Background(), "tok", "octo")
	require.NoError(t, err)
	assert.Equal(t, "octo", doc.User.Login)
	assert.Len(t, doc.Repositories, 2)

	var body graphqlRequest
	require.NoError(t, json.Unmarshal(doer.RequestBodies[0], &body))
	assert.Equal(t, profileQuery, body.Query)
	assert.Equal(t, map[string]interface{}{"login": "octo"}, body.Variables)
}

func TestClient_ProfileDocumentUserNotFound(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Bodies: [][]byte{[]byte(`{"data":{"user":null}}`)},
	}
	c := newTestClient(t, doer)

	_, err := c.ProfileDocument(context.Background(), "tok", "ghost")
	apiErr, ok := app.AsUpstreamAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestClient_RepositoryTimeline(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.June, 15, 8, 0, 0, 0, time.UTC)
	windows := app.MonthWindows(now, app.TimelineMonths)

	tests := []struct {
		name string
		body string
		want []app.TimelinePoint
	}{
		{
			name: "empty repository",
			body: `{"data":{
				"repository":{"defaultBranchRef":null},
				"p0":{"issueCount":0},"p1":{"issueCount":0},"p2":{"issueCount":0},
				"p3":{"issueCount":0},"p4":{"issueCount":0},"p5":{"issueCount":0}
			}}`,
			want: []app.TimelinePoint{
				{Month: "Jan"}, {Month: "Feb"}, {Month: "Mar"},
				{Month: "Apr"}, {Month: "May"}, {Month: "Jun"},
			},
		},
		{
			name: "counts",
			body: `{"data":{
				"repository":{"defaultBranchRef":{"target":{
					"c0":{"totalCount":1},"c1":{"totalCount":0},"c2":{"totalCount":12},
					"c3":{"totalCount":3},"c4":null,"c5":{"totalCount":7}
				}}},
				"p0":{"issueCount":2},"p1":{"issueCount":0},"p2":{"issueCount":5},
				"p3":null,"p5":{"issueCount":1}
			}}`,
			want: []app.TimelinePoint{
				{Month: "Jan", Commits: 1, PRs: 2},
				{Month: "Feb"},
				{Month: "Mar", Commits: 12, PRs: 5},
				{Month: "Apr", Commits: 3},
				{Month: "May"},
				{Month: "Jun", Commits: 7, PRs: 1},
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doer := &mock.HTTPDoer{
				Bodies: [][]byte{[]byte(tt.body)},
			}
			c := newTestClient(t, doer)

			got, err := c.RepositoryTimeline(context.Background(), "tok", "octo", "api", windows)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			var body graphqlRequest
			require.NoError(t, json.Unmarshal(doer.RequestBodies[0], &body))
			assert.Equal(t, "octo", body.Variables["owner"])
			assert.Equal(t, "api", body.Variables["name"])
			assert.Equal(t, "2024-01-01T00:00:00Z", body.Variables["since0"])
			assert.Equal(t, "2024-07-01T00:00:00Z", body.Variables["until5"])
			assert.Equal(t, "repo:octo/api is:pr created:>=2024-06-01 created:<2024-07-01", body.Variables["q5"])
			assert.NotContains(t, body.Query, "octo")
			assert.Contains(t, body.Query, "c5: history(since: $since5, until: $until5)")
			assert.Contains(t, body.Query, "p5: search(query: $q5, type: ISSUE, first: 1)")
		})
	}
}

func TestClient_RepositoryTimelineGraphQLError(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Bodies: [][]byte{[]byte(`{"data":{"repository":null},"errors":[{"type":"NOT_FOUND","message":"Could not resolve to a Repository"}]}`)},
	}
	c := newTestClient(t, doer)

	windows := app.MonthWindows(time.Now(), app.TimelineMonths)
	got, err := c.RepositoryTimeline(context.Background(), "tok", "octo", "nope", windows)
	assert.Nil(t, got)
	_, ok := app.AsGraphQLError(err)
	assert.True(t, ok)
}

func checkGraphQLRequest(t *testing.T, r *http.Request) {
	assert.Equal(t, http.MethodPost, r.Method)
	assert.Equal(t, "https://fake/graphql", r.URL.String())
	assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
	assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
}

func TestNewClientDefaults(t *testing.T) {
	t.Parallel()

	c, err := NewClient(&mock.HTTPDoer{}, "", nil, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultGraphQLAddress, c.graphqlAddress)
	assert.Equal(t, DefaultRESTAddress, c.rest.BaseURL.String())

	c, err = NewClient(&mock.HTTPDoer{}, "http://ghe/graphql", nil, "http://ghe/api/v3")
	require.NoError(t, err)
	assert.Equal(t, "http://ghe/graphql", c.graphqlAddress)
	assert.Equal(t, "http://ghe/api/v3/", c.rest.BaseURL.String())
}
