package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/m-zajac/ghinsights/internal/api/http/mock"
	"github.com/m-zajac/ghinsights/internal/app"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMux(t *testing.T) {
	t.Parallel()

	serviceDelay := 5 * time.Millisecond
	waitForService := func(ctx context.Context) error {
		select {
		case <-time.After(serviceDelay):
			return nil
		case <-ctx.Done():
			return &app.TransportError{Err: ctx.Err()}
		}
	}

	tests := []struct {
		name           string
		path           string
		muxTimeout     time.Duration
		setupMock      func(*mock.MockService)
		wantStatusCode int
	}{
		{
			name:       "profile request",
			path:       "/profile/octo",
			muxTimeout: time.Second,
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					ProfileSummary(gomock.Any(), "tok", "octo").
					Return(app.BuildProfileSummary(&app.ProfileDocument{}), nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:       "commits request",
			path:       "/commits/octo",
			muxTimeout: time.Second,
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					CommitTrend(gomock.Any(), "tok", "octo").
					Return(&app.CommitTrend{}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:       "repository request",
			path:       "/repos/octo/api",
			muxTimeout: time.Second,
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					RepositoryDetails(gomock.Any(), "tok", "octo", "api").
					Return([]byte(`{}`), nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:       "timeline request",
			path:       "/repos/octo/api/timeline",
			muxTimeout: time.Second,
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					RepositoryTimeline(gomock.Any(), "tok", "octo", "api").
					Return(nil, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:       "service exceeding handler timeout",
			path:       "/profile/octo",
			muxTimeout: time.Microsecond,
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					ProfileSummary(gomock.Any(), "tok", "octo").
					DoAndReturn(func(ctx context.Context, token string, username string) (*app.ProfileSummary, error) {
						if err := waitForService(ctx); err != nil {
							return nil, err
						}
						return &app.ProfileSummary{}, nil
					})
			},
			wantStatusCode: http.StatusGatewayTimeout,
		},
		{
			name:           "invalid path",
			path:           "/invalid_path",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:           "missing repository segment",
			path:           "/repos/octo",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mock.NewMockService(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(service)
			}

			l := logrus.New()
			mux := NewMux(service, tt.muxTimeout, l)

			server := httptest.NewServer(mux)
			defer server.Close()

			req, err := http.NewRequest(http.MethodGet, server.URL+tt.path, nil)
			require.NoError(t, err)
			req.Header.Set("Authorization", "Bearer tok")

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatusCode, resp.StatusCode)
			assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))
		})
	}
}
