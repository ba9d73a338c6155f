package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-zajac/ghinsights/internal/app"
	"github.com/sirupsen/logrus"
)

// Service provides github insights.
//go:generate mockgen -destination mock/service.go -package mock github.com/m-zajac/ghinsights/internal/api/http Service
type Service interface {
	ProfileSummary(ctx context.Context, token string, username string) (*app.ProfileSummary, error)
	CommitTrend(ctx context.Context, token string, username string) (*app.CommitTrend, error)
	RepositoryTimeline(ctx context.Context, token string, owner string, name string) ([]app.TimelinePoint, error)
	RepositoryDetails(ctx context.Context, token string, owner string, name string) (json.RawMessage, error)
}

// NewMux creates router for app's http server.
func NewMux(service Service, timeout time.Duration, l logrus.FieldLogger) http.Handler {
	l = l.WithField("component", "httpMux")

	username := func(r *http.Request) string { return chi.URLParam(r, "username") }
	owner := func(r *http.Request) string { return chi.URLParam(r, "owner") }
	repo := func(r *http.Request) string { return chi.URLParam(r, "repo") }

	m := chi.NewRouter()
	m.Use(NewRequestLogMiddleware(l))
	m.Use(NewTimeoutMiddleware(timeout))

	m.Get("/profile/{username}", NewProfileHandler(username, service, l))
	m.Get("/commits/{username}", NewCommitTrendHandler(username, service, l))
	m.Get("/repos/{owner}/{repo}", NewRepositoryDetailsHandler(owner, repo, service, l))
	m.Get("/repos/{owner}/{repo}/timeline", NewTimelineHandler(owner, repo, service, l))

	return m
}
