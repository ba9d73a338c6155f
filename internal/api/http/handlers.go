package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/ghinsights/internal/api/view"
	"github.com/m-zajac/ghinsights/internal/app"
	"github.com/sirupsen/logrus"
)

// NewProfileHandler creates handlerfunc returning dashboard summary of user.
func NewProfileHandler(
	getUsername func(*http.Request) string,
	service Service,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.ProfileSummary(r.Context(), bearerToken(r), getUsername(r))
		if err != nil {
			writeError(w, r, err, l)
			return
		}

		writeJSON(w, http.StatusOK, view.NewProfile(summary))
	}
}

// NewCommitTrendHandler creates handlerfunc returning user's commits from last 7 days.
func NewCommitTrendHandler(
	getUsername func(*http.Request) string,
	service Service,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		trend, err := service.CommitTrend(r.Context(), bearerToken(r), getUsername(r))
		if err != nil {
			writeError(w, r, err, l)
			return
		}

		writeJSON(w, http.StatusOK, view.NewCommitTrend(trend))
	}
}

// NewTimelineHandler creates handlerfunc returning repository's monthly activity.
func NewTimelineHandler(
	getOwner func(*http.Request) string,
	getRepo func(*http.Request) string,
	service Service,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		points, err := service.RepositoryTimeline(r.Context(), bearerToken(r), getOwner(r), getRepo(r))
		if err != nil {
			writeError(w, r, err, l)
			return
		}

		writeJSON(w, http.StatusOK, view.NewTimeline(points))
	}
}

// NewRepositoryDetailsHandler creates handlerfunc returning github's repository object.
func NewRepositoryDetailsHandler(
	getOwner func(*http.Request) string,
	getRepo func(*http.Request) string,
	service Service,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		details, err := service.RepositoryDetails(r.Context(), bearerToken(r), getOwner(r), getRepo(r))
		if err != nil {
			writeError(w, r, err, l)
			return
		}

		w.Header().Set("Content-type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(details)
	}
}

// bearerToken returns token from "Authorization: Bearer <token>" header, or empty string.
func bearerToken(r *http.Request) string {
	const prefix = "Bearer "

	h := r.Header.Get("Authorization")
	if len(h) < len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(h[len(prefix):])
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = jsoniter.ConfigFastest.NewEncoder(w).Encode(v)
}

// writeError maps app errors to http statuses.
func writeError(w http.ResponseWriter, r *http.Request, err error, l logrus.FieldLogger) {
	l = l.WithField("path", r.URL.Path)

	switch {
	case app.IsUnauthenticatedError(err):
		writeJSON(w, http.StatusUnauthorized, view.Error{Message: err.Error()})
		return
	case app.IsInvalidRequestError(err):
		writeJSON(w, http.StatusBadRequest, view.Error{Message: err.Error()})
		return
	case app.IsTooManyRequestsError(err):
		l.Warnf("request throttled: %v", err)
		writeJSON(w, http.StatusTooManyRequests, view.Error{Message: "too many requests"})
		return
	}

	if gqlErr, ok := app.AsGraphQLError(err); ok {
		l.Errorf("github graphql error: %v", err)
		details, _ := json.Marshal(gqlErr.Errors)
		writeJSON(w, http.StatusInternalServerError, view.Error{
			Message: "GitHub GraphQL error",
			Details: details,
		})
		return
	}
	if apiErr, ok := app.AsUpstreamAPIError(err); ok {
		l.Warnf("github api error: %v", err)
		writeJSON(w, apiErr.StatusCode, view.Error{Message: apiErr.Message})
		return
	}
	var transportErr *app.TransportError
	if errors.As(err, &transportErr) {
		l.Errorf("github unreachable: %v", err)
		status := http.StatusBadGateway
		if transportErr.Timeout() {
			status = http.StatusGatewayTimeout
		}
		writeJSON(w, status, view.Error{Message: "github unreachable"})
		return
	}

	l.Errorf("request failed: %v", err)
	writeJSON(w, http.StatusInternalServerError, view.Error{Message: "internal error"})
}
