package app

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// DefaultProfileCacheTTL is profile summary cache lifetime used when none is configured.
const DefaultProfileCacheTTL = 5 * time.Minute

// GithubClient returns github data for given bearer token.
//go:generate mockgen -destination mock/github.go -package mock github.com/m-zajac/ghinsights/internal/app GithubClient,ProfileCache
type GithubClient interface {
	ProfileDocument(ctx context.Context, token string, login string) (*ProfileDocument, error)
	RepositoryTimeline(ctx context.Context, token string, owner string, name string, windows []MonthWindow) ([]TimelinePoint, error)
	UserRepositories(ctx context.Context, token string, username string) ([]RepositoryRef, error)
	CommitDates(ctx context.Context, token string, owner string, name string, since time.Time) ([]time.Time, error)
	RepositoryDetails(ctx context.Context, token string, owner string, name string) (json.RawMessage, error)
}

// ProfileCache stores profile summaries by login.
type ProfileCache interface {
	// Get returns cached summary if present and not expired.
	Get(login string) (*ProfileSummary, bool)
	// Set overwrites cached summary, it expires after ttl.
	Set(login string, summary *ProfileSummary, ttl time.Duration)
}

// ServiceConfig holds Service tunables. Zero values are replaced with defaults.
type ServiceConfig struct {
	// Timeout limits execution of a single service call.
	Timeout time.Duration
	// ProfileCacheTTL is lifetime of cached profile summaries.
	ProfileCacheTTL time.Duration
	// CommitTrendConcurrency limits concurrent per repository requests.
	CommitTrendConcurrency int
	// Now returns current time.
	Now func() time.Time
}

// Service is main apps entry point. Provides all app functionality.
type Service struct {
	githubClient GithubClient
	cache        ProfileCache
	timeout      time.Duration
	cacheTTL     time.Duration
	concurrency  int
	now          func() time.Time
	validate     *validator.Validate
	l            logrus.FieldLogger
}

var githubNameRegexp = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// NewService creates new Service instance.
func NewService(githubClient GithubClient, cache ProfileCache, conf ServiceConfig, l logrus.FieldLogger) *Service {
	if conf.Timeout <= 0 {
		conf.Timeout = 30 * time.Second
	}
	if conf.ProfileCacheTTL <= 0 {
		conf.ProfileCacheTTL = DefaultProfileCacheTTL
	}
	if conf.CommitTrendConcurrency <= 0 {
		conf.CommitTrendConcurrency = 8
	}
	if conf.Now == nil {
		conf.Now = time.Now
	}

	v := validator.New()
	_ = v.RegisterValidation("ghname", func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		// "." and ".." would resolve to other api paths.
		return githubNameRegexp.MatchString(v) && strings.Trim(v, ".") != ""
	})

	return &Service{
		githubClient: githubClient,
		cache:        cache,
		timeout:      conf.Timeout,
		cacheTTL:     conf.ProfileCacheTTL,
		concurrency:  conf.CommitTrendConcurrency,
		now:          conf.Now,
		validate:     v,
		l:            l,
	}
}

type userRequest struct {
	Username string `validate:"required,max=39,ghname"`
}

type repositoryRequest struct {
	Owner string `validate:"required,max=39,ghname"`
	Name  string `validate:"required,max=100,ghname"`
}

// ProfileSummary returns aggregated dashboard data of given user.
// Results are cached by username.
func (s *Service) ProfileSummary(ctx context.Context, token string, username string) (*ProfileSummary, error) {
	if err := s.checkCredentials(token, username); err != nil {
		return nil, err
	}
	if err := s.validateRequest(userRequest{Username: username}); err != nil {
		return nil, err
	}

	if summary, ok := s.cache.Get(username); ok {
		s.l.Debugf("profile cache hit for %s", username)
		return summary, nil
	}
	s.l.Debugf("profile cache miss for %s", username)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	doc, err := s.githubClient.ProfileDocument(ctx, token, username)
	if err != nil {
		return nil, fmt.Errorf("retrieving profile document: %w", err)
	}

	summary := BuildProfileSummary(doc)
	s.cache.Set(username, summary, s.cacheTTL)

	return summary, nil
}

// CommitTrend returns per day commit counts from last 7 days across all user's repositories.
func (s *Service) CommitTrend(ctx context.Context, token string, username string) (*CommitTrend, error) {
	if err := s.checkCredentials(token, username); err != nil {
		return nil, err
	}
	if err := s.validateRequest(userRequest{Username: username}); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	repos, err := s.githubClient.UserRepositories(ctx, token, username)
	if err != nil {
		return nil, fmt.Errorf("retrieving repositories: %w", err)
	}

	return s.commitTrend(ctx, token, repos), nil
}

// RepositoryTimeline returns commit and pull request counts for last 6 calendar months.
func (s *Service) RepositoryTimeline(ctx context.Context, token string, owner string, name string) ([]TimelinePoint, error) {
	if token == "" {
		return nil, UnauthenticatedError("missing token")
	}
	if err := s.validateRequest(repositoryRequest{Owner: owner, Name: name}); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	windows := MonthWindows(s.now(), TimelineMonths)
	points, err := s.githubClient.RepositoryTimeline(ctx, token, owner, name, windows)
	if err != nil {
		return nil, fmt.Errorf("retrieving %s/%s timeline: %w", owner, name, err)
	}
	if len(points) != len(windows) {
		return nil, fmt.Errorf("retrieving %s/%s timeline: got %d points, want %d", owner, name, len(points), len(windows))
	}

	return points, nil
}

// RepositoryDetails returns github repository object as is.
func (s *Service) RepositoryDetails(ctx context.Context, token string, owner string, name string) (json.RawMessage, error) {
	if token == "" {
		return nil, UnauthenticatedError("missing token")
	}
	if err := s.validateRequest(repositoryRequest{Owner: owner, Name: name}); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	details, err := s.githubClient.RepositoryDetails(ctx, token, owner, name)
	if err != nil {
		return nil, fmt.Errorf("retrieving %s/%s details: %w", owner, name, err)
	}

	return details, nil
}

func (s *Service) checkCredentials(token string, username string) error {
	if token == "" {
		return UnauthenticatedError("missing token")
	}
	if username == "" {
		return UnauthenticatedError("missing username")
	}
	return nil
}

func (s *Service) validateRequest(req interface{}) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return InvalidRequestError(err.Error())
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("invalid %s", strings.ToLower(fe.Field())))
	}
	return InvalidRequestError(strings.Join(msgs, ", "))
}
