package main

import "time"

// Config is the container for app configuration
type Config struct {
	// HTTPServerAddress - listen address for http server
	HTTPServerAddress string `envconfig:"HTTP_SERVER_ADDRESS" default:"0.0.0.0:8080"`

	// HTTPProfileServerAddress - listen address for profiler http server. If empty, profiler server is disabled
	HTTPProfileServerAddress string `envconfig:"HTTP_PROFILE_SERVER_ADDRESS" default:""`

	// GRPCServerAddress - listen address for grpc server. If empty, grpc server is disabled
	GRPCServerAddress string `envconfig:"GRPC_SERVER_ADDRESS" default:"0.0.0.0:9090"`

	// ServiceResponseTimeout - timeout for a single service call
	ServiceResponseTimeout time.Duration `envconfig:"SERVICE_RESPONSE_TIMEOUT" default:"30s"`

	// HTTPHandlerTimeout - timeout for http handlers, exceeding it results in 504
	HTTPHandlerTimeout time.Duration `envconfig:"HTTP_HANDLER_TIMEOUT" default:"60s"`

	// GithubGraphQLURL - github graphql endpoint. If empty, api.github.com is used
	GithubGraphQLURL string `envconfig:"GITHUB_GRAPHQL_URL" default:""`

	// GithubRESTURL - github rest api base address. If empty, api.github.com is used
	GithubRESTURL string `envconfig:"GITHUB_REST_URL" default:""`

	// GithubTimeout - timeout for a single github http call
	GithubTimeout time.Duration `envconfig:"GITHUB_TIMEOUT" default:"10s"`

	// GithubMaxRate - max frequency of github api calls per second
	GithubMaxRate float64 `envconfig:"GITHUB_MAX_RATE" default:"10"`

	// ProfileCacheTTL - lifetime of cached profile summaries
	ProfileCacheTTL time.Duration `envconfig:"PROFILE_CACHE_TTL" default:"5m"`

	// ProfileCacheSize - maximum number of profiles kept in memory
	ProfileCacheSize int `envconfig:"PROFILE_CACHE_SIZE" default:"1000"`

	// CommitTrendConcurrency - maximum number of concurrent per repository commit requests
	CommitTrendConcurrency int `envconfig:"COMMIT_TREND_CONCURRENCY" default:"8"`

	// DBPath - filepath for bolt db profile cache. If empty, profiles are cached in memory only
	DBPath string `envconfig:"DB_PATH" default:""`

	// DBBucketName - bolt db bucket name
	DBBucketName string `envconfig:"DB_BUCKET_NAME" default:"profiles"`

	// LogLevel - logrus level name
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}
