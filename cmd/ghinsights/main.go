package main

import (
	"context"
	netHttp "net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/m-zajac/ghinsights/internal/adapter/github"
	"github.com/m-zajac/ghinsights/internal/api/grpc"
	"github.com/m-zajac/ghinsights/internal/api/http"
	"github.com/m-zajac/ghinsights/internal/app"
	"github.com/m-zajac/ghinsights/internal/cache"
	"github.com/m-zajac/ghinsights/internal/database"
	"github.com/m-zajac/ghinsights/internal/limiter"
	"github.com/sirupsen/logrus"
)

func main() {
	l := logrus.New()
	l.Level = logrus.InfoLevel

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		l.Warnf("couldn't load .env file: %v", err)
	}

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		l.Fatalf("couldn't parse config: %v", err)
	}
	level, err := logrus.ParseLevel(conf.LogLevel)
	if err != nil {
		l.Fatalf("invalid log level: %v", err)
	}
	l.Level = level

	lim := limiter.New(conf.GithubMaxRate, 1)
	httpClient := &netHttp.Client{
		Timeout:   conf.GithubTimeout,
		Transport: lim.Transport(nil),
	}

	githubClient, err := github.NewClient(
		lim.Doer(&netHttp.Client{Timeout: conf.GithubTimeout}),
		conf.GithubGraphQLURL,
		httpClient,
		conf.GithubRESTURL,
	)
	if err != nil {
		l.Fatalf("couldn't create github client: %v", err)
	}

	profileCache, closeCache := newProfileCache(conf, l)
	defer closeCache()

	service := app.NewService(
		githubClient,
		profileCache,
		app.ServiceConfig{
			Timeout:                conf.ServiceResponseTimeout,
			ProfileCacheTTL:        conf.ProfileCacheTTL,
			CommitTrendConcurrency: conf.CommitTrendConcurrency,
		},
		l.WithField("component", "service"),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mux := http.NewMux(service, conf.HTTPHandlerTimeout, l)
	server := http.NewServer(
		conf.HTTPServerAddress,
		conf.HTTPProfileServerAddress,
		mux,
		l,
	)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.Run(ctx); err != nil {
			l.Errorf("http server failed: %v", err)
			stop()
		}
	}()

	if conf.GRPCServerAddress != "" {
		grpcServer := grpc.NewServer(
			grpc.NewService(service),
			conf.GRPCServerAddress,
			l,
		)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := grpcServer.Run(ctx); err != nil {
				l.Errorf("grpc server failed: %v", err)
				stop()
			}
		}()
	}

	wg.Wait()
}

// newProfileCache builds in-memory profile cache, backed by bolt db when DBPath is configured.
func newProfileCache(conf Config, l logrus.FieldLogger) (app.ProfileCache, func()) {
	memory, err := cache.NewMemory(conf.ProfileCacheSize, time.Now)
	if err != nil {
		l.Fatalf("couldn't create profile cache: %v", err)
	}
	if conf.DBPath == "" {
		return memory, func() {}
	}

	kvStore, err := database.NewBoltKVStore(conf.DBPath, conf.DBBucketName)
	if err != nil {
		l.Fatalf("couldn't create bolt kv store: %v", err)
	}

	store := cache.NewStore(kvStore, time.Now, l)
	if n, err := store.Purge(); err != nil {
		l.Warnf("couldn't purge expired profiles: %v", err)
	} else if n > 0 {
		l.Infof("purged %d expired profiles", n)
	}

	return cache.NewTiered(memory, store, time.Now), func() {
		if err := kvStore.Close(); err != nil {
			l.Errorf("closing bolt kv store: %v", err)
		}
	}
}
