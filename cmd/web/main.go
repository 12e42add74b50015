package main

import (
	"context"
	"net/http"
	"os"
	"syscall"
	"time"

	gqlhandler "github.com/graphql-go/handler"
	"github.com/juju/ratelimit"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/addrkit/addrkit/cmd/web/akhttp"
	"github.com/addrkit/addrkit/cmd/web/akhttp/handlers"
	"github.com/addrkit/addrkit/cmd/web/config"
	"github.com/addrkit/addrkit/cmd/web/services"
	"github.com/addrkit/addrkit/disposable"
	"github.com/addrkit/addrkit/mxcache"
	"github.com/addrkit/addrkit/runtimer"
	"github.com/addrkit/addrkit/validator"
)

// Version contains the app version, the value is changed during compile time to the appropriate Git tag
var Version = "dev"

func main() {
	var conf config.Config
	var err error

	configPath := "config.toml"
	if v, ok := os.LookupEnv("ADDRKIT_CONFIG"); ok {
		configPath = v
	}

	conf, err = config.NewConfig(configPath)
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(conf)
	if err != nil {
		panic(err)
	}

	logger.WithFields(logrus.Fields{
		"version": Version,
	}).Info("Starting up...")

	hash, err := newAddressHasher(conf.Server.Hash.Key)
	if err != nil {
		logger.WithError(err).Fatal("Unable to construct the address hasher")
	}

	resolver, err := newResolver(conf.Validator.Resolver)
	if err != nil {
		logger.WithError(err).Fatal("Unable to construct the resolver")
	}

	cacheOptions := make([]mxcache.Option, 0, 4)
	if !conf.Cache.Enabled {
		cacheOptions = append(cacheOptions, mxcache.Disabled())
	}

	if ttl := conf.Cache.TTL.AsDuration(); ttl > 0 {
		cacheOptions = append(cacheOptions, mxcache.WithTTL(ttl))
	}

	if conf.Cache.MaxSize > 0 {
		cacheOptions = append(cacheOptions, mxcache.WithMaxSize(conf.Cache.MaxSize))
	}

	if !conf.Cache.CleanupEnabled {
		cacheOptions = append(cacheOptions, mxcache.WithoutCleanup())
	} else if conf.Cache.CleanupProbability > 0 {
		cacheOptions = append(cacheOptions, mxcache.WithCleanupProbability(conf.Cache.CleanupProbability))
	}

	cache := mxcache.New(cacheOptions...)

	validatorOptions := []validator.Option{
		validator.WithResolver(resolver),
		validator.WithCache(cache),
	}

	if conf.Validator.Timeout != "" {
		validatorOptions = append(validatorOptions, validator.WithTimeoutString(conf.Validator.Timeout))
	}

	if conf.Validator.CheckDisposable {
		validatorOptions = append(validatorOptions, validator.WithDisposableSet(
			disposable.New(conf.Validator.ExtraDisposable...),
		))
	}

	emailValidator, err := validator.New(validatorOptions...)
	if err != nil {
		logger.WithError(err).Fatal("Unable to construct the validator")
	}

	checkSvc := services.NewCheckService(emailValidator, logger)
	cacheSvc := services.NewCacheService(cache, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/", NewHealthHandler(logger))
	mux.HandleFunc("/health", NewHealthHandler(logger))
	mux.HandleFunc("/check", NewCheckHandler(logger, &checkSvc, hash, conf.Client.InputLengthMax))
	mux.HandleFunc("/cache/stats", NewCacheStatsHandler(logger, &cacheSvc))
	mux.HandleFunc("/cache/flush", NewCacheFlushHandler(logger, &cacheSvc))
	mux.HandleFunc("/cache/delete", NewCacheDeleteHandler(logger, &cacheSvc, conf.Client.InputLengthMax))

	schema, err := NewGraphQLSchema(&checkSvc, &cacheSvc)
	if err != nil {
		logger.WithError(err).Fatal("Unable to build the GraphQL schema")
	}

	mux.Handle("/graphql", gqlhandler.New(&gqlhandler.Config{
		Schema:   &schema,
		Pretty:   conf.Server.GraphQL.PrettyOutput,
		GraphiQL: conf.Server.GraphQL.GraphiQL,
	}))

	if conf.Server.Profiler.Enable {
		configureProfiler(mux, conf)
	}

	wrappers := []func(h http.Handler) http.Handler{
		handlers.WithGzipHandler(),
		handlers.WithHeaders(sliceToHTTPHeaders(conf.Server.Headers)),
		handlers.WithRequestLogger(logger),
	}

	if conf.Server.PathStrip != "" {
		wrappers = append(wrappers, handlers.WithPathStrip(logger, conf.Server.PathStrip))
	}

	if rl := conf.Server.RateLimiter; rl.Rate > 0 && rl.Capacity > 0 {
		bucket := ratelimit.NewBucketWithRate(float64(rl.Rate), rl.Capacity)
		wrappers = append(wrappers, handlers.NewRateLimitHandler(logger, bucket, rl.MaxDelay.AsDuration()))
	}

	if len(conf.Server.CORS.AllowedOrigins) > 0 {
		c := cors.New(cors.Options{
			AllowedOrigins: conf.Server.CORS.AllowedOrigins,
			AllowedHeaders: conf.Server.CORS.AllowedHeaders,
			AllowedMethods: []string{http.MethodGet, http.MethodPost},
		})
		wrappers = append(wrappers, c.Handler)
	}

	lw := logger.WriterLevel(logger.Level)
	defer deferClose(lw, nil)

	server := akhttp.BuildHTTPServer(mux, conf, logger, lw, wrappers...)

	rt := runtimer.New(10*time.Second, os.Interrupt, syscall.SIGTERM)
	rt.RegisterCallback(func(ctx context.Context, s os.Signal) {
		logger.WithField("signal", s).Info("Shutting down")

		if err := server.Shutdown(ctx); err != nil {
			logger.WithError(err).Error("Shutdown failed")
		}
	})

	logger.WithFields(logrus.Fields{
		"listen_on": conf.Server.ListenOn,
	}).Info("Done, serving requests")

	go func() {
		err := server.Serve()
		if err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Error("HTTP server stopped")
		}
	}()

	rt.Wait()
}
