package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/pprof"
	"os"

	"github.com/minio/highwayhash"
	"github.com/sirupsen/logrus"

	"github.com/addrkit/addrkit/cmd/web/config"
	"github.com/addrkit/addrkit/validator"
)

// addressHasher obscures e-mail addresses before they hit the logs.
type addressHasher func(value string) string

func sliceToHTTPHeaders(slice []config.Header) http.Header {
	headers := http.Header{}
	for _, h := range slice {
		headers.Add(h.Name, h.Value)
	}

	return headers
}

func newLogger(conf config.Config) (*logrus.Logger, error) {
	var err error
	logger := logrus.New()

	if conf.Server.Log.Format == config.LFText {
		logger.Formatter = &logrus.TextFormatter{}
	} else {
		logger.Formatter = &logrus.JSONFormatter{}
	}

	logger.Out = os.Stdout
	logger.Level, err = logrus.ParseLevel(conf.Server.Log.Level)

	return logger, err
}

// newAddressHasher builds a keyed hasher for log privacy. Without a key the
// address is logged as-is.
func newAddressHasher(key string) (addressHasher, error) {
	if key == "" {
		return func(value string) string {
			return value
		}, nil
	}

	decoded, err := base64.StdEncoding.DecodeString(key)
	if err != nil {
		return nil, fmt.Errorf("unable to decode the hash key, expecting base64: %w", err)
	}

	if len(decoded) != highwayhash.Size {
		return nil, fmt.Errorf("hash key must decode to %d bytes, got %d", highwayhash.Size, len(decoded))
	}

	return func(value string) string {
		sum := highwayhash.Sum128([]byte(value), decoded)
		return hex.EncodeToString(sum[:])
	}, nil
}

func configureProfiler(mux *http.ServeMux, conf config.Config) {
	var prefix string
	if conf.Server.Profiler.Prefix != "" {
		prefix = conf.Server.Profiler.Prefix
	} else {
		prefix = "debug"
	}

	mux.HandleFunc(`/`+prefix+`/pprof/`, pprof.Index)
	mux.HandleFunc(`/`+prefix+`/pprof/cmdline`, pprof.Cmdline)
	mux.HandleFunc(`/`+prefix+`/pprof/profile`, pprof.Profile)
	mux.HandleFunc(`/`+prefix+`/pprof/symbol`, pprof.Symbol)
	mux.HandleFunc(`/`+prefix+`/pprof/trace`, pprof.Trace)
}

// newResolver returns a resolver pinned to the configured DNS server, or the
// system default when none is configured.
func newResolver(host string) (validator.NetResolver, error) {
	if host == "" {
		return validator.NewNetResolver(nil), nil
	}

	ip := net.ParseIP(host)
	if ip == nil {
		return validator.NetResolver{}, fmt.Errorf("resolver %q is not a valid IP address", host)
	}

	return validator.NewCustomNetResolver(ip), nil
}

func deferClose(toClose io.Closer, log logrus.FieldLogger) {
	if toClose == nil {
		return
	}

	err := toClose.Close()
	if err != nil {
		if log == nil {
			fmt.Printf("error failed to close handle %s", err)
			return
		}

		log.WithError(err).Error("Failed to close handle")
	}
}
