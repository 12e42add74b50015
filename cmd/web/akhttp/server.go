package akhttp

import (
	"context"
	"io"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/addrkit/addrkit/cmd/web/config"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/netutil"
)

func BuildHTTPServer(mux http.Handler, conf config.Config, logger logrus.FieldLogger, logWriter io.Writer, handlers ...func(h http.Handler) http.Handler) *Server {
	for _, h := range handlers {
		mux = h(mux)
	}

	wTTL := 10 * time.Second
	if conf.Server.Profiler.Enable {
		wTTL = 31 * time.Second
	}

	server := &http.Server{
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       wTTL,
		WriteTimeout:      wTTL, // Is overridden, when the profiler is enabled.
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 19, // 512 kb
		Handler:           mux,
		Addr:              conf.Server.ListenOn,
		ErrorLog:          log.New(logWriter, "", 0),
	}

	listener, err := net.Listen("tcp", conf.Server.ListenOn)
	if err != nil {
		logger.WithFields(logrus.Fields{
			"error":     err,
			"listen_on": conf.Server.ListenOn,
		}).Error("Unable to start listener")
	}

	if conf.Server.ConnectionLimit > 0 {
		listener = netutil.LimitListener(listener, int(conf.Server.ConnectionLimit))
	}

	return &Server{
		server:   server,
		listener: listener,
	}
}

type Server struct {
	server   *http.Server
	listener net.Listener
}

func (s *Server) Serve() error {
	return s.server.Serve(s.listener)
}

// Shutdown drains in-flight requests until the context expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
