// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package synd

import (
	"context"
	"io"
	"net"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/go-air/excite/design"
)

// Option configures a Server.
type Option func(s *Server)

// WithLogger sets the logger of the server.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Server) {
		s.log = l
	}
}

// WithMaxClients bounds the number of requests synthesized at once.
func WithMaxClients(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxClients = n
		}
	}
}

// WithOptions sets the default synthesis options.
func WithOptions(o design.Options) Option {
	return func(s *Server) {
		s.opts = o
	}
}

// WithRegistry sets the registry on which metrics are registered and
// served.
func WithRegistry(r *prometheus.Registry) Option {
	return func(s *Server) {
		s.reg = r
	}
}

// Type Server is a synthesis server.
type Server struct {
	maxClients int
	sem        chan struct{}
	log        logrus.FieldLogger
	opts       design.Options
	reg        *prometheus.Registry
	metrics    *metrics
	mux        *http.ServeMux

	mu  sync.Mutex
	srv *http.Server
}

// New creates a new server.
func New(opts ...Option) *Server {
	s := &Server{maxClients: runtime.NumCPU()}
	for _, o := range opts {
		o(s)
	}
	if s.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		s.log = l
	}
	if s.reg == nil {
		s.reg = prometheus.NewRegistry()
	}
	s.sem = make(chan struct{}, s.maxClients)
	s.metrics = newMetrics(s.reg)
	s.mux = http.NewServeMux()
	s.mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	s.mux.Handle("/metrics", promhttp.HandlerFor(s.reg, promhttp.HandlerOpts{}))
	s.mux.Handle("/v1/synthesize", s.instrument("synthesize", s.handleSynthesize))
	s.mux.Handle("/v1/netlist", s.instrument("netlist", s.handleNetlist))
	return s
}

// Handler returns the http handler of s.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Serve serves on l until Shutdown is called, in which case it returns
// nil.
func (s *Server) Serve(l net.Listener) error {
	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return errors.New("server already serving")
	}
	s.srv = &http.Server{Handler: s.mux, ReadHeaderTimeout: 10 * time.Second}
	srv := s.srv
	s.mu.Unlock()
	s.log.WithFields(logrus.Fields{"addr": l.Addr().String(), "handlers": s.maxClients}).Info("serving")
	err := srv.Serve(l)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// ListenAndServe listens on addr, parsed with ParseAddr, and serves.
func (s *Server) ListenAndServe(addr string) error {
	l, err := ParseAddr(addr).Listen()
	if err != nil {
		return errors.Wrapf(err, "listening on %s", addr)
	}
	return s.Serve(l)
}

// Shutdown stops s, waiting for active requests until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// ListenAndServe creates a server with opts and serves on addr.
func ListenAndServe(addr string, opts ...Option) error {
	return New(opts...).ListenAndServe(addr)
}

// acquire waits for a free handler.
func (s *Server) acquire(ctx context.Context) error {
	select {
	case s.sem <- struct{}{}:
		s.metrics.busy.Inc()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Server) release() {
	s.metrics.busy.Dec()
	<-s.sem
}
