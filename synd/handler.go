// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package synd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/go-air/excite/config"
	"github.com/go-air/excite/design"
	"github.com/go-air/excite/expr"
	"github.com/go-air/excite/fsm"
	"github.com/go-air/excite/netlist"
	"github.com/go-air/excite/term"
)

// maxBody bounds request bodies.
const maxBody = 1 << 20

type statusWriter struct {
	http.ResponseWriter
	code int
	err  error // first write error
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(d []byte) (int, error) {
	n, err := w.ResponseWriter.Write(d)
	if err != nil && w.err == nil {
		w.err = err
	}
	return n, err
}

type handlerFunc func(w http.ResponseWriter, r *http.Request, log logrus.FieldLogger)

// instrument records metrics and logs a request.
func (s *Server) instrument(name string, h handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		log := s.log.WithFields(logrus.Fields{"handler": name, "remote": r.RemoteAddr})
		if r.Method != http.MethodPost {
			writeError(sw, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
		} else {
			r.Body = http.MaxBytesReader(sw, r.Body, maxBody)
			h(sw, r, log)
		}
		d := time.Since(start)
		s.metrics.requests.WithLabelValues(name, strconv.Itoa(sw.code)).Inc()
		s.metrics.durations.WithLabelValues(name).Observe(d.Seconds())
		if sw.err != nil {
			log.WithError(sw.err).Debug("writing response")
		}
		log.WithFields(logrus.Fields{"code": sw.code, "duration": d}).Debug("request")
	})
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, code int, err error) error {
	return writeJSON(w, code, errorBody{Error: err.Error()})
}

func bodyFormat(r *http.Request) config.Format {
	ct := r.Header.Get("Content-Type")
	switch {
	case strings.Contains(ct, "toml"):
		return config.TOML
	case strings.Contains(ct, "yaml"):
		return config.YAML
	default:
		return config.JSON
	}
}

// errCode maps a synthesis error to an http status.
func errCode(err error) int {
	var ie *term.InvalidTermError
	var me *fsm.MissingAssignmentError
	var se *expr.SyntaxError
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	case errors.Is(err, fsm.ErrConfig), errors.As(err, &ie), errors.As(err, &me), errors.As(err, &se):
		return http.StatusBadRequest
	default:
		return http.StatusUnprocessableEntity
	}
}

func (s *Server) handleSynthesize(w http.ResponseWriter, r *http.Request, log logrus.FieldLogger) {
	f, err := config.Decode(r.Body, bodyFormat(r))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	p, err := f.Problem()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	o := s.opts
	if f.Path != "" {
		if o.Path, err = design.ParsePath(f.Path); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}
	o.Verify = o.Verify || f.Verify
	q := r.URL.Query()
	if v := q.Get("path"); v != "" {
		if o.Path, err = design.ParsePath(v); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}
	if v := q.Get("verify"); v != "" {
		if o.Verify, err = strconv.ParseBool(v); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}
	log = log.WithField("config", p.Config.String())
	o.Log = log
	if err := s.acquire(r.Context()); err != nil {
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	defer s.release()
	res, err := design.Run(r.Context(), p, &o)
	if err != nil {
		log.WithError(err).Warn("synthesis failed")
		writeError(w, errCode(err), err)
		return
	}
	for i := range res.Equations {
		eq := &res.Equations[i]
		if eq.Err != nil {
			s.metrics.equations.WithLabelValues(Failed).Inc()
			continue
		}
		s.metrics.equations.WithLabelValues(Succeeded).Inc()
		if syn := eq.Synthesis(o.Path); syn != nil && syn.Netlist != nil {
			s.metrics.gates.Observe(float64(syn.Netlist.Len()))
		}
	}
	if err := writeJSON(w, http.StatusOK, res); err != nil {
		log.WithError(err).Debug("encoding result")
	}
}

// NetlistRequest is the body of /v1/netlist.
type NetlistRequest struct {
	Expr string `json:"expr"`
}

func (s *Server) handleNetlist(w http.ResponseWriter, r *http.Request, log logrus.FieldLogger) {
	var req NetlistRequest
	d, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := json.Unmarshal(d, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.acquire(r.Context()); err != nil {
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	defer s.release()
	n, err := netlist.Synth(req.Expr)
	if err != nil {
		log.WithError(err).WithField("expr", req.Expr).Debug("no netlist")
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	s.metrics.gates.Observe(float64(n.Len()))
	if r.URL.Query().Get("format") == "dot" {
		w.Header().Set("Content-Type", "text/vnd.graphviz")
		if err := n.WriteDot(w, "netlist"); err != nil {
			log.WithError(err).Debug("writing dot")
		}
		return
	}
	if err := writeJSON(w, http.StatusOK, n); err != nil {
		log.WithError(err).Debug("encoding netlist")
	}
}
