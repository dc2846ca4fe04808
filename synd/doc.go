// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package synd provides an http server for machine synthesis.
//
// # Endpoints
//
//	POST /v1/synthesize   problem file in, design result out
//	POST /v1/netlist      {"expr": "A'B + C"} in, netlist out
//	GET  /healthz
//	GET  /metrics         prometheus metrics
//
// The problem file of /v1/synthesize is json unless the Content-Type
// names toml or yaml.  The query parameters path and verify override the
// corresponding settings of the file.  /v1/netlist answers in graphviz dot
// when the query parameter format is dot.
//
// At most a fixed number of requests, by default the number of CPUs, are
// synthesized at once; others wait for a free handler until their context
// is done.
package synd
