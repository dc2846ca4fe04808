// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

const usage = `excited runs an excitation synthesis server.

It takes 1 argument, an address on which to serve.  Addresses
may either be in the form

	@path/to/somewhere

or

	host:port

The first form specifies a unix domain socket by a prefix '@'.

Problems are posted to /v1/synthesize as toml, yaml or json according
to the Content-Type, expressions to /v1/netlist, and metrics are served
on /metrics.`
