// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command excite derives flip-flop excitation and output logic of finite
// state machines and synthesizes it into gate netlists.
package main

import "os"

func main() {
	os.Exit(Execute())
}
