// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package gen contains generators for machine synthesis problems.
//
// The generators draw from a seedable package level source, so runs are
// reproducible.  Functions with an r suffix take their own source.
package gen
