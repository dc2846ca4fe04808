// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package term holds the basic vocabulary shared by the rest of excite:
// ordered Boolean variables and the sets of row indices (minterms or
// maxterms) which define a Boolean function over them.
//
// Variable order is significant.  A Vars sequence is most significant bit
// first, and every bit-indexed lookup in excite relies on Vars[i].Pos ==
// len(Vars)-1-i.
package term
