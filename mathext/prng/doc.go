// Copyright ©2019 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prng provides random source PRNG implementations.
//
// PRNG implementations provided in package prng may be used directly as
// rand.Source values for the golang.org/x/exp/rand package and for the
// math/rand/v2 package.
package prng // import "github.com/flexhat/flex/mathext/prng"
