// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package biosimd provides IsNonACGTPresent, a bulk gate used to skip the
// byte-at-a-time ambiguous-base scan in pacbio/ioreads on the common case
// of a clean, all-uppercase-ACGT read.
package biosimd
