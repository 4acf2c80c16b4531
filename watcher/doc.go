// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package watcher - notification of changes to the bid file
//
// The directory holding the file is watched so that editors which
// replace the file by rename are still seen.  Change notifications
// are rate limited and are never queued more than one deep; the
// receiver is expected to re-read the whole file.
package watcher
