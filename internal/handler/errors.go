// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoBackend is returned by NewHandlers when there is no backend to expose.
var errNoBackend = errors.New("no backend to expose")
