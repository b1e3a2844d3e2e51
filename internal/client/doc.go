// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client is the entry point for talking to the lab-access backend.
//
// [APIClient] picks a transport once at construction and exposes one method
// per backend operation. [App] is the interactive admin runtime built on top
// of it.
package client
