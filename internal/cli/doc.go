// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the labaccess command line. Every API operation has
// a subcommand that prints the resolved payload as indented JSON; failures
// are returned as errors and make the process exit non-zero.
//
// With --bridged the commands talk to a development backend running inside
// the process through a procedure bridge. Otherwise they poll the endpoint
// from --api-url (or ADAPTER_API_URL).
package cli
