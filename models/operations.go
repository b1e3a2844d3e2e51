// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Operation identifiers. These are the procedure names exposed by the host
// platform bridge; remote mode maps them to backend paths via [ResolvePath].
const (
	OpGetInitialData            = "apiGetInitialData"
	OpGetAvailableComputers     = "apiGetAvailableComputers"
	OpGetBranding               = "apiGetBranding"
	OpCheckSoftwareRestrictions = "apiCheckSoftwareRestrictions"
	OpSubmitRequest             = "apiSubmitRequest"
	OpAdminLogin                = "apiAdminLogin"
	OpCheckAuth                 = "apiCheckAuth"
	OpGetAdminRequests          = "apiGetAdminRequests"
	OpApproveRequest            = "apiApproveRequest"
	OpRejectRequest             = "apiRejectRequest"
	OpSubmitQuisioner           = "apiSubmitQuisioner"
	OpUploadFile                = "apiUploadFile"
)

// PathUploadFile is the path carried inside the opaque upload body.
const PathUploadFile = "upload-file"

// operationPaths maps operation identifiers to backend path segments.
// OpUploadFile is intentionally absent: remote uploads never go through the
// polling transport.
var operationPaths = map[string]string{
	OpGetInitialData:            "initial-data",
	OpGetAvailableComputers:     "computers-available",
	OpGetBranding:               "branding",
	OpCheckSoftwareRestrictions: "check-restrictions",
	OpSubmitRequest:             "submit-request",
	OpAdminLogin:                "admin-login",
	OpCheckAuth:                 "admin-check-auth",
	OpGetAdminRequests:          "admin-requests",
	OpApproveRequest:            "admin-approve",
	OpRejectRequest:             "admin-reject",
	OpSubmitQuisioner:           "submit-quisioner",
}

// ResolvePath returns the backend path for operationID. Identifiers missing
// from the mapping are used verbatim.
func ResolvePath(operationID string) string {
	if path, ok := operationPaths[operationID]; ok {
		return path
	}
	return operationID
}

// Operations returns every mapped operation identifier together with its
// path. The returned map is a copy.
func Operations() map[string]string {
	out := make(map[string]string, len(operationPaths))
	for op, path := range operationPaths {
		out[op] = path
	}
	return out
}
