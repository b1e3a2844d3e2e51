// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// DateLayout is the wire format of calendar dates such as expiration dates.
const DateLayout = "2006-01-02"

// RequestStatus is the approval state of an access request.
type RequestStatus string

const (
	StatusPending  RequestStatus = "Pending"
	StatusApproved RequestStatus = "Approved"
	StatusRejected RequestStatus = "Rejected"
	StatusExpired  RequestStatus = "Expired"

	// StatusAll is accepted as a list filter only.
	StatusAll RequestStatus = "All"
)

// ParseRequestStatus matches s case-insensitively against the known
// statuses. An empty string yields StatusPending.
func ParseRequestStatus(s string) (RequestStatus, bool) {
	if s == "" {
		return StatusPending, true
	}
	for _, status := range []RequestStatus{StatusPending, StatusApproved, StatusRejected, StatusExpired, StatusAll} {
		if strings.EqualFold(s, string(status)) {
			return status, true
		}
	}
	return "", false
}

// Branding holds the assets shown on the public pages.
type Branding struct {
	// Logo is either a URL, a data URL or bare base64 PNG content.
	Logo    string `json:"logo"`
	AppName string `json:"appName,omitempty"`
}

// Computer is a lab workstation that can be requested.
type Computer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Room      string `json:"room"`
	Available bool   `json:"available"`
}

// InitialData is returned to the request form when it is opened, optionally
// prefilled from a previous request that is being renewed.
type InitialData struct {
	Rooms    []string       `json:"rooms"`
	Software []string       `json:"software"`
	Renewal  *AccessRequest `json:"renewal,omitempty"`
}

// RestrictionCheck reports which requested software titles need explicit
// approval.
type RestrictionCheck struct {
	Restricted []string `json:"restricted"`
	Allowed    bool     `json:"allowed"`
}

// AccessRequest is a submitted request for lab computer access.
type AccessRequest struct {
	ID             int64         `json:"requestId"`
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	Room           string        `json:"room"`
	Computer       string        `json:"computer"`
	Software       string        `json:"software"`
	Purpose        string        `json:"purpose,omitempty"`
	RenewalOf      string        `json:"renewal_id,omitempty"`
	Status         RequestStatus `json:"status"`
	ExpirationDate string        `json:"expirationDate,omitempty"`
	AdminNotes     string        `json:"adminNotes,omitempty"`
	ActivationKey  string        `json:"activationKey,omitempty"`
	RejectReason   string        `json:"reason,omitempty"`
	Files          []string      `json:"files,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
	DecidedAt      *time.Time    `json:"decidedAt,omitempty"`
}

// Decision is an admin verdict on a pending request.
type Decision struct {
	Status         RequestStatus
	ExpirationDate string
	AdminNotes     string
	ActivationKey  string
	Reason         string
	DecidedAt      time.Time
}

// StoredFile is an uploaded attachment of a request.
type StoredFile struct {
	RequestID  int64
	FileName   string
	MimeType   string
	Data       []byte
	UploadedAt time.Time
}

// AuthCheck is the result of validating an admin session token.
type AuthCheck struct {
	Valid     bool      `json:"valid"`
	Email     string    `json:"email,omitempty"`
	ExpiresAt time.Time `json:"expiresAt,omitempty"`
}

// AdminSession is returned by a successful admin login.
type AdminSession struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}
