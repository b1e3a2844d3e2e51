package client

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-lab-access/models"
)

// defaultAdminStatus is the filter used when GetAdminRequests gets none.
const defaultAdminStatus = string(models.StatusPending)

// GetInitialData loads the request form data, prefilled from renewalID when
// it is not empty.
func (c *APIClient) GetInitialData(ctx context.Context, renewalID string) (json.RawMessage, error) {
	params := models.Params{}
	if renewalID != "" {
		params["renewal_id"] = renewalID
	}
	return c.Invoke(ctx, models.OpGetInitialData, params)
}

// GetAvailableComputers lists computers, optionally restricted to room.
func (c *APIClient) GetAvailableComputers(ctx context.Context, room string) (json.RawMessage, error) {
	params := models.Params{}
	if room != "" {
		params["room"] = room
	}
	return c.Invoke(ctx, models.OpGetAvailableComputers, params)
}

func (c *APIClient) GetBranding(ctx context.Context) (json.RawMessage, error) {
	return c.Invoke(ctx, models.OpGetBranding, nil)
}

func (c *APIClient) CheckSoftwareRestrictions(ctx context.Context, software string) (json.RawMessage, error) {
	return c.Invoke(ctx, models.OpCheckSoftwareRestrictions, models.Params{"software": software})
}

// SubmitRequest sends the request form as is.
func (c *APIClient) SubmitRequest(ctx context.Context, form models.Params) (json.RawMessage, error) {
	return c.Invoke(ctx, models.OpSubmitRequest, form)
}

func (c *APIClient) AdminLogin(ctx context.Context, email, password string) (json.RawMessage, error) {
	return c.Invoke(ctx, models.OpAdminLogin, models.Params{
		"email":    email,
		"password": password,
	})
}

func (c *APIClient) CheckAuth(ctx context.Context, token string) (json.RawMessage, error) {
	return c.Invoke(ctx, models.OpCheckAuth, models.Params{"token": token})
}

// GetAdminRequests lists requests with status, "Pending" when empty.
func (c *APIClient) GetAdminRequests(ctx context.Context, status string) (json.RawMessage, error) {
	if status == "" {
		status = defaultAdminStatus
	}
	return c.Invoke(ctx, models.OpGetAdminRequests, models.Params{"status": status})
}

func (c *APIClient) ApproveRequest(ctx context.Context, requestID int64, expirationDate, adminNotes, activationKey string) (json.RawMessage, error) {
	return c.Invoke(ctx, models.OpApproveRequest, models.Params{
		"requestId":      requestID,
		"expirationDate": expirationDate,
		"adminNotes":     adminNotes,
		"activationKey":  activationKey,
	})
}

func (c *APIClient) RejectRequest(ctx context.Context, requestID int64, reason string) (json.RawMessage, error) {
	return c.Invoke(ctx, models.OpRejectRequest, models.Params{
		"requestId": requestID,
		"reason":    reason,
	})
}

// SubmitQuisioner sends a filled-in satisfaction survey.
func (c *APIClient) SubmitQuisioner(ctx context.Context, payload models.Params) (json.RawMessage, error) {
	return c.Invoke(ctx, models.OpSubmitQuisioner, payload)
}
