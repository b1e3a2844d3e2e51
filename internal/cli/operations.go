package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-lab-access/internal/client"
	"github.com/MKhiriev/go-lab-access/models"
)

// defaultApprovalDays is the validity of an approval when --expires is not
// given.
const defaultApprovalDays = 30

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func parseRequestID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid request ID %q", s)
	}
	return id, nil
}

func newInitialDataCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "initial-data [renewal-id]",
		Short: "Load the request form data, prefilled from a previous request",
		Args:  cobra.MaximumNArgs(1),
		RunE: o.run(func(ctx context.Context, api *client.APIClient, args []string) (json.RawMessage, error) {
			return api.GetInitialData(ctx, firstArg(args))
		}),
	}
}

func newComputersCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "computers [room]",
		Short: "List lab computers and whether they can be requested",
		Args:  cobra.MaximumNArgs(1),
		RunE: o.run(func(ctx context.Context, api *client.APIClient, args []string) (json.RawMessage, error) {
			return api.GetAvailableComputers(ctx, firstArg(args))
		}),
	}
}

func newBrandingCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "branding",
		Short: "Show the branding assets",
		Args:  cobra.NoArgs,
		RunE: o.run(func(ctx context.Context, api *client.APIClient, _ []string) (json.RawMessage, error) {
			return api.GetBranding(ctx)
		}),
	}
}

func newCheckRestrictionsCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check-restrictions <software>",
		Short: "Check which software titles need explicit approval",
		Long:  "Check which software titles need explicit approval. Separate several titles with commas.",
		Args:  cobra.ExactArgs(1),
		RunE: o.run(func(ctx context.Context, api *client.APIClient, args []string) (json.RawMessage, error) {
			return api.CheckSoftwareRestrictions(ctx, args[0])
		}),
	}
}

func newSubmitRequestCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "submit-request key=value...",
		Short:   "Submit an access request form",
		Example: `  labaccess submit-request name="Dewi" email=dewi@example.ac.id room="Lab A" computer=PC-A01 software=MATLAB`,
		RunE: o.run(func(ctx context.Context, api *client.APIClient, args []string) (json.RawMessage, error) {
			form, err := parseParams(args)
			if err != nil {
				return nil, err
			}
			return api.SubmitRequest(ctx, form)
		}),
	}
}

func newAdminLoginCommand(o *rootOptions) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "admin-login",
		Short: "Exchange admin credentials for a session token",
		Args:  cobra.NoArgs,
		RunE: o.run(func(ctx context.Context, api *client.APIClient, _ []string) (json.RawMessage, error) {
			return api.AdminLogin(ctx, email, password)
		}),
	}
	cmd.Flags().StringVar(&email, "email", "", "Admin e-mail")
	cmd.Flags().StringVar(&password, "password", "", "Admin password")

	return cmd
}

func newCheckAuthCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check-auth <token>",
		Short: "Check whether an admin session token is still valid",
		Args:  cobra.ExactArgs(1),
		RunE: o.run(func(ctx context.Context, api *client.APIClient, args []string) (json.RawMessage, error) {
			return api.CheckAuth(ctx, args[0])
		}),
	}
}

func newAdminRequestsCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "admin-requests [status]",
		Short: "List access requests by status (Pending, Approved, Rejected, Expired or All)",
		Args:  cobra.MaximumNArgs(1),
		RunE: o.run(func(ctx context.Context, api *client.APIClient, args []string) (json.RawMessage, error) {
			status, ok := models.ParseRequestStatus(firstArg(args))
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, firstArg(args))
			}
			return api.GetAdminRequests(ctx, string(status))
		}),
	}
}

func newApproveCommand(o *rootOptions) *cobra.Command {
	var expires, notes, key string

	cmd := &cobra.Command{
		Use:   "approve <request-id>",
		Short: "Approve a pending request",
		Long:  "Approve a pending request. The backend generates an activation key when --key is empty.",
		Args:  cobra.ExactArgs(1),
		RunE: o.run(func(ctx context.Context, api *client.APIClient, args []string) (json.RawMessage, error) {
			id, err := parseRequestID(args[0])
			if err != nil {
				return nil, err
			}
			return api.ApproveRequest(ctx, id, expires, notes, key)
		}),
	}
	defaultExpires := time.Now().AddDate(0, 0, defaultApprovalDays).Format(models.DateLayout)
	cmd.Flags().StringVar(&expires, "expires", defaultExpires, "Expiration date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&notes, "notes", "", "Admin notes")
	cmd.Flags().StringVar(&key, "key", "", "Activation key")

	return cmd
}

func newRejectCommand(o *rootOptions) *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "reject <request-id>",
		Short: "Reject a pending request",
		Args:  cobra.ExactArgs(1),
		RunE: o.run(func(ctx context.Context, api *client.APIClient, args []string) (json.RawMessage, error) {
			id, err := parseRequestID(args[0])
			if err != nil {
				return nil, err
			}
			return api.RejectRequest(ctx, id, reason)
		}),
	}
	cmd.Flags().StringVar(&reason, "reason", "", "Rejection reason")

	return cmd
}

func newInvokeCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "invoke <operation-id> [key=value...]",
		Short: "Run any operation by identifier",
		Long: `Run any operation by identifier. Identifiers without a known path are sent
to the backend verbatim.`,
		Args: cobra.MinimumNArgs(1),
		RunE: o.run(func(ctx context.Context, api *client.APIClient, args []string) (json.RawMessage, error) {
			params, err := parseParams(args[1:])
			if err != nil {
				return nil, err
			}
			return api.Invoke(ctx, args[0], params)
		}),
	}
}
