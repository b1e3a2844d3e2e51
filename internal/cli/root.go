package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-lab-access/internal/adapter"
	"github.com/MKhiriev/go-lab-access/internal/client"
	"github.com/MKhiriev/go-lab-access/internal/config"
	"github.com/MKhiriev/go-lab-access/internal/logger"
	"github.com/MKhiriev/go-lab-access/internal/service"
	"github.com/MKhiriev/go-lab-access/models"
)

const loggerRole = "labaccess"

// rootOptions holds the persistent flags and the state shared by the
// subcommands of one invocation.
type rootOptions struct {
	flags     *config.Flags
	bridged   bool
	logLevel  string
	buildInfo models.AppBuildInfo

	// surveys builds the survey service over the API client of a command.
	surveys func(api *client.APIClient, logger *logger.Logger) service.SurveyService

	logger *logger.Logger
}

func newSurveyService(api *client.APIClient, logger *logger.Logger) service.SurveyService {
	return service.NewServices(api, logger).SurveyService
}

// NewRootCommand builds the labaccess command tree.
func NewRootCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	return newRootCommand(&rootOptions{buildInfo: buildInfo, surveys: newSurveyService})
}

func newRootCommand(opts *rootOptions) *cobra.Command {

	root := &cobra.Command{
		Use:   "labaccess",
		Short: "Command line client of the lab access API",
		Long: `labaccess calls the lab access API and prints the resolved payload as JSON.
Use --api-url to reach a deployed backend or --bridged to run a development
backend inside the process.`,
		SilenceUsage:      true,
		PersistentPreRunE: opts.setup,
	}

	fs := root.PersistentFlags()
	opts.flags = config.BindFlags(fs)
	fs.BoolVar(&opts.bridged, "bridged", false, "Call an in-process development backend through the procedure bridge")
	fs.StringVar(&opts.logLevel, "log-level", zerolog.InfoLevel.String(), "Log level: trace, debug, info, warn, error")

	root.AddCommand(
		newInitialDataCommand(opts),
		newComputersCommand(opts),
		newBrandingCommand(opts),
		newCheckRestrictionsCommand(opts),
		newSubmitRequestCommand(opts),
		newAdminLoginCommand(opts),
		newCheckAuthCommand(opts),
		newAdminRequestsCommand(opts),
		newApproveCommand(opts),
		newRejectCommand(opts),
		newSurveyCommand(opts),
		newUploadCommand(opts),
		newInvokeCommand(opts),
		newAdminCommand(opts),
		newVersionCommand(opts),
	)

	return root
}

func (o *rootOptions) setup(*cobra.Command, []string) error {
	level, err := zerolog.ParseLevel(o.logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	o.logger = logger.NewClientLogger(loggerRole, level)
	return nil
}

// newBridge returns the procedure bridge of an embedded backend when
// --bridged is set and a nil bridge otherwise. The returned func releases
// the embedded storage.
func (o *rootOptions) newBridge(ctx context.Context) (adapter.Bridge, func(), error) {
	if !o.bridged {
		return nil, func() {}, nil
	}

	pb, release, err := newEmbeddedBridge(ctx, o.flags.Config(), o.logger)
	if err != nil {
		return nil, nil, err
	}
	return pb, release, nil
}

func (o *rootOptions) clientConfig() (*config.ClientConfig, error) {
	cfg, err := config.GetClientConfig(o.flags.Config())
	if err != nil {
		return nil, fmt.Errorf("load client config: %w", err)
	}
	return cfg, nil
}

func (o *rootOptions) newAPIClient(ctx context.Context) (*client.APIClient, func(), error) {
	cfg, err := o.clientConfig()
	if err != nil {
		return nil, nil, err
	}

	bridge, release, err := o.newBridge(ctx)
	if err != nil {
		return nil, nil, err
	}

	return client.New(cfg.Adapter, bridge, o.logger), release, nil
}

// apiFunc performs one API call with the positional arguments of a command.
type apiFunc func(ctx context.Context, api *client.APIClient, args []string) (json.RawMessage, error)

// run adapts fn into a cobra RunE that prints the resolved payload.
func (o *rootOptions) run(fn apiFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		api, release, err := o.newAPIClient(ctx)
		if err != nil {
			return err
		}
		defer release()

		raw, err := fn(ctx, api, args)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), raw)
	}
}
