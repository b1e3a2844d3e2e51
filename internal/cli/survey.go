package cli

import (
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-lab-access/models"
)

const defaultMimeType = "application/octet-stream"

type surveyResult struct {
	RequestID string         `json:"requestId"`
	Ratings   map[string]int `json:"ratings"`
	Submitted bool           `json:"submitted"`
}

func newSurveyCommand(o *rootOptions) *cobra.Command {
	var (
		requestID  string
		ratings    map[string]int
		suggestion string
	)

	cmd := &cobra.Command{
		Use:     "survey",
		Short:   "Submit the satisfaction survey of a lab session",
		Example: "  labaccess survey --request-id 7 --rating komputer=5,fasilitas=4,kebersihan=5,administrasi=4,software=3,web_portal=5",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			api, release, err := o.newAPIClient(ctx)
			if err != nil {
				return err
			}
			defer release()

			survey := models.Survey{
				RequestID:  requestID,
				Ratings:    ratings,
				Suggestion: suggestion,
			}
			if err = o.surveys(api, o.logger).Submit(ctx, survey); err != nil {
				return err
			}

			return writeValue(cmd.OutOrStdout(), surveyResult{
				RequestID: requestID,
				Ratings:   ratings,
				Submitted: true,
			})
		},
	}
	cmd.Flags().StringVar(&requestID, "request-id", "", "Request the survey is about")
	cmd.Flags().StringToIntVar(&ratings, "rating", nil, "Ratings 1-5 per category, e.g. komputer=5,fasilitas=4")
	cmd.Flags().StringVar(&suggestion, "suggestion", "", "Free-text suggestion")

	return cmd
}

func newUploadCommand(o *rootOptions) *cobra.Command {
	var (
		row      int
		mimeType string
	)

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Attach a file to a submitted request",
		Long: `Attach a file to a submitted request. In remote mode the backend response
cannot be read: the result is reported as opaque and the upload is not confirmed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read upload file: %w", err)
			}
			if mimeType == "" {
				mimeType = mime.TypeByExtension(filepath.Ext(args[0]))
			}
			if mimeType == "" {
				mimeType = defaultMimeType
			}

			api, release, err := o.newAPIClient(ctx)
			if err != nil {
				return err
			}
			defer release()

			res, err := o.surveys(api, o.logger).Attach(ctx, models.UploadRequest{
				RowIndex: row,
				FileData: base64.StdEncoding.EncodeToString(data),
				FileName: filepath.Base(args[0]),
				MimeType: mimeType,
			})
			if err != nil {
				return err
			}
			return writeValue(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().IntVar(&row, "row", 0, "Request row the file belongs to")
	cmd.Flags().StringVar(&mimeType, "mime", "", "Content type (guessed from the extension when empty)")

	return cmd
}
