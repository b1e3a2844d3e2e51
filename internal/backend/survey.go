package backend

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-lab-access/internal/validators"
	"github.com/MKhiriev/go-lab-access/models"
)

func (b *Backend) submitQuisioner(ctx context.Context, p models.Params) (any, error) {
	survey := models.Survey{
		RequestID:   param(p, "requestId"),
		Ratings:     make(map[string]int, len(models.RatingCategories)),
		Suggestion:  param(p, "saran"),
		SubmittedAt: b.now(),
	}

	for _, category := range models.RatingCategories {
		raw := param(p, category)
		if raw == "" {
			continue
		}
		rating, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", validators.ErrInvalidRating, category, raw)
		}
		survey.Ratings[category] = rating
	}

	if err := b.validator.Validate(ctx, survey); err != nil {
		return nil, err
	}
	if err := b.requests.SaveSurvey(ctx, survey); err != nil {
		return nil, err
	}

	return map[string]any{"requestId": survey.RequestID}, nil
}

// uploadFile attaches a base64 file to the request whose ID is rowIndex.
func (b *Backend) uploadFile(ctx context.Context, p models.Params) (any, error) {
	rowIndex, err := paramInt(p, "rowIndex")
	if err != nil {
		return nil, err
	}

	upload := models.UploadRequest{
		RowIndex: rowIndex,
		FileData: p.String("fileData"),
		FileName: param(p, "fileName"),
		MimeType: param(p, "mimeType"),
	}
	if err = b.validator.Validate(ctx, upload); err != nil {
		return nil, err
	}

	data, err := base64.StdEncoding.DecodeString(upload.FileData)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", validators.ErrInvalidFileData, err)
	}

	err = b.requests.AttachFile(ctx, models.StoredFile{
		RequestID:  int64(upload.RowIndex),
		FileName:   upload.FileName,
		MimeType:   upload.MimeType,
		Data:       data,
		UploadedAt: b.now(),
	})
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"requestId": upload.RowIndex,
		"fileName":  upload.FileName,
		"size":      len(data),
	}, nil
}
