package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-lab-access/models"
)

const (
	tableRequests = "access_requests"
	tableFiles    = "request_files"
	tableSurveys  = "surveys"
)

// requestColumns is the column order scanned by scanRequest.
var requestColumns = []string{
	"id",
	"name",
	"email",
	"room",
	"computer",
	"software",
	"purpose",
	"renewal_of",
	"status",
	"expiration_date",
	"admin_notes",
	"activation_key",
	"reject_reason",
	"created_at",
	"decided_at",
}

func insertRequestQuery(b sq.StatementBuilderType, req models.AccessRequest) (string, []any, error) {
	return b.Insert(tableRequests).
		Columns("name", "email", "room", "computer", "software", "purpose", "renewal_of", "status", "created_at").
		Values(req.Name, req.Email, req.Room, req.Computer, req.Software, req.Purpose, req.RenewalOf, string(models.StatusPending), req.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func selectRequestByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(requestColumns...).
		From(tableRequests).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func selectRequestsQuery(b sq.StatementBuilderType, status models.RequestStatus) (string, []any, error) {
	q := b.Select(requestColumns...).
		From(tableRequests).
		OrderBy("created_at DESC", "id DESC")
	if status != models.StatusAll {
		q = q.Where(sq.Eq{"status": string(status)})
	}
	return q.ToSql()
}

func selectFileNamesQuery(b sq.StatementBuilderType, requestIDs []int64) (string, []any, error) {
	return b.Select("request_id", "file_name").
		From(tableFiles).
		Where(sq.Eq{"request_id": requestIDs}).
		OrderBy("id").
		ToSql()
}

// decideQuery only matches pending rows, so a zero row count means the
// request is missing or was decided before.
func decideQuery(b sq.StatementBuilderType, id int64, d models.Decision) (string, []any, error) {
	return b.Update(tableRequests).
		SetMap(map[string]any{
			"status":          string(d.Status),
			"expiration_date": d.ExpirationDate,
			"admin_notes":     d.AdminNotes,
			"activation_key":  d.ActivationKey,
			"reject_reason":   d.Reason,
			"decided_at":      d.DecidedAt.UTC(),
		}).
		Where(sq.Eq{"id": id, "status": string(models.StatusPending)}).
		ToSql()
}

func expireApprovalsQuery(b sq.StatementBuilderType, today time.Time) (string, []any, error) {
	return b.Update(tableRequests).
		Set("status", string(models.StatusExpired)).
		Where(sq.Eq{"status": string(models.StatusApproved)}).
		Where(sq.NotEq{"expiration_date": ""}).
		Where(sq.Lt{"expiration_date": today.Format(models.DateLayout)}).
		ToSql()
}

func insertFileQuery(b sq.StatementBuilderType, f models.StoredFile) (string, []any, error) {
	return b.Insert(tableFiles).
		Columns("request_id", "file_name", "mime_type", "data", "uploaded_at").
		Values(f.RequestID, f.FileName, f.MimeType, f.Data, f.UploadedAt).
		ToSql()
}

func insertSurveyQuery(b sq.StatementBuilderType, s models.Survey) (string, []any, error) {
	columns := []string{"request_id"}
	values := []any{s.RequestID}
	for _, category := range models.RatingCategories {
		columns = append(columns, category)
		values = append(values, s.Ratings[category])
	}
	columns = append(columns, "saran", "submitted_at")
	values = append(values, s.Suggestion, s.SubmittedAt)

	return b.Insert(tableSurveys).
		Columns(columns...).
		Values(values...).
		ToSql()
}
