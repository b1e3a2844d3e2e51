package models

import "encoding/json"

// UploadRequest describes a file attached to a previously submitted
// request row.
type UploadRequest struct {
	// RowIndex identifies the request row the file belongs to.
	RowIndex int `json:"rowIndex"`

	// FileData is the base64-encoded file content.
	FileData string `json:"fileData"`

	// FileName is the original file name.
	FileName string `json:"fileName"`

	// MimeType is the declared content type of the file.
	MimeType string `json:"mimeType"`
}

// Params converts the request into the parameter object used by bridged
// mode.
func (u UploadRequest) Params() Params {
	return Params{
		"rowIndex": u.RowIndex,
		"fileData": u.FileData,
		"fileName": u.FileName,
		"mimeType": u.MimeType,
	}
}

// UploadBody is the JSON body of a remote-mode upload submission.
type UploadBody struct {
	Path string `json:"path"`
	UploadRequest
}

// UploadResult is the outcome of an upload.
//
// Opaque results come from remote mode: the submission was sent but its
// response could not be read, so success is assumed rather than confirmed.
// Callers that need a confirmed outcome must check Verified.
type UploadResult struct {
	Success bool            `json:"success"`
	Opaque  bool            `json:"opaque,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Verified reports whether the backend confirmed the upload.
func (r UploadResult) Verified() bool {
	return r.Success && !r.Opaque
}
