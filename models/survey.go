package models

import "time"

// Survey rating categories, named by their wire keys.
const (
	RatingComputer       = "komputer"
	RatingFacilities     = "fasilitas"
	RatingCleanliness    = "kebersihan"
	RatingAdministration = "administrasi"
	RatingSoftware       = "software"
	RatingWebPortal      = "web_portal"
)

// RatingCategories lists the rating keys in the order they are asked.
var RatingCategories = []string{
	RatingComputer,
	RatingFacilities,
	RatingCleanliness,
	RatingAdministration,
	RatingSoftware,
	RatingWebPortal,
}

// Survey is the satisfaction questionnaire filled in after a lab session.
// Ratings range from 1 (very poor) to 5 (excellent).
type Survey struct {
	RequestID   string         `json:"requestId"`
	Ratings     map[string]int `json:"-"`
	Suggestion  string         `json:"saran"`
	SubmittedAt time.Time      `json:"-"`
}

// Params flattens the survey into the wire parameter object.
func (s Survey) Params() Params {
	p := Params{
		"requestId": s.RequestID,
		"saran":     s.Suggestion,
	}
	for _, category := range RatingCategories {
		p[category] = s.Ratings[category]
	}
	return p
}
