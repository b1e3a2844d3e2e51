package service

import "errors"

var (
	ErrNotLoggedIn            = errors.New("not logged in")
	ErrWrongPassword          = errors.New("wrong email or password")
	ErrSessionExpired         = errors.New("session is expired or invalid")
	ErrRequestNotFound        = errors.New("request not found")
	ErrRequestAlreadyDecided  = errors.New("request was already decided")
	ErrSurveyAlreadySubmitted = errors.New("survey was already submitted")
	ErrInvalidResponse        = errors.New("unexpected response from backend")
)
