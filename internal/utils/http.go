package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
)

// WriteJSON serializes data to JSON and writes it with statusCode and an
// application/json content type. A marshalling failure is answered with 500.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

var callbackName = regexp.MustCompile(`^[A-Za-z_$][\w$]*$`)

// ValidCallbackName reports whether name is a plain identifier that is safe
// to echo back as the callee of a callback script.
func ValidCallbackName(name string) bool {
	return callbackName.MatchString(name)
}

// WriteCallbackScript writes `callback(<data as JSON>);` as a JavaScript
// body with status 200. callback must pass [ValidCallbackName].
//
// Example usage:
//
//	WriteCallbackScript(w, "cb1_1700000000000", models.OK(branding))
func WriteCallbackScript(w http.ResponseWriter, callback string, data any) (int, error) {
	if !ValidCallbackName(callback) {
		http.Error(w, "invalid callback name", http.StatusBadRequest)
		return 0, fmt.Errorf("invalid callback name %q", callback)
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)

	return fmt.Fprintf(w, "%s(%s);", callback, jsonData)
}
