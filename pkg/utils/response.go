package utils

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// SubmitResponse is the wire contract for every form endpoint: a success
// boolean plus, on failure, a human-readable message. Internal errors are
// never exposed to the caller.
type SubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// RespondWithJSON for successful cases.
func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError writes a {success:false, message} body with the given status.
// devErr is optional; when provided it is logged but never surfaced.
func RespondError(w http.ResponseWriter, status int, publicMessage string, devErrs ...error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(SubmitResponse{Success: false, Message: publicMessage})

	if len(devErrs) > 0 && devErrs[0] != nil {
		Logger.WithFields(logrus.Fields{
			"status": status,
			"error":  devErrs[0].Error(),
		}).Error(publicMessage)
	} else {
		Logger.WithFields(logrus.Fields{
			"status": status,
		}).Warn(publicMessage)
	}
}
