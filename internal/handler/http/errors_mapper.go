package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-travel-diary/internal/logger"
	"github.com/MKhiriev/go-travel-diary/internal/service"
	"github.com/MKhiriev/go-travel-diary/internal/store"
	"github.com/MKhiriev/go-travel-diary/internal/utils"
)

type statusRule struct {
	target error
	status int
}

// errorStatusRules is checked in order; the first matching target wins.
var errorStatusRules = []statusRule{
	{ErrInvalidRequestBody, http.StatusBadRequest},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{ErrEmptyToken, http.StatusUnauthorized},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusForbidden},

	{store.ErrLoginAlreadyExists, http.StatusConflict},
	{store.ErrNoUserWasFound, http.StatusUnauthorized},
	{store.ErrDiaryEntryNotFound, http.StatusNotFound},

	{service.ErrTokenCreationFailed, http.StatusInternalServerError},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

var statusMessageMap = map[int]string{
	http.StatusBadRequest:          msgInvalidRequestBody,
	http.StatusUnauthorized:        msgUnauthorized,
	http.StatusForbidden:           msgForbidden,
	http.StatusNotFound:            msgNotFound,
	http.StatusConflict:            msgUserExists,
	http.StatusInternalServerError: msgInternalError,
}

func statusFromError(err error) int {
	for _, rule := range errorStatusRules {
		if errors.Is(err, rule.target) {
			return rule.status
		}
	}
	return http.StatusInternalServerError
}

func messageFromStatus(status int) string {
	if message, ok := statusMessageMap[status]; ok {
		return message
	}
	return http.StatusText(status)
}

// writeError logs err and answers with the status it maps to.
// messages overrides the default body text for individual statuses.
func writeError(w http.ResponseWriter, r *http.Request, err error, messages map[int]string) {
	status := statusFromError(err)

	message, ok := messages[status]
	if !ok {
		message = messageFromStatus(status)
	}

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	_, _ = utils.WriteMessage(w, message, status)
}

// writeDecodeError answers a body that could not be decoded as JSON.
func writeDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err), nil)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteMessage(w, msgNotFound, http.StatusNotFound)
}
