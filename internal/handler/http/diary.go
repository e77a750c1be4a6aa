// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-travel-diary/internal/utils"
	"github.com/MKhiriev/go-travel-diary/models"
	"github.com/go-chi/chi/v5"
)

var diaryMessages = map[int]string{
	http.StatusBadRequest: msgInvalidDiaryEntry,
	http.StatusNotFound:   msgDiaryEntryNotFound,
}

func (h *Handler) listDiaryEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.services.DiaryService.ListDiaryEntries(r.Context())
	if err != nil {
		writeError(w, r, err, diaryMessages)
		return
	}

	_, _ = utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) createDiaryEntry(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeDiaryEntryInput(w, r)
	if !ok {
		return
	}

	created, err := h.services.DiaryService.CreateDiaryEntry(r.Context(), input)
	if err != nil {
		writeError(w, r, err, diaryMessages)
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getDiaryEntry(w http.ResponseWriter, r *http.Request) {
	entry, err := h.services.DiaryService.GetDiaryEntry(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, diaryMessages)
		return
	}

	_, _ = utils.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) replaceDiaryEntry(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeDiaryEntryInput(w, r)
	if !ok {
		return
	}

	replaced, err := h.services.DiaryService.ReplaceDiaryEntry(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, r, err, diaryMessages)
		return
	}

	_, _ = utils.WriteJSON(w, replaced, http.StatusOK)
}

func (h *Handler) deleteDiaryEntry(w http.ResponseWriter, r *http.Request) {
	if err := h.services.DiaryService.DeleteDiaryEntry(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, diaryMessages)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeDiaryEntryInput reads the request body. On failure the 400 response
// has already been written.
func decodeDiaryEntryInput(w http.ResponseWriter, r *http.Request) (models.DiaryEntryInput, bool) {
	var input models.DiaryEntryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeDecodeError(w, r, err)
		return models.DiaryEntryInput{}, false
	}

	return input, true
}
