package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-travel-diary/internal/logger"
	"github.com/MKhiriev/go-travel-diary/internal/service"
	"github.com/MKhiriev/go-travel-diary/internal/store"
	"github.com/MKhiriev/go-travel-diary/internal/utils"
	"github.com/MKhiriev/go-travel-diary/models"
)

var registerMessages = map[int]string{
	http.StatusBadRequest: msgCredentialsRequired,
	http.StatusConflict:   msgUserExists,
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeDecodeError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		writeError(w, r, err, registerMessages)
		return
	}

	log.Info().Str("username", registeredUser.Username).Msg("user registered")
	_, _ = utils.WriteMessage(w, msgUserRegistered, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeDecodeError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided),
			errors.Is(err, store.ErrNoUserWasFound),
			errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("no user was found/wrong password")
			_, _ = utils.WriteMessage(w, msgInvalidCredentials, http.StatusUnauthorized)
			return
		default:
			writeError(w, r, err, nil)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeError(w, r, err, nil)
		return
	}

	log.Debug().Str("username", foundUser.Username).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	_, _ = utils.WriteJSON(w, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}
