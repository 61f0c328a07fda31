package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/museum-user-api/internal/logger"
	"github.com/MKhiriev/museum-user-api/internal/service"
	"github.com/MKhiriev/museum-user-api/internal/utils"
	"github.com/MKhiriev/museum-user-api/models"
)

const loginStatusSuccess = "success"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeMessageRejection(w, r, "register", service.ErrInvalidInput)
		return
	}

	message, err := h.services.AuthService.RegisterUser(ctx, credentials)
	if err != nil {
		writeMessageRejection(w, r, "register", err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: message}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeMessageRejection(w, r, "login", service.ErrInvalidInput)
		return
	}

	user, err := h.services.AuthService.CheckUser(ctx, credentials)
	if err != nil {
		writeMessageRejection(w, r, "login", err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeMessageRejection(w, r, "login", err)
		return
	}

	log.Debug().Str("user_id", user.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Message: models.LoginResult{Status: loginStatusSuccess, Token: token.String()},
	}, http.StatusOK)
}
