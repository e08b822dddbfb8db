package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/totp-seed-vault/internal/logger"
	"github.com/MKhiriev/totp-seed-vault/internal/utils"
	"github.com/MKhiriev/totp-seed-vault/models"
)

func (h *Handler) decryptSeed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ProvisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if err := h.services.SeedService.Provision(ctx, req.EncryptedSeed); err != nil {
		log.Err(err).Msg("seed provisioning failed")
		h.writeError(w, err)
		return
	}

	log.Info().Msg("seed provisioned")
	utils.WriteJSON(w, models.StatusResponse{Status: "ok"}, http.StatusOK)
}

func (h *Handler) generateCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	resp, err := h.services.SeedService.CurrentCode(ctx)
	if err != nil {
		log.Err(err).Msg("code generation failed")
		h.writeError(w, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) verifyCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	valid, err := h.services.SeedService.VerifyCode(ctx, req.Code)
	if err != nil {
		log.Err(err).Msg("code verification failed")
		h.writeError(w, err)
		return
	}

	log.Debug().Bool("valid", valid).Msg("code verified")
	utils.WriteJSON(w, models.VerifyResponse{Valid: valid}, http.StatusOK)
}

// writeError translates a service-layer error into the JSON error envelope.
// Internal failures are reported with a uniform message so that callers
// cannot distinguish key, storage, or crypto problems from each other.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	utils.WriteJSON(w, models.ErrorResponse{Error: publicMessage(err, status)}, status)
}
