package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/swissquality-storen/web/internal/platform/httpx"
	"github.com/swissquality-storen/web/internal/platform/observability"
	"github.com/swissquality-storen/web/internal/submissions"
)

const maxBodyBytes = 64 << 10

// SubmitContact handles POST /api/contact.
func (s *Server) SubmitContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input submissions.ContactInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := s.submissions.SubmitContact(ctx, input)
	if err != nil {
		var verr *submissions.ValidationError
		if errors.As(err, &verr) {
			httpx.WriteError(ctx, w, httpx.NewError("validation_failed", verr.Message, http.StatusBadRequest))
			return
		}
		observability.FromContext(ctx).Error("contact submission failed", zap.Error(err))
		httpx.WriteError(ctx, w, httpx.NewError("internal_error",
			"Ihre Anfrage konnte nicht gespeichert werden. Bitte versuchen Sie es später erneut.",
			http.StatusInternalServerError))
		return
	}

	payload := map[string]any{
		"success": true,
		"message": "Vielen Dank für Ihre Anfrage. Wir melden uns innert eines Arbeitstages bei Ihnen.",
	}
	if !result.Discarded {
		payload["id"] = result.ID
	}
	httpx.WriteJSON(w, http.StatusOK, payload)
}

// SubmitNewsletter handles POST /api/newsletter.
func (s *Server) SubmitNewsletter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input submissions.NewsletterInput
	if !decodeJSON(w, r, &input) {
		return
	}

	_, err := s.submissions.SubmitNewsletter(ctx, input)
	if err != nil {
		var verr *submissions.ValidationError
		switch {
		case errors.As(err, &verr):
			httpx.WriteError(ctx, w, httpx.NewError("validation_failed", verr.Message, http.StatusBadRequest))
		case errors.Is(err, submissions.ErrAlreadySubscribed):
			httpx.WriteError(ctx, w, httpx.NewError("already_subscribed",
				"Diese E-Mail-Adresse ist bereits für den Newsletter angemeldet.",
				http.StatusConflict))
		default:
			observability.FromContext(ctx).Error("newsletter signup failed", zap.Error(err))
			httpx.WriteError(ctx, w, httpx.NewError("internal_error",
				"Ihre Anmeldung konnte nicht gespeichert werden. Bitte versuchen Sie es später erneut.",
				http.StatusInternalServerError))
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Vielen Dank für Ihre Anmeldung zum Newsletter.",
	})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		httpx.WriteError(r.Context(), w, httpx.NewError("invalid_request",
			"Die Anfrage konnte nicht gelesen werden.", http.StatusBadRequest))
		return false
	}
	return true
}
