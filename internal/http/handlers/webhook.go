package handlers

import (
	"context"
	"errors"
	"net/http"

	"courier-chat/internal/frontend"
	"courier-chat/internal/logx"
)

// Workflow is the intent processing port exposed to transports.
type Workflow interface {
	Handle(ctx context.Context, sessionID int64, intent frontend.Intent) []frontend.Render
}

// WebhookHandler accepts front-end updates over HTTP and answers with the
// render list for the same session.
type WebhookHandler struct {
	wf     Workflow
	logger logx.Logger
}

// NewWebhookHandler wires the workflow into the webhook endpoint.
func NewWebhookHandler(wf Workflow, logger logx.Logger) *WebhookHandler {
	return &WebhookHandler{wf: wf, logger: logger}
}

type updateResponse struct {
	Renders []frontend.RenderDTO `json:"renders"`
}

// Post handles POST /updates.
func (h *WebhookHandler) Post(w http.ResponseWriter, r *http.Request) {
	var u frontend.Update
	if ok := decodeJSON(h.logger, w, r, &u); !ok {
		return
	}
	if u.SessionID == 0 {
		writeError(h.logger, w, r, http.StatusBadRequest, "missing session_id")
		return
	}

	intent, err := frontend.Decode(u)
	if err != nil {
		// unknown updates are acknowledged so the front end does not retry them
		if errors.Is(err, frontend.ErrUnknownUpdate) {
			h.logger.Debug("ignoring unknown update",
				logx.Int64("session_id", u.SessionID),
				logx.Err(err),
			)
			writeJSON(h.logger, w, r, http.StatusOK, updateResponse{Renders: []frontend.RenderDTO{}})
			return
		}
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid update")
		return
	}

	renders := h.wf.Handle(r.Context(), u.SessionID, intent)
	writeJSON(h.logger, w, r, http.StatusOK, updateResponse{Renders: frontend.Encode(renders)})
}
