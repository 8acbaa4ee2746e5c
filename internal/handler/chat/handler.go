package chat

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/psychmaster/psychmaster/internal/analysis/crisis"
	"github.com/psychmaster/psychmaster/internal/model/assessment"
	"github.com/psychmaster/psychmaster/internal/model/chat"
	chatService "github.com/psychmaster/psychmaster/internal/service/chat"
	"github.com/psychmaster/psychmaster/internal/service/recommend"
	"github.com/psychmaster/psychmaster/pkg/utils"
)

// Replier produces the assistant's answer to a user message.
type Replier interface {
	Reply(ctx context.Context, sessionID string, history []chat.Message, userMessage string) (string, error)
}

// Assessor grades a finished transcript.
type Assessor interface {
	Assess(ctx context.Context, messages []chat.Message) assessment.Analysis
}

// Handler serves the chat API.
type Handler struct {
	chatSvc  *chatService.Service
	replies  Replier
	assessor Assessor
	now      func() time.Time
}

// New creates the chat handler.
func New(chatSvc *chatService.Service, replies Replier, assessor Assessor) *Handler {
	return &Handler{
		chatSvc:  chatSvc,
		replies:  replies,
		assessor: assessor,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// RegisterRoutes registers the chat routes on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleSend)
	r.Post("/chat/session", h.handleCreateSession)
	r.Post("/chat/end-session", h.handleEndSession)
	r.Get("/chat/session/{sessionID}", h.handleGetSession)
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var payload chat.CreateSessionRequest
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Action != chat.ActionCreate {
		utils.RespondError(w, http.StatusBadRequest, "Invalid action")
		return
	}

	session, err := h.chatSvc.CreateSession(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("create session failed")
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error during session management")
		return
	}

	utils.RespondJSON(w, http.StatusOK, chat.CreateSessionResponse{
		SessionID: session.ID,
		CreatedAt: session.CreatedAt,
	})
}

func (h *Handler) handleSend(w http.ResponseWriter, r *http.Request) {
	var payload chat.SendRequest
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	message := strings.TrimSpace(payload.Message)
	if message == "" {
		utils.RespondError(w, http.StatusBadRequest, "message is required")
		return
	}

	ctx := r.Context()
	session, err := h.chatSvc.EnsureSession(ctx, strings.TrimSpace(payload.SessionID))
	if err != nil {
		log.Error().Err(err).Str("session", payload.SessionID).Msg("load session failed")
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error during chat processing")
		return
	}

	// Crisis replies bypass the model and are not recorded.
	if crisis.Detect(message) {
		log.Warn().Str("session", session.ID).Msg("crisis language detected")
		utils.RespondJSON(w, http.StatusOK, chat.SendResponse{
			Response:  crisis.Response,
			SessionID: session.ID,
			Timestamp: h.now(),
			IsCrisis:  true,
		})
		return
	}

	reply, err := h.replies.Reply(ctx, session.ID, session.Messages, message)
	if err != nil {
		// Failed exchanges are answered but not recorded.
		log.Error().Err(err).Str("session", session.ID).Msg("reply generation failed")
	} else if err := h.chatSvc.AppendExchange(ctx, session.ID, message, reply); err != nil {
		log.Error().Err(err).Str("session", session.ID).Msg("store exchange failed")
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error during chat processing")
		return
	}

	utils.RespondJSON(w, http.StatusOK, chat.SendResponse{
		Response:  reply,
		SessionID: session.ID,
		Timestamp: h.now(),
	})
}

func (h *Handler) handleEndSession(w http.ResponseWriter, r *http.Request) {
	var payload chat.EndSessionRequest
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(payload.SessionID) == "" {
		utils.RespondError(w, http.StatusBadRequest, "session_id is required")
		return
	}

	ctx := r.Context()
	session, err := h.chatSvc.EndSession(ctx, payload.SessionID, func(messages []chat.Message) (assessment.Analysis, assessment.Recommendations) {
		analysis := h.assessor.Assess(ctx, messages)
		return analysis, recommend.For(analysis)
	})
	switch {
	case errors.Is(err, chatService.ErrSessionNotFound):
		utils.RespondError(w, http.StatusBadRequest, "Session not found")
		return
	case errors.Is(err, chatService.ErrEmptySession):
		utils.RespondError(w, http.StatusBadRequest, "No conversation data to analyze")
		return
	case err != nil:
		log.Error().Err(err).Str("session", payload.SessionID).Msg("end session failed")
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error during session analysis")
		return
	}

	log.Info().
		Str("session", session.ID).
		Str("state", string(session.Analysis.PredictedState)).
		Str("risk", string(session.Analysis.RiskLevel)).
		Msg("session ended")

	utils.RespondJSON(w, http.StatusOK, chat.EndSessionResponse{
		Success:         true,
		SessionID:       session.ID,
		Analysis:        session.Analysis,
		Recommendations: session.Recommendations,
		Summary: &chat.SessionSummary{
			TotalMessages: len(session.Messages),
			UserMessages:  session.UserMessageCount(),
			StartedAt:     session.CreatedAt,
			EndedAt:       session.EndedAt,
		},
	})
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	session, err := h.chatSvc.GetSession(r.Context(), sessionID)
	if errors.Is(err, chatService.ErrSessionNotFound) {
		utils.RespondError(w, http.StatusNotFound, "Session not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("session", sessionID).Msg("get session failed")
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error retrieving session data")
		return
	}

	utils.RespondJSON(w, http.StatusOK, session.Info())
}
