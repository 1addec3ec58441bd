package api

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/zonaelectrica/zeia-server/domain/entities"
	"github.com/zonaelectrica/zeia-server/internal/auth"
	"github.com/zonaelectrica/zeia-server/internal/websocket"
	"github.com/zonaelectrica/zeia-server/usecase"
)

const playbackSampleRate = 24000

// Handler bundles the services behind the HTTP surface.
type Handler struct {
	Chat     *usecase.ChatService
	Analysis *usecase.AnalysisService
	Places   *usecase.PlacesService
	Speech   *usecase.SpeechService
	Auth     *auth.Manager
	Hub      *websocket.Hub
	Logger   *zap.Logger
}

// InitRoutes initializes all API routes
func InitRoutes(e *echo.Echo, h *Handler) {
	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": "zeia-server",
		})
	})

	// API v1 routes
	v1 := e.Group("/api/v1")

	// Session bootstrap for anonymous browser clients
	v1.POST("/session", h.createSession)

	// Consultation APIs
	v1.POST("/chat", h.chat)
	v1.POST("/chat/:conversation/reset", h.resetChat)

	// Image diagnostics APIs
	v1.POST("/analysis", h.analyze)
	v1.POST("/analysis/:conversation/followup", h.followUp)

	// Distributor search API
	v1.POST("/distributors", h.distributors)

	// Text-to-speech API
	v1.POST("/speech", h.speech)

	// WebSocket endpoint with JWT validation
	e.GET("/ws", h.websocketWithAuth)
}

// createSession issues a short-lived token for an anonymous client.
func (h *Handler) createSession(c echo.Context) error {
	clientID := uuid.NewString()

	token, expiresAt, err := h.Auth.GenerateClientToken(clientID)
	if err != nil {
		h.Logger.Error("Failed to generate client token",
			zap.String("client_id", clientID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "token_generation_failed",
			Message: "Failed to generate session token",
		})
	}

	return c.JSON(http.StatusOK, SessionResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		ClientID:  clientID,
	})
}

func (h *Handler) chat(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request format",
		})
	}
	if req.Message == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "missing_fields",
			Message: "Message is required",
		})
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = h.Chat.StartConversation().ID
	}

	reply, err := h.Chat.Send(c.Request().Context(), conversationID, req.Message)
	if err != nil {
		return h.consultationError(c, err)
	}

	return c.JSON(http.StatusOK, ChatResponse{
		ConversationID: conversationID,
		Reply:          reply,
	})
}

func (h *Handler) resetChat(c echo.Context) error {
	conversationID := c.Param("conversation")

	if err := h.Chat.Reset(conversationID); err != nil {
		return h.consultationError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) analyze(c echo.Context) error {
	var req AnalysisRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request format",
		})
	}

	imageData, err := base64.StdEncoding.DecodeString(req.ImageData)
	if err != nil || len(imageData) == 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_image",
			Message: "Image data must be non-empty base64",
		})
	}

	mimeType := req.MimeType
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	conversation, report, err := h.Analysis.Analyze(c.Request().Context(), imageData, mimeType)
	if err != nil {
		h.Logger.Error("Image analysis failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "analysis_failed",
			Message: "Failed to analyze image",
		})
	}

	return c.JSON(http.StatusOK, AnalysisResponse{
		ConversationID: conversation.ID,
		Report:         report,
	})
}

func (h *Handler) followUp(c echo.Context) error {
	conversationID := c.Param("conversation")

	var req FollowUpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request format",
		})
	}
	if req.Question == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "missing_fields",
			Message: "Question is required",
		})
	}

	reply, err := h.Analysis.FollowUp(c.Request().Context(), conversationID, req.Question)
	if err != nil {
		return h.consultationError(c, err)
	}

	return c.JSON(http.StatusOK, ChatResponse{
		ConversationID: conversationID,
		Reply:          reply,
	})
}

func (h *Handler) distributors(c echo.Context) error {
	var req DistributorsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request format",
		})
	}

	var places []entities.Place
	if req.Query == "" {
		places = h.Places.Default()
	} else {
		location := entities.LatLng{Latitude: req.Latitude, Longitude: req.Longitude}
		places = h.Places.Search(c.Request().Context(), req.Query, location)
	}

	return c.JSON(http.StatusOK, DistributorsResponse{Places: places})
}

func (h *Handler) speech(c echo.Context) error {
	var req SpeechRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request format",
		})
	}

	audio, err := h.Speech.Speak(c.Request().Context(), req.Text)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyText) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "missing_fields",
				Message: "Text is required",
			})
		}
		h.Logger.Error("Speech synthesis failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "synthesis_failed",
			Message: "Failed to synthesize speech",
		})
	}

	return c.JSON(http.StatusOK, SpeechResponse{
		AudioData:  base64.StdEncoding.EncodeToString(audio),
		SampleRate: playbackSampleRate,
	})
}

func (h *Handler) consultationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, usecase.ErrConversationNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "conversation_not_found",
			Message: "Unknown or expired conversation",
		})
	case errors.Is(err, usecase.ErrQuotaReached):
		return c.JSON(http.StatusTooManyRequests, ErrorResponse{
			Error:   "quota_reached",
			Message: "Consultation limit reached for this conversation",
		})
	default:
		h.Logger.Error("Consultation failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Unexpected server error",
		})
	}
}

// websocketWithAuth handles WebSocket connections with JWT authentication
func (h *Handler) websocketWithAuth(c echo.Context) error {
	// Browsers cannot set headers on WebSocket upgrades, so the token is
	// also accepted as a query parameter.
	var token string
	authHeader := c.Request().Header.Get("Authorization")
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		token = authHeader[7:]
	}
	if token == "" {
		token = c.QueryParam("token")
	}

	if token == "" {
		h.Logger.Warn("WebSocket connection rejected: missing token")
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "missing_token",
			Message: "JWT token is required",
		})
	}

	claims, err := h.Auth.ValidateToken(token)
	if err != nil {
		h.Logger.Warn("WebSocket connection rejected: invalid token", zap.Error(err))
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "invalid_token",
			Message: "Invalid or expired JWT token",
		})
	}

	if claims.Role != "client" {
		h.Logger.Warn("WebSocket connection rejected: invalid role",
			zap.String("role", claims.Role))
		return c.JSON(http.StatusForbidden, ErrorResponse{
			Error:   "invalid_role",
			Message: "Only client tokens are allowed for WebSocket connections",
		})
	}

	if claims.ClientID == "" {
		h.Logger.Error("WebSocket connection rejected: missing client ID in token")
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_token_claims",
			Message: "Client ID not found in token",
		})
	}

	h.Logger.Info("WebSocket connection authenticated",
		zap.String("client_id", claims.ClientID))

	return websocket.HandleWebSocket(h.Hub, c, claims.ClientID, h.Logger)
}
