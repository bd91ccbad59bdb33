package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"unibridge.app/compass/common/logger"
	"unibridge.app/compass/internal/http/dto"
	"unibridge.app/compass/internal/model"
	"unibridge.app/compass/internal/service"
)

const (
	msgEmptyMessage  = "Message is required."
	msgCheckinFailed = "Temporarily unable to process your request."
)

type CheckinHandler struct {
	wellnessService service.WellnessService
}

func NewCheckinHandler(wellnessService service.WellnessService) *CheckinHandler {
	return &CheckinHandler{wellnessService: wellnessService}
}

// Checkin triages a wellness message. Triage augments, never gates,
// access to crisis resources: the client displays static hotline
// information regardless of the outcome here.
func (h *CheckinHandler) Checkin(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid checkin request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": msgEmptyMessage})
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgEmptyMessage})
		return
	}

	mood := model.NormalizeMood(req.Mood)

	decision, err := h.wellnessService.Triage(ctx, message, mood)
	if err != nil {
		slog.ErrorContext(ctx, "triage failed",
			"error", err, "message", logger.Truncate(message, 80))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgCheckinFailed})
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckinResponse(decision, service.ComposeReply(decision)))
}
