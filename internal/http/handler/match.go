package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"unibridge.app/compass/internal/catalog"
	"unibridge.app/compass/internal/http/dto"
	"unibridge.app/compass/internal/service"
)

// User-visible failure messages. Deliberately generic: provider and
// catalog internals never leak to the caller.
const (
	msgNoOpportunities = "No active opportunities are available for matching."
	msgMatchFailed     = "Unable to rank opportunities right now."
)

type MatchHandler struct {
	matchService service.MatchService
	source       catalog.Source
	topN         int
}

func NewMatchHandler(matchService service.MatchService, source catalog.Source, topN int) *MatchHandler {
	if topN <= 0 {
		topN = 5
	}
	return &MatchHandler{matchService: matchService, source: source, topN: topN}
}

// Match ranks a catalog of opportunities against a student profile.
// When the payload carries no opportunities the live catalog is
// fetched; an empty catalog is rejected here, before the engine runs.
func (h *MatchHandler) Match(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid match request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opportunities := req.Opportunities
	if len(opportunities) == 0 {
		live, err := h.source.Active(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "live catalog fetch failed", "error", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": msgNoOpportunities})
			return
		}
		opportunities = live
	}
	if len(opportunities) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgNoOpportunities})
		return
	}

	profile, results, err := h.matchService.Rank(ctx, req.PartialProfile(), opportunities)
	if err != nil {
		slog.ErrorContext(ctx, "ranking failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgMatchFailed})
		return
	}

	c.JSON(http.StatusOK, dto.ToMatchResponse(profile, results, h.topN))
}
