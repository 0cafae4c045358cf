package handler

import (
	"strconv"
	"time"

	"wager-tracker/internal/adapter/http/dto"
	"wager-tracker/internal/core/domain"
	"wager-tracker/internal/core/ports"
	"wager-tracker/pkg/apperror"
	"wager-tracker/pkg/response"

	"github.com/gin-gonic/gin"
)

// StatsHandler handles ledger statistics endpoints.
type StatsHandler struct {
	statsSvc ports.StatisticsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsSvc ports.StatisticsService) *StatsHandler {
	return &StatsHandler{statsSvc: statsSvc}
}

// Standings handles GET /api/v1/stats?period=today|7d|30d|all.
func (h *StatsHandler) Standings(c *gin.Context) {
	period, err := domain.ParseStatsPeriod(c.Query("period"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidInput(err))
		return
	}

	standings, err := h.statsSvc.Standings(c.Request.Context(), period)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.StatisticsResponse, 0, len(standings))
	for _, s := range standings {
		items = append(items, dto.StatisticsFromDomain(s))
	}
	response.OK(c, items)
}

// Mine handles GET /api/v1/stats/me?from=&to= for the caller.
func (h *StatsHandler) Mine(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	h.statistics(c, actor.ID)
}

// Participant handles GET /api/v1/stats/participants/:id?from=&to=.
func (h *StatsHandler) Participant(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, apperror.Validation("invalid participant id"))
		return
	}
	h.statistics(c, id)
}

// Reset handles DELETE /api/v1/stats.
func (h *StatsHandler) Reset(c *gin.Context) {
	if _, ok := requireActor(c); !ok {
		return
	}

	n, err := h.statsSvc.Reset(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ResetResponse{Deleted: n})
}

func (h *StatsHandler) statistics(c *gin.Context, participantID int64) {
	from, ok := timeQuery(c, "from")
	if !ok {
		return
	}
	to, ok := timeQuery(c, "to")
	if !ok {
		return
	}

	stats, err := h.statsSvc.Statistics(c.Request.Context(), participantID, from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.StatisticsFromDomain(*stats)
	resp.ParticipantID = &participantID
	response.OK(c, resp)
}

// timeQuery parses an optional RFC 3339 query parameter.
func timeQuery(c *gin.Context, key string) (*time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		response.Error(c, apperror.Validation(key+" must be an RFC 3339 timestamp"))
		return nil, false
	}
	return &t, true
}
