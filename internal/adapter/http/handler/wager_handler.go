package handler

import (
	"context"
	"strconv"
	"time"

	"wager-tracker/internal/adapter/http/dto"
	"wager-tracker/internal/adapter/http/middleware"
	"wager-tracker/internal/core/domain"
	"wager-tracker/internal/core/ports"
	"wager-tracker/pkg/apperror"
	"wager-tracker/pkg/response"

	"github.com/gin-gonic/gin"
)

const defaultRecentWindow = 24 * time.Hour

// WagerHandler handles wager lifecycle endpoints.
type WagerHandler struct {
	wagerSvc ports.WagerService
}

// NewWagerHandler creates a new WagerHandler.
func NewWagerHandler(wagerSvc ports.WagerService) *WagerHandler {
	return &WagerHandler{wagerSvc: wagerSvc}
}

// Create handles POST /api/v1/wagers.
func (h *WagerHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req dto.CreateWagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.TrimStrings(&req)

	w, err := h.wagerSvc.Create(c.Request.Context(), ports.CreateWagerRequest{
		Maker:    actor,
		OutcomeA: req.OutcomeA,
		OutcomeB: req.OutcomeB,
		Label:    req.Label,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.WagerFromDomain(w))
}

// List handles GET /api/v1/wagers?view=active|recent&window=24h.
func (h *WagerHandler) List(c *gin.Context) {
	var (
		wagers []domain.Wager
		err    error
	)

	switch view := c.DefaultQuery("view", "active"); view {
	case "active":
		wagers, err = h.wagerSvc.ListActive(c.Request.Context())
	case "recent":
		window := defaultRecentWindow
		if raw := c.Query("window"); raw != "" {
			window, err = time.ParseDuration(raw)
			if err != nil {
				response.Error(c, apperror.Validation("invalid window: "+raw))
				return
			}
		}
		wagers, err = h.wagerSvc.ListRecent(c.Request.Context(), window)
	default:
		response.Error(c, apperror.Validation("view must be active or recent"))
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WagersFromDomain(wagers))
}

// Get handles GET /api/v1/wagers/:id.
func (h *WagerHandler) Get(c *gin.Context) {
	id, ok := wagerIDParam(c)
	if !ok {
		return
	}

	w, err := h.wagerSvc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WagerFromDomain(w))
}

// History handles GET /api/v1/wagers/:id/history.
func (h *WagerHandler) History(c *gin.Context) {
	id, ok := wagerIDParam(c)
	if !ok {
		return
	}

	events, err := h.wagerSvc.History(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.EventsFromDomain(events))
}

// SetOdds handles PUT /api/v1/wagers/:id/odds.
func (h *WagerHandler) SetOdds(c *gin.Context) {
	actor, id, ok := actorAndWager(c)
	if !ok {
		return
	}

	var req dto.OddsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	odds, err := oddsFromRequest(req)
	if err != nil {
		response.Error(c, err)
		return
	}

	w, err := h.wagerSvc.SetOdds(c.Request.Context(), actor, id, odds)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WagerFromDomain(w))
}

// Publish handles POST /api/v1/wagers/:id/publish.
func (h *WagerHandler) Publish(c *gin.Context) {
	actor, id, ok := actorAndWager(c)
	if !ok {
		return
	}

	var req dto.PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	w, err := h.wagerSvc.Publish(c.Request.Context(), actor, id, *req.Stake)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WagerFromDomain(w))
}

// EditTerms handles PUT /api/v1/wagers/:id/terms.
func (h *WagerHandler) EditTerms(c *gin.Context) {
	actor, id, ok := actorAndWager(c)
	if !ok {
		return
	}

	var req dto.EditTermsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	odds := domain.Odds{A: *req.OddsA, B: *req.OddsB}
	w, err := h.wagerSvc.EditTerms(c.Request.Context(), actor, id, odds, *req.Stake)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WagerFromDomain(w))
}

// Cancel handles POST /api/v1/wagers/:id/cancel.
func (h *WagerHandler) Cancel(c *gin.Context) {
	actor, id, ok := actorAndWager(c)
	if !ok {
		return
	}

	w, err := h.wagerSvc.Cancel(c.Request.Context(), actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WagerFromDomain(w))
}

// Accept handles POST /api/v1/wagers/:id/accept.
func (h *WagerHandler) Accept(c *gin.Context) {
	actor, id, ok := actorAndWager(c)
	if !ok {
		return
	}

	var req dto.AcceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	side, err := domain.ParseSide(req.Side)
	if err != nil {
		response.Error(c, apperror.ErrInvalidInput(err))
		return
	}

	w, err := h.wagerSvc.Accept(c.Request.Context(), actor, id, side)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WagerFromDomain(w))
}

// Settle handles POST /api/v1/wagers/:id/settle.
func (h *WagerHandler) Settle(c *gin.Context) {
	h.settle(c, h.wagerSvc.Settle)
}

// Resettle handles POST /api/v1/wagers/:id/resettle.
func (h *WagerHandler) Resettle(c *gin.Context) {
	h.settle(c, h.wagerSvc.Resettle)
}

type settleFunc func(ctx context.Context, actor domain.Actor, wagerID int64, result domain.Result) (*domain.Payout, error)

func (h *WagerHandler) settle(c *gin.Context, fn settleFunc) {
	actor, id, ok := actorAndWager(c)
	if !ok {
		return
	}

	var req dto.SettleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := domain.ParseResult(req.Result)
	if err != nil {
		response.Error(c, apperror.ErrInvalidInput(err))
		return
	}

	payout, err := fn(c.Request.Context(), actor, id, result)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.PayoutResponse{
		WagerID:     id,
		Result:      string(result),
		MakerPayout: payout.Maker,
		TakerPayout: payout.Taker,
	})
}

func oddsFromRequest(req dto.OddsRequest) (domain.Odds, error) {
	if req.Percent != nil {
		if req.OddsA != nil || req.OddsB != nil {
			return domain.Odds{}, apperror.Validation("Give either odds_a and odds_b or percent, not both")
		}
		odds, err := domain.OddsFromPercent(*req.Percent)
		if err != nil {
			return domain.Odds{}, apperror.ErrInvalidInput(err)
		}
		return odds, nil
	}
	if req.OddsA == nil || req.OddsB == nil {
		return domain.Odds{}, apperror.Validation("odds_a and odds_b are required")
	}
	return domain.Odds{A: *req.OddsA, B: *req.OddsB}, nil
}

// requireActor writes 401 when the request carries no authenticated actor.
func requireActor(c *gin.Context) (domain.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
	}
	return actor, ok
}

func wagerIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, apperror.Validation("invalid wager id"))
		return 0, false
	}
	return id, true
}

func actorAndWager(c *gin.Context) (domain.Actor, int64, bool) {
	actor, ok := requireActor(c)
	if !ok {
		return domain.Actor{}, 0, false
	}
	id, ok := wagerIDParam(c)
	return actor, id, ok
}
