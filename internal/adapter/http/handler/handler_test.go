package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wager-tracker/internal/adapter/http/middleware"
	"wager-tracker/internal/core/domain"
	"wager-tracker/internal/core/ports"
	"wager-tracker/internal/core/ports/mocks"
	"wager-tracker/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var (
	alice = domain.Actor{ID: 1001, Handle: "alice"}
	bob   = domain.Actor{ID: 1002, Handle: "bob"}
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	v := dec(s)
	return &v
}

func sampleWager(status domain.WagerStatus) *domain.Wager {
	return &domain.Wager{
		ID:           7,
		MakerID:      alice.ID,
		MakerHandle:  "alice",
		TakerHandle:  "bob",
		OutcomeAName: "Team1",
		OutcomeBName: "Team2",
		OddsA:        decPtr("1.50"),
		OddsB:        decPtr("2.40"),
		Stake:        decPtr("1000"),
		Status:       status,
		MakerPayout:  decimal.Zero,
		TakerPayout:  decimal.Zero,
		CreatedAt:    time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

// newContext builds a test context with an optional actor, route id and JSON body.
func newContext(method, id string, actor *domain.Actor, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	var raw []byte
	if body != nil {
		if s, ok := body.(string); ok {
			raw = []byte(s)
		} else {
			raw, _ = json.Marshal(body)
		}
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/", bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	if id != "" {
		c.Params = gin.Params{{Key: "id", Value: id}}
	}
	if actor != nil {
		c.Set(middleware.CtxActor, *actor)
	}
	return c, w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %s", w.Body.String())
	return data
}

func decodeErrorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	code, _ := resp["error_code"].(string)
	return code
}

// --- Wager Handler Tests ---

func TestCreateWager_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWagerService(ctrl)
	h := NewWagerHandler(mockSvc)

	draft := sampleWager(domain.WagerStatusDraft)
	draft.OddsA, draft.OddsB, draft.Stake = nil, nil, nil
	mockSvc.EXPECT().Create(gomock.Any(), ports.CreateWagerRequest{
		Maker:    alice,
		OutcomeA: "Team1",
		OutcomeB: "Team2",
	}).Return(draft, nil)

	c, w := newContext(http.MethodPost, "", &alice, map[string]string{"outcome_a": " Team1 ", "outcome_b": "Team2"})
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, float64(7), data["id"])
	assert.Equal(t, "DRAFT", data["status"])
	assert.Equal(t, "Team1 vs Team2", data["title"])
	assert.NotContains(t, data, "stake")
}

func TestCreateWager_MissingOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewWagerHandler(mocks.NewMockWagerService(ctrl))

	c, w := newContext(http.MethodPost, "", &alice, map[string]string{"outcome_a": "Team1"})
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperror.CodeInvalidInput, decodeErrorCode(t, w))
}

func TestCreateWager_NoActor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewWagerHandler(mocks.NewMockWagerService(ctrl))

	c, w := newContext(http.MethodPost, "", nil, map[string]string{"outcome_a": "A", "outcome_b": "B"})
	h.Create(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateWager_AccessDenied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWagerService(ctrl)
	h := NewWagerHandler(mockSvc)

	carol := domain.Actor{ID: 1003, Handle: "carol"}
	mockSvc.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrAccessDenied("Only registered participants can create wagers"))

	c, w := newContext(http.MethodPost, "", &carol, map[string]string{"outcome_a": "A", "outcome_b": "B"})
	h.Create(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, apperror.CodeAccessDenied, decodeErrorCode(t, w))
}

func TestSetOdds_Decimal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWagerService(ctrl)
	h := NewWagerHandler(mockSvc)

	mockSvc.EXPECT().SetOdds(gomock.Any(), alice, int64(7), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Actor, _ int64, odds domain.Odds) (*domain.Wager, error) {
			assert.True(t, odds.A.Equal(dec("1.5")))
			assert.True(t, odds.B.Equal(dec("2.4")))
			return sampleWager(domain.WagerStatusDraft), nil
		})

	c, w := newContext(http.MethodPut, "7", &alice, `{"odds_a": 1.50, "odds_b": "2.40"}`)
	h.SetOdds(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetOdds_FromPercent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWagerService(ctrl)
	h := NewWagerHandler(mockSvc)

	mockSvc.EXPECT().SetOdds(gomock.Any(), alice, int64(7), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Actor, _ int64, odds domain.Odds) (*domain.Wager, error) {
			assert.True(t, odds.A.Equal(dec("2.5")))
			assert.True(t, odds.B.Equal(dec("1.67")))
			return sampleWager(domain.WagerStatusDraft), nil
		})

	c, w := newContext(http.MethodPut, "7", &alice, `{"percent": 40}`)
	h.SetOdds(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetOdds_BothForms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewWagerHandler(mocks.NewMockWagerService(ctrl))

	c, w := newContext(http.MethodPut, "7", &alice, `{"percent": 40, "odds_a": 2}`)
	h.SetOdds(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetOdds_PercentOutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewWagerHandler(mocks.NewMockWagerService(ctrl))

	c, w := newContext(http.MethodPut, "7", &alice, `{"percent": 100}`)
	h.SetOdds(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPublish_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWagerService(ctrl)
	h := NewWagerHandler(mockSvc)

	mockSvc.EXPECT().Publish(gomock.Any(), alice, int64(7), gomock.Any()).
		Return(sampleWager(domain.WagerStatusOpen), nil)

	c, w := newContext(http.MethodPost, "7", &alice, `{"stake": 1000}`)
	h.Publish(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "OPEN", data["status"])
	assert.Equal(t, "bob", data["taker_handle"])
}

func TestPublish_MissingStake(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewWagerHandler(mocks.NewMockWagerService(ctrl))

	c, w := newContext(http.MethodPost, "7", &alice, `{}`)
	h.Publish(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPublish_InvalidState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWagerService(ctrl)
	h := NewWagerHandler(mockSvc)

	mockSvc.EXPECT().Publish(gomock.Any(), alice, int64(7), gomock.Any()).
		Return(nil, apperror.ErrInvalidState("Odds must be set before publishing"))

	c, w := newContext(http.MethodPost, "7", &alice, `{"stake": 1000}`)
	h.Publish(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, apperror.CodeInvalidState, decodeErrorCode(t, w))
}

func TestEditTerms_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWagerService(ctrl)
	h := NewWagerHandler(mockSvc)

	mockSvc.EXPECT().EditTerms(gomock.Any(), alice, int64(7), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Actor, _ int64, odds domain.Odds, stake decimal.Decimal) (*domain.Wager, error) {
			assert.True(t, odds.A.Equal(dec("1.8")))
			assert.True(t, stake.Equal(dec("1500")))
			return sampleWager(domain.WagerStatusOpen), nil
		})

	c, w := newContext(http.MethodPut, "7", &alice, `{"odds_a": 1.8, "odds_b": 2.1, "stake": 1500}`)
	h.EditTerms(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCancel_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewWagerHandler(mocks.NewMockWagerService(ctrl))

	c, w := newContext(http.MethodPost, "abc", &alice, nil)
	h.Cancel(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancel_Taken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWagerService(ctrl)
	h := NewWagerHandler(mockSvc)

	mockSvc.EXPECT().Cancel(gomock.Any(), alice, int64(7)).
		Return(nil, apperror.ErrInvalidState("Only an open wager can be canceled"))

	c, w := newContext(http.MethodPost, "7", &alice, nil)
	h.Cancel(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAccept_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWagerService(ctrl)
	h := NewWagerHandler(mockSvc)

	taken := sampleWager(domain.WagerStatusTaken)
	side := domain.SideA
	taken.ChosenSide = &side
	taken.TakerID = &bob.ID
	mockSvc.EXPECT().Accept(gomock.Any(), bob, int64(7), domain.SideA).Return(taken, nil)

	c, w := newContext(http.MethodPost, "7", &bob, map[string]string{"side": "a"})
	h.Accept(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "TAKEN", data["status"])
	assert.Equal(t, "A", data["chosen_side"])
}

func TestAccept_InvalidSide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewWagerHandler(mocks.NewMockWagerService(ctrl))

	c, w := newContext(http.MethodPost, "7", &bob, map[string]string{"side": "C"})
	h.Accept(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSettle_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWagerService(ctrl)
	h := NewWagerHandler(mockSvc)

	mockSvc.EXPECT().Settle(gomock.Any(), bob, int64(7), domain.ResultA).
		Return(&domain.Payout{Maker: dec("-500"), Taker: dec("500")}, nil)

	c, w := newContext(http.MethodPost, "7", &bob, map[string]string{"result": "A"})
	h.Settle(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "A", data["outcome_result"])
	assert.Equal(t, "-500", data["maker_payout"])
	assert.Equal(t, "500", data["taker_payout"])
}

func TestResettle_Void(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWagerService(ctrl)
	h := NewWagerHandler(mockSvc)

	mockSvc.EXPECT().Resettle(gomock.Any(), alice, int64(7), domain.ResultVoid).
		Return(&domain.Payout{Maker: decimal.Zero, Taker: decimal.Zero}, nil)

	c, w := newContext(http.MethodPost, "7", &alice, map[string]string{"result": "void"})
	h.Resettle(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "VOID", data["outcome_result"])
}

func TestSettle_InvalidResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewWagerHandler(mocks.NewMockWagerService(ctrl))

	c, w := newContext(http.MethodPost, "7", &alice, map[string]string{"result": "DRAW"})
	h.Settle(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetWager_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWagerService(ctrl)
	h := NewWagerHandler(mockSvc)

	mockSvc.EXPECT().Get(gomock.Any(), int64(99)).Return(nil, apperror.ErrWagerNotFound())

	c, w := newContext(http.MethodGet, "99", &alice, nil)
	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apperror.CodeNotFound, decodeErrorCode(t, w))
}

func TestListWagers_ActiveDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWagerService(ctrl)
	h := NewWagerHandler(mockSvc)

	mockSvc.EXPECT().ListActive(gomock.Any()).Return([]domain.Wager{
		*sampleWager(domain.WagerStatusTaken),
		*sampleWager(domain.WagerStatusOpen),
	}, nil)

	c, w := newContext(http.MethodGet, "", &alice, nil)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp["data"], 2)
}

func TestListWagers_RecentWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWagerService(ctrl)
	h := NewWagerHandler(mockSvc)

	mockSvc.EXPECT().ListRecent(gomock.Any(), 48*time.Hour).Return(nil, nil)

	c, w := newContext(http.MethodGet, "", &alice, nil)
	c.Request = httptest.NewRequest(http.MethodGet, "/?view=recent&window=48h", nil)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []interface{}{}, resp["data"])
}

func TestListWagers_BadView(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewWagerHandler(mocks.NewMockWagerService(ctrl))

	c, w := newContext(http.MethodGet, "", &alice, nil)
	c.Request = httptest.NewRequest(http.MethodGet, "/?view=everything", nil)
	h.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHistory_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWagerService(ctrl)
	h := NewWagerHandler(mockSvc)

	mockSvc.EXPECT().History(gomock.Any(), int64(7)).Return([]domain.WagerEvent{
		{ID: 1, WagerID: 7, Action: domain.WagerActionSettle, ActorHandle: "bob", Details: `{"result":"A"}`},
		{ID: 2, WagerID: 7, Action: domain.WagerActionResettle, ActorHandle: "alice", Details: `{"result":"B"}`},
	}, nil)

	c, w := newContext(http.MethodGet, "7", &alice, nil)
	h.History(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "RESETTLE", resp.Data[1]["action"])
}

// --- Stats Handler Tests ---

func TestStandings_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockStatisticsService(ctrl)
	h := NewStatsHandler(mockSvc)

	mockSvc.EXPECT().Standings(gomock.Any(), domain.PeriodWeek).Return([]domain.Statistics{
		{Handle: "alice", Balance: dec("500"), Count: 1, Wins: 1},
		{Handle: "bob", Balance: dec("-500"), Count: 1, Losses: 1},
	}, nil)

	c, w := newContext(http.MethodGet, "", &alice, nil)
	c.Request = httptest.NewRequest(http.MethodGet, "/?period=7d", nil)
	h.Standings(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "500", resp.Data[0]["balance"])
}

func TestStandings_BadPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewStatsHandler(mocks.NewMockStatisticsService(ctrl))

	c, w := newContext(http.MethodGet, "", &alice, nil)
	c.Request = httptest.NewRequest(http.MethodGet, "/?period=year", nil)
	h.Standings(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMine_WithRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockStatisticsService(ctrl)
	h := NewStatsHandler(mockSvc)

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mockSvc.EXPECT().Statistics(gomock.Any(), alice.ID, &from, gomock.Nil()).
		Return(&domain.Statistics{Balance: dec("250.5"), Count: 2, Wins: 1, Losses: 1}, nil)

	c, w := newContext(http.MethodGet, "", &alice, nil)
	c.Request = httptest.NewRequest(http.MethodGet, "/?from=2024-01-01T00:00:00Z", nil)
	h.Mine(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "250.5", data["balance"])
	assert.Equal(t, float64(alice.ID), data["participant_id"])
	assert.Equal(t, float64(2), data["count"])
}

func TestParticipant_BadTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewStatsHandler(mocks.NewMockStatisticsService(ctrl))

	c, w := newContext(http.MethodGet, "1002", &alice, nil)
	c.Request = httptest.NewRequest(http.MethodGet, "/?to=yesterday", nil)
	h.Participant(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReset_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockStatisticsService(ctrl)
	h := NewStatsHandler(mockSvc)

	mockSvc.EXPECT().Reset(gomock.Any()).Return(int64(4), nil)

	c, w := newContext(http.MethodDelete, "", &alice, nil)
	h.Reset(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(4), decodeData(t, w)["deleted"])
}

// --- Health Check Tests ---

func TestHealthCheck_AllHealthy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pg := mocks.NewMockHealthChecker(ctrl)
	pg.EXPECT().Ping(gomock.Any()).Return(nil)
	pg.EXPECT().Name().Return("postgresql").AnyTimes()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck(pg)(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}

func TestHealthCheck_Degraded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pg := mocks.NewMockHealthChecker(ctrl)
	pg.EXPECT().Ping(gomock.Any()).Return(nil)
	pg.EXPECT().Name().Return("postgresql").AnyTimes()
	rd := mocks.NewMockHealthChecker(ctrl)
	rd.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
	rd.EXPECT().Name().Return("redis").AnyTimes()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck(pg, rd)(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp["status"])
	deps := resp["dependencies"].(map[string]interface{})
	assert.Equal(t, "unhealthy", deps["redis"].(map[string]interface{})["status"])
}

// --- Router Tests ---

func TestRouter_RequiresToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := SetupRouter(RouterDeps{
		WagerSvc: mocks.NewMockWagerService(ctrl),
		StatsSvc: mocks.NewMockStatisticsService(ctrl),
		TokenSvc: mocks.NewMockTokenService(ctrl),
		Logger:   zerolog.Nop(),
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/wagers", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
}

func TestRouter_SettleFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wagerSvc := mocks.NewMockWagerService(ctrl)
	tokenSvc := mocks.NewMockTokenService(ctrl)

	tokenSvc.EXPECT().Validate("bob-token").Return(&bob, nil)
	wagerSvc.EXPECT().Settle(gomock.Any(), bob, int64(7), domain.ResultB).
		Return(&domain.Payout{Maker: dec("1000"), Taker: dec("-1000")}, nil)

	r := SetupRouter(RouterDeps{
		WagerSvc: wagerSvc,
		StatsSvc: mocks.NewMockStatisticsService(ctrl),
		TokenSvc: tokenSvc,
		Logger:   zerolog.Nop(),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/wagers/7/settle", bytes.NewReader([]byte(`{"result":"B"}`)))
	req.Header.Set("Authorization", "Bearer bob-token")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "-1000", data["taker_payout"])
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("wager_transitions_total 0\n"))
	})

	r := SetupRouter(RouterDeps{
		WagerSvc: mocks.NewMockWagerService(ctrl),
		StatsSvc: mocks.NewMockStatisticsService(ctrl),
		TokenSvc: mocks.NewMockTokenService(ctrl),
		Metrics:  metrics,
		Logger:   zerolog.Nop(),
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "wager_transitions_total")
}
