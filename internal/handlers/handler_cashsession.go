package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/mercapos/mercapos_backend/internal/apperrors"
	"github.com/mercapos/mercapos_backend/internal/core/domain"
	portssvc "github.com/mercapos/mercapos_backend/internal/core/ports/services"
	"github.com/mercapos/mercapos_backend/internal/dto"
	"github.com/mercapos/mercapos_backend/internal/middleware"
)

// cashSessionHandler handles HTTP requests for the cash drawer.
type cashSessionHandler struct {
	sessionService portssvc.CashSessionSvcFacade
}

// newCashSessionHandler creates a new cashSessionHandler.
func newCashSessionHandler(cs portssvc.CashSessionSvcFacade) *cashSessionHandler {
	return &cashSessionHandler{sessionService: cs}
}

// registerCashSessionRoutes registers routes related to drawer sessions.
func registerCashSessionRoutes(rg *gin.RouterGroup, sessionService portssvc.CashSessionSvcFacade) {
	h := newCashSessionHandler(sessionService)

	sessions := rg.Group("/cash-session")
	{
		sessions.POST("/open", h.openSession)
		sessions.GET("/current", h.currentSession)
		sessions.POST("/expense", h.recordExpense)
		sessions.POST("/withdrawal", h.recordWithdrawal)
		sessions.POST("/close", h.closeSession)
		sessions.GET("/history", h.listHistory)
	}
}

// openSession godoc
// @Summary Open the cash drawer
// @Description Starts a new drawer session with the counted opening float. Only one session may be open at a time.
// @Tags cash-session
// @Accept json
// @Produce json
// @Param session body dto.OpenSessionRequest true "Opening float"
// @Success 201 {object} dto.CashSessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "A session is already open"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cash-session/open [post]
func (h *cashSessionHandler) openSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetOwnerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	session, err := h.sessionService.OpenSession(c.Request.Context(), ownerID, userID, *req.InitialCash)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "A cash session is already open"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to open cash session", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to open cash session"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToCashSessionResponse(session))
}

// currentSession godoc
// @Summary Current drawer session
// @Description Returns the open session, or null when none is open.
// @Tags cash-session
// @Produce json
// @Success 200 {object} dto.CashSessionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cash-session/current [get]
func (h *cashSessionHandler) currentSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetOwnerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	session, err := h.sessionService.CurrentSession(c.Request.Context(), ownerID)
	if err != nil {
		logger.Error("Failed to load current session", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load current session"})
		return
	}
	if session == nil {
		// No open drawer is a normal state, not an error.
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, dto.ToCashSessionResponse(session))
}

// recordExpense godoc
// @Summary Record an expense
// @Description Records cash taken out of the open drawer to pay for something.
// @Tags cash-session
// @Accept json
// @Produce json
// @Param movement body dto.CreateMovementRequest true "Expense details"
// @Success 201 {object} dto.MovementResultResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "No open session"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cash-session/expense [post]
func (h *cashSessionHandler) recordExpense(c *gin.Context) {
	h.recordMovement(c, h.sessionService.RecordExpense)
}

// recordWithdrawal godoc
// @Summary Record a withdrawal
// @Description Records cash removed from the open drawer for the till or bank.
// @Tags cash-session
// @Accept json
// @Produce json
// @Param movement body dto.CreateMovementRequest true "Withdrawal details"
// @Success 201 {object} dto.MovementResultResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "No open session"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cash-session/withdrawal [post]
func (h *cashSessionHandler) recordWithdrawal(c *gin.Context) {
	h.recordMovement(c, h.sessionService.RecordWithdrawal)
}

// movementRecorder abstracts over expense and withdrawal recording, which
// share everything but the movement kind.
type movementRecorder func(ctx context.Context, ownerID domain.OwnerID, req dto.CreateMovementRequest) (*domain.CashMovement, decimal.Decimal, error)

func (h *cashSessionHandler) recordMovement(c *gin.Context, record movementRecorder) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetOwnerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	movement, expectedCash, err := record(c.Request.Context(), ownerID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "No cash session is open"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to record cash movement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record cash movement"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.MovementResultResponse{
		Movement:     dto.ToCashMovementResponse(movement),
		ExpectedCash: expectedCash,
	})
}

// closeSession godoc
// @Summary Close the cash drawer
// @Description Reconciles the drawer against the counted cash and closes the session. The variance is recorded, never rejected.
// @Tags cash-session
// @Accept json
// @Produce json
// @Param closing body dto.CloseSessionRequest true "Counted cash and closing notes"
// @Success 200 {object} dto.CashSessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "No open session"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cash-session/close [post]
func (h *cashSessionHandler) closeSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetOwnerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CloseSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	session, err := h.sessionService.CloseSession(c.Request.Context(), ownerID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "No cash session is open"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to close cash session", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to close cash session"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCashSessionResponse(session))
}

// listHistory godoc
// @Summary Session history
// @Description Lists closed sessions newest-closed-first.
// @Tags cash-session
// @Produce json
// @Param limit query int false "Maximum sessions to return (default 30)"
// @Success 200 {array} dto.CashSessionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cash-session/history [get]
func (h *cashSessionHandler) listHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := middleware.GetOwnerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	sessions, err := h.sessionService.ListSessionHistory(c.Request.Context(), ownerID, limit)
	if err != nil {
		logger.Error("Failed to list session history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list session history"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCashSessionResponse(sessions))
}
