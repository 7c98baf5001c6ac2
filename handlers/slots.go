package handlers

import (
	"net/http"
	"strconv"

	vetRepo "vetbook/database/repository/vet"
	"vetbook/models"
	"vetbook/services/slots"
	"vetbook/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SlotHandler exposes the scheduling engine over HTTP.
type SlotHandler struct {
	Service slots.SlotService
	Vets    vetRepo.VetRepository
}

func NewSlotHandler(service slots.SlotService, vets vetRepo.VetRepository) *SlotHandler {
	return &SlotHandler{Service: service, Vets: vets}
}

// statusForCode maps domain error codes onto HTTP statuses.
func statusForCode(code string) int {
	switch code {
	case slots.CodeInvalidTimezone, slots.CodeInvalidDateRange, slots.CodePastDateRange,
		slots.CodeInvalidPeriod, slots.CodeInvalidStatus:
		return http.StatusBadRequest
	case slots.CodeSlotsAlreadyExist:
		return http.StatusConflict
	case slots.CodeVetNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func respondDomainError(c *gin.Context, err error) {
	logger := utils.GetLogger()
	code := slots.ErrCode(err)
	status := statusForCode(code)
	if status == http.StatusInternalServerError {
		logger.Error("Slot operation failed", zap.Error(err))
		c.JSON(status, gin.H{"error": "Slot operation failed", "code": code})
		return
	}
	logger.Warn("Slot operation rejected", zap.String("code", code), zap.Error(err))
	c.JSON(status, gin.H{"error": err.Error(), "code": code})
}

func (h *SlotHandler) GenerateSlotsHandler(c *gin.Context) {
	vetID := c.Param("id")

	var req slots.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GetLogger().Error("Invalid slot generation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	summary, err := h.Service.Generate(c.Request.Context(), vetID, req)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Slots generated successfully",
		"summary": summary,
	})
}

func (h *SlotHandler) AddPeriodHandler(c *gin.Context) {
	vetID := c.Param("id")

	var req slots.AddPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GetLogger().Error("Invalid period add request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	result, err := h.Service.AddPeriod(c.Request.Context(), vetID, req)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	// A zero-created overlap outcome is a soft conflict, still 200.
	c.JSON(http.StatusOK, gin.H{
		"message": "Period processed",
		"result":  result,
	})
}

func (h *SlotHandler) ReplaceScheduleHandler(c *gin.Context) {
	vetID := c.Param("id")
	if !callerOwnsVet(c, vetID) {
		return
	}

	var req slots.ReplaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GetLogger().Error("Invalid schedule replace request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	summary, err := h.Service.Replace(c.Request.Context(), vetID, req)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Schedule replaced successfully",
		"summary": summary,
	})
}

func (h *SlotHandler) ListSlotsHandler(c *gin.Context) {
	vetID := c.Param("id")

	params := slots.ListParams{
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Timezone:  c.Query("timezone"),
		Status:    models.SlotStatus(c.Query("status")),
		SortBy:    c.DefaultQuery("sortBy", "date"),
		SortOrder: c.DefaultQuery("sortOrder", "asc"),
		Search:    c.Query("search"),
	}
	params.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	params.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	page, err := h.Service.List(c.Request.Context(), vetID, params)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *SlotHandler) AvailableSlotsHandler(c *gin.Context) {
	vetID := c.Param("id")

	vet, err := h.Vets.GetByID(c.Request.Context(), vetID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vet not found"})
			return
		}
		utils.GetLogger().Error("Failed to load vet profile", zap.String("vetID", vetID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load vet profile"})
		return
	}

	rng := models.DateRange{
		Start: c.Query("startDate"),
		End:   c.Query("endDate"),
	}
	if rng.Start == "" || rng.End == "" {
		utils.JSONError(c, http.StatusBadRequest, "startDate and endDate are required", "both query parameters must be set")
		return
	}

	available, err := h.Service.AvailableRespectingNotice(
		c.Request.Context(), vetID, vet.NoticePeriod, rng, vet.Timezone)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"slots":        available,
		"noticePeriod": vet.NoticePeriod,
		"timezone":     vet.Timezone,
	})
}

func (h *SlotHandler) GroupedSlotsHandler(c *gin.Context) {
	vetID := c.Param("id")

	params := slots.ListParams{
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Status:    models.SlotStatus(c.Query("status")),
		SortBy:    "date",
		Page:      1,
		Limit:     1000,
	}
	page, err := h.Service.List(c.Request.Context(), vetID, params)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	groups := h.Service.GroupIntoPeriods(page.Slots)
	c.JSON(http.StatusOK, gin.H{"days": groups})
}

func (h *SlotHandler) BulkStatusHandler(c *gin.Context) {
	vetID := c.Param("id")
	if !callerOwnsVet(c, vetID) {
		return
	}

	var req slots.BulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GetLogger().Error("Invalid bulk status request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	modified, err := h.Service.SetStatuses(c.Request.Context(), vetID, req)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Slot statuses updated",
		"modified": modified,
	})
}

// callerOwnsVet enforces that the authenticated vet from the JWT middleware
// matches the vet named in the path.
func callerOwnsVet(c *gin.Context, vetID string) bool {
	callerValue, exists := c.Get("vetID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Vet not authenticated"})
		return false
	}
	caller, ok := callerValue.(string)
	if !ok || caller == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid vet ID in context"})
		return false
	}
	if caller != vetID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized for this vet"})
		return false
	}
	return true
}
