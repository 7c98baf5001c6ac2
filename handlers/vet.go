package handlers

import (
	"net/http"
	"time"

	vetRepo "vetbook/database/repository/vet"
	"vetbook/models"
	"vetbook/services/timezone"
	"vetbook/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// VetHandler manages vet profile endpoints. Profiles supply the timezone and
// notice period the scheduling engine reads; everything else about accounts
// lives outside this service.
type VetHandler struct {
	Repo vetRepo.VetRepository
	TZ   *timezone.Service
}

func NewVetHandler(repo vetRepo.VetRepository, tz *timezone.Service) *VetHandler {
	return &VetHandler{Repo: repo, TZ: tz}
}

type createVetRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Timezone     string `json:"timezone" binding:"required"`
	NoticePeriod int    `json:"noticePeriod"`
}

func (h *VetHandler) CreateVetHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req createVetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid vet creation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	if !h.TZ.IsValidTimezone(req.Timezone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid timezone", "message": req.Timezone})
		return
	}
	if req.NoticePeriod < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "noticePeriod must not be negative"})
		return
	}

	vet := models.Vet{
		Name:         req.Name,
		Email:        req.Email,
		Timezone:     req.Timezone,
		NoticePeriod: req.NoticePeriod,
	}
	if err := h.Repo.Create(c.Request.Context(), &vet); err != nil {
		logger.Error("Failed to create vet", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vet"})
		return
	}
	c.JSON(http.StatusCreated, vet)
}

func (h *VetHandler) GetVetHandler(c *gin.Context) {
	id := c.Param("id")

	vet, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vet not found"})
			return
		}
		utils.GetLogger().Error("Failed to fetch vet", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch vet"})
		return
	}
	c.JSON(http.StatusOK, vet)
}

// LoginVetHandler issues a JWT for the vet. This is the authorization-context
// boundary only; real credential checks belong to the external account system.
func (h *VetHandler) LoginVetHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var body struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid email"})
		return
	}

	vet, err := h.Repo.GetByEmail(c.Request.Context(), body.Email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vet not found"})
			return
		}
		logger.Error("Failed to fetch vet for login", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	token, err := utils.GenerateToken(vet.ID, vet.Email, 24*time.Hour)
	if err != nil {
		logger.Error("Failed to sign token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}
	if err := h.Repo.UpdateTokenHash(c.Request.Context(), vet.ID, utils.HashToken(token)); err != nil {
		logger.Error("Failed to store token hash", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "vetId": vet.ID})
}
