package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hartmannbarbearia/booking-api/internal/cache"
	"github.com/hartmannbarbearia/booking-api/internal/middleware"
	"github.com/hartmannbarbearia/booking-api/internal/models"
	"github.com/hartmannbarbearia/booking-api/internal/storage"
	"github.com/hartmannbarbearia/booking-api/internal/timezone"
)

type SettingsHandler struct {
	db       *gorm.DB
	cache    cache.Cache
	uploader *storage.Uploader
}

func NewSettingsHandler(db *gorm.DB, c cache.Cache, up *storage.Uploader) *SettingsHandler {
	return &SettingsHandler{db: db, cache: c, uploader: up}
}

type SettingsUpdateRequest struct {
	Name                *string `json:"name"`
	Phone               *string `json:"phone"`
	Address             *string `json:"address"`
	Timezone            *string `json:"timezone"`
	SlotIntervalMinutes *int    `json:"slot_interval_minutes"`
	MinAdvanceMinutes   *int    `json:"min_advance_minutes"`
	AutoConfirm         *bool   `json:"auto_confirm"`
}

func (h *SettingsHandler) Get(c *gin.Context) {
	var settings models.ShopSettings
	if err := h.db.First(&settings, 1).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_settings"})
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req SettingsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var settings models.ShopSettings
	if err := h.db.First(&settings, 1).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_settings"})
		return
	}

	if req.Name != nil {
		settings.Name = *req.Name
	}
	if req.Phone != nil {
		settings.Phone = *req.Phone
	}
	if req.Address != nil {
		settings.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_timezone"})
			return
		}
		settings.Timezone = *req.Timezone
	}
	if req.SlotIntervalMinutes != nil {
		if *req.SlotIntervalMinutes < 5 || *req.SlotIntervalMinutes > 240 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_slot_interval"})
			return
		}
		settings.SlotIntervalMinutes = *req.SlotIntervalMinutes
	}
	if req.MinAdvanceMinutes != nil {
		if *req.MinAdvanceMinutes < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_min_advance"})
			return
		}
		settings.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}
	if req.AutoConfirm != nil {
		settings.AutoConfirm = *req.AutoConfirm
	}

	if err := h.db.Save(&settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_settings"})
		return
	}

	// intervalo/fuso mudam a grade, derruba a disponibilidade cacheada
	invalidateAvailability(c.Request.Context(), h.cache)

	writeAudit(h.db, &userID, "settings_updated", "shop_settings", &settings.ID, nil)

	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) UploadLogo(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	if !h.uploader.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage_not_configured"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_file"})
		return
	}
	defer file.Close()

	url, err := h.uploader.UploadImage(c.Request.Context(), file, "logos", 1024)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload_failed"})
		return
	}

	if err := h.db.Model(&models.ShopSettings{}).
		Where("id = ?", 1).
		Update("logo_url", url).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_settings"})
		return
	}

	writeAudit(h.db, &userID, "logo_updated", "shop_settings", nil, nil)

	c.JSON(http.StatusOK, gin.H{"logo_url": url})
}
