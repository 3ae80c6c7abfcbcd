package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hartmannbarbearia/booking-api/internal/cache"
	"github.com/hartmannbarbearia/booking-api/internal/middleware"
	"github.com/hartmannbarbearia/booking-api/internal/models"
)

type WorkingHoursHandler struct {
	db    *gorm.DB
	cache cache.Cache
}

func NewWorkingHoursHandler(db *gorm.DB, c cache.Cache) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db, cache: c}
}

type WorkingDayConfig struct {
	Weekday    int    `json:"weekday" binding:"min=0,max=6"`
	IsClosed   bool   `json:"is_closed"`
	OpensAt    string `json:"opens_at"`
	ClosesAt   string `json:"closes_at"`
	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	var rules []models.WorkingHoursRule
	if err := h.db.
		Order("weekday ASC").
		Find(&rules).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_working_hours"})
		return
	}

	c.JSON(http.StatusOK, rules)
}

// Update substitui a grade da semana inteira. Invariantes: no máximo uma
// regra por weekday e, quando o dia está aberto, opens_at < closes_at.
func (h *WorkingHoursHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	seen := map[int]bool{}
	for _, d := range req.Days {
		if seen[d.Weekday] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duplicate_weekday"})
			return
		}
		seen[d.Weekday] = true

		if d.IsClosed {
			continue
		}

		opens, err1 := time.Parse("15:04", d.OpensAt)
		closes, err2 := time.Parse("15:04", d.ClosesAt)
		if err1 != nil || err2 != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_time_format"})
			return
		}
		if !opens.Before(closes) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "opens_must_precede_closes"})
			return
		}

		if d.BreakStart != "" || d.BreakEnd != "" {
			bs, err1 := time.Parse("15:04", d.BreakStart)
			be, err2 := time.Parse("15:04", d.BreakEnd)
			if err1 != nil || err2 != nil || !bs.Before(be) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_break_window"})
				return
			}
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.WorkingHoursRule{}).Error; err != nil {
			return err
		}

		var toCreate []models.WorkingHoursRule
		for _, d := range req.Days {
			toCreate = append(toCreate, models.WorkingHoursRule{
				Weekday:    d.Weekday,
				IsClosed:   d.IsClosed,
				OpensAt:    d.OpensAt,
				ClosesAt:   d.ClosesAt,
				BreakStart: d.BreakStart,
				BreakEnd:   d.BreakEnd,
			})
		}

		if len(toCreate) > 0 {
			return tx.Create(&toCreate).Error
		}
		return nil
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_working_hours"})
		return
	}

	// a grade mudou, toda disponibilidade cacheada ficou velha
	invalidateAvailability(c.Request.Context(), h.cache)

	writeAudit(h.db, &userID, "working_hours_updated", "working_hours", nil, nil)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
