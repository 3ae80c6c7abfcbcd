package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hartmannbarbearia/booking-api/internal/httperr"
	"github.com/hartmannbarbearia/booking-api/internal/models"
	"github.com/hartmannbarbearia/booking-api/internal/timezone"
)

// Todas as comparações de horário acontecem no relógio de parede da
// barbearia; não há conversão de fuso por usuário.

func locationFromSettings(settings *models.ShopSettings) *time.Location {
	if settings != nil {
		return timezone.Location(settings.Timezone)
	}
	return timezone.Location("")
}

func nowInShop(settings *models.ShopSettings) time.Time {
	return time.Now().In(locationFromSettings(settings))
}

// loadSettings carrega a linha única de configuração; em falha já
// responde 500 e devolve ok=false.
func loadSettings(c *gin.Context, db *gorm.DB) (*models.ShopSettings, bool) {
	var settings models.ShopSettings
	if err := db.First(&settings, 1).Error; err != nil {
		httperr.Internal(c, "settings_unavailable", "Erro ao carregar configurações.")
		return nil, false
	}
	return &settings, true
}

func parseDateInShop(settings *models.ShopSettings, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromSettings(settings),
	)
}
