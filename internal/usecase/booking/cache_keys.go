package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/hartmannbarbearia/booking-api/internal/cache"
	"github.com/hartmannbarbearia/booking-api/internal/models"
)

// AvailabilityCacheKey identifica o resultado do cálculo para um
// profissional, data e serviço.
func AvailabilityCacheKey(barberID uint, date string, serviceID uint) string {
	return fmt.Sprintf("availability:%d:%s:%d", barberID, date, serviceID)
}

func availabilityCachePrefix(barberID uint, date string) string {
	return fmt.Sprintf("availability:%d:%s", barberID, date)
}

func invalidateFor(c cache.Cache, ap *models.Appointment) {
	if c == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = c.DeletePrefix(ctx, availabilityCachePrefix(ap.BarberID, ap.Date.Format("2006-01-02")))
}
