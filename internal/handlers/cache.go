package handlers

import (
	"context"

	"github.com/hartmannbarbearia/booking-api/internal/cache"
)

// invalidateAvailability derruba toda a disponibilidade cacheada. Qualquer
// mudança que altera a grade passa por aqui: expediente, configurações e
// duração/status de serviço.
func invalidateAvailability(ctx context.Context, c cache.Cache) {
	if c == nil {
		return
	}
	_ = c.DeletePrefix(ctx, "availability:")
}
