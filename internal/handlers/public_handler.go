package handlers

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hartmannbarbearia/booking-api/internal/cache"
	"github.com/hartmannbarbearia/booking-api/internal/httperr"
	"github.com/hartmannbarbearia/booking-api/internal/httpresp"
	"github.com/hartmannbarbearia/booking-api/internal/models"
	"github.com/hartmannbarbearia/booking-api/internal/timezone"
	"github.com/hartmannbarbearia/booking-api/internal/usecase/booking"
)

// ======================================================
// PUBLIC HANDLER
// ======================================================
// Tudo aqui é acessível sem login: é o que a página de agendamento
// precisa antes de o cliente se autenticar.

const availabilityCacheTTL = 60 * time.Second

type PublicHandler struct {
	db             *gorm.DB
	cache          cache.Cache
	availabilityUC *booking.GetAvailability
}

func NewPublicHandler(
	db *gorm.DB,
	c cache.Cache,
	availabilityUC *booking.GetAvailability,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		cache:          c,
		availabilityUC: availabilityUC,
	}
}

// ======================================================
// CATÁLOGO
// ======================================================

func (h *PublicHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Where("active = ?", true).
		Order("name ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

type ProfessionalDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// ListProfessionals lista quem pode receber agendamento (barbeiros e o
// admin que também atende).
func (h *PublicHandler) ListProfessionals(c *gin.Context) {
	var users []models.User
	if err := h.db.
		Where("role IN ?", []string{models.RoleBarber, models.RoleAdmin}).
		Order("name ASC").
		Find(&users).Error; err != nil {

		httperr.Internal(c, "failed_to_list_professionals", "Erro ao listar profissionais.")
		return
	}

	out := make([]ProfessionalDTO, 0, len(users))
	for _, u := range users {
		out = append(out, ProfessionalDTO{
			ID:        u.ID,
			Name:      u.Name,
			AvatarURL: u.AvatarURL,
		})
	}

	httpresp.List(c, out)
}

// ======================================================
// INFO DA BARBEARIA
// ======================================================

type ShopInfoDTO struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	LogoURL  string `json:"logo_url"`
	Timezone string `json:"timezone"`
}

func (h *PublicHandler) ShopInfo(c *gin.Context) {
	settings, ok := loadSettings(c, h.db)
	if !ok {
		return
	}

	httpresp.OK(c, ShopInfoDTO{
		Name:     settings.Name,
		Phone:    settings.Phone,
		Address:  settings.Address,
		LogoURL:  settings.LogoURL,
		Timezone: settings.Timezone,
	})
}

// ======================================================
// DISPONIBILIDADE
// ======================================================

// Availability responde a grade de um dia:
// GET /availability?barber_id=&service_id=&date=YYYY-MM-DD
// O resultado vai para o cache por pouco tempo; qualquer agendamento,
// cancelamento ou remarcação derruba as chaves do profissional/dia.
func (h *PublicHandler) Availability(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Query("barber_id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "barber_id inválido.")
		return
	}

	serviceID, err := strconv.ParseUint(c.Query("service_id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "service_id inválido.")
		return
	}

	settings, ok := loadSettings(c, h.db)
	if !ok {
		return
	}

	dateStr := c.Query("date")
	date, err := parseDateInShop(settings, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida. Use YYYY-MM-DD.")
		return
	}

	key := booking.AvailabilityCacheKey(uint(barberID), dateStr, uint(serviceID))
	if cached, hit, _ := h.cache.Get(c.Request.Context(), key); hit {
		c.Data(200, "application/json; charset=utf-8", cached)
		return
	}

	day, err := h.availabilityUC.Execute(c.Request.Context(), booking.AvailabilityQuery{
		BarberID:  uint(barberID),
		ServiceID: uint(serviceID),
		Date:      date,
		Now:       timezone.NowIn(settings.Timezone),
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	if body, err := json.Marshal(day); err == nil {
		_ = h.cache.Set(c.Request.Context(), key, body, availabilityCacheTTL)
		c.Data(200, "application/json; charset=utf-8", body)
		return
	}

	httpresp.OK(c, day)
}
