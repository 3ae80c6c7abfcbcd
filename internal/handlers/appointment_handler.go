package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hartmannbarbearia/booking-api/internal/httperr"
	"github.com/hartmannbarbearia/booking-api/internal/httpresp"
	"github.com/hartmannbarbearia/booking-api/internal/middleware"
	"github.com/hartmannbarbearia/booking-api/internal/usecase/booking"
)

// ======================================================
// APPOINTMENT HANDLER
// ======================================================

type AppointmentHandler struct {
	db           *gorm.DB
	createUC     *booking.CreateAppointment
	cancelUC     *booking.CancelAppointment
	confirmUC    *booking.ConfirmAppointment
	rescheduleUC *booking.RescheduleAppointment
	listMineUC   *booking.ListClientAppointments
	listDateUC   *booking.ListAppointmentsByDate
	listMonthUC  *booking.ListAppointmentsByMonth
}

func NewAppointmentHandler(
	db *gorm.DB,
	createUC *booking.CreateAppointment,
	cancelUC *booking.CancelAppointment,
	confirmUC *booking.ConfirmAppointment,
	rescheduleUC *booking.RescheduleAppointment,
	listMineUC *booking.ListClientAppointments,
	listDateUC *booking.ListAppointmentsByDate,
	listMonthUC *booking.ListAppointmentsByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:           db,
		createUC:     createUC,
		cancelUC:     cancelUC,
		confirmUC:    confirmUC,
		rescheduleUC: rescheduleUC,
		listMineUC:   listMineUC,
		listDateUC:   listDateUC,
		listMonthUC:  listMonthUC,
	}
}

// writeBookingError traduz BusinessError em status HTTP. Qualquer outro
// erro vira 500 genérico, sem vazar detalhe interno.
func writeBookingError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Erro interno. Tente novamente.")
		return
	}

	switch code {
	case "slot_taken":
		httperr.Conflict(c, code, "Esse horário acabou de ser preenchido. Escolha outro.")
	case "forbidden":
		httperr.Forbidden(c, code, "Você não tem permissão para essa operação.")
	case "appointment_not_found":
		httperr.NotFound(c, code, "Agendamento não encontrado.")
	case "service_not_found":
		httperr.BadRequest(c, code, "Serviço inválido ou inativo.")
	case "barber_not_found":
		httperr.BadRequest(c, code, "Profissional inválido.")
	case "shop_closed":
		httperr.BadRequest(c, code, "A barbearia não abre nesse dia.")
	case "outside_working_hours":
		httperr.BadRequest(c, code, "Horário fora do expediente.")
	case "too_soon":
		httperr.BadRequest(c, code, "Esse horário não tem a antecedência mínima.")
	case "invalid_state":
		httperr.Conflict(c, code, "O agendamento não permite mais essa operação.")
	case "invalid_date_or_time":
		httperr.BadRequest(c, code, "Data ou horário inválidos.")
	default:
		httperr.BadRequest(c, code, "Não foi possível completar a operação.")
	}
}

// ======================================================
// CREATE
// ======================================================

type CreateAppointmentRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string `json:"time" binding:"required"` // HH:mm
	Notes     string `json:"notes"`
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), booking.CreateAppointmentInput{
		ClientID:  userID,
		BarberID:  req.BarberID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
		Notes:     req.Notes,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// MINE
// ======================================================

func (h *AppointmentHandler) Mine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	list, err := h.listMineUC.Execute(c.Request.Context(), userID)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.List(c, list)
}

// ======================================================
// CANCEL / CONFIRM
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	id, err := parseIDParam(c, "id")
	if err != nil {
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), userID, role, id)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	id, err := parseIDParam(c, "id")
	if err != nil {
		return
	}

	ap, err := h.confirmUC.Execute(c.Request.Context(), userID, role, id)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// RESCHEDULE
// ======================================================

type RescheduleAppointmentRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	id, err := parseIDParam(c, "id")
	if err != nil {
		return
	}

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ap, err := h.rescheduleUC.Execute(c.Request.Context(), userID, role, booking.RescheduleAppointmentInput{
		AppointmentID: id,
		BarberID:      req.BarberID,
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		Time:          req.Time,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// STAFF: AGENDA DO DIA / DO MÊS
// ======================================================

// ListByDate é a agenda do profissional logado para um dia
// (?date=YYYY-MM-DD). Admin pode olhar a agenda de outro profissional
// via ?barber_id=.
func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	barberID, ok := resolveBarberScope(c, userID, role)
	if !ok {
		return
	}

	settings, ok := loadSettings(c, h.db)
	if !ok {
		return
	}

	date, err := parseDateInShop(settings, c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida. Use YYYY-MM-DD.")
		return
	}

	list, err := h.listDateUC.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.List(c, list)
}

// ListByMonth alimenta o calendário (?year=&month=).
func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	barberID, ok := resolveBarberScope(c, userID, role)
	if !ok {
		return
	}

	year, err1 := strconv.Atoi(c.Query("year"))
	month, err2 := strconv.Atoi(c.Query("month"))
	if err1 != nil || err2 != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_period", "Informe year e month válidos.")
		return
	}

	list, err := h.listMonthUC.Execute(c.Request.Context(), barberID, year, month)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.List(c, list)
}

// resolveBarberScope: barbeiro só enxerga a própria agenda; admin pode
// passar ?barber_id= para enxergar a de qualquer um.
func resolveBarberScope(c *gin.Context, userID uint, role string) (uint, bool) {
	raw := c.Query("barber_id")
	if raw == "" {
		return userID, true
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "barber_id inválido.")
		return 0, false
	}

	if uint(id) != userID && role != "admin" {
		httperr.Forbidden(c, "forbidden", "Você só pode ver a sua própria agenda.")
		return 0, false
	}

	return uint(id), true
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, err
	}
	return uint(id), nil
}
