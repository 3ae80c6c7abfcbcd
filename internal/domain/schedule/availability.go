package schedule

import (
	"time"

	"github.com/hartmannbarbearia/booking-api/internal/models"
)

const DefaultSlotIntervalMinutes = 30

// AvailabilityInput reúne tudo que o cálculo precisa. Now é injetado para
// manter a função determinística e testável.
type AvailabilityInput struct {
	Rule            *models.WorkingHoursRule
	Date            time.Time
	Interval        time.Duration
	ServiceDuration time.Duration
	Appointments    []models.Appointment
	Now             time.Time
	Policy          ConflictPolicy
}

// BuildDay enumera os slots da data e marca cada um como agendável ou não.
//
// Regras:
//   - sem regra para o weekday, regra fechada ou data já passada → dia
//     fechado (fail-closed, nunca erro);
//   - slots de largura fixa a partir de OpensAt enquanto início < ClosesAt;
//   - slot com início <= now é "past";
//   - slot dentro da pausa é "break";
//   - colisão com agendamento não cancelado é "busy" (ver ConflictPolicy).
func BuildDay(in AvailabilityInput) Day {
	rule := in.Rule
	if rule == nil || rule.IsClosed || rule.OpensAt == "" || rule.ClosesAt == "" {
		return Day{Closed: true, Slots: []Slot{}}
	}

	loc := in.Date.Location()
	dayStart := time.Date(in.Date.Year(), in.Date.Month(), in.Date.Day(), 0, 0, 0, 0, loc)

	today := time.Date(in.Now.Year(), in.Now.Month(), in.Now.Day(), 0, 0, 0, 0, in.Now.Location())
	if dayStart.Before(today) {
		return Day{Closed: true, Slots: []Slot{}}
	}

	opensAt := AtClock(dayStart, rule.OpensAt)
	closesAt := AtClock(dayStart, rule.ClosesAt)
	if !opensAt.Before(closesAt) {
		return Day{Closed: true, Slots: []Slot{}}
	}

	interval := in.Interval
	if interval <= 0 {
		interval = DefaultSlotIntervalMinutes * time.Minute
	}
	occupied := in.ServiceDuration
	if occupied <= 0 {
		occupied = interval
	}

	hasBreak := rule.BreakStart != "" && rule.BreakEnd != ""
	var breakStart, breakEnd time.Time
	if hasBreak {
		breakStart = AtClock(dayStart, rule.BreakStart)
		breakEnd = AtClock(dayStart, rule.BreakEnd)
	}

	slots := make([]Slot, 0, closesAt.Sub(opensAt)/interval+1)

	for cur := opensAt; cur.Before(closesAt); cur = cur.Add(interval) {
		slot := Slot{
			Start:    cur,
			End:      cur.Add(occupied),
			Bookable: true,
		}

		switch {
		case !cur.After(in.Now):
			slot.Bookable = false
			slot.Reason = ReasonPast

		case hasBreak && cur.Before(breakEnd) && slot.End.After(breakStart):
			slot.Bookable = false
			slot.Reason = ReasonBreak

		case conflicts(cur, slot.End, in.Appointments, in.Policy):
			slot.Bookable = false
			slot.Reason = ReasonBusy
		}

		slots = append(slots, slot)
	}

	return Day{Closed: false, Slots: slots}
}

func conflicts(start, end time.Time, appointments []models.Appointment, policy ConflictPolicy) bool {
	for _, ap := range appointments {
		if Status(ap.Status) == StatusCanceled {
			continue
		}
		if policy == ConflictExactStart {
			if ap.Date.Equal(start) {
				return true
			}
			continue
		}
		apEnd := ap.EndsAt
		if !apEnd.After(ap.Date) {
			apEnd = ap.Date.Add(DefaultSlotIntervalMinutes * time.Minute)
		}
		if start.Before(apEnd) && end.After(ap.Date) {
			return true
		}
	}
	return false
}

// WithinWorkingHours valida se [start, end) cabe no expediente do dia,
// respeitando a pausa. Regra ausente ou fechada → false (fail-closed).
func WithinWorkingHours(rule *models.WorkingHoursRule, start, end time.Time) bool {
	if rule == nil || rule.IsClosed || rule.OpensAt == "" || rule.ClosesAt == "" {
		return false
	}

	opensAt := AtClock(start, rule.OpensAt)
	closesAt := AtClock(start, rule.ClosesAt)

	if start.Before(opensAt) || end.After(closesAt) {
		return false
	}

	if rule.BreakStart != "" && rule.BreakEnd != "" {
		breakStart := AtClock(start, rule.BreakStart)
		breakEnd := AtClock(start, rule.BreakEnd)
		if start.Before(breakEnd) && end.After(breakStart) {
			return false
		}
	}

	return true
}

// AtClock projeta um horário "15:04" no dia de ref, no mesmo fuso.
func AtClock(ref time.Time, hm string) time.Time {
	t, _ := time.Parse("15:04", hm)
	return time.Date(
		ref.Year(), ref.Month(), ref.Day(),
		t.Hour(), t.Minute(), 0, 0,
		ref.Location(),
	)
}
