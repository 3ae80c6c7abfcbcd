package schedule

import (
	"testing"
	"time"

	"github.com/hartmannbarbearia/booking-api/internal/models"
)

func mustLoadLoc(t *testing.T) *time.Location {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

// segunda-feira, expediente curto para os cenários: 09:00–12:00.
func mondayRule() *models.WorkingHoursRule {
	return &models.WorkingHoursRule{
		Weekday:  1,
		OpensAt:  "09:00",
		ClosesAt: "12:00",
	}
}

func monday(t *testing.T) time.Time {
	loc := mustLoadLoc(t)
	d := time.Date(2026, 9, 7, 0, 0, 0, 0, loc)
	if d.Weekday() != time.Monday {
		t.Fatalf("fixture is not a Monday: %v", d.Weekday())
	}
	return d
}

func buildInput(t *testing.T, now time.Time, appointments []models.Appointment) AvailabilityInput {
	return AvailabilityInput{
		Rule:            mondayRule(),
		Date:            monday(t),
		Interval:        30 * time.Minute,
		ServiceDuration: 30 * time.Minute,
		Appointments:    appointments,
		Now:             now,
		Policy:          ConflictInterval,
	}
}

func TestBuildDayAllFree(t *testing.T) {
	loc := mustLoadLoc(t)
	now := time.Date(2026, 9, 7, 8, 0, 0, 0, loc)

	day := BuildDay(buildInput(t, now, nil))

	if day.Closed {
		t.Fatalf("expected open day")
	}
	if len(day.Slots) != 6 {
		t.Fatalf("expected 6 slots, got %d", len(day.Slots))
	}
	for _, s := range day.Slots {
		if !s.Bookable {
			t.Fatalf("expected slot %s bookable, got reason %q", s.Start.Format("15:04"), s.Reason)
		}
	}
	if got := day.Slots[0].Start.Format("15:04"); got != "09:00" {
		t.Fatalf("first slot = %s, want 09:00", got)
	}
	if got := day.Slots[5].Start.Format("15:04"); got != "11:30" {
		t.Fatalf("last slot = %s, want 11:30", got)
	}
}

func TestBuildDaySlotsStayBeforeClose(t *testing.T) {
	loc := mustLoadLoc(t)
	now := time.Date(2026, 9, 7, 8, 0, 0, 0, loc)

	day := BuildDay(buildInput(t, now, nil))

	closesAt := AtClock(monday(t), "12:00")
	for _, s := range day.Slots {
		if !s.Start.Before(closesAt) {
			t.Fatalf("slot %s starts at/after closing", s.Start.Format("15:04"))
		}
	}
}

func TestBuildDayBusySlot(t *testing.T) {
	loc := mustLoadLoc(t)
	now := time.Date(2026, 9, 7, 8, 0, 0, 0, loc)
	busy := time.Date(2026, 9, 7, 10, 0, 0, 0, loc)

	appointments := []models.Appointment{{
		Date:   busy,
		EndsAt: busy.Add(30 * time.Minute),
		Status: string(StatusConfirmed),
	}}

	day := BuildDay(buildInput(t, now, appointments))

	for _, s := range day.Slots {
		if s.Start.Equal(busy) {
			if s.Bookable || s.Reason != ReasonBusy {
				t.Fatalf("10:00 should be busy, got bookable=%v reason=%q", s.Bookable, s.Reason)
			}
			continue
		}
		if !s.Bookable {
			t.Fatalf("slot %s should be free, got reason %q", s.Start.Format("15:04"), s.Reason)
		}
	}
}

func TestBuildDayCanceledDoesNotBlock(t *testing.T) {
	loc := mustLoadLoc(t)
	now := time.Date(2026, 9, 7, 8, 0, 0, 0, loc)
	busy := time.Date(2026, 9, 7, 10, 0, 0, 0, loc)

	appointments := []models.Appointment{{
		Date:   busy,
		EndsAt: busy.Add(30 * time.Minute),
		Status: string(StatusCanceled),
	}}

	day := BuildDay(buildInput(t, now, appointments))

	for _, s := range day.Slots {
		if !s.Bookable {
			t.Fatalf("canceled appointment blocked slot %s", s.Start.Format("15:04"))
		}
	}
}

// slots com início <= now ficam no passado; o que começa exatamente em
// now também não é agendável.
func TestBuildDayPastSlots(t *testing.T) {
	loc := mustLoadLoc(t)
	now := time.Date(2026, 9, 7, 9, 45, 0, 0, loc)

	day := BuildDay(buildInput(t, now, nil))

	want := map[string]Reason{
		"09:00": ReasonPast,
		"09:30": ReasonPast,
		"10:00": ReasonNone,
		"10:30": ReasonNone,
		"11:00": ReasonNone,
		"11:30": ReasonNone,
	}

	for _, s := range day.Slots {
		key := s.Start.Format("15:04")
		if s.Reason != want[key] {
			t.Fatalf("slot %s reason = %q, want %q", key, s.Reason, want[key])
		}
	}

	exact := BuildDay(buildInput(t, AtClock(monday(t), "10:00"), nil))
	for _, s := range exact.Slots {
		if s.Start.Format("15:04") == "10:00" && s.Bookable {
			t.Fatalf("slot starting exactly at now should not be bookable")
		}
	}
}

func TestBuildDayClosedRule(t *testing.T) {
	loc := mustLoadLoc(t)
	now := time.Date(2026, 9, 7, 8, 0, 0, 0, loc)

	in := buildInput(t, now, nil)
	in.Rule = &models.WorkingHoursRule{Weekday: 0, IsClosed: true}

	day := BuildDay(in)
	if !day.Closed || len(day.Slots) != 0 {
		t.Fatalf("closed weekday should produce closed day without slots")
	}
}

func TestBuildDayMissingRule(t *testing.T) {
	loc := mustLoadLoc(t)
	now := time.Date(2026, 9, 7, 8, 0, 0, 0, loc)

	in := buildInput(t, now, nil)
	in.Rule = nil

	day := BuildDay(in)
	if !day.Closed {
		t.Fatalf("missing rule should fail closed")
	}
}

func TestBuildDayPastDate(t *testing.T) {
	loc := mustLoadLoc(t)
	now := time.Date(2026, 9, 8, 8, 0, 0, 0, loc) // terça

	day := BuildDay(buildInput(t, now, nil)) // segunda, dia anterior
	if !day.Closed {
		t.Fatalf("past date should be a closed day")
	}
}

func TestBuildDayBreakWindow(t *testing.T) {
	loc := mustLoadLoc(t)
	now := time.Date(2026, 9, 7, 7, 0, 0, 0, loc)

	in := buildInput(t, now, nil)
	in.Rule = &models.WorkingHoursRule{
		Weekday:    1,
		OpensAt:    "09:00",
		ClosesAt:   "14:00",
		BreakStart: "12:00",
		BreakEnd:   "13:00",
	}

	day := BuildDay(in)

	for _, s := range day.Slots {
		key := s.Start.Format("15:04")
		inBreak := key == "12:00" || key == "12:30"
		if inBreak && s.Reason != ReasonBreak {
			t.Fatalf("slot %s should be break, got %q", key, s.Reason)
		}
		if !inBreak && s.Reason == ReasonBreak {
			t.Fatalf("slot %s wrongly marked as break", key)
		}
	}
}

// Serviço de 60min: na política de intervalo um agendamento 10:00–11:00
// também derruba o slot 09:30 (terminaria 10:30, em cima do ocupado).
func TestBuildDayIntervalPolicy(t *testing.T) {
	loc := mustLoadLoc(t)
	now := time.Date(2026, 9, 7, 7, 0, 0, 0, loc)
	busy := time.Date(2026, 9, 7, 10, 0, 0, 0, loc)

	appointments := []models.Appointment{{
		Date:   busy,
		EndsAt: busy.Add(60 * time.Minute),
		Status: string(StatusConfirmed),
	}}

	in := buildInput(t, now, appointments)
	in.ServiceDuration = 60 * time.Minute

	day := BuildDay(in)

	want := map[string]Reason{
		"09:00": ReasonNone,
		"09:30": ReasonBusy,
		"10:00": ReasonBusy,
		"10:30": ReasonBusy,
		"11:00": ReasonNone,
		"11:30": ReasonNone,
	}

	for _, s := range day.Slots {
		key := s.Start.Format("15:04")
		if s.Reason != want[key] {
			t.Fatalf("slot %s reason = %q, want %q", key, s.Reason, want[key])
		}
	}
}

func TestBuildDayExactStartPolicy(t *testing.T) {
	loc := mustLoadLoc(t)
	now := time.Date(2026, 9, 7, 7, 0, 0, 0, loc)
	busy := time.Date(2026, 9, 7, 10, 0, 0, 0, loc)

	appointments := []models.Appointment{{
		Date:   busy,
		EndsAt: busy.Add(60 * time.Minute),
		Status: string(StatusConfirmed),
	}}

	in := buildInput(t, now, appointments)
	in.ServiceDuration = 60 * time.Minute
	in.Policy = ConflictExactStart

	day := BuildDay(in)

	for _, s := range day.Slots {
		key := s.Start.Format("15:04")
		if key == "10:00" {
			if s.Reason != ReasonBusy {
				t.Fatalf("exact-start policy should block 10:00")
			}
			continue
		}
		if s.Reason == ReasonBusy {
			t.Fatalf("exact-start policy blocked %s", key)
		}
	}
}

// o cálculo é puro: mesma entrada, mesma saída.
func TestBuildDayDeterministic(t *testing.T) {
	loc := mustLoadLoc(t)
	now := time.Date(2026, 9, 7, 9, 45, 0, 0, loc)
	busy := time.Date(2026, 9, 7, 11, 0, 0, 0, loc)

	appointments := []models.Appointment{{
		Date:   busy,
		EndsAt: busy.Add(30 * time.Minute),
		Status: string(StatusPending),
	}}

	a := BuildDay(buildInput(t, now, appointments))
	b := BuildDay(buildInput(t, now, appointments))

	if len(a.Slots) != len(b.Slots) || a.Closed != b.Closed {
		t.Fatalf("two runs differ in shape")
	}
	// time.Time carrega o *Location: compara-se por instante, não por
	// identidade de struct.
	for i := range a.Slots {
		as, bs := a.Slots[i], b.Slots[i]
		if !as.Start.Equal(bs.Start) || !as.End.Equal(bs.End) ||
			as.Bookable != bs.Bookable || as.Reason != bs.Reason {
			t.Fatalf("slot %d differs between runs: %+v vs %+v", i, as, bs)
		}
	}
}

func TestWithinWorkingHours(t *testing.T) {
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	rule := &models.WorkingHoursRule{
		Weekday:    1,
		OpensAt:    "09:00",
		ClosesAt:   "18:00",
		BreakStart: "12:00",
		BreakEnd:   "13:00",
	}

	cases := []struct {
		name  string
		start string
		dur   time.Duration
		want  bool
	}{
		{"dentro do expediente", "09:00", 30 * time.Minute, true},
		{"antes de abrir", "08:30", 30 * time.Minute, false},
		{"termina depois de fechar", "17:45", 30 * time.Minute, false},
		{"encosta no fechamento", "17:30", 30 * time.Minute, true},
		{"dentro da pausa", "12:00", 30 * time.Minute, false},
		{"invade a pausa", "11:45", 30 * time.Minute, false},
		{"termina quando a pausa começa", "11:30", 30 * time.Minute, true},
	}

	for _, tc := range cases {
		start := AtClock(day, tc.start)
		got := WithinWorkingHours(rule, start, start.Add(tc.dur))
		if got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}

	if WithinWorkingHours(nil, day, day.Add(time.Hour)) {
		t.Fatalf("nil rule should fail closed")
	}
	if WithinWorkingHours(&models.WorkingHoursRule{IsClosed: true}, day, day.Add(time.Hour)) {
		t.Fatalf("closed rule should fail closed")
	}
}
