package schedule

import (
	"testing"
	"time"

	"github.com/huaydee/lotto-admin-backend/internal/models"
)

func at(day, hour, min int) time.Time {
	return time.Date(2025, time.March, day, hour, min, 0, 0, time.UTC)
}

func TestIsOpenNoCloseTime(t *testing.T) {
	p := &models.LotteryProduct{ScheduleType: models.ScheduleWeekly}

	if IsOpen(p, at(10, 12, 0)) {
		t.Error("Expected product without closeTime to never be open")
	}
	if NextClose(p, at(10, 12, 0)) != nil {
		t.Error("Expected nil next close for product without closeTime")
	}
}

func TestIsOpenMalformedCloseTime(t *testing.T) {
	p := &models.LotteryProduct{ScheduleType: models.ScheduleWeekly, CloseTime: "soon"}

	if IsOpen(p, at(10, 12, 0)) {
		t.Error("Expected malformed closeTime to behave as perpetually closed")
	}
	if NextClose(p, at(10, 12, 0)) != nil {
		t.Error("Expected nil next close for malformed closeTime")
	}
}

func TestIsOpenDailyCutoff(t *testing.T) {
	p := &models.LotteryProduct{ScheduleType: models.ScheduleWeekly, CloseTime: "15:30"}

	if !IsOpen(p, at(10, 15, 29)) {
		t.Error("Expected open before the daily cutoff")
	}
	if IsOpen(p, at(10, 15, 30)) {
		t.Error("Expected closed at the exact cutoff instant")
	}
	if IsOpen(p, at(10, 16, 0)) {
		t.Error("Expected closed after the daily cutoff")
	}
	if !IsOpen(p, at(11, 0, 1)) {
		t.Error("Expected open again the following day")
	}
}

func TestIsOpenOvernightWindow(t *testing.T) {
	p := &models.LotteryProduct{
		ScheduleType: models.ScheduleWeekly,
		OpenTime:     "20:00",
		CloseTime:    "02:00",
	}

	if !IsOpen(p, at(10, 23, 0)) {
		t.Error("Expected open at 23:00 inside the overnight window")
	}
	if !IsOpen(p, at(10, 1, 0)) {
		t.Error("Expected open at 01:00 inside the overnight window")
	}
	if IsOpen(p, at(10, 10, 0)) {
		t.Error("Expected closed at 10:00 outside the overnight window")
	}
}

func TestIsOpenSameDayWindow(t *testing.T) {
	p := &models.LotteryProduct{
		ScheduleType: models.ScheduleWeekly,
		OpenTime:     "08:00",
		CloseTime:    "15:00",
	}

	if IsOpen(p, at(10, 7, 59)) {
		t.Error("Expected closed before the window opens")
	}
	if !IsOpen(p, at(10, 8, 0)) {
		t.Error("Expected open at the window start")
	}
	if IsOpen(p, at(10, 16, 0)) {
		t.Error("Expected closed after the window ends")
	}
}

func TestMonthlySchedule(t *testing.T) {
	p := &models.LotteryProduct{
		ScheduleType: models.ScheduleMonthly,
		CloseDates:   []int{1, 16},
		CloseTime:    "15:00",
	}

	// scheduled day, before cutoff
	if !IsOpen(p, at(1, 14, 0)) {
		t.Error("Expected open on a scheduled day before the cutoff")
	}
	next := NextClose(p, at(1, 14, 0))
	if next == nil || !next.Equal(at(1, 15, 0)) {
		t.Errorf("Expected next close on day 1 at 15:00, got %v", next)
	}

	// scheduled day, past cutoff
	if IsOpen(p, at(1, 16, 0)) {
		t.Error("Expected closed on a scheduled day past the cutoff")
	}
	next = NextClose(p, at(1, 16, 0))
	if next == nil || !next.Equal(at(16, 15, 0)) {
		t.Errorf("Expected next close on day 16 at 15:00, got %v", next)
	}

	// non-scheduled day: always open, selling the next round
	if !IsOpen(p, at(10, 3, 0)) {
		t.Error("Expected open on a non-scheduled day (advance purchase)")
	}
	if !IsOpen(p, at(10, 23, 0)) {
		t.Error("Expected open on a non-scheduled day at any hour")
	}
	next = NextClose(p, at(10, 23, 0))
	if next == nil || !next.Equal(at(16, 15, 0)) {
		t.Errorf("Expected next close on day 16 at 15:00, got %v", next)
	}
}

func TestMonthlyWrapToNextMonth(t *testing.T) {
	p := &models.LotteryProduct{
		ScheduleType: models.ScheduleMonthly,
		CloseDates:   []int{1, 16},
		CloseTime:    "15:00",
	}

	next := NextClose(p, at(16, 16, 0))
	want := time.Date(2025, time.April, 1, 15, 0, 0, 0, time.UTC)
	if next == nil || !next.Equal(want) {
		t.Errorf("Expected wrap to April 1 at 15:00, got %v", next)
	}
}

func TestMonthlyWrapAcrossYear(t *testing.T) {
	p := &models.LotteryProduct{
		ScheduleType: models.ScheduleMonthly,
		CloseDates:   []int{16},
		CloseTime:    "15:00",
	}

	now := time.Date(2025, time.December, 20, 10, 0, 0, 0, time.UTC)
	next := NextClose(p, now)
	want := time.Date(2026, time.January, 16, 15, 0, 0, 0, time.UTC)
	if next == nil || !next.Equal(want) {
		t.Errorf("Expected wrap into January of the next year, got %v", next)
	}
}

func TestDailyNextCloseRollsForward(t *testing.T) {
	p := &models.LotteryProduct{ScheduleType: models.ScheduleWeekly, CloseTime: "15:30"}

	next := NextClose(p, at(10, 12, 0))
	if next == nil || !next.Equal(at(10, 15, 30)) {
		t.Errorf("Expected today's close at 15:30, got %v", next)
	}

	// exactly at the close instant the target is already tomorrow
	next = NextClose(p, at(10, 15, 30))
	if next == nil || !next.Equal(at(11, 15, 30)) {
		t.Errorf("Expected tomorrow's close at 15:30, got %v", next)
	}
}

func TestResolverIsStateless(t *testing.T) {
	p := &models.LotteryProduct{ScheduleType: models.ScheduleWeekly, CloseTime: "15:30"}
	now := at(10, 12, 0)

	first := NextClose(p, now)
	for i := 0; i < 100; i++ {
		again := NextClose(p, now)
		if again == nil || !again.Equal(*first) {
			t.Fatalf("Expected identical result on repeated calls, got %v", again)
		}
	}
}
