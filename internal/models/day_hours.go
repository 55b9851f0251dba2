package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Форматы времени и даты, используемые бэкендом
const (
	TimeFormat = "15:04"      // ЧЧ:ММ
	DateFormat = "2006-01-02" // ГГГГ-ММ-ДД
)

// Рабочие часы по умолчанию для нового рабочего дня
const (
	DefaultStart = "09:00"
	DefaultEnd   = "18:00"
)

// Сентинель выходного дня: 00:00-00:00 с is_working=false.
// Именно такая запись, а не отсутствие записи, означает явный выходной -
// это важно для round-trip через мягкое чтение при загрузке.
const daySentinel = "00:00"

// DayHours - рабочие часы одного дня недели
type DayHours struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	IsWorking bool   `json:"is_working"`
}

// DayOff возвращает сентинельную запись выходного дня
func DayOff() DayHours {
	return DayHours{Start: daySentinel, End: daySentinel, IsWorking: false}
}

// DefaultWorkingDay возвращает запись рабочего дня с часами по умолчанию
func DefaultWorkingDay() DayHours {
	return DayHours{Start: DefaultStart, End: DefaultEnd, IsWorking: true}
}

// Validate проверяет инвариант записи: для рабочего дня обязательны
// оба времени и start < end. Нерабочий день обязан нести оба поля
// (сентинель), иначе запись не переживет мягкое чтение.
func (h DayHours) Validate() error {
	if h.Start == "" || h.End == "" {
		return fmt.Errorf("%w: отсутствует время начала или конца", ErrInvalidDayHours)
	}
	start, err := ParseClock(h.Start)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDayHours, err)
	}
	end, err := ParseClock(h.End)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDayHours, err)
	}
	if h.IsWorking && start >= end {
		return fmt.Errorf("%w: начало не раньше конца", ErrInvalidDayHours)
	}
	return nil
}

// StartMinutes возвращает время начала в минутах от полуночи
func (h DayHours) StartMinutes() (int, error) {
	return ParseClock(h.Start)
}

// EndMinutes возвращает время конца в минутах от полуночи
func (h DayHours) EndMinutes() (int, error) {
	return ParseClock(h.End)
}

// Clone возвращает независимую копию записи
func (h DayHours) Clone() DayHours {
	return DayHours{Start: h.Start, End: h.End, IsWorking: h.IsWorking}
}

// ParseClock парсит время "ЧЧ:ММ" в минуты от полуночи
func ParseClock(clock string) (int, error) {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("неверный формат времени %q, ожидается ЧЧ:ММ", clock)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("неверные часы в %q", clock)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("неверные минуты в %q", clock)
	}

	return hours*60 + minutes, nil
}

// FormatClock форматирует минуты от полуночи обратно в "ЧЧ:ММ"
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
