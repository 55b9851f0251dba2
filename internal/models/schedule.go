package models

import (
	"salon-schedule/pkg/daykey"
)

// RawDayHours - запись рабочих часов в том виде, в каком ее отдает бэкенд.
// Флаг is_working в исторических данных может отсутствовать: такие записи
// созданы до появления флага и считаются рабочими.
type RawDayHours struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	IsWorking *bool  `json:"is_working,omitempty"`
}

// Hours приводит сырую запись к DayHours
func (r RawDayHours) Hours() DayHours {
	working := true
	if r.IsWorking != nil {
		working = *r.IsWorking
	}
	return DayHours{Start: r.Start, End: r.End, IsWorking: working}
}

// SchedulePayload - тело GET/PUT /employees/{id}/schedule.
// Ключи working_hours могут быть полным названием дня, двухбуквенным
// сокращением или цифровой строкой "0"-"7".
type SchedulePayload struct {
	WorkingHours map[string]RawDayHours `json:"working_hours"`
	TimeOff      []TimeOffException     `json:"time_off"`
}

// WeeklySchedule - недельный график одного сотрудника после нормализации.
// Raw хранит исходные ненормализованные ключи: отметка прихода по старым
// данным ищет день и по полному названию (legacy-совместимость).
type WeeklySchedule struct {
	EmployeeID int64
	Days       map[daykey.WeekDay]DayHours
	Raw        map[string]DayHours
	ShowSunday bool
}

// NewWeeklySchedule создает пустой график сотрудника
func NewWeeklySchedule(employeeID int64, showSunday bool) *WeeklySchedule {
	return &WeeklySchedule{
		EmployeeID: employeeID,
		Days:       map[daykey.WeekDay]DayHours{},
		Raw:        map[string]DayHours{},
		ShowSunday: showSunday,
	}
}

// Clone возвращает глубокую копию графика
func (w *WeeklySchedule) Clone() *WeeklySchedule {
	if w == nil {
		return nil
	}
	copied := NewWeeklySchedule(w.EmployeeID, w.ShowSunday)
	for day, hours := range w.Days {
		copied.Days[day] = hours.Clone()
	}
	for key, hours := range w.Raw {
		copied.Raw[key] = hours.Clone()
	}
	return copied
}

// Hours возвращает запись часов для дня недели
func (w *WeeklySchedule) Hours(day daykey.WeekDay) (DayHours, bool) {
	hours, ok := w.Days[day]
	return hours, ok
}

// WorkingDaysCount возвращает число рабочих дней в неделе
func (w *WeeklySchedule) WorkingDaysCount() int {
	count := 0
	for _, hours := range w.Days {
		if hours.IsWorking {
			count++
		}
	}
	return count
}
