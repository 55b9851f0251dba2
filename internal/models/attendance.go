package models

import "time"

// Окно опоздания: отметка позже начала смены более чем на 15 минут
// считается опозданием. Константа фиксированная, не настраивается
// ни по сотруднику, ни по салону.
const LatenessGraceMinutes = 15

// AttendanceRecord - факт прихода сотрудника в конкретную дату.
// Создается ровно один раз на пару (сотрудник, дата) и после создания
// не изменяется; is_late вычисляется в момент создания.
type AttendanceRecord struct {
	EmployeeID  int64     `json:"employee_id"`
	Date        string    `json:"date"` // ГГГГ-ММ-ДД
	CheckinTime time.Time `json:"checkin_time"`
	IsLate      bool      `json:"is_late"`
}

// CheckinRequest - тело POST /statistics/checkin
type CheckinRequest struct {
	EmployeeID  int64  `json:"employeeId"`
	Date        string `json:"date"`
	CheckinTime string `json:"checkinTime"` // ISO-8601
}

// CheckinResponse - ответ POST /statistics/checkin
type CheckinResponse struct {
	Success     bool   `json:"success"`
	IsLate      *bool  `json:"is_late,omitempty"`
	CheckinTime string `json:"checkin_time"`
}
