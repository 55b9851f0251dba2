package models

// EarningsSummary - сводка заработка сотрудника из независимого фида
// GET /statistics/employee-earnings
type EarningsSummary struct {
	EmployeeID        int64   `json:"employee_id"`
	TotalEarnings     float64 `json:"total_earnings"`
	AppointmentsCount int     `json:"appointments_count"`
}

// EmployeeScheduleRow - строка фида GET /statistics/employee-schedules.
// Ведущая коллекция при сверке с заработком.
type EmployeeScheduleRow struct {
	EmployeeID   int64                  `json:"employee_id"`
	EmployeeName string                 `json:"employee_name"`
	WorkingHours map[string]RawDayHours `json:"working_hours"`
}

// CombinedRecord - результат сверки графика и заработка по одному
// сотруднику. Существует только в памяти, никогда не сохраняется.
type CombinedRecord struct {
	EmployeeID        int64   `json:"employee_id"`
	EmployeeName      string  `json:"employee_name"`
	TotalEarnings     float64 `json:"total_earnings"`
	AppointmentsCount int     `json:"appointments_count"`
}
