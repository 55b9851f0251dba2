package models

// Причина отгула по умолчанию
const DefaultTimeOffReason = "Личные причины"

// TimeOffException - исключение-отгул на конкретную календарную дату.
// Не зависит от недельного шаблона: сравнение идет по точной дате,
// а не по дню недели.
type TimeOffException struct {
	Date   string `json:"date"` // ГГГГ-ММ-ДД
	Reason string `json:"reason"`
}

// NewTimeOffException создает исключение; пустая причина заменяется
// причиной по умолчанию
func NewTimeOffException(date, reason string) TimeOffException {
	if reason == "" {
		reason = DefaultTimeOffReason
	}
	return TimeOffException{Date: date, Reason: reason}
}
