package service

import (
	"salon-schedule/internal/models"

	"github.com/sirupsen/logrus"
)

// TimeOffRegister - список отгулов сотрудника на точные календарные даты.
// Не зависит от недельного шаблона. Записи не редактируются на месте:
// изменение причины выполняется через Remove и повторный Add.
// Дубликаты дат допускаются и не схлопываются.
type TimeOffRegister struct {
	entries []models.TimeOffException
	logger  *logrus.Logger
}

func NewTimeOffRegister() *TimeOffRegister {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &TimeOffRegister{
		entries: []models.TimeOffException{},
		logger:  logger,
	}
}

// Add добавляет отгул; пустая причина заменяется причиной по умолчанию
func (r *TimeOffRegister) Add(date, reason string) {
	entry := models.NewTimeOffException(date, reason)
	r.entries = append(r.entries, entry)

	r.logger.WithFields(logrus.Fields{
		"date":   entry.Date,
		"reason": entry.Reason,
	}).Info("Time off added")
}

// Remove удаляет все записи на дату (для remove-then-readd редактирования)
func (r *TimeOffRegister) Remove(date string) int {
	kept := r.entries[:0]
	removed := 0
	for _, entry := range r.entries {
		if entry.Date == date {
			removed++
			continue
		}
		kept = append(kept, entry)
	}
	r.entries = kept

	if removed > 0 {
		r.logger.WithFields(logrus.Fields{
			"date":    date,
			"removed": removed,
		}).Info("Time off removed")
	}
	return removed
}

// IsDayOff проверяет наличие отгула на точную дату
func (r *TimeOffRegister) IsDayOff(date string) bool {
	for _, entry := range r.entries {
		if entry.Date == date {
			return true
		}
	}
	return false
}

// ReasonFor возвращает причину первого отгула на дату
func (r *TimeOffRegister) ReasonFor(date string) (string, bool) {
	for _, entry := range r.entries {
		if entry.Date == date {
			return entry.Reason, true
		}
	}
	return "", false
}

// List возвращает копию всех записей в порядке добавления
func (r *TimeOffRegister) List() []models.TimeOffException {
	out := make([]models.TimeOffException, len(r.entries))
	copy(out, r.entries)
	return out
}

// Reset заменяет содержимое регистра (используется при загрузке графика)
func (r *TimeOffRegister) Reset(entries []models.TimeOffException) {
	r.entries = make([]models.TimeOffException, 0, len(entries))
	for _, entry := range entries {
		r.entries = append(r.entries, models.NewTimeOffException(entry.Date, entry.Reason))
	}
}
