package service

import (
	"context"

	"salon-schedule/internal/models"
	"salon-schedule/internal/repository"

	"github.com/sirupsen/logrus"
)

// Reconcile сверяет графики сотрудников с независимым фидом заработка:
// левое внешнее соединение по employee_id. Ведущая коллекция - графики:
// порядок и число строк результата повторяют их; заработок без графика
// отбрасывается, график без заработка получает нули.
func Reconcile(schedules []models.EmployeeScheduleRow, earnings []models.EarningsSummary) []models.CombinedRecord {
	byEmployee := make(map[int64]models.EarningsSummary, len(earnings))
	for _, summary := range earnings {
		byEmployee[summary.EmployeeID] = summary
	}

	combined := make([]models.CombinedRecord, 0, len(schedules))
	for _, row := range schedules {
		record := models.CombinedRecord{
			EmployeeID:   row.EmployeeID,
			EmployeeName: row.EmployeeName,
		}
		if summary, ok := byEmployee[row.EmployeeID]; ok {
			record.TotalEarnings = summary.TotalEarnings
			record.AppointmentsCount = summary.AppointmentsCount
		}
		combined = append(combined, record)
	}

	return combined
}

// EarningsReconciler загружает оба фида статистики и сверяет их в памяти.
// Объединенная запись нигде не сохраняется.
type EarningsReconciler struct {
	statsRepo repository.StatisticsRepository
	logger    *logrus.Logger
}

func NewEarningsReconciler(statsRepo repository.StatisticsRepository) *EarningsReconciler {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &EarningsReconciler{
		statsRepo: statsRepo,
		logger:    logger,
	}
}

// LoadCombined запрашивает графики и заработок и возвращает сверку
func (r *EarningsReconciler) LoadCombined(ctx context.Context) ([]models.CombinedRecord, error) {
	schedules, err := r.statsRepo.GetEmployeeSchedules(ctx)
	if err != nil {
		r.logger.WithError(err).Error("Failed to load employee schedules feed")
		return nil, err
	}

	earnings, err := r.statsRepo.GetEmployeeEarnings(ctx)
	if err != nil {
		r.logger.WithError(err).Error("Failed to load employee earnings feed")
		return nil, err
	}

	combined := Reconcile(schedules, earnings)

	r.logger.WithFields(logrus.Fields{
		"schedules": len(schedules),
		"earnings":  len(earnings),
		"combined":  len(combined),
	}).Debug("Employee earnings reconciled")

	return combined, nil
}
