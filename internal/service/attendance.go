package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"salon-schedule/internal/models"
	"salon-schedule/internal/repository"
	"salon-schedule/pkg/daykey"

	"github.com/sirupsen/logrus"
)

// AttendanceTracker записывает фактические приходы сотрудников,
// сверяя их с объявленным недельным графиком, и вычисляет опоздания.
type AttendanceTracker struct {
	statsRepo repository.StatisticsRepository
	syncer    *SyncCoordinator
	logger    *logrus.Logger

	// Запись на пару (сотрудник, дата) создается один раз и неизменна
	records map[string]*models.AttendanceRecord
}

func NewAttendanceTracker(statsRepo repository.StatisticsRepository, syncer *SyncCoordinator) *AttendanceTracker {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &AttendanceTracker{
		statsRepo: statsRepo,
		syncer:    syncer,
		logger:    logger,
		records:   map[string]*models.AttendanceRecord{},
	}
}

func recordKey(employeeID int64, date string) string {
	return fmt.Sprintf("%d|%s", employeeID, date)
}

// CheckIn отмечает приход сотрудника в дату date в момент now.
// День ищется сначала по каноническому числовому ключу, затем по
// полному названию дня в сырых данных - исторически бэкенд смешивал
// оба представления для одного сотрудника. Если сотрудник в этот день
// не работает, отметка не создается и возвращается NotScheduled.
func (t *AttendanceTracker) CheckIn(ctx context.Context, schedule *models.WeeklySchedule, date time.Time, now time.Time) (*models.AttendanceRecord, error) {
	employeeID := schedule.EmployeeID
	dateStr := date.Format(models.DateFormat)

	// Повторная отметка за ту же дату отклоняется до любых
	// обращений к сети: запись неизменна после создания.
	if _, ok := t.records[recordKey(employeeID, dateStr)]; ok {
		t.logger.WithFields(logrus.Fields{
			"employee_id": employeeID,
			"date":        dateStr,
		}).Warn("Duplicate check-in attempt rejected")
		return nil, fmt.Errorf("%w: сотрудник уже отмечался %s", models.ErrAlreadyCheckedIn, dateStr)
	}

	day, err := daykey.FromInt(int(date.Weekday()))
	if err != nil {
		return nil, err
	}

	hours, found := schedule.Days[day]
	if !found {
		// Legacy-совместимость: старые данные могли сохранить день
		// только под полным названием, в произвольном регистре
		for key, raw := range schedule.Raw {
			if strings.EqualFold(key, day.String()) {
				hours = raw
				found = true
				break
			}
		}
	}

	if !found || !hours.IsWorking || hours.Start == "" || hours.End == "" {
		t.logger.WithFields(logrus.Fields{
			"employee_id": employeeID,
			"date":        dateStr,
			"day":         day.String(),
		}).Warn("Check-in rejected: employee not scheduled")
		return nil, fmt.Errorf("%w: %s не входит в график сотрудника", models.ErrNotScheduled, day.String())
	}

	startMinutes, err := hours.StartMinutes()
	if err != nil {
		return nil, fmt.Errorf("%w: некорректное время начала смены", models.ErrNotScheduled)
	}

	scheduledStart := time.Date(date.Year(), date.Month(), date.Day(),
		startMinutes/60, startMinutes%60, 0, 0, now.Location())
	graceLimit := scheduledStart.Add(models.LatenessGraceMinutes * time.Minute)
	isLate := now.After(graceLimit)

	response, err := t.statsRepo.CheckIn(ctx, models.CheckinRequest{
		EmployeeID:  employeeID,
		Date:        dateStr,
		CheckinTime: now.Format(time.RFC3339),
	})
	if err != nil {
		t.logger.WithError(err).WithFields(logrus.Fields{
			"employee_id": employeeID,
			"date":        dateStr,
		}).Error("Failed to record check-in remotely")
		return nil, err
	}

	record := &models.AttendanceRecord{
		EmployeeID:  employeeID,
		Date:        dateStr,
		CheckinTime: now,
		IsLate:      isLate,
	}
	t.records[recordKey(employeeID, dateStr)] = record

	t.logger.WithFields(logrus.Fields{
		"employee_id": employeeID,
		"date":        dateStr,
		"is_late":     isLate,
		"success":     response.Success,
	}).Info("Employee checked in")

	// Запись и последующее чтение не атомарны с точки зрения клиента:
	// представление обновляется отдельным проходом синхронизации
	if t.syncer != nil {
		t.syncer.Trigger(context.WithoutCancel(ctx))
	}

	return record, nil
}

// Record возвращает созданную отметку прихода, если она есть
func (t *AttendanceTracker) Record(employeeID int64, date string) (*models.AttendanceRecord, bool) {
	record, ok := t.records[recordKey(employeeID, date)]
	return record, ok
}

// HasRecord проверяет, отмечался ли сотрудник в дату
func (t *AttendanceTracker) HasRecord(employeeID int64, date string) bool {
	_, ok := t.records[recordKey(employeeID, date)]
	return ok
}
