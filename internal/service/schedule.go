package service

import (
	"context"
	"fmt"
	"sort"

	"salon-schedule/internal/config"
	"salon-schedule/internal/models"
	"salon-schedule/internal/repository"
	"salon-schedule/pkg/daykey"

	"github.com/sirupsen/logrus"
)

// Названия шаблонов недели
const (
	TemplateFiveDay       = "пятидневка"
	TemplateEveryDay      = "ежедневно"
	TemplateShortSaturday = "пятидневка с короткой субботой"
)

// ScheduleStore - недельный график одного сотрудника с гейтом
// режима редактирования. Экземпляр живет на одно представление
// сотрудника и не потокобезопасен: все мутации из одной задачи.
type ScheduleStore struct {
	employeeID int64
	repo       repository.ScheduleRepository
	logger     *logrus.Logger

	current         *models.WeeklySchedule
	snapshot        *models.WeeklySchedule
	timeOff         *TimeOffRegister
	timeOffSnapshot []models.TimeOffException

	editing bool
	saving  bool
	loadGen uint64
}

func NewScheduleStore(employeeID int64, repo repository.ScheduleRepository, showSunday bool) *ScheduleStore {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &ScheduleStore{
		employeeID: employeeID,
		repo:       repo,
		logger:     logger,
		current:    models.NewWeeklySchedule(employeeID, showSunday),
		snapshot:   models.NewWeeklySchedule(employeeID, showSunday),
		timeOff:    NewTimeOffRegister(),
	}
}

// NewScheduleStoreFromConfig создает хранилище с флагом показа
// воскресенья из настроек окружения
func NewScheduleStoreFromConfig(employeeID int64, repo repository.ScheduleRepository) *ScheduleStore {
	return NewScheduleStore(employeeID, repo, config.GetClientConfig().ShowSundayDefault)
}

// Load загружает график с бэкенда и прогоняет каждую запись через
// мягкую валидацию: битые записи молча отбрасываются, а не всплывают
// ошибками - частично испорченные сохраненные данные терпимы на чтении.
// Пока выполняется Save, загрузка запрещена, чтобы устаревшее чтение
// не затерло результат записи.
func (s *ScheduleStore) Load(ctx context.Context, startDate, endDate string) error {
	if s.saving {
		return fmt.Errorf("%w: сохранение еще не завершено", models.ErrSaveInFlight)
	}

	s.loadGen++
	generation := s.loadGen

	s.logger.WithFields(logrus.Fields{
		"employee_id": s.employeeID,
		"generation":  generation,
	}).Debug("Loading employee schedule")

	payload, err := s.repo.GetSchedule(ctx, s.employeeID, startDate, endDate)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load schedule")
		return err
	}

	// Ответ устаревшей загрузки (представление уже перезапросило данные
	// или было закрыто) отбрасывается, а не применяется.
	if generation != s.loadGen {
		s.logger.WithFields(logrus.Fields{
			"employee_id": s.employeeID,
			"generation":  generation,
		}).Warn("Discarding stale schedule load response")
		return nil
	}

	schedule := s.sanitizeWorkingHours(payload.WorkingHours)
	s.current = schedule
	s.snapshot = schedule.Clone()
	s.timeOff.Reset(payload.TimeOff)
	s.timeOffSnapshot = s.timeOff.List()
	s.editing = false

	s.logger.WithFields(logrus.Fields{
		"employee_id":  s.employeeID,
		"days":         len(schedule.Days),
		"working_days": schedule.WorkingDaysCount(),
		"time_off":     len(payload.TimeOff),
	}).Info("Employee schedule loaded")

	return nil
}

// sanitizeWorkingHours нормализует ключи дней и отбрасывает невалидные
// записи. При дубликатах одного дня в разных представлениях действует
// детерминированное правило: цифровой ключ сильнее полного названия,
// полное название сильнее сокращения; внутри одного вида побеждает
// первый валидный ключ в отсортированном порядке.
func (s *ScheduleStore) sanitizeWorkingHours(raw map[string]models.RawDayHours) *models.WeeklySchedule {
	schedule := models.NewWeeklySchedule(s.employeeID, s.current.ShowSunday)

	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, kind := range []daykey.Kind{daykey.KindNumeric, daykey.KindFullName, daykey.KindAbbrev} {
		for _, key := range keys {
			if daykey.KeyKind(key) != kind {
				continue
			}

			day, err := daykey.Normalize(key)
			if err != nil {
				s.logger.WithFields(logrus.Fields{
					"employee_id": s.employeeID,
					"day_key":     key,
				}).Warn("Dropping entry with unrecognized day key")
				continue
			}

			hours := raw[key].Hours()
			// Сырая запись сохраняется для legacy-поиска по названию дня
			schedule.Raw[key] = hours.Clone()

			if err := hours.Validate(); err != nil {
				s.logger.WithFields(logrus.Fields{
					"employee_id": s.employeeID,
					"day_key":     key,
					"reason":      err.Error(),
				}).Warn("Dropping invalid day hours entry")
				continue
			}

			if _, exists := schedule.Days[day]; exists {
				continue
			}
			schedule.Days[day] = hours
		}
	}

	return schedule
}

// BeginEdit включает режим редактирования. Повторный вызов в режиме
// редактирования ничего не делает - вложенного редактирования нет.
func (s *ScheduleStore) BeginEdit() {
	if s.editing {
		return
	}
	s.editing = true
	s.logger.WithField("employee_id", s.employeeID).Info("Schedule edit mode entered")
}

// IsEditing сообщает, находится ли хранилище в режиме редактирования
func (s *ScheduleStore) IsEditing() bool {
	return s.editing
}

// SetHours меняет начало или конец одного дня. Вне режима редактирования
// молча ничего не делает: гейт отражает read-only состояние интерфейса,
// а не жесткую границу прав.
func (s *ScheduleStore) SetHours(day daykey.WeekDay, field, value string) {
	if !s.editing {
		return
	}

	hours, ok := s.current.Days[day]
	if !ok {
		s.logger.WithFields(logrus.Fields{
			"employee_id": s.employeeID,
			"day":         day.String(),
		}).Debug("SetHours ignored: no entry for day")
		return
	}

	switch field {
	case "start":
		hours.Start = value
	case "end":
		hours.End = value
	default:
		s.logger.WithField("field", field).Warn("SetHours ignored: unknown field")
		return
	}

	s.current.Days[day] = hours
}

// SetWorkingDay переключает день между рабочим и выходным. Рабочий день
// получает часы по умолчанию 09:00-18:00, выходной - сентинель
// 00:00-00:00, который всегда несет оба поля и потому переживает
// мягкое чтение при последующей загрузке.
func (s *ScheduleStore) SetWorkingDay(day daykey.WeekDay, isWorking bool) {
	if !s.editing {
		return
	}

	if isWorking {
		s.current.Days[day] = models.DefaultWorkingDay()
	} else {
		s.current.Days[day] = models.DayOff()
	}

	s.logger.WithFields(logrus.Fields{
		"employee_id": s.employeeID,
		"day":         day.String(),
		"is_working":  isWorking,
	}).Debug("Working day toggled")
}

// CopyHours копирует часы одного дня в другой. Копия глубокая:
// дальнейшие правки дня-получателя не трогают день-источник.
func (s *ScheduleStore) CopyHours(fromDay, toDay daykey.WeekDay) {
	if !s.editing {
		return
	}

	hours, ok := s.current.Days[fromDay]
	if !ok {
		return
	}

	s.current.Days[toDay] = hours.Clone()
}

// ApplyTemplate заменяет всю неделю одним из именованных шаблонов.
// Операция атомарна: при неизвестном шаблоне неделя не меняется вовсе.
func (s *ScheduleStore) ApplyTemplate(name string) error {
	if !s.editing {
		return nil
	}

	week, err := buildTemplate(name)
	if err != nil {
		s.logger.WithField("template", name).Warn("Unknown schedule template")
		return err
	}

	s.current.Days = week

	s.logger.WithFields(logrus.Fields{
		"employee_id": s.employeeID,
		"template":    name,
	}).Info("Schedule template applied")

	return nil
}

func buildTemplate(name string) (map[daykey.WeekDay]models.DayHours, error) {
	week := make(map[daykey.WeekDay]models.DayHours, 7)

	switch name {
	case TemplateFiveDay:
		for _, day := range daykey.All() {
			if day == daykey.Saturday || day == daykey.Sunday {
				week[day] = models.DayOff()
			} else {
				week[day] = models.DefaultWorkingDay()
			}
		}
	case TemplateEveryDay:
		for _, day := range daykey.All() {
			week[day] = models.DefaultWorkingDay()
		}
	case TemplateShortSaturday:
		for _, day := range daykey.All() {
			switch day {
			case daykey.Sunday:
				week[day] = models.DayOff()
			case daykey.Saturday:
				week[day] = models.DayHours{Start: "10:00", End: "16:00", IsWorking: true}
			default:
				week[day] = models.DefaultWorkingDay()
			}
		}
	default:
		return nil, fmt.Errorf("неизвестный шаблон графика: %q", name)
	}

	return week, nil
}

// Save валидирует всю неделю заново, отбрасывает невалидные записи и
// целиком отправляет очищенный график на бэкенд. При ошибке бэкенда
// состояние в памяти не меняется и режим редактирования остается
// активным - пользователь может повторить сохранение без потерь.
func (s *ScheduleStore) Save(ctx context.Context) error {
	payload := &models.SchedulePayload{
		WorkingHours: s.validateWeek(),
		TimeOff:      s.timeOff.List(),
	}

	s.saving = true
	err := s.repo.UpdateSchedule(ctx, s.employeeID, payload)
	s.saving = false

	if err != nil {
		s.logger.WithError(err).WithField("employee_id", s.employeeID).Error("Failed to save schedule, keeping local state")
		return err
	}

	s.snapshot = s.current.Clone()
	s.timeOffSnapshot = s.timeOff.List()
	s.editing = false

	s.logger.WithFields(logrus.Fields{
		"employee_id": s.employeeID,
		"days":        len(payload.WorkingHours),
	}).Info("Schedule saved")

	return nil
}

// validateWeek - строгая валидация на запись: записи, не прошедшие
// инвариант, в сохранение не попадают. Выходные дни сериализуются
// сентинелем 00:00-00:00, а не пропуском записи.
func (s *ScheduleStore) validateWeek() map[string]models.RawDayHours {
	cleaned := make(map[string]models.RawDayHours, len(s.current.Days))

	for day, hours := range s.current.Days {
		if err := hours.Validate(); err != nil {
			s.logger.WithFields(logrus.Fields{
				"employee_id": s.employeeID,
				"day":         day.String(),
				"reason":      err.Error(),
			}).Warn("Stripping invalid entry before save")
			continue
		}

		working := hours.IsWorking
		cleaned[day.Key()] = models.RawDayHours{
			Start:     hours.Start,
			End:       hours.End,
			IsWorking: &working,
		}
	}

	return cleaned
}

// Cancel отменяет правки, возвращая последний загруженный или
// сохраненный снимок
func (s *ScheduleStore) Cancel() {
	if !s.editing {
		return
	}

	s.current = s.snapshot.Clone()
	s.timeOff.Reset(s.timeOffSnapshot)
	s.editing = false

	s.logger.WithField("employee_id", s.employeeID).Info("Schedule edit cancelled, changes reverted")
}

// Week возвращает текущий график
func (s *ScheduleStore) Week() *models.WeeklySchedule {
	return s.current
}

// Hours возвращает запись часов для одного дня
func (s *ScheduleStore) Hours(day daykey.WeekDay) (models.DayHours, bool) {
	return s.current.Hours(day)
}

// TimeOff возвращает регистр отгулов сотрудника
func (s *ScheduleStore) TimeOff() *TimeOffRegister {
	return s.timeOff
}

// SetShowSunday задает косметический флаг показа воскресенья.
// На записи часов флаг никогда не влияет.
func (s *ScheduleStore) SetShowSunday(show bool) {
	s.current.ShowSunday = show
	s.snapshot.ShowSunday = show
}
