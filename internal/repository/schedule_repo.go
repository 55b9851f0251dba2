package repository

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"salon-schedule/internal/config"
	"salon-schedule/internal/models"

	"github.com/sirupsen/logrus"
)

type ScheduleRepository interface {
	GetSchedule(ctx context.Context, employeeID int64, startDate, endDate string) (*models.SchedulePayload, error)
	UpdateSchedule(ctx context.Context, employeeID int64, payload *models.SchedulePayload) error
}

// HTTPScheduleRepository работает с GET/PUT /employees/{id}/schedule
type HTTPScheduleRepository struct {
	api    *apiClient
	logger *logrus.Logger
}

func NewHTTPScheduleRepository(baseURL, token string, timeout time.Duration) *HTTPScheduleRepository {
	api := newAPIClient(baseURL, token, timeout)

	api.logger.Info("Schedule repository initialized")

	return &HTTPScheduleRepository{
		api:    api,
		logger: api.logger,
	}
}

// NewHTTPScheduleRepositoryFromConfig создает репозиторий на настройках
// окружения (API_BASE_URL и далее)
func NewHTTPScheduleRepositoryFromConfig() *HTTPScheduleRepository {
	cfg := config.GetClientConfig()
	return NewHTTPScheduleRepository(cfg.APIBaseURL, cfg.APIToken, cfg.HTTPTimeout)
}

func (r *HTTPScheduleRepository) GetSchedule(ctx context.Context, employeeID int64, startDate, endDate string) (*models.SchedulePayload, error) {
	r.logger.WithFields(logrus.Fields{
		"employee_id": employeeID,
		"start_date":  startDate,
		"end_date":    endDate,
	}).Debug("Fetching employee schedule")

	query := url.Values{}
	if startDate != "" {
		query.Set("start_date", startDate)
	}
	if endDate != "" {
		query.Set("end_date", endDate)
	}

	var payload models.SchedulePayload
	path := fmt.Sprintf("/employees/%d/schedule", employeeID)
	if err := r.api.doJSON(ctx, "GET", path, query, nil, &payload); err != nil {
		return nil, err
	}

	return &payload, nil
}

func (r *HTTPScheduleRepository) UpdateSchedule(ctx context.Context, employeeID int64, payload *models.SchedulePayload) error {
	r.logger.WithFields(logrus.Fields{
		"employee_id": employeeID,
		"days":        len(payload.WorkingHours),
		"time_off":    len(payload.TimeOff),
	}).Info("Saving employee schedule")

	path := fmt.Sprintf("/employees/%d/schedule", employeeID)
	if err := r.api.doJSON(ctx, "PUT", path, nil, payload, nil); err != nil {
		return err
	}

	r.logger.WithField("employee_id", employeeID).Info("Employee schedule saved successfully")
	return nil
}
