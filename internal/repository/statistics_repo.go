package repository

import (
	"context"
	"time"

	"salon-schedule/internal/config"
	"salon-schedule/internal/models"

	"github.com/sirupsen/logrus"
)

type StatisticsRepository interface {
	CheckIn(ctx context.Context, request models.CheckinRequest) (*models.CheckinResponse, error)
	GetEmployeeSchedules(ctx context.Context) ([]models.EmployeeScheduleRow, error)
	GetEmployeeEarnings(ctx context.Context) ([]models.EarningsSummary, error)
}

// HTTPStatisticsRepository работает с эндпоинтами /statistics/*
type HTTPStatisticsRepository struct {
	api    *apiClient
	logger *logrus.Logger
}

func NewHTTPStatisticsRepository(baseURL, token string, timeout time.Duration) *HTTPStatisticsRepository {
	api := newAPIClient(baseURL, token, timeout)

	api.logger.Info("Statistics repository initialized")

	return &HTTPStatisticsRepository{
		api:    api,
		logger: api.logger,
	}
}

// NewHTTPStatisticsRepositoryFromConfig создает репозиторий на настройках
// окружения
func NewHTTPStatisticsRepositoryFromConfig() *HTTPStatisticsRepository {
	cfg := config.GetClientConfig()
	return NewHTTPStatisticsRepository(cfg.APIBaseURL, cfg.APIToken, cfg.HTTPTimeout)
}

func (r *HTTPStatisticsRepository) CheckIn(ctx context.Context, request models.CheckinRequest) (*models.CheckinResponse, error) {
	r.logger.WithFields(logrus.Fields{
		"employee_id": request.EmployeeID,
		"date":        request.Date,
	}).Info("Recording employee check-in")

	var response models.CheckinResponse
	if err := r.api.doJSON(ctx, "POST", "/statistics/checkin", nil, request, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

func (r *HTTPStatisticsRepository) GetEmployeeSchedules(ctx context.Context) ([]models.EmployeeScheduleRow, error) {
	r.logger.Debug("Fetching employee schedules feed")

	var rows []models.EmployeeScheduleRow
	if err := r.api.doJSON(ctx, "GET", "/statistics/employee-schedules", nil, nil, &rows); err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *HTTPStatisticsRepository) GetEmployeeEarnings(ctx context.Context) ([]models.EarningsSummary, error) {
	r.logger.Debug("Fetching employee earnings feed")

	var summaries []models.EarningsSummary
	if err := r.api.doJSON(ctx, "GET", "/statistics/employee-earnings", nil, nil, &summaries); err != nil {
		return nil, err
	}

	return summaries, nil
}
