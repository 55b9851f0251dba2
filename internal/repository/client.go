package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"salon-schedule/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// apiClient - общая HTTP-обвязка репозиториев: JSON-запросы к бэкенду,
// Bearer-токен и сквозной X-Request-ID для корреляции с логами сервера.
type apiClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *logrus.Logger
}

func newAPIClient(baseURL, token string, timeout time.Duration) *apiClient {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &apiClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// doJSON выполняет запрос и декодирует ответ в out (если out != nil).
// Любая транспортная ошибка или не-2xx статус заворачивается в ErrRemote:
// локальное состояние вызывающего кода при этом не меняется.
func (c *apiClient) doJSON(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	requestID := uuid.NewString()

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: кодирование запроса: %v", models.ErrRemote, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrRemote, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.logger.WithFields(logrus.Fields{
		"method":     method,
		"path":       path,
		"request_id": requestID,
	}).Debug("Sending API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).WithField("request_id", requestID).Error("API request failed")
		return fmt.Errorf("%w: %v", models.ErrRemote, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.WithFields(logrus.Fields{
			"status":     resp.StatusCode,
			"path":       path,
			"request_id": requestID,
		}).Error("API request returned non-2xx status")
		return fmt.Errorf("%w: статус %d от %s", models.ErrRemote, resp.StatusCode, path)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.WithError(err).WithField("request_id", requestID).Error("Failed to decode API response")
		return fmt.Errorf("%w: декодирование ответа: %v", models.ErrRemote, err)
	}

	return nil
}
