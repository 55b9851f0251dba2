package service

import (
	"context"
	"sync"
	"time"

	"salon-schedule/internal/config"

	"github.com/sirupsen/logrus"
)

// SyncState - состояние координатора фоновой синхронизации
type SyncState int

const (
	SyncIdle SyncState = iota
	SyncRunning
	SyncCoolingDown
)

// SyncFunc - один проход синхронизации (обновление производных данных
// по сотрудникам после инвалидации кэша)
type SyncFunc func(ctx context.Context) error

// SyncCoordinator защищает проход массовой синхронизации от повторного
// входа. Пока проход идет или остывает после завершения, новые триггеры
// подавляются: всплеск триггеров после сохранения гасится кулдауном,
// а Settle позволяет снять его досрочно явным сигналом. Сохранение
// не может повторно запустить вызванный им же проход.
type SyncCoordinator struct {
	mu       sync.Mutex
	state    SyncState
	run      SyncFunc
	cooldown time.Duration
	timer    *time.Timer
	logger   *logrus.Logger
}

func NewSyncCoordinator(run SyncFunc, cooldown time.Duration) *SyncCoordinator {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &SyncCoordinator{
		state:    SyncIdle,
		run:      run,
		cooldown: cooldown,
		logger:   logger,
	}
}

// NewSyncCoordinatorFromConfig создает координатор с кулдауном из
// настроек окружения
func NewSyncCoordinatorFromConfig(run SyncFunc) *SyncCoordinator {
	return NewSyncCoordinator(run, config.GetClientConfig().SyncCooldown)
}

// Trigger запускает проход синхронизации, если координатор свободен.
// Возвращает false, когда триггер подавлен.
func (c *SyncCoordinator) Trigger(ctx context.Context) bool {
	c.mu.Lock()
	if c.state != SyncIdle {
		c.mu.Unlock()
		c.logger.Debug("Sync trigger suppressed: pass in flight or cooling down")
		return false
	}
	c.state = SyncRunning
	c.mu.Unlock()

	c.logger.Info("Sync pass started")

	go func() {
		err := c.run(ctx)
		if err != nil {
			c.logger.WithError(err).Error("Sync pass failed")
		} else {
			c.logger.Info("Sync pass completed")
		}
		c.finish()
	}()

	return true
}

// finish переводит координатор в остывание; по истечении кулдауна
// состояние возвращается в Idle
func (c *SyncCoordinator) finish() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = SyncCoolingDown
	c.timer = time.AfterFunc(c.cooldown, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.state == SyncCoolingDown {
			c.state = SyncIdle
		}
	})
}

// Settle - явный сигнал "данные устаканились": снимает кулдаун сразу,
// не дожидаясь таймера
func (c *SyncCoordinator) Settle() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != SyncCoolingDown {
		return
	}
	if c.timer != nil {
		c.timer.Stop()
	}
	c.state = SyncIdle

	c.logger.Debug("Sync cooldown settled explicitly")
}

// State возвращает текущее состояние координатора
func (c *SyncCoordinator) State() SyncState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}
