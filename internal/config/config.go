package config

import (
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type ClientConfig struct {
	APIBaseURL        string
	APIToken          string
	HTTPTimeout       time.Duration
	SyncCooldown      time.Duration
	ShowSundayDefault bool
}

var instance *ClientConfig
var once sync.Once

func GetClientConfig() *ClientConfig {
	once.Do(func() {
		instance = &ClientConfig{}

		if err := godotenv.Load(); err != nil {
			logrus.Debugf("no .env file loaded: %s", err.Error())
		}

		instance.APIBaseURL = getEnv("API_BASE_URL", "")
		if instance.APIBaseURL == "" {
			logrus.Fatal("could not get api base url")
		}

		instance.APIToken = getEnv("API_TOKEN", "")

		instance.HTTPTimeout = time.Duration(getEnvAsInt("HTTP_TIMEOUT_SECONDS", 15)) * time.Second
		instance.SyncCooldown = time.Duration(getEnvAsInt("SYNC_COOLDOWN_SECONDS", 3)) * time.Second
		instance.ShowSundayDefault = getEnvAsBool("SHOW_SUNDAY_DEFAULT", true)
	})

	return instance
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}

	return defaultVal
}

func getEnvAsInt(name string, defaultVal int64) int64 {
	valStr := getEnv(name, "")
	if val, err := strconv.Atoi(valStr); err == nil {
		return int64(val)
	}

	return defaultVal
}
