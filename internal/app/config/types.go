package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		Redis          *redis.Client
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App      App
		Backend  Backend
		Identity Identity
		JWT      JWT
	}

	DriverConfig struct {
		Redis  Redis
		Logger Logger
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Address                    string
		Timezone                   string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		RequestBodyLimitInMegabyte int
		AuthRateLimitPerMinute     int
		AuthRateLimitBlockMinutes  int
		SessionExpiredTimeInHours  int
		UploadMaxSizeInMB          int
		AssistantReplyDelayInMs    int
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	// Backend is the remote record-management API this service fronts.
	Backend struct {
		BaseUrl                 string
		RequestTimeoutInSeconds int
	}

	// Identity is the external identity provider consumed during login,
	// signup and the session hand-off.
	Identity struct {
		BaseUrl                 string
		ApiKey                  string
		RequestTimeoutInSeconds int
	}

	JWT struct {
		Secret string
	}
)
