package configs

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type ConfigStruct struct {
	Port                 string
	AccessTokenSecret    string
	RedisUrl             string
	RedisPassword        string
	CorsAllowedOrigins   []string
	SentryDns            string
	SentryRelease        string
	PrintErrors          bool
	DbUrl                string
	Domain               string
	TmdbApiKey           string
	TmdbBaseUrl          string
	MaxVotes             int
	PollsCloseDaysBefore int
	HydrationWorkers     int
	HydrationRatePerSec  int
	HydrationQueueSize   int
}

var configs = ConfigStruct{}

func GetConfigs() ConfigStruct {
	return configs
}

func LoadEnvVariables() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	configs.Port = os.Getenv("PORT")
	configs.DbUrl = os.Getenv("POSTGRES_DATABASE_URL")
	configs.AccessTokenSecret = os.Getenv("ACCESS_TOKEN_SECRET")
	configs.RedisUrl = os.Getenv("REDIS_URL")
	configs.RedisPassword = os.Getenv("REDIS_PASSWORD")
	configs.CorsAllowedOrigins = strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), "---")
	for i := range configs.CorsAllowedOrigins {
		configs.CorsAllowedOrigins[i] = strings.TrimSpace(configs.CorsAllowedOrigins[i])
	}
	configs.SentryDns = os.Getenv("SENTRY_DNS")
	configs.SentryRelease = os.Getenv("SENTRY_RELEASE")
	configs.PrintErrors = os.Getenv("PRINT_ERRORS") == "true"
	configs.Domain = os.Getenv("DOMAIN")
	configs.TmdbApiKey = os.Getenv("TMDB_API_KEY")
	configs.TmdbBaseUrl = os.Getenv("TMDB_BASE_URL")
	if configs.TmdbBaseUrl == "" {
		configs.TmdbBaseUrl = "https://api.themoviedb.org/3"
	}
	configs.MaxVotes = readIntEnv("MAX_VOTES", 3)
	configs.PollsCloseDaysBefore = readIntEnv("POLLS_CLOSE_DAYS_BEFORE", 2)
	configs.HydrationWorkers = readIntEnv("HYDRATION_WORKERS", 4)
	configs.HydrationRatePerSec = readIntEnv("HYDRATION_RATE_PER_SEC", 3)
	configs.HydrationQueueSize = readIntEnv("HYDRATION_QUEUE_SIZE", 1000)
}

func readIntEnv(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

// SetTestConfigs replaces the loaded configs, used by tests that never call LoadEnvVariables.
func SetTestConfigs(c ConfigStruct) {
	configs = c
}
