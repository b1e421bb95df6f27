package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/farmchain/backend/internal/pkg/models"
)

// InitConfig loads configuration from a .env file (local environments
// only) and then from the process environment.
func InitConfig(configPath string) *models.Config {
	env := GetEnv("APP_ENV", "local")
	if env == "local" || env == "development" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "farmchain-api")
	configs.App.Environment = GetEnv("APP_ENV", "development")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 5000)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 30)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 30)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Mongo config: one logical database per user role
	configs.Mongo.URI = GetEnv("MONGODB_URI", "mongodb://127.0.0.1:27017")
	configs.Mongo.FarmerDB = GetEnv("MONGO_FARMER_DB", "farmchain_farmers")
	configs.Mongo.SupplierDB = GetEnv("MONGO_SUPPLIER_DB", "farmchain_suppliers")
	configs.Mongo.AdminDB = GetEnv("MONGO_ADMIN_DB", "farmchain_admin")
	configs.Mongo.Timeout = GetEnvAsInt("MONGO_TIMEOUT", 10)
	configs.Mongo.MaxPoolSize = uint64(GetEnvAsInt("MONGO_MAX_POOL_SIZE", 100))

	// Redis config (optional, shared OTP state)
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// NSQ config (optional, domain events)
	configs.NSQ.Address = GetEnv("NSQ_ADDRESS", "")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 43200) // 30 days in minutes
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "farmchain")

	// OTP config
	configs.OTP.Length = GetEnvAsInt("OTP_LENGTH", 6)
	configs.OTP.TTLSeconds = GetEnvAsInt("OTP_TTL_SECONDS", 300)
	configs.OTP.MaxAttempts = GetEnvAsInt("OTP_MAX_ATTEMPTS", 5)
	configs.OTP.CooldownSecs = GetEnvAsInt("OTP_COOLDOWN_SECONDS", 60)
	configs.OTP.MaxPerCooldown = GetEnvAsInt("OTP_MAX_PER_COOLDOWN", 5)
	configs.OTP.EchoInDev = GetEnvAsBool("OTP_ECHO_IN_DEV", false)

	// SMS provider config
	configs.SMS.ProviderURL = GetEnv("SMS_PROVIDER_URL", "")
	configs.SMS.APIKey = GetEnv("SMS_API_KEY", "")
	configs.SMS.SenderID = GetEnv("SMS_SENDER_ID", "FARMCH")
	configs.SMS.TimeoutSecs = GetEnvAsInt("SMS_TIMEOUT_SECONDS", 10)

	// Bootstrap admin credentials
	configs.Admin.Email = GetEnv("ADMIN_EMAIL", "")
	configs.Admin.PasswordHash = GetEnv("ADMIN_PASSWORD_HASH", "")

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
