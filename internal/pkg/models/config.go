package models

// Config represents application configuration
type Config struct {
	App    AppConfig
	Server ServerConfig
	Mongo  MongoConfig
	Redis  RedisConfig
	NSQ    NSQConfig
	JWT    JWTConfig
	OTP    OTPConfig
	SMS    SMSConfig
	Admin  AdminConfig
	Logger LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// MongoConfig contains MongoDB connection configuration.
// Users are sharded into one logical database per role; the
// database names are configurable so environments can be isolated.
type MongoConfig struct {
	URI         string
	FarmerDB    string
	SupplierDB  string
	AdminDB     string
	Timeout     int // connect/ping timeout in seconds
	MaxPoolSize uint64
}

// RedisConfig contains Redis connection configuration.
// Redis is optional: when Host is empty the OTP state stays in-process.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ producer configuration.
// Optional: when Address is empty domain events are disabled.
type NSQConfig struct {
	Address string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// OTPConfig contains OTP issuance and verification configuration
type OTPConfig struct {
	Length         int
	TTLSeconds     int
	MaxAttempts    int
	CooldownSecs   int // rate-limit window for issuance
	MaxPerCooldown int // max send-OTP requests per window
	EchoInDev      bool
}

// SMSConfig contains delivery provider configuration
type SMSConfig struct {
	ProviderURL string
	APIKey      string
	SenderID    string
	TimeoutSecs int
}

// AdminConfig contains the bootstrap admin credentials
type AdminConfig struct {
	Email        string
	PasswordHash string // bcrypt hash, never the plaintext
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
