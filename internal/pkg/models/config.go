package models

// Config represents application configuration
type Config struct {
	App        AppConfig
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	NATS       NATSConfig
	JWT        JWTConfig
	Geocoding  GeocodingConfig
	Routing    RoutingConfig
	Compliance ComplianceConfig
	NewRelic   NewRelicConfig
	Logger     LoggerConfig
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

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// GeocodingConfig contains forward-geocoding provider configuration
type GeocodingConfig struct {
	BaseURL        string
	APIKey         string
	Country        string // ISO country bias for address lookup
	TimeoutSeconds int
}

// RoutingConfig contains directions provider configuration
type RoutingConfig struct {
	BaseURL        string
	APIKey         string
	Profile        string // routing profile, e.g. driving
	TimeoutSeconds int
}

// ComplianceConfig contains work diary rule configuration
type ComplianceConfig struct {
	CalcTimeoutSeconds int     // hard bound on one full calculation
	RecentSearchLimit  int     // capped redis list length per user
	HistoryLimit       int     // default page size for history listings
	ThresholdKm        float64 // the 100 km work diary rule
}

// NewRelicConfig contains observability agent configuration
type NewRelicConfig struct {
	LicenseKey string
	AppName    string
	Enabled    bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
