package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Database
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"phonedrive"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	// JWT
	JWTSecret      string        `envconfig:"JWT_SECRET"`
	JWTUserExpiry  time.Duration `envconfig:"JWT_USER_EXPIRY" default:"168h"`
	JWTAdminExpiry time.Duration `envconfig:"JWT_ADMIN_EXPIRY" default:"2h"`

	// Bootstrap admin (seeded with role=admin on first boot)
	AdminEmail    string `envconfig:"ADMIN_EMAIL"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`
	AdminToken    string `envconfig:"ADMIN_TOKEN"`

	// Notifications
	PostmarkToken string `envconfig:"POSTMARK_TOKEN"`
	EmailFrom     string `envconfig:"EMAIL_FROM" default:"shop@phonedrive.example"`
	OwnerEmail    string `envconfig:"OWNER_EMAIL"`
	ShopName      string `envconfig:"SHOP_NAME" default:"PhoneDrive"`
	ShopAddress   string `envconfig:"SHOP_ADDRESS" default:"10 Rue de la Tech, 75000 Paris"`

	// Messaging (optional, best-effort)
	AMQPURL      string `envconfig:"AMQP_URL"`
	AMQPExchange string `envconfig:"AMQP_EXCHANGE" default:"phonedrive.events"`

	// Server
	Port        string `envconfig:"PORT" default:"8080"`
	CORSOrigins string `envconfig:"CORS_ORIGINS" default:"*"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.OwnerEmail == "" {
		cfg.OwnerEmail = cfg.AdminEmail
	}
	return &cfg, nil
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}
