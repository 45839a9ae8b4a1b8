package config

import "time"

// Config holds application configuration.
type Config struct {
	// DatabaseURL is run ledger database. Runs are kept in memory when it is empty.
	DatabaseURL string        `env:"DATABASE_URL"`
	RunOnce     bool          `env:"RUN_ONCE" envDefault:"false"`
	CatalogFile string        `env:"CATALOG_FILE"`
	ImagesDir   string        `env:"IMAGES_DIR" envDefault:"images"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`

	Seed     Seed
	Medusa   Medusa
	RabbitMQ RabbitMQ
}

// Seed holds seeding defaults of one-shot runs.
type Seed struct {
	Concurrency int  `env:"SEED_CONCURRENCY" envDefault:"4"`
	Force       bool `env:"SEED_FORCE" envDefault:"false"`
	Rollback    bool `env:"SEED_ROLLBACK" envDefault:"false"`
}

// Medusa holds commerce backend configuration.
type Medusa struct {
	BackendURL    string `env:"MEDUSA_BACKEND_URL" envDefault:"http://localhost:9000"`
	AdminAPIKey   string `env:"MEDUSA_ADMIN_API_KEY"`
	AdminEmail    string `env:"MEDUSA_ADMIN_EMAIL"`
	AdminPassword string `env:"MEDUSA_ADMIN_PASSWORD"`
}

// RabbitMQ holds RabbitMQ configuration.
type RabbitMQ struct {
	URL        string `env:"RABBITMQ_URL"`
	Exchange   string `env:"RABBITMQ_EXCHANGE" envDefault:"commerce-seeder-ex"`
	Queue      string `env:"RABBITMQ_QUEUE" envDefault:"commerce-seeder.commands"`
	RoutingKey string `env:"RABBITMQ_ROUTING_KEY" envDefault:"commerce-seeder.seed"`
}
