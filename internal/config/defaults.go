package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "courier_chat",
}

var defaultCRM = CRM{
	BaseURL:     "http://localhost:8090",
	Timeout:     10 * time.Second,
	MaxAttempts: 4,
	BaseDelay:   150 * time.Millisecond,
	MaxDelay:    2 * time.Second,
}

var defaultOrders = Orders{
	PageSize: 100,
	MaxPages: 10,
	TopN:     5,
}

var defaultKafka = Kafka{
	UpdatesTopic: "courier-chat.updates",
	RendersTopic: "courier-chat.renders",
	GroupID:      "courier-chat",
}

var defaultRateLimit = RateLimit{
	Limit:  20,
	Window: time.Second,
}

// DefaultPort returns the default HTTP port.
func DefaultPort() int { return defaultPort }

// DefaultDB returns the default database settings.
func DefaultDB() DB { return defaultDB }

// DefaultCRM returns the default order backend client settings.
func DefaultCRM() CRM { return defaultCRM }

// DefaultOrders returns the default listing and stats settings.
func DefaultOrders() Orders { return defaultOrders }

// DefaultKafka returns the default message bus settings.
func DefaultKafka() Kafka { return defaultKafka }

// DefaultRateLimit returns the default webhook rate limiting settings.
func DefaultRateLimit() RateLimit { return defaultRateLimit }
