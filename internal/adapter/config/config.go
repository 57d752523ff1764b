package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	Kafka    *Kafka
	Redis    *Redis
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Kafka struct {
	Brokers    string `env:"KAFKA_BROKERS"`
	OrderTopic string `env:"ORDER_TOPIC"`
}

type Redis struct {
	Addr      string        `env:"REDIS_ADDRESS"`
	IntentTTL time.Duration `env:"TRADE_INTENT_TTL"`
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var kafka Kafka
	var redis Redis
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&kafka.Brokers, "b", `localhost:9092`, "Kafka brokers, comma separated")
	flag.StringVar(&kafka.OrderTopic, "t", `mall-order`, "Order event topic")
	flag.StringVar(&redis.Addr, "r", `localhost:6379`, "Redis address")
	flag.DurationVar(&redis.IntentTTL, "e", 24*time.Hour, "Trade intent cache TTL")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&kafka)
	if err != nil {
		return nil, fmt.Errorf("error parsing kafka config: %w", err)
	}
	err = env.Parse(&redis)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		Kafka:    &kafka,
		Redis:    &redis,
		App:      &app,
	}

	return &config, nil
}
