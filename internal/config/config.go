package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type MarketplaceConfig struct {
	Env             string `yaml:"env"`
	MigrationsPath  string `yaml:"migrations_path"`
	HTTPServer      `yaml:"http_server"`
	MarketplaceDB   `yaml:"marketplace_db"`
	LogConfig       `yaml:"log_config"`
	KafkaService    `yaml:"kafka-service"`
	NotifierService `yaml:"notifier-service"`
	RedisCache      `yaml:"redis-cache"`
	JWT             `yaml:"jwt"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type MarketplaceDB struct {
	Dsn string `yaml:"dsn"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host       string `yaml:"host"`
	Port       string `yaml:"port"`
	OrderTopic string `yaml:"order_topic"`
}

type NotifierService struct {
	EmailGatewayURL string `yaml:"email_gateway_url"`
	SMSGatewayURL   string `yaml:"sms_gateway_url"`
}

type RedisCache struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWT struct {
	Secret   string        `yaml:"secret" env:"JWT_SECRET"`
	TokenTTL time.Duration `yaml:"token_ttl"`
}

func MustLoad() *MarketplaceConfig {

	// Processing env config variable and file
	configPath := os.Getenv("MARKETPLACE_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("MARKETPLACE_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg MarketplaceConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
