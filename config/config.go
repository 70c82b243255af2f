package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Redis   RedisConfig
	Kafka   KafkaConfig
	Session SessionConfig
	Notify  NotifyConfig
	Admin   AdminConfig
	Observ  ObservabilityConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Brokers       []string
	TopicEnquiry  string
	ConsumerGroup string
}

type SessionConfig struct {
	TTL time.Duration
}

type NotifyConfig struct {
	WhatsAppNumber string
	GatewayURL     string
}

type AdminConfig struct {
	Email    string
	Password string
}

type ObservabilityConfig struct {
	JaegerEndpoint string
}

func Load() *Config {
	_ = godotenv.Load()

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	sessionTTLHours, _ := strconv.Atoi(getEnv("SESSION_TTL_HOURS", "72"))

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Kafka: KafkaConfig{
			Brokers:       strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			TopicEnquiry:  getEnv("KAFKA_TOPIC_ENQUIRY_EVENTS", "enquiry-events"),
			ConsumerGroup: getEnv("KAFKA_CONSUMER_GROUP", "notify-worker-group"),
		},
		Session: SessionConfig{
			TTL: time.Duration(sessionTTLHours) * time.Hour,
		},
		Notify: NotifyConfig{
			WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "+918069377929"),
			GatewayURL:     getEnv("WHATSAPP_GATEWAY_URL", ""),
		},
		Admin: AdminConfig{
			Email:    getEnv("ADMIN_EMAIL", "admin@shivasadhana.in"),
			Password: getEnv("ADMIN_PASSWORD", "admin123"),
		},
		Observ: ObservabilityConfig{
			JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
		},
	}

	log.Printf("Config loaded: env=%s, port=%s", cfg.Server.Env, cfg.Server.Port)
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
