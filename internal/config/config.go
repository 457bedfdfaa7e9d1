package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultBackendURL  = "http://localhost:8001"
	DefaultSplashDelay = time.Second
)

type Config struct {
	App struct {
		Name string `mapstructure:"name"`
		Port string `mapstructure:"port"`
		Env  string `mapstructure:"env"`
	} `mapstructure:"app"`
	Site struct {
		Port        string        `mapstructure:"port"`
		PublicURL   string        `mapstructure:"public_url"`
		BackendURL  string        `mapstructure:"backend_url"`
		SplashDelay time.Duration `mapstructure:"splash_delay"`
	} `mapstructure:"site"`
	DB struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	Redis struct {
		Addr     string        `mapstructure:"addr"`
		Password string        `mapstructure:"password"`
		TTL      time.Duration `mapstructure:"ttl"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
	} `mapstructure:"kafka"`
	SMTP struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
		From     string `mapstructure:"from"`
		To       string `mapstructure:"to"`
	} `mapstructure:"smtp"`
	Jaeger struct {
		OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	} `mapstructure:"jaeger"`
	CORS struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"cors"`
}

// LoadConfig reads .env, then config.yaml from the given search paths
// (default "."), then environment overrides.
func LoadConfig(paths ...string) (cfg Config, err error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	err = godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	v := viper.New()
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err = v.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read env only. Error: %v", err)
	}

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("app.name", "APP_NAME")
	v.BindEnv("app.port", "APP_PORT")
	v.BindEnv("app.env", "APP_ENV")
	v.BindEnv("site.port", "SITE_PORT")
	v.BindEnv("site.public_url", "SITE_PUBLIC_URL")
	v.BindEnv("site.backend_url", "SITE_BACKEND_URL")
	v.BindEnv("site.splash_delay", "SITE_SPLASH_DELAY")
	v.BindEnv("db.dsn", "DB_DSN")
	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("redis.ttl", "REDIS_TTL")
	v.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	v.BindEnv("smtp.host", "SMTP_HOST")
	v.BindEnv("smtp.port", "SMTP_PORT")
	v.BindEnv("smtp.username", "SMTP_USERNAME")
	v.BindEnv("smtp.password", "SMTP_PASSWORD")
	v.BindEnv("smtp.from", "SMTP_FROM")
	v.BindEnv("smtp.to", "SMTP_TO")
	v.BindEnv("jaeger.otlp_endpoint", "OTLP_ENDPOINT")
	v.BindEnv("cors.allowed_origins", "CORS_ALLOWED_ORIGINS")

	err = v.Unmarshal(&cfg)
	return
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "Rachit Kapoor Portfolio API")
	v.SetDefault("app.port", "8001")
	v.SetDefault("app.env", "development")
	v.SetDefault("site.port", "3000")
	v.SetDefault("site.public_url", "http://localhost:3000")
	v.SetDefault("site.backend_url", DefaultBackendURL)
	v.SetDefault("site.splash_delay", DefaultSplashDelay)
	v.SetDefault("redis.ttl", 10*time.Minute)
	v.SetDefault("smtp.port", "587")
	v.SetDefault("cors.allowed_origins", []string{"*"})
}
