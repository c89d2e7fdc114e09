package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	JWT     JWTConfig
	Redis   RedisConfig
	Session SessionConfig
	Store   StoreConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// RedisConfig conexión al almacenamiento durable de sesión.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// SessionConfig nombres de las dos llaves del layout persistido de sesión.
type SessionConfig struct {
	TokenKey string
	UserKey  string
}

// StoreConfig latencias artificiales del backend simulado por operación.
// En tests se inyectan en cero.
type StoreConfig struct {
	AuthLatency   time.Duration
	ListLatency   time.Duration
	GetLatency    time.Duration
	MutateLatency time.Duration
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "commodityhub-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "commodityhub"),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", "localhost:6379"),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
		Session: SessionConfig{
			TokenKey: getString(v, "SESSION_TOKEN_KEY", "commodityhub_token"),
			UserKey:  getString(v, "SESSION_USER_KEY", "commodityhub_user"),
		},
		// Latencias del fake backend original: login 800ms, list 600ms,
		// get 400ms, create/update 700ms.
		Store: StoreConfig{
			AuthLatency:   time.Duration(getInt(v, "STORE_AUTH_LATENCY_MS", 800)) * time.Millisecond,
			ListLatency:   time.Duration(getInt(v, "STORE_LIST_LATENCY_MS", 600)) * time.Millisecond,
			GetLatency:    time.Duration(getInt(v, "STORE_GET_LATENCY_MS", 400)) * time.Millisecond,
			MutateLatency: time.Duration(getInt(v, "STORE_MUTATE_LATENCY_MS", 700)) * time.Millisecond,
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
