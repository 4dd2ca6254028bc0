package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrSupabaseCredentials credenciales del backend ausentes; fatal al arrancar.
var ErrSupabaseCredentials = errors.New("config: SUPABASE_URL y SUPABASE_KEY son requeridos")

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	Supabase SupabaseConfig
	JWT      JWTConfig
	HTTP     HTTPConfig
}

// AppConfig configuración general.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// SupabaseConfig acceso al backend PostgREST (Supabase).
// Key se envía como apikey y como Bearer token en cada petición.
type SupabaseConfig struct {
	URL     string
	Key     string
	Timeout time.Duration // timeout fijo por petición
}

// JWTConfig configuración de tokens.
type JWTConfig struct {
	Secret            string
	AccessExpiration  int // minutos
	RefreshExpiration int // minutos
	Issuer            string
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

// Load lee la configuración desde variables de entorno (y opcionalmente un archivo .env).
// Las env vars tienen prioridad. Falla con ErrSupabaseCredentials si faltan URL o Key.
func Load() (*Config, error) {
	v := viper.New()

	// Archivo .env opcional en el directorio de trabajo.
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "farmacia-vida-sana"),
		},
		Supabase: SupabaseConfig{
			URL:     strings.TrimRight(getString(v, "SUPABASE_URL", ""), "/"),
			Key:     getString(v, "SUPABASE_KEY", ""),
			Timeout: time.Duration(getInt(v, "SUPABASE_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		JWT: JWTConfig{
			Secret:            getString(v, "JWT_SECRET", "dev_secret_key"),
			AccessExpiration:  getInt(v, "JWT_ACCESS_MINUTES", 24*60),
			RefreshExpiration: getInt(v, "JWT_REFRESH_MINUTES", 7*24*60),
			Issuer:            getString(v, "JWT_ISSUER", "farmacia-vida-sana"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
	}

	if cfg.Supabase.URL == "" || cfg.Supabase.Key == "" {
		return nil, ErrSupabaseCredentials
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
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
