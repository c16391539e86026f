package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	DSN            string `mapstructure:"dsn"`
	MigrateOnStart bool   `mapstructure:"migrate_on_start"`
}

type SupabaseConfig struct {
	URL       string `mapstructure:"url"`
	AnonKey   string `mapstructure:"anon_key"`
	JWTSecret string `mapstructure:"jwt_secret"`
}

// LocalAuthConfig es el admin de desarrollo (sin proveedor externo).
type LocalAuthConfig struct {
	AdminEmail        string        `mapstructure:"admin_email"`
	AdminPasswordHash string        `mapstructure:"admin_password_hash"` // bcrypt
	SigningKey        string        `mapstructure:"signing_key"`
	TTL               time.Duration `mapstructure:"ttl"`
}

type AuthConfig struct {
	Provider     string          `mapstructure:"provider"` // supabase | local
	AdminPrefix  string          `mapstructure:"admin_prefix"`
	LoginPath    string          `mapstructure:"login_path"`
	CookieSecure bool            `mapstructure:"cookie_secure"`
	Supabase     SupabaseConfig  `mapstructure:"supabase"`
	Local        LocalAuthConfig `mapstructure:"local"`
}

type EmailConfig struct {
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"`
	UseSSL     bool   `mapstructure:"use_ssl"`
	User       string `mapstructure:"user"`
	Password   string `mapstructure:"password"`
	From       string `mapstructure:"from"`
	FromName   string `mapstructure:"from_name"`
	AdminEmail string `mapstructure:"admin_email"`
}

type ImageKitConfig struct {
	PublicKey   string `mapstructure:"public_key"`
	PrivateKey  string `mapstructure:"private_key"`
	URLEndpoint string `mapstructure:"url_endpoint"`
	UploadURL   string `mapstructure:"upload_url"`
	Folder      string `mapstructure:"folder"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	App    string `mapstructure:"app"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Email    EmailConfig    `mapstructure:"email"`
	ImageKit ImageKitConfig `mapstructure:"imagekit"`
	Log      LogConfig      `mapstructure:"log"`
}

// nombres de env "planos" que ya usaba el deploy original, además de CATTERY_*.
var plainEnv = map[string]string{
	"server.port":                    "PORT",
	"database.dsn":                   "DB_DSN",
	"auth.supabase.url":              "SUPABASE_URL",
	"auth.supabase.anon_key":         "SUPABASE_ANON_KEY",
	"auth.supabase.jwt_secret":       "SUPABASE_JWT_SECRET",
	"email.host":                     "EMAIL_HOST",
	"email.port":                     "EMAIL_PORT",
	"email.use_ssl":                  "EMAIL_USE_SSL",
	"email.user":                     "EMAIL_HOST_USER",
	"email.password":                 "EMAIL_HOST_PASSWORD",
	"email.from":                     "DEFAULT_FROM_EMAIL",
	"email.admin_email":              "ADMIN_EMAIL",
	"imagekit.public_key":            "IMAGEKIT_PUBLIC_KEY",
	"imagekit.private_key":           "IMAGEKIT_PRIVATE_KEY",
	"imagekit.url_endpoint":          "IMAGEKIT_URL_ENDPOINT",
	"log.level":                      "LOG_LEVEL",
	"log.format":                     "LOG_FORMAT",
	"log.app":                        "APP_NAME",
	"auth.local.admin_email":         "ADMIN_LOGIN_EMAIL",
	"auth.local.admin_password_hash": "ADMIN_PASSWORD_HASH",
	"auth.local.signing_key":         "SESSION_SIGNING_KEY",
	"auth.provider":                  "AUTH_PROVIDER",
	"database.migrate_on_start":      "DB_MIGRATE",
	"auth.cookie_secure":             "COOKIE_SECURE",
	"server.shutdown_timeout":        "SHUTDOWN_TIMEOUT",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("database.dsn", "")
	v.SetDefault("database.migrate_on_start", true)

	v.SetDefault("auth.provider", "")
	v.SetDefault("auth.admin_prefix", "/admin")
	v.SetDefault("auth.login_path", "/auth/login")
	v.SetDefault("auth.cookie_secure", false)
	v.SetDefault("auth.supabase.url", "")
	v.SetDefault("auth.supabase.anon_key", "")
	v.SetDefault("auth.supabase.jwt_secret", "")
	v.SetDefault("auth.local.admin_email", "")
	v.SetDefault("auth.local.admin_password_hash", "")
	v.SetDefault("auth.local.signing_key", "")
	v.SetDefault("auth.local.ttl", 12*time.Hour)

	v.SetDefault("email.host", "")
	v.SetDefault("email.port", 465)
	v.SetDefault("email.use_ssl", false)
	v.SetDefault("email.user", "")
	v.SetDefault("email.password", "")
	v.SetDefault("email.from", "")
	v.SetDefault("email.from_name", "Moonlit Elegance Kittens")
	v.SetDefault("email.admin_email", "")

	v.SetDefault("imagekit.public_key", "")
	v.SetDefault("imagekit.private_key", "")
	v.SetDefault("imagekit.url_endpoint", "")
	v.SetDefault("imagekit.upload_url", "https://upload.imagekit.io/api/v1/files/upload")
	v.SetDefault("imagekit.folder", "/kittens")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.app", "cattery-storefront")
}

// Load lee config desde archivo (opcional) + env.
// Si path está vacío busca "config.yaml" en el cwd y, si no existe, sigue solo con env/defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	// overrides por env, p.ej. CATTERY_SERVER_PORT=9000
	v.SetEnvPrefix("CATTERY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range plainEnv {
		prefixed := "CATTERY_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	c.normalize()
	return &c, nil
}

func (c *Config) normalize() {
	c.Auth.Provider = strings.ToLower(strings.TrimSpace(c.Auth.Provider))
	if c.Auth.Provider == "" {
		if c.Auth.Supabase.URL != "" {
			c.Auth.Provider = "supabase"
		} else {
			c.Auth.Provider = "local"
		}
	}
	c.Auth.AdminPrefix = "/" + strings.Trim(strings.TrimSpace(c.Auth.AdminPrefix), "/")
	c.Auth.LoginPath = "/" + strings.Trim(strings.TrimSpace(c.Auth.LoginPath), "/")

	// el puerto 465 siempre es SSL implícito
	if c.Email.Port == 465 {
		c.Email.UseSSL = true
	}
	if c.Email.From == "" {
		c.Email.From = c.Email.User
	}
	if c.Email.AdminEmail == "" {
		c.Email.AdminEmail = c.Email.User
	}
}

// Addr es la dirección de escucha del server HTTP.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
