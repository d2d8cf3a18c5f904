package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
	ProviderOllama    = "ollama"

	StoreDriverFile   = "file"
	StoreDriverSQLite = "sqlite"
)

type Config struct {
	Server ServerConfig
	Docs   DocsConfig
	LLM    LLMConfig
	Store  StoreConfig
	Redis  RedisConfig
	JWT    JWTConfig
	Auth   AuthConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DocsConfig struct {
	Root string
}

type LLMConfig struct {
	Provider    string
	APIKey      string
	Model       string
	ServerURL   string
	MaxTokens   int
	Temperature float64
	// ForceMock selects the mock generator even when a credential is configured.
	ForceMock bool
}

// Mock reports whether the deterministic mock generator should be used.
// Ollama needs a server URL instead of an API key.
func (c LLMConfig) Mock() bool {
	if c.ForceMock {
		return true
	}
	if c.Provider == ProviderOllama {
		return c.ServerURL == ""
	}
	return c.APIKey == ""
}

type StoreConfig struct {
	Driver     string
	DataDir    string
	SQLitePath string
}

type RedisConfig struct {
	Address       string
	Password      string
	DB            int
	GenerationTTL time.Duration
}

type JWTConfig struct {
	SecretKey      string
	AccessTokenTTL time.Duration
}

type GoogleOAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type AuthConfig struct {
	DemoToken string
	Google    GoogleOAuthConfig
}

type LoggerConfig struct {
	Level string
	Env   string
	// Output is "stdout" or "stderr".
	Output string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 120)
	v.SetDefault("docs.root", "../documentation")
	v.SetDefault("llm.provider", ProviderAnthropic)
	v.SetDefault("llm.model", "claude-3-haiku-20240307")
	v.SetDefault("llm.max_tokens", 4096)
	v.SetDefault("llm.temperature", 0.2)
	v.SetDefault("llm.mock", false)
	v.SetDefault("store.driver", StoreDriverFile)
	v.SetDefault("store.data_dir", "./data")
	v.SetDefault("store.sqlite_path", "./data/docquiz.db")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.generation_ttl", 3600)
	v.SetDefault("jwt.access_token_ttl", 86400)
	v.SetDefault("auth.demo_token", "DEMO_TOKEN")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.output", "stdout")
}

// LoadConfig reads config.yaml from the usual locations, then layers .env and
// environment variables on top. A missing config file is not an error.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom("")
}

// LoadConfigFrom is LoadConfig with an explicit config file; empty path searches
// the default locations.
func LoadConfigFrom(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
		},
		Docs: DocsConfig{
			Root: v.GetString("docs.root"),
		},
		LLM: LLMConfig{
			Provider:    strings.ToLower(v.GetString("llm.provider")),
			APIKey:      v.GetString("llm.api_key"),
			Model:       v.GetString("llm.model"),
			ServerURL:   v.GetString("llm.server_url"),
			MaxTokens:   v.GetInt("llm.max_tokens"),
			Temperature: v.GetFloat64("llm.temperature"),
			ForceMock:   v.GetBool("llm.mock"),
		},
		Store: StoreConfig{
			Driver:     strings.ToLower(v.GetString("store.driver")),
			DataDir:    v.GetString("store.data_dir"),
			SQLitePath: v.GetString("store.sqlite_path"),
		},
		Redis: RedisConfig{
			Address:       v.GetString("redis.address"),
			Password:      v.GetString("redis.password"),
			DB:            v.GetInt("redis.db"),
			GenerationTTL: time.Duration(v.GetInt("redis.generation_ttl")) * time.Second,
		},
		JWT: JWTConfig{
			SecretKey:      v.GetString("jwt.secret_key"),
			AccessTokenTTL: time.Duration(v.GetInt("jwt.access_token_ttl")) * time.Second,
		},
		Auth: AuthConfig{
			DemoToken: v.GetString("auth.demo_token"),
			Google: GoogleOAuthConfig{
				ClientID:     v.GetString("auth.google.client_id"),
				ClientSecret: v.GetString("auth.google.client_secret"),
				RedirectURL:  v.GetString("auth.google.redirect_url"),
			},
		},
		Logger: LoggerConfig{
			Level:  v.GetString("logger.level"),
			Env:    v.GetString("logger.env"),
			Output: v.GetString("logger.output"),
		},
	}

	// Provider-native credential variables
	if config.LLM.APIKey == "" {
		switch config.LLM.Provider {
		case ProviderAnthropic:
			config.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		case ProviderOpenAI:
			config.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		}
	}
	if docsRoot := os.Getenv("DOCS_ROOT"); docsRoot != "" {
		config.Docs.Root = docsRoot
	}
	if secret := os.Getenv("JWT_SECRET_KEY"); secret != "" {
		config.JWT.SecretKey = secret
	}
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks values that would otherwise fail late at startup.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderAnthropic, ProviderOpenAI, ProviderOllama:
	default:
		return fmt.Errorf("unsupported llm provider: %q", c.LLM.Provider)
	}
	switch c.Store.Driver {
	case StoreDriverFile, StoreDriverSQLite:
	default:
		return fmt.Errorf("unsupported store driver: %q", c.Store.Driver)
	}
	if c.Docs.Root == "" {
		return errors.New("docs.root must not be empty")
	}
	return nil
}
