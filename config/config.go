package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	SecretKey struct {
		Signing string `json:"signing" yaml:"signing"`
	} `json:"secretKey" yaml:"secretKey"`

	// Token TTL configuration. Widget tokens live long because they are baked
	// into an embedded component, not a user session.
	Token *TokenConfig `json:"token" yaml:"token"`

	// Webflow OAuth and CMS API configuration.
	Webflow *WebflowConfig `json:"webflow" yaml:"webflow"`

	// Mapbox tile and geocoding API configuration.
	Mapbox *MapboxConfig `json:"mapbox" yaml:"mapbox"`

	// Cache TTLs per resource kind.
	Cache *CacheConfig `json:"cache" yaml:"cache"`

	// CORS allow-list for embedding origins.
	CORS *CORSConfig `json:"cors" yaml:"cors"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RedisConfig defines the cache backend connection
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// TokenConfig defines lifetimes for the two token audiences
type TokenConfig struct {
	WidgetTTL time.Duration `json:"widgetTtl" yaml:"widgetTtl"`
	SetupTTL  time.Duration `json:"setupTtl" yaml:"setupTtl"`
}

// WebflowConfig defines OAuth client credentials and API endpoints
type WebflowConfig struct {
	ClientID     string `json:"clientId" yaml:"clientId"`
	ClientSecret string `json:"clientSecret" yaml:"clientSecret"`
	RedirectURL  string `json:"redirectUrl" yaml:"redirectUrl"`
	// APIBaseURL is overridable so tests can point the client at a local server.
	APIBaseURL string `json:"apiBaseUrl" yaml:"apiBaseUrl"`
	AuthURL    string `json:"authUrl" yaml:"authUrl"`
}

// MapboxConfig defines the map provider API endpoint
type MapboxConfig struct {
	APIBaseURL string `json:"apiBaseUrl" yaml:"apiBaseUrl"`
}

// CacheConfig defines per-resource cache TTLs
type CacheConfig struct {
	LocationsTTL   time.Duration `json:"locationsTtl" yaml:"locationsTtl"`
	CollectionsTTL time.Duration `json:"collectionsTtl" yaml:"collectionsTtl"`
	GeocodeTTL     time.Duration `json:"geocodeTtl" yaml:"geocodeTtl"`
	TileTTL        time.Duration `json:"tileTtl" yaml:"tileTtl"`
}

// CORSConfig defines the origins allowed to embed the widget
type CORSConfig struct {
	// AllowOrigins supports exact origins and "*." wildcard suffix patterns,
	// e.g. "https://*.webflow.io".
	AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
}

// Defaults applied by New when the corresponding section is absent.
const (
	defaultWidgetTTL      = 365 * 24 * time.Hour
	defaultSetupTTL       = 30 * time.Minute
	defaultLocationsTTL   = time.Hour
	defaultCollectionsTTL = time.Hour
	defaultGeocodeTTL     = 24 * time.Hour
	defaultTileTTL        = 7 * 24 * time.Hour

	defaultWebflowAPIBaseURL = "https://api.webflow.com"
	defaultWebflowAuthURL    = "https://webflow.com/oauth/authorize"
	defaultMapboxAPIBaseURL  = "https://api.mapbox.com"
)

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: WEBFLOW_CLIENTID -> webflow.clientId (not webflow.clientid)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Token == nil {
		cfg.Token = &TokenConfig{}
	}
	if cfg.Token.WidgetTTL == 0 {
		cfg.Token.WidgetTTL = defaultWidgetTTL
	}
	if cfg.Token.SetupTTL == 0 {
		cfg.Token.SetupTTL = defaultSetupTTL
	}

	if cfg.Cache == nil {
		cfg.Cache = &CacheConfig{}
	}
	if cfg.Cache.LocationsTTL == 0 {
		cfg.Cache.LocationsTTL = defaultLocationsTTL
	}
	if cfg.Cache.CollectionsTTL == 0 {
		cfg.Cache.CollectionsTTL = defaultCollectionsTTL
	}
	if cfg.Cache.GeocodeTTL == 0 {
		cfg.Cache.GeocodeTTL = defaultGeocodeTTL
	}
	if cfg.Cache.TileTTL == 0 {
		cfg.Cache.TileTTL = defaultTileTTL
	}

	if cfg.Webflow == nil {
		cfg.Webflow = &WebflowConfig{}
	}
	if cfg.Webflow.APIBaseURL == "" {
		cfg.Webflow.APIBaseURL = defaultWebflowAPIBaseURL
	}
	if cfg.Webflow.AuthURL == "" {
		cfg.Webflow.AuthURL = defaultWebflowAuthURL
	}

	if cfg.Mapbox == nil {
		cfg.Mapbox = &MapboxConfig{}
	}
	if cfg.Mapbox.APIBaseURL == "" {
		cfg.Mapbox.APIBaseURL = defaultMapboxAPIBaseURL
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
