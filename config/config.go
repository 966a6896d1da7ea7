package config

import (
	"os"
	"path/filepath"
	"strconv"
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

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultMaxDeliveryRadius  = 50.0
	defaultCurrency           = "ZAR"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Migration controls schema management on startup
	Migration struct {
		AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
	} `json:"migration" yaml:"migration"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	// Catalog configuration for listings and the static catalog
	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`

	// Basket configuration for cart and wishlist persistence
	Basket *BasketConfig `json:"basket" yaml:"basket"`

	// Payment configuration for the mock payment gateway
	Payment *PaymentConfig `json:"payment" yaml:"payment"`

	// PubSub configuration for order event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for order pickup codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Worker configuration for the event worker
	Worker *WorkerConfig `json:"worker" yaml:"worker"`

	// TestRoutes exposes development endpoints such as token issuing
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// CatalogConfig defines catalog listing behaviour
type CatalogConfig struct {
	// Currency code used for all prices
	Currency string `json:"currency" yaml:"currency"`

	// Largest delivery radius a marketplace listing may declare, in kilometers.
	// Also bounds the SQL pre-filter used for location-aware listings.
	MaxDeliveryRadiusKm float64 `json:"maxDeliveryRadiusKm" yaml:"maxDeliveryRadiusKm"`

	// Operator-curated items that are not backed by a supplier listing
	Static []StaticItemConfig `json:"static" yaml:"static"`
}

// StaticItemConfig describes one static catalog entry
type StaticItemConfig struct {
	ID                  string   `json:"id" yaml:"id"`
	Vertical            string   `json:"vertical" yaml:"vertical"`
	Name                string   `json:"name" yaml:"name"`
	Description         string   `json:"description" yaml:"description"`
	Price               string   `json:"price" yaml:"price"`
	Image               string   `json:"image" yaml:"image"`
	AvailableEverywhere bool     `json:"availableEverywhere" yaml:"availableEverywhere"`
	Region              string   `json:"region" yaml:"region"`
	Latitude            *float64 `json:"latitude" yaml:"latitude"`
	Longitude           *float64 `json:"longitude" yaml:"longitude"`
	DeliveryRadiusKm    *float64 `json:"deliveryRadiusKm" yaml:"deliveryRadiusKm"`
	NoDelivery          bool     `json:"noDelivery" yaml:"noDelivery"`
}

// BasketConfig defines where carts and wishlists are persisted
type BasketConfig struct {
	// Provider type: "memory", "postgres" or "dynamodb"
	Provider string `json:"provider" yaml:"provider"`

	// DynamoDB settings (for dynamodb provider)
	DynamoDB *DynamoDBConfig `json:"dynamodb" yaml:"dynamodb"`
}

// DynamoDBConfig defines the DynamoDB key-value table
type DynamoDBConfig struct {
	Region string `json:"region" yaml:"region"`
	Table  string `json:"table" yaml:"table"`

	// Optional endpoint override, e.g. DynamoDB Local
	Endpoint string `json:"endpoint" yaml:"endpoint"`
}

// PaymentConfig defines the mock payment gateway behaviour
type PaymentConfig struct {
	// Probability in [0,1] that a charge is declined
	FailureRate float64 `json:"failureRate" yaml:"failureRate"`

	// Simulated gateway latency
	ProcessingDelay time.Duration `json:"processingDelay" yaml:"processingDelay"`

	// Seed for the decline sampler; 0 uses the current time
	Seed uint64 `json:"seed" yaml:"seed"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// WorkerConfig defines the event worker configuration
type WorkerConfig struct {
	// Port the worker listens on; falls back to http.port
	Port int `json:"port" yaml:"port"`

	// Verify the OIDC token Pub/Sub attaches to push requests
	VerifyPushAuth bool `json:"verifyPushAuth" yaml:"verifyPushAuth"`

	// Expected audience of the push OIDC token
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// TestRoutesConfig toggles the /test endpoints
type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

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
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
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

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	applyCatalogDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyCatalogDefaults fills catalog settings that were left empty.
func applyCatalogDefaults(cfg *Config) {
	if cfg.Catalog == nil {
		cfg.Catalog = &CatalogConfig{}
	}
	if cfg.Catalog.Currency == "" {
		cfg.Catalog.Currency = defaultCurrency
	}
	if cfg.Catalog.MaxDeliveryRadiusKm <= 0 {
		cfg.Catalog.MaxDeliveryRadiusKm = defaultMaxDeliveryRadius
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
