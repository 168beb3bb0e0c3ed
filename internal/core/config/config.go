package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// NTM holds the emissions service and identity endpoint configuration.
	NTM NTMConfig `mapstructure:",squash"`

	// Maps holds the driving-distance provider configuration.
	Maps MapsConfig `mapstructure:",squash"`

	// SeaRoute holds the sea-route provider configuration.
	SeaRoute SeaRouteConfig `mapstructure:",squash"`

	// Redis holds the report storage configuration.
	Redis RedisConfig `mapstructure:",squash"`

	// Proxy holds the outbound proxy used by every HTTP client.
	Proxy ProxyConfig `mapstructure:",squash"`

	// Factors holds the fixed calculation constants.
	Factors FactorsConfig `mapstructure:",squash"`

	// Defaults holds the default parameter table for the emissions service.
	Defaults DefaultsConfig `mapstructure:",squash"`
}

// NTMConfig holds the credentials and endpoints of the NTMCalc web service.
type NTMConfig struct {
	// Username is the primary account name used for the password grant.
	Username string `mapstructure:"NTM_USERNAME" required:"true"`
	// Password is the primary account password.
	Password string `mapstructure:"NTM_PASSWORD" required:"true"`
	// ClientID is sent in the Basic authorization header.
	ClientID string `mapstructure:"NTM_CLIENT_ID" required:"true"`
	// ClientSecret is sent in the Basic authorization header.
	ClientSecret string `mapstructure:"NTM_CLIENT_SECRET" required:"true"`
	// AuthURL is the base URL of the identity server.
	AuthURL string `mapstructure:"NTM_AUTH_URL" default:"https://auth.transportmeasures.org"`
	// TokenPath is the path of the token endpoint.
	TokenPath string `mapstructure:"NTM_TOKEN_PATH" default:"/auth/realms/ntm/protocol/openid-connect/token"`
	// LogoutPath is the path of the logout endpoint.
	LogoutPath string `mapstructure:"NTM_LOGOUT_PATH" default:"/auth/realms/ntm/protocol/openid-connect/logout"`
	// APIURL is the base URL of the transport activities API.
	APIURL string `mapstructure:"NTM_API_URL" default:"https://api.transportmeasures.org"`
	// TimeoutSeconds bounds every call to the identity and emissions endpoints.
	TimeoutSeconds int `mapstructure:"NTM_TIMEOUT_SECONDS" default:"30"`
}

// Timeout returns TimeoutSeconds as a duration.
func (c NTMConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// MapsConfig holds the Google Maps Distance Matrix credentials.
type MapsConfig struct {
	// APIKey is the Google Maps API key.
	APIKey string `mapstructure:"GOOGLE_MAPS_API_KEY" required:"true"`
	// URL is the base URL of the Maps web services.
	URL string `mapstructure:"GOOGLE_MAPS_URL" default:"https://maps.googleapis.com"`
}

// SeaRouteConfig holds the sea-route service location.
type SeaRouteConfig struct {
	// URL is the base URL of the sea-route service.
	URL string `mapstructure:"SEAROUTE_URL" required:"true"`
}

// RedisConfig holds the report storage settings. Storage is disabled when URL is empty.
type RedisConfig struct {
	// URL in the format redis://[:password@]host[:port][/database].
	URL string `mapstructure:"REDIS_URL"`
	// ReportTTLHours is how long stored reports are kept.
	ReportTTLHours int `mapstructure:"REPORT_TTL_HOURS" default:"168"`
}

// ReportTTL returns ReportTTLHours as a duration.
func (c RedisConfig) ReportTTL() time.Duration {
	return time.Duration(c.ReportTTLHours) * time.Hour
}

// ProxyConfig holds the outbound proxy settings.
type ProxyConfig struct {
	Enabled  bool   `mapstructure:"PROXY_ENABLED"`
	Host     string `mapstructure:"PROXY_HOST"`
	Port     int    `mapstructure:"PROXY_PORT"`
	Username string `mapstructure:"PROXY_USERNAME"`
	Password string `mapstructure:"PROXY_PASSWORD"`
}

// FactorsConfig holds the fixed multipliers and margins of the calculation.
type FactorsConfig struct {
	// RFI is the radiative forcing index applied to air freight results.
	RFI float64 `mapstructure:"RFI" default:"2"`
	// AirDetourKm is added to great-circle distances (EN 16258).
	AirDetourKm float64 `mapstructure:"AIR_DETOUR_KM" default:"95"`
	// TokenSafetyMarginMs is subtracted from every token lifetime.
	TokenSafetyMarginMs int `mapstructure:"TOKEN_SAFETY_MARGIN_MS" default:"5000"`
}

// TokenSafetyMargin returns TokenSafetyMarginMs as a duration.
func (c FactorsConfig) TokenSafetyMargin() time.Duration {
	return time.Duration(c.TokenSafetyMarginMs) * time.Millisecond
}

// DefaultsConfig holds the default NTMCalc parameters per transport mode.
type DefaultsConfig struct {
	AircraftModel                 string  `mapstructure:"DEFAULT_AIRCRAFT_MODEL" default:"B747-400F"`
	DefaultBellyAircraftModel     string  `mapstructure:"DEFAULT_BELLY_AIRCRAFT_MODEL" default:"B777-300ER-Belly"`
	PassengerLoadFactor           float64 `mapstructure:"DEFAULT_PASSENGER_LOAD_FACTOR" default:"90"`
	VolumetricCargoLoadFactor     float64 `mapstructure:"DEFAULT_VOLUMETRIC_CARGO_LOAD_FACTOR" default:"75"`
	AirCargoLoadFactorWeight      float64 `mapstructure:"DEFAULT_AIR_CARGO_LOAD_FACTOR_WEIGHT" default:"65"`
	CommercialVolumetricFactor    float64 `mapstructure:"DEFAULT_COMMERCIAL_VOLUMETRIC_FACTOR" default:"167"`
	VehicleType                   string  `mapstructure:"DEFAULT_VEHICLE_TYPE" default:"rigid_truck_7_5_t"`
	Fuel                          string  `mapstructure:"DEFAULT_FUEL" default:"diesel_b7_eu"`
	RoadType                      string  `mapstructure:"DEFAULT_ROAD_TYPE" default:"average_road"`
	EuroClass                     string  `mapstructure:"DEFAULT_EURO_CLASS" default:"euro_6"`
	CargoCarrierCapacityWeight    float64 `mapstructure:"DEFAULT_CARGO_CARRIER_CAPACITY_WEIGHT" default:"6.0"`
	TypeOfWaters                  string  `mapstructure:"DEFAULT_TYPE_OF_WATERS" default:"ocean"`
	ShipSize                      float64 `mapstructure:"DEFAULT_SHIP_SIZE" default:"40000"`
	MaritimeCargoLoadFactorWeight float64 `mapstructure:"DEFAULT_MARITIME_CARGO_LOAD_FACTOR_WEIGHT" default:"70"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags iterates over the struct fields, binds env keys and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			if err := v.BindEnv(key); err != nil {
				return fmt.Errorf("failed to bind %s: %w", key, err)
			}
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && isZero(val.Field(i)) {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
