package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// App holds all runtime configuration derived from environment variables.
// Fee policy values are business constants owned by operations, not code:
// they must be changeable without a deploy.
type App struct {
	Port            string
	NodeURL         string
	DBConnectionURL string
	RedisURL        string
	JWTSecret       string

	ChainID          int64
	NativeSymbol     string
	AliasSuffix      string
	RelayerKeyHex    string
	KeystoreSecret   string
	KeystoreSalt     string
	SponsorGas       bool
	RelayerGasMargin decimal.Decimal

	DomesticFeeRate      decimal.Decimal
	InternationalFeeRate decimal.Decimal
	MinPlatformFeeUSD    decimal.Decimal
	MaxPlatformFeeUSD    decimal.Decimal
	FreeThresholdUSD     decimal.Decimal

	NativeTransferGas  uint64
	TokenTransferGas   uint64
	FallbackGasPrice   int64
	CallTimeout        time.Duration
	SubmitTimeout      time.Duration
	PriceTTL           time.Duration
}

// NewApp reads environment variables using viper and returns a typed config.
func NewApp() (App, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("API_PORT", "8080")
	v.SetDefault("ETH_NODE_URL", "")
	v.SetDefault("DB_CONNECTION_URL", "")
	v.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("CHAIN_ID", 80002)
	v.SetDefault("NATIVE_SYMBOL", "POL")
	v.SetDefault("ALIAS_SUFFIX", "@sendr")
	v.SetDefault("RELAYER_PRIVATE_KEY", "")
	v.SetDefault("KEYSTORE_SECRET", "")
	v.SetDefault("KEYSTORE_SALT", "")
	v.SetDefault("SPONSOR_GAS", true)
	v.SetDefault("RELAYER_GAS_MARGIN", "1.3")
	v.SetDefault("DOMESTIC_FEE_RATE", "0.01")
	v.SetDefault("INTERNATIONAL_FEE_RATE", "0.02")
	v.SetDefault("MIN_PLATFORM_FEE_USD", "0.10")
	v.SetDefault("MAX_PLATFORM_FEE_USD", "50.00")
	v.SetDefault("FREE_THRESHOLD_USD", "1.00")
	v.SetDefault("NATIVE_TRANSFER_GAS", 21000)
	v.SetDefault("TOKEN_TRANSFER_GAS", 100000)
	v.SetDefault("FALLBACK_GAS_PRICE_WEI", 20_000_000_000)
	v.SetDefault("CALL_TIMEOUT", "10s")
	v.SetDefault("SUBMIT_TIMEOUT", "30s")
	v.SetDefault("PRICE_TTL", "5m")

	cfg := App{
		Port:            v.GetString("API_PORT"),
		NodeURL:         v.GetString("ETH_NODE_URL"),
		DBConnectionURL: v.GetString("DB_CONNECTION_URL"),
		RedisURL:        v.GetString("REDIS_URL"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		ChainID:         v.GetInt64("CHAIN_ID"),
		NativeSymbol:    v.GetString("NATIVE_SYMBOL"),
		AliasSuffix:     v.GetString("ALIAS_SUFFIX"),
		RelayerKeyHex:   v.GetString("RELAYER_PRIVATE_KEY"),
		KeystoreSecret:  v.GetString("KEYSTORE_SECRET"),
		KeystoreSalt:    v.GetString("KEYSTORE_SALT"),
		SponsorGas:      v.GetBool("SPONSOR_GAS"),

		NativeTransferGas: v.GetUint64("NATIVE_TRANSFER_GAS"),
		TokenTransferGas:  v.GetUint64("TOKEN_TRANSFER_GAS"),
		FallbackGasPrice:  v.GetInt64("FALLBACK_GAS_PRICE_WEI"),
		CallTimeout:       v.GetDuration("CALL_TIMEOUT"),
		SubmitTimeout:     v.GetDuration("SUBMIT_TIMEOUT"),
		PriceTTL:          v.GetDuration("PRICE_TTL"),
	}

	var err error
	for _, field := range []struct {
		name string
		dst  *decimal.Decimal
	}{
		{"RELAYER_GAS_MARGIN", &cfg.RelayerGasMargin},
		{"DOMESTIC_FEE_RATE", &cfg.DomesticFeeRate},
		{"INTERNATIONAL_FEE_RATE", &cfg.InternationalFeeRate},
		{"MIN_PLATFORM_FEE_USD", &cfg.MinPlatformFeeUSD},
		{"MAX_PLATFORM_FEE_USD", &cfg.MaxPlatformFeeUSD},
		{"FREE_THRESHOLD_USD", &cfg.FreeThresholdUSD},
	} {
		*field.dst, err = decimal.NewFromString(v.GetString(field.name))
		if err != nil {
			return App{}, fmt.Errorf("invalid %s: %w", field.name, err)
		}
	}

	if err := cfg.validate(); err != nil {
		return App{}, err
	}

	return cfg, nil
}

func (c App) validate() error {
	required := map[string]string{
		"ETH_NODE_URL":        c.NodeURL,
		"DB_CONNECTION_URL":   c.DBConnectionURL,
		"JWT_SECRET":          c.JWTSecret,
		"RELAYER_PRIVATE_KEY": c.RelayerKeyHex,
		"KEYSTORE_SECRET":     c.KeystoreSecret,
		"KEYSTORE_SALT":       c.KeystoreSalt,
	}
	for name, val := range required {
		if strings.TrimSpace(val) == "" {
			return fmt.Errorf("%s is required", name)
		}
	}

	if c.MinPlatformFeeUSD.GreaterThan(c.MaxPlatformFeeUSD) {
		return fmt.Errorf("MIN_PLATFORM_FEE_USD exceeds MAX_PLATFORM_FEE_USD")
	}
	if c.RelayerGasMargin.LessThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("RELAYER_GAS_MARGIN must be at least 1")
	}

	return nil
}
