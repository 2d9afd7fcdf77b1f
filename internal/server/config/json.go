package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/accountkeeper/internal/flagx"
	"github.com/dmitrijs2005/accountkeeper/internal/timex"
)

// JsonConfig mirrors Config for unmarshalling. Durations use timex.Duration
// so both "15m" and integer nanoseconds are accepted. Pointer and zero
// values mean "not set" and leave the current value alone.
type JsonConfig struct {
	EndpointAddrGRPC string `json:"endpoint_addr_grpc"`
	DatabaseDSN      string `json:"database_dsn"`

	RedisAddr     string `json:"redis_addr"`
	RedisPassword string `json:"redis_password"`
	RedisDB       *int   `json:"redis_db"`

	SecretKey                    string         `json:"secret_key"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`

	MaxLoginAttempts int64          `json:"max_login_attempts"`
	LoginAttemptsTTL timex.Duration `json:"login_attempts_ttl"`

	ConfirmCodeLength     int            `json:"confirm_code_length"`
	ConfirmCodeTTL        timex.Duration `json:"confirm_code_ttl"`
	RestoreCodeLength     int            `json:"restore_code_length"`
	RestoreInitiateTTL    timex.Duration `json:"restore_initiate_ttl"`
	RestoreCompleteTTL    timex.Duration `json:"restore_complete_ttl"`
	MaxRestoreAttempts    int            `json:"max_restore_attempts"`
	RestoreAttemptsWindow timex.Duration `json:"restore_attempts_window"`

	MaxWalletsPerType int `json:"max_wallets_per_type"`

	ResendAPIKey      string   `json:"resend_api_key"`
	MailFrom          string   `json:"mail_from"`
	MailRatePerSecond *float64 `json:"mail_rate_per_second"`

	PurgeInterval timex.Duration `json:"purge_interval"`
	LogLevel      string         `json:"log_level"`
}

// parseJson overlays values from the JSON file named by -c/-config. Without
// the flag nothing is loaded. An unreadable file or invalid JSON panics.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.RedisAddr, c.RedisAddr)
	setString(&config.RedisPassword, c.RedisPassword)
	if c.RedisDB != nil {
		config.RedisDB = *c.RedisDB
	}
	setString(&config.SecretKey, c.SecretKey)
	setDuration(&config.AccessTokenValidityDuration, c.AccessTokenValidityDuration)
	setDuration(&config.RefreshTokenValidityDuration, c.RefreshTokenValidityDuration)
	if c.MaxLoginAttempts > 0 {
		config.MaxLoginAttempts = c.MaxLoginAttempts
	}
	setDuration(&config.LoginAttemptsTTL, c.LoginAttemptsTTL)
	setInt(&config.ConfirmCodeLength, c.ConfirmCodeLength)
	setDuration(&config.ConfirmCodeTTL, c.ConfirmCodeTTL)
	setInt(&config.RestoreCodeLength, c.RestoreCodeLength)
	setDuration(&config.RestoreInitiateTTL, c.RestoreInitiateTTL)
	setDuration(&config.RestoreCompleteTTL, c.RestoreCompleteTTL)
	setInt(&config.MaxRestoreAttempts, c.MaxRestoreAttempts)
	setDuration(&config.RestoreAttemptsWindow, c.RestoreAttemptsWindow)
	setInt(&config.MaxWalletsPerType, c.MaxWalletsPerType)
	setString(&config.ResendAPIKey, c.ResendAPIKey)
	setString(&config.MailFrom, c.MailFrom)
	if c.MailRatePerSecond != nil {
		config.MailRatePerSecond = *c.MailRatePerSecond
	}
	setDuration(&config.PurgeInterval, c.PurgeInterval)
	setString(&config.LogLevel, c.LogLevel)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v > 0 {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v timex.Duration) {
	if v.Duration > 0 {
		*dst = v.Duration
	}
}
