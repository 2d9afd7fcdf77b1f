package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/accountkeeper/internal/flagx"
	"github.com/joho/godotenv"
)

// parseEnv overlays values from process environment variables. A dotenv
// file named by -env is loaded first and must exist; without the flag a
// ./.env is picked up if present. Variables already set in the process
// are never overwritten by the file.
//
// Malformed numbers or durations panic, like the JSON layer.
func parseEnv(config *Config) {
	if path := flagx.EnvFileFlags(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else {
		_ = godotenv.Load()
	}

	envString("GRPC_ADDRESS", &config.EndpointAddrGRPC)
	envString("DATABASE_DSN", &config.DatabaseDSN)

	envString("REDIS_ADDR", &config.RedisAddr)
	envString("REDIS_PASSWORD", &config.RedisPassword)
	envInt("REDIS_DB", &config.RedisDB)

	envString("JWT_SECRET", &config.SecretKey)
	envDuration("JWT_ACCESS_LIFETIME", &config.AccessTokenValidityDuration)
	envDuration("JWT_REFRESH_LIFETIME", &config.RefreshTokenValidityDuration)

	var maxLogin int
	if envInt("MAX_LOGIN_ATTEMPTS", &maxLogin) {
		config.MaxLoginAttempts = int64(maxLogin)
	}
	envDuration("MAX_LOGIN_ATTEMPTS_EXPIRATION", &config.LoginAttemptsTTL)

	envInt("EMAIL_CONFIRM_CODE_LENGTH", &config.ConfirmCodeLength)
	envDuration("CONFIRM_EMAIL_EXPIRATION", &config.ConfirmCodeTTL)
	envInt("RESTORE_PASSWORD_CODE_LENGTH", &config.RestoreCodeLength)
	envDuration("RESTORE_PASSWORD_INITIATE_EXPIRATION", &config.RestoreInitiateTTL)
	envDuration("RESTORE_PASSWORD_COMPLETE_EXPIRATION", &config.RestoreCompleteTTL)
	envInt("MAX_RESET_PASSWORD_ATTEMPTS", &config.MaxRestoreAttempts)
	envDuration("MAX_RESET_PASSWORD_ATTEMPTS_EXPIRATION", &config.RestoreAttemptsWindow)

	envInt("MAX_WALLETS_PER_USER", &config.MaxWalletsPerType)

	envString("RESEND_API_KEY", &config.ResendAPIKey)
	envString("MAIL_FROM", &config.MailFrom)
	if v, ok := os.LookupEnv("MAIL_RATE"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			panic(fmt.Errorf("invalid MAIL_RATE: %w", err))
		}
		config.MailRatePerSecond = f
	}

	envDuration("PURGE_INTERVAL", &config.PurgeInterval)
	envString("LOG_LEVEL", &config.LogLevel)
}

func envString(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func envInt(key string, dst *int) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		panic(fmt.Errorf("invalid %s: %w", key, err))
	}
	*dst = n
	return true
}

func envDuration(key string, dst *time.Duration) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(fmt.Errorf("invalid %s: %w", key, err))
	}
	*dst = d
}
