package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
)

// RateMode selects how createLoanRequest prices a loan: the engine either
// computes the rate from amount/duration tiers (auto) or accepts a
// caller-supplied whole-percent rate (legacy).
type RateMode string

const (
	RateModeAuto   RateMode = "auto"
	RateModeLegacy RateMode = "legacy"
)

const secondsPerDay = 24 * 60 * 60

type Config struct {
	AppPort string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs int

	// Ledger parameters.
	RateMode        RateMode
	OwnerAddress    string
	MinLoanAmount   decimal.Decimal
	MaxLoanAmount   decimal.Decimal
	MinDurationSecs int64
	MaxDurationSecs int64
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func Load() *Config {
	c := &Config{
		AppPort:   getenv("APP_PORT", "8080"),
		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "finbridge"),
		MySQLUser: getenv("MYSQL_USER", "finbridge"),
		MySQLPass: getenv("MYSQL_PASS", "finbridge"),

		RedisAddr:    getenv("REDIS_ADDR", "redis:6379"),
		IdempTTLSecs: 300,

		RateMode:        RateMode(getenv("RATE_MODE", string(RateModeAuto))),
		OwnerAddress:    getenv("OWNER_ADDRESS", ""),
		MinLoanAmount:   decimal.RequireFromString(getenv("MIN_LOAN_AMOUNT", "0.01")),
		MaxLoanAmount:   decimal.RequireFromString(getenv("MAX_LOAN_AMOUNT", "1000")),
		MinDurationSecs: 7 * secondsPerDay,
		MaxDurationSecs: 365 * secondsPerDay,
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RedisDB = n
		}
	}
	if v := os.Getenv("IDEMPOTENCY_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.IdempTTLSecs = n
		}
	}
	if v := os.Getenv("MIN_DURATION_DAYS"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.MinDurationSecs = n * secondsPerDay
		}
	}
	if v := os.Getenv("MAX_DURATION_DAYS"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.MaxDurationSecs = n * secondsPerDay
		}
	}
	return c
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.RateMode != RateModeAuto && c.RateMode != RateModeLegacy {
		return fmt.Errorf("invalid RATE_MODE %q (want auto or legacy)", c.RateMode)
	}
	if c.OwnerAddress == "" {
		return errors.New("missing OWNER_ADDRESS")
	}
	if !c.MinLoanAmount.IsPositive() || c.MaxLoanAmount.LessThanOrEqual(c.MinLoanAmount) {
		return errors.New("loan amount bounds must satisfy 0 < min < max")
	}
	if c.MinDurationSecs <= 0 || c.MaxDurationSecs <= c.MinDurationSecs {
		return errors.New("duration bounds must satisfy 0 < min < max")
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
