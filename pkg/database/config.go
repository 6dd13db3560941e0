package database

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the [store.database] section for the postgres show store.
type Config struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	Name            string `toml:"name"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime string `toml:"conn_max_lifetime"`
	ConnTimeout     string `toml:"conn_timeout"`
	SSLMode         string `toml:"ssl_mode"`
}

// Env names the variables that override Config. Empty names are skipped.
type Env struct {
	Host            string
	Port            string
	Name            string
	User            string
	Password        string
	MaxOpenConns    string
	MaxIdleConns    string
	ConnMaxLifetime string
	ConnTimeout     string
	SSLMode         string
}

// DefaultEnv binds every field to DATABASE_<FIELD>.
var DefaultEnv = Env{
	Host:            "DATABASE_HOST",
	Port:            "DATABASE_PORT",
	Name:            "DATABASE_NAME",
	User:            "DATABASE_USER",
	Password:        "DATABASE_PASSWORD",
	MaxOpenConns:    "DATABASE_MAX_OPEN_CONNS",
	MaxIdleConns:    "DATABASE_MAX_IDLE_CONNS",
	ConnMaxLifetime: "DATABASE_CONN_MAX_LIFETIME",
	ConnTimeout:     "DATABASE_CONN_TIMEOUT",
	SSLMode:         "DATABASE_SSL_MODE",
}

func (c *Config) ConnMaxLifetimeDuration() time.Duration {
	d, _ := time.ParseDuration(c.ConnMaxLifetime)
	return d
}

func (c *Config) ConnTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ConnTimeout)
	return d
}

// Dsn returns a keyword/value string for the pgx stdlib driver.
// Every value is single-quoted so passwords may hold spaces or quotes.
func (c *Config) Dsn() string {
	pairs := []struct{ key, value string }{
		{"host", c.Host},
		{"port", strconv.Itoa(c.Port)},
		{"dbname", c.Name},
		{"user", c.User},
		{"password", c.Password},
		{"sslmode", c.SSLMode},
	}

	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = p.key + "=" + quoteDsnValue(p.value)
	}
	return strings.Join(parts, " ")
}

func quoteDsnValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

// URL renders the same target for golang-migrate, which picks its driver
// from scheme ("pgx5" for the pgx/v5 driver).
func (c *Config) URL(scheme string) string {
	u := url.URL{
		Scheme:   scheme,
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.Name,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}

// Finalize fills defaults, applies env (nil skips it), and validates.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		if err := c.loadEnv(env); err != nil {
			return err
		}
	}
	return c.validate()
}

func (c *Config) Merge(overlay *Config) {
	mergeString(&c.Host, overlay.Host)
	mergeInt(&c.Port, overlay.Port)
	mergeString(&c.Name, overlay.Name)
	mergeString(&c.User, overlay.User)
	mergeString(&c.Password, overlay.Password)
	mergeInt(&c.MaxOpenConns, overlay.MaxOpenConns)
	mergeInt(&c.MaxIdleConns, overlay.MaxIdleConns)
	mergeString(&c.ConnMaxLifetime, overlay.ConnMaxLifetime)
	mergeString(&c.ConnTimeout, overlay.ConnTimeout)
	mergeString(&c.SSLMode, overlay.SSLMode)
}

func mergeString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func mergeInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func (c *Config) loadDefaults() {
	c.Host = defaultIfEmpty(c.Host, "localhost")
	c.Port = defaultIfZero(c.Port, 5432)
	c.MaxOpenConns = defaultIfZero(c.MaxOpenConns, 10)
	c.MaxIdleConns = defaultIfZero(c.MaxIdleConns, 2)
	c.ConnMaxLifetime = defaultIfEmpty(c.ConnMaxLifetime, "15m")
	c.ConnTimeout = defaultIfEmpty(c.ConnTimeout, "5s")
	c.SSLMode = defaultIfEmpty(c.SSLMode, "disable")
}

func defaultIfEmpty(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func defaultIfZero(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

// loadEnv applies set variables. A non-numeric port or pool size is an
// error rather than a silent fallback to the file value.
func (c *Config) loadEnv(env *Env) error {
	strs := []struct {
		name string
		dst  *string
	}{
		{env.Host, &c.Host},
		{env.Name, &c.Name},
		{env.User, &c.User},
		{env.Password, &c.Password},
		{env.ConnMaxLifetime, &c.ConnMaxLifetime},
		{env.ConnTimeout, &c.ConnTimeout},
		{env.SSLMode, &c.SSLMode},
	}
	for _, s := range strs {
		if v, ok := lookup(s.name); ok {
			*s.dst = v
		}
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{env.Port, &c.Port},
		{env.MaxOpenConns, &c.MaxOpenConns},
		{env.MaxIdleConns, &c.MaxIdleConns},
	}
	for _, n := range ints {
		v, ok := lookup(n.name)
		if !ok {
			continue
		}
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", n.name, err)
		}
		*n.dst = i
	}
	return nil
}

func lookup(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	v := os.Getenv(name)
	return v, v != ""
}

func (c *Config) validate() error {
	if c.Name == "" {
		return errors.New("name required")
	}
	if c.User == "" {
		return errors.New("user required")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.MaxIdleConns > c.MaxOpenConns {
		return fmt.Errorf("max_idle_conns %d exceeds max_open_conns %d", c.MaxIdleConns, c.MaxOpenConns)
	}
	if _, err := time.ParseDuration(c.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid conn_max_lifetime: %w", err)
	}
	if _, err := time.ParseDuration(c.ConnTimeout); err != nil {
		return fmt.Errorf("invalid conn_timeout: %w", err)
	}
	return nil
}
