package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the server looks for its configuration when no
// --config flag is given.
const DefaultPath = "./etc/config.yaml"

type Postgres struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	DBName   string `yaml:"dbname"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	TimeZone string `yaml:"TimeZone"`
	MaxConns int32  `yaml:"maxConns"`
}

// DSN renders the keyword/value connection string understood by pgx.
func (p *Postgres) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		p.Host, p.User, p.Password, p.DBName, p.Port, p.SSLMode, p.TimeZone)
}

type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
		Mode string `yaml:"mode"`
	} `yaml:"server"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Postgres Postgres `yaml:"postgres"`
}

// Default returns a configuration pointing at a local database.
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Addr = ":7320"
	cfg.Server.Mode = "release"
	cfg.Log.Level = "info"
	cfg.Postgres = Postgres{
		Host:     "localhost",
		Port:     "5432",
		DBName:   "readmedatabase",
		User:     "postgres",
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 10,
	}
	return cfg
}

// Load reads the YAML file at path on top of Default and then applies
// METAAPI_* environment overrides. A missing file is tolerated only for
// DefaultPath.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}
	err := readConfig(path, cfg)
	if err != nil {
		if !(errors.Is(err, fs.ErrNotExist) && path == DefaultPath) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	applyEnv(cfg)
	return cfg, nil
}

func readConfig(filePath string, config *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, config)
}

func applyEnv(cfg *Config) {
	v := viper.New()
	v.SetEnvPrefix("METAAPI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	strs := map[string]*string{
		"server.addr":       &cfg.Server.Addr,
		"server.mode":       &cfg.Server.Mode,
		"log.level":         &cfg.Log.Level,
		"postgres.host":     &cfg.Postgres.Host,
		"postgres.port":     &cfg.Postgres.Port,
		"postgres.dbname":   &cfg.Postgres.DBName,
		"postgres.user":     &cfg.Postgres.User,
		"postgres.password": &cfg.Postgres.Password,
		"postgres.sslmode":  &cfg.Postgres.SSLMode,
		"postgres.timezone": &cfg.Postgres.TimeZone,
	}
	for key, dst := range strs {
		if s := v.GetString(key); s != "" {
			*dst = s
		}
	}
	if n := v.GetInt32("postgres.maxconns"); n > 0 {
		cfg.Postgres.MaxConns = n
	}
}
