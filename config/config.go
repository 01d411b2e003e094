package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

type SysConfig struct {
	Workdir  string `yaml:"workdir" json:"workdir"`
	Location string `yaml:"location" json:"location"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host       string `yaml:"host" json:"host"`
	Port       int    `yaml:"port" json:"port"`
	JwtSecret  string `yaml:"jwt_secret" json:"jwt_secret"`
	AccessTTL  int    `yaml:"access_ttl" json:"access_ttl"`   // minutes
	RefreshTTL int    `yaml:"refresh_ttl" json:"refresh_ttl"` // hours
}

type DBConfig struct {
	Type     string `yaml:"type" json:"type"`
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Name     string `yaml:"name" json:"name"`
	User     string `yaml:"user" json:"user"`
	Passwd   string `yaml:"passwd" json:"passwd"`
	MaxConn  int    `yaml:"max_conn" json:"max_conn"`
	IdleConn int    `yaml:"idle_conn" json:"idle_conn"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System   SysConfig `yaml:"system" json:"system"`
	Web      WebConfig `yaml:"web" json:"web"`
	Database DBConfig  `yaml:"database" json:"database"`
	Logger   LogConfig `yaml:"logger" json:"logger"`
}

func (c *AppConfig) AccessTokenDuration() time.Duration {
	if c.Web.AccessTTL <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(c.Web.AccessTTL) * time.Minute
}

func (c *AppConfig) RefreshTokenDuration() time.Duration {
	if c.Web.RefreshTTL <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.Web.RefreshTTL) * time.Hour
}

var DefaultAppConfig = AppConfig{
	System: SysConfig{
		Workdir:  "/var/shopcore",
		Location: "Asia/Jakarta",
		Debug:    true,
	},
	Web: WebConfig{
		Host:       "0.0.0.0",
		Port:       1816,
		JwtSecret:  "9b6bdbd1-0e2c-4e6c-a740-shopcore",
		AccessTTL:  30,
		RefreshTTL: 168,
	},
	Database: DBConfig{
		Type:     "postgres",
		Host:     "127.0.0.1",
		Port:     5432,
		Name:     "shopcore",
		User:     "postgres",
		Passwd:   "postgres",
		MaxConn:  100,
		IdleConn: 10,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/shopcore/shopcore.log",
	},
}

func setEnvValue(name string, f func(v string)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(evalue)
	}
}

func setEnvBoolValue(name string, f func(v bool)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(evalue == "true" || evalue == "1" || evalue == "on")
	}
}

func setEnvIntValue(name string, f func(v int)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(cast.ToInt(evalue))
	}
}

// LoadConfig reads the YAML configuration file and applies SHOPCORE_*
// environment overrides on top of it. A missing file yields the defaults.
func LoadConfig(cfile string) *AppConfig {
	if cfile == "" {
		cfile = "shopcore.yml"
	}

	cfg := new(AppConfig)
	*cfg = DefaultAppConfig
	if data, err := os.ReadFile(cfile); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			panic(err)
		}
	}

	setEnvValue("SHOPCORE_SYSTEM_WORKDIR", func(v string) { cfg.System.Workdir = v })
	setEnvValue("SHOPCORE_SYSTEM_LOCATION", func(v string) { cfg.System.Location = v })
	setEnvBoolValue("SHOPCORE_SYSTEM_DEBUG", func(v bool) { cfg.System.Debug = v })

	setEnvValue("SHOPCORE_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvIntValue("SHOPCORE_WEB_PORT", func(v int) { cfg.Web.Port = v })
	setEnvValue("SHOPCORE_WEB_JWT_SECRET", func(v string) { cfg.Web.JwtSecret = v })
	setEnvIntValue("SHOPCORE_WEB_ACCESS_TTL", func(v int) { cfg.Web.AccessTTL = v })
	setEnvIntValue("SHOPCORE_WEB_REFRESH_TTL", func(v int) { cfg.Web.RefreshTTL = v })

	setEnvValue("SHOPCORE_DB_TYPE", func(v string) { cfg.Database.Type = v })
	setEnvValue("SHOPCORE_DB_HOST", func(v string) { cfg.Database.Host = v })
	setEnvIntValue("SHOPCORE_DB_PORT", func(v int) { cfg.Database.Port = v })
	setEnvValue("SHOPCORE_DB_NAME", func(v string) { cfg.Database.Name = v })
	setEnvValue("SHOPCORE_DB_USER", func(v string) { cfg.Database.User = v })
	setEnvValue("SHOPCORE_DB_PWD", func(v string) { cfg.Database.Passwd = v })
	setEnvBoolValue("SHOPCORE_DB_DEBUG", func(v bool) { cfg.Database.Debug = v })

	setEnvValue("SHOPCORE_LOGGER_MODE", func(v string) { cfg.Logger.Mode = v })
	setEnvBoolValue("SHOPCORE_LOGGER_FILE_ENABLE", func(v bool) { cfg.Logger.FileEnable = v })
	setEnvValue("SHOPCORE_LOGGER_FILENAME", func(v string) { cfg.Logger.Filename = v })

	if cfg.Logger.Filename == "" {
		cfg.Logger.Filename = filepath.Join(cfg.System.Workdir, "shopcore.log")
	}

	return cfg
}
