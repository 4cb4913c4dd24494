package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the study-planner service.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Uploads UploadsConfig `mapstructure:"uploads"`
	Planner PlannerConfig `mapstructure:"planner"`
	Export  ExportConfig  `mapstructure:"export"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Listen       string   `mapstructure:"listen"`
	AllowOrigins []string `mapstructure:"allow_origins"`
}

func (s ServerConfig) Normalize() ServerConfig {
	if s.Listen == "" {
		s.Listen = ":5000"
	}
	if !strings.Contains(s.Listen, ":") {
		s.Listen = ":" + s.Listen
	}
	if len(s.AllowOrigins) == 0 {
		s.AllowOrigins = []string{"*"}
	}
	return s
}

// UploadsConfig controls the catalog upload holding area.
type UploadsConfig struct {
	Dir       string `mapstructure:"dir"`
	MaxSizeMB int64  `mapstructure:"max_size_mb"`
	Extension string `mapstructure:"extension"`
}

func (u UploadsConfig) Normalize() UploadsConfig {
	if u.Dir == "" {
		u.Dir = "uploads"
	}
	if u.Extension == "" {
		u.Extension = ".csv"
	}
	if !strings.HasPrefix(u.Extension, ".") {
		u.Extension = "." + u.Extension
	}
	u.Extension = strings.ToLower(u.Extension)
	return u
}

func (u UploadsConfig) Validate() error {
	if u.MaxSizeMB < 0 {
		return fmt.Errorf("uploads.max_size_mb cannot be negative")
	}
	return nil
}

// MaxBytes converts the configured cap to bytes; 0 disables the cap.
func (u UploadsConfig) MaxBytes() int64 { return u.MaxSizeMB << 20 }

// PlannerConfig tunes the allocation pipeline.
type PlannerConfig struct {
	// EffortEpsilon widens the accepted band around an effort sum of 100.
	// The default of 0 demands exact equality.
	EffortEpsilon float64 `mapstructure:"effort_epsilon"`
	// PagesPerHour is the assumed reading rate for book durations.
	PagesPerHour float64 `mapstructure:"pages_per_hour"`
}

func (p PlannerConfig) Normalize() PlannerConfig {
	if p.PagesPerHour <= 0 {
		p.PagesPerHour = 60
	}
	return p
}

func (p PlannerConfig) Validate() error {
	if p.EffortEpsilon < 0 {
		return fmt.Errorf("planner.effort_epsilon cannot be negative")
	}
	return nil
}

// ExportConfig names the downloadable artifacts.
type ExportConfig struct {
	Basename string `mapstructure:"basename"`
	PDFTitle string `mapstructure:"pdf_title"`
}

func (e ExportConfig) Normalize() ExportConfig {
	if e.Basename == "" {
		e.Basename = "study_schedule"
	}
	if e.PDFTitle == "" {
		e.PDFTitle = "Study Schedule"
	}
	return e
}

// LoadConfig loads config from file
func LoadConfig(path string) *Config {
	viper.SetConfigName("config") // name of config file (without extension)
	viper.SetConfigType("json")   // REQUIRED if the config file does not have the extension in the name
	viper.SetDefault("server.listen", ":5000")
	viper.SetDefault("uploads.dir", "uploads")
	viper.SetDefault("uploads.max_size_mb", 8)
	viper.SetDefault("uploads.extension", ".csv")
	viper.SetDefault("planner.effort_epsilon", 0.0)
	viper.SetDefault("planner.pages_per_hour", 60.0)
	viper.SetDefault("export.basename", "study_schedule")
	viper.SetDefault("export.pdf_title", "Study Schedule")

	if path == "" {
		viper.AddConfigPath("./config") // path to look for the config file in
		viper.AddConfigPath(".")        // optionally look for config in the working directory
		exe, _ := os.Executable()
		exeDir := filepath.Dir(exe)
		viper.AddConfigPath(exeDir)                                // bin/
		viper.AddConfigPath(filepath.Join(exeDir, ".."))           // repo root
		viper.AddConfigPath(filepath.Join(exeDir, "..", "config")) // repo root/config
	} else {
		viper.SetConfigFile(path)
	}

	viper.SetEnvPrefix("STUDYPLAN")
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)

	viper.AutomaticEnv() // read in environment variables that match (STUDYPLAN_*)

	if err := viper.ReadInConfig(); err != nil {
		// a missing config file falls back to defaults; anything else is fatal
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}

	config.Server = config.Server.Normalize()
	config.Uploads = config.Uploads.Normalize()
	config.Planner = config.Planner.Normalize()
	config.Export = config.Export.Normalize()

	if err := config.Uploads.Validate(); err != nil {
		panic(err)
	}
	if err := config.Planner.Validate(); err != nil {
		panic(err)
	}
	return &config
}
