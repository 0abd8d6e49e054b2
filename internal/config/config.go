package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port           int    `envconfig:"PORT" default:"8080"`
	DatabaseURL    string `envconfig:"DATABASE_URL"`
	JWTSecret      string `envconfig:"JWT_SECRET"`
	AllowedOrigins string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	AssetDir       string `envconfig:"ASSET_DIR" default:"./data/assets"`

	Editor Editor `envconfig:"EDITOR"`
}

// Editor holds the interaction options shared by tools and commands.
type Editor struct {
	TryToConnect     bool     `envconfig:"TRY_TO_CONNECT" default:"true"`
	DefaultIsStroked bool     `envconfig:"DEFAULT_IS_STROKED" default:"true"`
	DefaultIsFilled  bool     `envconfig:"DEFAULT_IS_FILLED" default:"false"`
	SnapToGrid       bool     `envconfig:"SNAP_TO_GRID" default:"false"`
	SnapX            float64  `envconfig:"SNAP_X" default:"15"`
	SnapY            float64  `envconfig:"SNAP_Y" default:"15"`
	HitThreshold     float64  `envconfig:"HIT_THRESHOLD" default:"7"`
	MoveMode         MoveMode `envconfig:"MOVE_MODE" default:"point"`
	HistoryLimit     int      `envconfig:"HISTORY_LIMIT" default:"100"`
	PageWidth        float64  `envconfig:"PAGE_WIDTH" default:"1200"`
	PageHeight       float64  `envconfig:"PAGE_HEIGHT" default:"800"`
}

// MoveMode selects how selected shapes are moved.
type MoveMode int

const (
	// MovePoint moves the distinct constituent points once each.
	MovePoint MoveMode = iota
	// MoveShape calls each shape's own move.
	MoveShape
)

func (m MoveMode) String() string {
	if m == MoveShape {
		return "shape"
	}
	return "point"
}

// Decode implements envconfig.Decoder.
func (m *MoveMode) Decode(value string) error {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "point", "":
		*m = MovePoint
	case "shape":
		*m = MoveShape
	default:
		return fmt.Errorf("unknown move mode %q", value)
	}
	return nil
}

// DefaultEditor returns the editor options with their default values.
func DefaultEditor() Editor {
	return Editor{
		TryToConnect:     true,
		DefaultIsStroked: true,
		SnapX:            15,
		SnapY:            15,
		HitThreshold:     7,
		MoveMode:         MovePoint,
		HistoryLimit:     100,
		PageWidth:        1200,
		PageHeight:       800,
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
