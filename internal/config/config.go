package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/geometry"
)

var (
	ErrSameMarks            = errors.New("players must have different marks")
	ErrInvalidFrameInterval = errors.New("frame interval must be positive")
)

type Config struct {
	LogLevel      string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort      string        `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	FrameInterval time.Duration `yaml:"frame-interval" env-default:"16ms"`
	SessionTTL    time.Duration `yaml:"session-ttl" env-default:"24h"`
	Redis         Redis         `yaml:"redis"`
	Game          Game          `yaml:"game"`
	Board         Board         `yaml:"board"`
	Window        Window        `yaml:"window"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:""`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Game - board dimensions are fixed for the lifetime of a session.
type Game struct {
	Rows     int `yaml:"rows" env-default:"3"`
	Columns  int `yaml:"columns" env-default:"3"`
	Sequence int `yaml:"sequence" env-default:"3"`
}

type Board struct {
	WidthPart       float64      `yaml:"width-part" env-default:"0.3"`
	HeightPart      float64      `yaml:"height-part" env-default:"0.3"`
	WidthStartPart  float64      `yaml:"width-start-part" env-default:"0.35"`
	HeightStartPart float64      `yaml:"height-start-part" env-default:"0.3"`
	Player1         string       `yaml:"player1" env-default:"X"`
	Player2         string       `yaml:"player2" env-default:"O"`
	Player1Bank     BankLocation `yaml:"player1-bank"`
	Player2Bank     BankLocation `yaml:"player2-bank"`
}

type BankLocation struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Window - container size used until the first resize event arrives.
type Window struct {
	Width  float64 `yaml:"width" env-default:"1280"`
	Height float64 `yaml:"height" env-default:"720"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config.Board.applyBankDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if err := that.Rules().Validate(); err != nil {
		return fmt.Errorf("invalid game config: %w", err)
	}

	if that.Board.Player1 == that.Board.Player2 {
		return fmt.Errorf("%w: %q", ErrSameMarks, that.Board.Player1)
	}

	if that.FrameInterval <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidFrameInterval, that.FrameInterval)
	}

	return nil
}

func (that *Config) Rules() entity.Rules {
	return entity.Rules{
		Rows:     that.Game.Rows,
		Columns:  that.Game.Columns,
		Sequence: that.Game.Sequence,
	}
}

func (that *Config) Layout() geometry.Layout {
	return geometry.Layout{
		WidthPart:       that.Board.WidthPart,
		HeightPart:      that.Board.HeightPart,
		WidthStartPart:  that.Board.WidthStartPart,
		HeightStartPart: that.Board.HeightStartPart,
		Player1Bank:     geometry.Point{X: that.Board.Player1Bank.X, Y: that.Board.Player1Bank.Y},
		Player2Bank:     geometry.Point{X: that.Board.Player2Bank.X, Y: that.Board.Player2Bank.Y},
	}
}

func (that *Config) Marks() entity.Marks {
	return entity.Marks{Player1: that.Board.Player1, Player2: that.Board.Player2}
}

func (that *Redis) GetRedisAddr() string {
	if that.Host == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// applyBankDefaults - nested bank locations have no env-default, so an absent
// location falls back to the left and right of the board.
func (that *Board) applyBankDefaults() {
	defaults := geometry.DefaultLayout()
	if that.Player1Bank == (BankLocation{}) {
		that.Player1Bank = BankLocation{X: defaults.Player1Bank.X, Y: defaults.Player1Bank.Y}
	}
	if that.Player2Bank == (BankLocation{}) {
		that.Player2Bank = BankLocation{X: defaults.Player2Bank.X, Y: defaults.Player2Bank.Y}
	}
}
