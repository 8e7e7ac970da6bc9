package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/proxvid/internal/render"
	"github.com/san-kum/proxvid/internal/video"
)

const (
	DefaultDataDir  = ".proxvid"
	DefaultOrder    = "F"
	DefaultLogLevel = "info"
)

type Config struct {
	FFmpeg   string      `yaml:"ffmpeg"`
	DataDir  string      `yaml:"data_dir"`
	LogLevel string      `yaml:"log_level"`
	Video    VideoConfig `yaml:"video"`
}

type VideoConfig struct {
	Colormap  string  `yaml:"colormap"`
	Order     string  `yaml:"order"`
	Scale     float64 `yaml:"scale"`
	FigWidth  float64 `yaml:"fig_width"`
	FigHeight float64 `yaml:"fig_height"`
	DPI       int     `yaml:"dpi"`
	Codec     string  `yaml:"codec"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir:  DefaultDataDir,
		LogLevel: DefaultLogLevel,
		Video: VideoConfig{
			Colormap:  video.DefaultColormap,
			Order:     DefaultOrder,
			Scale:     video.DefaultScale,
			FigWidth:  render.DefaultFigWidth,
			FigHeight: render.DefaultFigHeight,
			DPI:       render.DefaultDPI,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Options converts the video section into render options. Invalid element
// order strings are reported rather than silently replaced.
func (v VideoConfig) Options() ([]video.Option, error) {
	order, err := render.ParseOrder(v.Order)
	if err != nil {
		return nil, err
	}
	return []video.Option{
		video.WithColormap(v.Colormap),
		video.WithOrder(order),
		video.WithScale(v.Scale),
		video.WithFigSize(v.FigWidth, v.FigHeight),
		video.WithDPI(v.DPI),
	}, nil
}
