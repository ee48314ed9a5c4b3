package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSamples    = 512
	DefaultPlotWidth  = 80
	DefaultPlotHeight = 20
	DefaultSVGWidth   = 960
	DefaultSVGHeight  = 480
	DefaultToneFreq   = 440.0
	DefaultToneSecs   = 2.0
	DefaultVolume     = 0.4
	DefaultGUIWidth   = 1100
	DefaultGUIHeight  = 620
)

type Config struct {
	Plot   PlotConfig   `yaml:"plot"`
	Export ExportConfig `yaml:"export"`
	Tone   ToneConfig   `yaml:"tone"`
	GUI    GUIConfig    `yaml:"gui"`
}

type PlotConfig struct {
	Trace   string `yaml:"trace"`
	Samples int    `yaml:"samples"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
}

type ExportConfig struct {
	Samples   int    `yaml:"samples"`
	CSVPath   string `yaml:"csv_path"`
	SVGPath   string `yaml:"svg_path"`
	SVGWidth  int    `yaml:"svg_width"`
	SVGHeight int    `yaml:"svg_height"`
}

type ToneConfig struct {
	Frequency float64 `yaml:"frequency"`
	Duration  float64 `yaml:"duration"`
	Volume    float64 `yaml:"volume"`
}

type GUIConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Plot: PlotConfig{
			Trace:   "sin",
			Samples: DefaultSamples,
			Width:   DefaultPlotWidth,
			Height:  DefaultPlotHeight,
		},
		Export: ExportConfig{
			Samples:   DefaultSamples,
			CSVPath:   "wave.csv",
			SVGPath:   "wave.svg",
			SVGWidth:  DefaultSVGWidth,
			SVGHeight: DefaultSVGHeight,
		},
		Tone: ToneConfig{
			Frequency: DefaultToneFreq,
			Duration:  DefaultToneSecs,
			Volume:    DefaultVolume,
		},
		GUI: GUIConfig{
			Width:  DefaultGUIWidth,
			Height: DefaultGUIHeight,
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
