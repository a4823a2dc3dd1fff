// Package config loads YAML configuration for the assignment and tracking engine
// and turns it into mot constructors.
package config

import (
	"os"

	"github.com/LdDl/mot-lifecycle/mot"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Supported cost functions
const (
	CostCenterDistance = "center_distance"
	CostIoUDistance    = "iou_distance"
	CostIoUSimilarity  = "iou_similarity"
)

// Config is the root configuration
type Config struct {
	Assigner AssignerConfig `yaml:"assigner"`
	Tracker  TrackerConfig  `yaml:"tracker"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// AssignerConfig configures mot.Assigner
type AssignerConfig struct {
	Maximize bool `yaml:"maximize"`
	// Absent means no threshold
	DistThres *float64 `yaml:"dist_thres,omitempty"`
	Algorithm string   `yaml:"algorithm"`
}

// TrackerConfig configures mot.Sequencer
type TrackerConfig struct {
	Cost       string           `yaml:"cost"`
	Prediction PredictionConfig `yaml:"prediction"`
}

// PredictionConfig configures Kalman prediction of track boxes
type PredictionConfig struct {
	Enabled bool    `yaml:"enabled"`
	Dt      float64 `yaml:"dt"`
}

// MetricsConfig configures Prometheus collector
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
	Port      int    `yaml:"port"`
}

// Default returns configuration equivalent to mot.NewDefaultSequencer
func Default() *Config {
	return &Config{
		Assigner: AssignerConfig{
			Maximize:  false,
			DistThres: nil,
			Algorithm: mot.MatchingAlgorithmHungarian.String(),
		},
		Tracker: TrackerConfig{
			Cost: CostCenterDistance,
			Prediction: PredictionConfig{
				Enabled: false,
				Dt:      1.0,
			},
		},
		Metrics: MetricsConfig{
			Enabled:   false,
			Namespace: "mot",
			Port:      9090,
		},
	}
}

// Load reads and validates configuration file. Missing keys keep default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML on top of defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and that cost function agrees with assigner direction
func (cfg *Config) Validate() error {
	if _, ok := mot.ParseMatchingAlgorithm(cfg.Assigner.Algorithm); !ok {
		return errors.Errorf("unknown assigner algorithm %q", cfg.Assigner.Algorithm)
	}
	if cfg.Assigner.DistThres != nil && !(*cfg.Assigner.DistThres >= 0) {
		return errors.Wrapf(mot.ErrInvalidThreshold, "dist_thres %v", *cfg.Assigner.DistThres)
	}
	// Assigner splits pairs whose cost exceeds dist_thres, which for a maximized
	// similarity would drop the best matches
	if cfg.Assigner.DistThres != nil && cfg.Assigner.Maximize {
		return errors.Wrap(mot.ErrInvalidThreshold, "dist_thres is an upper bound on distance and can't be combined with maximize: true")
	}
	switch cfg.Tracker.Cost {
	case CostCenterDistance, CostIoUDistance:
		if cfg.Assigner.Maximize {
			return errors.Errorf("cost %q is a distance and requires maximize: false", cfg.Tracker.Cost)
		}
	case CostIoUSimilarity:
		if !cfg.Assigner.Maximize {
			return errors.Errorf("cost %q is a similarity and requires maximize: true", cfg.Tracker.Cost)
		}
	default:
		return errors.Errorf("unknown tracker cost %q", cfg.Tracker.Cost)
	}
	if cfg.Tracker.Prediction.Enabled && cfg.Tracker.Prediction.Dt <= 0 {
		return errors.Errorf("prediction dt must be positive, got %v", cfg.Tracker.Prediction.Dt)
	}
	if cfg.Metrics.Enabled && (cfg.Metrics.Port <= 0 || cfg.Metrics.Port > 65535) {
		return errors.Errorf("metrics port out of range: %d", cfg.Metrics.Port)
	}
	return nil
}

// DistThreshold returns configured threshold or mot.NoThreshold
func (cfg *Config) DistThreshold() float64 {
	if cfg.Assigner.DistThres == nil {
		return mot.NoThreshold
	}
	return *cfg.Assigner.DistThres
}

// NewAssigner builds mot.Assigner from configuration
func (cfg *Config) NewAssigner() (*mot.Assigner, error) {
	algorithm, ok := mot.ParseMatchingAlgorithm(cfg.Assigner.Algorithm)
	if !ok {
		return nil, errors.Errorf("unknown assigner algorithm %q", cfg.Assigner.Algorithm)
	}
	return mot.NewAssigner(cfg.Assigner.Maximize, cfg.DistThreshold(), algorithm)
}

// CostFunc resolves configured cost function
func (cfg *Config) CostFunc() (mot.CostFunc, error) {
	switch cfg.Tracker.Cost {
	case CostCenterDistance:
		return mot.CenterDistance, nil
	case CostIoUDistance:
		return mot.IoUDistance, nil
	case CostIoUSimilarity:
		return mot.IoUSimilarity, nil
	default:
		return nil, errors.Errorf("unknown tracker cost %q", cfg.Tracker.Cost)
	}
}

// NewSequencer builds mot.Sequencer from configuration. observer may be nil.
func (cfg *Config) NewSequencer(observer mot.FrameObserver) (*mot.Sequencer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	assigner, err := cfg.NewAssigner()
	if err != nil {
		return nil, err
	}
	costFunc, err := cfg.CostFunc()
	if err != nil {
		return nil, err
	}
	options := make([]mot.SequencerOption, 0, 2)
	if cfg.Tracker.Prediction.Enabled {
		options = append(options, mot.WithPrediction(cfg.Tracker.Prediction.Dt))
	}
	if observer != nil {
		options = append(options, mot.WithObserver(observer))
	}
	return mot.NewSequencer(assigner, costFunc, options...), nil
}

// Marshal encodes configuration back to YAML
func (cfg *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(cfg)
}
