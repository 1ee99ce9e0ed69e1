package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all viewer tunables, grouped by concern
type Config struct {
	Galaxy    GalaxyConfig
	Repulsion RepulsionConfig
	Animation AnimationConfig
	Viewer    ViewerConfig
	Audio     AudioConfig
	Logging   LoggingConfig
}

// GalaxyConfig controls grid-to-volume projection
type GalaxyConfig struct {
	GridSize      int     // Atlas grid columns/rows (A-U => 21)
	Radius        float64 // Bounding sphere radius in world units
	FlattenFactor float64 // Disc thickness relative to radius
	Jitter        float64 // Max per-axis placement jitter in world units
	DepthSpread   float64 // Depth separation for planets sharing a grid cell
}

// RepulsionConfig controls the focus perturbation effect
type RepulsionConfig struct {
	Radius   float64 // Influence radius around the focused planet
	Strength float64 // Peak outward velocity contribution per second
	Damping  float64 // Per-tick velocity retention factor
}

// AnimationConfig controls timed interpolations
type AnimationConfig struct {
	RestoreDuration time.Duration // Position restore after clear/re-select
	CameraDuration  time.Duration // Camera fly-to on selection
	IdleSpinRate    float64       // Radians per second of idle orbit drift
}

// ViewerConfig controls the interactive surface
type ViewerConfig struct {
	FrameInterval  time.Duration // Render tick period
	CatalogPath    string        // JSON catalog location
	AssetsDir      string        // Detail art directory
	SearchDebounce time.Duration // Delay before live search fires
	PickRadius     float64       // Screen-cell radius for hover picking
}

// AudioConfig controls beep feedback cues
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64
	SampleRate   int
}

// LoggingConfig controls slog output
type LoggingConfig struct {
	Level      string
	JSONFormat bool
	FilePath   string // Viewer log file; stdout is owned by the terminal UI
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Galaxy: GalaxyConfig{
			GridSize:      21,
			Radius:        500,
			FlattenFactor: 0.15,
			Jitter:        6.0,
			DepthSpread:   0.35,
		},
		Repulsion: RepulsionConfig{
			Radius:   60,
			Strength: 40,
			Damping:  0.90,
		},
		Animation: AnimationConfig{
			RestoreDuration: 1200 * time.Millisecond,
			CameraDuration:  1500 * time.Millisecond,
			IdleSpinRate:    0.05,
		},
		Viewer: ViewerConfig{
			FrameInterval:  33 * time.Millisecond,
			CatalogPath:    "data/planets.json",
			AssetsDir:      "assets/detail",
			SearchDebounce: 300 * time.Millisecond,
			PickRadius:     2.5,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
			SampleRate:   44100,
		},
		Logging: LoggingConfig{
			Level:      "info",
			JSONFormat: false,
			FilePath:   "sw3dmap.log",
		},
	}
}

// Load reads configuration from the environment, starting from defaults
// A .env file in the working directory is honored when present
func Load() *Config {
	// Missing .env is the normal case, not an error
	_ = godotenv.Load()

	cfg := Default()

	cfg.Galaxy.GridSize = envInt("SW3DMAP_GRID_SIZE", cfg.Galaxy.GridSize)
	cfg.Galaxy.Radius = envFloat("SW3DMAP_GALAXY_RADIUS", cfg.Galaxy.Radius)
	cfg.Galaxy.FlattenFactor = envFloat("SW3DMAP_FLATTEN_FACTOR", cfg.Galaxy.FlattenFactor)
	cfg.Galaxy.Jitter = envFloat("SW3DMAP_JITTER", cfg.Galaxy.Jitter)
	cfg.Galaxy.DepthSpread = envFloat("SW3DMAP_DEPTH_SPREAD", cfg.Galaxy.DepthSpread)

	cfg.Repulsion.Radius = envFloat("SW3DMAP_REPULSION_RADIUS", cfg.Repulsion.Radius)
	cfg.Repulsion.Strength = envFloat("SW3DMAP_REPULSION_STRENGTH", cfg.Repulsion.Strength)
	cfg.Repulsion.Damping = envFloat("SW3DMAP_REPULSION_DAMPING", cfg.Repulsion.Damping)

	cfg.Animation.RestoreDuration = envDuration("SW3DMAP_RESTORE_DURATION", cfg.Animation.RestoreDuration)
	cfg.Animation.CameraDuration = envDuration("SW3DMAP_CAMERA_DURATION", cfg.Animation.CameraDuration)
	cfg.Animation.IdleSpinRate = envFloat("SW3DMAP_IDLE_SPIN_RATE", cfg.Animation.IdleSpinRate)

	cfg.Viewer.FrameInterval = envDuration("SW3DMAP_FRAME_INTERVAL", cfg.Viewer.FrameInterval)
	cfg.Viewer.CatalogPath = envString("SW3DMAP_CATALOG", cfg.Viewer.CatalogPath)
	cfg.Viewer.AssetsDir = envString("SW3DMAP_ASSETS_DIR", cfg.Viewer.AssetsDir)
	cfg.Viewer.SearchDebounce = envDuration("SW3DMAP_SEARCH_DEBOUNCE", cfg.Viewer.SearchDebounce)
	cfg.Viewer.PickRadius = envFloat("SW3DMAP_PICK_RADIUS", cfg.Viewer.PickRadius)

	cfg.Audio.Enabled = envBool("SW3DMAP_AUDIO_ENABLED", cfg.Audio.Enabled)
	if v := envInt("SW3DMAP_MASTER_VOLUME", -1); v >= 0 {
		// Volume is configured 0-100, stored 0.0-1.0
		cfg.Audio.MasterVolume = min(float64(v)/100.0, 1.0)
	}
	if v := envInt("SW3DMAP_SAMPLE_RATE", 0); v > 0 {
		cfg.Audio.SampleRate = v
	}

	cfg.Logging.Level = envString("SW3DMAP_LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.JSONFormat = envBool("SW3DMAP_LOG_JSON", cfg.Logging.JSONFormat)
	cfg.Logging.FilePath = envString("SW3DMAP_LOG_FILE", cfg.Logging.FilePath)

	return cfg
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
