// Package config provides configuration loading and access for the landscape simulation.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Sim       SimConfig       `yaml:"sim"`
	Terrain   TerrainConfig   `yaml:"terrain"`
	Flight    FlightConfig    `yaml:"flight"`
	Ripples   RipplesConfig   `yaml:"ripples"`
	Camera    CameraConfig    `yaml:"camera"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// SimConfig holds tick driver parameters.
type SimConfig struct {
	DT       float64 `yaml:"dt"`        // Fixed step used by headless runs
	MaxDelta float64 `yaml:"max_delta"` // Upper bound on any single tick's delta
}

// Vec2 is a horizontal (x, z) coordinate.
type Vec2 struct {
	X float64 `yaml:"x"`
	Z float64 `yaml:"z"`
}

// Vec3 is a world-space offset.
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// TerrainConfig holds the height field constants.
type TerrainConfig struct {
	WaterLevel float64 `yaml:"water_level"`
	Floor      float64 `yaml:"floor"`

	Base     BaseTerrainConfig `yaml:"base"`
	Mountain MountainConfig    `yaml:"mountain"`
	Lake     LakeConfig        `yaml:"lake"`

	// Extent of the rendered terrain square, centered on the origin
	Extent float64 `yaml:"extent"`
}

// BaseTerrainConfig holds the rolling-hill pseudo-noise parameters.
type BaseTerrainConfig struct {
	Scale       float64 `yaml:"scale"`        // Multiplier on the two-term noise
	Offset      float64 `yaml:"offset"`       // Keeps default ground above water
	PrimaryFreq Vec2    `yaml:"primary_freq"` // Frequencies of the first noise term
	PrimaryAmp  float64 `yaml:"primary_amp"`  // Amplitude of the first noise term
	SecondFreq  Vec2    `yaml:"second_freq"`  // Frequencies of the second noise term
	SecondPhase Vec2    `yaml:"second_phase"` // Phase offsets of the second noise term
	SecondAmp   float64 `yaml:"second_amp"`   // Amplitude of the second noise term
	DetailFreq  Vec2    `yaml:"detail_freq"`  // Micro-relief frequencies
	DetailPhase float64 `yaml:"detail_phase"` // Micro-relief phase on x
	DetailAmp   float64 `yaml:"detail_amp"`   // Micro-relief amplitude
}

// MountainConfig holds the domain-warped dome parameters.
type MountainConfig struct {
	Center    Vec2    `yaml:"center"`
	Radius    float64 `yaml:"radius"`
	Height    float64 `yaml:"height"`
	WarpAmp   float64 `yaml:"warp_amp"`
	WarpFreq  float64 `yaml:"warp_freq"`
	Roughness float64 `yaml:"roughness"`
	RoughFreq Vec2    `yaml:"rough_freq"`
}

// LakeConfig holds the elliptical crater parameters.
type LakeConfig struct {
	Center     Vec2    `yaml:"center"`
	RadiusX    float64 `yaml:"radius_x"`
	RadiusZ    float64 `yaml:"radius_z"`
	Depth      float64 `yaml:"depth"`
	ShoreAmp   Vec2    `yaml:"shore_amp"`   // Distortion amplitude per axis
	ShoreFreq  Vec2    `yaml:"shore_freq"`  // Frequency of the other-axis distortion
	ShoreInset float64 `yaml:"shore_inset"` // Fraction of radius_x from center to the entry/exit points
}

// StateConfig holds per-state steering parameters.
type StateConfig struct {
	Speed    float64 `yaml:"speed"`
	Turn     float64 `yaml:"turn"`
	FlapRate float64 `yaml:"flap_rate"`
}

// FlightConfig holds flight controller parameters.
type FlightConfig struct {
	Spawn Vec3 `yaml:"spawn"`

	Cinematic     StateConfig `yaml:"cinematic"`
	ApproachLake  StateConfig `yaml:"approach_lake"`
	DiveLake      StateConfig `yaml:"dive_lake"`
	Skim          StateConfig `yaml:"skim"`
	ClimbMountain StateConfig `yaml:"climb_mountain"`
	DiveBomb      StateConfig `yaml:"dive_bomb"`
	PullUp        StateConfig `yaml:"pull_up"`

	// Waypoint offsets relative to the fire (mountain summit) or lake entry
	CinematicOffset Vec3    `yaml:"cinematic_offset"`
	ApproachOffset  Vec3    `yaml:"approach_offset"`
	ClimbOffset     Vec3    `yaml:"climb_offset"`
	BombLift        float64 `yaml:"bomb_lift"`
	BombMinAltitude float64 `yaml:"bomb_min_altitude"`
	PullUpOffset    Vec3    `yaml:"pull_up_offset"`

	// Exit thresholds
	CinematicReach float64 `yaml:"cinematic_reach"`
	ApproachReach  float64 `yaml:"approach_reach"`
	DiveReach      float64 `yaml:"dive_reach"`
	DiveExitAbove  float64 `yaml:"dive_exit_above"` // DiveLake exits at water + this
	SkimReach      float64 `yaml:"skim_reach"`      // Horizontal only
	ClimbReach     float64 `yaml:"climb_reach"`
	BombReach      float64 `yaml:"bomb_reach"`
	PullUpClear    float64 `yaml:"pull_up_clear"` // PullUp exits above fire + this

	// Dive and skim target heights above water
	DiveTargetAbove float64 `yaml:"dive_target_above"`
	SkimTargetAbove float64 `yaml:"skim_target_above"`
	SkimBobAmp      float64 `yaml:"skim_bob_amp"`
	SkimBobFreq     float64 `yaml:"skim_bob_freq"`

	// Avoidance
	LandClearance   float64 `yaml:"land_clearance"`
	SkimExtraLand   float64 `yaml:"skim_extra_land"`
	WaterAbove      float64 `yaml:"water_above"`
	SkimBelow       float64 `yaml:"skim_below"`
	AvoidEase       float64 `yaml:"avoid_ease"`
	VerticalDamping float64 `yaml:"vertical_damping"`
	ContactLand     float64 `yaml:"contact_land"`
	ContactWater    float64 `yaml:"contact_water"`

	// Splashes
	SplashReach      float64 `yaml:"splash_reach"`
	SplashAbove      float64 `yaml:"splash_above"`
	SplashCooldown   float64 `yaml:"splash_cooldown"`
	EntrySplashScale float64 `yaml:"entry_splash_scale"`
	SkimSplashScale  float64 `yaml:"skim_splash_scale"`
	SkimSplashChance float64 `yaml:"skim_splash_chance"`

	// Orientation and animation
	BankGain   float64 `yaml:"bank_gain"`
	MaxBank    float64 `yaml:"max_bank"`
	MinSpeedSq float64 `yaml:"min_speed_sq"`
	FlapEase   float64 `yaml:"flap_ease"`
}

// RipplesConfig holds splash pool parameters.
type RipplesConfig struct {
	Capacity      int     `yaml:"capacity"`
	MaxLife       float64 `yaml:"max_life"`
	FadeRate      float64 `yaml:"fade_rate"`
	ExpansionRate float64 `yaml:"expansion_rate"`
	BaseOpacity   float64 `yaml:"base_opacity"`
	DecalOffset   float64 `yaml:"decal_offset"` // Height above water for decals
}

// CameraConfig holds viewer camera parameters.
type CameraConfig struct {
	FOV         float64 `yaml:"fov"`
	ChaseDist   float64 `yaml:"chase_dist"`
	ChaseHeight float64 `yaml:"chase_height"`
	OrbitRadius float64 `yaml:"orbit_radius"`
	OrbitHeight float64 `yaml:"orbit_height"`
	OrbitSpeed  float64 `yaml:"orbit_speed"`
	Follow      float64 `yaml:"follow"` // Position smoothing rate per second
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT32         float32 // Sim.DT as float32
	ScreenW32    float32 // Screen.Width as float32
	ScreenH32    float32 // Screen.Height as float32
	TicksPerStat int     // Telemetry.StatsWindow in fixed ticks
	MaxBankDeg   float64 // Flight.MaxBank in degrees, for the HUD
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values the simulation cannot run with.
func (c *Config) validate() error {
	if c.Sim.DT <= 0 {
		return fmt.Errorf("sim.dt must be positive, got %v", c.Sim.DT)
	}
	if c.Sim.MaxDelta <= 0 {
		return fmt.Errorf("sim.max_delta must be positive, got %v", c.Sim.MaxDelta)
	}
	if c.Ripples.Capacity < 1 {
		return fmt.Errorf("ripples.capacity must be at least 1, got %d", c.Ripples.Capacity)
	}
	if c.Ripples.MaxLife <= 0 {
		return fmt.Errorf("ripples.max_life must be positive, got %v", c.Ripples.MaxLife)
	}
	if c.Terrain.Mountain.Radius <= 0 || c.Terrain.Lake.RadiusX <= 0 || c.Terrain.Lake.RadiusZ <= 0 {
		return fmt.Errorf("terrain feature radii must be positive")
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT32 = float32(c.Sim.DT)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	ticks := int(math.Round(c.Telemetry.StatsWindow / c.Sim.DT))
	if ticks < 1 {
		ticks = 1
	}
	c.Derived.TicksPerStat = ticks
	c.Derived.MaxBankDeg = c.Flight.MaxBank * 180 / math.Pi
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
