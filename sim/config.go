package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every tuned constant in the simulation. Values are per tick
// (the step rate is the display refresh; there is no fixed-timestep
// decoupling, so these numbers assume 60 steps per second).
type Config struct {
	Accel          float64 `yaml:"accel"`
	MaxRunSpeed    float64 `yaml:"max_run_speed"`
	GroundFriction float64 `yaml:"ground_friction"`
	AirFriction    float64 `yaml:"air_friction"`
	StopThreshold  float64 `yaml:"stop_threshold"`
	Gravity        float64 `yaml:"gravity"`
	JumpImpulse    float64 `yaml:"jump_impulse"`
	MaxFallSpeed   float64 `yaml:"max_fall_speed"`

	PlayerWidth  float64 `yaml:"player_width"`
	PlayerHeight float64 `yaml:"player_height"`

	RespawnFrames int `yaml:"respawn_frames"`

	PickupParticles     int     `yaml:"pickup_particles"`
	ParticleMinLife     int     `yaml:"particle_min_life"`
	ParticleMaxLife     int     `yaml:"particle_max_life"`
	ParticleGravity     float64 `yaml:"particle_gravity"`
	ParticleSpeed       float64 `yaml:"particle_speed"`
	ParticleSpeedJitter float64 `yaml:"particle_speed_jitter"`
	ParticleUpwardBias  float64 `yaml:"particle_upward_bias"`

	WalkAnimRate      int     `yaml:"walk_anim_rate"`
	WalkAnimFrames    int     `yaml:"walk_anim_frames"`
	WalkAnimThreshold float64 `yaml:"walk_anim_threshold"`
}

// DefaultConfig returns the tuned values the game ships with.
func DefaultConfig() Config {
	return Config{
		Accel:          0.5,
		MaxRunSpeed:    4.0,
		GroundFriction: 0.8,
		AirFriction:    0.95,
		StopThreshold:  0.1,
		Gravity:        0.5,
		JumpImpulse:    -11,
		MaxFallSpeed:   12,

		PlayerWidth:  22,
		PlayerHeight: 30,

		RespawnFrames: 30,

		PickupParticles:     12,
		ParticleMinLife:     20,
		ParticleMaxLife:     40,
		ParticleGravity:     0.15,
		ParticleSpeed:       1.5,
		ParticleSpeedJitter: 1.0,
		ParticleUpwardBias:  -1.5,

		WalkAnimRate:      6,
		WalkAnimFrames:    4,
		WalkAnimThreshold: 0.5,
	}
}

// LoadConfig overlays a YAML file on the defaults. A missing file is not an
// error; the defaults simply apply.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
