// Package config handles application configuration loading and management.
package config

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Sky      SkyConfig      `yaml:"sky"`
	Camera   CameraConfig   `yaml:"camera"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// SkyConfig holds the atmospheric model parameters and sun controls.
type SkyConfig struct {
	// Atmospheric haziness, within the tabulated 1..10 range
	Turbidity float32 `yaml:"turbidity"`
	// Ground reflectance per RGB channel, each in [0,1]
	Albedo [3]float32 `yaml:"albedo"`
	// Sun control speed, radians per second
	SunSpeed float32 `yaml:"sun_speed"`
	// Initial sun angles, radians
	SunPitch float32 `yaml:"sun_pitch"`
	SunYaw   float32 `yaml:"sun_yaw"`
}

// CameraConfig holds first-person camera settings.
type CameraConfig struct {
	FOVDegrees float32 `yaml:"fov_degrees"`
	LookSpeed  float32 `yaml:"look_speed"`
	MoveSpeed  float32 `yaml:"move_speed"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      900,
			Height:     620,
			Fullscreen: false,
			VSync:      true,
		},
		Sky: SkyConfig{
			Turbidity: 4.0,
			Albedo:    [3]float32{0.1, 0.1, 0.1},
			SunSpeed:  0.6,
			SunPitch:  0.5,
			SunYaw:    0.0,
		},
		Camera: CameraConfig{
			FOVDegrees: 70,
			LookSpeed:  0.0015,
			MoveSpeed:  0.1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate clamps out-of-range sky parameters to the ranges the model
// tables cover, so the solver never sees unclamped input.
func (c *Config) Validate() {
	if c.Sky.Turbidity < 1 {
		c.Sky.Turbidity = 1
	}
	if c.Sky.Turbidity > 10 {
		c.Sky.Turbidity = 10
	}
	for i, a := range c.Sky.Albedo {
		if a < 0 {
			c.Sky.Albedo[i] = 0
		}
		if a > 1 {
			c.Sky.Albedo[i] = 1
		}
	}
}
