// Package app implements the main application loop.
package app

import (
	"fmt"
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/skydome/internal/config"
	"github.com/Faultbox/skydome/internal/engine/camera"
	"github.com/Faultbox/skydome/internal/engine/input"
	"github.com/Faultbox/skydome/internal/engine/lighting"
	"github.com/Faultbox/skydome/internal/engine/skybox"
	"github.com/Faultbox/skydome/internal/engine/window"
	"github.com/Faultbox/skydome/internal/logger"
	"github.com/Faultbox/skydome/pkg/math"
	"github.com/Faultbox/skydome/pkg/sky"
)

// App owns the window, input, camera, and sky state.
type App struct {
	cfg     *config.Config
	running bool

	window *window.Window
	input  *input.Input
	camera *camera.FirstPersonCamera
	dome   *skybox.Renderer

	// Sun control angles, radians: X is pitch above the horizon, Y is yaw
	sun math.Vec2

	sunDir    math.Vec3
	skyParams sky.Params
}

// New creates the application. The OpenGL context is created here, so all
// rendering setup happens after this returns.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg: cfg,
		sun: math.Vec2{X: cfg.Sky.SunPitch, Y: cfg.Sky.SunYaw},
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      "Skydome",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	if err := gl.Init(); err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.CULL_FACE)
	gl.ClearColor(0, 0, 0, 1)

	a.dome, err = skybox.New()
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create sky renderer: %w", err)
	}

	a.input = input.New()

	a.camera = camera.New(cfg.Graphics.Width, cfg.Graphics.Height)
	a.camera.FOV = cfg.Camera.FOVDegrees * math32.Pi / 180
	a.camera.LookSpeed = cfg.Camera.LookSpeed
	a.camera.MoveSpeed = cfg.Camera.MoveSpeed

	a.window.CaptureMouse(true)
	a.recalcSun()

	logger.Info("application initialized",
		zap.Float32("turbidity", cfg.Sky.Turbidity),
		zap.Float32s("albedo", cfg.Sky.Albedo[:]),
	)
	return a, nil
}

// Run starts the main loop.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting main loop")

	for a.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		// 1. Process input
		if a.input.Update() {
			a.running = false
			break
		}

		for _, event := range a.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				gl.Viewport(0, 0, int32(event.Width), int32(event.Height))
				a.camera.Resize(event.Width, event.Height)
			case input.EventKeyDown:
				if event.Key == sdl.SCANCODE_ESCAPE {
					a.running = false
				}
			}
		}

		// 2. Update sun and camera
		a.update(dt)

		// 3. Render
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		a.dome.Render(a.camera.ProjectionMatrix(), a.camera.OrientationMatrix(), &a.skyParams, a.sunDir)

		// 4. Present
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float32("sun_pitch", a.sun.X),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// update advances the sun angles and the camera from the held input state.
func (a *App) update(dt float32) {
	// Arrow keys steer the sun
	sun := a.sun
	step := a.cfg.Sky.SunSpeed * dt
	if a.input.IsKeyDown(sdl.SCANCODE_UP) {
		sun.X += step
	} else if a.input.IsKeyDown(sdl.SCANCODE_DOWN) {
		sun.X -= step
	}
	if a.input.IsKeyDown(sdl.SCANCODE_LEFT) {
		sun.Y += step
	} else if a.input.IsKeyDown(sdl.SCANCODE_RIGHT) {
		sun.Y -= step
	}
	if sun != a.sun {
		a.sun = sun
		a.recalcSun()
	}

	// Mouse look
	if dx, dy := a.input.MouseDelta(); dx != 0 || dy != 0 {
		a.camera.Look(dx, dy, 1)
	}

	// WASD + space/shift movement; delta is measured in 60 fps frames to
	// keep the tuned per-frame speeds
	x, y, z := a.motionAxes()
	if x != 0 || y != 0 || z != 0 {
		a.camera.Walk(x, y, z, dt*60)
	}
}

// motionAxes folds the held movement keys into per-axis directions.
func (a *App) motionAxes() (x, y, z float32) {
	if a.input.IsKeyDown(sdl.SCANCODE_D) {
		x++
	}
	if a.input.IsKeyDown(sdl.SCANCODE_A) {
		x--
	}
	if a.input.IsKeyDown(sdl.SCANCODE_SPACE) {
		y++
	}
	if a.input.IsKeyDown(sdl.SCANCODE_LSHIFT) || a.input.IsKeyDown(sdl.SCANCODE_RSHIFT) {
		y--
	}
	if a.input.IsKeyDown(sdl.SCANCODE_W) {
		z++
	}
	if a.input.IsKeyDown(sdl.SCANCODE_S) {
		z--
	}
	return clampAxis(x), clampAxis(y), clampAxis(z)
}

// recalcSun re-solves the sky parameter block for the current sun angles.
// A few dozen float operations per change, so no caching is needed.
func (a *App) recalcSun() {
	a.sunDir = lighting.SunDirection(a.sun.X, a.sun.Y)
	a.skyParams = sky.Solve(a.sunDir, a.cfg.Sky.Turbidity, a.cfg.Sky.Albedo)
}

// Close cleans up all resources.
func (a *App) Close() {
	logger.Info("closing application")
	if a.dome != nil {
		a.dome.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func clampAxis(v float32) float32 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
