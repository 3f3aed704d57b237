// Package app implements the sculptor's main loop: input handling,
// brush application, and frame rendering.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/terrasculpt/internal/config"
	"github.com/Faultbox/terrasculpt/internal/engine/camera"
	"github.com/Faultbox/terrasculpt/internal/engine/capability"
	"github.com/Faultbox/terrasculpt/internal/engine/debug"
	"github.com/Faultbox/terrasculpt/internal/engine/input"
	"github.com/Faultbox/terrasculpt/internal/engine/lighting"
	"github.com/Faultbox/terrasculpt/internal/engine/picking"
	"github.com/Faultbox/terrasculpt/internal/engine/renderer"
	"github.com/Faultbox/terrasculpt/internal/engine/terrain"
	"github.com/Faultbox/terrasculpt/internal/engine/texture"
	"github.com/Faultbox/terrasculpt/internal/engine/window"
	"github.com/Faultbox/terrasculpt/internal/logger"
	"github.com/Faultbox/terrasculpt/internal/sculpt"
	"github.com/Faultbox/terrasculpt/pkg/math"
)

// App is the main sculptor instance.
type App struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	sculptor *sculpt.Sculptor
	terrain  *terrain.Renderer
	cam      *camera.OrbitCamera
	sun      *lighting.Sun
	capture  *debug.ScreenshotCapture

	brushSize float32

	// Mouse state between events
	mouseX, mouseY   int
	leftDown         bool
	middleDown       bool
	cursorOnTerrain  bool
	cursorX, cursorZ float32
}

// New creates the app. The window and GL context come up first; every
// GPU resource after that.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg:       cfg,
		brushSize: cfg.Brush.Size,
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      "TerraSculpt",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	a.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	caps := capability.Probe()
	logger.Info("graphics capabilities",
		zap.String("version", caps.Version),
		zap.Int32("max_texture_size", caps.MaxTextureSize),
		zap.Int32("vertex_texture_units", caps.MaxVertexTextureUnits),
		zap.Bool("float_renderable", caps.FloatRenderable),
	)

	a.sculptor, err = sculpt.New(sculpt.Config{
		Resolution: cfg.Terrain.Resolution,
		WorldSize:  cfg.Terrain.WorldSize,
	}, caps)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create sculptor: %w", err)
	}
	a.sculptor.SetBrushSize(a.brushSize)
	a.sculptor.SetBrushAmount(cfg.Brush.Amount)

	if cfg.Terrain.BaseHeightmap != "" {
		if err := a.loadBaseHeightmap(cfg.Terrain.BaseHeightmap); err != nil {
			a.Close()
			return nil, err
		}
	}

	a.terrain, err = terrain.NewRenderer(cfg.Terrain.Resolution, cfg.Terrain.WorldSize, cfg.Terrain.HeightMultiplier)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create terrain renderer: %w", err)
	}

	a.cam = camera.NewOrbitCamera()
	a.cam.FitToTerrain(cfg.Terrain.WorldSize)
	a.sun = lighting.NewSun()
	a.capture = debug.NewScreenshotCapture("screenshots", "terrasculpt")
	a.input = input.New()

	logger.Info("app initialized")
	return a, nil
}

func (a *App) loadBaseHeightmap(path string) error {
	data, err := texture.LoadHeightmap(path, a.cfg.Terrain.Resolution)
	if err != nil {
		return fmt.Errorf("failed to load base heightmap: %w", err)
	}
	if err := a.sculptor.LoadBaseHeightData(data, a.cfg.Terrain.BaseAmount, a.cfg.Terrain.MidGreyLowest); err != nil {
		return fmt.Errorf("failed to apply base heightmap: %w", err)
	}
	return nil
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

		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents()
		a.handleHeld(dt)

		a.applyBrush()

		// Run the sculpt pipeline, then draw the result
		heightTex := a.sculptor.Update()
		a.terrain.SetHeightTexture(heightTex)

		a.render()
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (a *App) handleEvents() {
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			a.renderer.Resize(event.Width, event.Height)

		case input.EventKeyDown:
			a.handleKey(event.Key)

		case input.EventMouseDown:
			a.mouseX, a.mouseY = event.MouseX, event.MouseY
			switch event.Button {
			case sdl.BUTTON_LEFT:
				a.leftDown = true
			case sdl.BUTTON_MIDDLE, sdl.BUTTON_RIGHT:
				a.middleDown = true
			}

		case input.EventMouseUp:
			switch event.Button {
			case sdl.BUTTON_LEFT:
				a.leftDown = false
			case sdl.BUTTON_MIDDLE, sdl.BUTTON_RIGHT:
				a.middleDown = false
			}

		case input.EventMouseMove:
			dx := float32(event.MouseX - a.mouseX)
			dy := float32(event.MouseY - a.mouseY)
			a.mouseX, a.mouseY = event.MouseX, event.MouseY
			if a.middleDown {
				a.cam.HandleDrag(dx, dy)
			}
			a.updateCursor()

		case input.EventMouseWheel:
			a.cam.HandleZoom(event.Scroll)
		}
	}
}

func (a *App) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		a.running = false

	case sdl.SCANCODE_C:
		if err := a.sculptor.Clear(); err != nil {
			logger.Error("clear failed", zap.Error(err))
		} else {
			logger.Info("sculpt layer cleared")
		}

	case sdl.SCANCODE_LEFTBRACKET:
		a.setBrushSize(a.brushSize * 0.8)
	case sdl.SCANCODE_RIGHTBRACKET:
		a.setBrushSize(a.brushSize * 1.25)

	case sdl.SCANCODE_MINUS:
		a.sculptor.SetBrushAmount(a.sculptor.BrushAmount() * 0.8)
	case sdl.SCANCODE_EQUALS:
		a.sculptor.SetBrushAmount(a.sculptor.BrushAmount() * 1.25)

	case sdl.SCANCODE_F11:
		a.exportHeightmap()
	case sdl.SCANCODE_F12:
		a.screenshot()
	}
}

// handleHeld applies continuous key state: WASD pans the camera.
func (a *App) handleHeld(dt float32) {
	keys := sdl.GetKeyboardState()
	var forward, right float32
	if keys[sdl.SCANCODE_W] != 0 {
		forward += 1
	}
	if keys[sdl.SCANCODE_S] != 0 {
		forward -= 1
	}
	if keys[sdl.SCANCODE_D] != 0 {
		right += 1
	}
	if keys[sdl.SCANCODE_A] != 0 {
		right -= 1
	}
	if forward != 0 || right != 0 {
		// Scale to roughly per-second panning regardless of frame rate
		a.cam.HandleMovement(forward*dt*60, right*dt*60)
	}
}

func (a *App) setBrushSize(size float32) {
	const minSize, maxSize = 0.5, 50.0
	if size < minSize {
		size = minSize
	}
	if size > maxSize {
		size = maxSize
	}
	a.brushSize = size
	a.sculptor.SetBrushSize(size)
}

// updateCursor reprojects the mouse onto the ground plane.
func (a *App) updateCursor() {
	w, h := a.renderer.Size()
	viewProj := a.viewProj(w, h)

	ray := picking.ScreenToRay(float32(a.mouseX), float32(a.mouseY), float32(w), float32(h), viewProj.Inverse())
	x, z, ok := ray.IntersectPlaneY(0)
	if !ok {
		a.cursorOnTerrain = false
		return
	}

	half := a.cfg.Terrain.WorldSize / 2
	a.cursorOnTerrain = x >= -half && x <= half && z >= -half && z <= half
	a.cursorX, a.cursorZ = x, z
}

// applyBrush queues a sculpt op while the left button is held over the
// terrain. Shift lowers instead of raising.
func (a *App) applyBrush() {
	if !a.leftDown || !a.cursorOnTerrain {
		return
	}

	typ := sculpt.BrushAdd
	keys := sdl.GetKeyboardState()
	if keys[sdl.SCANCODE_LSHIFT] != 0 || keys[sdl.SCANCODE_RSHIFT] != 0 {
		typ = sculpt.BrushRemove
	}

	a.sculptor.SculptDefault(typ, math.Vec3{X: a.cursorX, Y: 0, Z: a.cursorZ})
}

func (a *App) viewProj(w, h int) math.Mat4 {
	proj := math.Perspective(0.785398, float32(w)/float32(h), 0.1, 5000) // 45 degrees FOV
	return proj.Mul(a.cam.ViewMatrix())
}

func (a *App) render() {
	a.renderer.Begin()

	w, h := a.renderer.Size()
	cursor := terrain.Cursor{
		Active: a.cursorOnTerrain,
		Pos:    math.Vec2{X: a.cursorX, Y: a.cursorZ},
		Radius: a.brushSize,
		Color:  [3]float32{1.0, 0.55, 0.1},
	}
	light := terrain.Light{
		Dir:     a.sun.Direction(),
		Ambient: a.sun.Ambient,
		Diffuse: a.sun.Diffuse,
	}

	a.terrain.Render(a.viewProj(w, h), light, cursor)
}

func (a *App) screenshot() {
	pixels, w, h := a.renderer.ReadFramebuffer()
	name, err := a.capture.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("file", name))
}

func (a *App) exportHeightmap() {
	heights := a.sculptor.Heights()
	name, err := a.capture.ExportHeights(heights, a.cfg.Terrain.Resolution)
	if err != nil {
		logger.Error("heightmap export failed", zap.Error(err))
		return
	}
	logger.Info("heightmap exported", zap.String("file", name))
}

// Close cleans up app resources.
func (a *App) Close() {
	logger.Info("closing app")
	if a.terrain != nil {
		a.terrain.Destroy()
		a.terrain = nil
	}
	if a.sculptor != nil {
		a.sculptor.Destroy()
		a.sculptor = nil
	}
	if a.renderer != nil {
		a.renderer.Close()
		a.renderer = nil
	}
	if a.window != nil {
		a.window.Close()
		a.window = nil
	}
}
