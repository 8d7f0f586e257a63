package game

import (
	"fmt"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"voxelite/internal/config"
	"voxelite/internal/graphics"
	"voxelite/internal/input"
	"voxelite/internal/player"
	"voxelite/internal/profiling"
	"voxelite/internal/world"
)

// Session owns one running world: store, manager, actor, renderer and input,
// all driven from a single frame loop on the main thread.
type Session struct {
	Window   *glfw.Window
	Store    *world.Store
	Manager  *Manager
	Player   *player.Player
	Renderer *graphics.Renderer
	Input    *input.Manager

	Paused        bool
	showProfiling bool

	prevCfg   config.Snapshot
	limiter   *FPSLimiter
	lastFrame time.Time
}

// NewSession builds the world around the spawn point and wires up rendering
// and input on the given window.
func NewSession(window *glfw.Window) (*Session, error) {
	cfg := config.Current()

	sampler := world.NewSampler(cfg.MaskScale, cfg.HillScale, cfg.DetailScale, cfg.MountainAmp)
	store := world.NewStore(sampler, world.NewBuildQueue())
	manager := NewManager(store)

	// Spawn on the sampled surface at the world origin, a little above it so
	// the first ticks settle the actor onto the ground.
	surface := sampler.HeightAt(0, 0)
	spawn := mgl32.Vec3{0.5, float32(surface) + player.HalfHeight + 2, 0.5}
	actor := player.New(store, spawn)

	renderer, err := graphics.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}

	im := input.NewManager()
	im.InstallCallbacks(window)
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		renderer.UpdateViewport(w, h)
	})
	w, h := window.GetFramebufferSize()
	renderer.UpdateViewport(w, h)

	s := &Session{
		Window:    window,
		Store:     store,
		Manager:   manager,
		Player:    actor,
		Renderer:  renderer,
		Input:     im,
		prevCfg:   cfg,
		limiter:   NewFPSLimiter(),
		lastFrame: time.Now(),
	}

	// Load and mesh the initial grid before the first frame.
	manager.UpdateVisibleGrid(spawn.X(), spawn.Z())
	return s, nil
}

// RunFrame executes one tick: input, simulation, streaming, rendering.
func (s *Session) RunFrame() {
	now := time.Now()
	dt := now.Sub(s.lastFrame).Seconds()
	s.lastFrame = now
	if dt > 0.25 {
		// Hitch guard: a debugger pause must not turn into a physics leap.
		dt = 0.25
	}

	profiling.ResetFrame()
	glfw.PollEvents()
	st := s.Input.Snapshot()

	if s.Input.JustPressed(input.ActionPause) {
		s.togglePause()
	}
	if s.Input.JustPressed(input.ActionToggleProfiling) {
		s.showProfiling = !s.showProfiling
	}

	cfg := config.Current()
	if st.Regenerate || !cfg.TerrainEquals(s.prevCfg) {
		s.Manager.RegenerateAll(s.Player.Position.X(), s.Player.Position.Z())
	}
	s.prevCfg = cfg

	if !s.Paused {
		s.Player.ApplyLook(st.LookDX, st.LookDY, cfg.MouseSensitivity)
		s.Player.Update(dt, st)
		if st.CycleBlock {
			s.Player.CycleBlock()
		}
		if st.Break {
			s.Player.BreakBlock()
		}
		if st.Place {
			s.Player.PlaceBlock()
		}
	}

	s.Manager.UpdateVisibleGrid(s.Player.Position.X(), s.Player.Position.Z())
	s.Manager.DrainBuildQueue(cfg.MeshBudget)

	s.Renderer.Draw(s.Store.All(), s.Player.ViewMatrix(), s.statusText())
	s.Window.SwapBuffers()
	s.limiter.Wait()
}

func (s *Session) togglePause() {
	s.Paused = !s.Paused
	if s.Paused {
		s.Window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	} else {
		s.Window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		s.Input.ResetMouse()
	}
}

// statusText formats the diagnostics readout: actor state, streaming state
// and, when toggled, the frame's hottest profiling entries.
func (s *Session) statusText() string {
	p := s.Player.Position
	text := fmt.Sprintf("pos %.1f %.1f %.1f  ground %v\nblock %s  queue %d  chunks %d",
		p.X(), p.Y(), p.Z(), s.Player.OnGround,
		s.Player.Selected, s.Manager.QueueDepth(), s.Manager.LoadedChunks())
	if s.Paused {
		text += "\npaused"
	}
	if s.showProfiling {
		text += "\n" + profiling.TopN(4)
	}
	return text
}

// Cleanup releases the session's resources. Safe to call once at shutdown.
func (s *Session) Cleanup() {
	s.Store.Reset()
	s.Renderer.Dispose()
}
