package globe

import (
	"sync/atomic"

	"github.com/lixenwraith/weatherpets/constant"
	"github.com/lixenwraith/weatherpets/engine"
	"github.com/lixenwraith/weatherpets/geo"
	"github.com/lixenwraith/weatherpets/status"
	"github.com/lixenwraith/weatherpets/vmath"
)

// Controller owns the globe rotation under three drivers: auto-rotation, drag and
// click-to-toggle. Auto-rotation is modeled as a running flag advanced by Tick, the
// resume delay as a scheduler timer. Frame goroutine only
type Controller struct {
	proj  *Projection
	sched *engine.Scheduler

	autoRotate bool // user preference
	rotating   bool
	dragging   bool
	resume     *engine.Timer
	closed     bool

	onToggle func(name string)
	isActive func(name string) bool

	statRotation *status.AtomicFloat
	statAuto     *atomic.Bool
}

// Config configures a Controller
type Config struct {
	AutoRotate bool
	// OnToggle receives the clicked feature name
	OnToggle func(name string)
	// IsActive classifies features for rendering
	IsActive func(name string) bool
	Metrics  *status.Registry
}

// NewController creates a controller; rotation starts immediately when enabled
func NewController(sched *engine.Scheduler, cfg Config) *Controller {
	if cfg.Metrics == nil {
		cfg.Metrics = status.NewRegistry()
	}
	c := &Controller{
		proj:         NewProjection(),
		sched:        sched,
		autoRotate:   cfg.AutoRotate,
		onToggle:     cfg.OnToggle,
		isActive:     cfg.IsActive,
		statRotation: cfg.Metrics.Floats.Get(status.GlobeRotation),
		statAuto:     cfg.Metrics.Bools.Get(status.GlobeAutoRotate),
	}
	c.rotating = c.autoRotate
	c.statAuto.Store(c.autoRotate)
	return c
}

// Tick advances auto-rotation by delta frame-units
func (c *Controller) Tick(delta float64) {
	if c.closed || !c.rotating || c.dragging || delta <= 0 {
		return
	}
	c.proj.Rotate[0] += constant.GlobeRotateSpeed * delta
	c.statRotation.Set(vmath.WrapDegrees(c.proj.Rotate[0]))
}

// DragStart stops rotation and cancels any pending resume
func (c *Controller) DragStart() {
	if c.closed {
		return
	}
	c.dragging = true
	c.rotating = false
	c.cancelResume()
}

// DragMove rotates by the pointer delta in projection units; screen-down pitches the globe up
func (c *Controller) DragMove(dx, dy float64) {
	if c.closed || !c.dragging {
		return
	}
	k := constant.GlobeDragFactor / c.proj.Scale
	c.proj.Rotate[0] += dx * k
	c.proj.Rotate[1] -= dy * k
	c.statRotation.Set(vmath.WrapDegrees(c.proj.Rotate[0]))
}

// DragEnd schedules rotation to resume after the idle delay if the preference is on
func (c *Controller) DragEnd() {
	if c.closed || !c.dragging {
		return
	}
	c.dragging = false
	c.cancelResume()
	if c.autoRotate {
		c.resume = c.sched.After(constant.GlobeResumeDelay, func() {
			c.resume = nil
			if c.autoRotate && !c.dragging {
				c.rotating = true
			}
		})
	}
}

// SetAutoRotate changes the preference. Off stops rotation and any pending resume,
// on starts rotating at once unless a drag is in progress
func (c *Controller) SetAutoRotate(on bool) {
	if c.closed {
		return
	}
	c.autoRotate = on
	c.statAuto.Store(on)
	c.cancelResume()
	if on {
		c.rotating = !c.dragging
	} else {
		c.rotating = false
	}
}

// ToggleAutoRotate flips the preference and returns the new value
func (c *Controller) ToggleAutoRotate() bool {
	c.SetAutoRotate(!c.autoRotate)
	return c.autoRotate
}

// Click resolves the topmost feature under pt and raises OnToggle with its name
func (c *Controller) Click(pt vmath.Vec2, features *geo.Collection) (string, bool) {
	if c.closed {
		return "", false
	}
	lon, lat, ok := c.proj.Invert(pt)
	if !ok {
		return "", false
	}
	f, ok := features.FeatureAt(lon, lat)
	if !ok {
		return "", false
	}
	if c.onToggle != nil {
		c.onToggle(f.Name)
	}
	return f.Name, true
}

// Active classifies a feature as belonging to an active country
func (c *Controller) Active(name string) bool {
	if c.isActive == nil {
		return false
	}
	return c.isActive(name)
}

// Close cancels the pending resume and stops rotation; the controller is inert afterwards
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.cancelResume()
	c.rotating = false
	c.dragging = false
	c.closed = true
}

func (c *Controller) cancelResume() {
	if c.resume != nil {
		c.resume.Stop()
		c.resume = nil
	}
}

// Projection exposes the projection for rendering
func (c *Controller) Projection() *Projection {
	return c.proj
}

// Rotation returns [lambda, phi] in degrees
func (c *Controller) Rotation() [2]float64 {
	return c.proj.Rotate
}

// AutoRotate returns the user preference
func (c *Controller) AutoRotate() bool {
	return c.autoRotate
}

// Rotating reports whether auto-rotation is currently running
func (c *Controller) Rotating() bool {
	return c.rotating && !c.dragging
}

// Dragging reports whether a drag is in progress
func (c *Controller) Dragging() bool {
	return c.dragging
}

// ResumePending reports whether a resume timer is outstanding
func (c *Controller) ResumePending() bool {
	return c.resume.Active()
}
