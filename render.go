package main

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"rotviz/rotation"
)

// Initial camera tilt so all three coordinate axes are visible instead of
// the Z-axis projecting to a single cell.
const (
	cameraTiltX = -0.4
	cameraTiltY = 0.6
)

type sceneRenderer struct {
	point    rotation.Point3
	axis     rotation.Axis
	traj     []rotation.Point3
	angleDeg float64

	center        rotation.Point3
	radius        float64
	ticksPerFrame int

	// mu guards the view state below, shared between the input goroutine
	// and the render tick.
	mu                     sync.Mutex
	angleX, angleY, angleZ float64
	autoRotate             bool
	frame                  int
	frameCount             int
	trailLength            int
	style                  int
}

func newSceneRenderer(p rotation.Point3, axis rotation.Axis, traj []rotation.Point3, angleDeg float64, style, speed int) *sceneRenderer {
	center, radius := sceneBounds(p, axis, traj)

	// The sweep holds each frame for 1/speed seconds, quantized to the
	// render tick.
	ticks := 25 / speed
	if ticks < 1 {
		ticks = 1
	}

	return &sceneRenderer{
		point:         p,
		axis:          axis,
		traj:          traj,
		angleDeg:      angleDeg,
		center:        center,
		radius:        radius,
		angleX:        cameraTiltX,
		angleY:        cameraTiltY,
		autoRotate:    true,
		ticksPerFrame: ticks,
		trailLength:   len(traj),
		style:         style,
	}
}

// sceneBounds fits the view around everything drawn: the sweep, the axis
// segment, the original point, and the world origin the coordinate axes
// radiate from.
func sceneBounds(p rotation.Point3, axis rotation.Axis, traj []rotation.Point3) (rotation.Point3, float64) {
	pts := make([]rotation.Point3, 0, len(traj)+4)
	pts = append(pts, p, axis.Start, axis.End, rotation.Point3{})
	pts = append(pts, traj...)

	var center rotation.Point3
	for _, q := range pts {
		center = center.Add(q)
	}
	center = center.Scale(1 / float64(len(pts)))

	radius := 0.0
	for _, q := range pts {
		if d := q.Sub(center).Norm(); d > radius {
			radius = d
		}
	}
	if radius < 1.25 {
		radius = 1.25 // keep tiny scenes from zooming in to nothing
	}
	return center, radius * 1.2
}

func (sr *sceneRenderer) update() {
	sr.frameCount++
	if sr.frameCount%sr.ticksPerFrame == 0 {
		sr.frame = (sr.frame + 1) % len(sr.traj) // the sweep loops
	}

	if sr.autoRotate {
		sr.angleX += 0.008
		sr.angleY += 0.012
		sr.angleZ += 0.006
	}
}

// rel moves a world point into camera space: centered on the scene, then
// orbited by the camera angles.
func (sr *sceneRenderer) rel(p rotation.Point3) rotation.Point3 {
	return p.Sub(sr.center).Rotate(sr.angleX, sr.angleY, sr.angleZ)
}

// Multiple shading character sets for different visual styles
var shadingStyles = [][]rune{
	// Heavy to light blocks
	{'█', '▉', '▊', '▋', '▌', '▍', '▎', '▏', '░', '▒', '▓', '·', '˙', ' '},
	// Circle variations
	{'●', '◉', '◎', '○', '◌', '◦', '∘', '·', '˙', '.'},
	// ASCII traditional
	{'@', '#', '&', '%', '$', 'W', 'M', 'H', '8', '0', 'Q', 'O', 'o', '*', '+', '=', '-', '^', ':', '.', ' '},
	// Dots and marks
	{'▪', '▫', '■', '□', '●', '○', '▲', '△', '♦', '◊', '▬', '▭', '·', '˙', ' '},
}

// depthChar picks a glyph for a normalized depth; the nearest samples get
// the heaviest glyph of the style's ramp.
func depthChar(depth float64, style int) rune {
	if depth < 0 {
		depth = 0
	}
	if depth > 1 {
		depth = 1
	}

	chars := shadingStyles[style%len(shadingStyles)]
	idx := int((1 - depth) * float64(len(chars)-1))
	return chars[idx]
}

var (
	colorAxisX    = colorful.Color{R: 0.86, G: 0.27, B: 0.25}
	colorAxisY    = colorful.Color{R: 0.24, G: 0.78, B: 0.35}
	colorAxisZ    = colorful.Color{R: 0.25, G: 0.45, B: 1.00}
	colorRotAxis  = colorful.Color{R: 0.66, G: 0.35, B: 0.88}
	colorOriginal = colorful.Color{R: 0.35, G: 0.55, B: 1.00}
	colorRotated  = colorful.Color{R: 1.00, G: 0.32, B: 0.25}
	colorTrailOld = colorful.Color{R: 0.25, G: 0.35, B: 0.50}
	colorTrailNew = colorful.Color{R: 0.68, G: 0.85, B: 0.90}
)

// shade darkens base with distance; the nearest samples keep full
// brightness.
func shade(base colorful.Color, depth float64) tcell.Color {
	if depth < 0 {
		depth = 0
	}
	if depth > 1 {
		depth = 1
	}

	c := base.BlendLab(colorful.Color{}, 0.75*(1-depth)).Clamped()
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (sr *sceneRenderer) render(s tcell.Screen, w, h int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	uiText := "rotviz | Arrows:orbit A:auto S:style R:reset N:restart +/-:trail Q:quit"
	drawText(s, 1, 1, style, uiText)

	// Terminal cells are roughly twice as tall as wide; double the X scale
	// to keep circles round.
	unit := math.Min(float64(w-2)/(4*sr.radius), (float64(h)-6)/(2*sr.radius))
	scaleX, scaleY := 2*unit, unit
	centerX, centerY := float64(w)/2, float64(h)/2

	type sample struct {
		pos      rotation.Point3 // camera space
		base     colorful.Color
		char     rune // 0 picks a glyph by depth
		style    int
		priority int
	}

	samples := make([]sample, 0, 1024)

	line := func(a, b rotation.Point3, base colorful.Color, char rune, chStyle, priority int) {
		d := b.Sub(a)
		n := int(d.Norm()*scaleX) + 2
		if n > 400 {
			n = 400
		}
		for i := 0; i <= n; i++ {
			p := a.Add(d.Scale(float64(i) / float64(n)))
			samples = append(samples, sample{
				pos: sr.rel(p), base: base, char: char, style: chStyle, priority: priority})
		}
	}

	// Coordinate axes radiate from the world origin.
	axisLen := sr.radius * 0.75
	line(rotation.Point3{}, rotation.Point3{X: axisLen}, colorAxisX, '·', 0, 0)
	line(rotation.Point3{}, rotation.Point3{Y: axisLen}, colorAxisY, '·', 0, 0)
	line(rotation.Point3{}, rotation.Point3{Z: axisLen}, colorAxisZ, '·', 0, 0)
	samples = append(samples,
		sample{pos: sr.rel(rotation.Point3{X: axisLen * 1.08}), base: colorAxisX, char: 'X', priority: 3},
		sample{pos: sr.rel(rotation.Point3{Y: axisLen * 1.08}), base: colorAxisY, char: 'Y', priority: 3},
		sample{pos: sr.rel(rotation.Point3{Z: axisLen * 1.08}), base: colorAxisZ, char: 'Z', priority: 3})

	// The rotation axis is the highlighted line of the scene.
	line(sr.axis.Start, sr.axis.End, colorRotAxis, 0, sr.style, 1)

	// Trail of sweep positions already visited, oldest first.
	trail := sr.traj[:sr.frame]
	if len(trail) > sr.trailLength {
		trail = trail[len(trail)-sr.trailLength:]
	}
	for i, p := range trail {
		age := float64(i+1) / float64(len(trail))

		var char rune
		switch {
		case i >= len(trail)-4:
			char = '●'
		case i >= len(trail)-8:
			char = '○'
		default:
			char = 0
		}

		samples = append(samples, sample{
			pos:      sr.rel(p),
			base:     colorTrailOld.BlendLab(colorTrailNew, age),
			char:     char,
			style:    1,
			priority: 2})
	}

	// Markers: where the point started and where the sweep has it now.
	samples = append(samples,
		sample{pos: sr.rel(sr.point), base: colorOriginal, char: '●', priority: 3},
		sample{pos: sr.rel(sr.traj[sr.frame]), base: colorRotated, char: '◉', priority: 3})

	// Depth range over what is actually in the scene this frame.
	minZ, maxZ := math.Inf(1), math.Inf(-1)
	for _, smp := range samples {
		if smp.pos.Z < minZ {
			minZ = smp.pos.Z
		}
		if smp.pos.Z > maxZ {
			maxZ = smp.pos.Z
		}
	}
	depthRange := maxZ - minZ
	if depthRange == 0 {
		depthRange = 1
	}

	type renderPoint struct {
		x, y     int
		z        float64
		char     rune
		color    tcell.Color
		priority int
	}

	renderPoints := make([]renderPoint, 0, len(samples))
	for _, smp := range samples {
		sx := int(math.Round(centerX + smp.pos.X*scaleX))
		sy := int(math.Round(centerY - smp.pos.Y*scaleY))
		if sx < 0 || sx >= w || sy < 3 || sy >= h-2 {
			continue
		}

		depth := (smp.pos.Z - minZ) / depthRange
		char := smp.char
		if char == 0 {
			char = depthChar(depth, smp.style)
		}

		renderPoints = append(renderPoints, renderPoint{
			x: sx, y: sy, z: smp.pos.Z,
			char: char, color: shade(smp.base, depth), priority: smp.priority})
	}

	// Sort by priority and depth
	for i := 0; i < len(renderPoints)-1; i++ {
		for j := i + 1; j < len(renderPoints); j++ {
			if renderPoints[i].priority > renderPoints[j].priority ||
				(renderPoints[i].priority == renderPoints[j].priority && renderPoints[i].z > renderPoints[j].z) {
				renderPoints[i], renderPoints[j] = renderPoints[j], renderPoints[i]
			}
		}
	}

	for _, rp := range renderPoints {
		s.SetContent(rp.x, rp.y, rp.char, nil, tcell.StyleDefault.Foreground(rp.color))
	}

	stepAngle := sr.angleDeg * float64(sr.frame) / float64(len(sr.traj)-1)
	info := fmt.Sprintf("Step %d/%d: rotation angle = %.1f° | Trail: %d | Style: %d | Frame: %d",
		sr.frame+1, len(sr.traj), stepAngle, sr.trailLength, sr.style+1, sr.frameCount)
	drawText(s, 1, h-2, tcell.StyleDefault.Foreground(tcell.ColorDarkGray), info)
}

// handleKey applies one key event to the shared view state. It reports
// false when the key asks to quit.
func (sr *sceneRenderer) handleKey(ev *tcell.EventKey) bool {
	sr.mu.Lock()
	defer sr.mu.Unlock()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		sr.angleX -= 0.15
	case tcell.KeyDown:
		sr.angleX += 0.15
	case tcell.KeyLeft:
		sr.angleY -= 0.15
	case tcell.KeyRight:
		sr.angleY += 0.15
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case 'r':
			sr.angleX, sr.angleY, sr.angleZ = cameraTiltX, cameraTiltY, 0
		case 'a', ' ':
			sr.autoRotate = !sr.autoRotate
		case 'n':
			sr.frame, sr.frameCount = 0, 0
		case 's', 'S':
			sr.style = (sr.style + 1) % len(shadingStyles)
		case '+', '=':
			if sr.trailLength < len(sr.traj) {
				sr.trailLength += 5
			}
		case '-', '_':
			if sr.trailLength > 5 {
				sr.trailLength -= 5
			}
		}
	}
	return true
}

func runAnimation(sr *sceneRenderer) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen init failed: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("screen start failed: %w", err)
	}
	defer s.Fini()

	quit := make(chan struct{})

	// Input handler
	go func() {
		defer close(quit)
		for {
			select {
			case <-quit:
				return
			default:
				ev := s.PollEvent()
				switch ev := ev.(type) {
				case *tcell.EventKey:
					if !sr.handleKey(ev) {
						return
					}
				case *tcell.EventResize:
					s.Sync()
				}
			}
		}
	}()

	// Render loop
	ticker := time.NewTicker(40 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return nil
		case <-ticker.C:
			sr.mu.Lock()
			sr.update()
			s.Clear()
			w, h := s.Size()

			if w <= 15 || h <= 8 {
				sr.mu.Unlock()
				continue
			}

			sr.render(s, w, h)
			sr.mu.Unlock()
			s.Show()
		}
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for i, r := range str {
		s.SetContent(x+i, y, r, nil, style)
	}
}
