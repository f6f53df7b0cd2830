package systems

import (
	"image"
	"image/color"
	"slices"

	"github.com/automoto/tower-defense/components"
	cfg "github.com/automoto/tower-defense/config"
	"github.com/automoto/tower-defense/shared/gamemath"
	"github.com/automoto/tower-defense/tags"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// screenTriangle is a projected, shaded triangle ready for painter's-order drawing.
type screenTriangle struct {
	Points [3]mgl32.Vec2
	Depth  float32
	Color  color.RGBA
}

// sceneLight is a light in world space.
type sceneLight struct {
	gamemath.PointLight
	Shadows bool
}

// frameView holds the camera state for one frame.
type frameView struct {
	VP            mgl32.Mat4
	Eye           mgl32.Vec3
	Width, Height float32
}

var (
	// Source region for untextured triangles; the border keeps filtering from bleeding.
	whiteSubImage *ebiten.Image

	shadowLayer *ebiten.Image
	shadowOp    = &ebiten.DrawImageOptions{}

	drawTrianglesOp = &ebiten.DrawTrianglesOptions{}

	groundTris []screenTriangle
	sceneTris  []screenTriangle
	shadowTris []screenTriangle
	vertexBuf  []ebiten.Vertex
	indexBuf   []uint16
)

func getWhiteSubImage() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Draw3D renders every Mesh entity through the scene camera. The ground is drawn first,
// then the shadows cast on it, then everything else from back to front.
func Draw3D(ecs *ecs.ECS, screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	view, ok := cameraView(ecs.World, float32(width), float32(height))
	if !ok {
		return // No camera yet
	}
	lights := collectLights(ecs.World)

	groundTris, sceneTris = collectTriangles(ecs.World, view, lights, groundTris[:0], sceneTris[:0])
	shadowTris = collectShadows(ecs.World, view, lights, shadowTris[:0])

	drawTriangles(screen, groundTris)
	if len(shadowTris) > 0 {
		drawShadowLayer(screen, shadowTris)
	}
	drawTriangles(screen, sceneTris)
}

// cameraView builds the view-projection for the first camera in the world.
func cameraView(w donburi.World, width, height float32) (frameView, bool) {
	entry, ok := tags.Camera.First(w)
	if !ok || height == 0 {
		return frameView{}, false
	}
	cam := components.Camera.Get(entry)
	eye := WorldTransform(w, entry).Translation

	return frameView{
		VP:     gamemath.ViewProjection(eye, cam.Target, cam.Up, cam.FovY, width/height, cam.Near, cam.Far),
		Eye:    eye,
		Width:  width,
		Height: height,
	}, true
}

func collectLights(w donburi.World) []sceneLight {
	var lights []sceneLight
	components.PointLight.Each(w, func(e *donburi.Entry) {
		l := components.PointLight.Get(e)
		lights = append(lights, sceneLight{
			PointLight: gamemath.PointLight{
				Position:  WorldTransform(w, e).Translation,
				Intensity: l.Intensity,
				Range:     l.Range,
			},
			Shadows: l.ShadowsEnabled,
		})
	})
	return lights
}

// collectTriangles projects and shades every visible mesh triangle. Ground triangles are
// returned separately; the rest are sorted far to near.
func collectTriangles(w donburi.World, view frameView, lights []sceneLight, ground, scene []screenTriangle) ([]screenTriangle, []screenTriangle) {
	components.Mesh.Each(w, func(e *donburi.Entry) {
		mesh := components.Mesh.Get(e)
		if mesh.Mesh == nil {
			return
		}
		base := mesh.Color
		if e.HasComponent(components.Material) {
			base = components.Material.Get(e).Color
		}
		isGround := e.HasComponent(tags.Ground)
		model := WorldTransform(w, e).Matrix()

		for i := 0; i < mesh.TriangleCount(); i++ {
			a, b, c := mesh.Triangle(i)
			a = mgl32.TransformCoordinate(a, model)
			b = mgl32.TransformCoordinate(b, model)
			c = mgl32.TransformCoordinate(c, model)

			if !gamemath.FacesCamera(a, b, c, view.Eye) {
				continue
			}
			tri, ok := projectTriangle(view, a, b, c)
			if !ok {
				continue
			}
			tri.Color = shadeTriangle(base, a, b, c, lights)

			if isGround {
				ground = append(ground, tri)
			} else {
				scene = append(scene, tri)
			}
		}
	})

	sortFarToNear(scene)
	return ground, scene
}

// collectShadows flattens every non-ground mesh onto the ground plane, once per
// shadow-casting light.
func collectShadows(w donburi.World, view frameView, lights []sceneLight, out []screenTriangle) []screenTriangle {
	groundEntry, ok := tags.Ground.First(w)
	if !ok {
		return out
	}
	planeY := WorldTransform(w, groundEntry).Translation.Y() + cfg.Render.ShadowLift
	// Drawn opaque; the layer applies ShadowColor's alpha.
	shadowColor := cfg.Render.ShadowColor
	shadowColor.A = 255

	for _, l := range lights {
		if !l.Shadows {
			continue
		}
		components.Mesh.Each(w, func(e *donburi.Entry) {
			mesh := components.Mesh.Get(e)
			if mesh.Mesh == nil || e.HasComponent(tags.Ground) {
				return
			}
			model := WorldTransform(w, e).Matrix()

			for i := 0; i < mesh.TriangleCount(); i++ {
				a, b, c := mesh.Triangle(i)
				sa, okA := gamemath.ShadowPoint(mgl32.TransformCoordinate(a, model), l.Position, planeY)
				sb, okB := gamemath.ShadowPoint(mgl32.TransformCoordinate(b, model), l.Position, planeY)
				sc, okC := gamemath.ShadowPoint(mgl32.TransformCoordinate(c, model), l.Position, planeY)
				if !okA || !okB || !okC {
					continue
				}
				if tri, ok := projectTriangle(view, sa, sb, sc); ok {
					tri.Color = shadowColor
					out = append(out, tri)
				}
			}
		})
	}
	return out
}

func projectTriangle(view frameView, a, b, c mgl32.Vec3) (screenTriangle, bool) {
	var tri screenTriangle
	var depth float32
	for i, p := range [3]mgl32.Vec3{a, b, c} {
		s, d, ok := gamemath.ProjectPoint(view.VP, p, view.Width, view.Height)
		if !ok {
			return screenTriangle{}, false
		}
		tri.Points[i] = s
		depth += d
	}
	tri.Depth = depth / 3
	return tri, true
}

func shadeTriangle(base color.RGBA, a, b, c mgl32.Vec3, lights []sceneLight) color.RGBA {
	n := gamemath.FaceNormal(a, b, c)
	centroid := a.Add(b).Add(c).Mul(1.0 / 3)

	var diffuse float32
	for _, l := range lights {
		diffuse += gamemath.LightFactor(l.PointLight, centroid, n, cfg.Render.LumensToUnit)
	}
	return gamemath.Shade(base, cfg.Render.Ambient, diffuse)
}

func sortFarToNear(tris []screenTriangle) {
	slices.SortStableFunc(tris, func(x, y screenTriangle) int {
		switch {
		case x.Depth > y.Depth:
			return -1
		case x.Depth < y.Depth:
			return 1
		}
		return 0
	})
}

// drawTriangles submits tris in order as a single batch.
func drawTriangles(dst *ebiten.Image, tris []screenTriangle) {
	if len(tris) == 0 {
		return
	}
	vertexBuf = vertexBuf[:0]
	indexBuf = indexBuf[:0]

	for _, t := range tris {
		r := float32(t.Color.R) / 255
		g := float32(t.Color.G) / 255
		b := float32(t.Color.B) / 255
		a := float32(t.Color.A) / 255
		start := uint16(len(vertexBuf))
		for _, p := range t.Points {
			vertexBuf = append(vertexBuf, ebiten.Vertex{
				DstX: p.X(), DstY: p.Y(),
				SrcX: 1, SrcY: 1,
				ColorR: r, ColorG: g, ColorB: b, ColorA: a,
			})
		}
		indexBuf = append(indexBuf, start, start+1, start+2)
	}

	dst.DrawTriangles(vertexBuf, indexBuf, getWhiteSubImage(), drawTrianglesOp)
}

// drawShadowLayer draws shadows opaque on an offscreen layer, then blends the layer once,
// so overlapping shadow triangles do not darken each other.
func drawShadowLayer(screen *ebiten.Image, tris []screenTriangle) {
	bounds := screen.Bounds()
	if shadowLayer == nil || shadowLayer.Bounds().Size() != bounds.Size() {
		shadowLayer = ebiten.NewImage(bounds.Dx(), bounds.Dy())
	}
	shadowLayer.Clear()
	drawTriangles(shadowLayer, tris)

	shadowOp.ColorScale.Reset()
	shadowOp.ColorScale.ScaleAlpha(float32(cfg.Render.ShadowColor.A) / 255)
	screen.DrawImage(shadowLayer, shadowOp)
}
