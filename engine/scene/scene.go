package scene

import (
	"fmt"
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/menger-go/common"
	"github.com/Carmen-Shannon/menger-go/engine/camera"
	"github.com/Carmen-Shannon/menger-go/engine/carpet"
	"github.com/Carmen-Shannon/menger-go/engine/config"
	"github.com/Carmen-Shannon/menger-go/engine/hud"
	"github.com/Carmen-Shannon/menger-go/engine/interaction"
	"github.com/Carmen-Shannon/menger-go/engine/light"
	"github.com/Carmen-Shannon/menger-go/engine/model"
	"github.com/Carmen-Shannon/menger-go/engine/profiler"
	"github.com/Carmen-Shannon/menger-go/engine/renderer"
	"github.com/Carmen-Shannon/menger-go/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/menger-go/engine/renderer/material"
	"github.com/Carmen-Shannon/menger-go/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/menger-go/engine/transform"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// hudMargin is the overlay panel's inset from the window's top-left corner
// in pixels.
const hudMargin = 12.0

type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	r    renderer.Renderer
	cam  camera.Camera
	lit  light.Light
	mat  material.Material
	ctrl interaction.Controller

	mesh    model.Mesh
	overlay hud.Overlay
	prof    *profiler.Profiler

	lightProvider  bind_group_provider.BindGroupProvider
	modelProvider  bind_group_provider.BindGroupProvider
	hudProvider    bind_group_provider.BindGroupProvider
	hudLayout      wgpu.BindGroupLayoutDescriptor
	hudParamsDirty bool

	screenWidth  int
	screenHeight int

	// builtIterations is the depth of the vertex slab currently on the GPU.
	// The controller's depth is read fresh every tick; a mismatch triggers a
	// geometry rebuild before matrices are composed.
	builtIterations int
	placements      []carpet.Placement
	modelScratch    []model.GPUModelData
	chunkVisible    []int
	visibleCubes    int

	cullingDisabled bool
	showHUD         bool

	composeWorkers int
	composePool    worker.DynamicWorkerPool

	// writePool and drawBindGroupsPool are reused across frames to avoid
	// per-frame slice allocations.
	writePool          []bind_group_provider.BufferWrite
	drawBindGroupsPool []bind_group_provider.BindGroupProvider
}

// Scene defines the interface for a renderable carpet scene. A scene owns the
// GPU resources for one fractal carpet: the shared cube vertex slab, the
// per-cube model matrix storage buffer, the frame and light uniforms, the
// material bind group and the HUD overlay.
//
// The engine drives a scene once per tick: Prepare advances the view state
// and uploads all GPU buffers, then DrawCalls records the draw commands for
// the current frame.
type Scene interface {
	// Name returns the name of the scene.
	//
	// Returns:
	//   - string: the name of the scene
	Name() string

	// SetName sets the name of the scene.
	//
	// Parameters:
	//   - name: the new name of the scene
	SetName(name string)

	// Active returns whether the scene is active.
	//
	// Returns:
	//   - bool: true if the scene is active
	Active() bool

	// SetActive sets the active state of the scene.
	//
	// Parameters:
	//   - active: the new active state
	SetActive(active bool)

	// Camera returns the camera used by this scene.
	//
	// Returns:
	//   - camera.Camera: the scene camera
	Camera() camera.Camera

	// Light returns the directional light used by this scene.
	//
	// Returns:
	//   - light.Light: the scene light
	Light() light.Light

	// Controller returns the interaction controller driving the view state.
	//
	// Returns:
	//   - interaction.Controller: the scene's interaction controller
	Controller() interaction.Controller

	// Renderer returns the renderer that owns this scene's GPU resources.
	//
	// Returns:
	//   - renderer.Renderer: the scene renderer
	Renderer() renderer.Renderer

	// Iterations returns the recursion depth of the geometry currently on
	// the GPU.
	//
	// Returns:
	//   - int: the uploaded recursion depth
	Iterations() int

	// CubeCount returns the total number of cubes at the current depth.
	//
	// Returns:
	//   - int: the placement count
	CubeCount() int

	// VisibleCubeCount returns the number of cubes that survived the frustum
	// test during the most recent Prepare.
	//
	// Returns:
	//   - int: the visible cube count
	VisibleCubeCount() int

	// CullingDisabled returns whether frustum culling is bypassed.
	//
	// Returns:
	//   - bool: true if every cube is composed regardless of visibility
	CullingDisabled() bool

	// SetCullingDisabled toggles the frustum culling bypass.
	//
	// Parameters:
	//   - disabled: true to compose every cube regardless of visibility
	SetCullingDisabled(disabled bool)

	// ShowHUD returns whether the stats overlay is drawn.
	//
	// Returns:
	//   - bool: true if the overlay is drawn
	ShowHUD() bool

	// SetShowHUD toggles the stats overlay.
	//
	// Parameters:
	//   - show: true to draw the overlay
	SetShowHUD(show bool)

	// ApplySettings pushes the live-reloadable parts of the settings into the
	// running scene: spin speeds, recursion depth and HUD visibility. Fields
	// that are only read at startup (window size, tick rate, vsync, drag
	// sensitivity, maximum depth) are ignored here.
	//
	// Parameters:
	//   - settings: the settings snapshot to apply
	ApplySettings(settings config.Settings)

	// Resize informs the scene of a new surface size so the camera aspect
	// ratio and HUD placement stay correct.
	//
	// Parameters:
	//   - width: the new surface width in pixels
	//   - height: the new surface height in pixels
	Resize(width, height int)

	// Prepare advances the view state by one tick and uploads every GPU
	// buffer the frame needs: it applies the spin increment, rebuilds the
	// geometry if the recursion depth changed, composes the per-cube model
	// matrices in parallel, and writes the frame, light, model and HUD data.
	Prepare()

	// DrawCalls records the draw commands for the current frame. The carpet
	// is a single non-indexed draw covering every cube; the HUD overlay is a
	// second draw when enabled.
	//
	// Returns:
	//   - error: an error if a draw call fails
	DrawCalls() error
}

var _ Scene = &scene{}

// NewScene creates a new Scene instance with the given name, renderer and
// interaction controller, applying any provided options. It registers the
// carpet and HUD pipelines, initializes every bind group, and uploads the
// initial geometry at the controller's current recursion depth.
//
// The model matrix storage buffer is allocated once, sized for the
// controller's maximum depth, so depth changes at runtime never reallocate
// it.
//
// Panics if the renderer or controller is nil, or if GPU initialization
// fails.
//
// Parameters:
//   - name: the unique name of the scene
//   - r: the renderer that owns GPU resources for this scene
//   - ctrl: the interaction controller driving the view state
//   - options: variadic list of SceneBuilderOption functions to configure the scene
//
// Returns:
//   - Scene: the initialized Scene instance
func NewScene(name string, r renderer.Renderer, ctrl interaction.Controller, options ...SceneBuilderOption) Scene {
	if r == nil {
		panic("scene: renderer is required")
	}
	if ctrl == nil {
		panic("scene: interaction controller is required")
	}

	s := &scene{
		mu:             &sync.RWMutex{},
		name:           name,
		r:              r,
		ctrl:           ctrl,
		cam:            camera.NewCamera(),
		lit:            light.NewLight(),
		mat:            material.NewBrickMaterial(),
		overlay:        hud.NewOverlay(),
		prof:           profiler.NewProfiler(),
		screenWidth:    1280,
		screenHeight:   720,
		showHUD:        true,
		composeWorkers: max(runtime.NumCPU()-1, 1),
		hudLayout:      hudBindGroupLayout(),
	}

	for _, opt := range options {
		opt(s)
	}

	s.composePool = worker.NewDynamicWorkerPool(s.composeWorkers, 256, 1*time.Second)
	s.chunkVisible = make([]int, s.composeWorkers)

	maxCount := carpet.Count(ctrl.MaxIterations())
	s.modelScratch = make([]model.GPUModelData, maxCount)
	s.placements = make([]carpet.Placement, 0, maxCount)

	s.cam.SetAspect(float32(s.screenWidth) / float32(s.screenHeight))

	s.registerPipelines()
	s.initBindGroups(maxCount)

	s.mesh = model.NewMesh(
		model.WithName(name+"_carpet"),
		model.WithProvider(bind_group_provider.NewBindGroupProvider(name+"_carpet_mesh")),
	)
	if err := s.rebuildCarpet(ctrl.Iterations()); err != nil {
		panic(fmt.Sprintf("scene: failed to build initial carpet geometry: %v", err))
	}

	return s
}

// registerPipelines creates and registers the carpet and HUD render
// pipelines. The carpet draws back-face culled opaque geometry; the HUD
// draws a blended screen-space quad with depth testing off.
func (s *scene) registerPipelines() {
	carpetPipeline := pipeline.NewPipeline(carpetPipelineKey,
		pipeline.WithVertexShader(newCarpetVertexShader()),
		pipeline.WithFragmentShader(newCarpetFragmentShader()),
		pipeline.WithCullMode(wgpu.CullModeBack),
	)

	hudPipeline := pipeline.NewPipeline(hudPipelineKey,
		pipeline.WithVertexShader(newHudVertexShader()),
		pipeline.WithFragmentShader(newHudFragmentShader()),
		pipeline.WithDepthTestEnabled(false),
		pipeline.WithDepthWriteEnabled(false),
		pipeline.WithBlendEnabled(true),
	)

	if err := s.r.RegisterPipelines(carpetPipeline, hudPipeline); err != nil {
		panic(fmt.Sprintf("scene: failed to register pipelines: %v", err))
	}
}

// initBindGroups creates the frame, light, material, model and HUD bind
// groups. The HUD bind group itself is deferred until the first panel
// texture exists; only its sampler is created here.
func (s *scene) initBindGroups(maxCount int) {
	if err := s.r.InitBindGroup(s.cam.BindGroupProvider(), frameBindGroupLayout(), nil, nil); err != nil {
		panic(fmt.Sprintf("scene: failed to init frame bind group: %v", err))
	}

	s.lightProvider = bind_group_provider.NewBindGroupProvider(s.name + "_light")
	if err := s.r.InitBindGroup(s.lightProvider, lightBindGroupLayout(), nil, nil); err != nil {
		panic(fmt.Sprintf("scene: failed to init light bind group: %v", err))
	}

	s.initMaterial()

	s.modelProvider = bind_group_provider.NewBindGroupProvider(s.name + "_models")
	modelSlabSize := uint64((&model.GPUModelData{}).Size()) * uint64(maxCount)
	if err := s.r.InitBindGroup(s.modelProvider, modelBindGroupLayout(), nil, map[int]uint64{0: modelSlabSize}); err != nil {
		panic(fmt.Sprintf("scene: failed to init model bind group: %v", err))
	}

	s.hudProvider = bind_group_provider.NewBindGroupProvider(s.name + "_hud")
	s.hudProvider.SetVertexCount(6)
	hudSampler := common.SamplerStagingData{
		AddressModeU: wgpu.AddressModeClampToEdge,
		AddressModeV: wgpu.AddressModeClampToEdge,
		AddressModeW: wgpu.AddressModeClampToEdge,
		MagFilter:    wgpu.FilterModeNearest,
		MinFilter:    wgpu.FilterModeNearest,
	}
	if err := s.r.InitSampler(s.hudProvider, hudSamplerBinding, hudSampler); err != nil {
		panic(fmt.Sprintf("scene: failed to init hud sampler: %v", err))
	}
}

// initMaterial uploads the material's textures and sampler, creates its bind
// group, and writes the lighting parameter uniform once. Material parameters
// are static after construction so they are never rewritten per frame.
func (s *scene) initMaterial() {
	diffuse := s.mat.DiffuseTexture()
	normal := s.mat.NormalTexture()
	if diffuse == nil || normal == nil {
		panic(fmt.Sprintf("scene: material %q is missing diffuse or normal texture data", s.mat.Name()))
	}

	provider := bind_group_provider.NewBindGroupProvider(s.name + "_material")
	if err := s.r.InitTextureView(provider, materialDiffuseBinding, *diffuse); err != nil {
		panic(fmt.Sprintf("scene: failed to init diffuse texture: %v", err))
	}
	if err := s.r.InitTextureView(provider, materialNormalBinding, *normal); err != nil {
		panic(fmt.Sprintf("scene: failed to init normal texture: %v", err))
	}

	sampler := s.mat.Sampler()
	if sampler == nil {
		sampler = &common.SamplerStagingData{}
	}
	if err := s.r.InitSampler(provider, materialSamplerBinding, *sampler); err != nil {
		panic(fmt.Sprintf("scene: failed to init material sampler: %v", err))
	}

	if err := s.r.InitBindGroup(provider, materialBindGroupLayout(), nil, nil); err != nil {
		panic(fmt.Sprintf("scene: failed to init material bind group: %v", err))
	}

	params := s.mat.GPUParams()
	s.r.WriteBuffers([]bind_group_provider.BufferWrite{
		{Provider: provider, Binding: materialParamsBinding, Data: params.Marshal()},
	})

	s.mat.SetPipelineKey(carpetPipelineKey)
	s.mat.SetBindGroupProvider(provider)
}

// rebuildCarpet regenerates the cube geometry and placement list for the
// given recursion depth and uploads the vertex slab. The placement order and
// the vertex order come from the same generator walk, which keeps the
// vertex_index / 36 correspondence in the shader exact. Callers hold the
// write lock.
func (s *scene) rebuildCarpet(iterations int) error {
	vertices := model.BuildCarpetVertices(iterations)
	data := common.SliceToBytes(vertices)
	if err := s.r.InitMeshBuffers(s.mesh.Provider(), data, nil, len(vertices), 0); err != nil {
		return fmt.Errorf("failed to upload carpet geometry at depth %d: %w", iterations, err)
	}
	s.mesh.SetVertexData(data, len(vertices))

	s.placements = s.placements[:0]
	var radius float32
	for p := range carpet.Generate(model.RegionOriginX, model.RegionOriginY, model.RegionSize, iterations) {
		s.placements = append(s.placements, p)
		if r := (mgl32.Vec3{p.X, p.Y, p.Z}).Len() + model.CubeBoundingRadius(p); r > radius {
			radius = r
		}
	}
	s.mesh.SetBoundingRadius(radius)
	s.builtIterations = iterations
	return nil
}

func (s *scene) Prepare() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctrl.AdvanceSpin()

	if iterations := s.ctrl.Iterations(); iterations != s.builtIterations {
		if err := s.rebuildCarpet(iterations); err != nil {
			log.Printf("[Scene] %v", err)
		}
	}

	snap := s.ctrl.Snapshot()
	composeStart := time.Now()
	s.visibleCubes = s.composeModels(snap)
	if s.prof != nil {
		s.prof.ObserveCompose(time.Since(composeStart))
		s.prof.SetCubeCount(s.visibleCubes)
	}

	var frame GPUFrameUniform
	frame.ViewProj = [16]float32(s.cam.ViewProjectionMatrix())
	frame.SetNormalMat(transform.Normal(snap))
	camX, camY, camZ := s.cam.Position()
	frame.CameraPos = [3]float32{camX, camY, camZ}
	lightData := s.lit.GPUData()

	writes := s.writePool[:0]
	writes = append(writes,
		bind_group_provider.BufferWrite{Provider: s.cam.BindGroupProvider(), Binding: 0, Data: frame.Marshal()},
		bind_group_provider.BufferWrite{Provider: s.lightProvider, Binding: 0, Data: lightData.Marshal()},
	)
	if count := len(s.placements); count > 0 {
		writes = append(writes, bind_group_provider.BufferWrite{
			Provider: s.modelProvider,
			Binding:  0,
			Data:     common.SliceToBytes(s.modelScratch[:count]),
		})
	}
	if s.showHUD {
		writes = s.prepareHUD(writes)
	}
	s.writePool = writes

	s.r.WriteBuffers(writes)
}

// composeModels fills the model matrix slab for the current placement list,
// one pool task per contiguous chunk. Culled cubes are written as zero
// matrices rather than compacted away so the slab keeps its one-to-one
// correspondence with the vertex buffer; a zero matrix collapses the cube's
// triangles into a degenerate point that rasterizes nothing.
//
// Parameters:
//   - snap: the view state every chunk composes with
//
// Returns:
//   - int: the number of cubes that survived the frustum test
func (s *scene) composeModels(snap transform.Snapshot) int {
	count := len(s.placements)
	if count == 0 {
		return 0
	}

	placements := s.placements
	scratch := s.modelScratch[:count]

	cull := !s.cullingDisabled
	var frust common.Frustum
	var viewScale mgl32.Mat4
	if cull {
		frust = common.ExtractFrustumFromMatrix(s.cam.ViewProjectionMatrix())
		// The spin sandwich leaves a cube's center fixed, so world-space
		// centers only need the zoom scale and drag rotation.
		viewScale = mgl32.Scale3D(snap.ZoomScale, snap.ZoomScale, snap.ZoomScale).Mul4(snap.DragRotation)
	}

	workers := min(s.composeWorkers, count)
	chunk := (count + workers - 1) / workers

	// A WaitGroup provides the per-frame barrier; pool.Wait() blocks until
	// workers idle-exit, which is unsuitable for frame-rate workloads.
	var wg sync.WaitGroup
	tasks := 0
	for w := range workers {
		start := w * chunk
		end := min(start+chunk, count)
		if start >= end {
			break
		}
		tasks++
		wCap := w // capture for closure
		wg.Add(1)
		s.composePool.SubmitTask(worker.Task{
			ID: wCap,
			Do: func() (any, error) {
				defer wg.Done()
				visible := 0
				for i := start; i < end; i++ {
					p := placements[i]
					if cull {
						center := viewScale.Mul4x1(mgl32.Vec4{p.X, p.Y, p.Z, 1})
						radius := model.CubeBoundingRadius(p) * snap.ZoomScale
						if !frust.IntersectsSphere(center.Vec3(), radius) {
							scratch[i] = model.GPUModelData{}
							continue
						}
					}
					scratch[i] = model.GPUModelData{Model: [16]float32(transform.Model(p, snap))}
					visible++
				}
				s.chunkVisible[wCap] = visible
				return nil, nil
			},
		})
	}
	wg.Wait()

	total := 0
	for w := range tasks {
		total += s.chunkVisible[w]
	}
	return total
}

// prepareHUD refreshes the overlay text, swaps the panel texture when the
// text changed, and appends the placement uniform write when the panel size
// or screen size moved. The text deliberately avoids per-frame values such
// as the visible cube count; FPS changes once per second, so the panel
// re-rasterizes at most once per second during steady spinning.
func (s *scene) prepareHUD(writes []bind_group_provider.BufferWrite) []bind_group_provider.BufferWrite {
	fps := 0.0
	if s.prof != nil {
		fps = s.prof.FPS()
	}
	spinX, spinY, spinZ := s.ctrl.SpinSpeed()
	s.overlay.SetText(
		fmt.Sprintf("fps: %.1f", fps),
		fmt.Sprintf("depth: %d / %d", s.builtIterations, s.ctrl.MaxIterations()),
		fmt.Sprintf("cubes: %d", len(s.placements)),
		fmt.Sprintf("zoom: %.2f", s.ctrl.ZoomScale()),
		fmt.Sprintf("spin: %.1f / %.1f / %.1f", spinX, spinY, spinZ),
	)

	if s.overlay.Dirty() {
		s.uploadHUDPanel()
	}

	if s.hudParamsDirty && s.hudProvider.Buffer(hudParamsBinding) != nil {
		params := hud.GPUHudParams{
			ScreenSize: [2]float32{float32(s.screenWidth), float32(s.screenHeight)},
			PanelSize:  [2]float32{float32(s.overlay.PanelWidth()), float32(s.overlay.PanelHeight())},
			Origin:     [2]float32{hudMargin, hudMargin},
		}
		writes = append(writes, bind_group_provider.BufferWrite{
			Provider: s.hudProvider,
			Binding:  hudParamsBinding,
			Data:     params.Marshal(),
		})
		s.hudParamsDirty = false
	}

	return writes
}

// uploadHUDPanel replaces the panel texture with the overlay's current
// staging data and rebuilds the HUD bind group around the new view. The old
// view and bind group are released after the rebuild; wgpu reference
// counting keeps them alive for any frame still in flight.
func (s *scene) uploadHUDPanel() {
	staging := s.overlay.Staging()
	if staging == nil {
		return
	}

	oldView := s.hudProvider.TextureView(hudTextureBinding)
	oldGroup := s.hudProvider.BindGroup()

	if err := s.r.InitTextureView(s.hudProvider, hudTextureBinding, *staging); err != nil {
		log.Printf("[Scene] failed to upload hud panel texture: %v", err)
		return
	}
	if err := s.r.InitBindGroup(s.hudProvider, s.hudLayout, nil, nil); err != nil {
		log.Printf("[Scene] failed to rebuild hud bind group: %v", err)
		return
	}

	if oldView != nil {
		oldView.Release()
	}
	if oldGroup != nil {
		oldGroup.Release()
	}

	s.overlay.ClearDirty()
	s.hudParamsDirty = true
}

func (s *scene) DrawCalls() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bindGroups := s.drawBindGroupsPool[:0]
	bindGroups = append(bindGroups,
		s.cam.BindGroupProvider(),
		s.lightProvider,
		s.mat.BindGroupProvider(),
		s.modelProvider,
	)
	s.drawBindGroupsPool = bindGroups

	if err := s.r.DrawCall(carpetPipelineKey, s.mesh.Provider(), 1, bindGroups); err != nil {
		return fmt.Errorf("carpet draw call failed in scene %q: %w", s.name, err)
	}

	if s.showHUD && s.hudProvider.BindGroup() != nil {
		hudGroups := append(bindGroups[:0], s.hudProvider)
		if err := s.r.DrawCall(hudPipelineKey, s.hudProvider, 1, hudGroups); err != nil {
			return fmt.Errorf("hud draw call failed in scene %q: %w", s.name, err)
		}
	}

	return nil
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) Light() light.Light {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lit
}

func (s *scene) Controller() interaction.Controller {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ctrl
}

func (s *scene) Renderer() renderer.Renderer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r
}

func (s *scene) Iterations() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.builtIterations
}

func (s *scene) CubeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.placements)
}

func (s *scene) VisibleCubeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visibleCubes
}

func (s *scene) CullingDisabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cullingDisabled
}

func (s *scene) SetCullingDisabled(disabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cullingDisabled = disabled
}

func (s *scene) ShowHUD() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.showHUD
}

func (s *scene) SetShowHUD(show bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showHUD = show
}

func (s *scene) ApplySettings(settings config.Settings) {
	s.ctrl.SetSpinSpeed(settings.Carpet.SpinSpeedX, settings.Carpet.SpinSpeedY, settings.Carpet.SpinSpeedZ)
	s.ctrl.SetIterations(settings.Carpet.Iterations)
	s.SetShowHUD(settings.Render.ShowHUD)
}

func (s *scene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	s.mu.Lock()
	s.screenWidth = width
	s.screenHeight = height
	s.hudParamsDirty = true
	s.mu.Unlock()

	s.cam.SetAspect(float32(width) / float32(height))
}
