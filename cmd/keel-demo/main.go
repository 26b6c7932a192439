package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/keelengine/keel/internal/core/config"
	"github.com/keelengine/keel/internal/core/observability/log"
	"github.com/keelengine/keel/pkg/concurrent"
	"github.com/keelengine/keel/pkg/ext"
	"github.com/keelengine/keel/pkg/physics"
	"github.com/keelengine/keel/pkg/render"
	"github.com/keelengine/keel/pkg/scene"
)

func main() {
	configPath := flag.String("config", "", "path to a yaml config file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger := log.New(cfg.Level())
	defer func() { _ = logger.Sync() }()

	if cfg.RandSeed != 0 {
		ext.SetSource(rand.New(rand.NewSource(cfg.RandSeed)))
		logger.Info("random source seeded", log.Int64("seed", cfg.RandSeed))
	}

	s, err := loadScene(cfg)
	if err != nil {
		logger.Fatal("scene setup failed", log.Error(err))
	}
	logger.Info("scene ready", log.String("scene", s.Name()), log.Int("nodes", s.Len()))

	tourVectors(logger)
	tourTransforms(s, logger)
	tourRenderables(logger)
	tourBodies(logger)
	tourSelection(s, logger)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadFile(path)
}

// loadScene builds the demo scene, from the configured file when one is
// given.
func loadScene(cfg *config.Config) (*scene.Scene, error) {
	if cfg.ScenePath == "" {
		return demoScene()
	}
	f, err := os.Open(cfg.ScenePath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	sc, err := scene.Load(f)
	if err != nil {
		return nil, err
	}
	return sc.Build()
}

func demoScene() (*scene.Scene, error) {
	s := scene.New("playground")
	world := s.Spawn("world")

	player := scene.NewTransform("player")
	player.SetTag("player")
	player.SetLocalPosition(mgl64.Vec3{0, 1, 0})
	if err := player.SetParent(world); err != nil {
		return nil, err
	}

	for i := 0; i < 3; i++ {
		crate := scene.NewTransform(fmt.Sprintf("crate-%d", i))
		crate.SetTag("crate")
		crate.SetLocalPosition(mgl64.Vec3{float64(2 + i*2), 0.5, 0})
		if err := crate.SetParent(world); err != nil {
			return nil, err
		}
	}

	camera := s.Spawn("camera")
	camera.SetLocalPosition(mgl64.Vec3{0, 6, -8})
	return s, nil
}

// tourVectors shows the optional-component constructors.
func tourVectors(logger *log.Logger) {
	spawn := mgl64.Vec3{1, 2, 3}
	logger.Info("vector helpers",
		log.Vec3("spawn", spawn),
		log.Vec3("with_y5", ext.With(spawn, ext.Y(5))),
		log.Vec3("add_x1_zm1", ext.Add(spawn, ext.X(1), ext.Z(-1))),
	)
}

func tourTransforms(s *scene.Scene, logger *log.Logger) {
	player := s.Find("player")
	if player == nil {
		logger.Warn("no player node in scene")
		return
	}

	ext.SetPosition(player, ext.Y(0))
	logger.Info("player grounded", log.Vec3("world", player.Position()))

	ext.SetLocalPosition(player, 0, 1, 0)
	logger.Info("player respawned", log.Vec3("local", player.LocalPosition()))

	crates := s.FindWithTag(scene.TagFor("crate"))
	for _, crate := range crates {
		ext.LocalReset(crate)
	}
	logger.Info("crates reset", log.Int("count", len(crates)))

	ext.GlobalReset(player)
	logger.Info("player at world origin",
		log.Vec3("world", player.Position()),
		log.Vec3("local", player.LocalPosition()),
	)
}

// tourRenderables fades a sprite batch in parallel, then pushes the UI
// icons through a two-stage pass.
func tourRenderables(logger *log.Logger) {
	sprites := make([]*render.SpriteRenderer, 0, 8)
	for i := 0; i < 8; i++ {
		sprites = append(sprites, render.NewSpriteRenderer(fmt.Sprintf("crate-%d.png", i)))
	}

	if err := concurrent.ForEach(sprites, func(sr *render.SpriteRenderer) error {
		ext.SetAlpha(sr, 0.35)
		return nil
	}); err != nil {
		logger.Error("sprite fade failed", log.Error(err))
		return
	}
	logger.Info("sprites faded",
		log.Int("count", len(sprites)),
		log.Float64("alpha", sprites[0].Color().A),
	)

	icons := []*render.Image{render.NewImage("hp.png"), render.NewImage("mana.png")}
	errs := concurrent.Apply(icons, 2, concurrent.SkipElementOnError,
		func(img *render.Image) error {
			ext.SetAlpha(img, 1)
			return nil
		},
		func(img *render.Image) error {
			img.FillAmount = 0.5
			return nil
		},
	)
	for i, err := range errs {
		if err != nil {
			logger.Warn("icon stage failed", log.String("icon", icons[i].Source), log.Error(err))
		}
	}
	logger.Info("icons staged", log.Int("count", len(icons)))
}

func tourBodies(logger *log.Logger) {
	body := physics.NewRigidBody3D(10)
	body.SetLinearVelocity(mgl64.Vec3{4, 0, 0})
	body.ApplyImpulse(mgl64.Vec3{0, 20, 0})
	logger.Info("body launched", log.Vec3("velocity", body.LinearVelocity()))

	ext.Freeze(body)
	logger.Info("body frozen",
		log.Vec3("velocity", body.LinearVelocity()),
		log.Bool("kinematic", body.IsKinematic()),
	)

	disc := physics.NewRigidBody2D(1)
	disc.SetAngularVelocity(3.5)
	ext.Freeze2D(disc)
	logger.Info("disc frozen", log.Bool("kinematic", disc.IsKinematic()))
}

func tourSelection(s *scene.Scene, logger *log.Logger) {
	crates := s.FindWithTag(scene.TagFor("crate"))
	if len(crates) == 0 {
		logger.Warn("nothing to pick from")
		return
	}

	pick := ext.Rand(crates)
	logger.Info("random crate", log.String("name", pick.Name()))

	names := make([]string, 0, len(crates))
	for _, c := range crates {
		names = append(names, c.Name())
	}
	ext.Shuffle(names)
	logger.Info("patrol order", log.Any("names", names))

	if ext.IsEmpty(pick.TagName()) {
		logger.Warn("picked an untagged node")
	}
}
