package main

import (
	"log"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/restartfu/gophig"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/hackolite/cv-minecraft-sub000/entity"
	"github.com/hackolite/cv-minecraft-sub000/game"
	"github.com/hackolite/cv-minecraft-sub000/sim"
	"github.com/hackolite/cv-minecraft-sub000/worker"
	"github.com/hackolite/cv-minecraft-sub000/world"
)

// The following program runs a headless server tick loop: generated flat
// terrain and a handful of wandering bot entities, with the physics core
// resolving their movement at a fixed tick rate.
func main() {
	cfg := readConfig()

	lg := logrus.New()
	lg.Formatter = &logrus.TextFormatter{ForceColors: true}
	lg.Level = logrus.InfoLevel
	if cfg.Logging.Debug {
		lg.Level = logrus.DebugLevel
	}

	if os.Getenv("PPROF_ENABLED") != "" {
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
	}

	conf := sim.DefaultConfig()
	conf.WorldSize = cfg.World.Size
	conf.SubSteps = cfg.Sim.SubSteps
	if cfg.Sim.Mode == "iou" {
		conf.Mode = sim.DetectionModeIOU
	}

	w := world.New(cfg.World.Size)
	world.GenerateFlat(w, cfg.World.GroundY, cfg.World.Seed)
	lg.Infof("generated %dx%d world, hash %#x", cfg.World.Size, cfg.World.Size, w.Snapshot().Hash())

	sink := sim.NewLogSink(lg, sim.Filters{
		Blocks:        cfg.Logging.CollisionBlocks,
		Players:       cfg.Logging.CollisionPlayers,
		CollisionOnly: cfg.Logging.CollisionOnly,
	})

	reg := entity.NewRegistry()
	rng := rand.New(rand.NewSource(cfg.World.Seed))
	for i := 0; i < cfg.Sim.Bots; i++ {
		spawn := mgl64.Vec3{
			2 + rng.Float64()*float64(cfg.World.Size-4),
			float64(cfg.World.GroundY) + 5,
			2 + rng.Float64()*float64(cfg.World.Size-4),
		}
		reg.Add(entity.New(spawn, conf.PlayerHalfWidth, conf.PlayerHeight))
	}

	pool := worker.NewPool(0)
	defer pool.Close()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	dt := game.TickDuration
	if cfg.Sim.TickRate > 0 {
		dt = 1.0 / float64(cfg.Sim.TickRate)
	}
	ticker := time.NewTicker(time.Duration(float64(time.Second) * dt))
	defer ticker.Stop()
	logEvery := uint64(math.Round(5 / dt))

	lg.Infof("ticking %d bots at %.0f TPS", cfg.Sim.Bots, 1/dt)
	var tick uint64
	for {
		select {
		case <-stop:
			lg.Info("shutting down")
			return
		case <-ticker.C:
		}
		tick++

		// One frozen world snapshot per tick round; every entity resolves
		// against the same view and commits afterwards.
		snap := w.Snapshot()
		simulator := sim.NewSimulator(snap, conf, sink)

		ents := reg.All()
		results := make([]sim.State, len(ents))
		for n, e := range ents {
			if rng.Intn(120) == 0 {
				e.Jump()
			}
			if tick%40 == 0 {
				angle := rng.Float64() * 2 * math.Pi
				vel := e.Velocity()
				e.SetVelocity(mgl64.Vec3{4 * math.Cos(angle), vel.Y(), 4 * math.Sin(angle)})
			}

			obstacles := reg.Obstacles(e.ID())
			pool.Submit(func() {
				state, jump := e.TickState()
				simulator.Integrator.UpdateTick(&state, sim.Input{
					Dt:        dt,
					Jump:      jump,
					Obstacles: obstacles,
				})
				results[n] = state
			})
		}
		pool.Wait()

		for n, e := range ents {
			e.Commit(results[n])
		}

		if tick%logEvery == 0 && len(ents) > 0 {
			e := ents[0]
			pos := e.Position()
			lg.WithFields(logrus.Fields{
				"tick":     tick,
				"x":        game.Round64(pos.X(), 2),
				"y":        game.Round64(pos.Y(), 2),
				"z":        game.Round64(pos.Z(), 2),
				"grounded": e.OnGround(),
			}).Info("bot state")
		}
	}
}

type config struct {
	World struct {
		Size    int
		GroundY int
		Seed    int64
	}
	Sim struct {
		TickRate int
		SubSteps int
		Bots     int
		Mode     string
	}
	Logging struct {
		Debug            bool
		CollisionBlocks  bool
		CollisionPlayers bool
		CollisionOnly    bool
	}
}

func readConfig() config {
	var c config
	c.World.Size = game.DefaultWorldSize
	c.World.GroundY = 10
	c.World.Seed = 1
	c.Sim.TickRate = game.TicksPerSecond
	c.Sim.SubSteps = game.DefaultSubSteps
	c.Sim.Bots = 8
	c.Sim.Mode = "strict"
	c.Logging.CollisionBlocks = true
	c.Logging.CollisionOnly = true

	if _, err := os.Stat("config.toml"); os.IsNotExist(err) {
		if err := gophig.SetConfComplex("config.toml", gophig.TOMLMarshaler{}, c, 0777); err != nil {
			log.Fatalf("error creating config: %v", err)
		}
	}
	if err := gophig.GetConfComplex("config.toml", gophig.TOMLMarshaler{}, &c); err != nil {
		log.Fatalf("error reading config: %v", err)
	}
	return c
}
