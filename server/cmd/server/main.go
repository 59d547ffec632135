package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/puppethands/archive"
	"github.com/automoto/puppethands/assets"
	"github.com/automoto/puppethands/bridge/mqtt"
	"github.com/automoto/puppethands/components"
	cfg "github.com/automoto/puppethands/config"
	"github.com/automoto/puppethands/server/core"
	"github.com/automoto/puppethands/shared/messages"
	"github.com/automoto/puppethands/shared/protocol"
)

func main() {
	if err := cfg.LoadEnv(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	port := flag.Uint("port", cfg.Server.Port, "Server port")
	tickRate := flag.Int("tickrate", cfg.Server.TickRate, "Server tick rate (updates per second)")
	scene := flag.String("scene", cfg.Scene.Path, "Embedded scene to load")
	flag.Parse()

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	layout, err := assets.LoadScene(*scene)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := core.Options{TickRate: *tickRate, Layout: layout}
	var writer *archive.Writer

	// Sealed recordings go to ClickHouse off the tick goroutine
	if cfg.Archive.Enabled {
		db, err := archive.NewClickHouseDB(ctx, cfg.Archive.Addr, cfg.Archive.Database, cfg.Archive.Username, cfg.Archive.Password)
		if err != nil {
			log.Fatalf("Failed to initialize ClickHouse: %v", err)
		}
		defer db.Close()

		writer = archive.NewWriter(db, 32)
		go writer.Run(ctx)
		opts.Sinks = append(opts.Sinks, components.RecordingSink(writer))
	}

	var frameChan chan *messages.ControllerFrame
	if cfg.MQTT.Enabled {
		log.Println("Connecting to MQTT broker...")
		client, err := mqtt.NewClient(mqtt.ClientConfig{
			Broker:   cfg.MQTT.Broker,
			ClientID: cfg.MQTT.ClientID,
			Username: cfg.MQTT.Username,
			Password: cfg.MQTT.Password,
		})
		if err != nil {
			log.Fatalf("Failed to initialize MQTT client: %v", err)
		}
		defer client.Close()

		frameChan = make(chan *messages.ControllerFrame, cfg.Server.FrameChan)
		subscriber := mqtt.NewSubscriber(client.Native(), cfg.MQTT.FrameTopic, frameChan)
		if err := subscriber.Subscribe(); err != nil {
			log.Fatalf("Failed to subscribe to MQTT topics: %v", err)
		}

		publisher := mqtt.NewPublisher(client.Native(), cfg.MQTT.PoseTopic, make(chan *mqtt.PuppetPose, 64))
		go publisher.Start(ctx)
		opts.Poses = publisher
	}

	server, err := core.NewServer(opts)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Tracker frames (MQTT → server)
	if frameChan != nil {
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case frame := <-frameChan:
					server.FeedTrackerFrame(frame)
				}
			}
		}()
	}

	log.Printf("Starting puppet server on port %d (tick rate: %d/s, scene: %s, loop: %s)",
		*port, *tickRate, *scene, cfg.Playback.Loop.Policy)
	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start(*port)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		log.Println("Shutting down server...")
	case err := <-errChan:
		log.Printf("Server error: %v", err)
	}

	server.Stop()
	cancel()

	// Let the archive finish queued recordings before the deferred closes run
	if writer != nil {
		select {
		case <-writer.Done():
		case <-time.After(10 * time.Second):
			log.Println("Warning: archive writer did not finish in time")
		}
	}
}
