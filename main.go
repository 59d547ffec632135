package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/puppethands/config"
	"github.com/automoto/puppethands/fonts"
	"github.com/automoto/puppethands/network"
	"github.com/automoto/puppethands/persistence"
	"github.com/automoto/puppethands/scenes"
	"github.com/automoto/puppethands/shared/protocol"
	"github.com/hajimehoshi/ebiten/v2"
)

// Reported to the server in the join request
const version = "0.1.0"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(store *persistence.RecordingStore, net *network.Client) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewLabScene(store, net),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	server := flag.String("server", "", "Puppet server address (host:port) to forward the hand to")
	name := flag.String("name", "Hand", "Name sent to the server")
	flag.Parse()

	if err := config.LoadEnv(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Sealed recordings survive restarts
	store, err := persistence.Open("puppethands")
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	var net *network.Client
	if *server != "" {
		if err := protocol.RegisterComponents(); err != nil {
			log.Fatalf("Failed to register network components: %v", err)
		}
		net = network.NewClient()
		net.Connect(*server, version, *name)
		defer net.Disconnect()
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Puppet Hands")
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(store, net)); err != nil {
		log.Fatal(err)
	}
}
