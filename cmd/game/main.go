// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/server"
	"go-wave-defense/pkg/utils"
)

func main() {
	configPath := flag.String("config", "assets/config.yaml", "path to settings file")
	enemiesPath := flag.String("enemies", "assets/enemies.json", "path to enemy definitions")
	towersPath := flag.String("towers", "assets/towers.json", "path to tower definitions")
	wavesPath := flag.String("waves", "assets/waves.json", "path to wave definitions")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load settings: %v", err)
	}

	library, err := defs.LoadLibrary(*enemiesPath, *towersPath, *wavesPath)
	if err != nil {
		log.Fatalf("failed to load definitions: %v", err)
	}
	log.Printf("loaded %d enemy, %d tower, %d wave definitions",
		len(library.Enemies), len(library.Towers), len(library.Waves))

	game := app.NewGame(library, settings)
	hub := server.NewHub(game.Dispatcher)

	mux := http.NewServeMux()
	mux.HandleFunc("/stream", hub.HandleWS)
	httpServer := &http.Server{Addr: settings.Server.Addr, Handler: mux}
	go func() {
		log.Printf("HUD stream listening on %s", settings.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	tickInterval := time.Second / time.Duration(settings.Sim.TickRate)
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	lastUpdate := time.Now()
	for {
		select {
		case now := <-ticker.C:
			deltaTime := utils.Clamp(now.Sub(lastUpdate).Seconds(), 0, config.MaxDeltaTime)
			lastUpdate = now
			game.Update(deltaTime)
			if game.Over() {
				log.Println("game over")
				shutdown(game, hub, httpServer)
				return
			}
		case <-stop:
			log.Println("shutting down")
			shutdown(game, hub, httpServer)
			return
		}
	}
}

func shutdown(game *app.Game, hub *server.Hub, httpServer *http.Server) {
	game.Teardown()
	hub.Close()
	httpServer.Close()
}
