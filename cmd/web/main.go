// Web server for go-things-to-check
package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"

	prof "github.com/go-while/go-cpu-mem-profiler"
	"github.com/go-while/go-things-to-check/internal/config"
	"github.com/go-while/go-things-to-check/internal/suggestions"
	"github.com/go-while/go-things-to-check/internal/web"
)

var (
	// command-line flags
	webport     int
	webssl      bool
	webcertFile string
	webkeyFile  string
	pprofAddr   string
)

var appVersion = "-unset-"

var Prof *prof.Profiler

func main() {
	config.AppVersion = appVersion

	flag.IntVar(&webport, "webport", 0, "Web server port (default: 11980)")
	flag.BoolVar(&webssl, "webssl", false, "Enable SSL")
	flag.StringVar(&webcertFile, "websslcert", "", "SSL certificate file (/path/to/fullchain.pem)")
	flag.StringVar(&webkeyFile, "websslkey", "", "SSL key file (/path/to/privkey.pem)")
	flag.StringVar(&pprofAddr, "pprof", "", "listen address for pprof web server (e.g. :51111, default: disabled)")
	flag.Parse()

	mainConfig := config.NewDefaultConfig()
	log.Printf("Starting go-things-to-check (version: %s)", appVersion)

	webConfig := mainConfig.Web

	// Override config with command-line flags if provided
	if webport > 0 {
		webConfig.ListenPort = webport
		log.Printf("[WEB]: Overriding listen port with command-line flag: %d", webConfig.ListenPort)
	}
	if webssl {
		webConfig.SSL = true
		log.Printf("[WEB]: SSL enabled via command-line flag")
	}
	if webcertFile != "" {
		webConfig.CertFile = webcertFile
	}
	if webkeyFile != "" {
		webConfig.KeyFile = webkeyFile
	}

	// Validate port
	if webConfig.ListenPort < 1024 || webConfig.ListenPort > 65535 {
		log.Fatalf("[WEB]: Invalid port number: %d (must be between 1024 and 65535)", webConfig.ListenPort)
	}

	if pprofAddr != "" {
		Prof = prof.NewProf()
		go Prof.PprofWeb(pprofAddr)
		log.Printf("[WEB]: pprof web server listening on %s", pprofAddr)
	}

	// Load the embedded suggestion list before serving anything. The data
	// is compiled in, so a failure here means the binary shipped with a
	// broken data file and there is nothing to retry.
	things, err := suggestions.Load()
	if err != nil {
		log.Fatalf("[WEB]: Failed to load suggestions: %v", err)
	}
	log.Printf("[WEB]: Loaded %d things to check", things.Len())

	server := web.NewServer(things, webConfig)

	// Set up cross-platform signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt) // Cross-platform (Ctrl+C on both Windows and Linux)

	// Start web server in goroutine to make it non-blocking
	webServerErrChan := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			webServerErrChan <- err
		}
	}()

	log.Printf("[WEB]: Server started successfully. Press Ctrl+C to shutdown...")

	select {
	case <-sigChan:
		log.Printf("[WEB]: Received shutdown signal, exiting...")
	case err := <-webServerErrChan:
		log.Fatalf("[WEB]: Failed to start web server: %v", err)
	}
}
