package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"flapjack/app/config"
	"flapjack/app/repositories"
	"flapjack/app/routes"
	"flapjack/app/sessions"
)

const cliVersion = "1.0.0"

// exit is swapped out in tests
var exit = os.Exit

func main() {
	if len(os.Args) < 2 {
		printHelp()
		exit(1)
		return
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("flapjack version %s\n", cliVersion)
	case "serve":
		serve()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		exit(1)
	}
}

func printHelp() {
	helpText := `Usage: flapjack <command>
Commands:
  help       Display this help message.
  version    Show version information.
  serve      Run the blog server.
`
	fmt.Println(helpText)
}

// serve loads configuration, opens the stores, and runs the blog server.
func serve() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.Load()

	if cfg.SecretKey == config.DefaultSecretKey {
		logger.Warn("SECRET_KEY not set, using insecure default")
	}

	db, err := repositories.Open(cfg.DatabasePath)
	if err != nil {
		logger.Error("opening database", "path", cfg.DatabasePath, "error", err)
		exit(1)
	}
	defer db.Close()

	if err := repositories.Init(db); err != nil {
		logger.Error("initializing database", "error", err)
		exit(1)
	}

	store, err := sessions.NewStore(cfg.SessionDir)
	if err != nil {
		logger.Error("opening session store", "dir", cfg.SessionDir, "error", err)
		exit(1)
	}
	defer store.Close()

	if n, err := store.Sweep(); err != nil {
		logger.Warn("sweeping expired sessions", "error", err)
	} else if n > 0 {
		logger.Info("swept expired sessions", "count", n)
	}

	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		for range ticker.C {
			if _, err := store.Sweep(); err != nil {
				logger.Warn("sweeping expired sessions", "error", err)
			}
		}
	}()

	codec := sessions.NewCookieCodec(cfg.SecretKey, cfg.SecureCookies)
	router := routes.Setup(db, store, codec, logger, "")

	logger.Info("starting blog server", "addr", cfg.Addr)
	if err := routes.StartServer(cfg.Addr, router); err != nil {
		logger.Error("server error", "error", err)
		exit(1)
	}
}
