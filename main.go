package main

import (
	"fmt"
	"os"
	"strings"

	"blogd/app/ai"
	"blogd/app/auth"
	"blogd/app/config"
	"blogd/app/controllers"
	"blogd/app/middleware"
	"blogd/app/repositories"
	"blogd/app/routes"
	"blogd/app/services"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const cliVersion = "1.0.0"

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("blogd version %s\n", cliVersion)
	case "serve":
		serve()
	case "init":
		initDb()
	case "clean":
		clean()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: blogd <command>

Commands:
  help       Display this help message.
  version    Show version information.
  serve      Run the blog editor API server.
  init       Initialize a new empty database.
  clean      Drop all data from the database.

Configuration (environment):
  BLOGD_SECRET_KEY          token signing secret (required)
  BLOGD_GEMINI_API_KEY      AI provider API key (required)
  BLOGD_ADDR                listen address (default :8080)
  BLOGD_DB_PATH             badger database path (default data/badger)
  BLOGD_AI_MODEL            generation model (default gemini-1.5-flash)
  BLOGD_TOKEN_EXP_MINUTES   token lifetime (default 60)
`
	fmt.Println(helpText)
}

// serve wires the full dependency graph and runs the HTTP server.
func serve() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("configuration error")
	}

	db, err := repositories.OpenDB(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open database")
	}
	defer db.Close()

	userRepo := repositories.NewBadgerUserRepository(db)
	postRepo := repositories.NewBadgerPostRepository(db)

	signer := auth.NewSigner(cfg.SecretKey, cfg.TokenExpMin)
	authService := services.NewAuthService(userRepo, signer)
	postService := services.NewPostService(postRepo)
	summaryService := services.NewSummaryService(ai.NewClient(cfg.GeminiAPIKey, cfg.AIModel))

	router := routes.SetupRoutes(routes.Deps{
		Auth:  controllers.NewAuthController(authService),
		Posts: controllers.NewPostController(postService),
		AI:    controllers.NewAIController(summaryService),
		Guard: middleware.NewAuth(signer),
	})

	log.Info().Str("addr", cfg.Addr).Msg("starting blog editor API")
	if err := routes.StartServer(cfg.Addr, router); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// initDb creates an empty database at the configured path.
func initDb() {
	path := dbPathFromEnv()
	db, err := repositories.OpenDB(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("failed to initialize database")
	}
	defer db.Close()
	log.Info().Str("path", path).Msg("database initialized")
}

// clean drops all keys from the database.
func clean() {
	path := dbPathFromEnv()
	db, err := repositories.OpenDB(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("failed to open database")
	}
	defer db.Close()

	if err := db.DropAll(); err != nil {
		log.Fatal().Err(err).Msg("failed to drop data")
	}
	log.Info().Str("path", path).Msg("database cleaned")
}

func dbPathFromEnv() string {
	if path := os.Getenv("BLOGD_DB_PATH"); path != "" {
		return path
	}
	return "data/badger"
}
