package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"nation-game-server/handlers"
	"nation-game-server/middleware"
	"nation-game-server/models"
	"nation-game-server/services"
	"nation-game-server/utils"
	"nation-game-server/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New(fiber.Config{})

	// 🔐 GLOBAL: only Gateway requests allowed — no exceptions
	app.Use(middleware.GatewayAuthMiddleware())

	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsEnv == "" {
		log.Println("⚠️  ALLOWED_ORIGINS environment variable not set, using default: http://localhost:3000")
		allowedOriginsEnv = "http://localhost:3000"
	}
	allowedOriginsList := strings.Split(allowedOriginsEnv, ",")
	for i, origin := range allowedOriginsList {
		allowedOriginsList[i] = strings.TrimSpace(origin)
	}
	allowedOriginsString := strings.Join(allowedOriginsList, ",")

	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOriginsString,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH,HEAD",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With, X-Request-ID, User-Agent, Cache-Control, X-Service-Token, X-Device-ID",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization, X-Request-ID",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	if err := utils.InitArchive(); err != nil {
		log.Fatal("failed to initialize run archive client:", err)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.Country{},
		&models.GameSession{},
		&models.PopulationClasses{},
		&models.Military{},
		&models.PendingLaw{},
		&models.ActiveLaw{},
		&models.Alliance{},
		&models.Prestige{},
		&models.PermanentUpgrade{},
		&models.Election{},
		&models.PlayerMirror{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	sessionService := services.NewSessionService(db)
	lawService := services.NewLawService(db)
	tapService := services.NewTapService(db, lawService)
	militaryService := services.NewMilitaryService(db)
	diplomacyService := services.NewDiplomacyService(db)
	electionService := services.NewElectionService(db)
	prestigeService := services.NewPrestigeService(db)

	if err := sessionService.SeedCountries(); err != nil {
		log.Fatal("failed to seed countries:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Profile mirroring is optional: without a sync service URL the game
	// runs with an empty player_mirrors table.
	if profileSyncURL := os.Getenv("PROFILE_SYNC_URL"); profileSyncURL != "" {
		serviceToken := os.Getenv("GAME_SERVICE_TOKEN")
		syncWorker := workers.NewPlayerSyncWorker(db, profileSyncURL, "/api/v1/public/profiles", serviceToken)
		syncWorker.Start(ctx)
	} else {
		log.Println("⚠️  PROFILE_SYNC_URL not set — player profile mirroring disabled")
	}

	sweeper, err := sessionService.StartSessionSweeper()
	if err != nil {
		log.Fatal("failed to start session sweeper:", err)
	}
	defer func() { _ = sweeper.Shutdown() }()

	// ✅ Setup routes — enforced Gateway auth + consistent /s/ prefix
	handlers.SetupSessionRoutes(app, sessionService)
	handlers.SetupTapRoutes(app, tapService, electionService)
	handlers.SetupLawRoutes(app, lawService)
	handlers.SetupMilitaryRoutes(app, militaryService, diplomacyService)
	handlers.SetupPrestigeRoutes(app, prestigeService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5300"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s", port)
	log.Println("✅ GatewayAuthMiddleware enforced globally — all requests must come from Gateway")
	log.Printf("✅ CORS configured for origins: %s", allowedOriginsString)

	<-ctx.Done()
	log.Println("Shutting down server...")
	_ = app.Shutdown()
}
