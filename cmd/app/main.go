package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"paquexpress/cmd"
	httpadapter "paquexpress/internal/adapters/in/http"
	"paquexpress/internal/adapters/out/filesystem/photostore"
	"paquexpress/internal/adapters/out/postgres/agentrepo"
	"paquexpress/internal/adapters/out/postgres/parcelrepo"
	"paquexpress/internal/adapters/out/postgres/proofrepo"
	"paquexpress/internal/adapters/out/postgres/sessionrepo"
	"paquexpress/internal/core/application/usecases/commands"
	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/jobs"
	"paquexpress/internal/pkg/errs"
	"paquexpress/internal/pkg/tokens"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	photoStore, err := photostore.NewFilesystemPhotoStore(configs.UploadsDir)
	if err != nil {
		log.Fatalf("Failed to prepare uploads directory: %v", err)
	}

	tokenSigner, err := tokens.NewSigner(configs.JWTSecret, configs.SessionTTL)
	if err != nil {
		log.Fatalf("Failed to create token signer: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, photoStore, tokenSigner)

	seedTestAgent(&app, logger)

	jobManager := jobs.NewJobManager(
		app.CreateCloseStaleSessionsCommandHandler(),
		configs.SessionTTL,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs, tokenSigner, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		UploadsDir: goDotEnvVariable("UPLOADS_DIR"),
		JWTSecret:  goDotEnvVariable("JWT_SECRET"),
		SessionTTL: parseSessionTTL(goDotEnvVariable("SESSION_TTL")),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// parseSessionTTL reads a Go duration string; sessions default to a day.
func parseSessionTTL(raw string) time.Duration {
	if raw == "" {
		return 24 * time.Hour
	}

	ttl, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid SESSION_TTL %q: %v", raw, err)
	}
	return ttl
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&agentrepo.AgentDTO{},
		&parcelrepo.AddressDTO{},
		&parcelrepo.ParcelDTO{},
		&proofrepo.ProofOfDeliveryDTO{},
		&sessionrepo.SessionDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

// seedTestAgent creates the well-known test account on first start so a fresh
// environment is usable by the mobile client right away.
func seedTestAgent(app *cmd.CompositionRoot, logger *slog.Logger) {
	registerCmd, err := commands.NewRegisterAgentCommand(
		kernel.NewUUID(), "test_agent", "Agente de Prueba", "password123",
	)
	if err != nil {
		log.Fatalf("Failed to build seed agent command: %v", err)
	}

	handler := app.CreateRegisterAgentCommandHandler()
	_, err = handler.Handle(context.Background(), registerCmd)
	switch {
	case err == nil:
		logger.Info("Seeded test agent", "login", "test_agent")
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		logger.Info("Test agent already exists", "login", "test_agent")
	default:
		log.Fatalf("Failed to seed test agent: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config, tokenSigner *tokens.Signer, logger *slog.Logger) {
	e := echo.New()

	// The mobile client runs from arbitrary origins
	e.Use(middleware.CORS())

	server := httpadapter.NewServer(
		app.CreateRegisterAgentCommandHandler(),
		app.CreateLoginCommandHandler(),
		app.CreateCreateParcelCommandHandler(),
		app.CreateRegisterDeliveryCommandHandler(),
		app.CreateGetAssignedParcelsQueryHandler(),
		tokenSigner,
		logger,
	)
	server.RegisterRoutes(e)

	e.Static("/uploads", configs.UploadsDir)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
