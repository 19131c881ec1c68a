package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"localmarket/cmd"
	"localmarket/internal/adapters/out/postgres/activityrepo"
	"localmarket/internal/adapters/out/postgres/associationrepo"
	"localmarket/internal/adapters/out/postgres/occurrencerepo"
	"localmarket/internal/adapters/out/postgres/productrepo"
	"localmarket/internal/adapters/out/postgres/salesorderrepo"
	"localmarket/internal/fixtures"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	redisClient := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})

	if configs.SeedFixtures == "true" {
		if err := fixtures.NewLoader(gormDB, logger).Load(context.Background()); err != nil {
			log.Fatalf("Error loading fixtures: %v", err)
		}
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, redisClient, logger)
	if err != nil {
		log.Fatalf("Error building composition root: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:         goDotEnvVariable("REDIS_ADDR"),
		OrderRefPrefix:    goDotEnvVariable("ORDER_REF_PREFIX"),
		OrderRefPadLength: goDotEnvVariable("ORDER_REF_PAD_LENGTH"),
		SeedFixtures:      goDotEnvVariable("SEED_FIXTURES"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		configs.DBHost, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBPort, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&associationrepo.AssociationDTO{},
		&occurrencerepo.BranchDTO{},
		&occurrencerepo.BranchOccurrenceDTO{},
		&productrepo.CategoryDTO{},
		&productrepo.ProductDTO{},
		&salesorderrepo.SalesOrderDTO{},
		&salesorderrepo.RowDTO{},
		&activityrepo.EntryDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server, err := app.CreateHTTPServer()
	if err != nil {
		log.Fatalf("Error building HTTP server: %v", err)
	}

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
