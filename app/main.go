package main

import (
	"context"
	"edusphere/config"
	"edusphere/services/school/delivery"
	"edusphere/services/school/repository"
	"edusphere/services/school/usecase"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var log *logrus.Logger
var wg sync.WaitGroup

const repoTimeOut = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Fatalf("Error loading .env file")
	}

	log = config.GetLogrusInstance()

	if err := config.InitEmailer(); err != nil {
		log.Warnf("Emailer not configured, welcome emails disabled: %v", err)
	}

	startHTTP()
}

func startHTTP() {
	log.Info("Starting HTTP")
	app := fiber.New(config.GetFiberConfig())

	// CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	if _, err := config.BootDB(); err != nil {
		log.Fatal("Failed to boot DB")
		return
	}

	pool, err := config.BootPool(context.Background())
	if err != nil {
		log.Fatal("Failed to boot pgx pool")
		return
	}

	gormDB, err := config.BootGorm()
	if err != nil {
		log.Fatal("Failed to boot gorm")
		return
	}

	// Repositories
	notifRepo := repository.NewNotificationRepository(pool)
	feeRepo := repository.NewFeeRepository(pool)
	holidayRepo := repository.NewHolidayRepository(pool)
	certRepo := repository.NewCertificateRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	schoolRepo := repository.NewSchoolRepository(pool)

	// Usecases
	notifUC := usecase.NewNotificationUseCase(notifRepo, repoTimeOut)
	userUC := usecase.NewUserUseCase(userRepo, schoolRepo, notifUC, repoTimeOut)
	feeUC := usecase.NewFeeUseCase(feeRepo, userRepo, repoTimeOut)
	holidayUC := usecase.NewHolidayUseCase(holidayRepo, userUC, notifUC, repoTimeOut)
	certUC := usecase.NewCertificateUseCase(certRepo, notifUC, repoTimeOut)
	schoolUC := usecase.NewSchoolUseCase(schoolRepo, repoTimeOut)

	// Delivery
	delivery.NewUserAuthHandler(app, gormDB, userRepo)
	delivery.NewNotificationHandler(app, notifUC)
	delivery.NewFeeHandler(app, feeUC)
	delivery.NewHolidayHandler(app, holidayUC)
	delivery.NewCertificateHandler(app, certUC)
	delivery.NewUserHandler(app, userUC)
	delivery.NewSchoolHandler(app, schoolUC)

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server for Public on port %s", config.GetFiberHttpPort())
		if err := app.Listen(config.GetFiberListenAddress()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	pool.Close()

	wg.Wait()
	log.Info("Server shut down gracefully")
}
