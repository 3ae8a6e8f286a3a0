package main

import (
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/venuecraft/banquet-service/config"
	"github.com/venuecraft/banquet-service/internal/consumer"
	"github.com/venuecraft/banquet-service/internal/handler"
	"github.com/venuecraft/banquet-service/internal/middleware"
	"github.com/venuecraft/banquet-service/internal/repository"
	"github.com/venuecraft/banquet-service/internal/service"
	"github.com/venuecraft/banquet-service/pkg/database"
	"github.com/venuecraft/banquet-service/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// Repositories
	bookingRepo := repository.NewBookingRepository(db)
	planRepo := repository.NewPlanRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	paymentRepo := repository.NewVendorPaymentRepository(db)
	policyRepo := repository.NewPolicyRepository(db)

	// RabbitMQ publisher for booking and plan lifecycle events
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		logrus.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer publisher.Close()

	// RabbitMQ consumer: sync tenant policies from the admin service
	mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
	if err != nil {
		logrus.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer mqConsumer.Close()

	msgs, err := mqConsumer.Consume()
	if err != nil {
		logrus.Fatalf("failed to start consuming: %v", err)
	}
	consumer.NewPolicyConsumer(policyRepo).Start(msgs)

	// Services
	bookingSvc := service.NewBookingService(bookingRepo, menuRepo, planRepo, policyRepo, publisher)
	planSvc := service.NewPlanService(planRepo, bookingRepo, policyRepo, publisher)
	profitSvc := service.NewProfitService(bookingRepo, planRepo, expenseRepo, paymentRepo, policyRepo)
	policySvc := service.NewPolicyService(policyRepo, publisher)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Validator = handler.NewValidator()
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			logrus.WithFields(logrus.Fields{
				"method": v.Method,
				"uri":    v.URI,
				"status": v.Status,
			}).Info("request")
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "banquet-service"})
	})

	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e)
	handler.NewPlanHandler(planSvc).RegisterRoutes(e)
	handler.NewProfitHandler(profitSvc).RegisterRoutes(e)
	handler.NewPolicyHandler(policySvc).RegisterRoutes(e)

	logrus.Infof("Banquet Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
