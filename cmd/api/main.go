package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/fabrica-pro/internal/application/auth"
	"github.com/tu-usuario/fabrica-pro/internal/application/usecase"
	"github.com/tu-usuario/fabrica-pro/internal/infrastructure/mail"
	"github.com/tu-usuario/fabrica-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/fabrica-pro/internal/interfaces/http"
	"github.com/tu-usuario/fabrica-pro/pkg/config"
	"github.com/tu-usuario/fabrica-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	materialRepo := postgres.NewMaterialRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	lotRepo := postgres.NewLotRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	batchRepo := postgres.NewBatchRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Sin SMTP configurado el registro de empresas funciona igual, solo que
	// nadie recibe el aviso de aprobación.
	var notifier auth.ApprovalNotifier
	if cfg.Mail.Enabled() {
		notifier = mail.NewNotifier(cfg.Mail)
	} else {
		log.Warn().Msg("SMTP sin configurar: no se enviarán avisos de aprobación")
	}

	approvalWindow := time.Duration(cfg.Company.ApprovalWindowDays) * 24 * time.Hour

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, txRunner, notifier, auth.Config{
		JWTSecret:      cfg.JWT.Secret,
		AccessMinutes:  cfg.JWT.AccessMinutes,
		RefreshHours:   cfg.JWT.RefreshHours,
		Issuer:         cfg.JWT.Issuer,
		ApprovalWindow: approvalWindow,
	}, log)

	userUC := usecase.NewUserUseCase(userRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo, approvalWindow)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	materialUC := usecase.NewMaterialUseCase(materialRepo)
	productUC := usecase.NewProductUseCase(productRepo, materialRepo)
	inventoryUC := usecase.NewInventoryUseCase(supplierRepo, materialRepo, warehouseRepo, lotRepo, inventoryRepo, txRunner)
	orderUC := usecase.NewOrderUseCase(orderRepo, clientRepo)
	productionUC := usecase.NewProductionUseCase(batchRepo, orderRepo, productRepo, warehouseRepo, itemRepo, txRunner)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Fábrica Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UserUC:       userUC,
		CompanyUC:    companyUC,
		WarehouseUC:  warehouseUC,
		SupplierUC:   supplierUC,
		ClientUC:     clientUC,
		MaterialUC:   materialUC,
		ProductUC:    productUC,
		InventoryUC:  inventoryUC,
		OrderUC:      orderUC,
		ProductionUC: productionUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
