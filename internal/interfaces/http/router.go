package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/fabrica-pro/internal/application/auth"
	"github.com/tu-usuario/fabrica-pro/internal/application/usecase"
	"github.com/tu-usuario/fabrica-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	CompanyUC    *usecase.CompanyUseCase
	WarehouseUC  *usecase.WarehouseUseCase
	SupplierUC   *usecase.SupplierUseCase
	ClientUC     *usecase.ClientUseCase
	MaterialUC   *usecase.MaterialUseCase
	ProductUC    *usecase.ProductUseCase
	InventoryUC  *usecase.InventoryUseCase
	OrderUC      *usecase.OrderUseCase
	ProductionUC *usecase.ProductionUseCase
	JWTSecret    string
}

// Router registra las rutas de la API con su middleware de auth y roles.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register/company", authHandler.RegisterCompany)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/token/refresh", authHandler.Refresh)

	// Rutas protegidas (requieren Bearer Token de acceso)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users: solo admin (y superusuario); el cambio de contraseña propio se
	// resuelve dentro del use case, por eso no lleva RequireRole.
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", RequireRole(entity.RoleAdmin), userHandler.Create)
	users.Get("/", RequireRole(entity.RoleAdmin), userHandler.List)
	users.Delete("/:id", RequireRole(entity.RoleAdmin), userHandler.Delete)
	users.Patch("/:id/password", userHandler.UpdatePassword)

	// Companies: aprobación y listado son de superusuario (el use case decide).
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Patch("/:id/approve", companyHandler.Approve)

	// Warehouses
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	warehouses.Post("/", RequireRole(entity.RoleAdmin), warehouseHandler.Create)
	warehouses.Get("/", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), warehouseHandler.List)
	warehouses.Get("/:id/stock", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), inventoryHandler.StockByWarehouse)

	// Suppliers: escribe admin, lee también bodeguero.
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", RequireRole(entity.RoleAdmin), supplierHandler.Create)
	suppliers.Get("/", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), supplierHandler.List)
	suppliers.Get("/:id", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), supplierHandler.GetByID)
	suppliers.Put("/:id", RequireRole(entity.RoleAdmin), supplierHandler.Update)
	suppliers.Delete("/:id", RequireRole(entity.RoleAdmin), supplierHandler.Delete)

	// Clients: mismo esquema que proveedores.
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", RequireRole(entity.RoleAdmin), clientHandler.Create)
	clients.Get("/", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), clientHandler.List)
	clients.Get("/:id", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), clientHandler.GetByID)
	clients.Put("/:id", RequireRole(entity.RoleAdmin), clientHandler.Update)
	clients.Delete("/:id", RequireRole(entity.RoleAdmin), clientHandler.Delete)

	// Materials
	materials := protected.Group("/materials", RequireRole(entity.RoleAdmin, entity.RoleBodeguero))
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materials.Post("/", materialHandler.Create)
	materials.Get("/", materialHandler.List)
	materials.Get("/:id", materialHandler.GetByID)

	// Products y su lista de materiales (el reemplazo del BOM es de admin).
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), productHandler.Create)
	products.Get("/", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), productHandler.List)
	products.Get("/:id", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), productHandler.GetByID)
	products.Put("/:id/bom", RequireRole(entity.RoleAdmin), productHandler.ReplaceBOM)
	products.Get("/:id/bom", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), productHandler.GetBOM)

	// Inventory: recepción de lotes y traslados entre bodegas.
	inv := protected.Group("/inventory", RequireRole(entity.RoleAdmin, entity.RoleBodeguero))
	inv.Post("/lots", inventoryHandler.ReceiveLot)
	inv.Get("/lots", inventoryHandler.ListLots)
	inv.Post("/transfer", inventoryHandler.Transfer)

	// Orders: el empacador opera el despacho junto al bodeguero.
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	productionHandler := NewProductionHandler(deps.ProductionUC)
	orders.Post("/", RequireRole(entity.RoleAdmin), orderHandler.Create)
	orders.Get("/", RequireRole(entity.RoleAdmin, entity.RoleBodeguero, entity.RoleEmpacador), orderHandler.List)
	orders.Get("/:id", RequireRole(entity.RoleAdmin, entity.RoleBodeguero, entity.RoleEmpacador), orderHandler.GetByID)
	orders.Patch("/:id/status", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), orderHandler.UpdateStatus)
	orders.Get("/:id/batches", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), func(c *fiber.Ctx) error {
		out, err := deps.ProductionUC.ListBatchesByOrder(GetCompanyID(c), c.Params("id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(out)
	})

	// Batches: producción. El registro de items lo hacen también operarios y
	// empacadores en planta.
	batches := protected.Group("/batches")
	batches.Post("/", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), productionHandler.CreateBatch)
	batches.Get("/:id", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), productionHandler.GetBatch)
	batches.Post("/:id/consume", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), productionHandler.Consume)
	batches.Get("/:id/consumptions", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), productionHandler.ListConsumption)
	batches.Post("/:id/items", RequireRole(entity.RoleAdmin, entity.RoleBodeguero, entity.RoleEmpacador, entity.RoleOperario), productionHandler.RegisterItem)
	batches.Get("/:id/items", RequireRole(entity.RoleAdmin, entity.RoleBodeguero, entity.RoleEmpacador, entity.RoleOperario), productionHandler.ListItems)
}
