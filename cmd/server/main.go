package main

import (
	"log"
	"strings"

	"trucklog-backend/internal/audit"
	"trucklog-backend/internal/auth"
	"trucklog-backend/internal/capital"
	"trucklog-backend/internal/config"
	"trucklog-backend/internal/dashboard"
	"trucklog-backend/internal/database"
	"trucklog-backend/internal/expense"
	"trucklog-backend/internal/master"
	"trucklog-backend/internal/models"
	"trucklog-backend/internal/payment"
	"trucklog-backend/internal/ratecard"
	"trucklog-backend/internal/report"
	"trucklog-backend/internal/trip"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Admin routes: user provisioning, master data, rate cards
	adminRoutes := protected.Group("")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))

	adminRoutes.Post("/users", auth.CreateUserHandler())

	adminRoutes.Post("/master/vendor-customers", master.CreateVendorCustomerHandler())
	adminRoutes.Put("/master/vendor-customers/:id", master.UpdateVendorCustomerHandler())
	adminRoutes.Delete("/master/vendor-customers/:id", master.DeleteVendorCustomerHandler())
	adminRoutes.Post("/master/quarries", master.CreateMineQuarryHandler())
	adminRoutes.Put("/master/quarries/:id", master.UpdateMineQuarryHandler())
	adminRoutes.Delete("/master/quarries/:id", master.DeleteMineQuarryHandler())
	adminRoutes.Post("/master/transport-owners", master.CreateTransportOwnerHandler())
	adminRoutes.Put("/master/transport-owners/:id", master.UpdateTransportOwnerHandler())
	adminRoutes.Delete("/master/transport-owners/:id", master.DeleteTransportOwnerHandler())
	adminRoutes.Post("/master/royalty-owners", master.CreateRoyaltyOwnerHandler())
	adminRoutes.Put("/master/royalty-owners/:id", master.UpdateRoyaltyOwnerHandler())
	adminRoutes.Delete("/master/royalty-owners/:id", master.DeleteRoyaltyOwnerHandler())
	adminRoutes.Post("/master/vehicles", master.CreateVehicleHandler())
	adminRoutes.Put("/master/vehicles/:id", master.UpdateVehicleHandler())
	adminRoutes.Delete("/master/vehicles/:id", master.DeleteVehicleHandler())
	adminRoutes.Post("/master/materials", master.CreateMaterialHandler())
	adminRoutes.Put("/master/materials/:id", master.UpdateMaterialHandler())
	adminRoutes.Delete("/master/materials/:id", master.DeleteMaterialHandler())

	adminRoutes.Post("/rate-cards", ratecard.CreateRateCardHandler())
	adminRoutes.Put("/rate-cards/:id", ratecard.UpdateRateCardHandler())
	adminRoutes.Delete("/rate-cards/:id", ratecard.DeleteRateCardHandler())

	adminRoutes.Post("/capital/accounts", capital.CreateCapitalAccountHandler())
	adminRoutes.Put("/capital/accounts/:id", capital.UpdateCapitalAccountHandler())
	adminRoutes.Delete("/capital/accounts/:id", capital.DeleteCapitalAccountHandler())

	// Master-data reads are open to every authenticated user
	protected.Get("/master/vendor-customers", master.ListVendorCustomersHandler())
	protected.Get("/master/quarries", master.ListMineQuarriesHandler())
	protected.Get("/master/transport-owners", master.ListTransportOwnersHandler())
	protected.Get("/master/royalty-owners", master.ListRoyaltyOwnersHandler())
	protected.Get("/master/vehicles", master.ListVehiclesHandler())
	protected.Get("/master/materials", master.ListMaterialsHandler())
	protected.Get("/master/legacy/customers", master.ListLegacyCustomersHandler())
	protected.Get("/master/legacy/quarries", master.ListLegacyQuarriesHandler())
	protected.Get("/master/legacy/royalty-owners", master.ListLegacyRoyaltyOwnersHandler())
	protected.Get("/rate-cards", ratecard.ListRateCardsHandler())
	protected.Get("/capital/accounts", capital.ListCapitalAccountsHandler())

	// Trips
	protected.Post("/trips", trip.CreateTripHandler())
	protected.Get("/trips", trip.ListTripsHandler())
	protected.Get("/trips/:id", trip.GetTripHandler())
	protected.Put("/trips/:id", trip.UpdateTripHandler())
	protected.Delete("/trips/:id", trip.DeleteTripHandler())
	protected.Post("/trips/bulk-import", trip.BulkImportHandler())

	// Settlements
	protected.Post("/payments", payment.CreatePaymentHandler())
	protected.Get("/payments", payment.ListPaymentsHandler())
	protected.Put("/payments/:id", payment.UpdatePaymentHandler())
	protected.Delete("/payments/:id", payment.DeletePaymentHandler())
	protected.Post("/advances", payment.CreateAdvanceHandler())
	protected.Get("/advances", payment.ListAdvancesHandler())
	protected.Put("/advances/:id", payment.UpdateAdvanceHandler())
	protected.Delete("/advances/:id", payment.DeleteAdvanceHandler())

	// Daily expenses
	protected.Post("/daily-expenses", expense.CreateDailyExpenseHandler())
	protected.Get("/daily-expenses", expense.ListDailyExpensesHandler())
	protected.Put("/daily-expenses/:id", expense.UpdateDailyExpenseHandler())
	protected.Delete("/daily-expenses/:id", expense.DeleteDailyExpenseHandler())

	// Double-entry ledger
	protected.Post("/ledger-entries", capital.CreateLedgerEntryHandler())
	protected.Get("/ledger-entries", capital.ListLedgerEntriesHandler())
	protected.Put("/ledger-entries/:id", capital.UpdateLedgerEntryHandler())
	protected.Delete("/ledger-entries/:id", capital.DeleteLedgerEntryHandler())
	protected.Get("/capital/balances", capital.CapitalBalancesHandler())

	// Reports
	protected.Get("/reports/party-overview", report.PartyOverviewHandler())
	protected.Get("/reports/statement", report.StatementHandler())
	protected.Get("/reports/statement/export", report.StatementExportHandler())

	// Dashboard
	protected.Get("/dashboard/cashflow-chart", dashboard.CashflowChartHandler())

	// Audit logs
	protected.Get("/audit-logs", audit.ListAuditLogsHandler())
	protected.Post("/audit-logs/:id/undo", audit.UndoAuditLogHandler())

	log.Println("Server listening on port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
