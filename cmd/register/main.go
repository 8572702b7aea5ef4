package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sangkips/pos-register/internal/application/service"
	"github.com/sangkips/pos-register/internal/config"
	"github.com/sangkips/pos-register/internal/domain/entity"
	domainRepo "github.com/sangkips/pos-register/internal/domain/repository"
	"github.com/sangkips/pos-register/internal/infrastructure/database"
	"github.com/sangkips/pos-register/internal/infrastructure/metrics"
	"github.com/sangkips/pos-register/internal/infrastructure/report"
	"github.com/sangkips/pos-register/internal/infrastructure/repository"
	"github.com/sangkips/pos-register/internal/presentation/console"
	"github.com/sangkips/pos-register/pkg/logging"
	"github.com/sangkips/pos-register/pkg/printer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load checkout script
	script := config.DefaultScript()
	if cfg.App.ScriptPath != "" {
		loaded, err := config.LoadScript(cfg.App.ScriptPath)
		if err != nil {
			log.Fatalf("Failed to load checkout script: %v", err)
		}
		script = loaded
	}

	// Initialize catalog, discounts and inventory
	var (
		catalog   domainRepo.CatalogRepository
		discounts domainRepo.DiscountRepository
		inventory domainRepo.InventorySystem
	)
	switch cfg.Catalog.Driver {
	case "postgres":
		db, err := database.NewPostgresDB(&cfg.Database)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		productRepo := repository.NewProductRepository(db)
		discountRepo := repository.NewDiscountRepository(db)
		if cfg.Catalog.Seed {
			err := repository.SeedCatalog(ctx, productRepo, discountRepo,
				database.DefaultProducts(cfg.Catalog.InitialStock), database.DefaultDiscounts())
			if err != nil {
				log.Printf("Warning: Failed to seed default data: %v", err)
			}
		}
		catalog = productRepo
		inventory = productRepo
		discounts = discountRepo
	case "sqlite":
		db, err := database.NewSQLiteDB(cfg.Catalog.SQLitePath)
		if err != nil {
			log.Fatalf("Failed to open sqlite database: %v", err)
		}
		defer db.Close()
		if err := database.MigrateSQLite(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		if cfg.Catalog.Seed {
			if err := database.SeedSQLite(db, cfg.Catalog.InitialStock); err != nil {
				log.Printf("Warning: Failed to seed default data: %v", err)
			}
		}
		sqliteCatalog := repository.NewSQLiteCatalog(db)
		catalog = sqliteCatalog
		inventory = sqliteCatalog
		discounts = sqliteCatalog
	case "memory", "":
		memCatalog := repository.NewDefaultMemoryCatalog(cfg.Catalog.FailureItemID, cfg.Catalog.InitialStock)
		catalog = memCatalog
		inventory = memCatalog
		discounts = repository.NewDefaultMemoryDiscounts()
	default:
		log.Fatalf("Unknown catalog driver %q (use memory, sqlite or postgres)", cfg.Catalog.Driver)
	}

	// Initialize printer
	receiptPrinter, err := printer.NewPrinterFromConfig(cfg.Printer.Type, cfg.Printer.USBPath, cfg.Printer.Address)
	if err != nil {
		log.Fatalf("Failed to initialize printer: %v", err)
	}
	defer receiptPrinter.Close()

	printerService := service.NewReceiptPrinterService(
		receiptPrinter,
		entity.ReceiptHeader{
			StoreName: cfg.Store.Name,
			Address:   cfg.Store.Address,
			Phone:     cfg.Store.Phone,
			TaxID:     cfg.Store.TaxID,
		},
		cfg.Printer.Type,
		cfg.Printer.PaperWidth,
		cfg.Store.ReceiptPrefix,
	)
	if status := printerService.GetStatus(); status.Configured && !status.Connected {
		log.Printf("Warning: %s printer is not reachable, receipts may not print", status.Type)
	}

	// Initialize logs
	errorLog, err := logging.NewFileLogger(cfg.Logging.ErrorLogPath)
	if err != nil {
		log.Fatalf("Failed to open error log: %v", err)
	}
	defer errorLog.Close()

	revenueFile, err := report.NewTotalRevenueFileOutput(cfg.Logging.RevenueLogPath)
	if err != nil {
		log.Fatalf("Failed to open revenue log: %v", err)
	}
	defer revenueFile.Close()

	// Initialize register
	ledger := repository.NewAccountingLedger()
	register := service.NewRegisterService(
		catalog,
		discounts,
		ledger,
		inventory,
		printerService,
		service.NewSaleObserverRegistry(),
	)
	register.AddSaleObserver(console.NewTotalRevenueView(os.Stdout))
	register.AddSaleObserver(revenueFile)

	// End-of-day exports
	var exporters []report.Exporter
	if cfg.Report.MetricsPath != "" {
		registerMetrics := metrics.NewRegisterMetrics(cfg.Report.MetricsPath)
		register.AddSaleObserver(registerMetrics)
		exporters = append(exporters, registerMetrics)
	}
	if cfg.Report.WorkbookPath != "" {
		exporters = append(exporters, report.NewLedgerWorkbook(ledger, cfg.Report.WorkbookPath))
	}

	view := console.NewView(register, os.Stdout, os.Stderr, errorLog)
	log.Printf("%s ready (%s catalog, %s printer)", cfg.App.Name, cfg.Catalog.Driver, cfg.Printer.Type)
	if err := view.Run(ctx, script); err != nil {
		log.Printf("Checkout interrupted: %v", err)
		return
	}

	log.Printf("Sales booked: %d, total %s", len(ledger.Entries()), ledger.Total())
	if err := report.RunCloseout(ctx, exporters...); err != nil {
		log.Printf("Warning: closeout failed: %v", err)
	}
}
