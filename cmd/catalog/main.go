package main

import (
	"context"
	"log"

	"productcatalog/internal/cli"
	"productcatalog/internal/config"
	"productcatalog/internal/logger"
	"productcatalog/internal/repository/sql"
	"productcatalog/internal/schema"
	"productcatalog/internal/service"
)

func main() {
	conf, err := config.LoadFromEnv()
	handleErr("loading config", err)

	logger.InitJSONLogger(conf.DebugMode)

	mapping, err := schema.NewMapping(conf.SchemaProfile)
	handleErr("resolving schema mapping", err)

	ctx := context.Background()
	db, err := sql.StartDB(ctx, conf.Database, conf.SchemaProfile)
	handleErr("starting database", err)
	defer db.Close()

	// Create repositories
	productRepository := sql.NewProductRepository(db, mapping)
	categoryRepository := sql.NewCategoryRepository(db, mapping)
	supplierRepository := sql.NewSupplierRepository(db, mapping)
	historyRepository := sql.NewHistoryRepository(db, mapping)
	statsRepository := sql.NewStatsRepository(db, mapping)

	// Create services
	productService := service.NewProductService(productRepository, historyRepository)
	categoryService := service.NewCategoryService(categoryRepository)
	supplierService := service.NewSupplierService(supplierRepository)
	reportService := service.NewReportService(
		productRepository,
		categoryRepository,
		supplierRepository,
		historyRepository,
		statsRepository,
	)

	cli.New(conf, productService, categoryService, supplierService, reportService).Execute()
}

func handleErr(msg string, err error) {
	if err != nil {
		log.Fatalf("error while %s: %v", msg, err)
	}
}
