package cli

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	httpAPI "productcatalog/internal/http"
	"productcatalog/internal/http/controller"
	"productcatalog/internal/metrics"
)

func (cli *CLI) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and metrics servers",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cli.conf.DebugMode {
				gin.SetMode(gin.ReleaseMode)
			}

			baseCtr := controller.New()
			productCtr := controller.NewProductController(cli.products)
			categoryCtr := controller.NewCategoryController(cli.categories)
			supplierCtr := controller.NewSupplierController(cli.suppliers)
			reportCtr := controller.NewReportController(cli.reports)

			server := gin.Default()
			server = httpAPI.InitRouter(server, baseCtr, productCtr, categoryCtr, supplierCtr, reportCtr)

			errCh := make(chan error, 1)
			go func() {
				slog.Info("HTTP server starting", slog.String("port", cli.conf.HTTPServer.Port))
				errCh <- server.Run(":" + cli.conf.HTTPServer.Port)
			}()

			metrics.StartMetricsServer(cli.conf)

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
			select {
			case err := <-errCh:
				return err
			case <-sigChan:
				slog.Info("shutting down")
				return nil
			}
		},
	}
}
