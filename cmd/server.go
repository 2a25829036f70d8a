package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dongdio/OpenBlog/global"
	"github.com/dongdio/OpenBlog/initialize"
	"github.com/dongdio/OpenBlog/internal/conf"
	"github.com/dongdio/OpenBlog/server"
	"github.com/dongdio/OpenBlog/server/middlewares"
	"github.com/dongdio/OpenBlog/utility/utils"
)

// ServerCmd represents the server command that starts the blog
var ServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the OpenBlog server",
	Long: `Start the OpenBlog server. On the first start the bundled themes are copied
into the theme directory; in development mode a test account is created.`,
	Run: func(cmd *cobra.Command, args []string) {
		app := initialize.InitApp(true)

		if !global.Debug && !global.Dev {
			gin.SetMode(gin.ReleaseMode)
			utils.Log.Info("Running in production mode")
		} else if global.Debug {
			utils.Log.Info("Running in debug mode")
		} else {
			utils.Log.Info("Running in development mode")
		}

		r := gin.New()
		r.Use(middlewares.ErrorLogging())
		r.Use(
			gin.LoggerWithWriter(log.StandardLogger().Out),
			gin.RecoveryWithWriter(log.StandardLogger().Out),
		)
		server.Init(r, app.Site, app.Engine, app.Registry)

		addr := fmt.Sprintf("%s:%d", conf.Conf.Scheme.Address, conf.Conf.Port())
		httpSrv := &http.Server{Addr: addr, Handler: r}
		go func() {
			utils.Log.Infof("Starting HTTP server on %s", addr)
			if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				utils.Log.Fatalf("Failed to start HTTP server: %s", err.Error())
			}
		}()

		quit := make(chan os.Signal, 1)
		// SIGKILL cannot be caught
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		utils.Log.Info("Shutdown signal received, gracefully shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(ctx); err != nil {
			utils.Log.Errorf("HTTP server shutdown error: %v", err)
		}
		Release()
		utils.Log.Info("Server shutdown completed")
	},
}

func init() {
	RootCmd.AddCommand(ServerCmd)
}
