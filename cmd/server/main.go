/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/wso2/blo-register-service/internal/system/config"
	"github.com/wso2/blo-register-service/internal/system/constants"
	traceCtx "github.com/wso2/blo-register-service/internal/system/context"
	"github.com/wso2/blo-register-service/internal/system/log"
	"github.com/wso2/blo-register-service/internal/system/managers"
)

func main() {
	bloHome := getBLOHome()

	envFiles, err := filepath.Glob(filepath.Join(bloHome, "config", "*.env"))
	if err == nil && len(envFiles) > 0 {
		_ = godotenv.Load(envFiles...)
	}

	bloConfig, err := config.LoadConfig(bloHome, config.DefaultConfigFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := config.InitializeBLORuntime(bloHome, bloConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize runtime: %v\n", err)
		os.Exit(1)
	}

	if err := log.Init(bloConfig.Log.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger := log.GetLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := managers.BootstrapApplication(ctx, bloHome, bloConfig)
	if err != nil {
		logger.Fatal("Failed to initialize the register", log.Error(err))
	}
	defer app.Close()

	serverAddr := fmt.Sprintf("%s:%d", bloConfig.Addr.Host, bloConfig.Addr.Port)
	handler := traceCtx.TraceMiddleware(enableCORS(initMultiplexer(app), bloConfig.Auth.CORSAllowedOrigins))

	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Fatal("Failed to start listener", log.String("address", serverAddr), log.Error(err))
	}

	server := &http.Server{Handler: handler, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Graceful shutdown failed", log.Error(err))
		}
	}()

	logger.Info("BLO register service started", log.String("address", serverAddr),
		log.String("storage", bloConfig.Storage.Type))
	if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to serve requests", log.Error(err))
	}
	logger.Info("BLO register service stopped")
}

// initMultiplexer initializes the HTTP multiplexer and registers the services.
func initMultiplexer(app *managers.Application) *http.ServeMux {

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux, app)

	if err := serviceManager.RegisterServices(constants.ApiBasePath); err != nil {
		log.GetLogger().Error("Failed to register the services", log.Error(err))
	}

	return mux
}

func enableCORS(next http.Handler, allowedOrigins []string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if len(allowedOrigins) == 0 {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		} else if slices.Contains(allowedOrigins, origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Length, Content-Disposition, X-Trace-Id")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func getBLOHome() string {

	homeFlag := flag.String("bloHome", "", "Path to the register service home directory")
	flag.Parse()

	if *homeFlag != "" {
		return *homeFlag
	}
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to get current working directory: %v\n", err)
		os.Exit(1)
	}
	return dir
}
