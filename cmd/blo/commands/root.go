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

package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/wso2/blo-register-service/internal/system/config"
	"github.com/wso2/blo-register-service/internal/system/log"
	"github.com/wso2/blo-register-service/internal/system/managers"
)

// mutatesAnnotation marks commands whose changes are written back to the --data file.
const mutatesAnnotation = "mutates"

var (
	bloHome  string
	dataFile string
	logLevel string
	app      *managers.Application
)

func Execute() error {
	return run(context.Background(), os.Args[1:])
}

// run executes one command line. The application is closed even when the command fails.
func run(ctx context.Context, args []string) error {
	defer closeApplication()

	root := newRootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "blo",
		Short:         "Booth Level Officer register tool",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return openApplication(cmd.Context())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if dataFile == "" || cmd.Annotations[mutatesAnnotation] != "true" {
				return nil
			}
			return saveDataFile()
		},
	}

	root.PersistentFlags().StringVar(&bloHome, "home", "", "service home directory (default: current directory)")
	root.PersistentFlags().StringVar(&dataFile, "data", "",
		"backup file to load into memory storage before the command and to update after commands that change data")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "WARN", "log level")

	root.AddCommand(importCmd(), exportCmd(), restoreCmd(), clearCmd(), autoLinkCmd(), statsCmd(), askCmd())
	return root
}

func closeApplication() {
	if app != nil {
		app.Close()
		app = nil
	}
}

func openApplication(ctx context.Context) error {
	if bloHome == "" {
		dir, err := os.Getwd()
		if err != nil {
			return err
		}
		bloHome = dir
	}

	envFiles, err := filepath.Glob(filepath.Join(bloHome, "config", "*.env"))
	if err == nil && len(envFiles) > 0 {
		_ = godotenv.Load(envFiles...)
	}

	cfg, err := config.LoadConfig(bloHome, config.DefaultConfigFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load configuration: %w", err)
		}
		// Without a deployment file the tool works on in-memory storage.
		cfg, _ = config.ParseConfig(nil)
	}
	if dataFile != "" {
		// The data file is the register; the configured backend stays untouched.
		cfg.Storage.Type = config.StorageTypeMemory
	}
	if err := config.InitializeBLORuntime(bloHome, cfg); err != nil {
		return err
	}
	if err := log.InitWithWriter(logLevel, os.Stderr); err != nil {
		return err
	}

	app, err = managers.BootstrapApplication(ctx, bloHome, cfg)
	if err != nil {
		return err
	}

	if dataFile == "" {
		return nil
	}
	data, err := os.ReadFile(dataFile)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	_, err = app.BackupService.Restore(ctx, data)
	return err
}

func saveDataFile() error {
	data, err := app.BackupService.Export()
	if err != nil {
		return err
	}
	return os.WriteFile(dataFile, data, 0o600)
}

func writeOutput(path string, payload []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(payload)
		return err
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote %s (%d bytes)\n", path, len(payload))
	return nil
}
