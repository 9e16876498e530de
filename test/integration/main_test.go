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

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/wso2/blo-register-service/internal/system/config"
	"github.com/wso2/blo-register-service/internal/system/database/provider"
	"github.com/wso2/blo-register-service/internal/system/log"
	"github.com/wso2/blo-register-service/test/integration/utils"
	"github.com/wso2/blo-register-service/test/setup"
)

var testDB *setup.TestPostgres

func TestMain(m *testing.M) {
	if os.Getenv("BLO_INTEGRATION") != "true" {
		fmt.Println("Skipping integration tests, set BLO_INTEGRATION=true to run them")
		os.Exit(0)
	}
	ctx := context.Background()

	conf := config.Config{
		Log: config.LogConfig{
			LogLevel: "DEBUG",
		},
		Storage: config.StorageConfig{
			Type: config.StorageTypePostgres,
		},
	}
	config.OverrideBLORuntime(conf)
	_ = log.Init("DEBUG")

	pg, err := setup.SetupTestPostgres(ctx)
	if err != nil {
		fmt.Println("Failed to start test DB:", err)
		os.Exit(1)
	}
	testDB = pg

	provider.SetTestDB(pg.DB)
	if err := utils.CreateTablesFromFile(pg.DB, "../../dbscripts/postgres.sql"); err != nil {
		fmt.Println("Failed to create tables from schema:", err)
		_ = pg.Container.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	_ = pg.Container.Terminate(ctx)
	os.Exit(code)
}
