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

package storage

import (
	"context"
	"fmt"

	"github.com/wso2/blo-register-service/internal/system/config"
	"github.com/wso2/blo-register-service/internal/system/database/provider"
	errors2 "github.com/wso2/blo-register-service/internal/system/errors"
	"github.com/wso2/blo-register-service/internal/system/log"
)

// NewKeyValueStore builds the backend selected by the storage section of the configuration. The
// returned function releases resources held by the backend.
func NewKeyValueStore(bloHome string, cfg config.Config) (KeyValueStore, func(), error) {
	logger := log.GetLogger()
	noop := func() {}

	switch cfg.Storage.Type {
	case config.StorageTypeMemory, "":
		logger.Warn("Using in-memory storage, data will not survive a restart")
		return NewMemoryStore(), noop, nil

	case config.StorageTypePostgres:
		dbProvider := provider.NewDBProvider()
		if cfg.DataSource.SchemaFile != "" {
			dbClient, err := dbProvider.GetDBClient()
			if err != nil {
				return nil, noop, storageInitError("postgres", err)
			}
			err = dbClient.InitDatabase(bloHome, cfg.DataSource.SchemaFile)
			_ = dbClient.Close()
			if err != nil {
				return nil, noop, storageInitError("postgres", err)
			}
		}
		logger.Info("Using postgres storage", log.String("host", cfg.DataSource.Hostname),
			log.String("database", cfg.DataSource.Name))
		return NewPostgresStore(dbProvider), noop, nil

	case config.StorageTypeMongo:
		mongoClient, err := ConnectMongo(cfg.MongoDB.URI)
		if err != nil {
			return nil, noop, storageInitError("mongo", err)
		}
		logger.Info("Using mongo storage", log.String("database", cfg.MongoDB.Database),
			log.String("collection", cfg.MongoDB.Collection))
		closer := func() {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				logger.Warn("Failed to disconnect mongo client", log.Error(err))
			}
		}
		return NewMongoStore(mongoClient.Database(cfg.MongoDB.Database), cfg.MongoDB.Collection), closer, nil

	default:
		return nil, noop, storageInitError(cfg.Storage.Type,
			fmt.Errorf("unsupported storage type %q", cfg.Storage.Type))
	}
}

func storageInitError(storageType string, cause error) error {
	return errors2.NewServerError(errors2.ErrorMessage{
		Code:        errors2.STORAGE_INIT.Code,
		Message:     errors2.STORAGE_INIT.Message,
		Description: fmt.Sprintf("Failed to initialize %s storage.", storageType),
	}, cause)
}
