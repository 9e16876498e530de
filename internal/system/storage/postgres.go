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
	"fmt"
	"time"

	"github.com/wso2/blo-register-service/internal/system/database/provider"
	"github.com/wso2/blo-register-service/internal/system/database/scripts"
	errors2 "github.com/wso2/blo-register-service/internal/system/errors"
	"github.com/wso2/blo-register-service/internal/system/log"
)

// PostgresStore keeps documents in the local_storage table.
type PostgresStore struct {
	dbProvider provider.DBProviderInterface
}

// NewPostgresStore creates a store that obtains a client from dbProvider for every operation.
func NewPostgresStore(dbProvider provider.DBProviderInterface) *PostgresStore {
	return &PostgresStore{dbProvider: dbProvider}
}

func (p *PostgresStore) Load(key string) ([]byte, bool, error) {

	logger := log.GetLogger()
	dbClient, err := p.dbProvider.GetDBClient()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for reading key: %s", key)
		logger.Debug(errorMsg, log.Error(err))
		return nil, false, dbClientError(errorMsg, err)
	}
	defer dbClient.Close()

	results, err := dbClient.ExecuteQuery(scripts.GetStorageValue[p.dbProvider.GetDBType()], key)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed in reading local storage key: %s", key)
		logger.Debug(errorMsg, log.Error(err))
		return nil, false, queryError(errorMsg, err)
	}
	if len(results) == 0 {
		logger.Debug("No value stored for key: " + key)
		return nil, false, nil
	}

	switch value := results[0]["storage_value"].(type) {
	case string:
		return []byte(value), true, nil
	case []byte:
		return value, true, nil
	default:
		return nil, false, fmt.Errorf("unexpected storage value type %T for key %s", value, key)
	}
}

func (p *PostgresStore) Save(key string, value []byte) error {

	logger := log.GetLogger()
	dbClient, err := p.dbProvider.GetDBClient()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for writing key: %s", key)
		logger.Debug(errorMsg, log.Error(err))
		return dbClientError(errorMsg, err)
	}
	defer dbClient.Close()

	query := scripts.UpsertStorageValue[p.dbProvider.GetDBType()]
	if _, err := dbClient.Execute(query, key, string(value), time.Now().UTC().Unix()); err != nil {
		errorMsg := fmt.Sprintf("Failed in writing local storage key: %s", key)
		logger.Debug(errorMsg, log.Error(err))
		return queryError(errorMsg, err)
	}
	return nil
}

func (p *PostgresStore) Delete(key string) error {

	logger := log.GetLogger()
	dbClient, err := p.dbProvider.GetDBClient()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for deleting key: %s", key)
		logger.Debug(errorMsg, log.Error(err))
		return dbClientError(errorMsg, err)
	}
	defer dbClient.Close()

	if _, err := dbClient.Execute(scripts.DeleteStorageValue[p.dbProvider.GetDBType()], key); err != nil {
		errorMsg := fmt.Sprintf("Failed in deleting local storage key: %s", key)
		logger.Debug(errorMsg, log.Error(err))
		return queryError(errorMsg, err)
	}
	return nil
}

func dbClientError(description string, cause error) error {
	return errors2.NewServerError(errors2.ErrorMessage{
		Code:        errors2.DB_CLIENT_INIT.Code,
		Message:     errors2.DB_CLIENT_INIT.Message,
		Description: description,
	}, cause)
}

func queryError(description string, cause error) error {
	return errors2.NewServerError(errors2.ErrorMessage{
		Code:        errors2.EXECUTE_QUERY.Code,
		Message:     errors2.EXECUTE_QUERY.Message,
		Description: description,
	}, cause)
}
