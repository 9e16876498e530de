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
	"encoding/json"

	"github.com/wso2/blo-register-service/internal/system/log"
)

// KeyValueStore is the persistence contract of the register. It mirrors the device local storage:
// every collection is kept as one JSON document under a well known key.
type KeyValueStore interface {
	Load(key string) ([]byte, bool, error)
	Save(key string, value []byte) error
	Delete(key string) error
}

// LoadJSON decodes the document stored under key into out. It reports false when nothing is stored.
func LoadJSON(kv KeyValueStore, key string, out interface{}) (bool, error) {
	raw, found, err := kv.Load(key)
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

// Persist writes value under key. Failures are logged and swallowed: the in-memory state stays
// authoritative for the session and the next successful write brings storage back in line.
func Persist(kv KeyValueStore, key string, value interface{}) {
	logger := log.GetLogger()
	raw, err := json.Marshal(value)
	if err != nil {
		logger.Warn("Failed to encode collection for local storage", log.String("key", key), log.Error(err))
		return
	}
	if err := kv.Save(key, raw); err != nil {
		logger.Warn("Failed to write collection to local storage", log.String("key", key), log.Error(err))
		return
	}
	logger.Debug("Collection written to local storage", log.String("key", key), log.Int("bytes", len(raw)))
}

// Forget drops the document under key. Failures are logged and swallowed like Persist's.
func Forget(kv KeyValueStore, key string) {
	if err := kv.Delete(key); err != nil {
		log.GetLogger().Warn("Failed to remove collection from local storage", log.String("key", key), log.Error(err))
	}
}

// Restore loads the document under key into out, logging and ignoring unreadable content so the
// register can always start.
func Restore(kv KeyValueStore, key string, out interface{}) bool {
	found, err := LoadJSON(kv, key, out)
	if err != nil {
		log.GetLogger().Error("Failed to read collection from local storage, starting empty",
			log.String("key", key), log.Error(err))
		return false
	}
	return found
}
