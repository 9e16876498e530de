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

package config

import "sync"

// BLORuntime holds the runtime configuration for the register service.
type BLORuntime struct {
	BLOHome string `yaml:"blo_home"`
	Config  Config `yaml:"config"`
}

var (
	runtimeConfig *BLORuntime
	once          sync.Once
)

// InitializeBLORuntime initializes the BLORuntime configuration.
func InitializeBLORuntime(bloHome string, config *Config) error {

	once.Do(func() {
		runtimeConfig = &BLORuntime{
			BLOHome: bloHome,
			Config:  *config,
		}
	})

	return nil
}

// GetBLORuntime returns the BLORuntime configuration.
func GetBLORuntime() *BLORuntime {

	if runtimeConfig == nil {
		panic("BLORuntime is not initialized")
	}
	return runtimeConfig
}
