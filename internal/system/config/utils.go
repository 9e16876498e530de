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

import (
	"os"
	"path"

	"gopkg.in/yaml.v2"
)

const (
	DefaultConfigFile     = "/repository/conf/deployment.yaml"
	DefaultAssistantModel = "gemini-2.5-flash"
	StorageTypeMemory     = "memory"
	StorageTypePostgres   = "postgres"
	StorageTypeMongo      = "mongo"
)

// LoadConfig reads the deployment file relative to bloHome, expanding ${ENV} references.
func LoadConfig(bloHome, filePath string) (*Config, error) {
	file, err := os.ReadFile(path.Join(bloHome, filePath))
	if err != nil {
		return nil, err
	}

	return ParseConfig(file)
}

// ParseConfig parses YAML configuration content and fills in defaults.
func ParseConfig(content []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(content))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Addr.Host == "" {
		cfg.Addr.Host = "localhost"
	}
	if cfg.Addr.Port == 0 {
		cfg.Addr.Port = 8900
	}
	if cfg.Log.LogLevel == "" {
		cfg.Log.LogLevel = "INFO"
	}
	if cfg.Storage.Type == "" {
		cfg.Storage.Type = StorageTypeMemory
	}
	if cfg.DataSource.SSLMode == "" {
		cfg.DataSource.SSLMode = "disable"
	}
	if cfg.MongoDB.Collection == "" {
		cfg.MongoDB.Collection = "local_storage"
	}
	if cfg.Assistant.Model == "" {
		cfg.Assistant.Model = DefaultAssistantModel
	}
	if cfg.Assistant.APIKey == "" {
		cfg.Assistant.APIKey = os.Getenv("GEMINI_API_KEY")
	}
}

// OverrideBLORuntime replaces the runtime configuration. Used by tests and the CLI.
func OverrideBLORuntime(conf Config) {
	applyDefaults(&conf)
	runtimeConfig = &BLORuntime{
		Config: conf,
	}
}
