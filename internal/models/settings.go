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

package models

// Settings describes the officer and the jurisdiction. There is a single instance, edited in place.
type Settings struct {
	BloName              string `json:"bloName"`
	BloDesignation       string `json:"bloDesignation"`
	BloAddress           string `json:"bloAddress"`
	BloMobile            string `json:"bloMobile"`
	AssemblyConstituency string `json:"assemblyConstituency"`
	Part                 string `json:"part"`
	SyncId               string `json:"syncId"`
	SyncKey              string `json:"syncKey"`
}

// DefaultSettings returns the settings of a freshly installed register.
func DefaultSettings() Settings {
	return Settings{
		BloName:              "BLO Name",
		AssemblyConstituency: "Constituency",
	}
}
