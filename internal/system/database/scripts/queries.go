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

package scripts

var GetStorageValue = map[string]string{
	"postgres": `SELECT storage_value FROM local_storage WHERE storage_key = $1`,
}

var UpsertStorageValue = map[string]string{
	"postgres": `INSERT INTO local_storage (storage_key, storage_value, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (storage_key) DO UPDATE SET storage_value = EXCLUDED.storage_value,
		updated_at = EXCLUDED.updated_at`,
}

var DeleteStorageValue = map[string]string{
	"postgres": `DELETE FROM local_storage WHERE storage_key = $1`,
}
