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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wso2/blo-register-service/internal/system/config"
	"github.com/wso2/blo-register-service/internal/system/database/client"
	errors2 "github.com/wso2/blo-register-service/internal/system/errors"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	_, found, err := store.Load("households")
	require.NoError(t, err)
	assert.False(t, found)

	value := []byte(`[1]`)
	require.NoError(t, store.Save("households", value))
	value[0] = 'x'

	loaded, found, err := store.Load("households")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[1]`, string(loaded), "saved values are copied")

	require.NoError(t, store.Delete("households"))
	_, found, _ = store.Load("households")
	assert.False(t, found)
}

func TestPersistAndRestore(t *testing.T) {
	store := NewMemoryStore()
	Persist(store, "settings", map[string]string{"part": "12"})

	var restored map[string]string
	assert.True(t, Restore(store, "settings", &restored))
	assert.Equal(t, "12", restored["part"])

	require.NoError(t, store.Save("voters", []byte("{broken")))
	var voters []string
	assert.False(t, Restore(store, "voters", &voters), "unreadable content starts empty")
	assert.Nil(t, voters)
}

// failingStore rejects every write.
type failingStore struct {
	*MemoryStore
}

func (f failingStore) Save(string, []byte) error {
	return errors.New("disk full")
}

func TestPersistSwallowsWriteFailures(t *testing.T) {
	store := failingStore{NewMemoryStore()}
	assert.NotPanics(t, func() { Persist(store, "households", []int{1}) })
	_, found, _ := store.Load("households")
	assert.False(t, found)
}

func (f failingStore) Delete(string) error {
	return errors.New("read-only volume")
}

func TestForget(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save("voters", []byte("[]")))
	Forget(store, "voters")
	_, found, err := store.Load("voters")
	require.NoError(t, err)
	assert.False(t, found)

	assert.NotPanics(t, func() { Forget(failingStore{NewMemoryStore()}, "voters") })
}

func TestNewKeyValueStore(t *testing.T) {
	kv, closer, err := NewKeyValueStore("", config.Config{})
	require.NoError(t, err)
	defer closer()
	assert.IsType(t, &MemoryStore{}, kv)

	_, _, err = NewKeyValueStore("", config.Config{Storage: config.StorageConfig{Type: "cassandra"}})
	assert.True(t, errors2.HasCode(err, errors2.STORAGE_INIT))
}

// MockDBClient implements client.DBClientInterface for testing
type MockDBClient struct {
	mock.Mock
}

func (m *MockDBClient) ExecuteQuery(query string, args ...interface{}) ([]map[string]interface{}, error) {
	called := m.Called(append([]interface{}{query}, args...)...)
	return called.Get(0).([]map[string]interface{}), called.Error(1)
}

func (m *MockDBClient) Execute(query string, args ...interface{}) (int64, error) {
	called := m.Called(append([]interface{}{query}, args...)...)
	return int64(called.Int(0)), called.Error(1)
}

func (m *MockDBClient) Close() error {
	return nil
}

func (m *MockDBClient) InitDatabase(string, string) error {
	return nil
}

// MockDBProvider hands out the same mock client.
type MockDBProvider struct {
	client *MockDBClient
	err    error
}

func (p *MockDBProvider) GetDBClient() (client.DBClientInterface, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.client, nil
}

func (p *MockDBProvider) GetDBType() string {
	return "postgres"
}

func TestPostgresStore(t *testing.T) {
	dbClient := new(MockDBClient)
	store := NewPostgresStore(&MockDBProvider{client: dbClient})

	dbClient.On("ExecuteQuery", mock.Anything, "settings").
		Return([]map[string]interface{}{{"storage_value": `{"part":"12"}`}}, nil)
	dbClient.On("ExecuteQuery", mock.Anything, "voters").
		Return([]map[string]interface{}{}, nil)
	dbClient.On("Execute", mock.Anything, "settings", `{"part":"9"}`, mock.AnythingOfType("int64")).
		Return(1, nil)
	dbClient.On("Execute", mock.Anything, "settings").Return(1, nil)

	value, found, err := store.Load("settings")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"part":"12"}`, string(value))

	_, found, err = store.Load("voters")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Save("settings", []byte(`{"part":"9"}`)))
	require.NoError(t, store.Delete("settings"))
	dbClient.AssertExpectations(t)
}

func TestPostgresStoreReportsClientFailures(t *testing.T) {
	store := NewPostgresStore(&MockDBProvider{err: errors.New("connection refused")})

	_, _, err := store.Load("settings")
	assert.True(t, errors2.HasCode(err, errors2.DB_CLIENT_INIT))

	dbClient := new(MockDBClient)
	dbClient.On("Execute", mock.Anything, "households", "[]", mock.Anything).Return(0, errors.New("timeout"))
	err = NewPostgresStore(&MockDBProvider{client: dbClient}).Save("households", []byte("[]"))
	assert.True(t, errors2.HasCode(err, errors2.EXECUTE_QUERY))
}
