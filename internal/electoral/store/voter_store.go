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

package store

import (
	"sync"

	"github.com/wso2/blo-register-service/internal/models"
	"github.com/wso2/blo-register-service/internal/system/constants"
	"github.com/wso2/blo-register-service/internal/system/log"
	"github.com/wso2/blo-register-service/internal/system/storage"
)

// VoterRepository owns the electoral roll.
type VoterRepository interface {
	List() []models.Voter
	Get(voterId string) (models.Voter, bool)
	Add(voter models.Voter)
	Update(voter models.Voter) bool
	ReplaceAll(voters []models.Voter)
	Clear()
	SetStatus(voterId string, status models.Status) bool
	SetLink(voterId, memberId string) bool
}

// VoterStore keeps the roll in memory and writes it to local storage after every mutation.
type VoterStore struct {
	mu     sync.RWMutex
	voters []models.Voter
	kv     storage.KeyValueStore
}

// NewVoterStore loads the persisted roll from kv.
func NewVoterStore(kv storage.KeyValueStore) *VoterStore {
	store := &VoterStore{kv: kv}
	var voters []models.Voter
	if storage.Restore(kv, constants.VotersStorageKey, &voters) {
		store.voters = voters
		log.GetLogger().Debug("Loaded electoral roll from local storage", log.Int("voters", len(voters)))
	}
	return store
}

func (s *VoterStore) List() []models.Voter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Voter{}, s.voters...)
}

func (s *VoterStore) Get(voterId string) (models.Voter, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(voterId); i >= 0 {
		return s.voters[i], true
	}
	return models.Voter{}, false
}

func (s *VoterStore) Add(voter models.Voter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.voters = append(s.voters, voter)
	s.persist()
}

func (s *VoterStore) Update(voter models.Voter) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(voter.Id)
	if i < 0 {
		return false
	}
	s.voters[i] = voter
	s.persist()
	return true
}

func (s *VoterStore) ReplaceAll(voters []models.Voter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.voters = append([]models.Voter{}, voters...)
	s.persist()
}

func (s *VoterStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.voters = nil
	storage.Forget(s.kv, constants.VotersStorageKey)
}

func (s *VoterStore) SetStatus(voterId string, status models.Status) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(voterId)
	if i < 0 {
		return false
	}
	s.voters[i].Status = status
	s.persist()
	return true
}

// SetLink overwrites the voter's member reference. The member is not checked.
func (s *VoterStore) SetLink(voterId, memberId string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(voterId)
	if i < 0 {
		return false
	}
	s.voters[i].LinkedMemberId = memberId
	s.persist()
	return true
}

func (s *VoterStore) indexOf(voterId string) int {
	for i, voter := range s.voters {
		if voter.Id == voterId {
			return i
		}
	}
	return -1
}

func (s *VoterStore) persist() {
	voters := s.voters
	if voters == nil {
		voters = []models.Voter{}
	}
	storage.Persist(s.kv, constants.VotersStorageKey, voters)
}
