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

// HouseholdRepository owns the census collection.
type HouseholdRepository interface {
	List() []models.Household
	Get(householdId string) (models.Household, bool)
	FindByHouseNo(houseNo string) (models.Household, bool)
	Add(household models.Household)
	Update(household models.Household) bool
	Delete(householdId string) bool
	AddMember(householdId string, member models.Member) bool
	UpdateMember(householdId string, member models.Member) bool
	DeleteMember(householdId, memberId string) bool
	ReplaceAll(households []models.Household)
	Clear()
	Members() []models.MemberRef
	FindMember(memberId string) (models.MemberRef, bool)
	UpdateMemberStatus(memberId string, status models.Status) bool
}

// HouseholdStore keeps households in memory and writes the whole collection to local storage
// after every mutation.
type HouseholdStore struct {
	mu         sync.RWMutex
	households []models.Household
	kv         storage.KeyValueStore
}

// NewHouseholdStore loads the persisted census from kv.
func NewHouseholdStore(kv storage.KeyValueStore) *HouseholdStore {
	store := &HouseholdStore{kv: kv}
	var households []models.Household
	if storage.Restore(kv, constants.HouseholdsStorageKey, &households) {
		store.households = households
		log.GetLogger().Debug("Loaded census from local storage", log.Int("households", len(households)))
	}
	return store
}

func (s *HouseholdStore) List() []models.Household {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.households)
}

func (s *HouseholdStore) Get(householdId string) (models.Household, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(householdId); i >= 0 {
		return s.households[i].Clone(), true
	}
	return models.Household{}, false
}

// FindByHouseNo matches house numbers case-insensitively after trimming.
func (s *HouseholdStore) FindByHouseNo(houseNo string) (models.Household, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, household := range s.households {
		if models.SameHouseNo(household.HouseNo, houseNo) {
			return household.Clone(), true
		}
	}
	return models.Household{}, false
}

func (s *HouseholdStore) Add(household models.Household) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.households = append(s.households, household.Clone())
	s.persist()
}

func (s *HouseholdStore) Update(household models.Household) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(household.Id)
	if i < 0 {
		return false
	}
	s.households[i] = household.Clone()
	s.persist()
	return true
}

func (s *HouseholdStore) Delete(householdId string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(householdId)
	if i < 0 {
		return false
	}
	s.households = append(s.households[:i], s.households[i+1:]...)
	s.persist()
	return true
}

func (s *HouseholdStore) AddMember(householdId string, member models.Member) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(householdId)
	if i < 0 {
		return false
	}
	s.households[i].Members = append(s.households[i].Members, member)
	s.persist()
	return true
}

func (s *HouseholdStore) UpdateMember(householdId string, member models.Member) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(householdId)
	if i < 0 {
		return false
	}
	j := s.households[i].MemberIndex(member.Id)
	if j < 0 {
		return false
	}
	s.households[i].Members[j] = member
	s.persist()
	return true
}

func (s *HouseholdStore) DeleteMember(householdId, memberId string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(householdId)
	if i < 0 {
		return false
	}
	j := s.households[i].MemberIndex(memberId)
	if j < 0 {
		return false
	}
	members := s.households[i].Members
	s.households[i].Members = append(members[:j:j], members[j+1:]...)
	s.persist()
	return true
}

// ReplaceAll swaps the whole census, as imports and restores do.
func (s *HouseholdStore) ReplaceAll(households []models.Household) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.households = cloneAll(households)
	s.persist()
}

// Clear empties the census and drops its stored document.
func (s *HouseholdStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.households = nil
	storage.Forget(s.kv, constants.HouseholdsStorageKey)
}

func (s *HouseholdStore) Members() []models.MemberRef {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.FlattenMembers(s.households)
}

// FindMember resolves a member id across all households. Callers must treat a miss as a normal
// outcome: voters may still reference deleted members.
func (s *HouseholdStore) FindMember(memberId string) (models.MemberRef, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, household := range s.households {
		if j := household.MemberIndex(memberId); j >= 0 {
			return models.MemberRef{
				Member:      household.Members[j],
				HouseholdId: household.Id,
				HouseNo:     household.HouseNo,
			}, true
		}
	}
	return models.MemberRef{}, false
}

func (s *HouseholdStore) UpdateMemberStatus(memberId string, status models.Status) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.households {
		if j := s.households[i].MemberIndex(memberId); j >= 0 {
			s.households[i].Members[j].Status = status
			s.persist()
			return true
		}
	}
	return false
}

func (s *HouseholdStore) indexOf(householdId string) int {
	for i, household := range s.households {
		if household.Id == householdId {
			return i
		}
	}
	return -1
}

func (s *HouseholdStore) persist() {
	households := s.households
	if households == nil {
		households = []models.Household{}
	}
	storage.Persist(s.kv, constants.HouseholdsStorageKey, households)
}

func cloneAll(households []models.Household) []models.Household {
	clones := make([]models.Household, 0, len(households))
	for _, household := range households {
		clones = append(clones, household.Clone())
	}
	return clones
}
