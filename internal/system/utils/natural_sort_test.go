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

package utils

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestNaturalLessOrdersHouseNumbers(t *testing.T) {
	houses := []string{"10", "2", "12B", "1", "12a", "A-3", "a-20", "002"}
	sort.SliceStable(houses, func(i, j int) bool { return NaturalLess(houses[i], houses[j]) })

	want := []string{"1", "2", "002", "10", "12a", "12B", "A-3", "a-20"}
	if diff := cmp.Diff(want, houses); diff != "" {
		t.Errorf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestNaturalLessPrefix(t *testing.T) {
	assert.True(t, NaturalLess("House", "House 1"))
	assert.False(t, NaturalLess("House 1", "House"))
	assert.False(t, NaturalLess("same", "SAME"))
}
