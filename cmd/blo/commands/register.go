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

package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func autoLinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "autolink",
		Short:       "Link unlinked voters to census members by house number, name and gender",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{mutatesAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			linked := app.ReconciliationService.AutoLinkAll(cmd.Context())
			fmt.Printf("linked %d voters\n", linked)
			return nil
		},
	}
}

// stats: print the dashboard figures and the age cohort statement as JSON.
func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print dashboard statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(map[string]any{
				"dashboard":  app.AggregationService.DashboardStats(),
				"ageCohorts": app.AggregationService.AgeCohorts(),
			})
		},
	}
}

func askCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the assistant about the register",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			answer, err := app.AssistantService.Ask(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Println(answer.Answer)
			return nil
		},
	}
}
