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
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// restore <backup.json>: replace the register with a backup.
func restoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "restore <backup.json>",
		Short:       "Restore households, voters and settings from a backup",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{mutatesAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			result, err := app.BackupService.Restore(cmd.Context(), data)
			if err != nil {
				return err
			}
			fmt.Printf("restored %d households, %d voters, settings restored: %t\n", result.Households,
				result.Voters, result.Settings)
			return nil
		},
	}
}

func clearCmd() *cobra.Command {
	var confirm bool
	cmd := &cobra.Command{
		Use:         "clear",
		Short:       "Delete all households, voters and settings",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{mutatesAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm {
				return fmt.Errorf("refusing to clear the register without --yes")
			}
			app.BackupService.ClearAll(cmd.Context())
			fmt.Println("register cleared")
			return nil
		},
	}
	cmd.Flags().BoolVar(&confirm, "yes", false, "confirm deletion")
	return cmd
}
