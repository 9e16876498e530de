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

	"github.com/wso2/blo-register-service/internal/importer"
)

// import census|voters <file.xlsx>: load a workbook into the register.
func importCmd() *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:         "import <census|voters> <file.xlsx>",
		Short:       "Import households or voters from a spreadsheet",
		Args:        cobra.ExactArgs(2),
		Annotations: map[string]string{mutatesAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := importer.Kind(args[0])
			if kind != importer.KindCensus && kind != importer.KindVoters {
				return fmt.Errorf("unknown import kind %q", args[0])
			}
			importMode, err := importer.ParseMode(mode)
			if err != nil {
				return err
			}

			file, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer file.Close()

			result, err := app.ImportService.Import(cmd.Context(), kind, file, importMode)
			if err != nil {
				return err
			}
			fmt.Printf("imported %d %s records (%s), %d in total\n", result.Imported, result.Kind, result.Mode,
				result.Total)
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", string(importer.ModeMerge), "merge or replace")
	return cmd
}
