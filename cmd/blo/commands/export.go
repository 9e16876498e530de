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

	"github.com/spf13/cobra"
)

// export census|voters|register|backup: write a workbook, the PDF register or a backup.
func exportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:       "export <census|voters|register|backup>",
		Short:     "Export the register",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"census", "voters", "register", "backup"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				payload []byte
				err     error
			)
			switch args[0] {
			case "census":
				payload, err = app.ExportService.CensusWorkbook()
			case "voters":
				payload, err = app.ExportService.VoterWorkbook()
			case "register":
				payload, err = app.ExportService.RegisterPDF()
			case "backup":
				payload, err = app.BackupService.Export()
			default:
				return fmt.Errorf("unknown export %q", args[0])
			}
			if err != nil {
				return err
			}
			return writeOutput(out, payload)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file")
	return cmd
}
