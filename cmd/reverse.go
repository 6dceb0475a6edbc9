/*
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"encoding/json"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dataveil/dataveil/src/anonymizer"
	"github.com/dataveil/dataveil/src/table"
	"github.com/dataveil/dataveil/src/utils"
)

var (
	reverseInputPath   string
	reverseOutputPath  string
	reverseMappingPath string
	reverseDelimiter   string
)

var reverseCmd = &cobra.Command{
	Use:   "reverse",
	Short: "Restore the original values of an anonymized table",
	Long: `Reads an anonymized CSV file and the mapping file produced by the anonymize
command, and writes the de-anonymized table. Tokens without a mapping entry
are left unchanged.`,

	Run: func(cmd *cobra.Command, args []string) {
		reverse()
	},
}

func init() {
	rootCmd.AddCommand(reverseCmd)

	reverseCmd.Flags().StringVar(&reverseInputPath, "input", "",
		"path of the anonymized CSV file")
	reverseCmd.Flags().StringVar(&reverseOutputPath, "output", "",
		"path of the restored CSV file to write")
	reverseCmd.Flags().StringVar(&reverseMappingPath, "mapping-file", "",
		"path of the JSON mapping file written by anonymize")
	reverseCmd.Flags().StringVar(&reverseDelimiter, "delimiter", ",",
		"single-character CSV field delimiter")

	reverseCmd.MarkFlagRequired("input")
	reverseCmd.MarkFlagRequired("output")
	reverseCmd.MarkFlagRequired("mapping-file")
}

func reverse() {
	t, err := table.ReadCSV(reverseInputPath, reverseDelimiter)
	if err != nil {
		utils.ErrExit("read anonymized file: %s", err)
	}

	result := loadMappingFile(reverseMappingPath)

	restored, err := anonymizer.Reverse(t, result)
	if err != nil {
		color.Red("De-anonymization failed ❌")
		utils.ErrExit("reverse table: %s", err)
	}

	if err := table.WriteCSV(restored, reverseOutputPath, reverseDelimiter); err != nil {
		utils.ErrExit("write restored table: %s", err)
	}
	color.Green("De-anonymization complete ✅")
}

func loadMappingFile(path string) *anonymizer.Result {
	bytes, err := os.ReadFile(path)
	if err != nil {
		utils.ErrExit("read mapping file: %s", err)
	}
	var result anonymizer.Result
	if err := json.Unmarshal(bytes, &result); err != nil {
		utils.ErrExit("parse mapping file %q: %s", path, err)
	}
	return &result
}
