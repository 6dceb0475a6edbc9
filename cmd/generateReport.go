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
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dataveil/dataveil/src/anonymizer"
	"github.com/dataveil/dataveil/src/utils"
)

var (
	reportMappingPath string
	reportDir         string
)

var generateReportCmd = &cobra.Command{
	Use:   "generateReport",
	Short: "Summarize an anonymization run from its mapping file",
	Long: `Writes report.json and report.html with per-column token counts. The report
contains no original values, only counts, so it is safe to share.`,

	Run: func(cmd *cobra.Command, args []string) {
		generateReport()
	},
}

func init() {
	rootCmd.AddCommand(generateReportCmd)

	generateReportCmd.Flags().StringVar(&reportMappingPath, "mapping-file", "",
		"path of the JSON mapping file written by anonymize")
	generateReportCmd.Flags().StringVar(&reportDir, "report-dir", ".",
		"directory to write report.json and report.html into")

	generateReportCmd.MarkFlagRequired("mapping-file")
}

func generateReport() {
	result := loadMappingFile(reportMappingPath)
	report := buildReport(result)

	jsonBytes, err := json.Marshal(report)
	if err != nil {
		utils.ErrExit("marshal report: %s", err)
	}
	jsonReport := utils.PrettifyJsonString(string(jsonBytes))

	jsonPath := reportDir + "/report.json"
	if err := os.WriteFile(jsonPath, []byte(jsonReport), 0644); err != nil {
		utils.ErrExit("write %q: %s", jsonPath, err)
	}

	htmlPath := reportDir + "/report.html"
	if err := os.WriteFile(htmlPath, []byte(reportToHtml(report)), 0644); err != nil {
		utils.ErrExit("write %q: %s", htmlPath, err)
	}

	fmt.Println(jsonReport)
	fmt.Printf("reports written to %q and %q\n", jsonPath, htmlPath)
}

func buildReport(result *anonymizer.Result) utils.Report {
	var columns []utils.ColumnSummary
	for col, mapping := range result.FreeText {
		columns = append(columns, utils.ColumnSummary{
			ColumnName: col, ColumnType: "free_text", TokenCount: len(mapping),
		})
	}
	for col, mapping := range result.Categorical {
		columns = append(columns, utils.ColumnSummary{
			ColumnName: col, ColumnType: "categorical", TokenCount: len(mapping),
		})
	}
	sort.Slice(columns, func(i, j int) bool {
		if columns[i].ColumnType != columns[j].ColumnType {
			return columns[i].ColumnType < columns[j].ColumnType
		}
		return columns[i].ColumnName < columns[j].ColumnName
	})

	return utils.Report{
		Summary: utils.Summary{
			MappingFile: reportMappingPath,
			TotalTokens: result.TokenCount(),
			Columns:     columns,
		},
	}
}

func reportToHtml(report utils.Report) string {
	var sb strings.Builder
	sb.WriteString(`<html><head><title>Anonymization Report</title></head><body>`)
	sb.WriteString(`<h1>Anonymization Report</h1>`)
	sb.WriteString(fmt.Sprintf(`<p>Mapping file: %s</p>`, report.Summary.MappingFile))
	sb.WriteString(fmt.Sprintf(`<p>Total distinct tokens: %d</p>`, report.Summary.TotalTokens))
	sb.WriteString(`<table border="1"><tr><th>Column</th><th>Type</th><th>Tokens</th></tr>`)
	for _, col := range report.Summary.Columns {
		sb.WriteString(fmt.Sprintf(`<tr><td>%s</td><td>%s</td><td>%d</td></tr>`,
			col.ColumnName, col.ColumnType, col.TokenCount))
	}
	sb.WriteString(`</table></body></html>`)

	return utils.PrettifyHtmlString(sb.String())
}
