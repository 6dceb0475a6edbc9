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
	"os/signal"
	"regexp"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tevino/abool/v2"
	"github.com/vbauerster/mpb/v7"
	"github.com/vbauerster/mpb/v7/decor"

	"github.com/dataveil/dataveil/src/anonymizer"
	"github.com/dataveil/dataveil/src/srcdb"
	"github.com/dataveil/dataveil/src/table"
	"github.com/dataveil/dataveil/src/tagger"
	"github.com/dataveil/dataveil/src/utils"
)

var (
	inputFilePath      string
	outputFilePath     string
	mappingFilePath    string
	delimiter          string
	freeTextColumns    []string
	categoricalColumns []string

	taggerURL         string
	modelName         string
	labelList         []string
	labelsToAnonymize []string

	sourceDBType string
	sourceDBUri  string
	sourceTable  string
)

// interrupted is set by the signal watcher; the anonymize loop checks it
// between cells and exits before any output file is written.
var interrupted = abool.New()

var anonymizeCmd = &cobra.Command{
	Use:   "anonymize",
	Short: "Anonymize the free-text and categorical columns of a table",
	Long: `Reads a table from a CSV file or a source database, replaces sensitive data
with content-derived tokens and writes the anonymized table plus the
token mapping file needed by the reverse command. Keep the mapping file
as secret as the original data: it contains every original value.`,

	Run: func(cmd *cobra.Command, args []string) {
		anonymize()
	},
}

func init() {
	rootCmd.AddCommand(anonymizeCmd)

	anonymizeCmd.Flags().StringVar(&inputFilePath, "input", "",
		"path of the CSV file to anonymize (ignored when a source database is given)")
	anonymizeCmd.Flags().StringVar(&outputFilePath, "output", "",
		"path of the anonymized CSV file to write")
	anonymizeCmd.Flags().StringVar(&mappingFilePath, "mapping-file", "",
		"path of the JSON mapping file to write (required for de-anonymization)")
	anonymizeCmd.Flags().StringVar(&delimiter, "delimiter", ",",
		"single-character CSV field delimiter")
	anonymizeCmd.Flags().StringSliceVar(&freeTextColumns, "free-text-columns", nil,
		"names of columns anonymized via entity tagging")
	anonymizeCmd.Flags().StringSliceVar(&categoricalColumns, "categorical-columns", nil,
		"names of columns anonymized as whole values")

	anonymizeCmd.Flags().StringVar(&taggerURL, "tagger-url", "http://127.0.0.1:8001",
		"base URL of the entity tagger sidecar")
	anonymizeCmd.Flags().StringVar(&modelName, "model-name", "",
		"tagger model name (default dslim/bert-base-NER)")
	anonymizeCmd.Flags().StringSliceVar(&labelList, "label-list", nil,
		"ordered label list of the tagger model")
	anonymizeCmd.Flags().StringSliceVar(&labelsToAnonymize, "labels-to-anonymize", nil,
		"subset of the label list whose spans get anonymized")

	anonymizeCmd.Flags().StringVar(&sourceDBType, "source-db-type", "",
		"read the input table from a database instead of a CSV file: postgres, mysql")
	anonymizeCmd.Flags().StringVar(&sourceDBUri, "source-db-uri", "",
		"connection URI of the source database")
	anonymizeCmd.Flags().StringVar(&sourceTable, "source-table", "",
		"name of the database table to anonymize")

	anonymizeCmd.MarkFlagRequired("output")
	anonymizeCmd.MarkFlagRequired("mapping-file")
}

func anonymize() {
	watchForInterrupt()

	t := loadInputTable()
	if verboseMode {
		fmt.Printf("input table: %d rows, columns %v\n", t.RowCount(), t.ColumnNames())
	}
	cfg := taggerConfig()

	anon, err := anonymizer.New(tagger.NewHTTPTagger(taggerURL, cfg.ModelName), cfg)
	if err != nil {
		utils.ErrExit("create anonymizer: %s", err)
	}

	req := anonymizer.Request{
		FreeTextColumns:    freeTextColumns,
		CategoricalColumns: categoricalColumns,
		RegexOverrides:     regexOverridesFromConfig(),
	}

	progressContainer := mpb.New()
	totalCells := int64(t.RowCount() * len(freeTextColumns))
	var bar *mpb.Bar
	if totalCells > 0 {
		bar = progressContainer.AddBar(totalCells,
			mpb.PrependDecorators(
				decor.Name("anonymizing"),
			),
			mpb.AppendDecorators(
				decor.Percentage(decor.WCSyncSpace),
			),
		)
		anon.SetProgress(func(done, total int) {
			if interrupted.IsSet() {
				bar.Abort(true)
				utils.ErrExit("anonymization interrupted, no output written")
			}
			bar.Increment()
		})
	}

	anonymized, result, err := anon.Anonymize(t, req)
	if err != nil {
		if bar != nil {
			bar.Abort(true)
		}
		color.Red("Anonymization failed ❌")
		utils.ErrExit("anonymize table: %s", err)
	}
	progressContainer.Wait()

	log.Tracef("anonymization result: %s", spew.Sdump(result))

	if err := table.WriteCSV(anonymized, outputFilePath, delimiter); err != nil {
		utils.ErrExit("write anonymized table: %s", err)
	}
	saveMappingFile(result)

	color.Green("Anonymization complete ✅")
}

func loadInputTable() *table.Table {
	if sourceDBType != "" {
		if sourceTable == "" {
			utils.ErrExit("--source-table is required with --source-db-type")
		}
		source := &srcdb.Source{DBType: sourceDBType, Uri: sourceDBUri}
		db, err := srcdb.NewSourceDB(source)
		if err != nil {
			utils.ErrExit("%s", err)
		}
		if err := db.Connect(); err != nil {
			utils.ErrExit("connect to source database: %s", err)
		}
		defer db.Disconnect()

		t, err := db.ReadTable(sourceTable)
		if err != nil {
			utils.ErrExit("read source table: %s", err)
		}
		return t
	}

	if inputFilePath == "" {
		utils.ErrExit("either --input or --source-db-type must be given")
	}
	if !utils.FileOrFolderExists(inputFilePath) {
		utils.ErrExit("input file %q doesn't exist", inputFilePath)
	}
	t, err := table.ReadCSV(inputFilePath, delimiter)
	if err != nil {
		utils.ErrExit("read input file: %s", err)
	}
	return t
}

func taggerConfig() tagger.Config {
	cfg := tagger.DefaultConfig()
	if modelName != "" {
		cfg.ModelName = modelName
	}
	if len(labelList) > 0 {
		cfg.LabelList = labelList
	}
	if len(labelsToAnonymize) > 0 {
		cfg.LabelsToAnonymize = labelsToAnonymize
	}
	return cfg
}

// regexOverridesFromConfig compiles the per-column override patterns from the
// config file, e.g.:
//
//	regex_overrides:
//	  notes:
//	    - '[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+'
func regexOverridesFromConfig() map[string][]*regexp.Regexp {
	raw := viper.GetStringMapStringSlice("regex_overrides")
	if len(raw) == 0 {
		return nil
	}

	overrides := make(map[string][]*regexp.Regexp, len(raw))
	for col, patterns := range raw {
		for _, pattern := range patterns {
			re, err := regexp.Compile(pattern)
			if err != nil {
				utils.ErrExit("invalid regex override %q for column %q: %s", pattern, col, err)
			}
			overrides[col] = append(overrides[col], re)
		}
		log.Infof("using %d regex override(s) for column %q", len(overrides[col]), col)
	}
	return overrides
}

func saveMappingFile(result *anonymizer.Result) {
	bytes, err := json.MarshalIndent(result, "", "\t")
	if err != nil {
		utils.ErrExit("marshal mapping: %s", err)
	}
	if err := os.WriteFile(mappingFilePath, bytes, 0600); err != nil {
		utils.ErrExit("write mapping file: %s", err)
	}
	log.Infof("stored token mapping at %q", mappingFilePath)
}

func watchForInterrupt() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	go func() {
		<-sigChan
		interrupted.Set()
	}()
}
