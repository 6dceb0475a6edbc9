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
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dataveil/dataveil/src/utils"
)

var (
	cfgFile     string
	logLevel    string
	verboseMode bool
)

var rootCmd = &cobra.Command{
	Use:   "dataveil",
	Short: "A tool to reversibly anonymize tabular data",
	Long: `dataveil replaces sensitive spans in free-text columns and whole values in
categorical columns with content-derived tokens, and writes a mapping file
that de-anonymizes the data later. Entity detection relies on an external
NER tagger and is best effort; do not treat the output as a compliance
guarantee.`,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		utils.SetLogLevel(logLevel)
	},

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default is $HOME/.dataveil.yaml)")

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "INFO",
		"Logging levels: TRACE, DEBUG, INFO, WARN")

	rootCmd.PersistentFlags().BoolVar(&verboseMode, "verbose", false,
		"enable verbose mode for the console output")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".dataveil")
	}

	viper.SetEnvPrefix("dataveil")
	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
