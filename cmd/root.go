package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/muffix/pyfred-cli/workflow"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "pyfred",
	Short:         "Build Python workflows for Alfred with ease",
	Long: `Build Python workflows for Alfred with ease.

pyfred scaffolds a new script-filter workflow, links it into Alfred so it
shows up in the preferences while you develop, vendors the Python
dependencies into the workflow itself, and packages everything into an
.alfredworkflow file for distribution.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. It is the single non-zero exit point of the
// program.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.pyfred.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			log.Println("cannot determine home directory:", err)
		} else {
			viper.AddConfigPath(home)
			viper.SetConfigName(".pyfred")
		}
	}

	viper.SetEnvPrefix("pyfred")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.Println("using config file:", viper.ConfigFileUsed())
	}

	workflow.SetDebug(viper.GetBool("debug"))
}

// requireProjectRoot returns the current directory if it is the root of a
// scaffolded workflow project.
func requireProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if !workflow.IsProjectRoot(dir) {
		return "", fmt.Errorf("cannot find workflow; run this command from the root of the project")
	}
	return dir, nil
}
