package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/danielshue/notebook-automation/pkg/catalog"
	"github.com/danielshue/notebook-automation/pkg/templates"
)

var cfgFile string

// InitConfig wires viper to the na config file and environment.
func InitConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configDir := filepath.Join(home, ".config", "na")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("NA")

	// Set defaults
	viper.SetDefault("vault_root", ".")
	viper.SetDefault("data_dir", filepath.Join(os.Getenv("HOME"), ".local", "share", "na"))
	viper.SetDefault("templates_file", "")

	if err := viper.ReadInConfig(); err == nil {
		// Do not print this in normal operation, it's noisy.
		// fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// VaultRoot returns the configured content tree root.
func VaultRoot() string {
	return viper.GetString("vault_root")
}

// LoadTemplates loads the template store configured for this run. Zero
// templates is fatal; the caller aborts before any writes.
func LoadTemplates() (*templates.Store, error) {
	return templates.Load(viper.GetString("templates_file"))
}

// OpenCatalog opens the vault catalog under the data directory.
func OpenCatalog() (*catalog.Catalog, error) {
	dataDir := viper.GetString("data_dir")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}
	return catalog.Open(filepath.Join(dataDir, "catalog.db"))
}

// AddGlobalFlags registers the flags shared by every subcommand.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/na/config.yaml)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}
