package config

import (
	"errors"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"oficina/internal/domain/entities"
)

// Config is the whole application configuration: where the data lives plus
// the shop identification block consumed by the receipt view. It is loaded
// once at startup and passed around by value; nothing mutates it in place.
type Config struct {
	DBPath      string
	BackupDir   string
	MaxBackups  int
	ReceiptsDir string
	Company     entities.CompanyInfo
}

const configFile = "config.json"

func setDefaults() {
	viper.SetDefault("db_path", "oficina.db")
	viper.SetDefault("backup_dir", "Backups")
	viper.SetDefault("max_backups", 30)
	viper.SetDefault("receipts_dir", "PDFs")
	viper.SetDefault("company.name", "ELETRÔNICA EXEMPLO")
	viper.SetDefault("company.address", "Rua Exemplo, 123 - Centro - Cidade/UF")
	viper.SetDefault("company.phone", "(00) 0000-0000")
	viper.SetDefault("company.tax_id", "00.000.000/0001-00")
}

// Load reads config.json from the working directory (or the config/
// subdirectory), falling back to defaults when the file is absent. A missing
// file is not an error; a malformed one is.
func Load() (Config, error) {
	configName := "config"
	if v := os.Getenv("CONFIG_NAME"); v != "" {
		configName = v
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("config")
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
		log.Debug("no config file found, using defaults")
	}

	cfg := Config{
		DBPath:      viper.GetString("db_path"),
		BackupDir:   viper.GetString("backup_dir"),
		MaxBackups:  viper.GetInt("max_backups"),
		ReceiptsDir: viper.GetString("receipts_dir"),
		Company: entities.CompanyInfo{
			Name:    viper.GetString("company.name"),
			Address: viper.GetString("company.address"),
			Phone:   viper.GetString("company.phone"),
			TaxID:   viper.GetString("company.tax_id"),
		},
	}
	return cfg, nil
}

// SaveCompany persists the edited shop identification back to config.json.
// Subsequent Load calls (and the next startup) pick it up; already-loaded
// Config values are unaffected, callers reload explicitly.
func SaveCompany(c entities.CompanyInfo) error {
	viper.Set("company.name", c.Name)
	viper.Set("company.address", c.Address)
	viper.Set("company.phone", c.Phone)
	viper.Set("company.tax_id", c.TaxID)
	return viper.WriteConfigAs(configFile)
}
