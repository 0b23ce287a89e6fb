package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"go.trai.ch/limbus/internal/core/domain"
	"go.trai.ch/zerr"
)

// Runtime holds process-level knobs read from the environment.
type Runtime struct {
	// CatalogTimeout bounds catalog and API requests.
	CatalogTimeout time.Duration `env:"LIMBUS_CATALOG_TIMEOUT" envDefault:"30s"`
	// DownloadTimeout bounds archive and font downloads.
	DownloadTimeout time.Duration `env:"LIMBUS_DOWNLOAD_TIMEOUT" envDefault:"300s"`
	UserAgent       string        `env:"LIMBUS_USER_AGENT" envDefault:"Limbus Launcher"`
	// TempDir is where archives are downloaded and extracted. Empty means os.TempDir.
	TempDir string `env:"LIMBUS_TEMP_DIR"`
	// SettingsFile overrides the settings location under the user config dir.
	SettingsFile string `env:"LIMBUS_SETTINGS_FILE"`
	ReleasesURL  string `env:"LIMBUS_RELEASES_URL" envDefault:"https://api.github.com/repos/kimght/LimbusLocalizationManager/releases/latest"`
}

// LoadRuntime parses the environment into a Runtime.
func LoadRuntime() (*Runtime, error) {
	cfg, err := env.ParseAs[Runtime]()
	if err != nil {
		return nil, domain.Classify(domain.ErrConfiguration, zerr.Wrap(err, domain.ErrRuntimeConfigFailed.Error()))
	}
	return &cfg, nil
}
