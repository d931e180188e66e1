package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds demo data seeding settings.
type Config struct {
	Users         int   `yaml:"users"          env:"SEEDER_USERS"          env-default:"8"`
	Documents     int   `yaml:"documents"      env:"SEEDER_DOCUMENTS"      env-default:"40"`
	Announcements int   `yaml:"announcements"  env:"SEEDER_ANNOUNCEMENTS"  env-default:"12"`
	Activity      int   `yaml:"activity"       env:"SEEDER_ACTIVITY"       env-default:"60"`
	Revenue       int   `yaml:"revenue"        env:"SEEDER_REVENUE"        env-default:"24"`
	Expenses      int   `yaml:"expenses"       env:"SEEDER_EXPENSES"       env-default:"36"`
	SpreadDays    int   `yaml:"spread_days"    env:"SEEDER_SPREAD_DAYS"    env-default:"60"`
	OwnerID       int64 `yaml:"owner_id"       env:"SEEDER_OWNER_ID"`
	RandSeed      int64 `yaml:"rand_seed"      env:"SEEDER_RAND_SEED"      env-default:"1"`
	DryRun        bool  `yaml:"dry_run"        env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("seeder config: file %s not found", path)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	return &cfg, nil
}
