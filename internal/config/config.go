package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/Tiliavir/billable-hours/internal/model"
)

// FileName is the configuration file inside the data directory.
const FileName = "config.yaml"

// DefaultSiteName is the site used when none is configured or requested.
const DefaultSiteName = "default"

// Config is the root configuration for bhr, stored in ~/.bhr/config.yaml.
type Config struct {
	// DefaultSite names the site used when a command is given no --site.
	DefaultSite string `yaml:"default_site"`
	// Sites maps a site name to its billing configuration.
	Sites map[string]model.BillingConfig `yaml:"sites"`
}

// DefaultBilling returns the billing configuration written on first run.
func DefaultBilling() model.BillingConfig {
	return model.BillingConfig{
		WeekdayMinimumHours:       8,
		SaturdayMinimumHours:      4,
		SundayMinimumHours:        4,
		PublicHolidayMinimumHours: 8,
		RainDayEnabled:            true,
		RainDayMinimumHours:       4,
		BreakdownRuleEnabled:      true,
	}
}

func defaultConfig() Config {
	return Config{
		DefaultSite: DefaultSiteName,
		Sites:       map[string]model.BillingConfig{DefaultSiteName: DefaultBilling()},
	}
}

// configTemplate is the annotated config written on first run.
const configTemplate = `# bhr configuration
#
# Each site carries its own billing rules. All hour values are decimal hours.
# Minimums are never clamped: a negative minimum simply never applies.

# Site used when a command is run without --site.
default_site: default

sites:
  default:
    # Minimum billable hours per day type. A session shorter than the
    # minimum is billed at the minimum.
    weekday_minimum_hours: 8
    saturday_minimum_hours: 4
    sunday_minimum_hours: 4
    public_holiday_minimum_hours: 8

    # Rain days / inclement weather. When enabled, a weather-affected
    # session is billed at no less than rain_day_minimum_hours instead of
    # the day-type minimum.
    rain_day_enabled: true
    rain_day_minimum_hours: 4

    # Breakdowns. When enabled, a session flagged as a breakdown is billed
    # at exactly the hours recorded. When disabled the breakdown flag is
    # ignored and the usual weather and day rules apply.
    breakdown_rule_enabled: true
`

// FilePath returns the path of the config file inside base.
func FilePath(base string) string {
	return filepath.Join(base, FileName)
}

// Load reads the config at path, creating it with annotated defaults on
// first run.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if writeErr := writeDefault(path); writeErr != nil {
			slog.Warn("could not create config file", "path", path, "error", writeErr)
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	// A file without sites still yields a usable default site.
	if len(cfg.Sites) == 0 {
		cfg.Sites = map[string]model.BillingConfig{DefaultSiteName: DefaultBilling()}
	}
	if cfg.DefaultSite == "" {
		if len(cfg.Sites) == 1 {
			for name := range cfg.Sites {
				cfg.DefaultSite = name
			}
		} else {
			cfg.DefaultSite = DefaultSiteName
		}
	}
	return cfg, nil
}

// Site returns the billing configuration for name; an empty name selects the
// default site.
func (c Config) Site(name string) (model.BillingConfig, error) {
	if name == "" {
		name = c.DefaultSite
	}
	bc, ok := c.Sites[name]
	if !ok {
		return model.BillingConfig{}, fmt.Errorf("unknown site %q (configured: %v)", name, c.SiteNames())
	}
	return bc, nil
}

// SiteNames returns the configured site names in sorted order.
func (c Config) SiteNames() []string {
	names := make([]string, 0, len(c.Sites))
	for name := range c.Sites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Warnings lists configuration values that are accepted but almost
// certainly wrong, such as negative minimums.
func (c Config) Warnings() []string {
	var out []string
	if _, ok := c.Sites[c.DefaultSite]; !ok {
		out = append(out, fmt.Sprintf("default_site %q is not configured", c.DefaultSite))
	}
	for _, name := range c.SiteNames() {
		bc := c.Sites[name]
		fields := []struct {
			key string
			val float64
		}{
			{"weekday_minimum_hours", bc.WeekdayMinimumHours},
			{"saturday_minimum_hours", bc.SaturdayMinimumHours},
			{"sunday_minimum_hours", bc.SundayMinimumHours},
			{"public_holiday_minimum_hours", bc.PublicHolidayMinimumHours},
			{"rain_day_minimum_hours", bc.RainDayMinimumHours},
		}
		for _, f := range fields {
			if f.val < 0 {
				out = append(out, fmt.Sprintf("site %q: %s is negative (%g)", name, f.key, f.val))
			}
		}
	}
	return out
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
