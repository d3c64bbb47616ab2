package globals

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"bachelorette-db/lib/configutil"
	configsqlite "bachelorette-db/lib/configutil/sqlite"
	"bachelorette-db/lib/restyutil"
	"bachelorette-db/lib/scrapers/wikipedia"
	"bachelorette-db/services/contestants"
	"bachelorette-db/services/contestants/roster"
)

const ConfigName = "bachelorette.json5"

type SourceConfig struct {
	UrlTemplate       string  `json:"url_template"`
	TableSelector     string  `json:"table_selector"`
	UserAgent         string  `json:"user_agent"`
	TimeoutSeconds    int     `json:"timeout_seconds"`
	RequestsPerSecond float64 `json:"requests_per_second"`
}

type Config struct {
	Database configsqlite.Struct     `json:"database"`
	Source   SourceConfig            `json:"source"`
	Seasons  contestants.SeasonRange `json:"seasons"`
	// a pointer so that an explicit 0 disables the pause
	PauseSeconds *float64 `json:"pause_seconds"`
	// season number -> table format name, added on top of the built in formats
	Formats map[string]string `json:"formats"`
}

func DefaultConfig() Config {
	pause := 1.0
	return Config{
		Database: configsqlite.Struct{
			File: "<dev_state>/bachelorette.db",
		},
		Source: SourceConfig{
			UrlTemplate:    wikipedia.DefaultUrlTemplate,
			TableSelector:  wikipedia.DefaultTableSelector,
			UserAgent:      wikipedia.DefaultUserAgent,
			TimeoutSeconds: 30,
		},
		Seasons: contestants.SeasonRange{
			First: 1,
			Last:  roster.LastKnownSeason,
		},
		PauseSeconds: &pause,
	}
}

// LoadConfig reads `path` if it is given, otherwise bachelorette.json5 is
// searched for upwards from the working directory. a missing config file
// yields the default config.
func LoadConfig(path string) (Config, error) {
	var config Config
	var err error
	if path != "" {
		config, err = configutil.ReadConfig[Config](path)
		if err != nil {
			return Config{}, fmt.Errorf("read config '%s': %w", path, err)
		}
	} else {
		config, path, err = configutil.ReadRecursively[Config](ConfigName)
		if os.IsNotExist(err) {
			slog.Debug("no config file found, using defaults")
			return DefaultConfig(), nil
		}
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	slog.Debug("read config", "path", path)

	// mergo treats an explicit 0 as unset, so the pause is restored after merging
	var pause *float64
	if config.PauseSeconds != nil {
		value := *config.PauseSeconds
		pause = &value
	}
	config, err = configutil.WithDefaults(config, DefaultConfig())
	if err != nil {
		return Config{}, err
	}
	if pause != nil {
		config.PauseSeconds = pause
	}
	return config, nil
}

func (c Config) Pause() time.Duration {
	if c.PauseSeconds == nil {
		return 0
	}
	return time.Duration(*c.PauseSeconds * float64(time.Second))
}

func (c Config) FormatTable() (roster.FormatTable, error) {
	table := roster.DefaultFormats()
	for key, name := range c.Formats {
		season, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("formats: invalid season '%s'", key)
		}
		format, err := roster.FormatByName(name)
		if err != nil {
			return nil, fmt.Errorf("formats: season %d: %w", season, err)
		}
		table = table.With(season, format)
	}
	return table, nil
}

// Client creates the wikipedia client, when `verbose` is set every fetched
// page is dumped under <dev_state>/resty/wikipedia.
func (c Config) Client(verbose bool) (*wikipedia.Client, error) {
	opts := wikipedia.ClientOptions{
		UrlTemplate:       c.Source.UrlTemplate,
		TableSelector:     c.Source.TableSelector,
		UserAgent:         c.Source.UserAgent,
		Timeout:           time.Duration(c.Source.TimeoutSeconds) * time.Second,
		RequestsPerSecond: c.Source.RequestsPerSecond,
	}
	if verbose {
		output, err := restyutil.NewFilesystemOutput("<dev_state>/resty/wikipedia")
		if err != nil {
			return nil, err
		}
		opts.Output = output
	}
	return wikipedia.NewClient(opts), nil
}

func (c Config) Service(verbose bool) (contestants.Service, error) {
	formats, err := c.FormatTable()
	if err != nil {
		return contestants.Service{}, err
	}
	client, err := c.Client(verbose)
	if err != nil {
		return contestants.Service{}, err
	}
	return contestants.NewService(contestants.Options{
		Source: client,
		Store:  c.Database,
		Normalizer: roster.Normalizer{
			Formats:   formats,
			Overrides: roster.KnownOverrides,
		},
		Pause: c.Pause(),
	}), nil
}
