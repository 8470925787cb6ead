package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/ranchfarm/ranch-farmer/internal/domain"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	envFile    = ".env"
)

const (
	keyAPIID            = "api_id"
	keyAPIHash          = "api_hash"
	keyFeedAmount       = "feed_amount"
	keyMineAmount       = "mine_amount"
	keySleepTime        = "sleep_time"
	keyAutoUpgrade      = "auto_upgrade"
	keySaveCoin         = "save_coin"
	keyAutoReincarnate  = "auto_reincarnate"
	keyReincarnateLevel = "reincarnate_lvl"
	keyRefID            = "ref_id"
	keyUseProxyFromFile = "use_proxy_from_file"
	keySessionsDir      = "sessions_dir"
	keyUserAgentsFile   = "user_agents_file"
	keyProxiesFile      = "proxies_file"
	keyAPIBaseURL       = "api_base_url"
	keyLogLevel         = "log_level"
)

type Settings struct {
	APIID   int
	APIHash string

	FeedAmount domain.IntRange
	MineAmount domain.IntRange
	SleepTime  domain.IntRange

	AutoUpgrade bool
	// SaveCoin is the balance floor never spent on shop items or upgrades.
	SaveCoin int64

	AutoReincarnate  bool
	ReincarnateLevel int

	RefID            string
	UseProxyFromFile bool

	SessionsDir    string
	UserAgentsFile string
	ProxiesFile    string
	APIBaseURL     string
	LogLevel       string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyAPIID, 1)
	v.SetDefault(keyAPIHash, "")
	v.SetDefault(keyFeedAmount, []int{10, 20})
	v.SetDefault(keyMineAmount, []int{10, 20})
	v.SetDefault(keySleepTime, []int{60, 80})
	v.SetDefault(keyAutoUpgrade, true)
	v.SetDefault(keySaveCoin, 400_000)
	v.SetDefault(keyAutoReincarnate, true)
	v.SetDefault(keyReincarnateLevel, 70)
	v.SetDefault(keyRefID, "")
	v.SetDefault(keyUseProxyFromFile, false)
	v.SetDefault(keySessionsDir, "sessions")
	v.SetDefault(keyUserAgentsFile, "user_agents.toml")
	v.SetDefault(keyProxiesFile, filepath.Join("bot", "config", "proxies.txt"))
	v.SetDefault(keyAPIBaseURL, "https://ranch-api.kuroro.com/api")
	v.SetDefault(keyLogLevel, "info")
}

// Load reads dir/.env into the process environment (existing variables
// win), then dir/config.toml, then the environment itself.
func Load(v *viper.Viper, dir string) (Settings, error) {
	if v == nil {
		v = viper.New()
	}

	if err := godotenv.Load(filepath.Join(dir, envFile)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Settings{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	setDefaults(v)
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(dir)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Settings{}, fmt.Errorf("read config file: %w", err)
		}
	}

	settings := Settings{
		APIID:            v.GetInt(keyAPIID),
		APIHash:          strings.TrimSpace(v.GetString(keyAPIHash)),
		AutoUpgrade:      v.GetBool(keyAutoUpgrade),
		SaveCoin:         v.GetInt64(keySaveCoin),
		AutoReincarnate:  v.GetBool(keyAutoReincarnate),
		ReincarnateLevel: v.GetInt(keyReincarnateLevel),
		RefID:            strings.TrimSpace(v.GetString(keyRefID)),
		UseProxyFromFile: v.GetBool(keyUseProxyFromFile),
		SessionsDir:      v.GetString(keySessionsDir),
		UserAgentsFile:   v.GetString(keyUserAgentsFile),
		ProxiesFile:      v.GetString(keyProxiesFile),
		APIBaseURL:       strings.TrimRight(v.GetString(keyAPIBaseURL), "/"),
		LogLevel:         v.GetString(keyLogLevel),
	}

	var err error
	if settings.FeedAmount, err = rangeSetting(v, keyFeedAmount); err != nil {
		return Settings{}, err
	}
	if settings.MineAmount, err = rangeSetting(v, keyMineAmount); err != nil {
		return Settings{}, err
	}
	if settings.SleepTime, err = rangeSetting(v, keySleepTime); err != nil {
		return Settings{}, err
	}

	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}

	return settings, nil
}

func (s Settings) Validate() error {
	var errs []error
	if s.SaveCoin < 0 {
		errs = append(errs, fmt.Errorf("%s must not be negative", keySaveCoin))
	}
	if s.ReincarnateLevel < 0 {
		errs = append(errs, fmt.Errorf("%s must not be negative", keyReincarnateLevel))
	}
	if s.APIBaseURL == "" {
		errs = append(errs, fmt.Errorf("%s is required", keyAPIBaseURL))
	}
	if s.SleepTime.Min < 1 {
		errs = append(errs, fmt.Errorf("%s must sleep at least one second", keySleepTime))
	}

	return errors.Join(errs...)
}

// RequireMessenger checks the settings needed to open messenger sessions.
func (s Settings) RequireMessenger() error {
	if s.APIID <= 1 || s.APIHash == "" {
		return errors.New("API_ID and API_HASH must be set in .env or config.toml")
	}

	return nil
}

func rangeSetting(v *viper.Viper, key string) (domain.IntRange, error) {
	values, err := parseIntList(v.Get(key))
	if err != nil {
		return domain.IntRange{}, fmt.Errorf("%s: %w", key, err)
	}
	if len(values) != 2 {
		return domain.IntRange{}, fmt.Errorf("%s: want two values, got %d", key, len(values))
	}

	r := domain.IntRange{Min: values[0], Max: values[1]}
	if err := r.Validate(); err != nil {
		return domain.IntRange{}, fmt.Errorf("%s: %w", key, err)
	}

	return r, nil
}

// parseIntList accepts TOML arrays as well as env strings such as "[10,20]".
func parseIntList(raw any) ([]int, error) {
	text, ok := raw.(string)
	if !ok {
		return cast.ToIntSliceE(raw)
	}

	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "[")
	text = strings.TrimSuffix(text, "]")
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	parts := strings.Split(text, ",")
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", part, err)
		}
		values = append(values, n)
	}

	return values, nil
}
