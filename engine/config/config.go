// Package config reads the server configuration from tusworld.ini.
//
// Values are read from the INI file first; TUS_* environment variables
// (TUS_SERVER_PORT, TUS_STORAGE_URL, ...) override them afterwards.
package config

import (
	"encoding/json"
	"path"
	"strconv"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/go-ini/ini"
	"github.com/pkg/errors"
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/consts"
	"github.com/tusgame/tusworld/engine/twlog"
)

const (
	_DEFAULT_CONFIG_FILE  = "tusworld.ini"
	_DEFAULT_IP           = "0.0.0.0"
	_DEFAULT_PORT         = 14000
	_DEFAULT_HTTP_IP      = "127.0.0.1"
	_DEFAULT_LOG_LEVEL    = "info"
	_DEFAULT_LOG_FILE     = "tusworld.log"
	_DEFAULT_CATALOG_NAME = "classic"
	_DEFAULT_JOURNAL_DB   = "tusworld"
	_ENV_PREFIX           = "TUS_"
)

var (
	configFilePath = _DEFAULT_CONFIG_FILE
	tusWorldConfig *TusWorldConfig
	configLock     sync.Mutex
)

// ServerConfig defines fields of the [server] section
type ServerConfig struct {
	Ip                string `env:"IP"`
	Port              int    `env:"PORT"`
	HTTPIp            string `env:"HTTP_IP"`
	HTTPPort          int    `env:"HTTP_PORT"`
	LogFile           string `env:"LOG_FILE"`
	LogStderr         bool   `env:"LOG_STDERR"`
	LogLevel          string `env:"LOG_LEVEL"`
	GoMaxProcs        int    `env:"GOMAXPROCS"`
	CompressFormat    string `env:"COMPRESS_FORMAT"`
	CompressThreshold int    `env:"COMPRESS_THRESHOLD"`
	RateLimit         float64 `env:"RATE_LIMIT"`
	RateBurst         int    `env:"RATE_BURST"`
	ModeratorLogin    string `env:"MODERATOR_LOGIN"`
	ModeratorPassword string `env:"MODERATOR_PASSWORD"`
}

// StorageConfig defines fields of the [storage] section
type StorageConfig struct {
	Driver     string `env:"DRIVER"` // sqlite or postgres
	Url        string `env:"URL"`
	MaxRetries int    `env:"MAX_RETRIES"`
}

// CatalogConfig defines fields of the [catalog] section
type CatalogConfig struct {
	File string `env:"FILE"` // embedded catalog when empty
	Name string `env:"NAME"`
}

// JournalConfig defines fields of the [journal] section
type JournalConfig struct {
	Type       string `env:"TYPE"` // "", sql, mongodb, redis or redis_cluster
	Url        string `env:"URL"`
	DB         string `env:"DB"`
	Collection string `env:"COLLECTION"`
	Driver     string `env:"DRIVER"` // sql
	StartNodes common.StringSet
}

// TusWorldConfig defines the total config file structure
type TusWorldConfig struct {
	Server  ServerConfig  `envPrefix:"SERVER_"`
	Storage StorageConfig `envPrefix:"STORAGE_"`
	Catalog CatalogConfig `envPrefix:"CATALOG_"`
	Journal JournalConfig `envPrefix:"JOURNAL_"`
}

// SetConfigFile sets the config file path (tusworld.ini by default)
func SetConfigFile(f string) {
	configLock.Lock()
	configFilePath = f
	tusWorldConfig = nil
	configLock.Unlock()
}

// GetConfigDir returns the directory of the config file
func GetConfigDir() string {
	dir, _ := path.Split(configFilePath)
	return dir
}

// GetConfigFilePath returns the config file path
func GetConfigFilePath() string {
	return configFilePath
}

// Get returns the total config, reading it on first use
func Get() *TusWorldConfig {
	configLock.Lock()
	defer configLock.Unlock()
	if tusWorldConfig == nil {
		twlog.Infof("Using config file: %s", configFilePath)
		cfg, err := Read(configFilePath)
		if err != nil {
			twlog.Panicf("read config error: %v", err)
		}
		tusWorldConfig = cfg
	}
	return tusWorldConfig
}

// Reload forces the config to be read again
func Reload() *TusWorldConfig {
	configLock.Lock()
	tusWorldConfig = nil
	configLock.Unlock()

	return Get()
}

// GetServer returns the server config
func GetServer() *ServerConfig {
	return &Get().Server
}

// GetStorage returns the storage config
func GetStorage() *StorageConfig {
	return &Get().Storage
}

// GetCatalog returns the catalog config
func GetCatalog() *CatalogConfig {
	return &Get().Catalog
}

// GetJournal returns the journal config
func GetJournal() *JournalConfig {
	return &Get().Journal
}

// DumpPretty format config to string in pretty format
func DumpPretty(cfg interface{}) string {
	s, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return err.Error()
	}
	return string(s)
}

// Read reads the config file at path, then applies environment overrides
func Read(path string) (*TusWorldConfig, error) {
	iniFile, err := ini.Load(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return parse(iniFile)
}

// Parse reads the config from INI data, then applies environment overrides
func Parse(data []byte) (*TusWorldConfig, error) {
	iniFile, err := ini.Load(data)
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	return parse(iniFile)
}

func parse(iniFile *ini.File) (*TusWorldConfig, error) {
	var config TusWorldConfig
	readServerConfig(&config.Server)
	readStorageConfig(&config.Storage)
	readCatalogConfig(&config.Catalog)
	readJournalConfig(&config.Journal)

	for _, sec := range iniFile.Sections() {
		if sec.Name() == ini.DefaultSection {
			continue
		}
		var err error
		switch strings.ToLower(sec.Name()) {
		case "server":
			err = _readServerConfig(sec, &config.Server)
		case "storage":
			err = _readStorageConfig(sec, &config.Storage)
		case "catalog":
			err = _readCatalogConfig(sec, &config.Catalog)
		case "journal":
			err = _readJournalConfig(sec, &config.Journal)
		default:
			err = errors.Errorf("unknown section: %s", sec.Name())
		}
		if err != nil {
			return nil, err
		}
	}

	if err := env.ParseWithOptions(&config, env.Options{Prefix: _ENV_PREFIX}); err != nil {
		return nil, errors.Wrap(err, "environment")
	}
	if err := validateConfig(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func unknownKey(sec *ini.Section, key *ini.Key) error {
	return errors.Errorf("section %s has unknown key: %s", sec.Name(), key.Name())
}

func readServerConfig(sc *ServerConfig) {
	sc.Ip = _DEFAULT_IP
	sc.Port = _DEFAULT_PORT
	sc.HTTPIp = _DEFAULT_HTTP_IP
	sc.HTTPPort = 0 // pprof not enabled by default
	sc.LogFile = _DEFAULT_LOG_FILE
	sc.LogStderr = true
	sc.LogLevel = _DEFAULT_LOG_LEVEL
	sc.CompressFormat = ""
	sc.CompressThreshold = consts.FRAME_PAYLOAD_LEN_COMPRESS_THRESHOLD
	sc.RateLimit = consts.CLIENT_RATE_LIMIT
	sc.RateBurst = consts.CLIENT_RATE_BURST
}

func _readServerConfig(sec *ini.Section, sc *ServerConfig) error {
	for _, key := range sec.Keys() {
		switch strings.ToLower(key.Name()) {
		case "ip":
			sc.Ip = key.MustString(sc.Ip)
		case "port":
			sc.Port = key.MustInt(sc.Port)
		case "http_ip":
			sc.HTTPIp = key.MustString(sc.HTTPIp)
		case "http_port":
			sc.HTTPPort = key.MustInt(sc.HTTPPort)
		case "log_file":
			sc.LogFile = key.MustString(sc.LogFile)
		case "log_stderr":
			sc.LogStderr = key.MustBool(sc.LogStderr)
		case "log_level":
			sc.LogLevel = key.MustString(sc.LogLevel)
		case "gomaxprocs":
			sc.GoMaxProcs = key.MustInt(sc.GoMaxProcs)
		case "compress_format":
			sc.CompressFormat = key.MustString(sc.CompressFormat)
		case "compress_threshold":
			sc.CompressThreshold = key.MustInt(sc.CompressThreshold)
		case "rate_limit":
			sc.RateLimit = key.MustFloat64(sc.RateLimit)
		case "rate_burst":
			sc.RateBurst = key.MustInt(sc.RateBurst)
		case "moderator_login":
			sc.ModeratorLogin = key.MustString(sc.ModeratorLogin)
		case "moderator_password":
			sc.ModeratorPassword = key.MustString(sc.ModeratorPassword)
		default:
			return unknownKey(sec, key)
		}
	}
	return nil
}

func readStorageConfig(config *StorageConfig) {
	config.Driver = "sqlite"
	config.Url = "tusworld.db"
	config.MaxRetries = consts.STORAGE_MAX_RETRIES
}

func _readStorageConfig(sec *ini.Section, config *StorageConfig) error {
	for _, key := range sec.Keys() {
		switch strings.ToLower(key.Name()) {
		case "driver":
			config.Driver = key.MustString(config.Driver)
		case "url":
			config.Url = key.MustString(config.Url)
		case "max_retries":
			config.MaxRetries = key.MustInt(config.MaxRetries)
		default:
			return unknownKey(sec, key)
		}
	}
	return nil
}

func readCatalogConfig(config *CatalogConfig) {
	config.Name = _DEFAULT_CATALOG_NAME
}

func _readCatalogConfig(sec *ini.Section, config *CatalogConfig) error {
	for _, key := range sec.Keys() {
		switch strings.ToLower(key.Name()) {
		case "file":
			config.File = key.MustString(config.File)
		case "name":
			config.Name = key.MustString(config.Name)
		default:
			return unknownKey(sec, key)
		}
	}
	return nil
}

func readJournalConfig(config *JournalConfig) {
	config.StartNodes = common.StringSet{}
}

func _readJournalConfig(sec *ini.Section, config *JournalConfig) error {
	for _, key := range sec.Keys() {
		name := strings.ToLower(key.Name())
		switch {
		case name == "type":
			config.Type = key.MustString(config.Type)
		case name == "url":
			config.Url = key.MustString(config.Url)
		case name == "db":
			config.DB = key.MustString(config.DB)
		case name == "collection":
			config.Collection = key.MustString(config.Collection)
		case name == "driver":
			config.Driver = key.MustString(config.Driver)
		case strings.HasPrefix(name, "start_nodes_"):
			config.StartNodes.Add(key.MustString(""))
		default:
			return unknownKey(sec, key)
		}
	}

	switch config.Type {
	case "redis":
		if config.DB == "" {
			config.DB = "0"
		}
	case "mongodb":
		if config.DB == "" {
			config.DB = _DEFAULT_JOURNAL_DB
		}
	}
	return nil
}

func validateConfig(config *TusWorldConfig) error {
	sc := &config.Server
	if sc.Port <= 0 {
		return errors.Errorf("invalid server port: %d", sc.Port)
	}
	switch strings.ToLower(sc.CompressFormat) {
	case "", "lz4", "zstd":
	default:
		return errors.Errorf("unknown compress format: %s", sc.CompressFormat)
	}
	if sc.RateLimit < 0 || sc.RateBurst < 0 {
		return errors.Errorf("rate limit must not be negative")
	}
	if sc.RateLimit > 0 && sc.RateBurst == 0 {
		return errors.Errorf("rate_burst must be positive when rate_limit is set")
	}
	if (sc.ModeratorLogin == "") != (sc.ModeratorPassword == "") {
		return errors.Errorf("moderator_login and moderator_password must be set together")
	}

	switch config.Storage.Driver {
	case "sqlite", "postgres":
	default:
		return errors.Errorf("unsupported storage driver: %s", config.Storage.Driver)
	}
	if config.Storage.Url == "" {
		return errors.Errorf("url is not set in storage config")
	}
	if config.Storage.MaxRetries < 0 {
		return errors.Errorf("max_retries must not be negative")
	}

	if config.Catalog.Name == "" {
		return errors.Errorf("catalog name is not set")
	}
	return validateJournalConfig(&config.Journal)
}

func validateJournalConfig(config *JournalConfig) error {
	switch config.Type {
	case "":
		// journal not enabled, it's OK
	case "mongodb":
		if config.Url == "" || config.Collection == "" {
			return errors.Errorf("invalid %s journal config: %s", config.Type, DumpPretty(config))
		}
	case "redis":
		if config.Url == "" {
			return errors.Errorf("invalid %s journal config: %s", config.Type, DumpPretty(config))
		}
		if _, err := strconv.Atoi(config.DB); err != nil {
			return errors.Wrap(err, "redis db must be integer")
		}
	case "redis_cluster":
		if len(config.StartNodes) == 0 {
			return errors.Errorf("must have at least 1 start_nodes for [journal].redis_cluster")
		}
		for s := range config.StartNodes {
			if s == "" {
				return errors.Errorf("start_nodes must not be empty")
			}
		}
	case "sql":
		if config.Driver == "" || config.Url == "" {
			return errors.Errorf("invalid %s journal config: %s", config.Type, DumpPretty(config))
		}
	default:
		return errors.Errorf("unknown journal type: %s", config.Type)
	}
	return nil
}
