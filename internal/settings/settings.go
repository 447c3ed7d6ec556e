package settings

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Prefix 是所有环境变量的前缀，例如 CONNREG_DRIVER。
const Prefix = "CONNREG"

// Settings is the configuration of the connreg command.
type Settings struct {
	// Driver is the database driver: "mongodb" or "mysql"
	Driver string `envconfig:"DRIVER" default:"mongodb"`

	// ConnectTimeout bounds how long the command waits for all resolutions
	ConnectTimeout time.Duration `envconfig:"CONNECT_TIMEOUT" default:"10s"`

	// MongoDB settings
	MongoDefaultDatabase string `envconfig:"MONGO_DEFAULT_DB" default:"test"`

	// MySQL settings
	MySQLDialTimeout  time.Duration `envconfig:"MYSQL_DIAL_TIMEOUT" default:"5s"`
	MySQLQueryTimeout time.Duration `envconfig:"MYSQL_QUERY_TIMEOUT" default:"5s"`

	// Logging settings
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

// NewSettings loads settings by reading environment variables.
func NewSettings() (*Settings, error) {
	s := new(Settings)
	if err := envconfig.Process(Prefix, s); err != nil {
		return nil, err
	}
	return s, nil
}
