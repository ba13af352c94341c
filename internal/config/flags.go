package config

import (
	"github.com/spf13/pflag"
)

const (
	flagConfig         = "config"
	flagDBPath         = "db"
	flagLogLevel       = "log-level"
	flagLogPretty      = "log-pretty"
	flagPasswordLength = "length"
)

// RegisterFlags adds the configuration flags to fs.
//
//	-c, --config string   path to a JSON config file
//	    --db string       path to the vault database
//	    --log-level       trace, debug, info, warn or error
//	    --log-pretty      human-readable log output
//	    --length uint     default generated password length
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(flagConfig, "c", "", "path to a JSON config file")
	fs.String(flagDBPath, "", "path to the vault database (default manager.db)")
	fs.String(flagLogLevel, "", "log level: trace, debug, info, warn, error (default info)")
	fs.Bool(flagLogPretty, true, "human-readable log output")
	fs.Uint(flagPasswordLength, 0, "default generated password length (default 16)")
}

func configPath(fs *pflag.FlagSet) string {
	if fs == nil || fs.Lookup(flagConfig) == nil {
		return ""
	}
	path, _ := fs.GetString(flagConfig)
	return path
}

// applyFlags copies the flags the user actually set into cfg.
func applyFlags(cfg *Config, fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}

	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case flagDBPath:
			cfg.DBPath, err = fs.GetString(flagDBPath)
		case flagLogLevel:
			cfg.LogLevel, err = fs.GetString(flagLogLevel)
		case flagLogPretty:
			cfg.LogPretty, err = fs.GetBool(flagLogPretty)
		case flagPasswordLength:
			cfg.DefaultPasswordLength, err = fs.GetUint(flagPasswordLength)
		}
	})
	return err
}
