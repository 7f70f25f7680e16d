package config

const (
	defaultLogDir    = "~/.local/share/organize/logs"
	defaultLockDir   = "~/.local/share/organize/locks"
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:  defaultLogDir,
			LockDir: defaultLockDir,
		},
		Organizer: Organizer{
			CreateSubfolders:  true,
			PreserveStructure: false,
			SkipHidden:        true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
