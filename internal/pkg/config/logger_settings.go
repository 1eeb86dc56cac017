package config

// Log level constants
const (
	LogLevelInfo     = "info"
	LogLevelDebug    = "debug"
	LogLevelError    = "error"
	LogLevelWarning  = "warning"
	LogLevelCritical = "critical"
)

// Log type constants
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Rotation defaults for the file logger. The path sits next to the SQLite file,
// inside the directory containers mount as a volume.
const (
	DefaultLogFilePath   = "data/logs/litios.log"
	DefaultLogMaxSizeMB  = 10
	DefaultLogMaxBackups = 3
	DefaultLogMaxAgeDays = 28
)

// LoggerSettings selects console or rotated file logging. The rotation fields are
// required only for the file logger.
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=info debug error warning critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	FilePath   string `mapstructure:"file_path" validate:"required_if=LogType file"`
	MaxSize    int    `mapstructure:"max_size" validate:"required_if=LogType file,min=0,max=100"`
	MaxBackups int    `mapstructure:"max_backups" validate:"required_if=LogType file,min=0,max=10"`
	MaxAge     int    `mapstructure:"max_age" validate:"required_if=LogType file,min=0,max=365"`
}

// DefaultLoggerSettings returns console logging at info level with the file rotation defaults filled in.
func DefaultLoggerSettings() LoggerSettings {
	return LoggerSettings{
		LogLevel:   LogLevelInfo,
		LogType:    LogTypeConsole,
		FilePath:   DefaultLogFilePath,
		MaxSize:    DefaultLogMaxSizeMB,
		MaxBackups: DefaultLogMaxBackups,
		MaxAge:     DefaultLogMaxAgeDays,
	}
}

// Validate checks that all fields in LoggerSettings are valid
func (s *LoggerSettings) Validate() error {
	return validateSettings("LoggerSettings", s)
}
