// Package args holds the options shared by all sixbit commands.
package args

// CallbackOption is invoked by the flags parser with the raw option value
type CallbackOption func(string) error

// General holds the options shared by all the commands
var General struct {
	Verbose               []bool         `short:"v" long:"verbose"            env:"SIXBIT_VERBOSITY"          yaml:"verbose"          description:"Show verbose debug information"`
	ConfigurationFile     CallbackOption `short:"c" long:"config"             env:"SIXBIT_CONFIG"             yaml:"-"                description:"Configuration file (yaml-formatted)" no-ini:"true"`
	ConfigurationFilePath string         `yaml:"-"`
	LogFile               *string        `short:"l" long:"log-file"           env:"SIXBIT_LOG_FILE"           yaml:"logfile"          description:"Log file (file will be appended). Empty or - logs to stderr."`
	LogFormat             string         `short:"f" long:"log-format"         env:"SIXBIT_LOG_FORMAT"         yaml:"logformat"        description:"Log file format (json or text, default text)." choice:"text" choice:"json"`
	LogColor              string         `short:"C" long:"log-color"          env:"SIXBIT_LOG_COLOR"          yaml:"logcolor"         description:"Should the log output be colored? yes, no or auto (default)" choice:"yes" choice:"no" choice:"true" choice:"false" choice:"auto"`
	LogFullTimestamp      bool           `          long:"log-full-timestamp" env:"SIXBIT_LOG_FULL_TIMESTAMP" yaml:"logfulltimestamp" description:"Display full timestamp in logs."`
	LogReportCaller       bool           `          long:"log-report-caller"  env:"SIXBIT_LOG_REPORT_CALLER"  yaml:"logreportcaller"  description:"If you wish to add the calling method as a field."`
}
