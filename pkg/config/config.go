package config

// this holds the resolved configuration values from CLI
var (
	DataDir   string // directory containing the flat CSV tables
	LogLevel  string // sets the log level (zap log level values)
	LogFormat string // text vs json
	LogConfig string // path to log config file
	OutFile   string // output file for exported view models ("" means stdout)
	Pretty    bool   // if true, exported JSON is indented
	Watch     bool   // if true, re-export when the data dir changes
)
