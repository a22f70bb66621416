package config

// Default values for every key.
const (
	DefaultInputsDir     = ""
	DefaultAnswersFile   = ""
	DefaultRunRepeat     = 1
	DefaultOutputFormat  = "table"
	DefaultOutputNoColor = false
	DefaultLoggingLevel  = "info"
	DefaultLoggingJSON   = false
	DefaultOTLPEndpoint  = ""
	DefaultOTLPInsecure  = false
	DefaultMetricsOut    = ""
)

// MaxRepeat bounds run.repeat.
const MaxRepeat = 10_000
