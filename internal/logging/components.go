package logging

// Component constants for structured logging
const (
	ComponentStartup  = "startup"
	ComponentShutdown = "shutdown"
	ComponentConvert  = "convert"
	ComponentDither   = "dither"
	ComponentCodec    = "codec"
	ComponentServer   = "server"
	ComponentDatabase = "database"
	ComponentConfig   = "config"
)
