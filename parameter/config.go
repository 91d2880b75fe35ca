package parameter

// Default file locations, relative to the working directory
const (
	DefaultConfigPath = "data/elements.yaml"
	DefaultAssetDir   = "images"
)

// Environment variables honored as flag defaults
const (
	EnvConfigPath = "ALCHEMY_CONFIG"
	EnvAssetDir   = "ALCHEMY_ASSETS"
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "alchemy.log"
	MaxLogSize  = 10 * 1024 * 1024
)
