package logging

import (
	"sync"
)

var (
	instance  *Logger
	once      sync.Once
	mu        sync.Mutex
	logConfig *Config
)

// InitLogger sets the logging configuration used by the global logger.
// It should be called before any GetGlobalLogger usage; callers that skip
// it get a stdout-only logger at info level.
func InitLogger(config *Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	logConfig = config
	return nil
}

// GetGlobalLogger returns the singleton logger instance, initializing it on
// first use with the configuration provided via InitLogger.
func GetGlobalLogger() *Logger {
	once.Do(func() {
		mu.Lock()
		defer mu.Unlock()

		if logConfig == nil {
			logConfig = DefaultConfig()
		}

		var err error
		instance, err = NewLogger(logConfig)
		if err != nil {
			panic("failed to initialize logger: " + err.Error())
		}
	})

	return instance
}
