package logger

import "go.uber.org/zap"

// New builds a production logger at the given level. Logs go to stderr so that
// fees written to stdout stay clean.
func New(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}

	config := zap.NewProductionConfig()
	config.Level = lvl
	config.OutputPaths = []string{"stderr"}
	return config.Build()
}
