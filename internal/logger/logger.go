package logger

import "go.uber.org/zap"

var Log *zap.Logger

// Init builds the global logger. Production gets JSON output, everything
// else gets the human-readable development encoder.
func Init(env string) {
	if env == "production" {
		Log = zap.Must(zap.NewProduction())
	} else {
		Log = zap.Must(zap.NewDevelopment())
	}
	zap.ReplaceGlobals(Log)
}

func Sugar() *zap.SugaredLogger {
	return Log.Sugar()
}
