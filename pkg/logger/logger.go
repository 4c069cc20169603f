// Package logger provides a zap-based application logger.
package logger

import "go.uber.org/zap"

// Log is the global zap logger used across the project. It is a no-op
// until Init is called, so library tests stay quiet.
var Log = zap.NewNop()

// Init configures the global logger. Any env other than "development"
// selects production JSON output.
func Init(env string) {
	var err error
	if env == "development" {
		Log, err = zap.NewDevelopment()
	} else {
		Log, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
}
