// Package logger provides a thin structured logging layer over zerolog.
//
// Packages in restkit take an optional *Logger; a nil logger is safe and
// silently discards everything, so library users who do not care about
// logging pay nothing.
//
//	log := logger.NewDefault("my-service")
//	log.WithComponent("rest").Debug("dispatching request")
package logger
