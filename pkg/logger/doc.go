// Package logger builds the *slog.Logger instances used by contract engines
// and the bycontract command, plus attribute helpers that keep contract
// failure fields consistently named.
//
// New applies functional options over production-safe defaults (JSON, INFO,
// stdout):
//
//	log := logger.New(
//	    logger.WithDevelopment("billing"),
//	    logger.WithLevel(slog.LevelDebug),
//	)
//	engine := bycontract.New(bycontract.WithLogger(log))
//
// Engines default to Discard, so nothing is written until a logger is wired.
//
// Attribute helpers such as Code, CallContext and Argument return empty
// attributes for zero inputs, which slog drops:
//
//	log.Debug("contract violation", logger.Code(code), logger.Argument(-1))
package logger
