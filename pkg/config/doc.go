// Package config loads environment-driven settings into tagged structs.
//
// It is a thin layer over github.com/caarlos0/env/v11 with dotenv support from
// github.com/joho/godotenv. The root bycontract package uses it to read the
// BYCONTRACT_ENABLE switch so production builds can turn contract checks off
// without touching call sites:
//
//	var opts bycontract.Options
//	if err := config.Load(&opts, config.WithPrefix("BYCONTRACT_")); err != nil {
//	    return err
//	}
//
// Variables already present in the process environment take precedence over
// values from dotenv files.
//
// # Errors
//
// Failures are joined with one of the sentinel errors (ErrNilPointer,
// ErrParsingConfig, ErrLoadingEnvFile), so errors.Is works on the result.
package config
