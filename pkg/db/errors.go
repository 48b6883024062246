package db

import "errors"

var (

	// Core database errors.

	ErrFailedOpenDB   = errors.New("failed to open database")
	ErrFailedToQuery  = errors.New("failed to query")
	ErrFailedToInsert = errors.New("failed to insert")
	ErrFailedToInit   = errors.New("failed to initialize schema")

	// Lookup errors.

	ErrSensorNotFound = errors.New("sensor not found")
)
