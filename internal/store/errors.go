package store

import (
	"errors"

	"shiftbook/internal/importer"
)

var (
	ErrLoadCorrupt        = errors.New("stored data is corrupt")
	ErrSaveFailed         = errors.New("failed to save data")
	ErrUnsupportedFormat  = importer.ErrUnsupportedFormat
	ErrInvalidImportShape = errors.New("invalid import data")
	ErrReadFailed         = importer.ErrReadFailed
	ErrInvalidGoal        = errors.New("invalid goal")
	ErrInvalidPayout      = errors.New("invalid payout")
	ErrClosed             = errors.New("store is closed")
)
