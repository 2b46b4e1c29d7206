package storage

import "errors"

var (
	ErrNotFound   = errors.New("record not found")
	ErrForeignKey = errors.New("foreign key constraint violated")

	ErrHeatPumpIncompatible = errors.New("heat pump is not compatible with pool")
)
