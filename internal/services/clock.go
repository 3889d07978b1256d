package services

import (
	"time"

	"github.com/renato0307/punch/internal/ports"
)

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall clock
func SystemClock() ports.Clock { return systemClock{} }
