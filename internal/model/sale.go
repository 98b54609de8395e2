package model

import (
	"github.com/google/uuid"
	"time"
)

type Sale struct {
	Receipt    uuid.UUID
	ItemID     int
	Quantity   int
	TotalPrice int
	Timestamp  time.Time
}
