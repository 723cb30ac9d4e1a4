package order

import (
	"database/sql/driver"
	"errors"
)

// Status is the lifecycle state of an order.
type Status string

const (
	// StatusPending is the only status assigned at creation time.
	StatusPending Status = "PENDING"
)

var ErrInvalidStatus = errors.New("invalid order status")

func (s Status) String() string {
	return string(s)
}

func (s Status) Value() (driver.Value, error) {
	return s.String(), nil
}

func ParseStatus(s string) (Status, error) {
	switch s {
	case StatusPending.String():
		return StatusPending, nil
	default:
		return "", ErrInvalidStatus
	}
}
