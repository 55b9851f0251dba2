package models

import "errors"

// Ошибки предметной области. Валидационные ошибки чтения гасятся на месте
// (записи отбрасываются), остальные поднимаются до вызывающего кода.
var (
	ErrInvalidDayHours  = errors.New("InvalidDayHours")
	ErrNotScheduled     = errors.New("NotScheduled")
	ErrAlreadyCheckedIn = errors.New("AlreadyCheckedIn")
	ErrRemote           = errors.New("RemoteFailure")
	ErrSaveInFlight     = errors.New("SaveInFlight")
)
