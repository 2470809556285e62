package services

import "errors"

// Domain errors raised by service code before or instead of touching the
// store. Messages are user-facing; handlers pass them through as-is.
var (
	ErrGroupHasStudents = errors.New("Нельзя удалить группу, в которой есть студенты")
	ErrAlreadyEnrolled  = errors.New("Студент уже зачислен в эту группу")
	ErrInvalidAmount    = errors.New("Сумма платежа должна быть больше 0")
)
