package task

import "errors"

var (
	ErrTaskNotFound = errors.New("task not found or not assigned to you")
	ErrNoEmployees  = errors.New("no employees found under this admin")
)
