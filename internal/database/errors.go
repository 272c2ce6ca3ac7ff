package database

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyNote    = errors.New("note text is empty")
	ErrNoteNotFound = errors.New("note not found")
)

type OpError struct {
	Op       string
	Resource string
	ID       string
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID != "" {
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Resource, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapNoteErr(op string, id string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "note", ID: id, Err: err}
}

func wrapSettingErr(op string, key string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "setting", ID: key, Err: err}
}
