package cardscript

import (
	"errors"
	"fmt"
)

var ErrMissingName = errors.New("missing card name")
var ErrMissingRarity = errors.New("missing card rarity")

// MalformedRecordError is returned when a record lacks one of the fields
// needed to build a Card.
type MalformedRecordError struct {
	Field   string
	Name    string
	SetCode string

	err error
}

func newMalformedRecordError(err error, field, name, setCode string) *MalformedRecordError {
	return &MalformedRecordError{
		Field:   field,
		Name:    name,
		SetCode: setCode,
		err:     err,
	}
}

func (err *MalformedRecordError) Error() string {
	if err.Name == "" {
		return fmt.Sprintf("malformed record in %s: %v", err.SetCode, err.err)
	}
	return fmt.Sprintf("malformed record %s in %s: %v", err.Name, err.SetCode, err.err)
}

func (err *MalformedRecordError) Unwrap() error {
	return err.err
}
