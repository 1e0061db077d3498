package codec

import (
	"errors"
	"fmt"
)

// EncodeError reports a record holding a value the codec cannot represent.
type EncodeError struct {
	Codec string
	Err   error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("%s encode: %v", e.Codec, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

func IsEncodeError(err error) bool {
	var e *EncodeError
	return errors.As(err, &e)
}

// DecodeError reports bytes the codec cannot parse.
type DecodeError struct {
	Codec string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s decode: %v", e.Codec, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func IsDecodeError(err error) bool {
	var e *DecodeError
	return errors.As(err, &e)
}
