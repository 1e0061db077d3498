package store

type ErrNotFound struct {
}

func (e *ErrNotFound) Error() string {
	return "save slot not found"
}

func IsNotFound(err error) bool {
	_, ok := err.(*ErrNotFound)
	return ok
}
