package parser

type ErrFileNotFound struct {
	Path string
}

func NewErrFileNotFound(path string) error {
	return ErrFileNotFound{
		Path: path,
	}
}

func (e ErrFileNotFound) Error() string {
	return "Cannot read from file " + e.Path
}

type ErrFileUnreadable struct {
	Path string
	Err  error
}

func NewErrFileUnreadable(path string, err error) error {
	return ErrFileUnreadable{
		Path: path,
		Err:  err,
	}
}

func (e ErrFileUnreadable) Error() string {
	return "Cannot open file " + e.Path
}

func (e ErrFileUnreadable) Unwrap() error {
	return e.Err
}
