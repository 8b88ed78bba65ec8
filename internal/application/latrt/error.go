package latrt

type ErrNoCommand struct{}

func (e ErrNoCommand) Error() string {
	return "no command given, see -help"
}

type ErrUnknownFormat struct {
	format string
}

func NewErrUnknownFormat(format string) ErrUnknownFormat {
	return ErrUnknownFormat{
		format: format,
	}
}

func (e ErrUnknownFormat) Error() string {
	return "unknown output format: " + e.format
}
