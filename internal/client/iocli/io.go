package iocli

//go:generate moq -out io_mock.go . IO

// IO is the terminal the CLI talks to.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	// Success, Warning и Error печатают строку с цветовой пометкой статуса
	Success(format string, a ...any)
	Warning(format string, a ...any)
	Error(format string, a ...any)
	// ReadInput возвращает введенную строку без пробелов по краям; io.EOF по окончании ввода
	ReadInput(prompt string) (string, error)
	Confirm(prompt string) (bool, error)
	Write(p []byte) (n int, err error)
}
