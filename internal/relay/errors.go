package relay

import "errors"

var (
	// ErrCorruptChunk скан похож на фрагмент, но заголовок или данные повреждены
	ErrCorruptChunk = errors.New("corrupt relay chunk")

	// ErrCorruptPayload фрагменты собраны, но данные не распаковываются
	ErrCorruptPayload = errors.New("corrupt relay payload")

	// ErrPayloadTooLarge отчет не помещается в MaxChunks фрагментов
	ErrPayloadTooLarge = errors.New("relay payload too large")

	// ErrInvalidOptions некорректные параметры кодирования
	ErrInvalidOptions = errors.New("invalid relay options")
)
