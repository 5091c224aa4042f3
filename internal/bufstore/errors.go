package bufstore

import "github.com/sirkon/errors"

// ErrBadCapacity буфер с запрошенной вместимостью не может быть выделен.
var ErrBadCapacity = errors.Const("device buffer capacity must be positive")

// ErrNoSpace запись начинается на вместимости буфера или за ней,
// т.е. места нет даже под один байт. Отличается от короткой записи,
// которая ошибкой не является.
var ErrNoSpace = errors.Const("no space left on device buffer")

// ErrNegativeOffset перенос с отрицательной позицией.
var ErrNegativeOffset = errors.Const("negative transfer offset")
