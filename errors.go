package memdev

import "github.com/sirkon/memdev/internal/bufstore"

// ErrNoSpace запись с курсором на вместимости буфера или за ней.
var ErrNoSpace = bufstore.ErrNoSpace

// ErrBadCapacity устройство с запрошенной вместимостью не может быть создано.
var ErrBadCapacity = bufstore.ErrBadCapacity
