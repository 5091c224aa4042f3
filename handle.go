package memdev

import (
	"io"

	"github.com/google/uuid"
	"github.com/sirkon/errors"
)

// Handle сессия работы с устройством. Держит курсор — байтовую
// позицию в буфере, продвигаемую каждым переносом. Сессия не
// рассчитана на конкурентное использование, у каждого потребителя
// должна быть своя.
type Handle struct {
	dev     *Device
	id      uuid.UUID
	tracked bool
	pos     int64
}

// ID хэндл сессии. Вне режима учёта сессий возвращается false.
func (h *Handle) ID() (uuid.UUID, bool) {
	return h.id, h.tracked
}

// Pos текущая позиция курсора сессии.
func (h *Handle) Pos() int64 {
	return h.pos
}

// Read чтение с курсора для реализации io.Reader. Курсор на логической
// длине или за ней даёт io.EOF. Короткое чтение — нормальный результат.
func (h *Handle) Read(p []byte) (n int, err error) {
	n, pos := h.dev.store.ReadAt(p, h.pos)
	h.pos = pos

	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}

	return n, nil
}

// Write запись с курсора для реализации io.Writer. Курсор на
// вместимости буфера или за ней даёт ErrNoSpace. Если до вместимости
// помещается лишь часть данных, записывается эта часть и возвращается
// io.ErrShortWrite с количеством перенесённых байтов.
func (h *Handle) Write(p []byte) (n int, err error) {
	n, pos, err := h.dev.store.WriteAt(p, h.pos)
	if err != nil {
		return 0, errors.Wrap(err, "write at session cursor").Int64("cursor", h.pos)
	}

	h.pos = pos
	if n < len(p) {
		return n, io.ErrShortWrite
	}

	return n, nil
}

// Close закрытие сессии. Закрытие должно быть парным к открытию:
// лишнее закрытие не уводит счётчик открытых сессий ниже нуля и
// отмечается в логгере как дисбаланс. При включённом учёте сессий
// лишнее закрытие распознаётся по хэндлу и счётчика не касается,
// иначе оно списало бы закрытие чужой открытой сессии.
func (h *Handle) Close() error {
	if h.tracked {
		if err := h.dev.table.Close(h.id); err != nil {
			h.dev.log.UnbalancedRelease()
			h.dev.log.DeviceClosed(h.dev.tracker.Opened())
			return nil
		}
	}

	count, err := h.dev.tracker.Release()
	if err != nil {
		h.dev.log.UnbalancedRelease()
	}
	h.dev.log.DeviceClosed(count)

	return nil
}

var (
	_ io.Reader = new(Handle)
	_ io.Writer = new(Handle)
	_ io.Closer = new(Handle)
)
