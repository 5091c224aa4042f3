package memdev

import (
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sirkon/errors"

	"github.com/sirkon/memdev/internal/bufstore"
	"github.com/sirkon/memdev/internal/logging"
	"github.com/sirkon/memdev/internal/registry"
	"github.com/sirkon/memdev/internal/sessions"
)

// Device символьное устройство в памяти: один буфер фиксированной
// вместимости, доступ к которому идёт через открываемые сессии
// с байтовым курсором.
type Device struct {
	name    string
	store   *bufstore.Store
	tracker sessions.Tracker
	table   *sessions.Table
	log     logging.Logger
	reg     *registry.Registration
	closed  atomic.Bool
}

// New конструктор устройства с данным именем и вместимостью буфера.
// Если опцией заданы полномочные источники, устройство регистрируется
// во внешнем окружении; при сбое регистрации уже захваченные ресурсы
// возвращаются и устройство не создаётся.
func New(name string, capacity int, opts ...Option) (*Device, error) {
	s := setup{
		log: logging.Discard(),
	}
	for _, opt := range opts {
		opt(&s, prohibitCustomOpts{})
	}

	store, err := bufstore.New(capacity)
	if err != nil {
		return nil, errors.Wrap(err, "setup device buffer").Str("device-name", name)
	}

	res := &Device{
		name:  name,
		store: store,
		log:   s.log,
	}
	if s.handles {
		res.table = sessions.NewTable()
	}

	switch {
	case s.numbers != nil && s.nodes != nil:
		reg, err := registry.Register(name, s.numbers, s.nodes, s.log)
		if err != nil {
			return nil, errors.Wrap(err, "register device")
		}
		res.reg = reg
	case s.numbers != nil || s.nodes != nil:
		return nil, errors.New("number and node authorities must be set together").
			Str("device-name", name)
	}

	return res, nil
}

// Name имя устройства.
func (d *Device) Name() string {
	return d.name
}

// Cap вместимость буфера устройства.
func (d *Device) Cap() int64 {
	return d.store.Cap()
}

// Len текущая логическая длина данных в буфере устройства.
func (d *Device) Len() int64 {
	return d.store.Len()
}

// Opened количество открытых на данный момент сессий.
func (d *Device) Opened() int {
	return d.tracker.Opened()
}

// Number номер выданный устройству при регистрации. Без регистрации
// возвращается false.
func (d *Device) Number() (uint32, bool) {
	if d.reg == nil {
		return 0, false
	}

	return d.reg.Number(), true
}

// Sessions хэндлы открытых сессий. Работает только при включённом
// учёте сессий, иначе возвращается nil.
func (d *Device) Sessions() []uuid.UUID {
	if d.table == nil {
		return nil
	}

	return d.table.Active()
}

// Snapshot копия данных буфера до логической длины.
func (d *Device) Snapshot() []byte {
	return d.store.Snapshot()
}

// Open открытие новой сессии работы с устройством. Курсор сессии
// стоит на нуле.
func (d *Device) Open() *Handle {
	count := d.tracker.Acquire()
	d.log.DeviceOpened(count)

	res := &Handle{
		dev: d,
	}
	if d.table != nil {
		res.id = d.table.Open()
		res.tracked = true
	}

	return res
}

// Close сворачивание устройства: снятие регистрации с освобождением
// захваченных ресурсов в обратном порядке. Повторный вызов ничего
// не делает.
func (d *Device) Close() error {
	if !d.closed.CompareAndSwap(false, true) {
		return nil
	}

	if d.reg == nil {
		return nil
	}

	return d.reg.Close()
}
