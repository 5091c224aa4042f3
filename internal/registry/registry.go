package registry

import (
	"github.com/sirkon/errors"

	"github.com/sirkon/memdev/internal/logging"
	"github.com/sirkon/memdev/internal/unwind"
)

// Register регистрация устройства с данным именем во внешнем окружении:
// вначале выделяется номер устройства, затем создаётся файловый узел.
// Каждый захваченный ресурс кладётся в список отката, при сбое любого
// из последующих шагов список запускается и возвращается ошибка
// сбойного шага. Освобождение при откате и сворачивании идёт в порядке
// обратном захвату.
func Register(
	name string,
	numbers NumberAuthority,
	nodes NodeAuthority,
	log logging.Logger,
) (res *Registration, err error) {
	var list unwind.List
	defer func() {
		// При ошибке возвращаем уже захваченные ресурсы.
		if err == nil {
			return
		}

		_ = list.Unwind(func(step string, err error) {
			log.RollbackStepFailed(step, err)
		})
	}()

	no, err := numbers.AllocNumber(name)
	if err != nil {
		return nil, errors.Wrap(err, "allocate device number").Str("device-name", name)
	}
	list.Add("device number", func() error {
		return numbers.FreeNumber(no)
	})

	if err := nodes.CreateNode(name, no); err != nil {
		return nil, errors.Wrap(err, "create device node").
			Str("device-name", name).
			Uint32("device-number", no)
	}
	list.Add("device node", func() error {
		return nodes.RemoveNode(name)
	})

	return &Registration{
		name: name,
		no:   no,
		list: list,
		log:  log,
	}, nil
}

// Registration представление зарегистрированного устройства.
type Registration struct {
	name string
	no   uint32
	list unwind.List
	log  logging.Logger
}

// Name имя под которым устройство зарегистрировано.
func (r *Registration) Name() string {
	return r.name
}

// Number номер выданный устройству.
func (r *Registration) Number() uint32 {
	return r.no
}

// Close снятие регистрации. Все захваченные ресурсы освобождаются
// в обратном порядке, сбой шага не прерывает остальные: он логируется,
// а первый из них возвращается. Повторный вызов ничего не делает.
func (r *Registration) Close() error {
	err := r.list.Unwind(func(step string, err error) {
		r.log.RollbackStepFailed(step, err)
	})
	if err != nil {
		return errors.Wrap(err, "deregister device").Str("device-name", r.name)
	}

	return nil
}
