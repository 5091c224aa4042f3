package registry_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sirkon/errors"

	"github.com/sirkon/memdev/internal/logging"
	"github.com/sirkon/memdev/internal/registry"
	"github.com/sirkon/memdev/internal/registry/internal/mocks"
	"github.com/sirkon/memdev/internal/tlog"
)

const deviceName = "memdev0"

func TestRegisterAndClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	numbers := mocks.NewNumberAuthorityMock(ctrl)
	nodes := mocks.NewNodeAuthorityMock(ctrl)

	gomock.InOrder(
		numbers.EXPECT().AllocNumber(deviceName).Return(uint32(42), nil),
		nodes.EXPECT().CreateNode(deviceName, uint32(42)).Return(nil),
		// Сворачивание идёт в порядке обратном регистрации.
		nodes.EXPECT().RemoveNode(deviceName).Return(nil),
		numbers.EXPECT().FreeNumber(uint32(42)).Return(nil),
	)

	reg, err := registry.Register(deviceName, numbers, nodes, logging.Discard())
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "register device"))
		return
	}

	if reg.Name() != deviceName {
		t.Errorf("device name %q expected, got %q", deviceName, reg.Name())
	}
	if reg.Number() != 42 {
		t.Errorf("device number 42 expected, got %d", reg.Number())
	}

	if err := reg.Close(); err != nil {
		tlog.Error(t, errors.Wrap(err, "deregister device"))
		return
	}

	// Повторное закрытие ничего не освобождает.
	if err := reg.Close(); err != nil {
		t.Errorf("unexpected error on a repeated close: %v", err)
	}
}

func TestRegisterNumberFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	numbers := mocks.NewNumberAuthorityMock(ctrl)
	nodes := mocks.NewNodeAuthorityMock(ctrl)

	bound := errors.Const("no numbers left")
	numbers.EXPECT().AllocNumber(deviceName).Return(uint32(0), bound)

	if _, err := registry.Register(deviceName, numbers, nodes, logging.Discard()); !errors.Is(err, bound) {
		t.Errorf("allocation error expected, got %v", err)
	}
}

func TestRegisterNodeFailureRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	numbers := mocks.NewNumberAuthorityMock(ctrl)
	nodes := mocks.NewNodeAuthorityMock(ctrl)

	busy := errors.Const("node name is taken")
	gomock.InOrder(
		numbers.EXPECT().AllocNumber(deviceName).Return(uint32(7), nil),
		nodes.EXPECT().CreateNode(deviceName, uint32(7)).Return(busy),
		// Выделенный номер не должен утечь.
		numbers.EXPECT().FreeNumber(uint32(7)).Return(nil),
	)

	if _, err := registry.Register(deviceName, numbers, nodes, logging.Discard()); !errors.Is(err, busy) {
		t.Errorf("node creation error expected, got %v", err)
	}
}

func TestCloseStepFailureIsLoggedAndContinues(t *testing.T) {
	ctrl := gomock.NewController(t)
	numbers := mocks.NewNumberAuthorityMock(ctrl)
	nodes := mocks.NewNodeAuthorityMock(ctrl)
	log := mocks.NewLoggerMock(ctrl)

	stuck := errors.Const("node is held by a consumer")
	gomock.InOrder(
		numbers.EXPECT().AllocNumber(deviceName).Return(uint32(3), nil),
		nodes.EXPECT().CreateNode(deviceName, uint32(3)).Return(nil),
		nodes.EXPECT().RemoveNode(deviceName).Return(stuck),
		// Сбой шага не останавливает остальные освобождения.
		numbers.EXPECT().FreeNumber(uint32(3)).Return(nil),
	)
	log.EXPECT().RollbackStepFailed("device node", gomock.Any())

	reg, err := registry.Register(deviceName, numbers, nodes, log)
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "register device"))
		return
	}

	if err := reg.Close(); !errors.Is(err, stuck) {
		t.Errorf("the node removal failure expected from close, got %v", err)
	}
}
