package commands_test

import (
	"errors"
	"testing"
	"time"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStoredOrder(t *testing.T, uid string, productUIDs ...string) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(7, mustUID(t, uid), "Original", time.Now(), mustUIDs(t, productUIDs...))
	require.NoError(t, err)
	return o
}

func newUpdateMocks() (*MockOrderRepository, *MockProductRepository, *MockUoW, *MockUoWFactory) {
	orders := new(MockOrderRepository)
	products := new(MockProductRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("OrderRepository").Return(orders).Maybe()
	uow.On("ProductRepository").Return(products).Maybe()
	return orders, products, uow, factory
}

func TestUpdateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateOrderCommand("ORDER00000001", " Renamed ", []string{"PRODUCT00000B"})
	require.NoError(t, err)

	orders, products, uow, factory := newUpdateMocks()
	stored := newStoredOrder(t, "ORDER00000001", "PRODUCT00000A")
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orders.On("GetForUpdate", ctx, cmd.UID()).Return(stored, nil).Once(),
		products.On("FindByUIDs", ctx, cmd.ProductUIDs()).Return(cmd.ProductUIDs(), nil).Once(),
		orders.On("Update", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.Description() == "Renamed" &&
				assert.ObjectsAreEqual([]string{"PRODUCT00000B"}, kernel.UIDStrings(o.ProductUIDs()))
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewUpdateOrderCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	orders.AssertExpectations(t)
	products.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_ClearProducts(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateOrderCommand("ORDER00000001", "Renamed", []string{})
	require.NoError(t, err)

	orders, products, uow, factory := newUpdateMocks()
	uow.On("Begin", ctx).Return(nil).Once()
	orders.On("GetForUpdate", ctx, cmd.UID()).Return(newStoredOrder(t, "ORDER00000001", "PRODUCT00000A"), nil).Once()
	orders.On("Update", ctx, mock.MatchedBy(func(o *order.Order) bool {
		return len(o.ProductUIDs()) == 0
	})).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	err = commands.NewUpdateOrderCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	products.AssertNotCalled(t, "FindByUIDs", mock.Anything, mock.Anything)
	orders.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewUpdateOrderCommand("ORDER00000404", "Renamed", nil)

	orders, _, uow, factory := newUpdateMocks()
	uow.On("Begin", ctx).Return(nil).Once()
	orders.On("GetForUpdate", ctx, cmd.UID()).
		Return(nil, errs.NewObjectNotFoundError("order", "ORDER00000404")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	err := commands.NewUpdateOrderCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_UnknownProductLeavesOrderUntouched(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewUpdateOrderCommand("ORDER00000001", "Renamed", []string{"MISSING000000"})

	orders, products, uow, factory := newUpdateMocks()
	stored := newStoredOrder(t, "ORDER00000001", "PRODUCT00000A")
	uow.On("Begin", ctx).Return(nil).Once()
	orders.On("GetForUpdate", ctx, cmd.UID()).Return(stored, nil).Once()
	products.On("FindByUIDs", ctx, cmd.ProductUIDs()).Return([]kernel.UID{}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	err := commands.NewUpdateOrderCommandHandler(factory).Handle(ctx, cmd)

	var refErr *errs.InvalidReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "Original", stored.Description())
	orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewUpdateOrderCommand("ORDER00000001", "Renamed", nil)

	orders, _, uow, factory := newUpdateMocks()
	uow.On("Begin", ctx).Return(nil).Once()
	orders.On("GetForUpdate", ctx, cmd.UID()).Return(newStoredOrder(t, "ORDER00000001"), nil).Once()
	orders.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("update error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	err := commands.NewUpdateOrderCommandHandler(factory).Handle(ctx, cmd)

	require.EqualError(t, err, "update error")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockUoWFactory)

	err := commands.NewUpdateOrderCommandHandler(factory).Handle(t.Context(), commands.UpdateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrUpdateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestNewUpdateOrderCommand(t *testing.T) {
	cmd, err := commands.NewUpdateOrderCommand(" ORDER00000001 ", "Renamed", []string{"PRODUCT00000A"})
	require.NoError(t, err)
	assert.Equal(t, "ORDER00000001", cmd.UID().String())
	assert.Equal(t, "Renamed", cmd.Description())

	_, err = commands.NewUpdateOrderCommand("bad", "x", []string{"also bad"})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
