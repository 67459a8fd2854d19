package http_test

import (
	"context"
	"time"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/domain/model/carrier"
	"forwarding/internal/core/domain/model/identity"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"
	"forwarding/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCredentialStore struct{ mock.Mock }

func (m *MockCredentialStore) FindByUsername(ctx context.Context, username string) (*identity.Principal, error) {
	args := m.Called(ctx, username)
	p, _ := args.Get(0).(*identity.Principal)
	return p, args.Error(1)
}

func (m *MockCredentialStore) Add(ctx context.Context, p *identity.Principal) error {
	return m.Called(ctx, p).Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockCarrierRepository struct{ mock.Mock }

func (m *MockCarrierRepository) Add(ctx context.Context, c *carrier.Carrier) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCarrierRepository) Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*carrier.Carrier)
	return c, args.Error(1)
}

func (m *MockCarrierRepository) GetAllWithDocumentsExpiringBefore(
	ctx context.Context,
	day time.Time,
) ([]*carrier.Carrier, error) {
	args := m.Called(ctx, day)
	carriers, _ := args.Get(0).([]*carrier.Carrier)
	return carriers, args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) CarrierRepository() ports.CarrierRepository {
	return m.Called().Get(0).(ports.CarrierRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) PublishStatusChanged(ctx context.Context, event ports.OrderStatusChanged) error {
	return m.Called(ctx, event).Error(0)
}

type MockTokenCodec struct{ mock.Mock }

func (m *MockTokenCodec) Issue(p *identity.Principal, now time.Time) (identity.Token, error) {
	args := m.Called(p, now)
	return args.Get(0).(identity.Token), args.Error(1)
}

func (m *MockTokenCodec) Decode(raw string) (identity.Claims, error) {
	args := m.Called(raw)
	return args.Get(0).(identity.Claims), args.Error(1)
}
