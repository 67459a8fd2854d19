package commands_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/domain/model/carrier"
	"forwarding/internal/core/domain/model/identity"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"
	"forwarding/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2026, time.March, 16, 7, 30, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
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

type MockCredentialStore struct{ mock.Mock }

func (m *MockCredentialStore) FindByUsername(ctx context.Context, username string) (*identity.Principal, error) {
	args := m.Called(ctx, username)
	p, _ := args.Get(0).(*identity.Principal)
	return p, args.Error(1)
}

func (m *MockCredentialStore) Add(ctx context.Context, p *identity.Principal) error {
	return m.Called(ctx, p).Error(0)
}

type MockPasswordVerifier struct{ mock.Mock }

func (m *MockPasswordVerifier) Verify(plaintext, hash string) error {
	return m.Called(plaintext, hash).Error(0)
}

func (m *MockPasswordVerifier) DecoyHash() string {
	return m.Called().String(0)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(plaintext string) (string, error) {
	args := m.Called(plaintext)
	return args.String(0), args.Error(1)
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

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) PublishStatusChanged(ctx context.Context, event ports.OrderStatusChanged) error {
	return m.Called(ctx, event).Error(0)
}

// MockUoW implements every unit of work view used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CarrierRepository() ports.CarrierRepository {
	return m.Called().Get(0).(ports.CarrierRepository)
}

func (m *MockUoW) CredentialStore() ports.CredentialStore {
	return m.Called().Get(0).(ports.CredentialStore)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockCarrierUoWFactory struct{ mock.Mock }

func (m *MockCarrierUoWFactory) Create() commands.CarrierUoW {
	return m.Called().Get(0).(commands.CarrierUoW)
}

type MockPrincipalUoWFactory struct{ mock.Mock }

func (m *MockPrincipalUoWFactory) Create() commands.PrincipalUoW {
	return m.Called().Get(0).(commands.PrincipalUoW)
}
