package order

import (
	"errors"
	"strings"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created via
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a forwarding order: the aggregate root that owns the order status.
//
// Invariants:
//   - exactly one current status, always valid
//   - ASSIGNED_TO_CARRIER iff created with a carrier, ASSIGNED_TO_COMPANY_TRUCK otherwise
//   - the carrier assignment never changes after creation
//   - status only moves along the graph documented in the package comment
type Order struct {
	id        kernel.UUID
	carrierID *kernel.UUID
	goods     string
	status    Status
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an order in its initial status. A nil carrierID means the
// goods travel on a company truck.
//
//	carrierID := carrier.ID()
//	o, err := order.NewOrder(kernel.NewUUID(), &carrierID, "20 pallets of tiles", time.Now())
//	// o.Status() == order.AssignedToCarrier
func NewOrder(id kernel.UUID, carrierID *kernel.UUID, goods string, createdAt time.Time) (*Order, error) {
	o := &Order{
		status: InitialStatus(carrierID != nil),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCarrier(carrierID),
		o.setGoods(goods),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persistence, checking that the stored
// status and carrier assignment are consistent.
func RestoreOrder(
	id kernel.UUID,
	carrierID *kernel.UUID,
	goods string,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		o.setID(id),
		o.setCarrier(carrierID),
		o.setGoods(goods),
		o.setCreatedAt(createdAt),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if err := status.ValidateCanHaveCarrier(carrierID != nil); err != nil {
		return nil, err
	}

	o.status = status
	return o, nil
}

// Validate ensures the order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// Carrier returns the external carrier, or nil for company truck orders.
func (o *Order) Carrier() *kernel.UUID {
	return o.carrierID
}

// Goods is the free-text description of the cargo.
func (o *Order) Goods() string {
	return o.goods
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ApplyStatus moves the order to next if the status graph allows it.
// It performs no authorization; use the OrderWorkflow service for requests
// coming from users.
func (o *Order) ApplyStatus(next Status) error {
	if err := o.status.ValidateTransition(next); err != nil {
		return err
	}
	o.status = next
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCarrier(carrierID *kernel.UUID) error {
	if carrierID == nil {
		return nil
	}
	if err := carrierID.Validate(); err != nil {
		return err
	}
	id := *carrierID
	o.carrierID = &id
	return nil
}

func (o *Order) setGoods(goods string) error {
	goods = strings.TrimSpace(goods)
	if goods == "" {
		return errs.NewValueIsRequiredError("goods")
	}
	o.goods = goods
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = createdAt.UTC()
	return nil
}
