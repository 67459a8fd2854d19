// Package commands contains the operations that change state: logging in,
// creating orders, carriers and accounts, and moving orders through their
// lifecycle. Every command is validated by its constructor; handlers that
// write open their own unit of work.
package commands

import (
	"context"
	"time"

	"forwarding/internal/core/ports"
)

// Unit of work views. Each handler depends only on the repositories it uses.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	CarrierRepoFactory interface {
		CarrierRepository() ports.CarrierRepository
	}

	CredentialStoreFactory interface {
		CredentialStore() ports.CredentialStore
	}

	// OrderUoW covers order writes, which may need to read the carrier.
	//
	//	uow := factory.Create()
	//	if err := uow.Begin(ctx); err != nil {
	//	    return err
	//	}
	//	defer func() { _ = uow.Rollback(ctx) }()
	//	...
	//	return uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		CarrierRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	CarrierUoW interface {
		TxManager
		CarrierRepoFactory
	}

	CarrierUoWFactory interface {
		Create() CarrierUoW
	}

	PrincipalUoW interface {
		TxManager
		CredentialStoreFactory
	}

	PrincipalUoWFactory interface {
		Create() PrincipalUoW
	}
)

// Clock returns the current time. Handlers take it as a dependency so that
// tests control token and order timestamps.
type Clock func() time.Time
