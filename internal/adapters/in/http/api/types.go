// Package api is the HTTP contract of the service: request and response
// bodies, the server interface and its echo route registration. It mirrors
// the document served at /openapi.json.
package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error is the body of every JSON error response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Token struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type Created struct {
	Id openapi_types.UUID `json:"id"`
}

type NewOrder struct {
	// CarrierId is omitted for company truck orders.
	CarrierId *openapi_types.UUID `json:"carrierId,omitempty"`
	Goods     string              `json:"goods"`
}

type Order struct {
	Id               openapi_types.UUID  `json:"id"`
	CarrierId        *openapi_types.UUID `json:"carrierId,omitempty"`
	CarrierShortName *string             `json:"carrierShortName,omitempty"`
	Goods            string              `json:"goods"`
	Status           string              `json:"status"`
	CreatedAt        time.Time           `json:"createdAt"`
}

type OrderStatusChange struct {
	Status string `json:"status"`
}

type OrderStatus struct {
	Id     openapi_types.UUID `json:"id"`
	Status string             `json:"status"`
}

type NewCarrier struct {
	FullName           string             `json:"fullName"`
	ShortName          string             `json:"shortName"`
	VatNumber          string             `json:"vatNumber"`
	Description        *string            `json:"description,omitempty"`
	TermOfPaymentDays  int                `json:"termOfPaymentDays"`
	InsuranceExpiresOn openapi_types.Date `json:"insuranceExpiresOn"`
	LicenceExpiresOn   openapi_types.Date `json:"licenceExpiresOn"`
}

type Carrier struct {
	Id                 openapi_types.UUID `json:"id"`
	FullName           string             `json:"fullName"`
	ShortName          string             `json:"shortName"`
	VatNumber          string             `json:"vatNumber"`
	Description        string             `json:"description"`
	TermOfPaymentDays  int                `json:"termOfPaymentDays"`
	InsuranceExpiresOn openapi_types.Date `json:"insuranceExpiresOn"`
	LicenceExpiresOn   openapi_types.Date `json:"licenceExpiresOn"`
}

type Warehouse struct {
	Id      openapi_types.UUID `json:"id"`
	Name    string             `json:"name"`
	Address string             `json:"address"`
}

type NewUser struct {
	Username string   `json:"username"`
	Password string   `json:"password"`
	Roles    []string `json:"roles"`
}
