package carrier

import (
	"errors"
	"strings"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var (
	ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier constructor")

	ErrFullNameIsRequired     = errs.NewValueIsRequiredError("full name")
	ErrShortNameIsRequired    = errs.NewValueIsRequiredError("short name")
	ErrVatNumberIsRequired    = errs.NewValueIsRequiredError("vat number")
	ErrTermOfPaymentIsInvalid = errs.NewValueIsInvalidError("term of payment")
)

// Carrier is an external transport contractor.
type Carrier struct {
	id                 kernel.UUID
	fullName           string
	shortName          string
	vatNumber          string
	description        string
	termOfPaymentDays  int
	insuranceExpiresOn time.Time
	licenceExpiresOn   time.Time

	guard guard.ConstructorGuard
}

// Details groups the descriptive carrier attributes so constructors stay
// readable at call sites.
type Details struct {
	FullName           string
	ShortName          string
	VatNumber          string
	Description        string
	TermOfPaymentDays  int
	InsuranceExpiresOn time.Time
	LicenceExpiresOn   time.Time
}

// NewCarrier validates and builds a carrier. Documents may already be expired;
// that only matters when the carrier is assigned to an order.
func NewCarrier(id kernel.UUID, details Details) (*Carrier, error) {
	c := &Carrier{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setID(id),
		c.setFullName(details.FullName),
		c.setShortName(details.ShortName),
		c.setVatNumber(details.VatNumber),
		c.setTermOfPayment(details.TermOfPaymentDays),
		c.setInsuranceExpiresOn(details.InsuranceExpiresOn),
		c.setLicenceExpiresOn(details.LicenceExpiresOn),
	); err != nil {
		return nil, err
	}
	c.description = strings.TrimSpace(details.Description)

	return c, nil
}

// RestoreCarrier rebuilds a carrier loaded from persistence.
func RestoreCarrier(id kernel.UUID, details Details) (*Carrier, error) {
	return NewCarrier(id, details)
}

func (c *Carrier) Validate() error {
	if c == nil {
		return ErrCarrierIsNotConstructed
	}
	return c.guard.Validate(ErrCarrierIsNotConstructed)
}

func (c *Carrier) IsEqual(other *Carrier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

func (c *Carrier) ID() kernel.UUID {
	return c.id
}

func (c *Carrier) FullName() string {
	return c.fullName
}

func (c *Carrier) ShortName() string {
	return c.shortName
}

// VatNumber is normalized to upper case without spaces.
func (c *Carrier) VatNumber() string {
	return c.vatNumber
}

func (c *Carrier) Description() string {
	return c.description
}

func (c *Carrier) TermOfPaymentDays() int {
	return c.termOfPaymentDays
}

func (c *Carrier) InsuranceExpiresOn() time.Time {
	return c.insuranceExpiresOn
}

func (c *Carrier) LicenceExpiresOn() time.Time {
	return c.licenceExpiresOn
}

// Details returns the descriptive attributes, e.g. for persistence.
func (c *Carrier) Details() Details {
	return Details{
		FullName:           c.fullName,
		ShortName:          c.shortName,
		VatNumber:          c.vatNumber,
		Description:        c.description,
		TermOfPaymentDays:  c.termOfPaymentDays,
		InsuranceExpiresOn: c.insuranceExpiresOn,
		LicenceExpiresOn:   c.licenceExpiresOn,
	}
}

// ExpiredDocumentsOn returns the documents that are not valid on the given day.
func (c *Carrier) ExpiredDocumentsOn(day time.Time) []Document {
	day = dateOnly(day)
	var expired []Document
	if c.insuranceExpiresOn.Before(day) {
		expired = append(expired, Insurance)
	}
	if c.licenceExpiresOn.Before(day) {
		expired = append(expired, Licence)
	}
	return expired
}

// ValidateDocumentsOn returns a DocumentsExpiredError if the carrier cannot
// take an order on the given day.
func (c *Carrier) ValidateDocumentsOn(day time.Time) error {
	expired := c.ExpiredDocumentsOn(day)
	if len(expired) == 0 {
		return nil
	}
	return &DocumentsExpiredError{
		CarrierID: c.id.String(),
		Documents: expired,
		On:        dateOnly(day),
	}
}

// DocumentsExpiringWithin returns the documents whose last valid day falls
// before now+window, already expired ones included.
func (c *Carrier) DocumentsExpiringWithin(now time.Time, window time.Duration) []Document {
	return c.ExpiredDocumentsOn(CutoffDay(now, window))
}

// CutoffDay is the first calendar day after the window starting at now.
// Documents expiring before it fall inside the window.
func CutoffDay(now time.Time, window time.Duration) time.Time {
	return dateOnly(now.Add(window))
}

func (c *Carrier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Carrier) setFullName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrFullNameIsRequired
	}
	c.fullName = name
	return nil
}

func (c *Carrier) setShortName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrShortNameIsRequired
	}
	c.shortName = name
	return nil
}

func (c *Carrier) setVatNumber(vat string) error {
	vat = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(vat), " ", ""))
	if vat == "" {
		return ErrVatNumberIsRequired
	}
	c.vatNumber = vat
	return nil
}

func (c *Carrier) setTermOfPayment(days int) error {
	if days < 0 {
		return ErrTermOfPaymentIsInvalid
	}
	c.termOfPaymentDays = days
	return nil
}

func (c *Carrier) setInsuranceExpiresOn(day time.Time) error {
	if day.IsZero() {
		return errs.NewValueIsRequiredError("insurance expiration date")
	}
	c.insuranceExpiresOn = dateOnly(day)
	return nil
}

func (c *Carrier) setLicenceExpiresOn(day time.Time) error {
	if day.IsZero() {
		return errs.NewValueIsRequiredError("licence expiration date")
	}
	c.licenceExpiresOn = dateOnly(day)
	return nil
}
