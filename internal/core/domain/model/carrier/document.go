package carrier

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrCarrierDocumentsExpired is the sentinel behind DocumentsExpiredError.
var ErrCarrierDocumentsExpired = errors.New("carrier documents expired")

// Document is a carrier paper with an expiry date.
type Document int

const (
	UnknownDocument Document = iota
	Insurance
	Licence
)

func getDocumentNames() map[Document]string {
	return map[Document]string{
		Insurance: "INSURANCE",
		Licence:   "LICENCE",
	}
}

func (d Document) String() string {
	if name, ok := getDocumentNames()[d]; ok {
		return name
	}
	return "UNKNOWN"
}

// DocumentsExpiredError lists the documents that are no longer valid on the
// checked date.
type DocumentsExpiredError struct {
	CarrierID string
	Documents []Document
	On        time.Time
}

func (e *DocumentsExpiredError) Error() string {
	names := make([]string, len(e.Documents))
	for i, d := range e.Documents {
		names[i] = d.String()
	}
	return fmt.Sprintf("%s: carrier %s on %s: %s",
		ErrCarrierDocumentsExpired, e.CarrierID, e.On.Format(time.DateOnly), strings.Join(names, ", "))
}

func (e *DocumentsExpiredError) Unwrap() error {
	return ErrCarrierDocumentsExpired
}

// dateOnly drops the clock part, keeping the calendar day in UTC.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
