package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScanID uniquely identifies a typosquatting scan.
// It wraps uuid.UUID to provide type safety at the domain layer.
type ScanID uuid.UUID

// ScanStatus represents the lifecycle state of a typosquatting scan.
// It can be pending, completed, or failed.
type ScanStatus string

const (
	// ScanStatusPending indicates the scan has been enqueued but not processed yet.
	ScanStatusPending ScanStatus = "PENDING"
	// ScanStatusCompleted indicates the scan finished successfully and a result is available.
	ScanStatusCompleted ScanStatus = "COMPLETED"
	// ScanStatusFailed indicates the scan ended with an error; see LastError and Attempts for details.
	ScanStatusFailed ScanStatus = "FAILED"
)

// DNSRecords holds the resolved A, MX and TXT records for a domain. A record
// type that could not be resolved is represented as an empty (never nil after
// probing) slice for that type only.
type DNSRecords struct {
	A   []string `json:"a"`
	MX  []string `json:"mx"`
	TXT []string `json:"txt"`
}

// RegistrationRecord describes the registration state of a single probed
// domain. It is created once per candidate and not mutated afterwards.
type RegistrationRecord struct {
	// Domain is the fully qualified domain that was probed.
	Domain string `json:"domain"`
	// Registered reports whether a registration was confirmed. A failed or
	// timed-out lookup leaves this false; see LookupError.
	Registered bool `json:"registered"`
	// CreationDate is the registration date reported by WHOIS, when known.
	CreationDate *time.Time `json:"creationDate,omitempty"`
	// Registrar is the registrar name reported by WHOIS, when known.
	Registrar string `json:"registrar,omitempty"`
	// DNS contains the resolved records. Only populated for registered domains.
	DNS DNSRecords `json:"dns"`
	// LookupError records why a lookup degraded to "not registered", so a
	// transient failure stays distinguishable from a confirmed-unregistered
	// result in stored output.
	LookupError string `json:"lookupError,omitempty"`
}

// TypoScanResult holds the outcome of probing all single-edit variants of a
// domain: every candidate that was checked and the subset confirmed
// registered, annotated with registrar, creation date and DNS records.
type TypoScanResult struct {
	OriginalDomain     string               `json:"originalDomain"`
	VariantsChecked    []string             `json:"variantsChecked"`
	RegisteredVariants []RegistrationRecord `json:"registeredVariants"`
}

// TypoScan represents a single typosquatting scan request and its current
// state. It tracks the target domain, status, result, error information, and
// timestamps.
type TypoScan struct {
	// ID is the unique identifier of the scan.
	ID ScanID `json:"id"`
	// UserID is the identifier of the user who requested the scan.
	UserID UserID `json:"userId"`

	// Domain is the target that will be probed, e.g. "example.com".
	Domain string `json:"domain"`
	// Status is the current lifecycle state of the scan.
	Status ScanStatus `json:"status"`
	// Result contains the latest known outcome of the scan.
	Result TypoScanResult `json:"result"`

	// Attempts is the number of times the system has tried to process this scan.
	Attempts uint `json:"attempts"`
	// LastError stores the most recent error message, if any, encountered while processing the scan.
	LastError string `json:"-"`

	// CreatedAt is the time when the scan request was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time when the scan was last updated (e.g., status or result changed).
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the scan was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}
