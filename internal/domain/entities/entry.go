package entities

import (
	"fmt"
	"strings"

	"scerr/internal/domain"
)

const (
	maxFacilityCode = 1<<12 - 1
	maxCode         = 999
)

// Facility groups related error codes.
type Facility struct {
	Name string
	Code uint32
}

// NewFacility validates that code fits in 12 bits.
func NewFacility(name string, code uint32) (Facility, error) {
	if code > maxFacilityCode {
		return Facility{}, fmt.Errorf("%w: 0x%X", domain.ErrFacilityOutOfRange, code)
	}
	return Facility{Name: name, Code: code}, nil
}

// Entry is a single error code definition.
type Entry struct {
	Facility    Facility
	Name        string
	Code        uint16
	Severity    domain.Severity
	Description string
	Remarks     []string
}

// NewEntry validates code against the per-facility range.
func NewEntry(facility Facility, name string, code uint16, severity domain.Severity, description string, remarks []string) (Entry, error) {
	if code > maxCode {
		return Entry{}, fmt.Errorf("%w: 0x%X", domain.ErrCodeOutOfRange, code)
	}
	return Entry{
		Facility:    facility,
		Name:        name,
		Code:        code,
		Severity:    severity,
		Description: description,
		Remarks:     append([]string(nil), remarks...),
	}, nil
}

// ConstantName is the identifier generated code uses for the entry.
func (e Entry) ConstantName() string {
	return strings.ToUpper(e.Name)
}

// CodeWithFacility is the error code the entry is published under.
func (e Entry) CodeWithFacility() domain.ErrorCode {
	return domain.ErrorCode(e.Facility.Code*1000 + uint32(e.Code))
}
