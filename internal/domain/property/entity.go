package property

import (
	"crypto/rand"
	"encoding/base64"
	"strings"
	"time"

	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyPropertyName   = errs.Mark(errs.New("property name cannot be empty"), errs.ErrInvalidInput)
	ErrPropertyNameTooLong = errs.Mark(errs.New("property name is too long (max 255 characters)"), errs.ErrInvalidInput)
	ErrAddressTooLong      = errs.Mark(errs.New("address is too long (max 500 characters)"), errs.ErrInvalidInput)
	ErrNegativeMaxGuests   = errs.Mark(errs.New("max guests cannot be negative"), errs.ErrInvalidInput)
	ErrMissingOwner        = errs.Mark(errs.New("property must have an owner"), errs.ErrInvalidInput)
)

const (
	MaxPropertyNameLength = 255
	MaxAddressLength      = 500
	exportTokenBytes      = 24
)

// Property is the rentable unit that owns bookings. It has exactly one owner.
type Property struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	name        string
	address     *string
	description *string
	maxGuests   int
	exportToken string
	createdAt   time.Time
	updatedAt   time.Time
}

type Attributes struct {
	Name        string
	Address     *string
	Description *string
	MaxGuests   int
}

func NewProperty(ownerID uuid.UUID, attrs Attributes, now time.Time) (*Property, error) {
	if ownerID == uuid.Nil {
		return nil, ErrMissingOwner
	}
	p := &Property{
		id:          uuid.New(),
		ownerID:     ownerID,
		exportToken: NewExportToken(),
		createdAt:   now,
		updatedAt:   now,
	}
	if err := p.apply(attrs); err != nil {
		return nil, err
	}
	return p, nil
}

// Reconstruct rebuilds a persisted property without generating new identifiers.
func Reconstruct(id, ownerID uuid.UUID, attrs Attributes, exportToken string, createdAt, updatedAt time.Time) (*Property, error) {
	p := &Property{
		id:          id,
		ownerID:     ownerID,
		exportToken: exportToken,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
	if err := p.apply(attrs); err != nil {
		return nil, err
	}
	return p, nil
}

// Update replaces the mutable attributes; owner and id never change.
func (p *Property) Update(attrs Attributes, now time.Time) error {
	if err := p.apply(attrs); err != nil {
		return err
	}
	p.updatedAt = now
	return nil
}

func (p *Property) RotateExportToken(now time.Time) {
	p.exportToken = NewExportToken()
	p.updatedAt = now
}

func (p *Property) IsOwnedBy(userID uuid.UUID) bool {
	return p.ownerID == userID
}

func (p *Property) apply(attrs Attributes) error {
	name := strings.TrimSpace(attrs.Name)
	if name == "" {
		return ErrEmptyPropertyName
	}
	if len(name) > MaxPropertyNameLength {
		return ErrPropertyNameTooLong
	}
	address := trimmedOrNil(attrs.Address)
	if address != nil && len(*address) > MaxAddressLength {
		return ErrAddressTooLong
	}
	if attrs.MaxGuests < 0 {
		return ErrNegativeMaxGuests
	}

	p.name = name
	p.address = address
	p.description = trimmedOrNil(attrs.Description)
	p.maxGuests = attrs.MaxGuests
	return nil
}

func (p *Property) Attributes() Attributes {
	return Attributes{
		Name:        p.name,
		Address:     p.address,
		Description: p.description,
		MaxGuests:   p.maxGuests,
	}
}

func NewExportToken() string {
	buf := make([]byte, exportTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(buf)
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func (p *Property) ID() uuid.UUID        { return p.id }
func (p *Property) OwnerID() uuid.UUID   { return p.ownerID }
func (p *Property) Name() string         { return p.name }
func (p *Property) Address() *string     { return p.address }
func (p *Property) Description() *string { return p.description }
func (p *Property) MaxGuests() int       { return p.maxGuests }
func (p *Property) ExportToken() string  { return p.exportToken }
func (p *Property) CreatedAt() time.Time { return p.createdAt }
func (p *Property) UpdatedAt() time.Time { return p.updatedAt }
