package pet

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/raywall/pet-crud-service/pkg/kvstore"
)

// Service implements the four CRUD operations over an injected
// key-value store. It is stateless between invocations: every call
// performs one validation step and at most one store round-trip, with
// no retries and no cached state.
type Service struct {
	store kvstore.Store[Record]
	valid *validator.Validate

	// Injected for deterministic tests.
	now   func() time.Time
	newID func() string
}

// NewService wires a Service to the given store.
func NewService(store kvstore.Store[Record]) *Service {
	return &Service{
		store: store,
		valid: validator.New(),
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Create stores a new record. A missing `id` is filled with a random
// UUID; a caller-supplied `id` is taken as given, last writer wins —
// no uniqueness check is performed before the write. The stored record
// (with resolved id and timestamps) is returned.
func (s *Service) Create(ctx context.Context, record Record) (Record, error) {
	if len(record) == 0 {
		return nil, ErrInvalidPayload
	}

	id := record.ID()
	if record.HasID() {
		// Present but not a usable string key.
		if err := s.validateID(id); err != nil {
			return nil, fmt.Errorf("%w: id must be a non-empty string", ErrInvalidPayload)
		}
	} else {
		id = s.newID()
	}

	now := s.timestamp()
	record[AttrID] = id
	record[AttrCreated] = now
	record[AttrModified] = now

	if err := s.store.Put(ctx, id, record); err != nil {
		return nil, fmt.Errorf("creating record %s: %w", id, err)
	}

	log.Ctx(ctx).Debug().Str("pet_id", id).Msg("record created")
	return record, nil
}

// Get performs a point lookup. kvstore.ErrNotFound passes through so
// the transport can answer 404 instead of 500.
func (s *Service) Get(ctx context.Context, id string) (Record, error) {
	if err := s.validateID(id); err != nil {
		return nil, err
	}

	record, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return *record, nil
}

// Update replaces the record at the path id wholesale — no merge with
// whatever was stored before. The path id is authoritative: a body id,
// when present, must agree with it.
func (s *Service) Update(ctx context.Context, id string, record Record) (Record, error) {
	if err := s.validateID(id); err != nil {
		return nil, err
	}
	if len(record) == 0 {
		return nil, ErrInvalidPayload
	}
	if record.HasID() && record.ID() != id {
		return nil, ErrIDMismatch
	}

	record[AttrID] = id
	record[AttrModified] = s.timestamp()

	if err := s.store.Put(ctx, id, record); err != nil {
		return nil, fmt.Errorf("updating record %s: %w", id, err)
	}

	log.Ctx(ctx).Debug().Str("pet_id", id).Msg("record replaced")
	return record, nil
}

// Delete removes the record unconditionally. Deleting an absent id
// succeeds; the store's delete is idempotent.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.validateID(id); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting record %s: %w", id, err)
	}

	log.Ctx(ctx).Debug().Str("pet_id", id).Msg("record deleted")
	return nil
}

func (s *Service) validateID(id string) error {
	if err := s.valid.Var(id, "required,max=1024"); err != nil {
		return ErrMissingID
	}
	return nil
}

func (s *Service) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}
