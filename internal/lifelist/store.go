package lifelist

import (
	"context"
	"fmt"
	"log/slog"

	"lifelist/internal/logging"
)

// LifeListKey is the key the life list is persisted under.
const LifeListKey = "ebird_life_list"

// KeyValue is the durable string store the life list is persisted to.
// Get reports whether the key exists. Remove of a missing key is not an error.
type KeyValue interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Store persists one life list in a KeyValue.
type Store struct {
	kv     KeyValue
	logger *slog.Logger
}

// NewStore wraps kv. A nil logger discards output.
func NewStore(kv KeyValue, logger *slog.Logger) *Store {
	return &Store{
		kv:     kv,
		logger: logging.NewComponentLogger(logger, "lifelist-store"),
	}
}

// Save replaces the stored list.
func (s *Store) Save(ctx context.Context, list List) error {
	encoded, err := Encode(list)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, LifeListKey, encoded); err != nil {
		return fmt.Errorf("save life list: %w", err)
	}
	s.logger.Debug("life list saved", logging.Int("species", len(list)))
	return nil
}

// Load returns the stored list. A missing or undecodable value reports
// (nil, false, nil); only backend failures are returned as errors.
func (s *Store) Load(ctx context.Context) (List, bool, error) {
	raw, ok, err := s.kv.Get(ctx, LifeListKey)
	if err != nil {
		return nil, false, fmt.Errorf("load life list: %w", err)
	}
	if !ok {
		return nil, false, nil
	}
	list, ok := Decode(raw)
	if !ok {
		logging.WarnWithContext(logging.WithContext(ctx, s.logger), "stored life list unreadable; treating as empty", "lifelist_decode_failed",
			logging.String("key", LifeListKey),
			logging.Int("bytes", len(raw)),
			logging.String(logging.FieldErrorHint, "run lifelist import to rebuild the list"),
			logging.String(logging.FieldImpact, "lifer checks see no prior observations"),
		)
		return nil, false, nil
	}
	return list, true, nil
}

// Clear removes the stored list. Clearing an absent list succeeds.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Remove(ctx, LifeListKey); err != nil {
		return fmt.Errorf("clear life list: %w", err)
	}
	s.logger.Debug("life list cleared")
	return nil
}
