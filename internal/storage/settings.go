package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// GetSettingRaw returns the JSON-encoded value stored under key, or nil when
// the key is absent. Absence is a nil read, not an error.
func (s *Store) GetSettingRaw(ctx context.Context, key string) (json.RawMessage, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying setting %q: %w", key, err)
	}
	return json.RawMessage(value), nil
}

// SaveSetting upserts a setting. The value may be any JSON-serializable
// shape; the store does not validate it — the caller owns each key's meaning.
func (s *Store) SaveSetting(ctx context.Context, key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding setting %q: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`,
		key, string(encoded))
	if err != nil {
		return fmt.Errorf("%w: saving setting %q: %v", ErrWriteFailed, key, err)
	}
	return nil
}

// Setting is the typed accessor over the flat settings collection: it decodes
// the stored value into T, or returns def when the key is absent.
func Setting[T any](ctx context.Context, s *Store, key string, def T) (T, error) {
	raw, err := s.GetSettingRaw(ctx, key)
	if err != nil {
		return def, err
	}
	if raw == nil {
		return def, nil
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return def, fmt.Errorf("decoding setting %q: %w", key, err)
	}
	return v, nil
}
