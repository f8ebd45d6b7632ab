package kv

import (
	"context"
	"encoding/json"
	"fmt"
)

// ReadJSON decodes the value stored at key into out. It reports false when
// the key is absent, leaving out untouched.
func ReadJSON(ctx context.Context, s Store, key string, out any) (bool, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return true, fmt.Errorf("failed to decode kv[%s]: %w", key, err)
	}
	return true, nil
}

func WriteJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode kv[%s]: %w", key, err)
	}
	return s.Set(ctx, key, raw)
}

// UpdateJSON runs fn over the decoded value at key inside Store.Update.
// An absent key is presented to fn as the zero value of T.
func UpdateJSON[T any](ctx context.Context, s Store, key string, fn func(cur T) (T, error)) error {
	return s.Update(ctx, key, func(raw []byte) ([]byte, error) {
		var cur T
		if raw != nil {
			if err := json.Unmarshal(raw, &cur); err != nil {
				return nil, fmt.Errorf("failed to decode kv[%s]: %w", key, err)
			}
		}

		next, err := fn(cur)
		if err != nil {
			return nil, err
		}

		out, err := json.Marshal(next)
		if err != nil {
			return nil, fmt.Errorf("failed to encode kv[%s]: %w", key, err)
		}
		return out, nil
	})
}
