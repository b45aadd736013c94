package storage

import "context"

// NopRemover discards delete requests. Used when no object store is
// configured (local development); artifact keys are left behind.
type NopRemover struct{}

func (NopRemover) Delete(ctx context.Context, key string) error { return nil }
