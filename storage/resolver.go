package storage

import "context"

// AssetResolver maps a stored object path to a time-bounded retrieval
// URL. Resolve returns apperr.ErrNoRecordFound (wrapped) for an empty
// path; callers that can live without the asset degrade to an empty URL.
type AssetResolver interface {
	Resolve(ctx context.Context, path string) (string, error)
}
