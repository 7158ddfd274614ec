package ports

import "go.trai.ch/gha-validator/internal/core/domain"

// SnapshotWriter persists a debug copy of the loaded configuration.
//
//go:generate mockgen -source=snapshot.go -destination=mocks/mock_snapshot.go -package=mocks
type SnapshotWriter interface {
	// Write serializes cfg to path and returns a digest of the written bytes.
	Write(path string, cfg *domain.Config) (string, error)
}
