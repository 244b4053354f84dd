package ports

import (
	"io"

	"github.com/bnema/layerstats/internal/domain"
)

type RecordCodec interface {
	WriteLayers(w io.Writer, layers []domain.Layer) error
	ReadLayers(r io.Reader) ([]domain.Layer, error)
	WriteAverages(w io.Writer, records []domain.AverageRecord) error
	ReadAverages(r io.Reader) ([]domain.AverageRecord, error)
}
