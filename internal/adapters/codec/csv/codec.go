package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bnema/layerstats/internal/domain"
	"github.com/bnema/layerstats/internal/ports"
	"github.com/charmbracelet/log"
)

const (
	circleSeparator     = "; "
	circleDelimiter     = ";"
	componentSeparator  = ","
	layerFieldCount     = 3
	averageFieldCount   = 2
	circleComponentSize = 3
)

type Codec struct {
	policy DecodePolicy
	logger *log.Logger
}

var _ ports.RecordCodec = (*Codec)(nil)

func NewCodec(policy DecodePolicy, logger *log.Logger) *Codec {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Codec{policy: policy, logger: logger}
}

func (c *Codec) WriteLayers(w io.Writer, layers []domain.Layer) error {
	writer := csv.NewWriter(w)
	for _, layer := range layers {
		if err := writer.Write([]string{layer.Name, layer.Color, formatCircles(layer.Circles)}); err != nil {
			return fmt.Errorf("write layer %q: %w", layer.Name, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush layer records: %w", err)
	}

	return nil
}

func (c *Codec) WriteAverages(w io.Writer, records []domain.AverageRecord) error {
	writer := csv.NewWriter(w)
	for _, record := range records {
		if err := writer.Write([]string{record.Name, strconv.FormatFloat(record.AverageArea, 'f', -1, 64)}); err != nil {
			return fmt.Errorf("write average %q: %w", record.Name, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush average records: %w", err)
	}

	return nil
}

func (c *Codec) ReadLayers(r io.Reader) ([]domain.Layer, error) {
	layers := []domain.Layer{}
	err := c.eachRecord(r, layerFieldCount, func(row int, fields []string) error {
		circles, err := c.parseCircles(row, fields[2])
		if err != nil {
			return err
		}

		layers = append(layers, domain.Layer{
			Name:    fields[0],
			Color:   fields[1],
			Circles: circles,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return layers, nil
}

func (c *Codec) ReadAverages(r io.Reader) ([]domain.AverageRecord, error) {
	records := []domain.AverageRecord{}
	err := c.eachRecord(r, averageFieldCount, func(row int, fields []string) error {
		value, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			if c.policy.InvalidNumber == Skip {
				c.logger.Debug("skipping average with invalid number", "row", row, "value", fields[1])
				return nil
			}
			return fmt.Errorf("row %d: parse average %q: %w: %w", row, fields[1], domain.ErrInvalidNumber, err)
		}

		records = append(records, domain.AverageRecord{Name: fields[0], AverageArea: value})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (c *Codec) eachRecord(r io.Reader, minFields int, fn func(row int, fields []string) error) error {
	reader := csv.NewReader(r)
	// Field counts are checked per row below, not pinned to the first row.
	reader.FieldsPerRecord = -1

	for row := 1; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return fmt.Errorf("read records: %w", err)
			}
			if skipErr := c.malformedRow(row, err); skipErr != nil {
				return skipErr
			}
			continue
		}

		if len(record) < minFields {
			if skipErr := c.malformedRow(row, fmt.Errorf("expected %d fields, got %d", minFields, len(record))); skipErr != nil {
				return skipErr
			}
			continue
		}

		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}

		if err := fn(row, record); err != nil {
			return err
		}
	}
}

func (c *Codec) malformedRow(row int, cause error) error {
	if c.policy.MalformedRow == Skip {
		c.logger.Debug("skipping malformed row", "row", row, "err", cause)
		return nil
	}

	return fmt.Errorf("row %d: %w: %v", row, domain.ErrMalformedRow, cause)
}

func (c *Codec) parseCircles(row int, raw string) ([]domain.Circle, error) {
	circles := []domain.Circle{}

	for _, piece := range strings.Split(raw, circleDelimiter) {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}

		parts := strings.Split(piece, componentSeparator)
		if len(parts) != circleComponentSize {
			if c.policy.MalformedCircle == Skip {
				c.logger.Debug("skipping malformed circle", "row", row, "circle", piece)
				continue
			}
			return nil, fmt.Errorf("row %d: circle %q: %w", row, piece, domain.ErrMalformedCircle)
		}

		values := make([]float64, 0, circleComponentSize)
		for _, part := range parts {
			part = strings.TrimSpace(part)
			value, err := strconv.ParseFloat(part, 64)
			if err != nil {
				if c.policy.InvalidNumber == Skip {
					c.logger.Debug("skipping circle with invalid number", "row", row, "circle", piece)
					break
				}
				return nil, fmt.Errorf("row %d: circle %q: parse %q: %w: %w", row, piece, part, domain.ErrInvalidNumber, err)
			}
			values = append(values, value)
		}
		if len(values) != circleComponentSize {
			continue
		}

		circles = append(circles, domain.Circle{X: values[0], Y: values[1], Radius: values[2]})
	}

	return circles, nil
}

func formatCircles(circles []domain.Circle) string {
	parts := make([]string, 0, len(circles))
	for _, circle := range circles {
		parts = append(parts, fmt.Sprintf("%.1f,%.1f,%.1f", circle.X, circle.Y, circle.Radius))
	}

	return strings.Join(parts, circleSeparator)
}
