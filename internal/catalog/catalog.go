// Package catalog holds the read-only collection of image series shown by the
// viewer together with the patient record they belong to.
package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrEmpty       = errors.New("catalog has no series")
	ErrDuplicateID = errors.New("duplicate series id")
	ErrNoFrames    = errors.New("series has no frames")
)

// Metadata is display-only information attached to a series.
type Metadata struct {
	Modality    string `yaml:"modality,omitempty"`
	Description string `yaml:"description,omitempty"`
	Notes       string `yaml:"notes,omitempty"`
}

// Series is a named, ordered set of frames.
type Series struct {
	ID         int      `yaml:"id"`
	Name       string   `yaml:"name"`
	FrameCount int      `yaml:"count,omitempty"`
	Frames     []string `yaml:"frames,omitempty"`
	Metadata   Metadata `yaml:"metadata,omitempty"`
}

// Patient identifies whose study the catalog describes.
type Patient struct {
	Name      string `yaml:"name"`
	ID        string `yaml:"id"`
	BirthDate string `yaml:"dob,omitempty"`
}

// Catalog is an ordered, immutable list of series. It is never empty.
type Catalog struct {
	patient Patient
	series  []Series
	index   map[int]int
}

// New validates the series list and builds a catalog. A series without an
// explicit frame count takes the number of frame references.
func New(patient Patient, series []Series) (*Catalog, error) {
	if len(series) == 0 {
		return nil, ErrEmpty
	}
	c := &Catalog{
		patient: patient,
		series:  make([]Series, 0, len(series)),
		index:   make(map[int]int, len(series)),
	}
	for _, s := range series {
		if _, dup := c.index[s.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, s.ID)
		}
		if s.FrameCount <= 0 {
			s.FrameCount = len(s.Frames)
		}
		if s.FrameCount <= 0 {
			return nil, fmt.Errorf("series %d (%s): %w", s.ID, s.Name, ErrNoFrames)
		}
		s.Frames = append([]string(nil), s.Frames...)
		c.index[s.ID] = len(c.series)
		c.series = append(c.series, s)
	}
	return c, nil
}

// Patient returns the patient record.
func (c *Catalog) Patient() Patient {
	return c.patient
}

// Len reports the number of series.
func (c *Catalog) Len() int {
	return len(c.series)
}

// Series returns a copy of all series in catalog order.
func (c *Catalog) Series() []Series {
	dup := make([]Series, len(c.series))
	copy(dup, c.series)
	return dup
}

// Find looks a series up by id.
func (c *Catalog) Find(id int) (Series, bool) {
	idx, ok := c.index[id]
	if !ok {
		return Series{}, false
	}
	return c.series[idx], true
}

// First returns the first series in catalog order.
func (c *Catalog) First() Series {
	return c.series[0]
}

// Frame returns the frame reference for a 1-based index, or "" when the
// series carries fewer references than frames.
func (s Series) Frame(index int) string {
	if index < 1 || len(s.Frames) == 0 {
		return ""
	}
	if index > len(s.Frames) {
		return s.Frames[len(s.Frames)-1]
	}
	return s.Frames[index-1]
}
