package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type MediaType string

const (
	MediaTypeVideo MediaType = "video"
	MediaTypeImage MediaType = "image"
)

// Media is the optional showcase item of a project: a single video or image.
type Media struct {
	URL      string    `json:"url"`
	Type     MediaType `json:"type"`
	Duration *float64  `json:"duration,omitempty"`
	Format   string    `json:"format,omitempty"`
}

func (m Media) Value() (driver.Value, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal Media: %w", err)
	}
	return b, nil
}
func (m *Media) Scan(src interface{}) error {
	if src == nil {
		*m = Media{}
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("Media.Scan: expected []byte, got %T", src)
	}
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("unmarshal Media: %w", err)
	}
	return nil
}

// Images is the ordered list of gallery URLs.
type Images []string

func (i Images) Value() (driver.Value, error) {
	if i == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(i)
}
func (i *Images) Scan(src interface{}) error {
	if src == nil {
		*i = Images{}
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("Images.Scan: expected []byte, got %T", src)
	}
	return json.Unmarshal(data, i)
}
