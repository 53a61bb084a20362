package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// MetricEntry is one labeled value in the summary bundle. Section
// headers are entries with an empty string value, kept because
// existing consumers group the display by them.
type MetricEntry struct {
	Label string
	Value any
}

// SummaryMetrics is the ordered, flat mapping of metric label to
// scalar (or categorical) value produced by the analyzer. Insertion
// order is part of the external contract, so it marshals as an
// ordered JSON object rather than a Go map.
type SummaryMetrics struct {
	entries []MetricEntry
	index   map[string]int
}

// NewSummaryMetrics returns an empty bundle.
func NewSummaryMetrics() *SummaryMetrics {
	return &SummaryMetrics{index: make(map[string]int)}
}

// Set appends a labeled value, or replaces it in place if the label
// already exists.
func (m *SummaryMetrics) Set(label string, v any) {
	if i, ok := m.index[label]; ok {
		m.entries[i].Value = v
		return
	}
	m.index[label] = len(m.entries)
	m.entries = append(m.entries, MetricEntry{Label: label, Value: v})
}

// Section appends a display-grouping pseudo-entry.
func (m *SummaryMetrics) Section(label string) {
	m.Set(label, "")
}

// Get returns the value for label.
func (m *SummaryMetrics) Get(label string) (any, bool) {
	i, ok := m.index[label]
	if !ok {
		return nil, false
	}
	return m.entries[i].Value, true
}

// Float returns the value for label as a float64, or 0 if absent or
// not numeric.
func (m *SummaryMetrics) Float(label string) float64 {
	v, ok := m.Get(label)
	if !ok {
		return 0
	}
	f, _ := v.(float64)
	return f
}

// Entries returns the entries in insertion order.
func (m *SummaryMetrics) Entries() []MetricEntry {
	return m.entries
}

// MarshalJSON emits an insertion-ordered JSON object. encoding/json
// rejects non-finite numbers, so the asymmetry score's +Inf (and any
// other non-finite value) is encoded as the strings "Infinity",
// "-Infinity" or "NaN".
func (m *SummaryMetrics) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if err := appendMetricValue(&buf, e.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func appendMetricValue(buf *bytes.Buffer, v any) error {
	switch x := v.(type) {
	case float64:
		switch {
		case math.IsInf(x, 1):
			buf.WriteString(`"Infinity"`)
		case math.IsInf(x, -1):
			buf.WriteString(`"-Infinity"`)
		case math.IsNaN(x):
			buf.WriteString(`"NaN"`)
		default:
			buf.Write(strconv.AppendFloat(nil, x, 'g', -1, 64))
		}
		return nil
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(b)
		return nil
	}
}
