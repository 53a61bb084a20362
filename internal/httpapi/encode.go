package httpapi

import (
	"math"
	"strconv"
)

// floatColumn marshals a trial column as a JSON array. encoding/json
// rejects non-finite numbers outright, which would fail the whole
// response over a single overflowed trial; non-finite values encode as
// null instead, which plotting layers skip.
type floatColumn []float64

func (c floatColumn) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, len(c)*8+2)
	buf = append(buf, '[')
	for i, v := range c {
		if i > 0 {
			buf = append(buf, ',')
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			buf = append(buf, "null"...)
			continue
		}
		buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
	}
	return append(buf, ']'), nil
}
