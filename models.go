package main

import (
	"bytes"
	"encoding/json"
	"math"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document is a schema-less order record. Field order is kept as stored.
type Document bson.D

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(jsonValue(e.Value))
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// jsonValue maps driver types onto plain JSON values.
func jsonValue(v interface{}) interface{} {
	switch t := v.(type) {
	case primitive.D:
		return Document(t)
	case primitive.A:
		out := make([]interface{}, len(t))
		for i, item := range t {
			out[i] = jsonValue(item)
		}
		return out
	case primitive.M:
		out := make(map[string]interface{}, len(t))
		for k, item := range t {
			out[k] = jsonValue(item)
		}
		return out
	case float64:
		// JSON has no NaN or Infinity; render them as null
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil
		}
		return t
	case float32:
		if math.IsNaN(float64(t)) || math.IsInf(float64(t), 0) {
			return nil
		}
		return t
	case primitive.Binary:
		// []byte marshals as a base64 string
		return t.Data
	case primitive.ObjectID:
		return t.Hex()
	case primitive.DateTime:
		return t.Time().UTC().Format(isoMillis)
	case primitive.Decimal128:
		return t.String()
	case primitive.Timestamp:
		return t.T
	case primitive.Null, primitive.Undefined:
		return nil
	default:
		return v
	}
}
