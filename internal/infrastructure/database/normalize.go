package database

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NormalizeDocument converts store-native identifier and temporal values to
// their textual form so they never cross the API boundary as driver types.
// The conversion is keyed on value type; everything else passes through
// untouched, including values a stricter schema would have rejected
// (documents are written out-of-band and must survive listing as-is).
func NormalizeDocument(doc bson.M) map[string]interface{} {
	out := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case primitive.ObjectID:
		return val.Hex()
	case primitive.DateTime:
		return val.Time().UTC().Format(time.RFC3339)
	case time.Time:
		return val.UTC().Format(time.RFC3339)
	case bson.M:
		return NormalizeDocument(val)
	case map[string]interface{}:
		return NormalizeDocument(bson.M(val))
	case bson.A:
		return normalizeSlice(val)
	case []interface{}:
		return normalizeSlice(val)
	default:
		return v
	}
}

func normalizeSlice(in []interface{}) []interface{} {
	out := make([]interface{}, len(in))
	for i, v := range in {
		out[i] = normalizeValue(v)
	}
	return out
}

// stringify is the fallback for non-ObjectID inserted ids (e.g. documents
// inserted with a caller-provided _id).
func stringify(v interface{}) string {
	return fmt.Sprintf("%v", v)
}
