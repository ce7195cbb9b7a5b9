package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeDocumentConvertsIDsAndTimes(t *testing.T) {
	oid := primitive.NewObjectID()
	created := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	doc := bson.M{
		"_id":        oid,
		"title":      "Self-hosting n8n",
		"created_at": primitive.NewDateTimeFromTime(created),
		"updated_at": created,
	}

	out := NormalizeDocument(doc)

	require.Equal(t, oid.Hex(), out["_id"])
	require.Equal(t, "2025-03-14T09:26:53Z", out["created_at"])
	require.Equal(t, "2025-03-14T09:26:53Z", out["updated_at"])
	require.Equal(t, "Self-hosting n8n", out["title"])
}

func TestNormalizeDocumentRecursesIntoNestedValues(t *testing.T) {
	oid := primitive.NewObjectID()

	doc := bson.M{
		"meta": bson.M{"author_id": oid},
		"revisions": bson.A{
			bson.M{"at": primitive.NewDateTimeFromTime(time.Unix(1700000000, 0))},
			"v1",
		},
	}

	out := NormalizeDocument(doc)

	meta, ok := out["meta"].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, oid.Hex(), meta["author_id"])

	revisions, ok := out["revisions"].([]interface{})
	require.True(t, ok)
	first, ok := revisions[0].(map[string]interface{})
	require.True(t, ok)
	require.IsType(t, "", first["at"])
	require.Equal(t, "v1", revisions[1])
}

func TestNormalizeDocumentPassesUnexpectedValuesThrough(t *testing.T) {
	// Products are written out-of-band; listing must not reshape whatever
	// is actually stored, a negative price included.
	doc := bson.M{
		"price":  -3.5,
		"weird":  int32(7),
		"truthy": true,
	}

	out := NormalizeDocument(doc)

	require.Equal(t, -3.5, out["price"])
	require.Equal(t, int32(7), out["weird"])
	require.Equal(t, true, out["truthy"])
}
