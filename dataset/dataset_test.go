package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalize(t *testing.T) {
	oid, err := primitive.ObjectIDFromHex("65a1b2c3d4e5f6a7b8c9d0e1")
	require.NoError(t, err)
	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	price, err := primitive.ParseDecimal128("19.99")
	require.NoError(t, err)

	data := bson.A{
		bson.D{
			{Key: "_id", Value: oid},
			{Key: "created", Value: primitive.NewDateTimeFromTime(created)},
			{Key: "price", Value: price},
			{Key: "tags", Value: bson.A{"a", "b"}},
			{Key: "meta", Value: bson.M{"deleted": primitive.Null{}}},
		},
	}

	got := Normalize(data)
	expected := []interface{}{
		primitive.D{
			{Key: "_id", Value: "65a1b2c3d4e5f6a7b8c9d0e1"},
			{Key: "created", Value: created},
			{Key: "price", Value: 19.99},
			{Key: "tags", Value: []interface{}{"a", "b"}},
			{Key: "meta", Value: map[string]interface{}{"deleted": nil}},
		},
	}
	assert.Equal(t, expected, got)
}

func TestFields(t *testing.T) {
	fields, ok := Fields(bson.D{{Key: "zeta", Value: 1}, {Key: "alpha", Value: 2}})
	require.True(t, ok)
	assert.Equal(t, primitive.D{{Key: "zeta", Value: 1}, {Key: "alpha", Value: 2}}, fields)

	// 普通 map 没有顺序，按键排序
	fields, ok = Fields(map[string]interface{}{"zeta": 1, "alpha": 2})
	require.True(t, ok)
	assert.Equal(t, primitive.D{{Key: "alpha", Value: 2}, {Key: "zeta", Value: 1}}, fields)

	fields, ok = Fields(bson.M{"b": 1})
	require.True(t, ok)
	assert.Equal(t, primitive.D{{Key: "b", Value: 1}}, fields)

	_, ok = Fields([]interface{}{1})
	assert.False(t, ok)
}

func TestPlain(t *testing.T) {
	in := []interface{}{bson.D{{Key: "a", Value: bson.D{{Key: "b", Value: 1}}}}}
	assert.Equal(t, []interface{}{
		map[string]interface{}{"a": map[string]interface{}{"b": 1}},
	}, Plain(in))
}

func TestNormalizePlainJSON(t *testing.T) {
	data := []interface{}{map[string]interface{}{"a": 1.0, "b": "x"}}
	assert.Equal(t, data, Normalize(data))
	assert.Equal(t, "x", Normalize("x"))
	assert.Nil(t, Normalize(nil))
}

func TestRecords(t *testing.T) {
	assert.Len(t, Records(bson.A{bson.M{"a": 1}, bson.M{"a": 2}}), 2)
	assert.Len(t, Records([]map[string]interface{}{{"a": 1}}), 1)
	assert.Nil(t, Records(map[string]interface{}{"a": 1}))
}

func TestGroupBy(t *testing.T) {
	records := []interface{}{
		map[string]interface{}{"country": "DE", "v": 1},
		map[string]interface{}{"country": "FR", "v": 2},
		map[string]interface{}{"country": "DE", "v": 3},
		map[string]interface{}{"v": 4},
		map[string]interface{}{"country": nil, "v": 5},
	}

	for _, field := range []string{"country", "root[].country"} {
		t.Run(field, func(t *testing.T) {
			rows, err := GroupBy(records, field)
			require.NoError(t, err)
			list := rows.List()
			require.Len(t, list, 2)
			assert.Equal(t, "DE", list[0].GroupValue)
			assert.Equal(t, []interface{}{records[0], records[2]}, list[0].Records)
			assert.Equal(t, "FR", list[1].GroupValue)
			assert.Equal(t, []interface{}{records[1]}, list[1].Records)
		})
	}

	_, err := GroupBy(records, "root[].a[].b[].c")
	assert.Error(t, err)
}
