//go:build unit

package docstore_test

import (
	"testing"
	"time"

	"storefront/internal/infra/docstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func rawField(t *testing.T, value any) bson.RawValue {
	t.Helper()
	data, err := bson.Marshal(bson.D{{Key: "v", Value: value}})
	require.NoError(t, err)
	return bson.Raw(data).Lookup("v")
}

func TestInstantFromBSON(t *testing.T) {
	want := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		value     any
		wantValid bool
	}{
		{name: "bson date", value: want, wantValid: true},
		{name: "iso string", value: "2025-07-01T00:00:00Z", wantValid: true},
		{name: "date only string", value: "2025-07-01", wantValid: true},
		{name: "bson timestamp", value: bson.Timestamp{T: uint32(want.Unix())}, wantValid: true},
		{name: "seconds document", value: bson.D{{Key: "seconds", Value: want.Unix()}, {Key: "nanoseconds", Value: int32(0)}}, wantValid: true},
		{name: "underscored seconds document", value: bson.D{{Key: "_seconds", Value: int32(want.Unix())}}, wantValid: true},
		{name: "garbage string", value: "next tuesday"},
		{name: "null", value: nil},
		{name: "number", value: int64(42)},
		{name: "document without seconds", value: bson.D{{Key: "when", Value: "soon"}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := docstore.InstantFromBSON(rawField(t, tc.value))

			assert.Equal(t, tc.wantValid, got.IsValid())
			if tc.wantValid {
				gotTime, _ := got.Time()
				assert.True(t, want.Equal(gotTime), "expected %v but got %v", want, gotTime)
			}
		})
	}
}

func TestInstantFromBSON_MissingField(t *testing.T) {
	assert.False(t, docstore.InstantFromBSON(bson.RawValue{}).IsValid())
}
