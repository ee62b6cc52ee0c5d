package backpack

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampDecodesEveryForm(t *testing.T) {
	tests := map[string]Timestamp{
		`1700000000000`:                    1700000000000,
		`1700000000000.0`:                  1700000000000,
		`"1700000000000"`:                  1700000000000,
		`"2023-11-14T22:13:20Z"`:           1700000000000,
		`"2023-11-14T22:13:20.123"`:        1700000000123,
		`"2023-11-14 22:13:20"`:            1700000000000,
		`"2023-11-14T23:13:20+01:00"`:      1700000000000,
		`"2023-11-14"`:                     1699920000000,
		`"2023-11-14T22:13:20.123456789Z"`: 1700000000123,
	}

	for raw, expected := range tests {
		var ts Timestamp

		require.NoError(t, json.Unmarshal([]byte(raw), &ts), raw)
		assert.Equal(t, expected, ts, raw)
	}
}

func TestTimestampRejectsGarbage(t *testing.T) {
	var ts Timestamp

	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`true`), &ts))
}

func TestTimestampNullLeavesValue(t *testing.T) {
	ts := Timestamp(42)

	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	assert.Equal(t, Timestamp(42), ts)
}

func TestTimestampEncodesMilliseconds(t *testing.T) {
	raw, err := json.Marshal(Timestamp(1700000000000))
	require.NoError(t, err)

	assert.Equal(t, `1700000000000`, string(raw))
	assert.Equal(t, "2023-11-14T22:13:20Z", Timestamp(1700000000000).String())
}

func TestFlexInt64(t *testing.T) {
	var v struct {
		A FlexInt64 `json:"a"`
		B FlexInt64 `json:"b"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"a":"12","b":34}`), &v))
	assert.Equal(t, FlexInt64(12), v.A)
	assert.Equal(t, FlexInt64(34), v.B)

	assert.Error(t, json.Unmarshal([]byte(`{"a":"1.5"}`), &v))
}
