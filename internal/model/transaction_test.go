package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/spendsense/spendsense/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    float64
		wantErr bool
	}{
		{
			name:    "json number",
			payload: `{"name": "Kroger", "amount": 78.45}`,
			want:    78.45,
		},
		{
			name:    "negative number",
			payload: `{"name": "Tuition", "amount": -500}`,
			want:    -500,
		},
		{
			name:    "numeric string",
			payload: `{"name": "Kroger", "amount": "12.99"}`,
			want:    12.99,
		},
		{
			name:    "missing amount defaults to zero",
			payload: `{"name": "Kroger"}`,
			want:    0,
		},
		{
			name:    "null amount defaults to zero",
			payload: `{"name": "Kroger", "amount": null}`,
			want:    0,
		},
		{
			name:    "empty string defaults to zero",
			payload: `{"name": "Kroger", "amount": ""}`,
			want:    0,
		},
		{
			name:    "non-numeric string rejected",
			payload: `{"name": "Kroger", "amount": "lots"}`,
			wantErr: true,
		},
		{
			name:    "object rejected",
			payload: `{"name": "Kroger", "amount": {"value": 5}}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var txn Transaction
			err := json.Unmarshal([]byte(tt.payload), &txn)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, common.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, float64(txn.Amount), 1e-9)
		})
	}
}

func TestFeatureVectorOrdering(t *testing.T) {
	vec := NewFeatureVector([]string{"amount_abs", "is_weekend", "day_of_month"})

	assert.True(t, vec.Set("day_of_month", 14))
	assert.True(t, vec.Set("amount_abs", 5.4))
	assert.False(t, vec.Set("not_in_schema", 1), "unknown names are dropped")

	assert.Equal(t, []float64{5.4, 0, 14}, vec.Values())
	assert.Equal(t, []string{"amount_abs", "is_weekend", "day_of_month"}, vec.Names())

	val, ok := vec.Get("is_weekend")
	assert.True(t, ok)
	assert.Equal(t, 0.0, val)

	_, ok = vec.Get("not_in_schema")
	assert.False(t, ok)
}

func TestFeatureVectorMarshalJSON(t *testing.T) {
	vec := NewFeatureVector([]string{"z_last", "a_first", "m_middle"})
	require.True(t, vec.Set("a_first", 1))
	require.True(t, vec.Set("z_last", 2.5))

	data, err := json.Marshal(vec)
	require.NoError(t, err)

	// Schema order must survive serialization, not key-sorted order.
	assert.JSONEq(t, `{"z_last": 2.5, "a_first": 1, "m_middle": 0}`, string(data))
	assert.Equal(t, `{"z_last":2.5,"a_first":1,"m_middle":0}`, string(data))
}
