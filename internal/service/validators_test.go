package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantErr bool
	}{
		{name: "positive", amount: "0.01"},
		{name: "large", amount: "123456789012345.6789"},
		{name: "trailing zeros past the scale", amount: "1.500000"},
		{name: "zero", amount: "0", wantErr: true},
		{name: "negative", amount: "-1", wantErr: true},
		{name: "fifth decimal place", amount: "0.00005", wantErr: true},
		{name: "rounds to zero", amount: "0.00001", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAmount(dec(tt.amount))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalizeNationalID(t *testing.T) {
	assert.Equal(t, "52998224725", NormalizeNationalID("529.982.247-25"))
	assert.Equal(t, "52998224725", NormalizeNationalID(" 52998224725 "))
	assert.Equal(t, "5299822472a", NormalizeNationalID("529.982.247-2a"))
}

func TestValidateNationalID(t *testing.T) {
	tests := []struct {
		name       string
		nationalID string
		wantErr    bool
	}{
		{name: "valid", nationalID: "52998224725"},
		{name: "another valid number", nationalID: "11144477735"},
		{name: "wrong first check digit", nationalID: "52998224735", wantErr: true},
		{name: "wrong second check digit", nationalID: "52998224726", wantErr: true},
		{name: "repeated digits", nationalID: "11111111111", wantErr: true},
		{name: "too short", nationalID: "5299822472", wantErr: true},
		{name: "formatted", nationalID: "529.982.247-25", wantErr: true},
		{name: "letters", nationalID: "5299822472a", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNationalID(tt.nationalID)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPaging_Normalize(t *testing.T) {
	paging := Paging{DefaultSize: 20, MaxSize: 100}

	size, err := paging.Normalize(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 20, size)

	size, err = paging.Normalize(3, 500)
	require.NoError(t, err)
	assert.Equal(t, 100, size)

	_, err = paging.Normalize(-1, 10)
	assert.Error(t, err)

	_, err = paging.Normalize(math.MaxInt/100+1, 100)
	assert.ErrorContains(t, err, "invalid page")

	size, err = paging.Normalize(math.MaxInt/20, 0)
	require.NoError(t, err)
	assert.Equal(t, 20, size)
}
