package common

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateOnlyUnmarshal(t *testing.T) {
	var d DateOnly
	assert.NoError(t, json.Unmarshal([]byte(`"25/12/2024"`), &d))
	assert.Equal(t, time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC), d.Time)

	assert.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.True(t, d.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"2024-12-25"`), &d))
}

func TestDateOnlyMarshal(t *testing.T) {
	d := DateOnly{Time: time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)}
	b, err := json.Marshal(d)
	assert.NoError(t, err)
	assert.Equal(t, `"25/12/2024"`, string(b))

	b, err = json.Marshal(DateOnly{})
	assert.NoError(t, err)
	assert.Equal(t, `""`, string(b))
}
