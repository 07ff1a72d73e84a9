package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaFromHost(t *testing.T) {
	tests := []struct {
		host   string
		schema string
	}{
		{"acme.shiftbook.com.au", "acme"},
		{"shiftbook.com.au", DefaultSchema},
		{"localhost", DefaultSchema},
		{"www.shiftbook.com.au", DefaultSchema},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			assert.Equal(t, tt.schema, SchemaFromHost(tt.host))
		})
	}
}
