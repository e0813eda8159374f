package infra

import (
	"testing"

	"github.com/amirasaad/itsobank/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestNewDBConnection_RequiresURL(t *testing.T) {
	_, err := NewDBConnection(&config.DB{}, "test")
	assert.ErrorIs(t, err, ErrDatabaseURLMissing)

	_, err = NewDBConnection(nil, "test")
	assert.ErrorIs(t, err, ErrDatabaseURLMissing)
}
