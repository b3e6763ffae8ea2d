package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/tair/jewelkraft/internal/orders/repository"
)

func TestProvideOrderRepository_IsTraced(t *testing.T) {
	repo := ProvideOrderRepository(&gorm.DB{})
	assert.IsType(t, &repository.TracingOrderRepository{}, repo)
}
