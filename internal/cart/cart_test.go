package cart

import (
	"testing"

	"storefront/internal/models"

	"github.com/stretchr/testify/assert"
)

func salePrice(v int64) *int64 {
	return &v
}

func TestTotalUsesSalePriceWhenSet(t *testing.T) {
	lines := []models.CartLine{
		{ProductID: 1, Price: 1000, Quantity: 2},
		{ProductID: 2, Price: 800, SalePrice: salePrice(500), Quantity: 1},
	}

	assert.Equal(t, int64(2500), Total(lines))
}

func TestTotalEmptyCart(t *testing.T) {
	assert.Equal(t, int64(0), Total(nil))
}

func TestAddSnapshotsProduct(t *testing.T) {
	sess := &models.CartSession{}
	product := &models.Product{ID: 1, Name: "Mug", Price: 1000, Image: "mug.jpg"}

	Add(sess, product, 2)

	assert.Len(t, sess.Lines, 1)
	assert.Equal(t, "Mug", sess.Lines[0].Name)
	assert.Equal(t, 2, sess.Lines[0].Quantity)
	assert.Equal(t, int64(2000), sess.Total)
}

func TestAddDuplicateProductKeepsFirstLine(t *testing.T) {
	sess := &models.CartSession{}
	product := &models.Product{ID: 1, Price: 1000}

	Add(sess, product, 2)
	Add(sess, product, 5)

	assert.Len(t, sess.Lines, 1)
	assert.Equal(t, 2, sess.Lines[0].Quantity)
	assert.Equal(t, int64(2000), sess.Total)
}

func TestRemove(t *testing.T) {
	sess := &models.CartSession{}
	Add(sess, &models.Product{ID: 1, Price: 1000}, 2)
	Add(sess, &models.Product{ID: 2, Price: 500}, 1)

	Remove(sess, 1)

	assert.Len(t, sess.Lines, 1)
	assert.Equal(t, int64(2), sess.Lines[0].ProductID)
	assert.Equal(t, int64(500), sess.Total)
}

func TestRemoveAbsentIDIsNoop(t *testing.T) {
	sess := &models.CartSession{}
	Add(sess, &models.Product{ID: 1, Price: 1000}, 2)

	Remove(sess, 99)

	assert.Len(t, sess.Lines, 1)
	assert.Equal(t, int64(2000), sess.Total)
}

func TestAdjustIncrease(t *testing.T) {
	sess := &models.CartSession{}
	Add(sess, &models.Product{ID: 1, Price: 1000}, 1)

	Adjust(sess, 1, Increase)

	assert.Equal(t, 2, sess.Lines[0].Quantity)
	assert.Equal(t, int64(2000), sess.Total)
}

func TestAdjustDecreaseFloorsAtOne(t *testing.T) {
	sess := &models.CartSession{}
	Add(sess, &models.Product{ID: 1, Price: 1000}, 1)

	Adjust(sess, 1, Decrease)

	assert.Equal(t, 1, sess.Lines[0].Quantity)
	assert.Equal(t, int64(1000), sess.Total)
}

func TestAdjustDecrease(t *testing.T) {
	sess := &models.CartSession{}
	Add(sess, &models.Product{ID: 1, Price: 1000}, 3)

	Adjust(sess, 1, Decrease)

	assert.Equal(t, 2, sess.Lines[0].Quantity)
	assert.Equal(t, int64(2000), sess.Total)
}

func TestAdjustAbsentIDIsNoop(t *testing.T) {
	sess := &models.CartSession{}
	Add(sess, &models.Product{ID: 1, Price: 1000}, 2)

	Adjust(sess, 99, Increase)

	assert.Len(t, sess.Lines, 1)
	assert.Equal(t, 2, sess.Lines[0].Quantity)
	assert.Equal(t, int64(2000), sess.Total)
}

func TestMutationsKeepTotalConsistent(t *testing.T) {
	sess := &models.CartSession{}

	Add(sess, &models.Product{ID: 1, Price: 1000}, 2)
	Add(sess, &models.Product{ID: 2, Price: 800, SalePrice: salePrice(500)}, 1)
	assert.Equal(t, Total(sess.Lines), sess.Total)

	Adjust(sess, 2, Increase)
	assert.Equal(t, Total(sess.Lines), sess.Total)

	Remove(sess, 1)
	assert.Equal(t, Total(sess.Lines), sess.Total)

	Remove(sess, 2)
	assert.Equal(t, Total(sess.Lines), sess.Total)
	assert.Equal(t, int64(0), sess.Total)
}
