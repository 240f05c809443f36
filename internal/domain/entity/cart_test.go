package entity

import (
	"testing"

	domainerrors "reunion/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func teeLine(qty int) CartLine {
	return CartLine{MerchandiseID: 1, Kind: KindTShirt, Name: "Reunion Tee", Quantity: qty, UnitPrice: 150000, Gender: "male", Size: "L"}
}

func tagLine(name string) CartLine {
	return CartLine{MerchandiseID: 2, Kind: KindNameTag, Name: "Name Tag", Quantity: 1, UnitPrice: 30000, NameTag: &NameTagInfo{DisplayName: name, DisplayClass: "12A1"}}
}

func tagInput(name string) CartLine {
	return CartLine{MerchandiseID: 2, Name: "Name Tag", UnitPrice: 30000, NameTag: &NameTagInfo{DisplayName: name, DisplayClass: "12A1"}}
}

func TestCart_AddItem_MergesByIDGenderSize(t *testing.T) {
	cart, err := Cart{}.AddItem(teeLine(1))
	require.NoError(t, err)

	cart, err = cart.AddItem(teeLine(2))
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 3, cart[0].Quantity)

	differentSize := teeLine(1)
	differentSize.Size = "XL"
	cart, err = cart.AddItem(differentSize)
	require.NoError(t, err)
	assert.Len(t, cart, 2)
}

func TestCart_AddItem_RejectsNameTag(t *testing.T) {
	_, err := Cart{}.AddItem(tagLine("An"))
	assert.Equal(t, domainerrors.ErrNameTagDirectAdd, err)
}

func TestCart_AddItem_RejectsNonPositiveQuantity(t *testing.T) {
	_, err := Cart{}.AddItem(teeLine(0))
	assert.Equal(t, domainerrors.ErrQuantityNotPositive, err)
}

func TestCart_Total_ComputedOnDemand(t *testing.T) {
	cart := Cart{teeLine(2), tagLine("An")}
	assert.Equal(t, int64(330000), cart.Total())

	cart, err := cart.IncrementAt(0)
	require.NoError(t, err)
	assert.Equal(t, int64(480000), cart.Total())
}

func TestCart_DecrementAt_RemovesExcessNameTags(t *testing.T) {
	cart := Cart{teeLine(2), tagLine("An"), tagLine("Binh")}

	cart, err := cart.DecrementAt(0)
	require.NoError(t, err)
	require.Len(t, cart, 2)
	assert.Equal(t, 1, cart[0].Quantity)
	// The later of the two tags goes first.
	assert.Equal(t, "An", cart[1].NameTag.DisplayName)

	cart, err = cart.DecrementAt(0)
	require.NoError(t, err)
	// The tee reached zero; without any t-shirt the last tag goes too.
	assert.Empty(t, cart)
}

func TestCart_RemoveAt_TShirtDropsAllTags(t *testing.T) {
	cart := Cart{teeLine(2), tagLine("An"), tagLine("Binh")}

	cart, err := cart.RemoveAt(0)
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestCart_AddItem_NeverRemovesTags(t *testing.T) {
	cart := Cart{teeLine(1), tagLine("An")}

	other := CartLine{MerchandiseID: 3, Kind: KindOther, Name: "Yearbook", Quantity: 1, UnitPrice: 200000}
	cart, err := cart.AddItem(other)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.NameTagCount())
	assert.Len(t, cart, 3)
}

func TestCart_NameTagLine_Immutable(t *testing.T) {
	cart := Cart{teeLine(1), tagLine("An")}

	_, err := cart.IncrementAt(1)
	assert.Equal(t, domainerrors.ErrNameTagLineImmutable, err)

	_, err = cart.DecrementAt(1)
	assert.Equal(t, domainerrors.ErrNameTagLineImmutable, err)

	// Full removal is the one allowed mutation.
	next, err := cart.RemoveAt(1)
	require.NoError(t, err)
	assert.Equal(t, 0, next.NameTagCount())
}

func TestCart_ConfirmNameTag_SlotRules(t *testing.T) {
	cart := Cart{teeLine(2)}

	cart, err := cart.ConfirmNameTag(0, tagInput("An"))
	require.NoError(t, err)
	assert.Equal(t, 1, cart.NameTagCount())
	assert.Equal(t, KindNameTag, cart[1].Kind)
	assert.Equal(t, 1, cart[1].Quantity)

	// Slot 0 maps to the tag already in the cart.
	_, err = cart.ConfirmNameTag(0, tagInput("Binh"))
	assert.Equal(t, domainerrors.ErrNameTagSlotTaken, err)

	cart, err = cart.ConfirmNameTag(1, tagInput("Binh"))
	require.NoError(t, err)
	assert.Equal(t, 2, cart.NameTagCount())

	// Only two tees in the cart, no third slot.
	_, err = cart.ConfirmNameTag(2, tagInput("Chi"))
	assert.Equal(t, domainerrors.ErrNameTagSlotUnavailable, err)
}

func TestCart_ConfirmNameTag_RequiresNameAndClass(t *testing.T) {
	cart := Cart{teeLine(1)}

	blank := tagInput("An")
	blank.NameTag.DisplayClass = "   "
	_, err := cart.ConfirmNameTag(0, blank)
	assert.Equal(t, domainerrors.ErrNameTagIncomplete, err)
}

func TestCart_RemoveNameTag_BySlot(t *testing.T) {
	cart := Cart{teeLine(2), tagLine("An"), tagLine("Binh")}

	cart, err := cart.RemoveNameTag(0)
	require.NoError(t, err)
	require.Equal(t, 1, cart.NameTagCount())
	assert.Equal(t, "Binh", cart[1].NameTag.DisplayName)

	_, err = cart.RemoveNameTag(5)
	assert.Equal(t, domainerrors.ErrCartLineNotFound, err)
}

func TestCart_Replace_StillRepairs(t *testing.T) {
	cart := Cart{}.Replace([]CartLine{teeLine(1), tagLine("An"), tagLine("Binh")})

	assert.Equal(t, 1, cart.TShirtQuantity())
	assert.Equal(t, 1, cart.NameTagCount())
	assert.Equal(t, "An", cart[1].NameTag.DisplayName)
}

func TestCart_ValueSemantics(t *testing.T) {
	original := Cart{teeLine(1)}

	_, err := original.IncrementAt(0)
	require.NoError(t, err)
	assert.Equal(t, 1, original[0].Quantity)
}
