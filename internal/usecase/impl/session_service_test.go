package impl

import (
	"context"
	"testing"

	"reunion/internal/domain/entity"
	domainerrors "reunion/internal/domain/errors"
	"reunion/internal/domain/repository"
	"reunion/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionService_Get_ColdStart(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	key := uuid.New()

	fx.sessions.EXPECT().
		Load(ctx, key).
		Return(nil, repository.ErrSessionNotFound)

	session, err := fx.service.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, key, session.Key)
	assert.Equal(t, entity.FirstStep, session.Step)
	assert.Empty(t, session.Cart)
	assert.Zero(t, session.Form.DonationAmount)
	assert.Nil(t, session.PaymentProof)
	assert.Nil(t, session.TicketQR)
}

func TestSessionService_Get_LoadError(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	key := uuid.New()

	fx.sessions.EXPECT().
		Load(ctx, key).
		Return(nil, errors.New("database error"))

	session, err := fx.service.Get(ctx, key)
	assert.Error(t, err)
	assert.Nil(t, session)
	assert.Contains(t, err.Error(), "failed to load session")
}

func TestSessionService_SetStep_Persists(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	key := uuid.New()
	stored := entity.NewCheckoutSession(key)

	fx.sessions.EXPECT().
		Load(ctx, key).
		Return(stored, nil)

	fx.sessions.EXPECT().
		Save(ctx, stored).
		Return(nil)

	session, err := fx.service.SetStep(ctx, key, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, session.Step)
}

func TestSessionService_UpdateForm_ShallowMerge(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	key := uuid.New()
	stored := entity.NewCheckoutSession(key)
	stored.Form.FullName = "Nguyen Van A"
	stored.Form.Email = "a@example.com"
	stored.Form.Class = "12A1"

	fx.sessions.EXPECT().
		Load(ctx, key).
		Return(stored, nil)

	fx.sessions.EXPECT().
		Save(ctx, stored).
		Return(nil)

	session, err := fx.service.UpdateForm(ctx, key, &usecase.UpdateFormInput{
		Email:          ptrOf("new@example.com"),
		DonationAmount: ptrOf(int64(200000)),
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", session.Form.Email)
	assert.Equal(t, int64(200000), session.Form.DonationAmount)
	// Fields without an input value stay untouched.
	assert.Equal(t, "Nguyen Van A", session.Form.FullName)
	assert.Equal(t, "12A1", session.Form.Class)
}

func TestSessionService_AddCartItem_MergesExistingLine(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	key := uuid.New()
	stored := entity.NewCheckoutSession(key)
	stored.Cart = entity.Cart{
		{MerchandiseID: 1, Kind: entity.KindTShirt, Name: "Reunion Tee", Quantity: 1, UnitPrice: 150000, Gender: "male", Size: "L"},
	}

	fx.sessions.EXPECT().
		Load(ctx, key).
		Return(stored, nil)

	fx.sessions.EXPECT().
		Save(ctx, stored).
		Return(nil)

	session, err := fx.service.AddCartItem(ctx, key, &usecase.AddCartItemInput{
		MerchandiseID: 1,
		Kind:          "tshirt",
		Name:          "Reunion Tee",
		Quantity:      2,
		UnitPrice:     150000,
		Gender:        "male",
		Size:          "L",
	})
	require.NoError(t, err)
	require.Len(t, session.Cart, 1)
	assert.Equal(t, 3, session.Cart[0].Quantity)
}

func TestSessionService_AddCartItem_RejectsNameTagKind(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	key := uuid.New()

	fx.sessions.EXPECT().
		Load(ctx, key).
		Return(entity.NewCheckoutSession(key), nil)

	session, err := fx.service.AddCartItem(ctx, key, &usecase.AddCartItemInput{
		MerchandiseID: 2,
		Kind:          "nametag",
		Name:          "Name Tag",
		Quantity:      1,
	})
	assert.Nil(t, session)
	assert.Equal(t, domainerrors.ErrNameTagDirectAdd, err)
	fx.sessions.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestSessionService_ReplaceCart_Repairs(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	key := uuid.New()
	stored := entity.NewCheckoutSession(key)

	fx.sessions.EXPECT().
		Load(ctx, key).
		Return(stored, nil)

	fx.sessions.EXPECT().
		Save(ctx, stored).
		Return(nil)

	session, err := fx.service.ReplaceCart(ctx, key, &usecase.ReplaceCartInput{
		Lines: []entity.CartLine{
			{MerchandiseID: 1, Kind: entity.KindTShirt, Name: "Reunion Tee", Quantity: 1, UnitPrice: 150000},
			{MerchandiseID: 2, Kind: entity.KindNameTag, Name: "Name Tag", Quantity: 1, UnitPrice: 30000, NameTag: &entity.NameTagInfo{DisplayName: "An", DisplayClass: "12A1"}},
			{MerchandiseID: 2, Kind: entity.KindNameTag, Name: "Name Tag", Quantity: 1, UnitPrice: 30000, NameTag: &entity.NameTagInfo{DisplayName: "Binh", DisplayClass: "12A2"}},
		},
	})
	require.NoError(t, err)
	// Only one tee, so the wholesale replacement keeps only the first tag.
	require.Len(t, session.Cart, 2)
	assert.Equal(t, "An", session.Cart[1].NameTag.DisplayName)
}

func TestSessionService_DecrementCartLine_RepairsNameTags(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	key := uuid.New()
	stored := entity.NewCheckoutSession(key)
	stored.Cart = entity.Cart{
		{MerchandiseID: 1, Kind: entity.KindTShirt, Name: "Reunion Tee", Quantity: 2, UnitPrice: 150000},
		{MerchandiseID: 2, Kind: entity.KindNameTag, Name: "Name Tag", Quantity: 1, UnitPrice: 30000, NameTag: &entity.NameTagInfo{DisplayName: "An", DisplayClass: "12A1"}},
		{MerchandiseID: 2, Kind: entity.KindNameTag, Name: "Name Tag", Quantity: 1, UnitPrice: 30000, NameTag: &entity.NameTagInfo{DisplayName: "Binh", DisplayClass: "12A2"}},
	}

	fx.sessions.EXPECT().
		Load(ctx, key).
		Return(stored, nil)

	fx.sessions.EXPECT().
		Save(ctx, stored).
		Return(nil)

	session, err := fx.service.DecrementCartLine(ctx, key, 0)
	require.NoError(t, err)
	require.Len(t, session.Cart, 2)
	assert.Equal(t, 1, session.Cart[0].Quantity)
	// Only one tee remains, so the later of the two name tags is dropped.
	assert.Equal(t, "An", session.Cart[1].NameTag.DisplayName)
}

func TestSessionService_ConfirmNameTag_AppendsLine(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	key := uuid.New()
	stored := entity.NewCheckoutSession(key)
	stored.Cart = entity.Cart{
		{MerchandiseID: 1, Kind: entity.KindTShirt, Name: "Reunion Tee", Quantity: 1, UnitPrice: 150000},
	}

	fx.sessions.EXPECT().
		Load(ctx, key).
		Return(stored, nil)

	fx.sessions.EXPECT().
		Save(ctx, stored).
		Return(nil)

	session, err := fx.service.ConfirmNameTag(ctx, key, &usecase.ConfirmNameTagInput{
		Slot:          0,
		MerchandiseID: 2,
		Name:          "Name Tag",
		UnitPrice:     30000,
		DisplayName:   "An",
		DisplayClass:  "12A1",
	})
	require.NoError(t, err)
	require.Len(t, session.Cart, 2)
	assert.Equal(t, entity.KindNameTag, session.Cart[1].Kind)
	assert.Equal(t, 1, session.Cart[1].Quantity)
	assert.Equal(t, "An", session.Cart[1].NameTag.DisplayName)
}

func TestSessionService_ConfirmNameTag_SlotUnavailable(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	key := uuid.New()

	fx.sessions.EXPECT().
		Load(ctx, key).
		Return(entity.NewCheckoutSession(key), nil)

	session, err := fx.service.ConfirmNameTag(ctx, key, &usecase.ConfirmNameTagInput{
		Slot:          0,
		MerchandiseID: 2,
		Name:          "Name Tag",
		DisplayName:   "An",
		DisplayClass:  "12A1",
	})
	assert.Nil(t, session)
	assert.Equal(t, domainerrors.ErrNameTagSlotUnavailable, err)
}

func TestSessionService_SetPaymentProof_RejectsNonImage(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	key := uuid.New()

	fx.sessions.EXPECT().
		Load(ctx, key).
		Return(entity.NewCheckoutSession(key), nil)

	session, err := fx.service.SetPaymentProof(ctx, key, &usecase.PaymentProofInput{
		Data:        []byte("%PDF-1.7"),
		FileName:    "transfer.pdf",
		ContentType: "application/pdf",
	})
	assert.Nil(t, session)
	assert.Equal(t, domainerrors.ErrProofNotImage, err)
	fx.sessions.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestSessionService_SetPaymentProof_ReplacesPrevious(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	key := uuid.New()
	stored := entity.NewCheckoutSession(key)
	stored.PaymentProof = &entity.PaymentProofArtifact{FileName: "old.png", ContentType: "image/png"}

	fx.sessions.EXPECT().
		Load(ctx, key).
		Return(stored, nil)

	fx.sessions.EXPECT().
		Save(ctx, stored).
		Return(nil)

	session, err := fx.service.SetPaymentProof(ctx, key, &usecase.PaymentProofInput{
		Data:        []byte{0x89, 'P', 'N', 'G'},
		FileName:    "new.png",
		ContentType: "image/png",
	})
	require.NoError(t, err)
	require.NotNil(t, session.PaymentProof)
	assert.Equal(t, "new.png", session.PaymentProof.FileName)
	assert.Equal(t, int64(4), session.PaymentProof.Size)
}

func TestSessionService_ClearPaymentProof_KeepsForm(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	key := uuid.New()
	stored := entity.NewCheckoutSession(key)
	stored.Form.FullName = "Nguyen Van A"
	stored.PaymentProof = &entity.PaymentProofArtifact{FileName: "old.png", ContentType: "image/png"}

	fx.sessions.EXPECT().
		Load(ctx, key).
		Return(stored, nil)

	fx.sessions.EXPECT().
		Save(ctx, stored).
		Return(nil)

	session, err := fx.service.ClearPaymentProof(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, session.PaymentProof)
	assert.Equal(t, "Nguyen Van A", session.Form.FullName)
}

func TestSessionService_Reset_RestoresDefaults(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	key := uuid.New()

	fx.sessions.EXPECT().
		Delete(ctx, key).
		Return(nil)

	session, err := fx.service.Reset(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, key, session.Key)
	assert.Equal(t, entity.FirstStep, session.Step)
	assert.Empty(t, session.Cart)
	assert.Nil(t, session.PaymentProof)
	assert.Nil(t, session.TicketQR)
}

func TestSessionService_Reset_DeleteError(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	key := uuid.New()

	fx.sessions.EXPECT().
		Delete(ctx, key).
		Return(errors.New("database error"))

	session, err := fx.service.Reset(ctx, key)
	assert.Error(t, err)
	assert.Nil(t, session)
	assert.Contains(t, err.Error(), "failed to reset session")
}
