package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"yippee/internal/domain"
	"yippee/internal/mocks"
)

func TestCardNetwork(t *testing.T) {
	tests := []struct {
		card string
		want string
	}{
		{"4111111111111111", "Visa"},
		{"4000000000000000", "Visa"},
		{"5555555555554444", "MasterCard"},
		{"2221000000000000", "MasterCard"},
	}
	for _, testCase := range tests {
		assert.Equal(t, testCase.want, CardNetwork(testCase.card))
	}
}

func TestPaymentService_SaveValidation(t *testing.T) {
	mockRepo := new(mocks.PaymentRepository)
	svc := NewPaymentService(mockRepo, testCodec(t))

	tests := []struct {
		name   string
		card   string
		cvv    string
		expiry string
	}{
		{"short card", "4111", "123", "12/27"},
		{"card with letters", "4111abcd11111111", "123", "12/27"},
		{"short cvv", "4111111111111111", "12", "12/27"},
		{"long cvv", "4111111111111111", "12345", "12/27"},
		{"bad expiry month", "4111111111111111", "123", "13/27"},
		{"bad expiry shape", "4111111111111111", "123", "1227"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			err := svc.Save("a@x.com", testCase.card, testCase.cvv, testCase.expiry)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
	mockRepo.AssertNotCalled(t, "UpsertPayment")
}

func TestPaymentService_SaveEncryptsAndUpserts(t *testing.T) {
	codec := testCodec(t)
	mockRepo := new(mocks.PaymentRepository)
	svc := NewPaymentService(mockRepo, codec)

	var saved *domain.PaymentInstrument
	mockRepo.On("UpsertPayment", mock.AnythingOfType("*domain.PaymentInstrument")).
		Run(func(args mock.Arguments) { saved = args.Get(0).(*domain.PaymentInstrument) }).
		Return(nil).Once()

	err := svc.Save("a@x.com", "4111111111111111", "123", "12/27")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Nothing reaches the store in plaintext.
	assert.NotEqual(t, "4111111111111111", saved.CardNumber)
	assert.NotEqual(t, "123", saved.CVV)
	assert.NotEqual(t, "12/27", saved.Expiry)

	for field, want := range map[string]string{
		saved.CardNumber: "4111111111111111",
		saved.CVV:        "123",
		saved.Expiry:     "12/27",
		saved.CardType:   "Visa",
	} {
		got, err := codec.Decrypt(field)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestPaymentService_Lookup(t *testing.T) {
	codec := testCodec(t)

	t.Run("absent", func(t *testing.T) {
		mockRepo := new(mocks.PaymentRepository)
		svc := NewPaymentService(mockRepo, codec)
		mockRepo.On("GetPayment", "a@x.com").Return(nil, domain.ErrNoPayment).Once()

		_, err := svc.Lookup("a@x.com")
		assert.ErrorIs(t, err, domain.ErrNoPayment)
	})

	t.Run("corrupted field", func(t *testing.T) {
		card, _ := codec.Encrypt("4111111111111111")
		stored := &domain.PaymentInstrument{
			Email:      "a@x.com",
			CardNumber: card,
			CVV:        "garbage-token",
			Expiry:     card,
			CardType:   card,
		}

		mockRepo := new(mocks.PaymentRepository)
		svc := NewPaymentService(mockRepo, codec)
		mockRepo.On("GetPayment", "a@x.com").Return(stored, nil).Once()

		_, err := svc.Lookup("a@x.com")
		assert.ErrorIs(t, err, domain.ErrPaymentCorrupted)
	})

	t.Run("save then lookup round-trip", func(t *testing.T) {
		mockRepo := new(mocks.PaymentRepository)
		svc := NewPaymentService(mockRepo, codec)

		var stored *domain.PaymentInstrument
		mockRepo.On("UpsertPayment", mock.Anything).
			Run(func(args mock.Arguments) { stored = args.Get(0).(*domain.PaymentInstrument) }).
			Return(nil).Once()

		assert.NoError(t, svc.Save("a@x.com", "4111111111111111", "123", "12/27"))

		mockRepo.On("GetPayment", "a@x.com").Return(stored, nil).Once()

		ins, err := svc.Lookup("a@x.com")
		assert.NoError(t, err)
		assert.Equal(t, "4111111111111111", ins.CardNumber)
		assert.Equal(t, "123", ins.CVV)
		assert.Equal(t, "12/27", ins.Expiry)
		assert.Equal(t, "Visa", ins.CardType)
		assert.Equal(t, "1111", ins.CardNumber[len(ins.CardNumber)-4:])
	})
}
