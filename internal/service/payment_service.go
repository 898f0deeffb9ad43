package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"yippee/internal/domain"
	"yippee/internal/secrets"
)

var (
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3,4}$`)
	expiryPattern     = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
)

// CardNetwork classifies a card by its leading digit. Only two networks are
// recognized; anything that is not a Visa prefix is treated as MasterCard.
func CardNetwork(cardNumber string) string {
	if strings.HasPrefix(cardNumber, "4") {
		return "Visa"
	}
	return "MasterCard"
}

type PaymentService struct {
	repo  PaymentRepository
	codec *secrets.Codec
}

func NewPaymentService(repo PaymentRepository, codec *secrets.Codec) *PaymentService {
	return &PaymentService{repo: repo, codec: codec}
}

// Save encrypts every field independently and upserts: at most one live
// instrument per account, last write wins. The card network is derived here,
// at write time, and stored alongside the card.
func (s *PaymentService) Save(email, cardNumber, cvv, expiry string) error {
	switch {
	case !cardNumberPattern.MatchString(cardNumber):
		return fmt.Errorf("%w: card number must be 16 digits", domain.ErrValidation)
	case !cvvPattern.MatchString(cvv):
		return fmt.Errorf("%w: CVV must be 3 or 4 digits", domain.ErrValidation)
	case !expiryPattern.MatchString(expiry):
		return fmt.Errorf("%w: expiry must be MM/YY", domain.ErrValidation)
	}

	ins := &domain.PaymentInstrument{Email: email}
	for _, field := range []struct {
		plaintext string
		target    *string
	}{
		{cardNumber, &ins.CardNumber},
		{cvv, &ins.CVV},
		{expiry, &ins.Expiry},
		{CardNetwork(cardNumber), &ins.CardType},
	} {
		token, err := s.codec.Encrypt(field.plaintext)
		if err != nil {
			return fmt.Errorf("encrypt payment field: %w", err)
		}
		*field.target = token
	}

	return s.repo.UpsertPayment(ins)
}

// Lookup retrieves and decrypts the saved instrument. Absence and corruption
// are distinct: domain.ErrNoPayment when nothing was ever saved,
// domain.ErrPaymentCorrupted when a row exists but a field fails to decrypt.
func (s *PaymentService) Lookup(email string) (*domain.PaymentInstrument, error) {
	stored, err := s.repo.GetPayment(email)
	if err != nil {
		return nil, err
	}

	ins := &domain.PaymentInstrument{Email: stored.Email}
	for _, field := range []struct {
		token  string
		target *string
	}{
		{stored.CardNumber, &ins.CardNumber},
		{stored.CVV, &ins.CVV},
		{stored.Expiry, &ins.Expiry},
		{stored.CardType, &ins.CardType},
	} {
		plaintext, err := s.codec.Decrypt(field.token)
		if errors.Is(err, secrets.ErrDecryption) {
			return nil, fmt.Errorf("payment for %q: %w", email, domain.ErrPaymentCorrupted)
		}
		if err != nil {
			return nil, err
		}
		*field.target = plaintext
	}
	return ins, nil
}

var _ PaymentServiceInterface = (*PaymentService)(nil)
