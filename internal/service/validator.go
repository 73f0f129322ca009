package service

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"

	"github.com/samandr77/immutablepost/internal/entity"
)

var validate = validator.New()

func ValidateEmail(email string) error {
	return validate.Var(email, "required,email")
}

// validateRecipients rejects a submission before any delivery is attempted.
func validateRecipients(seller, buyer entity.Party) error {
	if err := ValidateEmail(buyer.Email); err != nil {
		return fmt.Errorf("%w: buyer email %q", entity.ErrInvalidRecipient, buyer.Email)
	}

	if err := ValidateEmail(seller.Email); err != nil {
		return fmt.Errorf("%w: seller email %q is not configured", entity.ErrInvalidRecipient, seller.Email)
	}

	return nil
}

// NormalizeSettings trims the options, checks the ones that have a format and
// returns the wallet address in its EIP-55 checksum form. Blank options are
// accepted so that settings can be filled in gradually.
func NormalizeSettings(s entity.Settings) (entity.Settings, error) {
	s.FormTitle = strings.TrimSpace(s.FormTitle)
	s.WalletAddress = strings.TrimSpace(s.WalletAddress)
	s.Seller = trimParty(s.Seller)

	if s.WalletAddress != "" {
		if !common.IsHexAddress(s.WalletAddress) {
			return entity.Settings{}, fmt.Errorf("%w: wallet address %q", entity.ErrInvalidArgument, s.WalletAddress)
		}

		s.WalletAddress = common.HexToAddress(s.WalletAddress).Hex()
	}

	if s.Seller.Country != "" && !entity.IsCountry(s.Seller.Country) {
		return entity.Settings{}, fmt.Errorf("%w: unknown country %q", entity.ErrInvalidArgument, s.Seller.Country)
	}

	if s.Seller.Email != "" {
		if err := ValidateEmail(s.Seller.Email); err != nil {
			return entity.Settings{}, fmt.Errorf("%w: email %q", entity.ErrInvalidArgument, s.Seller.Email)
		}
	}

	return s, nil
}

func trimParty(p entity.Party) entity.Party {
	return entity.Party{
		Name:        strings.TrimSpace(p.Name),
		ContactName: strings.TrimSpace(p.ContactName),
		Address:     strings.TrimSpace(p.Address),
		Country:     strings.TrimSpace(p.Country),
		Phone:       strings.TrimSpace(p.Phone),
		Email:       strings.TrimSpace(p.Email),
	}
}
