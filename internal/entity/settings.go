package entity

// Option keys of the settings store.
const (
	SettingFormTitle     = "form_title"
	SettingWalletAddress = "wallet_address"
	SettingCompanyName   = "company_title"
	SettingFullName      = "your_fullname"
	SettingAddress       = "your_address"
	SettingCountry       = "country"
	SettingPhone         = "your_phone"
	SettingEmail         = "your_email"
)

// Settings are the operator's stored options.
type Settings struct {
	FormTitle     string
	WalletAddress string
	Seller        Party
}

// Options flattens s into the key-value form kept by the settings store.
func (s Settings) Options() map[string]string {
	return map[string]string{
		SettingFormTitle:     s.FormTitle,
		SettingWalletAddress: s.WalletAddress,
		SettingCompanyName:   s.Seller.Name,
		SettingFullName:      s.Seller.ContactName,
		SettingAddress:       s.Seller.Address,
		SettingCountry:       s.Seller.Country,
		SettingPhone:         s.Seller.Phone,
		SettingEmail:         s.Seller.Email,
	}
}

// SettingsFromOptions is the inverse of Settings.Options. Missing keys are blank.
func SettingsFromOptions(opts map[string]string) Settings {
	return Settings{
		FormTitle:     opts[SettingFormTitle],
		WalletAddress: opts[SettingWalletAddress],
		Seller: Party{
			Name:        opts[SettingCompanyName],
			ContactName: opts[SettingFullName],
			Address:     opts[SettingAddress],
			Country:     opts[SettingCountry],
			Phone:       opts[SettingPhone],
			Email:       opts[SettingEmail],
		},
	}
}

// Form is what the client-side submission form needs to render and pay.
type Form struct {
	Title         string
	WalletAddress string
	Categories    []string
}
