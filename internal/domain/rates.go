package domain

import "github.com/shopspring/decimal"

// Provider is an insurer or lender paying commissions.
type Provider struct {
	ID               string
	Name             string
	DefaultGrossRate decimal.Decimal
	DefaultNetRate   decimal.Decimal
}

// ProductType categorizes sales and may override provider-level rates.
type ProductType struct {
	ID                string
	Name              string
	Category          string
	GrossRateOverride *decimal.Decimal
	NetRateOverride   *decimal.Decimal
}

// ResolveRates applies the precedence order: a product-type override rate
// wins over the provider default, independently for gross and net.
func ResolveRates(provider *Provider, productType *ProductType) (gross, net decimal.Decimal) {
	gross = provider.DefaultGrossRate
	net = provider.DefaultNetRate
	if productType != nil {
		if productType.GrossRateOverride != nil {
			gross = *productType.GrossRateOverride
		}
		if productType.NetRateOverride != nil {
			net = *productType.NetRateOverride
		}
	}
	return gross, net
}

// RateConfig carries tunable engine parameters that used to live as
// module-level constants in older engines. Passed explicitly so tenants
// and tests can override them.
type RateConfig struct {
	FlatBonusEnabled bool
	FlatBonusRate    decimal.Decimal

	KpiBonusEnabled bool
	KpiThreshold    decimal.Decimal
	KpiBonusRate    decimal.Decimal

	CategoryBonusEnabled bool
	CategoryBonusRate    decimal.Decimal
	BonusCategories      []string
}

type CatalogRepository interface {
	GetProviderByID(providerID string) (*Provider, error)
	GetProductTypeByID(productTypeID string) (*ProductType, error)
	CreateProvider(provider *Provider) error
	CreateProductType(productType *ProductType) error
}
