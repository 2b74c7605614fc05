package novita

import "strconv"

// priceUnit is the vendor's price denomination: 1/100000 USD per hour.
const priceUnit = 100000

// SubscriptionPrice is one monthly subscription price point.
type SubscriptionPrice struct {
	Price int64 `json:"price"`
	Month int   `json:"month"`
}

// USD returns the subscription price in dollars.
func (p SubscriptionPrice) USD() float64 {
	return float64(p.Price) / priceUnit
}

// GPUProduct describes a purchasable GPU configuration. Prices keep the raw
// wire denomination; use the USD accessors for display.
type GPUProduct struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	CPUPerGPU       int                 `json:"cpuPerGpu"`
	MemoryPerGPU    int                 `json:"memoryPerGpu"`
	DiskPerGPU      int                 `json:"diskPerGpu"`
	AvailableDeploy bool                `json:"availableDeploy"`
	MinRootFS       int                 `json:"minRootFS"`
	MaxRootFS       int                 `json:"maxRootFS"`
	MinLocalStorage int                 `json:"minLocalStorage"`
	MaxLocalStorage int                 `json:"maxLocalStorage"`
	Regions         []string            `json:"regions"`
	Price           int64               `json:"price"`
	MonthlyPrice    []SubscriptionPrice `json:"monthlyPrice"`
	BillingMethods  []string            `json:"billingMethods"`
	SpotPrice       string              `json:"spotPrice"`
}

// Validate checks the response shape.
func (p *GPUProduct) Validate() error {
	if p.ID == "" {
		return &ValidationError{Field: "id", Message: "missing in product payload"}
	}

	return nil
}

// PriceUSD returns the on-demand hourly price in dollars.
func (p *GPUProduct) PriceUSD() float64 {
	return float64(p.Price) / priceUnit
}

// SpotPriceUSD returns the spot hourly price in dollars, or 0 when the
// product has no spot price.
func (p *GPUProduct) SpotPriceUSD() float64 {
	raw, err := strconv.ParseInt(p.SpotPrice, 10, 64)
	if err != nil {
		return 0
	}

	return float64(raw) / priceUnit
}

// CPUProduct describes a purchasable CPU-only configuration.
type CPUProduct struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	CPUNum          int      `json:"cpu"`
	Memory          int      `json:"memory"`
	AvailableDeploy bool     `json:"availableDeploy"`
	Regions         []string `json:"regions"`
	Price           int64    `json:"price"`
}

// Validate checks the response shape.
func (p *CPUProduct) Validate() error {
	if p.ID == "" {
		return &ValidationError{Field: "id", Message: "missing in product payload"}
	}

	return nil
}

// PriceUSD returns the hourly price in dollars.
func (p *CPUProduct) PriceUSD() float64 {
	return float64(p.Price) / priceUnit
}

// GPUProductList is the wire envelope of the GPU products listing.
type GPUProductList struct {
	Data []GPUProduct `json:"data"`
}

// Validate checks every element.
func (l *GPUProductList) Validate() error {
	for idx := range l.Data {
		err := l.Data[idx].Validate()
		if err != nil {
			return err
		}
	}

	return nil
}

// CPUProductList is the wire envelope of the CPU products listing.
type CPUProductList struct {
	Data []CPUProduct `json:"data"`
}

// Validate checks every element.
func (l *CPUProductList) Validate() error {
	for idx := range l.Data {
		err := l.Data[idx].Validate()
		if err != nil {
			return err
		}
	}

	return nil
}
