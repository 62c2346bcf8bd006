package domain

// Stats reports usage for a bicycle or a category.
type Stats struct {
	UsagePercentage *float64 `json:"usagePercentage,omitempty"`
}
