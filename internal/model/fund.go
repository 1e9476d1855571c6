package model

// FundSpec identifies one fund to chart: a display name plus the
// provider's numeric code. Specs come from config and are immutable
// for a run.
type FundSpec struct {
	Name string `yaml:"name"`
	Code string `yaml:"code"`
}
