package service

// resolve returns the supplied override, or the default when absent.
func resolve(value *float64, def func() float64) float64 {
	if value != nil {
		return *value
	}
	return def()
}

// positive drops overrides that are not strictly positive.
func positive(value *float64) *float64 {
	if value == nil || *value <= 0 {
		return nil
	}
	return value
}

// scaled multiplies a present override by k, e.g. 만원 per month to won per year.
func scaled(value *float64, k float64) *float64 {
	if value == nil {
		return nil
	}
	v := *value * k
	return &v
}

func constant(v float64) func() float64 {
	return func() float64 { return v }
}
